// Package seed bootstraps the in-memory schedule store from a JSON file of
// wire-shaped documents. Seeding replaces nothing: it appends into a fresh
// store at process start, and is the only way work centers are created.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"work-scheduler-service/internal/adapters/memory"
	"work-scheduler-service/internal/domain"
)

// File is the on-disk seed shape: both collections in wire-document form.
type File struct {
	WorkCenters []domain.WorkCenterDocument `json:"workCenters"`
	WorkOrders  []domain.WorkOrderDocument  `json:"workOrders"`
}

// FromJSON populates the store from the seed file at jsonPath.
func FromJSON(ctx context.Context, store *memory.ScheduleStore, jsonPath string) error {
	raw, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed schedule: read %q: %w", jsonPath, err)
	}

	var file File
	if err := json.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("seed schedule: parse json: %w", err)
	}

	return Load(ctx, store, file)
}

// Load validates and appends the seed documents in file order.
func Load(ctx context.Context, store *memory.ScheduleStore, file File) error {
	for i, doc := range file.WorkCenters {
		center, err := doc.WorkCenter()
		if err != nil {
			return fmt.Errorf("seed schedule: work center at index %d: %w", i, err)
		}
		if strings.TrimSpace(center.ID) == "" || strings.TrimSpace(center.Name) == "" {
			return fmt.Errorf("seed schedule: work center at index %d: id and name are required", i)
		}
		if err := store.AddWorkCenter(ctx, center); err != nil {
			return fmt.Errorf("seed schedule: add work center %s: %w", center.ID, err)
		}
	}

	for i, doc := range file.WorkOrders {
		order, err := doc.WorkOrder()
		if err != nil {
			return fmt.Errorf("seed schedule: work order at index %d: %w", i, err)
		}
		if strings.TrimSpace(order.ID) == "" {
			return fmt.Errorf("seed schedule: work order at index %d: docId is required", i)
		}
		if order.EndDate.Before(order.StartDate) {
			return fmt.Errorf("seed schedule: work order %s: endDate %s precedes startDate %s", order.ID, order.EndDate, order.StartDate)
		}
		if err := store.AddWorkOrder(ctx, order); err != nil {
			return fmt.Errorf("seed schedule: add work order %s: %w", order.ID, err)
		}
	}

	return nil
}
