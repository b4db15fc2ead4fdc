package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"work-scheduler-service/internal/adapters/memory"
	"work-scheduler-service/internal/domain"
)

func date(y int, m time.Month, d int) domain.Date {
	return domain.Date{Year: y, Month: m, Day: d}
}

func testStore(t *testing.T) *memory.ScheduleStore {
	t.Helper()
	ctx := context.Background()
	store := memory.NewScheduleStore()

	_ = store.AddWorkCenter(ctx, domain.WorkCenter{ID: "wc-1", Name: "Extrusion Line A"})
	if err := store.AddWorkOrder(ctx, domain.WorkOrder{
		ID: "wo-1", WorkCenterID: "wc-1", Status: domain.StatusOpen, Name: "Order #1001",
		StartDate: date(2025, time.January, 5), EndDate: date(2025, time.January, 10),
	}); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	return store
}

func TestSaveWorkOrderCreateMintsID(t *testing.T) {
	ctx := context.Background()
	store := testStore(t)

	order, err := SaveWorkOrder(ctx, store, WorkOrderDraft{
		WorkCenterID: "wc-1",
		Name:         "Order #1002",
		StartDate:    date(2025, time.February, 1),
		EndDate:      date(2025, time.February, 5),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(order.ID, "wo-") || order.ID == "wo-" {
		t.Fatalf("minted id = %q, want wo- prefix with suffix", order.ID)
	}
	if order.Status != domain.StatusOpen {
		t.Fatalf("default status = %q, want open", order.Status)
	}

	orders, _ := store.ListWorkOrders(ctx)
	if len(orders) != 2 || orders[1].ID != order.ID {
		t.Fatalf("stored orders = %+v, want new order appended", orders)
	}
}

func TestSaveWorkOrderDefaultsEndDate(t *testing.T) {
	ctx := context.Background()
	store := testStore(t)

	// A grid click proposes only a start; the saved order spans the
	// default duration.
	order, err := SaveWorkOrder(ctx, store, WorkOrderDraft{
		WorkCenterID: "wc-1",
		Name:         "Order #1003",
		StartDate:    date(2025, time.March, 1),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := date(2025, time.March, 1).AddDays(DefaultDurationDays)
	if order.EndDate != want {
		t.Fatalf("end date = %s, want %s", order.EndDate, want)
	}
}

func TestSaveWorkOrderEndBeforeStart(t *testing.T) {
	ctx := context.Background()
	store := testStore(t)

	_, err := SaveWorkOrder(ctx, store, WorkOrderDraft{
		WorkCenterID: "wc-1",
		Name:         "Backwards",
		StartDate:    date(2025, time.March, 10),
		EndDate:      date(2025, time.March, 1),
	})
	if !errors.Is(err, domain.ErrEndBeforeStart) {
		t.Fatalf("err = %v, want ErrEndBeforeStart", err)
	}

	orders, _ := store.ListWorkOrders(ctx)
	if len(orders) != 1 {
		t.Fatalf("store mutated by rejected draft: %+v", orders)
	}
}

func TestSaveWorkOrderRejectsOverlap(t *testing.T) {
	ctx := context.Background()
	store := testStore(t)

	// Touching an existing endpoint counts as overlap (closed intervals).
	_, err := SaveWorkOrder(ctx, store, WorkOrderDraft{
		WorkCenterID: "wc-1",
		Name:         "Conflicting",
		StartDate:    date(2025, time.January, 10),
		EndDate:      date(2025, time.January, 15),
	})
	if !errors.Is(err, domain.ErrOverlap) {
		t.Fatalf("err = %v, want ErrOverlap", err)
	}
}

func TestSaveWorkOrderEditExcludesSelf(t *testing.T) {
	ctx := context.Background()
	store := testStore(t)

	// Re-saving wo-1 over its own interval must not conflict with itself.
	order, err := SaveWorkOrder(ctx, store, WorkOrderDraft{
		ID:           "wo-1",
		WorkCenterID: "wc-1",
		Status:       domain.StatusBlocked,
		Name:         "Order #1001 (rev)",
		StartDate:    date(2025, time.January, 5),
		EndDate:      date(2025, time.January, 10),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.ID != "wo-1" {
		t.Fatalf("id = %q, want identity preserved", order.ID)
	}

	orders, _ := store.ListWorkOrders(ctx)
	if len(orders) != 1 || orders[0].Status != domain.StatusBlocked {
		t.Fatalf("orders = %+v, want wo-1 updated in place", orders)
	}
}

func TestSaveWorkOrderEditUnknownIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	store := testStore(t)

	// The draft validates, then the store silently ignores the unknown id.
	_, err := SaveWorkOrder(ctx, store, WorkOrderDraft{
		ID:           "wo-404",
		WorkCenterID: "wc-1",
		Name:         "Ghost",
		StartDate:    date(2025, time.June, 1),
		EndDate:      date(2025, time.June, 2),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	orders, _ := store.ListWorkOrders(ctx)
	if len(orders) != 1 || orders[0].ID != "wo-1" {
		t.Fatalf("orders = %+v, want collection unchanged", orders)
	}
}
