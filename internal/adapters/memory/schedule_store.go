package memory

import (
	"context"
	"slices"
	"sync"

	"work-scheduler-service/internal/domain"
)

// Snapshot is one consistent view of both collections. Mutations always
// publish a fresh snapshot; holders of a prior one never observe changes.
type Snapshot struct {
	WorkCenters []domain.WorkCenter
	WorkOrders  []domain.WorkOrder
}

// In-memory implementation of the ScheduleRepository port.
//
// Collections are replaced wholesale on every mutation (copy-on-write), so
// readers within the same turn share an immutable slice and never need a
// lock of their own. The single mutex serializes the read-then-write
// mutations for multi-threaded hosts. State lives for the process lifetime;
// a restart re-seeds from bootstrap data.
type ScheduleStore struct {
	mu          sync.RWMutex
	workCenters []domain.WorkCenter
	workOrders  []domain.WorkOrder
	subscribers []func(Snapshot)
}

func NewScheduleStore() *ScheduleStore {
	return &ScheduleStore{}
}

// Subscribe registers a callback invoked synchronously after every
// mutation with the freshly published snapshot. There is no unsubscribe;
// observers live as long as the store.
func (s *ScheduleStore) Subscribe(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Snapshot returns the current consistent view of both collections.
func (s *ScheduleStore) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{WorkCenters: s.workCenters, WorkOrders: s.workOrders}
}

// AddWorkCenter appends a work center. Bootstrap-only: centers have no
// edit or delete flow.
func (s *ScheduleStore) AddWorkCenter(ctx context.Context, center domain.WorkCenter) error {
	s.mu.Lock()
	s.workCenters = append(slices.Clone(s.workCenters), center)
	snap := Snapshot{WorkCenters: s.workCenters, WorkOrders: s.workOrders}
	subs := s.subscribers
	s.mu.Unlock()

	notify(subs, snap)
	return nil
}

func (s *ScheduleStore) ListWorkCenters(ctx context.Context) ([]domain.WorkCenter, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.workCenters, nil
}

func (s *ScheduleStore) ListWorkOrders(ctx context.Context) ([]domain.WorkOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.workOrders, nil
}

func (s *ScheduleStore) ListWorkOrdersForCenter(ctx context.Context, workCenterID string) ([]domain.WorkOrder, error) {
	s.mu.RLock()
	orders := s.workOrders
	s.mu.RUnlock()

	matched := make([]domain.WorkOrder, 0, len(orders))
	for _, o := range orders {
		if o.WorkCenterID == workCenterID {
			matched = append(matched, o)
		}
	}
	return matched, nil
}

// AddWorkOrder appends a work order. The caller supplies a fresh id; no
// duplicate check is performed.
func (s *ScheduleStore) AddWorkOrder(ctx context.Context, order domain.WorkOrder) error {
	s.mu.Lock()
	s.workOrders = append(slices.Clone(s.workOrders), order)
	snap := Snapshot{WorkCenters: s.workCenters, WorkOrders: s.workOrders}
	subs := s.subscribers
	s.mu.Unlock()

	notify(subs, snap)
	return nil
}

// UpdateWorkOrder replaces the work order whose id matches, preserving its
// position. Unknown ids are a silent no-op (intentional idempotence,
// pending product review); no snapshot is published in that case.
func (s *ScheduleStore) UpdateWorkOrder(ctx context.Context, order domain.WorkOrder) error {
	s.mu.Lock()

	idx := slices.IndexFunc(s.workOrders, func(o domain.WorkOrder) bool {
		return o.ID == order.ID
	})
	if idx < 0 {
		s.mu.Unlock()
		return nil
	}

	updated := slices.Clone(s.workOrders)
	updated[idx] = order
	s.workOrders = updated
	snap := Snapshot{WorkCenters: s.workCenters, WorkOrders: s.workOrders}
	subs := s.subscribers
	s.mu.Unlock()

	notify(subs, snap)
	return nil
}

// DeleteWorkOrder removes the matching work order; no-op when absent.
func (s *ScheduleStore) DeleteWorkOrder(ctx context.Context, id string) error {
	s.mu.Lock()

	idx := slices.IndexFunc(s.workOrders, func(o domain.WorkOrder) bool {
		return o.ID == id
	})
	if idx < 0 {
		s.mu.Unlock()
		return nil
	}

	s.workOrders = slices.Delete(slices.Clone(s.workOrders), idx, idx+1)
	snap := Snapshot{WorkCenters: s.workCenters, WorkOrders: s.workOrders}
	subs := s.subscribers
	s.mu.Unlock()

	notify(subs, snap)
	return nil
}

// CheckOverlap reports whether [start, end] intersects any work order on
// the given work center, skipping the order whose id equals excludeID so
// an edit never conflicts with itself. Intervals are closed: an order
// ending on day N conflicts with one starting on day N.
func (s *ScheduleStore) CheckOverlap(ctx context.Context, workCenterID string, start, end domain.Date, excludeID string) (bool, error) {
	s.mu.RLock()
	orders := s.workOrders
	s.mu.RUnlock()

	for _, o := range orders {
		if o.WorkCenterID != workCenterID || o.ID == excludeID {
			continue
		}
		if o.Overlaps(start, end) {
			return true, nil
		}
	}
	return false, nil
}

func notify(subs []func(Snapshot), snap Snapshot) {
	for _, fn := range subs {
		fn(snap)
	}
}
