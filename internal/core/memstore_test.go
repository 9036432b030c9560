package core

// In-memory store fakes backing the engine tests. They mirror the storage
// contract closely enough to exercise ordering, identity assignment, and the
// failed-only retry guard without a database.

import (
	"context"
	"errors"
	"time"
)

// memStore is an in-memory EntityStore. Ids are assigned sequentially on
// first insert. failOn, when non-zero, makes the n-th Save call fail.
type memStore struct {
	nextID   int64
	entities map[int64]Entity
	saves    int
	failOn   int
}

func newMemStore() *memStore {
	return &memStore{entities: make(map[int64]Entity)}
}

func assignID(e Entity, id int64) {
	switch t := e.(type) {
	case *Customer:
		t.ID = id
	case *Product:
		t.ID = id
	case *Order:
		t.ID = id
	case *Employee:
		t.ID = id
	}
}

func (m *memStore) Save(_ context.Context, e Entity) (Entity, error) {
	m.saves++
	if m.failOn != 0 && m.saves == m.failOn {
		return nil, errors.New("storage rejected write")
	}
	id := e.EntityID()
	if id == 0 {
		m.nextID++
		id = m.nextID
		assignID(e, id)
	}
	m.entities[id] = e
	return e, nil
}

func (m *memStore) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := m.entities[id]
	return ok, nil
}

func (m *memStore) FindByID(_ context.Context, id int64) (Entity, error) {
	e, ok := m.entities[id]
	if !ok {
		return nil, ErrNotFound
	}
	return e, nil
}

func (m *memStore) Delete(_ context.Context, id int64) error {
	delete(m.entities, id)
	return nil
}

// memHistory is an in-memory HistoryStore. Listing returns entries newest
// first, matching the storage ordering contract.
type memHistory struct {
	nextID  int64
	entries map[int64]*SyncHistory
	order   []int64
}

func newMemHistory() *memHistory {
	return &memHistory{entries: make(map[int64]*SyncHistory)}
}

func (m *memHistory) Create(_ context.Context, payload string) (*SyncHistory, error) {
	m.nextID++
	now := time.Now()
	entry := &SyncHistory{
		ID:        m.nextID,
		Payload:   payload,
		Status:    StatusPendingRetry,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.entries[entry.ID] = entry
	m.order = append(m.order, entry.ID)
	copied := *entry
	return &copied, nil
}

func (m *memHistory) SetStatus(_ context.Context, id int64, status SyncStatus, failureReason string) error {
	entry, ok := m.entries[id]
	if !ok {
		return ErrNotFound
	}
	entry.Status = status
	entry.FailureReason = failureReason
	entry.UpdatedAt = time.Now()
	return nil
}

func (m *memHistory) FindByID(_ context.Context, id int64) (*SyncHistory, error) {
	entry, ok := m.entries[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *entry
	return &copied, nil
}

func (m *memHistory) List(_ context.Context, status *SyncStatus, limit, offset int32) ([]SyncHistory, int64, error) {
	var matching []SyncHistory
	for i := len(m.order) - 1; i >= 0; i-- {
		entry := m.entries[m.order[i]]
		if status != nil && entry.Status != *status {
			continue
		}
		matching = append(matching, *entry)
	}

	total := int64(len(matching))
	if int(offset) >= len(matching) {
		return nil, total, nil
	}
	matching = matching[offset:]
	if int(limit) < len(matching) {
		matching = matching[:limit]
	}
	return matching, total, nil
}

func (m *memHistory) ResetForRetry(_ context.Context, id int64) (*SyncHistory, error) {
	entry, ok := m.entries[id]
	if !ok || entry.Status != StatusFailed {
		return nil, ErrNotFound
	}
	entry.Status = StatusPendingRetry
	entry.Retries++
	entry.UpdatedAt = time.Now()
	copied := *entry
	return &copied, nil
}

func (m *memHistory) Delete(_ context.Context, id int64) error {
	delete(m.entries, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *memHistory) CountByStatus(_ context.Context) (map[SyncStatus]int64, error) {
	counts := make(map[SyncStatus]int64)
	for _, entry := range m.entries {
		counts[entry.Status]++
	}
	return counts, nil
}

// testHarness bundles a service with its fakes for inspection.
type testHarness struct {
	service   *Service
	history   *memHistory
	customers *memStore
	products  *memStore
	orders    *memStore
	employees *memStore
}

func newTestHarness() *testHarness {
	h := &testHarness{
		history:   newMemHistory(),
		customers: newMemStore(),
		products:  newMemStore(),
		orders:    newMemStore(),
		employees: newMemStore(),
	}
	registry := NewRegistry(Stores{
		Customers: h.customers,
		Products:  h.products,
		Orders:    h.orders,
		Employees: h.employees,
	})
	h.service = NewService(registry, h.history)
	return h
}
