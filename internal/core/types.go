// Package core implements the multi-model sync engine: the model registry,
// per-model transforms, the batch orchestrator, and the sync history ledger.
// This package has no transport dependencies and can be driven by any frontend.
package core

import (
	"context"
	"fmt"
	"time"
)

// ModelKind identifies one of the synchronizable entity shapes.
// The set is closed: dispatch over ModelKind is exhaustive, and an inbound
// model key is converted to a kind exactly once, at the registry boundary.
type ModelKind int

const (
	ModelCustomers ModelKind = iota
	ModelProducts
	ModelOrders
	ModelEmployees
)

// Key returns the wire-level model key for the kind.
func (k ModelKind) Key() string {
	switch k {
	case ModelCustomers:
		return "customers"
	case ModelProducts:
		return "products"
	case ModelOrders:
		return "orders"
	case ModelEmployees:
		return "employees"
	default:
		return fmt.Sprintf("ModelKind(%d)", int(k))
	}
}

// ParseModel converts a wire-level model key into a ModelKind.
// Any key outside the supported set yields an UnknownModelError.
func ParseModel(key string) (ModelKind, error) {
	switch key {
	case "customers":
		return ModelCustomers, nil
	case "products":
		return ModelProducts, nil
	case "orders":
		return ModelOrders, nil
	case "employees":
		return ModelEmployees, nil
	default:
		return 0, &UnknownModelError{Model: key}
	}
}

// Record is one untyped item of an inbound batch, as decoded from JSON.
type Record map[string]any

// HasID reports whether the record carried a non-null "id" value.
// Per-item created/updated labeling is derived from this alone; it reflects
// caller intent, not the actual insert-vs-update outcome in storage.
func (r Record) HasID() bool {
	v, ok := r["id"]
	return ok && v != nil
}

// Entity is a validated domain object produced by a model transform.
type Entity interface {
	// EntityID returns the storage identity, or 0 before first insert.
	EntityID() int64
}

// TransformFunc converts a raw record into a validated domain entity.
// Transforms are pure with respect to storage: they shape and check data only.
type TransformFunc func(rec Record) (Entity, error)

// EntityStore is the persistence handle for one model.
// Save assigns identity on first insert and returns the persisted entity.
type EntityStore interface {
	Save(ctx context.Context, e Entity) (Entity, error)
	Exists(ctx context.Context, id int64) (bool, error)
	FindByID(ctx context.Context, id int64) (Entity, error)
	Delete(ctx context.Context, id int64) error
}

// ModelDescriptor bundles everything the orchestrator needs for one model.
// Descriptors are created during initialization and immutable thereafter.
type ModelDescriptor struct {
	Kind      ModelKind
	Key       string
	Transform TransformFunc
	Store     EntityStore
}

// Stores carries the per-model persistence handles used to build the registry.
type Stores struct {
	Customers EntityStore
	Products  EntityStore
	Orders    EntityStore
	Employees EntityStore
}

// SyncStatus is the state of a sync history record.
type SyncStatus string

const (
	StatusPendingRetry SyncStatus = "pending_retry"
	StatusSuccessful   SyncStatus = "successful"
	StatusFailed       SyncStatus = "failed"
	StatusInvalid      SyncStatus = "invalid"
)

// KnownStatuses lists every sync status in stats-report order.
func KnownStatuses() []SyncStatus {
	return []SyncStatus{StatusSuccessful, StatusFailed, StatusInvalid, StatusPendingRetry}
}

// ParseStatus converts a wire-level status string into a SyncStatus.
func ParseStatus(s string) (SyncStatus, error) {
	switch SyncStatus(s) {
	case StatusPendingRetry, StatusSuccessful, StatusFailed, StatusInvalid:
		return SyncStatus(s), nil
	default:
		return "", fmt.Errorf("unknown sync status: %q", s)
	}
}

// SyncHistory is one ledger entry: a durable record of a single batch attempt.
type SyncHistory struct {
	ID            int64      `json:"id"`
	Payload       string     `json:"payload"`
	Status        SyncStatus `json:"status"`
	FailureReason string     `json:"failureReason,omitempty"`
	Retries       int32      `json:"retries"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// HistoryStore is the persistence handle for the sync history ledger.
// Every method is a single durable write or read; the orchestrator never
// groups ledger writes with item writes, so the audit trail survives failed
// batches.
type HistoryStore interface {
	// Create opens a ledger entry in pending_retry with the payload snapshot.
	Create(ctx context.Context, payload string) (*SyncHistory, error)

	// SetStatus closes (or re-marks) an entry. failureReason may be empty.
	SetStatus(ctx context.Context, id int64, status SyncStatus, failureReason string) error

	FindByID(ctx context.Context, id int64) (*SyncHistory, error)

	// List returns a page of entries ordered newest-first, plus the total
	// matching count. A nil status means no status filter.
	List(ctx context.Context, status *SyncStatus, limit, offset int32) ([]SyncHistory, int64, error)

	// ResetForRetry flips a failed entry back to pending_retry and bumps the
	// retry counter. The guard is part of the write: a row not currently in
	// failed is left untouched and ErrNotFound is returned.
	ResetForRetry(ctx context.Context, id int64) (*SyncHistory, error)

	Delete(ctx context.Context, id int64) error

	// CountByStatus returns per-status entry counts. Statuses with no
	// entries may be absent from the map.
	CountByStatus(ctx context.Context) (map[SyncStatus]int64, error)
}

// ItemAction labels one processed batch item in the sync response.
type ItemAction string

const (
	ActionCreated ItemAction = "created"
	ActionUpdated ItemAction = "updated"
)

// ItemResult is the per-item outcome reported for a successful batch.
type ItemResult struct {
	ID     int64      `json:"id"`
	Action ItemAction `json:"status"`
}

// BatchResult is the outcome of a fully successful sync call.
type BatchResult struct {
	// SyncID correlates this call with its log entries.
	SyncID string `json:"syncId"`

	// HistoryID is the ledger entry documenting this batch.
	HistoryID int64 `json:"historyId"`

	Results []ItemResult `json:"results"`
}
