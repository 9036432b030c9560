package core

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/syncbridge/syncbridge/internal/logging"
)

// payloadSnapshotError is stored as the ledger payload when the raw batch
// cannot be serialized. The attempt is still recorded.
const payloadSnapshotError = "Error serializing payload"

// Service drives sync batches and owns the ledger operations around them.
type Service struct {
	registry *Registry
	history  HistoryStore
}

// NewService creates a Service over an initialized registry and ledger store.
func NewService(registry *Registry, history HistoryStore) *Service {
	return &Service{
		registry: registry,
		history:  history,
	}
}

// Models returns the registered model descriptors.
func (s *Service) Models() []ModelDescriptor {
	return s.registry.All()
}

// Sync ingests one batch of raw records declared under a model key.
//
// Every call that reaches this method produces exactly one ledger entry
// documenting the outcome: the entry is opened in pending_retry before any
// item is touched and closed as successful, failed, or invalid. Each ledger
// write is its own storage call, committed independently of the item writes,
// so a failed batch never loses its audit trail.
//
// Items are processed strictly in input order and the batch stops at the
// first transform or persistence error (fail-fast). Items persisted before
// the failure stay persisted; batch-level atomicity is the storage engine's
// concern, not the orchestrator's.
func (s *Service) Sync(ctx context.Context, model string, records []Record) (*BatchResult, error) {
	start := time.Now()
	syncID := uuid.New().String()
	logger := logging.WithFields(ctx, "sync_id", syncID, "model", model)

	payload, err := json.Marshal(records)
	snapshot := string(payload)
	if err != nil {
		snapshot = payloadSnapshotError
	}

	entry, err := s.history.Create(ctx, snapshot)
	if err != nil {
		return nil, fmt.Errorf("open sync history: %w", err)
	}
	logger = logger.With("history_id", entry.ID)

	desc, err := s.registry.Resolve(model)
	if err != nil {
		// Unknown model: the batch never starts and the ledger entry is
		// closed as unrecoverable before any item is touched.
		if cerr := s.history.SetStatus(ctx, entry.ID, StatusInvalid, err.Error()); cerr != nil {
			return nil, fmt.Errorf("close sync history: %w", cerr)
		}
		observeSync(model, StatusInvalid, 0, time.Since(start))
		logger.Warn("sync rejected", "error", err)
		return nil, err
	}

	results := make([]ItemResult, 0, len(records))
	for i, rec := range records {
		entity, err := desc.Transform(rec)
		if err != nil {
			return nil, s.failBatch(ctx, logger, entry.ID, desc.Key, i, len(results), start, err)
		}

		saved, err := desc.Store.Save(ctx, entity)
		if err != nil {
			return nil, s.failBatch(ctx, logger, entry.ID, desc.Key, i, len(results), start, err)
		}

		action := ActionCreated
		if rec.HasID() {
			action = ActionUpdated
		}
		results = append(results, ItemResult{ID: saved.EntityID(), Action: action})
	}

	if err := s.history.SetStatus(ctx, entry.ID, StatusSuccessful, ""); err != nil {
		return nil, fmt.Errorf("close sync history: %w", err)
	}
	observeSync(desc.Key, StatusSuccessful, len(results), time.Since(start))
	logger.Info("sync completed", "records", len(results), "elapsed", time.Since(start))

	return &BatchResult{
		SyncID:    syncID,
		HistoryID: entry.ID,
		Results:   results,
	}, nil
}

// failBatch closes the ledger entry as failed and surfaces the triggering
// error. The failure reason stored in the ledger is the error message
// verbatim: "ledger says failed" and "call returned an error" are two views
// of the same event.
func (s *Service) failBatch(ctx context.Context, logger *slog.Logger, historyID int64, model string, index, persisted int, start time.Time, cause error) error {
	if cerr := s.history.SetStatus(ctx, historyID, StatusFailed, cause.Error()); cerr != nil {
		return fmt.Errorf("close sync history after %v: %w", cause, cerr)
	}
	observeSync(model, StatusFailed, persisted, time.Since(start))
	logger.Warn("sync failed", "record_index", index, "persisted", persisted, "error", cause)
	return cause
}
