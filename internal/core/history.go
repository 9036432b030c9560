package core

// history.go exposes read, retry, and stats operations over the sync ledger.
//
// Retry is a status reset only: it flips a failed entry back to pending_retry
// and bumps the retry counter. Re-executing the batch is the caller's job,
// via a fresh Sync call.

import (
	"context"
	"errors"
	"fmt"

	"github.com/syncbridge/syncbridge/internal/logging"
)

// DefaultHistoryPageSize is the page size used when the caller does not
// specify one.
const DefaultHistoryPageSize = 15

// HistoryFilter selects a page of sync history entries.
type HistoryFilter struct {
	Status *SyncStatus // nil = all statuses
	Page   int         // 1-based; values < 1 mean the first page
	Size   int         // <= 0 means DefaultHistoryPageSize
}

// HistoryPage is one page of sync history entries, newest first.
type HistoryPage struct {
	Entries []SyncHistory `json:"entries"`
	Total   int64         `json:"total"`
	Page    int           `json:"page"`
	Size    int           `json:"size"`
}

// GetHistory returns one ledger entry by id, or ErrNotFound.
func (s *Service) GetHistory(ctx context.Context, id int64) (*SyncHistory, error) {
	entry, err := s.history.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find sync history %d: %w", id, err)
	}
	return entry, nil
}

// ListHistory returns a page of ledger entries, optionally filtered by status.
func (s *Service) ListHistory(ctx context.Context, filter HistoryFilter) (*HistoryPage, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.Size
	if size <= 0 {
		size = DefaultHistoryPageSize
	}

	offset := int32((page - 1) * size)
	entries, total, err := s.history.List(ctx, filter.Status, int32(size), offset)
	if err != nil {
		return nil, fmt.Errorf("list sync history: %w", err)
	}

	return &HistoryPage{
		Entries: entries,
		Total:   total,
		Page:    page,
		Size:    size,
	}, nil
}

// Retry resets a failed ledger entry to pending_retry.
//
// Only entries currently in failed are eligible; any other status yields an
// InvalidStateError, and an unknown id yields ErrNotFound. The guard is
// re-checked inside the store write, so two concurrent retries of the same
// entry cannot both succeed.
func (s *Service) Retry(ctx context.Context, id int64) (*SyncHistory, error) {
	entry, err := s.history.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find sync history %d: %w", id, err)
	}
	if entry.Status != StatusFailed {
		return nil, &InvalidStateError{Op: "retry", Status: entry.Status}
	}

	updated, err := s.history.ResetForRetry(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			// Lost the race with another retry or a delete.
			return nil, &InvalidStateError{Op: "retry", Status: entry.Status}
		}
		return nil, fmt.Errorf("retry sync history %d: %w", id, err)
	}

	logging.FromContext(ctx).Info("sync history queued for retry",
		"history_id", id, "retries", updated.Retries)
	return updated, nil
}

// DeleteHistory removes a ledger entry. This is an administrative action; the
// engine itself never deletes audit state.
func (s *Service) DeleteHistory(ctx context.Context, id int64) error {
	if _, err := s.history.FindByID(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("find sync history %d: %w", id, err)
	}
	if err := s.history.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete sync history %d: %w", id, err)
	}
	return nil
}

// Stats aggregates ledger entry counts per status.
//
// All four known statuses are always present, zero-valued when empty, plus a
// "total" equal to their sum. Read-only and safe to call concurrently with
// running batches.
func (s *Service) Stats(ctx context.Context) (map[string]int64, error) {
	counts, err := s.history.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count sync history by status: %w", err)
	}

	stats := make(map[string]int64, len(KnownStatuses())+1)
	var total int64
	for _, status := range KnownStatuses() {
		n := counts[status]
		stats[string(status)] = n
		total += n
	}
	stats["total"] = total
	return stats, nil
}
