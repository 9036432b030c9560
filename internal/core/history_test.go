package core

import (
	"context"
	"errors"
	"testing"
)

func seedEntry(t *testing.T, h *testHarness, status SyncStatus) *SyncHistory {
	t.Helper()
	entry, err := h.history.Create(context.Background(), "[]")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if status != StatusPendingRetry {
		if err := h.history.SetStatus(context.Background(), entry.ID, status, ""); err != nil {
			t.Fatalf("SetStatus() error = %v", err)
		}
	}
	return entry
}

func TestGetHistory(t *testing.T) {
	h := newTestHarness()
	entry := seedEntry(t, h, StatusSuccessful)

	got, err := h.service.GetHistory(context.Background(), entry.ID)
	if err != nil {
		t.Fatalf("GetHistory() error = %v", err)
	}
	if got.ID != entry.ID || got.Status != StatusSuccessful {
		t.Errorf("GetHistory() = %+v", got)
	}

	if _, err := h.service.GetHistory(context.Background(), 9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetHistory(unknown) error = %v, want ErrNotFound", err)
	}
}

func TestRetry_TransitionsFailedOnce(t *testing.T) {
	h := newTestHarness()
	entry := seedEntry(t, h, StatusFailed)
	ctx := context.Background()

	updated, err := h.service.Retry(ctx, entry.ID)
	if err != nil {
		t.Fatalf("Retry() error = %v", err)
	}
	if updated.Status != StatusPendingRetry {
		t.Errorf("status after retry = %q, want %q", updated.Status, StatusPendingRetry)
	}
	if updated.Retries != 1 {
		t.Errorf("retries = %d, want 1", updated.Retries)
	}

	// A second retry must fail: the entry is no longer failed.
	_, err = h.service.Retry(ctx, entry.ID)
	var serr *InvalidStateError
	if !errors.As(err, &serr) {
		t.Fatalf("second Retry() error = %v, want InvalidStateError", err)
	}
	if serr.Status != StatusPendingRetry {
		t.Errorf("InvalidStateError.Status = %q, want %q", serr.Status, StatusPendingRetry)
	}
}

func TestRetry_NonFailedStatuses(t *testing.T) {
	h := newTestHarness()
	ctx := context.Background()

	for _, status := range []SyncStatus{StatusSuccessful, StatusInvalid, StatusPendingRetry} {
		entry := seedEntry(t, h, status)
		_, err := h.service.Retry(ctx, entry.ID)
		var serr *InvalidStateError
		if !errors.As(err, &serr) {
			t.Errorf("Retry() on %q: error = %v, want InvalidStateError", status, err)
		}
	}
}

func TestRetry_NotFound(t *testing.T) {
	h := newTestHarness()
	if _, err := h.service.Retry(context.Background(), 404); !errors.Is(err, ErrNotFound) {
		t.Errorf("Retry(unknown) error = %v, want ErrNotFound", err)
	}
}

func TestDeleteHistory(t *testing.T) {
	h := newTestHarness()
	entry := seedEntry(t, h, StatusSuccessful)
	ctx := context.Background()

	if err := h.service.DeleteHistory(ctx, entry.ID); err != nil {
		t.Fatalf("DeleteHistory() error = %v", err)
	}
	if _, err := h.service.GetHistory(ctx, entry.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetHistory() after delete error = %v, want ErrNotFound", err)
	}
	if err := h.service.DeleteHistory(ctx, entry.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteHistory() twice error = %v, want ErrNotFound", err)
	}
}

func TestListHistory_Pagination(t *testing.T) {
	h := newTestHarness()
	ctx := context.Background()

	for i := 0; i < 20; i++ {
		seedEntry(t, h, StatusSuccessful)
	}

	// Default size is 15, pages are 1-based.
	page, err := h.service.ListHistory(ctx, HistoryFilter{})
	if err != nil {
		t.Fatalf("ListHistory() error = %v", err)
	}
	if page.Page != 1 || page.Size != DefaultHistoryPageSize {
		t.Errorf("page = %d size = %d, want 1 and %d", page.Page, page.Size, DefaultHistoryPageSize)
	}
	if len(page.Entries) != 15 || page.Total != 20 {
		t.Errorf("len(Entries) = %d total = %d, want 15 and 20", len(page.Entries), page.Total)
	}

	page, err = h.service.ListHistory(ctx, HistoryFilter{Page: 2})
	if err != nil {
		t.Fatalf("ListHistory(page 2) error = %v", err)
	}
	if len(page.Entries) != 5 {
		t.Errorf("len(Entries) = %d, want 5", len(page.Entries))
	}

	// Newest first: the first entry of page 1 is the last created.
	first, _ := h.service.ListHistory(ctx, HistoryFilter{Size: 1})
	if first.Entries[0].ID != 20 {
		t.Errorf("Entries[0].ID = %d, want newest (20)", first.Entries[0].ID)
	}
}

func TestListHistory_StatusFilter(t *testing.T) {
	h := newTestHarness()
	ctx := context.Background()

	seedEntry(t, h, StatusSuccessful)
	seedEntry(t, h, StatusFailed)
	seedEntry(t, h, StatusFailed)

	failed := StatusFailed
	page, err := h.service.ListHistory(ctx, HistoryFilter{Status: &failed})
	if err != nil {
		t.Fatalf("ListHistory() error = %v", err)
	}
	if page.Total != 2 || len(page.Entries) != 2 {
		t.Errorf("total = %d len = %d, want 2 and 2", page.Total, len(page.Entries))
	}
	for _, entry := range page.Entries {
		if entry.Status != StatusFailed {
			t.Errorf("entry %d status = %q, want %q", entry.ID, entry.Status, StatusFailed)
		}
	}
}

func TestStats(t *testing.T) {
	h := newTestHarness()
	ctx := context.Background()

	// Empty ledger still reports every label, zero-valued.
	stats, err := h.service.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	for _, status := range KnownStatuses() {
		if v, ok := stats[string(status)]; !ok || v != 0 {
			t.Errorf("stats[%q] = %d (present=%v), want 0", status, v, ok)
		}
	}
	if stats["total"] != 0 {
		t.Errorf("total = %d, want 0", stats["total"])
	}

	for i := 0; i < 3; i++ {
		seedEntry(t, h, StatusSuccessful)
	}
	for i := 0; i < 2; i++ {
		seedEntry(t, h, StatusFailed)
	}

	stats, err = h.service.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if stats["successful"] != 3 {
		t.Errorf("successful = %d, want 3", stats["successful"])
	}
	if stats["failed"] != 2 {
		t.Errorf("failed = %d, want 2", stats["failed"])
	}
	if stats["invalid"] != 0 || stats["pending_retry"] != 0 {
		t.Errorf("zero labels missing: %v", stats)
	}
	if stats["total"] != 5 {
		t.Errorf("total = %d, want 5", stats["total"])
	}
}
