package database

import (
	"context"

	"github.com/jackc/pgx/v5"
)

const historyColumns = `id, payload, status, failure_reason, retries, created_at, updated_at`

const insertSyncHistory = `
INSERT INTO sync_history (payload, status)
VALUES ($1, $2)
RETURNING ` + historyColumns

type InsertSyncHistoryParams struct {
	Payload string
	Status  string
}

func (q *Queries) InsertSyncHistory(ctx context.Context, arg InsertSyncHistoryParams) (SyncHistory, error) {
	return scanSyncHistory(q.db.QueryRow(ctx, insertSyncHistory, arg.Payload, arg.Status))
}

const setSyncHistoryStatus = `
UPDATE sync_history
SET status = $2, failure_reason = $3, updated_at = now()
WHERE id = $1
`

type SetSyncHistoryStatusParams struct {
	ID            int64
	Status        string
	FailureReason string
}

func (q *Queries) SetSyncHistoryStatus(ctx context.Context, arg SetSyncHistoryStatusParams) (int64, error) {
	var reason any
	if arg.FailureReason != "" {
		reason = arg.FailureReason
	}
	tag, err := q.db.Exec(ctx, setSyncHistoryStatus, arg.ID, arg.Status, reason)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const getSyncHistory = `
SELECT ` + historyColumns + `
FROM sync_history
WHERE id = $1
`

func (q *Queries) GetSyncHistory(ctx context.Context, id int64) (SyncHistory, error) {
	return scanSyncHistory(q.db.QueryRow(ctx, getSyncHistory, id))
}

const listSyncHistory = `
SELECT ` + historyColumns + `
FROM sync_history
ORDER BY created_at DESC, id DESC
LIMIT $1 OFFSET $2
`

type ListSyncHistoryParams struct {
	Limit  int32
	Offset int32
}

func (q *Queries) ListSyncHistory(ctx context.Context, arg ListSyncHistoryParams) ([]SyncHistory, error) {
	rows, err := q.db.Query(ctx, listSyncHistory, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	return collectSyncHistory(rows)
}

const listSyncHistoryByStatus = `
SELECT ` + historyColumns + `
FROM sync_history
WHERE status = $1
ORDER BY created_at DESC, id DESC
LIMIT $2 OFFSET $3
`

type ListSyncHistoryByStatusParams struct {
	Status string
	Limit  int32
	Offset int32
}

func (q *Queries) ListSyncHistoryByStatus(ctx context.Context, arg ListSyncHistoryByStatusParams) ([]SyncHistory, error) {
	rows, err := q.db.Query(ctx, listSyncHistoryByStatus, arg.Status, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	return collectSyncHistory(rows)
}

const countSyncHistory = `
SELECT count(*) FROM sync_history
`

func (q *Queries) CountSyncHistory(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRow(ctx, countSyncHistory).Scan(&n)
	return n, err
}

const countSyncHistoryWithStatus = `
SELECT count(*) FROM sync_history WHERE status = $1
`

func (q *Queries) CountSyncHistoryWithStatus(ctx context.Context, status string) (int64, error) {
	var n int64
	err := q.db.QueryRow(ctx, countSyncHistoryWithStatus, status).Scan(&n)
	return n, err
}

// The failed guard lives inside the statement so concurrent retries cannot
// both succeed.
const resetSyncHistoryForRetry = `
UPDATE sync_history
SET status = 'pending_retry', retries = retries + 1, updated_at = now()
WHERE id = $1 AND status = 'failed'
RETURNING ` + historyColumns

func (q *Queries) ResetSyncHistoryForRetry(ctx context.Context, id int64) (SyncHistory, error) {
	return scanSyncHistory(q.db.QueryRow(ctx, resetSyncHistoryForRetry, id))
}

const deleteSyncHistory = `
DELETE FROM sync_history WHERE id = $1
`

func (q *Queries) DeleteSyncHistory(ctx context.Context, id int64) error {
	_, err := q.db.Exec(ctx, deleteSyncHistory, id)
	return err
}

const countSyncHistoryByStatus = `
SELECT status, count(*)
FROM sync_history
GROUP BY status
`

type SyncHistoryStatusCount struct {
	Status string
	Count  int64
}

func (q *Queries) CountSyncHistoryByStatus(ctx context.Context) ([]SyncHistoryStatusCount, error) {
	rows, err := q.db.Query(ctx, countSyncHistoryByStatus)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []SyncHistoryStatusCount
	for rows.Next() {
		var c SyncHistoryStatusCount
		if err := rows.Scan(&c.Status, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func scanSyncHistory(row rowScanner) (SyncHistory, error) {
	var h SyncHistory
	err := row.Scan(&h.ID, &h.Payload, &h.Status, &h.FailureReason, &h.Retries, &h.CreatedAt, &h.UpdatedAt)
	return h, err
}

func collectSyncHistory(rows pgx.Rows) ([]SyncHistory, error) {
	defer rows.Close()

	var entries []SyncHistory
	for rows.Next() {
		h, err := scanSyncHistory(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, h)
	}
	return entries, rows.Err()
}
