package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/sheencheck/internal/contest"
	"github.com/udisondev/sheencheck/internal/legality"
)

// ErrReportNotFound is returned when no report is stored for a record.
var ErrReportNotFound = errors.New("report not found")

// StoredReport is a persisted legality report.
type StoredReport struct {
	legality.Report
	CheckedAt time.Time
}

// ReportRepository provides DB access for contest stat reports.
type ReportRepository struct {
	pool *pgxpool.Pool
}

// NewReportRepository creates a new report repository.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{pool: pool}
}

const upsertReportSQL = `
	INSERT INTO contest_reports (record_id, policy, family, sheen, min_sheen, max_sheen, valid, codes, messages, checked_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())
	ON CONFLICT (record_id) DO UPDATE SET
		policy = EXCLUDED.policy,
		family = EXCLUDED.family,
		sheen = EXCLUDED.sheen,
		min_sheen = EXCLUDED.min_sheen,
		max_sheen = EXCLUDED.max_sheen,
		valid = EXCLUDED.valid,
		codes = EXCLUDED.codes,
		messages = EXCLUDED.messages,
		checked_at = EXCLUDED.checked_at`

func reportArgs(r legality.Report) []any {
	codes := make([]string, len(r.Findings))
	messages := make([]string, len(r.Findings))
	for i, f := range r.Findings {
		codes[i] = f.Code
		messages[i] = f.Message
	}
	return []any{
		r.RecordID, int16(r.Policy), int16(r.Family), int16(r.Sheen),
		int16(r.MinSheen), int16(r.MaxSheen), r.Valid(), codes, messages,
	}
}

// Save stores (or replaces) the report of one record.
func (r *ReportRepository) Save(ctx context.Context, report legality.Report) error {
	if _, err := r.pool.Exec(ctx, upsertReportSQL, reportArgs(report)...); err != nil {
		return fmt.Errorf("saving report for record %d: %w", report.RecordID, err)
	}
	return nil
}

// SaveAll stores reports in a single transaction.
func (r *ReportRepository) SaveAll(ctx context.Context, reports []legality.Report) error {
	if len(reports) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	batch := &pgx.Batch{}
	for _, rep := range reports {
		batch.Queue(upsertReportSQL, reportArgs(rep)...)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("saving %d reports: %w", len(reports), err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

const selectReportSQL = `
	SELECT record_id, policy, family, sheen, min_sheen, max_sheen, codes, messages, checked_at
	FROM contest_reports`

// Get returns the stored report of a record.
func (r *ReportRepository) Get(ctx context.Context, recordID int64) (*StoredReport, error) {
	rows, err := r.pool.Query(ctx, selectReportSQL+` WHERE record_id = $1`, recordID)
	if err != nil {
		return nil, fmt.Errorf("query report %d: %w", recordID, err)
	}
	rep, err := pgx.CollectExactlyOneRow(rows, scanReport)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("record %d: %w", recordID, ErrReportNotFound)
		}
		return nil, fmt.Errorf("scan report %d: %w", recordID, err)
	}
	return &rep, nil
}

// ListInvalid returns all reports with findings ordered by record id.
func (r *ReportRepository) ListInvalid(ctx context.Context) ([]StoredReport, error) {
	rows, err := r.pool.Query(ctx, selectReportSQL+` WHERE NOT valid ORDER BY record_id`)
	if err != nil {
		return nil, fmt.Errorf("query invalid reports: %w", err)
	}
	result, err := pgx.CollectRows(rows, scanReport)
	if err != nil {
		return nil, fmt.Errorf("scan invalid reports: %w", err)
	}
	return result, nil
}

func scanReport(row pgx.CollectableRow) (StoredReport, error) {
	var (
		rep                       StoredReport
		policy, family            int16
		sheen, minSheen, maxSheen int16
		codes, messages           []string
	)
	if err := row.Scan(&rep.RecordID, &policy, &family, &sheen, &minSheen, &maxSheen, &codes, &messages, &rep.CheckedAt); err != nil {
		return rep, err
	}

	rep.Policy = contest.Policy(policy)
	rep.Family = contest.ItemFamily(family)
	rep.Sheen = int(sheen)
	rep.MinSheen = int(minSheen)
	rep.MaxSheen = int(maxSheen)
	if len(codes) != len(messages) {
		return rep, fmt.Errorf("record %d: %d codes vs %d messages", rep.RecordID, len(codes), len(messages))
	}
	for i := range codes {
		rep.Findings = append(rep.Findings, legality.Finding{Code: codes[i], Message: messages[i]})
	}
	return rep, nil
}
