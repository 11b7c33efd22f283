package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/friendex/internal/db"
	"github.com/alexanderramin/friendex/internal/domain"
	"github.com/alexanderramin/friendex/internal/storage"
)

// SQLiteEventRepo implements EventRepo. Each row holds one persisted event
// record and is converted with the storage adapter.
type SQLiteEventRepo struct {
	db   db.DBTX
	sink storage.DiagnosticSink
}

// NewSQLiteEventRepo reports rows that fail to decode to the first non-nil
// sink, if any.
func NewSQLiteEventRepo(db db.DBTX, sinks ...storage.DiagnosticSink) *SQLiteEventRepo {
	return &SQLiteEventRepo{db: db, sink: sinkOrNoop(sinks)}
}

func (r *SQLiteEventRepo) ListByContact(ctx context.Context, contactID string, cat domain.EventCategory) ([]domain.Event, error) {
	query := `SELECT date, time, description, recurrence_kind
		FROM events WHERE contact_id = ? AND category = ? ORDER BY position`
	rows, err := r.db.QueryContext(ctx, query, contactID, string(cat))
	if err != nil {
		return nil, fmt.Errorf("listing %s events: %w", cat, err)
	}
	defer rows.Close()

	events := make([]domain.Event, 0)
	for rows.Next() {
		var date, desc, kind string
		var tod sql.NullString
		if err := rows.Scan(&date, &tod, &desc, &kind); err != nil {
			return nil, fmt.Errorf("scanning event row: %w", err)
		}
		rec := storage.EventRecord{
			Date:           &date,
			Time:           stringPtr(tod),
			Description:    &desc,
			RecurrenceKind: &kind,
		}
		e, err := storage.DecodeEvent(rec)
		if err != nil {
			r.sink.Diagnose(fmt.Sprintf("Illegal values found in stored %s event of contact %s: %v. Record: %s",
				cat, contactID, err, rec))
			return nil, fmt.Errorf("decoding %s event %d of contact %s: %w", cat, len(events)+1, contactID, err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating events: %w", err)
	}
	return events, nil
}

// Replace overwrites the stored list for cat with events, keeping their order.
// Run it inside a unit of work when it must be atomic with other writes.
func (r *SQLiteEventRepo) Replace(ctx context.Context, contactID string, cat domain.EventCategory, events []domain.Event) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM events WHERE contact_id = ? AND category = ?`, contactID, string(cat)); err != nil {
		return fmt.Errorf("clearing %s events: %w", cat, err)
	}

	query := `INSERT INTO events (contact_id, category, position, date, time, description, recurrence_kind)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	for i, e := range events {
		rec := storage.EncodeEvent(e)
		if _, err := r.db.ExecContext(ctx, query,
			contactID,
			string(cat),
			i,
			*rec.Date,
			nullableString(rec.Time),
			*rec.Description,
			*rec.RecurrenceKind,
		); err != nil {
			return fmt.Errorf("inserting %s event: %w", cat, err)
		}
	}

	if _, err := r.db.ExecContext(ctx,
		`UPDATE contacts SET updated_at = ? WHERE id = ?`, nowUTC(), contactID); err != nil {
		return fmt.Errorf("touching contact: %w", err)
	}
	return nil
}
