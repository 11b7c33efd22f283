package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/friendex/internal/db"
	"github.com/alexanderramin/friendex/internal/domain"
	"github.com/alexanderramin/friendex/internal/storage"
)

// SQLiteContactRepo implements ContactRepo. Contacts are always returned with
// both event lists loaded.
type SQLiteContactRepo struct {
	db     db.DBTX
	events *SQLiteEventRepo
}

func NewSQLiteContactRepo(db db.DBTX, sinks ...storage.DiagnosticSink) *SQLiteContactRepo {
	return &SQLiteContactRepo{db: db, events: NewSQLiteEventRepo(db, sinks...)}
}

// BindTx returns repos over tx. They report to the same diagnostic sink as
// contacts when it is a SQLite repo.
func BindTx(contacts ContactRepo, tx db.DBTX) (*SQLiteContactRepo, *SQLiteEventRepo) {
	var sink storage.DiagnosticSink
	if r, ok := contacts.(*SQLiteContactRepo); ok {
		sink = r.events.sink
	}
	c := NewSQLiteContactRepo(tx, sink)
	return c, c.events
}

const contactColumns = `id, name, birthday, created_at, updated_at`

func (r *SQLiteContactRepo) Create(ctx context.Context, c *domain.Contact) error {
	query := `INSERT INTO contacts (id, name, birthday, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.Name,
		c.Birthday.String(),
		c.CreatedAt.UTC().Format(time.RFC3339),
		c.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting contact: %w", err)
	}

	if err := r.events.Replace(ctx, c.ID, domain.CategoryMeeting, c.Meetings); err != nil {
		return err
	}
	return r.events.Replace(ctx, c.ID, domain.CategorySpecialDate, c.SpecialDates)
}

func (r *SQLiteContactRepo) GetByID(ctx context.Context, id string) (*domain.Contact, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+contactColumns+` FROM contacts WHERE id = ?`, id)

	var c domain.Contact
	var birthday, createdAt, updatedAt string
	if err := row.Scan(&c.ID, &c.Name, &birthday, &createdAt, &updatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("contact %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning contact: %w", err)
	}
	if err := populateContact(&c, birthday, createdAt, updatedAt); err != nil {
		return nil, err
	}
	if err := r.loadEvents(ctx, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// FindByIDPrefix matches contacts whose ID starts with prefix.
func (r *SQLiteContactRepo) FindByIDPrefix(ctx context.Context, prefix string) ([]*domain.Contact, error) {
	return r.query(ctx, `SELECT `+contactColumns+` FROM contacts
		WHERE id LIKE ? ESCAPE '\' ORDER BY name, created_at`, escapeLike(prefix)+"%")
}

// FindByName matches names exactly, ignoring case.
func (r *SQLiteContactRepo) FindByName(ctx context.Context, name string) ([]*domain.Contact, error) {
	return r.query(ctx, `SELECT `+contactColumns+` FROM contacts
		WHERE name = ? COLLATE NOCASE ORDER BY created_at`, name)
}

func (r *SQLiteContactRepo) List(ctx context.Context) ([]*domain.Contact, error) {
	return r.query(ctx, `SELECT `+contactColumns+` FROM contacts ORDER BY name COLLATE NOCASE, created_at`)
}

func (r *SQLiteContactRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM contacts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting contact: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("contact %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteContactRepo) query(ctx context.Context, query string, args ...any) ([]*domain.Contact, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying contacts: %w", err)
	}

	var contacts []*domain.Contact
	for rows.Next() {
		var c domain.Contact
		var birthday, createdAt, updatedAt string
		if err := rows.Scan(&c.ID, &c.Name, &birthday, &createdAt, &updatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning contact row: %w", err)
		}
		if err := populateContact(&c, birthday, createdAt, updatedAt); err != nil {
			rows.Close()
			return nil, err
		}
		contacts = append(contacts, &c)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating contacts: %w", err)
	}
	// Close before loading events: in-memory databases have one connection.
	rows.Close()

	for _, c := range contacts {
		if err := r.loadEvents(ctx, c); err != nil {
			return nil, err
		}
	}
	return contacts, nil
}

func (r *SQLiteContactRepo) loadEvents(ctx context.Context, c *domain.Contact) error {
	var err error
	if c.Meetings, err = r.events.ListByContact(ctx, c.ID, domain.CategoryMeeting); err != nil {
		return err
	}
	if c.SpecialDates, err = r.events.ListByContact(ctx, c.ID, domain.CategorySpecialDate); err != nil {
		return err
	}
	return nil
}

func populateContact(c *domain.Contact, birthday, createdAt, updatedAt string) error {
	var err error
	if c.Birthday, err = domain.ParseDate(birthday); err != nil {
		return fmt.Errorf("parsing birthday: %w", err)
	}
	if c.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return fmt.Errorf("parsing created_at: %w", err)
	}
	if c.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return fmt.Errorf("parsing updated_at: %w", err)
	}
	return nil
}
