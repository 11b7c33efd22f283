package service

import (
	"context"
	"io"

	"github.com/alexanderramin/friendex/internal/domain"
	"github.com/alexanderramin/friendex/internal/storage"
)

type ContactService interface {
	Create(ctx context.Context, c *domain.Contact) error
	GetByID(ctx context.Context, id string) (*domain.Contact, error)
	FindByName(ctx context.Context, name string) ([]*domain.Contact, error)
	List(ctx context.Context) ([]*domain.Contact, error)
	Delete(ctx context.Context, id string) error
	// Resolve accepts a full ID, an ID prefix or a case-insensitive exact name.
	Resolve(ctx context.Context, ref string) (*domain.Contact, error)
}

type EventService interface {
	AddMeeting(ctx context.Context, contactID string, e domain.Event) (*domain.Contact, error)
	AddSpecialDate(ctx context.Context, contactID string, e domain.Event) (*domain.Contact, error)
	// Remove deletes the 1-based index entry of the list as currently displayed.
	Remove(ctx context.Context, contactID string, cat domain.EventCategory, index int) (domain.Event, error)
	Upcoming(ctx context.Context, days int) ([]UpcomingItem, error)
}

// UpcomingKind labels an UpcomingItem.
type UpcomingKind string

const (
	UpcomingBirthday    UpcomingKind = "birthday"
	UpcomingSpecialDate UpcomingKind = "special_date"
)

// UpcomingItem is one birthday or special date inside the look-ahead window.
type UpcomingItem struct {
	ContactID   string
	ContactName string
	Kind        UpcomingKind
	Date        domain.Date
	DaysAway    int
	// Event is nil for birthdays.
	Event domain.Event
}

// ImportResult holds the outcome of a document import.
type ImportResult struct {
	Contacts     []*domain.Contact
	MeetingCount int
	DateCount    int
}

type TransferService interface {
	Export(ctx context.Context, w io.Writer, format storage.Format) (int, error)
	Import(ctx context.Context, r io.Reader, format storage.Format) (*ImportResult, error)
}
