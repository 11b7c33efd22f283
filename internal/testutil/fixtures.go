package testutil

import (
	"time"

	"github.com/alexanderramin/friendex/internal/domain"
	"github.com/google/uuid"
)

type ContactOption func(*domain.Contact)

func WithContactID(id string) ContactOption {
	return func(c *domain.Contact) {
		c.ID = id
	}
}

func WithBirthday(d domain.Date) ContactOption {
	return func(c *domain.Contact) {
		c.Birthday = d
	}
}

func WithMeetings(events ...domain.Event) ContactOption {
	return func(c *domain.Contact) {
		c.Meetings = events
	}
}

func WithSpecialDates(events ...domain.Event) ContactOption {
	return func(c *domain.Contact) {
		c.SpecialDates = events
	}
}

// NewTestContact returns a contact born on 1990-01-15 with empty event lists.
func NewTestContact(name string, opts ...ContactOption) *domain.Contact {
	now := time.Now().UTC().Truncate(time.Second)
	c := &domain.Contact{
		ID:           uuid.New().String(),
		Name:         name,
		Birthday:     domain.NewDate(1990, time.January, 15),
		Meetings:     []domain.Event{},
		SpecialDates: []domain.Event{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FixedClock returns a clock that always reports t.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
