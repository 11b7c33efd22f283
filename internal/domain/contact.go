package domain

import (
	"fmt"
	"strings"
	"time"
)

// EventCategory distinguishes the two event lists a contact owns.
type EventCategory string

const (
	CategoryMeeting     EventCategory = "meeting"
	CategorySpecialDate EventCategory = "special_date"
)

type Contact struct {
	ID           string
	Name         string
	Birthday     Date
	Meetings     []Event
	SpecialDates []Event
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate checks the fields every stored contact must have.
func (c *Contact) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("contact name is required")
	}
	if c.Birthday.IsZero() {
		return fmt.Errorf("contact birthday is required")
	}
	return nil
}

// Events returns the list for the given category.
func (c *Contact) Events(cat EventCategory) []Event {
	if cat == CategoryMeeting {
		return c.Meetings
	}
	return c.SpecialDates
}

// SetEvents replaces the list for the given category.
func (c *Contact) SetEvents(cat EventCategory, events []Event) {
	if cat == CategoryMeeting {
		c.Meetings = events
		return
	}
	c.SpecialDates = events
}

// NextBirthday returns the first anniversary of the birthday on or after now.
// A Feb 29 birthday falls on Feb 28 in common years.
func (c *Contact) NextBirthday(now Date) Date {
	candidate := c.Birthday.AddMonths(12 * (now.Year - c.Birthday.Year))
	if candidate.Before(now) {
		candidate = c.Birthday.AddMonths(12 * (now.Year + 1 - c.Birthday.Year))
	}
	return candidate
}

// DisplayID returns the first 8 characters of ID.
func (c *Contact) DisplayID() string {
	if len(c.ID) >= 8 {
		return c.ID[:8]
	}
	return c.ID
}
