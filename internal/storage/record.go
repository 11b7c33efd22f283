package storage

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/friendex/internal/domain"
)

var (
	ErrMissingField        = errors.New("required field is missing")
	ErrMalformedField      = errors.New("field is malformed")
	ErrUnknownRecurrence   = errors.New("unknown recurrence kind")
	ErrEventBeforeBirthday = errors.New("event date is before the birthday")
)

// EventRecord is the flat, persisted shape of one event. Pointer fields
// distinguish "absent" from "empty" so decoding can reject missing fields.
type EventRecord struct {
	Date           *string `json:"date" yaml:"date"`
	Time           *string `json:"time,omitempty" yaml:"time,omitempty"`
	Description    *string `json:"description" yaml:"description"`
	RecurrenceKind *string `json:"recurrence_kind" yaml:"recurrence_kind"`
}

// EncodeEvent flattens e. Recurring events store their seed, never a resolved date.
func EncodeEvent(e domain.Event) EventRecord {
	date := domain.SeedDate(e).String()
	desc := e.Summary()
	kind := string(domain.RecurrenceOf(e))
	rec := EventRecord{Date: &date, Description: &desc, RecurrenceKind: &kind}
	if t := e.TimeOfDay(); t.Valid {
		s := t.String()
		rec.Time = &s
	}
	return rec
}

// DecodeEvent is the inverse of EncodeEvent.
func DecodeEvent(rec EventRecord) (domain.Event, error) {
	if rec.Date == nil {
		return nil, fmt.Errorf("event date: %w", ErrMissingField)
	}
	if rec.Description == nil {
		return nil, fmt.Errorf("event description: %w", ErrMissingField)
	}
	if rec.RecurrenceKind == nil {
		return nil, fmt.Errorf("event recurrence_kind: %w", ErrMissingField)
	}

	date, err := domain.ParseDate(*rec.Date)
	if err != nil {
		return nil, fmt.Errorf("event date: %w: %v", ErrMalformedField, err)
	}

	var tod domain.TimeOfDay
	if rec.Time != nil {
		if tod, err = domain.ParseTimeOfDay(*rec.Time); err != nil {
			return nil, fmt.Errorf("event time: %w: %v", ErrMalformedField, err)
		}
	}

	kind, err := domain.ParseRecurrenceKind(*rec.RecurrenceKind)
	if err != nil {
		return nil, fmt.Errorf("event recurrence_kind %q: %w", *rec.RecurrenceKind, ErrUnknownRecurrence)
	}

	return domain.NewEvent(date, tod, *rec.Description, kind), nil
}

func (r EventRecord) String() string {
	return fmt.Sprintf("EventRecord{date=%s, time=%s, description=%s, recurrence_kind=%s}",
		deref(r.Date), deref(r.Time), deref(r.Description), deref(r.RecurrenceKind))
}

func deref(s *string) string {
	if s == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%q", *s)
}
