package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/alexanderramin/friendex/internal/db"
	"github.com/alexanderramin/friendex/internal/domain"
	"github.com/alexanderramin/friendex/internal/repository"
)

type eventService struct {
	contacts repository.ContactRepo
	uow      db.UnitOfWork
	clock    Clock
	observer UseCaseObserver
}

func NewEventService(contacts repository.ContactRepo, uow db.UnitOfWork, clock Clock, observers ...UseCaseObserver) EventService {
	return &eventService{
		contacts: contacts,
		uow:      uow,
		clock:    clockOrDefault(clock),
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *eventService) AddMeeting(ctx context.Context, contactID string, e domain.Event) (c *domain.Contact, err error) {
	now := s.clock()
	defer observe(ctx, s.observer, "add-meeting", time.Now(), map[string]any{"contact_id": contactID}, &err)

	if _, ok := e.(domain.RecurringEvent); ok {
		return nil, fmt.Errorf("adding meeting: %w", ErrRecurringMeeting)
	}
	if err = checkEvent(e); err != nil {
		return nil, fmt.Errorf("adding meeting: %w", err)
	}

	today := domain.DateOf(now)
	date := domain.SeedDate(e)
	if date.After(today) {
		return nil, fmt.Errorf("adding meeting on %s: %w", date, ErrDateAfterToday)
	}
	if date == today && e.TimeOfDay().After(domain.ClockOf(now)) {
		return nil, fmt.Errorf("adding meeting at %s: %w", e.TimeOfDay(), ErrTimeAfterNow)
	}

	return s.add(ctx, contactID, domain.CategoryMeeting, e, today)
}

func (s *eventService) AddSpecialDate(ctx context.Context, contactID string, e domain.Event) (c *domain.Contact, err error) {
	now := s.clock()
	defer observe(ctx, s.observer, "add-special-date", time.Now(), map[string]any{
		"contact_id": contactID,
		"recurrence": string(domain.RecurrenceOf(e)),
	}, &err)

	if err = checkEvent(e); err != nil {
		return nil, fmt.Errorf("adding special date: %w", err)
	}
	return s.add(ctx, contactID, domain.CategorySpecialDate, e, domain.DateOf(now))
}

// add inserts e into the contact's list for cat and stores the re-sorted
// list. The birthday check runs inside the transaction against the stored
// contact.
func (s *eventService) add(ctx context.Context, contactID string, cat domain.EventCategory, e domain.Event, today domain.Date) (*domain.Contact, error) {
	var updated *domain.Contact
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		contacts, events := repository.BindTx(s.contacts, tx)

		c, err := contacts.GetByID(ctx, contactID)
		if err != nil {
			return err
		}
		if seed := domain.SeedDate(e); seed.Before(c.Birthday) {
			return fmt.Errorf("%s on %s (birthday %s): %w", cat, seed, c.Birthday, ErrDateBeforeBirthday)
		}

		list := domain.WithEvent(c.Events(cat), e, today)
		if err := events.Replace(ctx, contactID, cat, list); err != nil {
			return err
		}
		c.SetEvents(cat, list)
		updated = sortedContact(c, today)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *eventService) Remove(ctx context.Context, contactID string, cat domain.EventCategory, index int) (removed domain.Event, err error) {
	now := s.clock()
	defer observe(ctx, s.observer, "remove-event", time.Now(), map[string]any{
		"contact_id": contactID,
		"category":   string(cat),
		"index":      index,
	}, &err)

	today := domain.DateOf(now)
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		contacts, events := repository.BindTx(s.contacts, tx)

		c, err := contacts.GetByID(ctx, contactID)
		if err != nil {
			return err
		}
		list := domain.SortByEffectiveDate(c.Events(cat), today)
		if index < 1 || index > len(list) {
			return fmt.Errorf("%s #%d: %w (have %d)", cat, index, ErrInvalidInput, len(list))
		}
		removed = list[index-1]
		return events.Replace(ctx, contactID, cat, domain.WithoutEvent(list, index-1))
	})
	if err != nil {
		return nil, fmt.Errorf("removing %s: %w", cat, err)
	}
	return removed, nil
}

// Upcoming lists birthdays and special dates falling within [today, today+days],
// soonest first.
func (s *eventService) Upcoming(ctx context.Context, days int) ([]UpcomingItem, error) {
	if days < 0 {
		return nil, fmt.Errorf("upcoming days %d: %w", days, ErrInvalidInput)
	}
	today := domain.DateOf(s.clock())
	horizon := today.AddDays(days)

	contacts, err := s.contacts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing upcoming: %w", err)
	}

	var items []UpcomingItem
	within := func(d domain.Date) bool { return !d.Before(today) && !d.After(horizon) }
	for _, c := range contacts {
		if bday := c.NextBirthday(today); within(bday) {
			items = append(items, UpcomingItem{
				ContactID:   c.ID,
				ContactName: c.Name,
				Kind:        UpcomingBirthday,
				Date:        bday,
				DaysAway:    today.DaysBetween(bday),
			})
		}
		for _, e := range c.SpecialDates {
			if d := domain.EffectiveDate(e, today); within(d) {
				items = append(items, UpcomingItem{
					ContactID:   c.ID,
					ContactName: c.Name,
					Kind:        UpcomingSpecialDate,
					Date:        d,
					DaysAway:    today.DaysBetween(d),
					Event:       e,
				})
			}
		}
	}

	slices.SortStableFunc(items, func(a, b UpcomingItem) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		return strings.Compare(strings.ToLower(a.ContactName), strings.ToLower(b.ContactName))
	})
	return items, nil
}

func checkEvent(e domain.Event) error {
	if e == nil {
		return fmt.Errorf("event is required: %w", ErrInvalidInput)
	}
	if strings.TrimSpace(e.Summary()) == "" {
		return fmt.Errorf("description is required: %w", ErrInvalidInput)
	}
	if domain.SeedDate(e).IsZero() {
		return fmt.Errorf("date is required: %w", ErrInvalidInput)
	}
	return nil
}
