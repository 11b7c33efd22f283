package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/friendex/internal/domain"
	"github.com/alexanderramin/friendex/internal/repository"
	"github.com/google/uuid"
)

type contactService struct {
	contacts repository.ContactRepo
	clock    Clock
	observer UseCaseObserver
}

func NewContactService(contacts repository.ContactRepo, clock Clock, observers ...UseCaseObserver) ContactService {
	return &contactService{
		contacts: contacts,
		clock:    clockOrDefault(clock),
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *contactService) Create(ctx context.Context, c *domain.Contact) (err error) {
	now := s.clock()
	defer observe(ctx, s.observer, "create-contact", time.Now(), map[string]any{"name": c.Name}, &err)

	c.Name = strings.TrimSpace(c.Name)
	if err = c.Validate(); err != nil {
		return fmt.Errorf("creating contact: %w: %v", ErrInvalidInput, err)
	}
	if c.Birthday.After(domain.DateOf(now)) {
		return fmt.Errorf("creating contact: birthday %s: %w", c.Birthday, ErrDateAfterToday)
	}
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.Meetings == nil {
		c.Meetings = []domain.Event{}
	}
	if c.SpecialDates == nil {
		c.SpecialDates = []domain.Event{}
	}
	c.CreatedAt = now.UTC()
	c.UpdatedAt = now.UTC()
	return s.contacts.Create(ctx, c)
}

func (s *contactService) GetByID(ctx context.Context, id string) (*domain.Contact, error) {
	c, err := s.contacts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return sortedContact(c, domain.DateOf(s.clock())), nil
}

func (s *contactService) FindByName(ctx context.Context, name string) ([]*domain.Contact, error) {
	found, err := s.contacts.FindByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, err
	}
	return sortAll(found, domain.DateOf(s.clock())), nil
}

func (s *contactService) List(ctx context.Context) ([]*domain.Contact, error) {
	all, err := s.contacts.List(ctx)
	if err != nil {
		return nil, err
	}
	return sortAll(all, domain.DateOf(s.clock())), nil
}

func (s *contactService) Delete(ctx context.Context, id string) (err error) {
	defer observe(ctx, s.observer, "delete-contact", time.Now(), map[string]any{"contact_id": id}, &err)
	return s.contacts.Delete(ctx, id)
}

func (s *contactService) Resolve(ctx context.Context, ref string) (*domain.Contact, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, fmt.Errorf("contact reference is required: %w", ErrInvalidInput)
	}

	c, err := s.GetByID(ctx, ref)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	byName, err := s.FindByName(ctx, ref)
	if err != nil {
		return nil, err
	}
	if match, err := single(ref, byName); match != nil || err != nil {
		return match, err
	}

	byPrefix, err := s.contacts.FindByIDPrefix(ctx, ref)
	if err != nil {
		return nil, err
	}
	match, err := single(ref, byPrefix)
	if err != nil {
		return nil, err
	}
	if match == nil {
		return nil, fmt.Errorf("contact %q: %w", ref, repository.ErrNotFound)
	}
	return sortedContact(match, domain.DateOf(s.clock())), nil
}

// single returns the only element of found, nil when found is empty, and
// ErrAmbiguousRef otherwise.
func single(ref string, found []*domain.Contact) (*domain.Contact, error) {
	switch len(found) {
	case 0:
		return nil, nil
	case 1:
		return found[0], nil
	default:
		ids := make([]string, 0, len(found))
		for _, c := range found {
			ids = append(ids, c.DisplayID())
		}
		return nil, fmt.Errorf("%q (%s): %w", ref, strings.Join(ids, ", "), ErrAmbiguousRef)
	}
}

func sortAll(contacts []*domain.Contact, today domain.Date) []*domain.Contact {
	out := make([]*domain.Contact, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, sortedContact(c, today))
	}
	return out
}
