package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/friendex/internal/db"
	"github.com/alexanderramin/friendex/internal/domain"
	"github.com/alexanderramin/friendex/internal/repository"
	"github.com/alexanderramin/friendex/internal/storage"
	"github.com/google/uuid"
)

type transferService struct {
	contacts repository.ContactRepo
	uow      db.UnitOfWork
	codec    *storage.Codec
	clock    Clock
	observer UseCaseObserver
}

func NewTransferService(
	contacts repository.ContactRepo,
	uow db.UnitOfWork,
	codec *storage.Codec,
	clock Clock,
	observers ...UseCaseObserver,
) TransferService {
	if codec == nil {
		codec = storage.NewCodec(nil)
	}
	return &transferService{
		contacts: contacts,
		uow:      uow,
		codec:    codec,
		clock:    clockOrDefault(clock),
		observer: useCaseObserverOrNoop(observers),
	}
}

// Export writes every contact to w and returns how many were written.
func (s *transferService) Export(ctx context.Context, w io.Writer, format storage.Format) (n int, err error) {
	fields := map[string]any{"format": string(format)}
	defer observe(ctx, s.observer, "export", time.Now(), fields, &err)

	today := domain.DateOf(s.clock())
	contacts, err := s.contacts.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("exporting: %w", err)
	}
	contacts = sortAll(contacts, today)
	if err = s.codec.EncodeDocument(w, contacts, format, today); err != nil {
		return 0, fmt.Errorf("exporting: %w", err)
	}
	fields["contact_count"] = len(contacts)
	return len(contacts), nil
}

// Import decodes the whole document before writing anything, then inserts
// every contact in a single transaction. A record without an ID gets a new one;
// a record whose ID already exists aborts the import.
func (s *transferService) Import(ctx context.Context, r io.Reader, format storage.Format) (result *ImportResult, err error) {
	fields := map[string]any{"format": string(format)}
	defer observe(ctx, s.observer, "import", time.Now(), fields, &err)

	if format == storage.FormatICS {
		return nil, fmt.Errorf("importing %s: %w", format, ErrUnsupportedFormat)
	}

	now := s.clock()
	today := domain.DateOf(now)
	contacts, err := s.codec.DecodeDocument(r, format, today)
	if err != nil {
		return nil, fmt.Errorf("importing: %w", err)
	}

	result = &ImportResult{Contacts: contacts}
	seen := make(map[string]bool, len(contacts))
	for _, c := range contacts {
		if c.ID == "" {
			c.ID = uuid.New().String()
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("importing: duplicate contact id %s: %w", c.ID, ErrInvalidInput)
		}
		seen[c.ID] = true
		if c.Birthday.After(today) {
			return nil, fmt.Errorf("importing %s: birthday %s: %w", c.Name, c.Birthday, ErrDateAfterToday)
		}
		c.CreatedAt = now.UTC()
		c.UpdatedAt = now.UTC()
		result.MeetingCount += len(c.Meetings)
		result.DateCount += len(c.SpecialDates)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txContacts, _ := repository.BindTx(s.contacts, tx)
		for _, c := range contacts {
			if _, err := txContacts.GetByID(ctx, c.ID); err == nil {
				return fmt.Errorf("contact %s already exists: %w", c.ID, ErrInvalidInput)
			} else if !errors.Is(err, repository.ErrNotFound) {
				return err
			}
			if err := txContacts.Create(ctx, c); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("importing: %w", err)
	}
	fields["contact_count"] = len(contacts)
	return result, nil
}
