package repository

import (
	"context"

	"github.com/alexanderramin/friendex/internal/domain"
)

// ContactRepo persists contacts together with their event lists.
type ContactRepo interface {
	Create(ctx context.Context, c *domain.Contact) error
	GetByID(ctx context.Context, id string) (*domain.Contact, error)
	FindByIDPrefix(ctx context.Context, prefix string) ([]*domain.Contact, error)
	FindByName(ctx context.Context, name string) ([]*domain.Contact, error)
	List(ctx context.Context) ([]*domain.Contact, error)
	Delete(ctx context.Context, id string) error
}

// EventRepo stores one contact's event list per category, in list order.
type EventRepo interface {
	ListByContact(ctx context.Context, contactID string, cat domain.EventCategory) ([]domain.Event, error)
	Replace(ctx context.Context, contactID string, cat domain.EventCategory, events []domain.Event) error
}
