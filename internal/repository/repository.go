package repository

import (
	"context"

	"carrental-backend/internal/domain"
)

type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id domain.Identity) (*domain.Account, error)
	Update(ctx context.Context, account *domain.Account) error
	Exists(ctx context.Context, id domain.Identity) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type ItemRepository interface {
	// Create assigns the next sequential identifier (starting at 1) and
	// stores the item. Identifiers are never reused.
	Create(ctx context.Context, item *domain.Item) error
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
	Update(ctx context.Context, item *domain.Item) error
	ListByStatus(ctx context.Context, status domain.ItemStatus) ([]domain.Item, error)
	// Count returns the highest assigned identifier.
	Count(ctx context.Context) (int64, error)
}

type TreasuryRepository interface {
	Balance(ctx context.Context) (int64, error)
	// Add applies a signed delta to the collected total.
	Add(ctx context.Context, delta int64) error
}

type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	// List returns the most recent events, newest first.
	List(ctx context.Context, limit int) ([]domain.Event, error)
}
