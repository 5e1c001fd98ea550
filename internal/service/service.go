// Package service implements the ledger core: accounts, catalog, rentals,
// treasury, and ownership. The core is single-writer: the transport layer
// runs one call to completion before the next begins, so the services do no
// locking of their own. Every operation either fully applies or fully fails
// with no partial state. Withdrawals debit internal state before invoking
// the external transfer so a reentrant call arriving inside the transfer
// step observes the reduced balance.
package service

import (
	"context"

	"carrental-backend/internal/domain"
)

type AccountService interface {
	Register(ctx context.Context, id domain.Identity, name, surname string) error
	Deposit(ctx context.Context, id domain.Identity, amountCents int64) error
	ClearDebt(ctx context.Context, id domain.Identity) error
	Withdraw(ctx context.Context, id domain.Identity, amountCents int64) error
	IsRegistered(ctx context.Context, id domain.Identity) (bool, error)
	Get(ctx context.Context, id domain.Identity) (*domain.Account, error)
}

type CatalogService interface {
	Add(ctx context.Context, caller domain.Identity, name, imageURL string, rentRateCents, saleRateCents int64) (int64, error)
	EditMetadata(ctx context.Context, caller domain.Identity, id int64, name, imageURL string, rentRateCents, saleRateCents int64) error
	EditStatus(ctx context.Context, caller domain.Identity, id int64, status domain.ItemStatus) error
	Get(ctx context.Context, id int64) (*domain.Item, error)
	ListByStatus(ctx context.Context, status domain.ItemStatus) ([]domain.Item, error)
	Count(ctx context.Context) (int64, error)
}

type RentalService interface {
	Checkout(ctx context.Context, id domain.Identity, itemID int64, now int64) error
	CheckIn(ctx context.Context, id domain.Identity, now int64) error
}

type TreasuryService interface {
	Withdraw(ctx context.Context, caller domain.Identity, amountCents int64) error
	Balance(ctx context.Context, caller domain.Identity) (int64, error)
	TotalCollected(ctx context.Context, caller domain.Identity) (int64, error)
}

type OwnershipService interface {
	Owner(ctx context.Context) domain.Identity
	Transfer(ctx context.Context, caller, newOwner domain.Identity) error
	RequireOwner(caller domain.Identity) error
}

type EventService interface {
	// Record emits one notification for a state-changing operation.
	// It never fails; delivery problems are logged and dropped.
	Record(ctx context.Context, typ domain.EventType, actor domain.Identity, attrs map[string]string)
	// List returns recent events, newest first. The caller gates access.
	List(ctx context.Context, limit int) ([]domain.Event, error)
}

// FundsTransferrer is the external value-transfer primitive. A failed
// transfer rolls back the internal debit that preceded it.
type FundsTransferrer interface {
	Transfer(ctx context.Context, to domain.Identity, amountCents int64) error
}

// Clock supplies the timestamp (unix seconds) handed to checkout and
// check-in. The core treats it as an opaque non-negative input.
type Clock func() int64
