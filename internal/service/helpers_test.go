package service_test

import (
	"context"
	"testing"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository/memory"
	"carrental-backend/internal/service"
)

const ownerID = domain.Identity("owner-1")

// stubTransfer stands in for the external value-transfer primitive. The
// hook, when set, runs synchronously inside the transfer step, in the same
// position a hostile reentrant callback would occupy.
type stubTransfer struct {
	err   error
	calls int
	hook  func(ctx context.Context, to domain.Identity, amountCents int64) error
}

func (s *stubTransfer) Transfer(ctx context.Context, to domain.Identity, amountCents int64) error {
	s.calls++
	if s.hook != nil {
		return s.hook(ctx, to, amountCents)
	}
	return s.err
}

type core struct {
	store    *memory.Store
	transfer *stubTransfer
	events   service.EventService
	owners   service.OwnershipService
	accounts service.AccountService
	catalog  service.CatalogService
	rentals  service.RentalService
	treasury service.TreasuryService
}

func newCore(t *testing.T) *core {
	t.Helper()

	store := memory.NewStore(100)
	transfer := &stubTransfer{}
	events := service.NewEventService(store.EventRepository)
	owners := service.NewOwnershipService(ownerID, events)

	return &core{
		store:    store,
		transfer: transfer,
		events:   events,
		owners:   owners,
		accounts: service.NewAccountService(store.AccountRepository, store.TreasuryRepository, transfer, events),
		catalog:  service.NewCatalogService(store.ItemRepository, owners, events),
		rentals:  service.NewRentalService(store.AccountRepository, store.ItemRepository, events),
		treasury: service.NewTreasuryService(store.TreasuryRepository, owners, transfer, events),
	}
}

// mustRegister creates an account with the given starting balance.
func (c *core) mustRegister(t *testing.T, id domain.Identity, balanceCents int64) {
	t.Helper()
	ctx := context.Background()
	if err := c.accounts.Register(ctx, id, "Test", "User"); err != nil {
		t.Fatalf("register %s: %v", id, err)
	}
	if balanceCents > 0 {
		if err := c.accounts.Deposit(ctx, id, balanceCents); err != nil {
			t.Fatalf("deposit for %s: %v", id, err)
		}
	}
}

// mustAddItem adds a catalog item as the owner and returns its identifier.
func (c *core) mustAddItem(t *testing.T, name string, rentRateCents int64) int64 {
	t.Helper()
	id, err := c.catalog.Add(context.Background(), ownerID, name, "https://img.example/"+name, rentRateCents, 0)
	if err != nil {
		t.Fatalf("add item %s: %v", name, err)
	}
	return id
}

// assertInvariants checks the per-account invariants that must hold after
// every operation.
func assertInvariants(t *testing.T, c *core, id domain.Identity) {
	t.Helper()
	account, err := c.accounts.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("get %s: %v", id, err)
	}
	if account.BalanceCents < 0 {
		t.Fatalf("account %s has negative balance %d", id, account.BalanceCents)
	}
	if account.DebtCents < 0 {
		t.Fatalf("account %s has negative debt %d", id, account.DebtCents)
	}
	// RentalStart is meaningful only while renting and cleared otherwise.
	// A start of zero is a legal clock reading, so only the cleared side
	// is checkable.
	if account.ActiveRental == domain.NoItem && account.RentalStart != 0 {
		t.Fatalf("account %s has rental start %d without an active rental", id, account.RentalStart)
	}
}
