package service

import (
	"context"
	"strconv"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/pricing"
	"carrental-backend/internal/repository"
)

type rentalService struct {
	accountRepo repository.AccountRepository
	itemRepo    repository.ItemRepository
	events      EventService
}

// NewRentalService builds the coordinator that mutates account and item
// state as one unit. All preconditions are checked before the first write,
// so a failed checkout or check-in leaves no partial effect.
func NewRentalService(accountRepo repository.AccountRepository, itemRepo repository.ItemRepository, events EventService) RentalService {
	return &rentalService{
		accountRepo: accountRepo,
		itemRepo:    itemRepo,
		events:      events,
	}
}

func (s *rentalService) Checkout(ctx context.Context, id domain.Identity, itemID int64, now int64) error {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	if item.Status != domain.ItemStatusAvailable {
		return domain.ErrItemNotAvailable
	}
	if account.Renting() {
		return domain.ErrAlreadyRenting
	}
	if account.DebtCents > 0 {
		return domain.ErrOutstandingDebt
	}

	account.ActiveRental = itemID
	account.RentalStart = now
	item.Status = domain.ItemStatusInUse
	if err := s.accountRepo.Update(ctx, account); err != nil {
		return err
	}
	if err := s.itemRepo.Update(ctx, item); err != nil {
		return err
	}

	s.events.Record(ctx, domain.EventCheckedOut, id, map[string]string{
		"item_id": strconv.FormatInt(itemID, 10),
		"at":      strconv.FormatInt(now, 10),
	})
	return nil
}

func (s *rentalService) CheckIn(ctx context.Context, id domain.Identity, now int64) error {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !account.Renting() {
		return domain.ErrNoActiveRental
	}
	// A clock reading behind the rental start would make elapsed time
	// negative; fail and let the caller retry once the clock catches up.
	if now < account.RentalStart {
		return domain.ErrClockRegression
	}
	item, err := s.itemRepo.GetByID(ctx, account.ActiveRental)
	if err != nil {
		return err
	}

	owed := pricing.DebtOwed(now-account.RentalStart, item.RentRateCents)
	itemID := account.ActiveRental

	account.DebtCents += owed
	account.ActiveRental = domain.NoItem
	account.RentalStart = 0
	item.Status = domain.ItemStatusAvailable
	if err := s.accountRepo.Update(ctx, account); err != nil {
		return err
	}
	if err := s.itemRepo.Update(ctx, item); err != nil {
		return err
	}

	s.events.Record(ctx, domain.EventCheckedIn, id, map[string]string{
		"item_id":    strconv.FormatInt(itemID, 10),
		"at":         strconv.FormatInt(now, 10),
		"debt_cents": strconv.FormatInt(owed, 10),
	})
	return nil
}
