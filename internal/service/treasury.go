package service

import (
	"context"
	"fmt"
	"strconv"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type treasuryService struct {
	treasuryRepo repository.TreasuryRepository
	owners       OwnershipService
	transfer     FundsTransferrer
	events       EventService
}

func NewTreasuryService(
	treasuryRepo repository.TreasuryRepository,
	owners OwnershipService,
	transfer FundsTransferrer,
	events EventService,
) TreasuryService {
	return &treasuryService{
		treasuryRepo: treasuryRepo,
		owners:       owners,
		transfer:     transfer,
		events:       events,
	}
}

func (s *treasuryService) Withdraw(ctx context.Context, caller domain.Identity, amountCents int64) error {
	if err := s.owners.RequireOwner(caller); err != nil {
		return err
	}
	if amountCents < 0 {
		return domain.ErrInvalidAmount
	}

	collected, err := s.treasuryRepo.Balance(ctx)
	if err != nil {
		return err
	}
	if collected < amountCents {
		return domain.ErrInsufficientFunds
	}

	// Same ordering as account withdrawal: debit first, so a reentrant
	// call inside the transfer step sees the reduced total.
	if err := s.treasuryRepo.Add(ctx, -amountCents); err != nil {
		return err
	}

	if err := s.transfer.Transfer(ctx, caller, amountCents); err != nil {
		if addErr := s.treasuryRepo.Add(ctx, amountCents); addErr != nil {
			return fmt.Errorf("%w: rollback failed: %v", domain.ErrTransferFailed, addErr)
		}
		return fmt.Errorf("%w: %v", domain.ErrTransferFailed, err)
	}

	s.events.Record(ctx, domain.EventTreasuryWithdrawn, caller, map[string]string{
		"amount_cents": strconv.FormatInt(amountCents, 10),
	})
	return nil
}

func (s *treasuryService) Balance(ctx context.Context, caller domain.Identity) (int64, error) {
	if err := s.owners.RequireOwner(caller); err != nil {
		return 0, err
	}
	return s.treasuryRepo.Balance(ctx)
}

func (s *treasuryService) TotalCollected(ctx context.Context, caller domain.Identity) (int64, error) {
	if err := s.owners.RequireOwner(caller); err != nil {
		return 0, err
	}
	return s.treasuryRepo.Balance(ctx)
}
