package service

import (
	"context"
	"fmt"
	"strconv"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type accountService struct {
	accountRepo  repository.AccountRepository
	treasuryRepo repository.TreasuryRepository
	transfer     FundsTransferrer
	events       EventService
}

func NewAccountService(
	accountRepo repository.AccountRepository,
	treasuryRepo repository.TreasuryRepository,
	transfer FundsTransferrer,
	events EventService,
) AccountService {
	return &accountService{
		accountRepo:  accountRepo,
		treasuryRepo: treasuryRepo,
		transfer:     transfer,
		events:       events,
	}
}

func (s *accountService) Register(ctx context.Context, id domain.Identity, name, surname string) error {
	exists, err := s.accountRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrAlreadyRegistered
	}

	account := &domain.Account{
		ID:      id,
		Name:    name,
		Surname: surname,
	}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		return err
	}

	s.events.Record(ctx, domain.EventAccountRegistered, id, map[string]string{
		"name":    name,
		"surname": surname,
	})
	return nil
}

func (s *accountService) Deposit(ctx context.Context, id domain.Identity, amountCents int64) error {
	if amountCents < 0 {
		return domain.ErrInvalidAmount
	}
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	account.BalanceCents += amountCents
	if err := s.accountRepo.Update(ctx, account); err != nil {
		return err
	}

	s.events.Record(ctx, domain.EventDeposited, id, map[string]string{
		"amount_cents": strconv.FormatInt(amountCents, 10),
	})
	return nil
}

func (s *accountService) ClearDebt(ctx context.Context, id domain.Identity) error {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if account.DebtCents == 0 {
		return domain.ErrNoDebt
	}
	if account.BalanceCents < account.DebtCents {
		return domain.ErrInsufficientBalance
	}

	cleared := account.DebtCents
	account.BalanceCents -= cleared
	account.DebtCents = 0
	if err := s.accountRepo.Update(ctx, account); err != nil {
		return err
	}
	if err := s.treasuryRepo.Add(ctx, cleared); err != nil {
		return err
	}

	s.events.Record(ctx, domain.EventPaymentCleared, id, map[string]string{
		"amount_cents": strconv.FormatInt(cleared, 10),
	})
	return nil
}

func (s *accountService) Withdraw(ctx context.Context, id domain.Identity, amountCents int64) error {
	if amountCents < 0 {
		return domain.ErrInvalidAmount
	}
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if account.BalanceCents < amountCents {
		return domain.ErrInsufficientBalance
	}

	// Debit before the transfer goes out: a hostile transfer step that
	// re-enters Withdraw observes the reduced balance and is rejected.
	account.BalanceCents -= amountCents
	if err := s.accountRepo.Update(ctx, account); err != nil {
		return err
	}

	if err := s.transfer.Transfer(ctx, id, amountCents); err != nil {
		// Roll back the debit; the account may have been mutated by a
		// reentrant call, so re-read rather than reusing the snapshot.
		current, getErr := s.accountRepo.GetByID(ctx, id)
		if getErr != nil {
			return fmt.Errorf("%w: rollback failed: %v", domain.ErrTransferFailed, getErr)
		}
		current.BalanceCents += amountCents
		if updErr := s.accountRepo.Update(ctx, current); updErr != nil {
			return fmt.Errorf("%w: rollback failed: %v", domain.ErrTransferFailed, updErr)
		}
		return fmt.Errorf("%w: %v", domain.ErrTransferFailed, err)
	}

	s.events.Record(ctx, domain.EventBalanceWithdrawn, id, map[string]string{
		"amount_cents": strconv.FormatInt(amountCents, 10),
	})
	return nil
}

func (s *accountService) IsRegistered(ctx context.Context, id domain.Identity) (bool, error) {
	return s.accountRepo.Exists(ctx, id)
}

func (s *accountService) Get(ctx context.Context, id domain.Identity) (*domain.Account, error) {
	return s.accountRepo.GetByID(ctx, id)
}
