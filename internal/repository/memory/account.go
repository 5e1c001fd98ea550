package memory

import (
	"context"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type accountRepository struct {
	accounts map[domain.Identity]domain.Account
}

func NewAccountRepository() repository.AccountRepository {
	return &accountRepository{
		accounts: make(map[domain.Identity]domain.Account),
	}
}

func (r *accountRepository) Create(_ context.Context, a *domain.Account) error {
	if _, ok := r.accounts[a.ID]; ok {
		return domain.ErrAlreadyRegistered
	}
	r.accounts[a.ID] = *a
	return nil
}

// GetByID returns a copy; callers persist changes through Update.
func (r *accountRepository) GetByID(_ context.Context, id domain.Identity) (*domain.Account, error) {
	a, ok := r.accounts[id]
	if !ok {
		return nil, domain.ErrUnknownAccount
	}
	return &a, nil
}

func (r *accountRepository) Update(_ context.Context, a *domain.Account) error {
	if _, ok := r.accounts[a.ID]; !ok {
		return domain.ErrUnknownAccount
	}
	r.accounts[a.ID] = *a
	return nil
}

func (r *accountRepository) Exists(_ context.Context, id domain.Identity) (bool, error) {
	_, ok := r.accounts[id]
	return ok, nil
}

func (r *accountRepository) Count(_ context.Context) (int64, error) {
	return int64(len(r.accounts)), nil
}
