package memory

import (
	"context"

	"carrental-backend/internal/repository"
)

type treasuryRepository struct {
	collectedCents int64
}

func NewTreasuryRepository() repository.TreasuryRepository {
	return &treasuryRepository{}
}

func (r *treasuryRepository) Balance(_ context.Context) (int64, error) {
	return r.collectedCents, nil
}

func (r *treasuryRepository) Add(_ context.Context, delta int64) error {
	r.collectedCents += delta
	return nil
}
