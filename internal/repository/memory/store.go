// Package memory holds all ledger state in process memory. The service layer
// serializes access; these repositories do no locking of their own.
package memory

import "carrental-backend/internal/repository"

type Store struct {
	repository.AccountRepository
	repository.ItemRepository
	repository.TreasuryRepository
	repository.EventRepository
}

func NewStore(eventHistoryLimit int) *Store {
	return &Store{
		AccountRepository:  NewAccountRepository(),
		ItemRepository:     NewItemRepository(),
		TreasuryRepository: NewTreasuryRepository(),
		EventRepository:    NewEventRepository(eventHistoryLimit),
	}
}
