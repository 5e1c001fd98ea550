package memory

import (
	"context"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type itemRepository struct {
	items  map[int64]domain.Item
	lastID int64
}

func NewItemRepository() repository.ItemRepository {
	return &itemRepository{
		items: make(map[int64]domain.Item),
	}
}

func (r *itemRepository) Create(_ context.Context, item *domain.Item) error {
	// Identifier 0 stays reserved as the "no item" sentinel.
	r.lastID++
	item.ID = r.lastID
	r.items[item.ID] = *item
	return nil
}

func (r *itemRepository) GetByID(_ context.Context, id int64) (*domain.Item, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, domain.ErrUnknownItem
	}
	return &item, nil
}

func (r *itemRepository) Update(_ context.Context, item *domain.Item) error {
	if _, ok := r.items[item.ID]; !ok {
		return domain.ErrUnknownItem
	}
	r.items[item.ID] = *item
	return nil
}

// ListByStatus walks identifiers in ascending order; the result is computed
// fresh on every call.
func (r *itemRepository) ListByStatus(_ context.Context, status domain.ItemStatus) ([]domain.Item, error) {
	matches := make([]domain.Item, 0)
	for id := int64(1); id <= r.lastID; id++ {
		if item, ok := r.items[id]; ok && item.Status == status {
			matches = append(matches, item)
		}
	}
	return matches, nil
}

func (r *itemRepository) Count(_ context.Context) (int64, error) {
	return r.lastID, nil
}
