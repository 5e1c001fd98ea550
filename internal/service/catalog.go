package service

import (
	"context"
	"strconv"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type catalogService struct {
	itemRepo repository.ItemRepository
	owners   OwnershipService
	events   EventService
}

func NewCatalogService(itemRepo repository.ItemRepository, owners OwnershipService, events EventService) CatalogService {
	return &catalogService{
		itemRepo: itemRepo,
		owners:   owners,
		events:   events,
	}
}

func (s *catalogService) Add(ctx context.Context, caller domain.Identity, name, imageURL string, rentRateCents, saleRateCents int64) (int64, error) {
	if err := s.owners.RequireOwner(caller); err != nil {
		return domain.NoItem, err
	}
	if rentRateCents < 0 || saleRateCents < 0 {
		return domain.NoItem, domain.ErrInvalidAmount
	}

	item := &domain.Item{
		Name:          name,
		ImageURL:      imageURL,
		RentRateCents: rentRateCents,
		SaleRateCents: saleRateCents,
		Status:        domain.ItemStatusAvailable,
	}
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return domain.NoItem, err
	}

	s.events.Record(ctx, domain.EventItemAdded, caller, map[string]string{
		"item_id": strconv.FormatInt(item.ID, 10),
		"name":    name,
	})
	return item.ID, nil
}

// EditMetadata replaces only the fields with non-zero values; empty strings
// and zero rates mean "leave unchanged".
func (s *catalogService) EditMetadata(ctx context.Context, caller domain.Identity, id int64, name, imageURL string, rentRateCents, saleRateCents int64) error {
	if err := s.owners.RequireOwner(caller); err != nil {
		return err
	}
	if rentRateCents < 0 || saleRateCents < 0 {
		return domain.ErrInvalidAmount
	}

	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if name != "" {
		item.Name = name
	}
	if imageURL != "" {
		item.ImageURL = imageURL
	}
	if rentRateCents != 0 {
		item.RentRateCents = rentRateCents
	}
	if saleRateCents != 0 {
		item.SaleRateCents = saleRateCents
	}
	if err := s.itemRepo.Update(ctx, item); err != nil {
		return err
	}

	s.events.Record(ctx, domain.EventItemMetadataEdited, caller, map[string]string{
		"item_id": strconv.FormatInt(id, 10),
	})
	return nil
}

// EditStatus overwrites the status without transition validation. The owner
// can force any status, including retiring an item that is currently rented;
// check-in still releases such an item back to Available.
func (s *catalogService) EditStatus(ctx context.Context, caller domain.Identity, id int64, status domain.ItemStatus) error {
	if err := s.owners.RequireOwner(caller); err != nil {
		return err
	}
	if !domain.ValidItemStatus(status) {
		return domain.ErrInvalidStatus
	}

	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	item.Status = status
	if err := s.itemRepo.Update(ctx, item); err != nil {
		return err
	}

	s.events.Record(ctx, domain.EventItemStatusEdited, caller, map[string]string{
		"item_id": strconv.FormatInt(id, 10),
		"status":  string(status),
	})
	return nil
}

func (s *catalogService) Get(ctx context.Context, id int64) (*domain.Item, error) {
	return s.itemRepo.GetByID(ctx, id)
}

func (s *catalogService) ListByStatus(ctx context.Context, status domain.ItemStatus) ([]domain.Item, error) {
	return s.itemRepo.ListByStatus(ctx, status)
}

func (s *catalogService) Count(ctx context.Context) (int64, error) {
	return s.itemRepo.Count(ctx)
}
