package service

import (
	"context"

	"carrental-backend/internal/domain"
)

type ownershipService struct {
	owner  domain.Identity
	events EventService
}

// NewOwnershipService seeds ownership with the identity that started the
// system. Only the current holder can transfer it.
func NewOwnershipService(initial domain.Identity, events EventService) OwnershipService {
	return &ownershipService{
		owner:  initial,
		events: events,
	}
}

func (s *ownershipService) Owner(_ context.Context) domain.Identity {
	return s.owner
}

func (s *ownershipService) RequireOwner(caller domain.Identity) error {
	if caller != s.owner {
		return domain.ErrNotAuthorized
	}
	return nil
}

func (s *ownershipService) Transfer(ctx context.Context, caller, newOwner domain.Identity) error {
	if err := s.RequireOwner(caller); err != nil {
		return err
	}
	s.owner = newOwner

	s.events.Record(ctx, domain.EventOwnerChanged, caller, map[string]string{
		"new_owner": string(newOwner),
	})
	return nil
}
