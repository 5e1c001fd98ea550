package memory

import (
	"context"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type eventRepository struct {
	events []domain.Event
	limit  int
}

// NewEventRepository keeps at most limit events, discarding the oldest.
func NewEventRepository(limit int) repository.EventRepository {
	if limit <= 0 {
		limit = 1000
	}
	return &eventRepository{limit: limit}
}

func (r *eventRepository) Create(_ context.Context, e *domain.Event) error {
	r.events = append(r.events, *e)
	if len(r.events) > r.limit {
		r.events = r.events[len(r.events)-r.limit:]
	}
	return nil
}

func (r *eventRepository) List(_ context.Context, limit int) ([]domain.Event, error) {
	if limit <= 0 || limit > len(r.events) {
		limit = len(r.events)
	}
	out := make([]domain.Event, 0, limit)
	for i := len(r.events) - 1; i >= len(r.events)-limit; i-- {
		out = append(out, r.events[i])
	}
	return out, nil
}
