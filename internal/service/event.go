package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"carrental-backend/internal/api/metrics"
	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository"
)

type eventService struct {
	eventRepo repository.EventRepository
}

// NewEventService builds the notification sink.
func NewEventService(eventRepo repository.EventRepository) EventService {
	return &eventService{eventRepo: eventRepo}
}

func (s *eventService) Record(ctx context.Context, typ domain.EventType, actor domain.Identity, attrs map[string]string) {
	event := &domain.Event{
		ID:         uuid.NewString(),
		Type:       typ,
		Actor:      actor,
		Attributes: attrs,
		EmittedAt:  time.Now().UTC(),
	}

	// Fire-and-forget: a sink failure never fails the operation it records.
	if err := s.eventRepo.Create(ctx, event); err != nil {
		logger.Warn("Failed to record event", "type", typ, "error", err)
		return
	}

	metrics.EventsEmittedTotal.WithLabelValues(string(typ)).Inc()
	logger.Debug("Event emitted", "type", typ, "actor", actor, "event_id", event.ID)
}

func (s *eventService) List(ctx context.Context, limit int) ([]domain.Event, error) {
	return s.eventRepo.List(ctx, limit)
}
