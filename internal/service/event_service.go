package service

import (
	"context"
	"encoding/json"

	"github.com/sereneHealth/web-api/internal/cache"
	"github.com/sereneHealth/web-api/internal/model"
	"github.com/sereneHealth/web-api/internal/repository"
)

const eventListCacheKey = "events:all"

// EventInput carries the editable fields of an event.
type EventInput struct {
	Title       string
	Venue       string
	Description string
	Author      string
	Image       string
}

// EventService handles event operations.
type EventService interface {
	Create(ctx context.Context, userID uint, input EventInput) (*model.Event, error)
	List(ctx context.Context) ([]model.Event, error)
	Get(ctx context.Context, id uint) (*model.Event, error)
	Update(ctx context.Context, id uint, input EventInput) error
	Delete(ctx context.Context, id uint) error
}

type eventService struct {
	eventRepo repository.EventRepository
	cache     *cache.Client
}

// NewEventService creates a new event service.
func NewEventService(eventRepo repository.EventRepository, cache *cache.Client) EventService {
	return &eventService{
		eventRepo: eventRepo,
		cache:     cache,
	}
}

func (s *eventService) Create(ctx context.Context, userID uint, input EventInput) (*model.Event, error) {
	event := &model.Event{
		UserID:      userID,
		Title:       input.Title,
		Venue:       input.Venue,
		Description: input.Description,
		Author:      input.Author,
		Image:       input.Image,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, eventListCacheKey)
	return event, nil
}

func (s *eventService) List(ctx context.Context) ([]model.Event, error) {
	if data, _ := s.cache.Get(ctx, eventListCacheKey); data != nil {
		var cached []model.Event
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(events); err == nil {
		_ = s.cache.Set(ctx, eventListCacheKey, data, listCacheTTL)
	}
	return events, nil
}

func (s *eventService) Get(ctx context.Context, id uint) (*model.Event, error) {
	return s.eventRepo.FindByID(ctx, id)
}

func (s *eventService) Update(ctx context.Context, id uint, input EventInput) error {
	fields := map[string]interface{}{
		"title":       input.Title,
		"venue":       input.Venue,
		"description": input.Description,
		"author":      input.Author,
		"image":       input.Image,
	}
	if err := s.eventRepo.Update(ctx, id, fields); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, eventListCacheKey)
	return nil
}

func (s *eventService) Delete(ctx context.Context, id uint) error {
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, eventListCacheKey)
	return nil
}
