package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/sereneHealth/web-api/internal/auth"
	apperrors "github.com/sereneHealth/web-api/internal/errors"
	"github.com/sereneHealth/web-api/internal/service"
)

// EventHandler handles event endpoints.
type EventHandler struct {
	eventService service.EventService
	logger       zerolog.Logger
}

// NewEventHandler creates a new event handler.
func NewEventHandler(eventService service.EventService, logger zerolog.Logger) *EventHandler {
	return &EventHandler{eventService: eventService, logger: logger}
}

// EventRequest represents an event create or edit request.
type EventRequest struct {
	Title       string `json:"title" validate:"required"`
	Venue       string `json:"venue"`
	Description string `json:"description" validate:"required"`
	Author      string `json:"author"`
	Image       string `json:"image"`
}

// Create godoc
// @Summary Create an event
// @Tags events
// @Accept json
// @Produce json
// @Param request body EventRequest true "Event fields"
// @Success 200 {object} errors.MessageResponse
// @Failure 401 {object} errors.MessageResponse
// @Failure 403 {object} errors.MessageResponse
// @Failure 500 {object} errors.MessageResponse
// @Router /create/events [post]
func (h *EventHandler) Create(c echo.Context) error {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, apperrors.MessageResponse{Message: "Unauthorized"})
	}

	var req EventRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.MessageResponse{Message: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.MessageResponse{Message: err.Error()})
	}

	_, err := h.eventService.Create(c.Request().Context(), userID, service.EventInput{
		Title:       req.Title,
		Venue:       req.Venue,
		Description: req.Description,
		Author:      req.Author,
		Image:       req.Image,
	})
	if err != nil {
		h.logger.Error().Err(err).Msg("create event")
		return c.JSON(http.StatusInternalServerError, apperrors.MessageResponse{Message: "Error creating event"})
	}

	return c.JSON(http.StatusOK, apperrors.MessageResponse{Message: "Event created successfully"})
}

// List godoc
// @Summary List all events
// @Tags events
// @Produce json
// @Success 200 {array} model.Event
// @Failure 500 {object} errors.ErrorResponse
// @Router /event/posts [get]
func (h *EventHandler) List(c echo.Context) error {
	events, err := h.eventService.List(c.Request().Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("list events")
		return c.JSON(http.StatusInternalServerError, apperrors.ErrorResponse{Error: "Fail to fetch event posts"})
	}
	return c.JSON(http.StatusOK, events)
}

// Get godoc
// @Summary Fetch an event by id
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} model.Event
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /event/details/{id} [get]
func (h *EventHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, apperrors.ErrorResponse{Error: "Event not found"})
	}

	event, err := h.eventService.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrEventNotFound) {
			return c.JSON(http.StatusNotFound, apperrors.ErrorResponse{Error: "Event not found"})
		}
		h.logger.Error().Err(err).Uint("event_id", id).Msg("get event")
		return c.JSON(http.StatusInternalServerError, apperrors.ErrorResponse{Error: "Error selecting event"})
	}

	return c.JSON(http.StatusOK, event)
}

// Update godoc
// @Summary Edit an event
// @Tags events
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param request body EventRequest true "Event fields"
// @Success 200 {object} errors.MessageResponse
// @Failure 500 {object} errors.MessageResponse
// @Router /edit-event/{id} [put]
func (h *EventHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.MessageResponse{Message: "invalid event id"})
	}

	var req EventRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.MessageResponse{Message: "invalid request body"})
	}

	if err := h.eventService.Update(c.Request().Context(), id, service.EventInput{
		Title:       req.Title,
		Venue:       req.Venue,
		Description: req.Description,
		Author:      req.Author,
		Image:       req.Image,
	}); err != nil {
		h.logger.Error().Err(err).Uint("event_id", id).Msg("update event")
		return c.JSON(http.StatusInternalServerError, apperrors.MessageResponse{Message: "Error updating the Event"})
	}

	return c.JSON(http.StatusOK, apperrors.MessageResponse{Message: "Event updated successfully"})
}

// Delete godoc
// @Summary Delete an event
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} errors.MessageResponse
// @Failure 404 {object} errors.MessageResponse
// @Failure 500 {object} errors.MessageResponse
// @Router /delete-event/{id} [delete]
func (h *EventHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, apperrors.MessageResponse{Message: "Event not found"})
	}

	if err := h.eventService.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrEventNotFound) {
			return c.JSON(http.StatusNotFound, apperrors.MessageResponse{Message: "Event not found"})
		}
		h.logger.Error().Err(err).Uint("event_id", id).Msg("delete event")
		return c.JSON(http.StatusInternalServerError, apperrors.MessageResponse{Message: "Server error"})
	}

	return c.JSON(http.StatusOK, apperrors.MessageResponse{Message: "Event deleted successfully"})
}
