package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	apperrors "github.com/sereneHealth/web-api/internal/errors"
	"github.com/sereneHealth/web-api/internal/service"
)

// ContactHandler handles the public contact form endpoint.
type ContactHandler struct {
	contactService service.ContactService
	logger         zerolog.Logger
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(contactService service.ContactService, logger zerolog.Logger) *ContactHandler {
	return &ContactHandler{contactService: contactService, logger: logger}
}

// ContactRequest represents a contact form submission.
type ContactRequest struct {
	SenderEmail string `json:"senderEmail" validate:"required,email"`
	Subject     string `json:"subject" validate:"required"`
	Message     string `json:"message" validate:"required"`
}

// Send godoc
// @Summary Relay a contact form message to the site inbox
// @Tags contact
// @Accept json
// @Produce json
// @Param request body ContactRequest true "Contact message"
// @Success 200 {object} errors.MessageResponse
// @Failure 400 {object} errors.MessageResponse
// @Failure 500 {object} errors.MessageResponse
// @Router /send [post]
func (h *ContactHandler) Send(c echo.Context) error {
	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.MessageResponse{Message: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.MessageResponse{Message: err.Error()})
	}

	if err := h.contactService.Send(c.Request().Context(), req.SenderEmail, req.Subject, req.Message); err != nil {
		h.logger.Error().Err(err).Msg("contact relay")
		return c.JSON(http.StatusInternalServerError, apperrors.MessageResponse{Message: "Fail to send mail"})
	}

	return c.JSON(http.StatusOK, apperrors.MessageResponse{Message: "Email sent successfully"})
}
