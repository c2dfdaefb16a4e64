package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	apperrors "github.com/sereneHealth/web-api/internal/errors"
	"github.com/sereneHealth/web-api/internal/mail"
	"github.com/sereneHealth/web-api/internal/service"
)

// maxAttachmentSize caps the broadcast PDF at 10 MiB; Resend rejects larger
// payloads anyway.
const maxAttachmentSize = 10 << 20

// NewsletterHandler handles newsletter signup and broadcast endpoints.
type NewsletterHandler struct {
	newsletterService service.NewsletterService
	logger            zerolog.Logger
}

// NewNewsletterHandler creates a new newsletter handler.
func NewNewsletterHandler(newsletterService service.NewsletterService, logger zerolog.Logger) *NewsletterHandler {
	return &NewsletterHandler{newsletterService: newsletterService, logger: logger}
}

// SubscribeRequest represents a newsletter signup request.
type SubscribeRequest struct {
	NewsMail string `json:"newsMail" validate:"required,email"`
}

// Subscribe godoc
// @Summary Join the newsletter list
// @Tags newsletter
// @Accept json
// @Produce json
// @Param request body SubscribeRequest true "Signup email"
// @Success 200 {object} errors.MessageResponse
// @Failure 400 {object} errors.MessageResponse
// @Failure 500 {object} errors.MessageResponse
// @Router /newsletter [post]
func (h *NewsletterHandler) Subscribe(c echo.Context) error {
	var req SubscribeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.MessageResponse{Message: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.MessageResponse{Message: err.Error()})
	}

	if err := h.newsletterService.Subscribe(c.Request().Context(), req.NewsMail); err != nil {
		if errors.Is(err, apperrors.ErrSubscriberExists) {
			return c.JSON(http.StatusBadRequest, apperrors.MessageResponse{Message: "User already exist"})
		}
		h.logger.Error().Err(err).Msg("newsletter signup")
		return c.JSON(http.StatusInternalServerError, apperrors.MessageResponse{Message: "Error inserting email"})
	}

	return c.JSON(http.StatusOK, apperrors.MessageResponse{Message: "Inserted successfully"})
}

// Broadcast godoc
// @Summary Send the newsletter to every subscriber
// @Tags newsletter
// @Accept mpfd
// @Produce json
// @Param subjects formData string true "Mail subject"
// @Param messages formData string true "Mail body"
// @Param pdf formData file false "PDF attachment"
// @Success 200 {object} errors.MessageResponse
// @Failure 400 {object} errors.MessageResponse
// @Failure 500 {object} errors.MessageResponse
// @Router /sendmail [post]
func (h *NewsletterHandler) Broadcast(c echo.Context) error {
	subject := c.FormValue("subjects")
	message := c.FormValue("messages")
	if subject == "" || message == "" {
		return c.JSON(http.StatusBadRequest, apperrors.MessageResponse{Message: "subjects and messages are required"})
	}

	var attachment *mail.Attachment
	if fileHeader, err := c.FormFile("pdf"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			return c.JSON(http.StatusBadRequest, apperrors.MessageResponse{Message: "unreadable pdf attachment"})
		}
		defer file.Close()

		content, err := io.ReadAll(io.LimitReader(file, maxAttachmentSize))
		if err != nil {
			return c.JSON(http.StatusBadRequest, apperrors.MessageResponse{Message: "unreadable pdf attachment"})
		}
		attachment = &mail.Attachment{
			Filename: fileHeader.Filename,
			Content:  content,
		}
	}

	if err := h.newsletterService.Broadcast(c.Request().Context(), subject, message, attachment); err != nil {
		h.logger.Error().Err(err).Msg("newsletter broadcast")
		return c.JSON(http.StatusInternalServerError, apperrors.MessageResponse{Message: "Fail to send mail"})
	}

	return c.JSON(http.StatusOK, apperrors.MessageResponse{Message: "Email sent successfully"})
}
