package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/sereneHealth/web-api/internal/auth"
	apperrors "github.com/sereneHealth/web-api/internal/errors"
	"github.com/sereneHealth/web-api/internal/service"
)

// PostHandler handles blog post endpoints.
type PostHandler struct {
	postService service.PostService
	logger      zerolog.Logger
}

// NewPostHandler creates a new post handler.
func NewPostHandler(postService service.PostService, logger zerolog.Logger) *PostHandler {
	return &PostHandler{postService: postService, logger: logger}
}

// PostRequest represents a blog post create or edit request.
type PostRequest struct {
	Image   string `json:"image"`
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
	Author  string `json:"author"`
}

// Create godoc
// @Summary Create a blog post
// @Tags posts
// @Accept json
// @Produce json
// @Param request body PostRequest true "Post fields"
// @Success 200 {object} errors.MessageResponse
// @Failure 401 {object} errors.MessageResponse
// @Failure 403 {object} errors.MessageResponse
// @Failure 500 {object} errors.MessageResponse
// @Router /create/posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, apperrors.MessageResponse{Message: "Unauthorized"})
	}

	var req PostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.MessageResponse{Message: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.MessageResponse{Message: err.Error()})
	}

	_, err := h.postService.Create(c.Request().Context(), userID, service.PostInput{
		Image:   req.Image,
		Title:   req.Title,
		Content: req.Content,
		Author:  req.Author,
	})
	if err != nil {
		h.logger.Error().Err(err).Msg("create post")
		return c.JSON(http.StatusInternalServerError, apperrors.MessageResponse{Message: "Error creating post"})
	}

	return c.JSON(http.StatusOK, apperrors.MessageResponse{Message: "Post created successfully"})
}

// List godoc
// @Summary List all blog posts
// @Tags posts
// @Produce json
// @Success 200 {array} model.Post
// @Failure 500 {object} errors.ErrorResponse
// @Router /blog/post [get]
func (h *PostHandler) List(c echo.Context) error {
	posts, err := h.postService.List(c.Request().Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("list posts")
		return c.JSON(http.StatusInternalServerError, apperrors.ErrorResponse{Error: "Fail to fetch post"})
	}
	return c.JSON(http.StatusOK, posts)
}

// Get godoc
// @Summary Fetch a blog post by id
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} model.Post
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /post/details/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, apperrors.ErrorResponse{Error: "Post not found"})
	}

	post, err := h.postService.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrPostNotFound) {
			return c.JSON(http.StatusNotFound, apperrors.ErrorResponse{Error: "Post not found"})
		}
		h.logger.Error().Err(err).Uint("post_id", id).Msg("get post")
		return c.JSON(http.StatusInternalServerError, apperrors.ErrorResponse{Error: "Error selecting post"})
	}

	return c.JSON(http.StatusOK, post)
}

// Update godoc
// @Summary Edit a blog post
// @Tags posts
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param request body PostRequest true "Post fields"
// @Success 200 {object} errors.MessageResponse
// @Failure 500 {object} errors.MessageResponse
// @Router /edit-blog/{id} [put]
func (h *PostHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.MessageResponse{Message: "invalid post id"})
	}

	var req PostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.MessageResponse{Message: "invalid request body"})
	}

	if err := h.postService.Update(c.Request().Context(), id, service.PostInput{
		Image:   req.Image,
		Title:   req.Title,
		Content: req.Content,
		Author:  req.Author,
	}); err != nil {
		h.logger.Error().Err(err).Uint("post_id", id).Msg("update post")
		return c.JSON(http.StatusInternalServerError, apperrors.MessageResponse{Message: "Error updating the post"})
	}

	return c.JSON(http.StatusOK, apperrors.MessageResponse{Message: "Post updated successfully"})
}

// Delete godoc
// @Summary Delete a blog post
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} errors.MessageResponse
// @Failure 404 {object} errors.MessageResponse
// @Failure 500 {object} errors.MessageResponse
// @Router /delete-blog/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, apperrors.MessageResponse{Message: "Post not found"})
	}

	if err := h.postService.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrPostNotFound) {
			return c.JSON(http.StatusNotFound, apperrors.MessageResponse{Message: "Post not found"})
		}
		h.logger.Error().Err(err).Uint("post_id", id).Msg("delete post")
		return c.JSON(http.StatusInternalServerError, apperrors.MessageResponse{Message: "Server error"})
	}

	return c.JSON(http.StatusOK, apperrors.MessageResponse{Message: "Post deleted successfully"})
}

// parseID reads the :id path parameter.
func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
