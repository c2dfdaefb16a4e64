package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sereneHealth/web-api/internal/cache"
	"github.com/sereneHealth/web-api/internal/model"
	"github.com/sereneHealth/web-api/internal/repository"
)

const (
	postListCacheKey = "posts:all"
	listCacheTTL     = 5 * time.Minute
)

// PostInput carries the editable fields of a blog post.
type PostInput struct {
	Image   string
	Title   string
	Content string
	Author  string
}

// PostService handles blog post operations.
type PostService interface {
	Create(ctx context.Context, userID uint, input PostInput) (*model.Post, error)
	List(ctx context.Context) ([]model.Post, error)
	Get(ctx context.Context, id uint) (*model.Post, error)
	Update(ctx context.Context, id uint, input PostInput) error
	Delete(ctx context.Context, id uint) error
}

type postService struct {
	postRepo repository.PostRepository
	cache    *cache.Client
}

// NewPostService creates a new post service.
func NewPostService(postRepo repository.PostRepository, cache *cache.Client) PostService {
	return &postService{
		postRepo: postRepo,
		cache:    cache,
	}
}

func (s *postService) Create(ctx context.Context, userID uint, input PostInput) (*model.Post, error) {
	post := &model.Post{
		UserID:  userID,
		Image:   input.Image,
		Title:   input.Title,
		Content: input.Content,
		Author:  input.Author,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, postListCacheKey)
	return post, nil
}

// List returns all posts. The result is cached fail-open: a dead Redis just
// means every request hits MySQL, never an error.
func (s *postService) List(ctx context.Context) ([]model.Post, error) {
	if data, _ := s.cache.Get(ctx, postListCacheKey); data != nil {
		var cached []model.Post
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	posts, err := s.postRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(posts); err == nil {
		_ = s.cache.Set(ctx, postListCacheKey, data, listCacheTTL)
	}
	return posts, nil
}

func (s *postService) Get(ctx context.Context, id uint) (*model.Post, error) {
	return s.postRepo.FindByID(ctx, id)
}

func (s *postService) Update(ctx context.Context, id uint, input PostInput) error {
	fields := map[string]interface{}{
		"image":   input.Image,
		"title":   input.Title,
		"content": input.Content,
		"author":  input.Author,
	}
	if err := s.postRepo.Update(ctx, id, fields); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, postListCacheKey)
	return nil
}

func (s *postService) Delete(ctx context.Context, id uint) error {
	if err := s.postRepo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, postListCacheKey)
	return nil
}
