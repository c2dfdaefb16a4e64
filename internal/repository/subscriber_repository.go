package repository

import (
	"context"

	"gorm.io/gorm"

	apperrors "github.com/sereneHealth/web-api/internal/errors"
	"github.com/sereneHealth/web-api/internal/model"
)

// SubscriberRepository defines persistence operations for the newsletter list.
type SubscriberRepository interface {
	Create(ctx context.Context, sub *model.Subscriber) error
	FindByEmail(ctx context.Context, email string) (*model.Subscriber, error)
	List(ctx context.Context) ([]model.Subscriber, error)
}

type subscriberRepository struct {
	db *gorm.DB
}

// NewSubscriberRepository builds a GORM-backed repository.
func NewSubscriberRepository(db *gorm.DB) SubscriberRepository {
	return &subscriberRepository{db: db}
}

func (r *subscriberRepository) Create(ctx context.Context, sub *model.Subscriber) error {
	if err := r.db.WithContext(ctx).Create(sub).Error; err != nil {
		if isDuplicateEntry(err) {
			return apperrors.ErrSubscriberExists
		}
		return err
	}
	return nil
}

func (r *subscriberRepository) FindByEmail(ctx context.Context, email string) (*model.Subscriber, error) {
	var sub model.Subscriber
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&sub).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *subscriberRepository) List(ctx context.Context) ([]model.Subscriber, error) {
	var subs []model.Subscriber
	if err := r.db.WithContext(ctx).Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}
