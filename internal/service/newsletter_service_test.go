package service

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "github.com/sereneHealth/web-api/internal/errors"
	"github.com/sereneHealth/web-api/internal/mail"
	"github.com/sereneHealth/web-api/internal/model"
)

// MockSubscriberRepository is a mock implementation of SubscriberRepository.
type MockSubscriberRepository struct {
	mock.Mock
}

func (m *MockSubscriberRepository) Create(ctx context.Context, sub *model.Subscriber) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockSubscriberRepository) FindByEmail(ctx context.Context, email string) (*model.Subscriber, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Subscriber), args.Error(1)
}

func (m *MockSubscriberRepository) List(ctx context.Context) ([]model.Subscriber, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Subscriber), args.Error(1)
}

// fakeMailer records sends and can be told to fail on the nth message.
type fakeMailer struct {
	sent    []mail.Message
	failOn  int // 1-based index of the send that fails; 0 means never
	failErr error
}

func (f *fakeMailer) Send(ctx context.Context, msg mail.Message) error {
	if f.failOn > 0 && len(f.sent)+1 == f.failOn {
		return f.failErr
	}
	f.sent = append(f.sent, msg)
	return nil
}

func testLogger() zerolog.Logger {
	return zerolog.New(os.Stdout).Level(zerolog.Disabled)
}

func TestNewsletterService_Subscribe(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		setupMock     func(*MockSubscriberRepository)
		expectedError error
	}{
		{
			name:  "new subscriber",
			email: "new@example.com",
			setupMock: func(m *MockSubscriberRepository) {
				m.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Subscriber")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:  "already subscribed",
			email: "old@example.com",
			setupMock: func(m *MockSubscriberRepository) {
				m.On("FindByEmail", mock.Anything, "old@example.com").Return(&model.Subscriber{Email: "old@example.com"}, nil)
			},
			expectedError: apperrors.ErrSubscriberExists,
		},
		{
			name:  "duplicate caught by unique index",
			email: "raced@example.com",
			setupMock: func(m *MockSubscriberRepository) {
				m.On("FindByEmail", mock.Anything, "raced@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Subscriber")).Return(apperrors.ErrSubscriberExists)
			},
			expectedError: apperrors.ErrSubscriberExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockSubscriberRepository)
			tt.setupMock(mockRepo)

			svc := NewNewsletterService(mockRepo, &fakeMailer{}, testLogger())

			err := svc.Subscribe(context.Background(), tt.email)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestNewsletterService_Broadcast(t *testing.T) {
	subscribers := []model.Subscriber{
		{Email: "one@example.com", Name: "One"},
		{Email: "two@example.com"},
		{Email: "three@example.com", Name: "Three"},
	}

	t.Run("sends to every subscriber", func(t *testing.T) {
		mockRepo := new(MockSubscriberRepository)
		mockRepo.On("List", mock.Anything).Return(subscribers, nil)

		mailer := &fakeMailer{}
		svc := NewNewsletterService(mockRepo, mailer, testLogger())

		err := svc.Broadcast(context.Background(), "Hello", "Term wrap-up", nil)
		assert.NoError(t, err)
		assert.Len(t, mailer.sent, 3)
		assert.Equal(t, "one@example.com", mailer.sent[0].To)
		assert.Equal(t, "Hello", mailer.sent[0].Subject)
		assert.Contains(t, mailer.sent[0].HTML, "Dear One")
		// missing name falls back to the generic greeting
		assert.Contains(t, mailer.sent[1].HTML, "friend of Serene Scheal")
		assert.Contains(t, mailer.sent[2].HTML, "Term wrap-up")
	})

	t.Run("first failure aborts the remainder", func(t *testing.T) {
		mockRepo := new(MockSubscriberRepository)
		mockRepo.On("List", mock.Anything).Return(subscribers, nil)

		mailer := &fakeMailer{failOn: 2, failErr: errors.New("smtp down")}
		svc := NewNewsletterService(mockRepo, mailer, testLogger())

		err := svc.Broadcast(context.Background(), "Hello", "body", nil)
		assert.Error(t, err)
		// the first mail went out and stays out; nothing after the failure
		assert.Len(t, mailer.sent, 1)
	})

	t.Run("attachment is forwarded on every message", func(t *testing.T) {
		mockRepo := new(MockSubscriberRepository)
		mockRepo.On("List", mock.Anything).Return(subscribers[:2], nil)

		mailer := &fakeMailer{}
		svc := NewNewsletterService(mockRepo, mailer, testLogger())

		att := &mail.Attachment{Filename: "brochure.pdf", Content: []byte("%PDF-1.4")}
		err := svc.Broadcast(context.Background(), "Hello", "body", att)
		assert.NoError(t, err)
		for _, msg := range mailer.sent {
			assert.Len(t, msg.Attachments, 1)
			assert.Equal(t, "brochure.pdf", msg.Attachments[0].Filename)
		}
	})
}
