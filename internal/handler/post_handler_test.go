package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "github.com/sereneHealth/web-api/internal/errors"
	"github.com/sereneHealth/web-api/internal/model"
	"github.com/sereneHealth/web-api/internal/service"
)

// MockPostService is a mock implementation of PostService.
type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) Create(ctx context.Context, userID uint, input service.PostInput) (*model.Post, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostService) List(ctx context.Context) ([]model.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Post), args.Error(1)
}

func (m *MockPostService) Get(ctx context.Context, id uint) (*model.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostService) Update(ctx context.Context, id uint, input service.PostInput) error {
	args := m.Called(ctx, id, input)
	return args.Error(0)
}

func (m *MockPostService) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newPostServer(svc service.PostService) *echo.Echo {
	e := newTestEcho()
	h := NewPostHandler(svc, testLogger())
	e.GET("/blog/post", h.List)
	e.GET("/post/details/:id", h.Get)
	e.PUT("/edit-blog/:id", h.Update)
	e.DELETE("/delete-blog/:id", h.Delete)
	return e
}

func TestPostHandler_Get(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		setupMock    func(*MockPostService)
		expectedCode int
		checkBody    func(t *testing.T, body string)
	}{
		{
			name: "existing post",
			path: "/post/details/5",
			setupMock: func(m *MockPostService) {
				m.On("Get", mock.Anything, uint(5)).Return(&model.Post{
					ID: 5, UserID: 1, Title: "Outreach", Content: "Report", Author: "Bilikis",
				}, nil)
			},
			expectedCode: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"title":"Outreach"`)
			},
		},
		{
			name: "missing post",
			path: "/post/details/99",
			setupMock: func(m *MockPostService) {
				m.On("Get", mock.Anything, uint(99)).Return(nil, apperrors.ErrPostNotFound)
			},
			expectedCode: http.StatusNotFound,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"error":"Post not found"}`, body)
			},
		},
		{
			name:         "non-numeric id",
			path:         "/post/details/abc",
			setupMock:    func(m *MockPostService) {},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockPostService)
			tt.setupMock(mockService)

			e := newPostServer(mockService)
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.checkBody != nil {
				tt.checkBody(t, rec.Body.String())
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestPostHandler_DeleteThenGet(t *testing.T) {
	mockService := new(MockPostService)
	mockService.On("Delete", mock.Anything, uint(5)).Return(nil).Once()
	// once deleted, both delete and fetch report not found
	mockService.On("Delete", mock.Anything, uint(5)).Return(apperrors.ErrPostNotFound)
	mockService.On("Get", mock.Anything, uint(5)).Return(nil, apperrors.ErrPostNotFound)

	e := newPostServer(mockService)

	req := httptest.NewRequest(http.MethodDelete, "/delete-blog/5", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Post deleted successfully"}`, rec.Body.String())

	req = httptest.NewRequest(http.MethodDelete, "/delete-blog/5", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Post not found"}`, rec.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/post/details/5", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPostHandler_Update(t *testing.T) {
	mockService := new(MockPostService)
	mockService.On("Update", mock.Anything, uint(3), service.PostInput{
		Title:   "new title",
		Content: "new content",
	}).Return(nil)

	e := newPostServer(mockService)

	req := httptest.NewRequest(http.MethodPut, "/edit-blog/3", strings.NewReader(`{"title":"new title","content":"new content"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Post updated successfully"}`, rec.Body.String())
	mockService.AssertExpectations(t)
}
