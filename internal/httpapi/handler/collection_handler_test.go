package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"mediashelf/internal/httpapi/handler"
	"mediashelf/internal/httpapi/models"
	"mediashelf/internal/httpapi/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- MOCK SERVICE ---

type MockCollectionService struct {
	mock.Mock
}

func (m *MockCollectionService) List(ctx context.Context, userID, status string) ([]models.UserMedia, error) {
	args := m.Called(ctx, userID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserMedia), args.Error(1)
}

func (m *MockCollectionService) Add(ctx context.Context, userID, mediaID, status string) (*models.UserMedia, error) {
	args := m.Called(ctx, userID, mediaID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserMedia), args.Error(1)
}

func (m *MockCollectionService) Update(ctx context.Context, userID string, entryID int64, input service.UpdateEntryInput) (*models.UserMedia, error) {
	args := m.Called(ctx, userID, entryID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserMedia), args.Error(1)
}

func (m *MockCollectionService) Remove(ctx context.Context, userID string, entryID int64) error {
	args := m.Called(ctx, userID, entryID)
	return args.Error(0)
}

// --- SETUP ---

func setupCollectionRouter(mockService *MockCollectionService, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewCollectionHandler(mockService)

	rg := r.Group("/api/collection")
	rg.Use(mockAuthMiddleware(userID, models.RoleUser))
	h.RegisterRoutes(rg)
	return r
}

// --- TESTS ---

func TestCollectionHandler_Update(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockCollectionService)
		r := setupCollectionRouter(mockService, "user-1")

		mockService.On("Update", mock.Anything, "user-1", int64(7), mock.MatchedBy(func(input service.UpdateEntryInput) bool {
			return input.Status != nil && *input.Status == models.CollectionStatusCompleted
		})).Return(&models.UserMedia{ID: 7, UserID: "user-1", Status: models.CollectionStatusCompleted}, nil).Once()

		body, _ := json.Marshal(map[string]any{"status": "COMPLETED"})
		req, _ := http.NewRequest(http.MethodPatch, "/api/collection/7", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("NotYourEntry", func(t *testing.T) {
		mockService := new(MockCollectionService)
		r := setupCollectionRouter(mockService, "user-1")

		mockService.On("Update", mock.Anything, "user-1", int64(7), mock.Anything).
			Return(nil, service.ErrForbidden).Once()

		body, _ := json.Marshal(map[string]any{"status": "OWNED"})
		req, _ := http.NewRequest(http.MethodPatch, "/api/collection/7", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)

		var response map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.Equal(t, "not your collection entry", response["error"])
	})

	t.Run("NotFound", func(t *testing.T) {
		mockService := new(MockCollectionService)
		r := setupCollectionRouter(mockService, "user-1")

		mockService.On("Update", mock.Anything, "user-1", int64(99), mock.Anything).
			Return(nil, service.ErrEntryNotFound).Once()

		body, _ := json.Marshal(map[string]any{"notes": "lost my copy"})
		req, _ := http.NewRequest(http.MethodPatch, "/api/collection/99", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCollectionHandler_Remove(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockCollectionService)
		r := setupCollectionRouter(mockService, "user-1")

		mockService.On("Remove", mock.Anything, "user-1", int64(7)).Return(nil).Once()

		req, _ := http.NewRequest(http.MethodDelete, "/api/collection/7", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("NotYourEntry", func(t *testing.T) {
		mockService := new(MockCollectionService)
		r := setupCollectionRouter(mockService, "user-1")

		mockService.On("Remove", mock.Anything, "user-1", int64(7)).
			Return(service.ErrForbidden).Once()

		req, _ := http.NewRequest(http.MethodDelete, "/api/collection/7", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)

		var response map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.Equal(t, "not your collection entry", response["error"])
	})
}
