package handler

import (
	"errors"
	"event-voting/internal/model"
	"event-voting/internal/service/mocks"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDashboardHandler(t *testing.T) {
	t.Run("Success - Stats", func(t *testing.T) {
		mockService := mocks.NewDashboardServiceMock()
		issuer := newTestIssuer()
		router := setupTestRouter(issuer, NewDashboardHandler(mockService))

		mockService.On("Stats", mock.Anything).Return(&model.DashboardStats{TotalTickets: 10, UsedTickets: 3}, nil).Once()

		req := withToken(httptest.NewRequest(http.MethodGet, "/api/v1/admin/dashboard/stats", nil), adminToken(t, issuer))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, float64(10), body["total_tickets"])
		assert.Equal(t, float64(3), body["used_tickets"])
	})

	t.Run("Success - Activities with limit", func(t *testing.T) {
		mockService := mocks.NewDashboardServiceMock()
		issuer := newTestIssuer()
		router := setupTestRouter(issuer, NewDashboardHandler(mockService))

		mockService.On("RecentActivities", mock.Anything, 5).Return([]*model.Activity{}, nil).Once()

		req := withToken(httptest.NewRequest(http.MethodGet, "/api/v1/admin/dashboard/activities?limit=5", nil), adminToken(t, issuer))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - Invalid limit", func(t *testing.T) {
		mockService := mocks.NewDashboardServiceMock()
		issuer := newTestIssuer()
		router := setupTestRouter(issuer, NewDashboardHandler(mockService))

		req := withToken(httptest.NewRequest(http.MethodGet, "/api/v1/admin/dashboard/activities?limit=-1", nil), adminToken(t, issuer))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Failed - Internal error", func(t *testing.T) {
		mockService := mocks.NewDashboardServiceMock()
		issuer := newTestIssuer()
		router := setupTestRouter(issuer, NewDashboardHandler(mockService))

		mockService.On("VotingStatistics", mock.Anything).Return(nil, errors.New("connection reset")).Once()

		req := withToken(httptest.NewRequest(http.MethodGet, "/api/v1/admin/dashboard/voting-stats", nil), adminToken(t, issuer))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("Failed - Missing token", func(t *testing.T) {
		mockService := mocks.NewDashboardServiceMock()
		router := setupTestRouter(newTestIssuer(), NewDashboardHandler(mockService))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/dashboard/stats", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
