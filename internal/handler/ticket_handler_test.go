package handler

import (
	"event-voting/internal/identity"
	"event-voting/internal/model"
	"event-voting/internal/service/mocks"
	apperrors "event-voting/pkg/app_errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupTicketTestRouter(mockService *mocks.TicketServiceMock) (*gin.Engine, *identity.Issuer) {
	issuer := newTestIssuer()
	return setupTestRouter(issuer, NewTicketHandler(mockService)), issuer
}

func TestAuthenticateTicket(t *testing.T) {
	ticketID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewTicketServiceMock()
		router, _ := setupTicketTestRouter(mockService)

		mockService.On("Authenticate", mock.Anything, ticketID.String()).Return(&model.AuthenticateResult{
			Token:  "signed",
			Ticket: &model.TicketSummary{ID: ticketID, Serial: "001", VotedCategories: []uuid.UUID{}},
		}, nil).Once()

		req := createJSONHTTPRequest(http.MethodPost, "/api/v1/client/tickets/auth", AuthenticateRequest{TicketID: ticketID.String()})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "signed", decodeBody(t, w)["token"])
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - ErrInvalidTicket", func(t *testing.T) {
		mockService := mocks.NewTicketServiceMock()
		router, _ := setupTicketTestRouter(mockService)

		mockService.On("Authenticate", mock.Anything, "garbage").Return(nil, apperrors.ErrInvalidTicket).Once()

		req := createJSONHTTPRequest(http.MethodPost, "/api/v1/client/tickets/auth", AuthenticateRequest{TicketID: "garbage"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		resp := decodeBody(t, w)
		assert.Equal(t, "Invalid ticket. Please check your ticket and try again.", resp["error"])
		assert.Equal(t, "not_found", resp["code"])
	})

	t.Run("Failed - BindingError", func(t *testing.T) {
		mockService := mocks.NewTicketServiceMock()
		router, _ := setupTicketTestRouter(mockService)

		req := createJSONHTTPRequest(http.MethodPost, "/api/v1/client/tickets/auth", InvalidJSON)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything)
	})
}

func TestVerifyTicket(t *testing.T) {
	ticket := &model.Ticket{ID: uuid.New(), Serial: "010"}

	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewTicketServiceMock()
		router, issuer := setupTicketTestRouter(mockService)

		mockService.On("Verify", mock.Anything, mock.MatchedBy(func(cred *model.VoterCredential) bool {
			return cred.TicketID == ticket.ID
		})).Return(&model.TicketSummary{ID: ticket.ID, Serial: ticket.Serial, VotedCategories: []uuid.UUID{}}, nil).Once()

		req := withToken(httptest.NewRequest(http.MethodGet, "/api/v1/client/tickets/verify", nil), voterToken(t, issuer, ticket))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeBody(t, w)
		summary, ok := resp["ticket"].(map[string]interface{})
		assert.True(t, ok)
		assert.Equal(t, "010", summary["serial"])
	})

	t.Run("Failed - Ticket deleted", func(t *testing.T) {
		mockService := mocks.NewTicketServiceMock()
		router, issuer := setupTicketTestRouter(mockService)

		mockService.On("Verify", mock.Anything, mock.Anything).Return(nil, apperrors.ErrInvalidTicket).Once()

		req := withToken(httptest.NewRequest(http.MethodGet, "/api/v1/client/tickets/verify", nil), voterToken(t, issuer, ticket))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Failed - Tampered token", func(t *testing.T) {
		mockService := mocks.NewTicketServiceMock()
		router, issuer := setupTicketTestRouter(mockService)

		req := withToken(httptest.NewRequest(http.MethodGet, "/api/v1/client/tickets/verify", nil), voterToken(t, issuer, ticket)+"x")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockService.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
	})
}

func TestGenerateTickets(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewTicketServiceMock()
		router, issuer := setupTicketTestRouter(mockService)

		mockService.On("Generate", mock.Anything, 2).Return([]*model.Ticket{{Serial: "001"}, {Serial: "002"}}, nil).Once()

		req := withToken(createJSONHTTPRequest(http.MethodPost, "/api/v1/admin/tickets/generate", GenerateTicketsRequest{Quantity: 2}), adminToken(t, issuer))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, float64(2), decodeBody(t, w)["count"])
	})

	t.Run("Failed - Voter token", func(t *testing.T) {
		mockService := mocks.NewTicketServiceMock()
		router, issuer := setupTicketTestRouter(mockService)

		token := voterToken(t, issuer, &model.Ticket{ID: uuid.New(), Serial: "001"})
		req := withToken(createJSONHTTPRequest(http.MethodPost, "/api/v1/admin/tickets/generate", GenerateTicketsRequest{Quantity: 2}), token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockService.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
	})

	t.Run("Failed - ErrInvalidQuantity", func(t *testing.T) {
		mockService := mocks.NewTicketServiceMock()
		router, issuer := setupTicketTestRouter(mockService)

		mockService.On("Generate", mock.Anything, 500).Return(nil, apperrors.ErrInvalidQuantity).Once()

		req := withToken(createJSONHTTPRequest(http.MethodPost, "/api/v1/admin/tickets/generate", GenerateTicketsRequest{Quantity: 500}), adminToken(t, issuer))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestImportTickets(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewTicketServiceMock()
		router, issuer := setupTicketTestRouter(mockService)

		mockService.On("Import", mock.Anything, []string{"100", "101"}, true).
			Return(&model.ImportTicketsResult{Imported: 2, Tickets: []*model.Ticket{}}, nil).Once()

		body := ImportTicketsRequest{Serials: []string{"100", "101"}, SkipDuplicates: true}
		req := withToken(createJSONHTTPRequest(http.MethodPost, "/api/v1/admin/tickets/import", body), adminToken(t, issuer))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - ErrDuplicateSerial", func(t *testing.T) {
		mockService := mocks.NewTicketServiceMock()
		router, issuer := setupTicketTestRouter(mockService)

		mockService.On("Import", mock.Anything, []string{"100"}, false).Return(nil, apperrors.ErrDuplicateSerial).Once()

		body := ImportTicketsRequest{Serials: []string{"100"}}
		req := withToken(createJSONHTTPRequest(http.MethodPost, "/api/v1/admin/tickets/import", body), adminToken(t, issuer))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestDeleteTicket(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewTicketServiceMock()
		router, issuer := setupTicketTestRouter(mockService)

		mockService.On("DeleteBySerial", mock.Anything, "007").Return(nil).Once()

		req := withToken(httptest.NewRequest(http.MethodDelete, "/api/v1/admin/tickets/007", nil), adminToken(t, issuer))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Failed - ErrTicketNotFound", func(t *testing.T) {
		mockService := mocks.NewTicketServiceMock()
		router, issuer := setupTicketTestRouter(mockService)

		mockService.On("DeleteBySerial", mock.Anything, "404").Return(apperrors.ErrTicketNotFound).Once()

		req := withToken(httptest.NewRequest(http.MethodDelete, "/api/v1/admin/tickets/404", nil), adminToken(t, issuer))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Success - Delete all", func(t *testing.T) {
		mockService := mocks.NewTicketServiceMock()
		router, issuer := setupTicketTestRouter(mockService)

		mockService.On("DeleteAll", mock.Anything).Return(int64(12), nil).Once()

		req := withToken(httptest.NewRequest(http.MethodDelete, "/api/v1/admin/tickets", nil), adminToken(t, issuer))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, float64(12), decodeBody(t, w)["deleted"])
	})
}
