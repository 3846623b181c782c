package remove

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/financeflow-app/financeflow/internal/http/middlewarectx"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Remove(ctx context.Context, userUID, id string) (int, error) {
	args := m.Called(ctx, userUID, id)
	return args.Int(0), args.Error(1)
}

func TestRemoveHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	validID := "3f6b1f0a-8c2d-4e8e-9f4a-111111111111"

	tests := []struct {
		name           string
		id             string
		userUID        string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "exclusão com sucesso",
			id:      validID,
			userUID: "uid-1",
			setupMock: func(m *MockService) {
				m.On("Remove", mock.Anything, "uid-1", validID).Return(1, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"deleted_count":1`,
		},
		{
			name:           "id fora do formato uuid",
			id:             "nao-eh-uuid",
			userUID:        "uid-1",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"invalid id"`,
		},
		{
			name:           "sem uid no contexto",
			id:             validID,
			userUID:        "",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"unauthorized"`,
		},
		{
			name:    "lançamento inexistente ou de outro usuário",
			id:      validID,
			userUID: "uid-1",
			setupMock: func(m *MockService) {
				m.On("Remove", mock.Anything, "uid-1", validID).Return(0, nil)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"transaction not found"`,
		},
		{
			name:    "erro do serviço",
			id:      validID,
			userUID: "uid-1",
			setupMock: func(m *MockService) {
				m.On("Remove", mock.Anything, "uid-1", validID).
					Return(0, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"could not delete transaction"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodDelete, "/transactions/"+tt.id, nil)

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
			if tt.userUID != "" {
				ctx = context.WithValue(ctx, middlewarectx.UserUID, tt.userUID)
			}
			req = req.WithContext(ctx)

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}
}
