package status

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/financeflow-app/financeflow/internal/http/middlewarectx"
	"github.com/financeflow-app/financeflow/internal/services"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) SetStatus(ctx context.Context, userUID, insightID, status string) error {
	args := m.Called(ctx, userUID, insightID, status)
	return args.Error(0)
}

func TestStatusHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		body           string
		userUID        string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "marca insight como lido",
			body:    `{"id":"orcamento-limite-mercado","status":"lido"}`,
			userUID: "uid-1",
			setupMock: func(m *MockService) {
				m.On("SetStatus", mock.Anything, "uid-1", "orcamento-limite-mercado", "lido").
					Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"lido"`,
		},
		{
			name:           "status fora do domínio reprova a validação",
			body:           `{"id":"orcamento-limite-mercado","status":"arquivado"}`,
			userUID:        "uid-1",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `must be one of`,
		},
		{
			name:           "json inválido",
			body:           `{id:`,
			userUID:        "uid-1",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"invalid request body"`,
		},
		{
			name:           "sem uid no contexto",
			body:           `{"id":"orcamento-limite-mercado","status":"lido"}`,
			userUID:        "",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"unauthorized"`,
		},
		{
			name:    "serviço rejeita o status",
			body:    `{"id":"orcamento-limite-mercado","status":"lido"}`,
			userUID: "uid-1",
			setupMock: func(m *MockService) {
				m.On("SetStatus", mock.Anything, "uid-1", "orcamento-limite-mercado", "lido").
					Return(services.ErrInvalidInsightStatus)
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `"invalid insight status"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/insights/status", strings.NewReader(tt.body))
			if tt.userUID != "" {
				ctx := context.WithValue(req.Context(), middlewarectx.UserUID, tt.userUID)
				req = req.WithContext(ctx)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}
}
