package summary

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/financeflow-app/financeflow/internal/http/middlewarectx"
	"github.com/financeflow-app/financeflow/internal/lib/aggregate"
	"github.com/financeflow-app/financeflow/internal/services"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Summary(ctx context.Context, userUID string, period *aggregate.Period) (*services.DashboardSummary, error) {
	args := m.Called(ctx, userUID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.DashboardSummary), args.Error(1)
}

func TestSummaryHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	vazio := &services.DashboardSummary{}

	tests := []struct {
		name           string
		query          string
		userUID        string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "janela mensal válida",
			query:   "?month=6&year=2024",
			userUID: "uid-1",
			setupMock: func(m *MockService) {
				m.On("Summary", mock.Anything, "uid-1",
					&aggregate.Period{Month: time.June, Year: 2024}).Return(vazio, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"OK"`,
		},
		{
			name:    "sem parâmetros agrega o histórico inteiro",
			query:   "",
			userUID: "uid-1",
			setupMock: func(m *MockService) {
				m.On("Summary", mock.Anything, "uid-1", (*aggregate.Period)(nil)).Return(vazio, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"OK"`,
		},
		{
			name:           "month sem year é rejeitado",
			query:          "?month=6",
			userUID:        "uid-1",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `must be provided together`,
		},
		{
			name:           "mês fora do intervalo",
			query:          "?month=13&year=2024",
			userUID:        "uid-1",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `must be provided together`,
		},
		{
			name:           "mês não numérico",
			query:          "?month=junho&year=2024",
			userUID:        "uid-1",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `must be provided together`,
		},
		{
			name:           "sem uid no contexto",
			query:          "?month=6&year=2024",
			userUID:        "",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"unauthorized"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, "/dashboard"+tt.query, nil)
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
