package subscription

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/financeflow-app/financeflow/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) UpdateSubscription(ctx context.Context, userUID string, req models.DummySubscriptionUpdate) (int, error) {
	args := m.Called(ctx, userUID, req)
	return args.Int(0), args.Error(1)
}

func TestSubscriptionHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	validUID := "3f6b1f0a-8c2d-4e8e-9f4a-222222222222"

	tests := []struct {
		name           string
		uid            string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "ativação de assinatura com sucesso",
			uid:  validUID,
			body: `{"plano":"mensal","status":"ativo","data_inicio":"2024-06-01"}`,
			setupMock: func(m *MockService) {
				m.On("UpdateSubscription", mock.Anything, validUID,
					models.DummySubscriptionUpdate{
						Plano:      "mensal",
						Status:     models.StatusAtivo,
						DataInicio: "2024-06-01",
					}).Return(1, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"updated_count":1`,
		},
		{
			name:           "uid fora do formato uuid",
			uid:            "nao-eh-uuid",
			body:           `{"status":"ativo"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"invalid uid"`,
		},
		{
			name:           "status fora do domínio reprova a validação",
			uid:            validUID,
			body:           `{"status":"suspenso"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `must be one of`,
		},
		{
			name:           "data fora do formato reprova a validação",
			uid:            validUID,
			body:           `{"status":"ativo","data_inicio":"01/06/2024"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `2006-01-02`,
		},
		{
			name: "usuário inexistente",
			uid:  validUID,
			body: `{"status":"ativo"}`,
			setupMock: func(m *MockService) {
				m.On("UpdateSubscription", mock.Anything, validUID, mock.Anything).Return(0, nil)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"user not found"`,
		},
		{
			name: "erro do serviço",
			uid:  validUID,
			body: `{"status":"ativo"}`,
			setupMock: func(m *MockService) {
				m.On("UpdateSubscription", mock.Anything, validUID, mock.Anything).
					Return(0, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"could not update subscription"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPut, "/admin/users/"+tt.uid+"/subscription", strings.NewReader(tt.body))

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("uid", tt.uid)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}
}
