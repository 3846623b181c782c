package services

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/stretchr/testify/mock"

	jwtlib "github.com/financeflow-app/financeflow/internal/lib/jwt"
	"github.com/financeflow-app/financeflow/internal/models"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) RegisterUser(ctx context.Context, user models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *RepoMock) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *RepoMock) GetUser(ctx context.Context, userUID string) (*models.User, error) {
	args := m.Called(ctx, userUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *RepoMock) ListUsers(ctx context.Context, limit, offset int) ([]*models.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *RepoMock) UpdateSubscription(ctx context.Context, userUID string, upd models.SubscriptionUpdate) (int, error) {
	args := m.Called(ctx, userUID, upd)
	return args.Int(0), args.Error(1)
}

func (m *RepoMock) ListTransactions(ctx context.Context, userUID string) ([]*models.Transaction, error) {
	args := m.Called(ctx, userUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Transaction), args.Error(1)
}

func (m *RepoMock) ListCategorias(ctx context.Context, userUID string) ([]*models.Categoria, error) {
	args := m.Called(ctx, userUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Categoria), args.Error(1)
}

func (m *RepoMock) ListMetas(ctx context.Context, userUID string) ([]*models.Meta, error) {
	args := m.Called(ctx, userUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Meta), args.Error(1)
}

type CacheMock struct{ mock.Mock }

func (m *CacheMock) Get(ctx context.Context, key string, result any) (bool, error) {
	args := m.Called(ctx, key, result)
	return args.Bool(0), args.Error(1)
}

func (m *CacheMock) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	return m.Called(ctx, key, value, expiration).Error(0)
}

func (m *CacheMock) Invalidate(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

type PublisherMock struct{ mock.Mock }

func (m *PublisherMock) Publish(routingKey string, message any) error {
	return m.Called(routingKey, message).Error(0)
}

type MakerMock struct{ mock.Mock }

func (m *MakerMock) GenerateToken(email, role, userUID string) (string, error) {
	args := m.Called(email, role, userUID)
	return args.String(0), args.Error(1)
}

func (m *MakerMock) ParseToken(tokenStr string) (*jwtlib.CustomClaims, error) {
	args := m.Called(tokenStr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*jwtlib.CustomClaims), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}
