package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/financeflow-app/financeflow/internal/lib/password"
	"github.com/financeflow-app/financeflow/internal/lib/rabbitmq"
	"github.com/financeflow-app/financeflow/internal/models"
)

func newAuthService(repo *RepoMock, cache *CacheMock, maker *MakerMock, pub *PublisherMock) *AuthService {
	return NewAuthService(repo, cache, maker, pub, newNoopLogger())
}

func TestAuth_Register(t *testing.T) {
	repo := new(RepoMock)
	cache := new(CacheMock)
	maker := new(MakerMock)
	pub := new(PublisherMock)

	repo.On("RegisterUser", mock.Anything, mock.MatchedBy(func(u models.User) bool {
		return u.Email == "ana@example.com" &&
			u.Role == "user" &&
			u.StatusAssinatura == models.StatusNaoAssinou &&
			u.PasswordHash != "senha123"
	})).Return("uid-1", nil)
	pub.On("Publish", rabbitmq.RoutingKeyUserRegistered,
		models.UserRegisteredMessage{Email: "ana@example.com", Nome: "Ana"}).Return(nil)

	svc := newAuthService(repo, cache, maker, pub)
	uid, err := svc.Register(context.Background(), "ana@example.com", "Ana", "senha123")

	require.NoError(t, err)
	assert.Equal(t, "uid-1", uid)
	repo.AssertExpectations(t)
	pub.AssertExpectations(t)
}

func TestAuth_Register_FalhaNaPublicacaoNaoDesfazCadastro(t *testing.T) {
	repo := new(RepoMock)
	pub := new(PublisherMock)

	repo.On("RegisterUser", mock.Anything, mock.Anything).Return("uid-1", nil)
	pub.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down"))

	svc := newAuthService(repo, new(CacheMock), new(MakerMock), pub)
	uid, err := svc.Register(context.Background(), "ana@example.com", "Ana", "senha123")

	require.NoError(t, err)
	assert.Equal(t, "uid-1", uid)
}

func TestAuth_Login(t *testing.T) {
	hash, err := password.GetHash("senha123")
	require.NoError(t, err)
	user := &models.User{UID: "uid-1", Email: "ana@example.com", PasswordHash: hash, Role: "user"}

	tests := []struct {
		name       string
		password   string
		setupMocks func(repo *RepoMock, maker *MakerMock)
		wantToken  string
		wantErr    error
	}{
		{
			name:     "login com sucesso",
			password: "senha123",
			setupMocks: func(repo *RepoMock, maker *MakerMock) {
				repo.On("GetUserByEmail", mock.Anything, "ana@example.com").Return(user, nil)
				maker.On("GenerateToken", "ana@example.com", "user", "uid-1").Return("token-abc", nil)
			},
			wantToken: "token-abc",
		},
		{
			name:     "senha errada",
			password: "senha-errada",
			setupMocks: func(repo *RepoMock, _ *MakerMock) {
				repo.On("GetUserByEmail", mock.Anything, "ana@example.com").Return(user, nil)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:     "usuário inexistente",
			password: "senha123",
			setupMocks: func(repo *RepoMock, _ *MakerMock) {
				repo.On("GetUserByEmail", mock.Anything, "ana@example.com").
					Return(nil, errors.New("not found"))
			},
			wantErr: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			maker := new(MakerMock)
			tt.setupMocks(repo, maker)

			svc := newAuthService(repo, new(CacheMock), maker, new(PublisherMock))
			token, role, err := svc.Login(context.Background(), "ana@example.com", tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
			assert.Equal(t, "user", role)
		})
	}
}

func TestAuth_GetUser_CacheMiss(t *testing.T) {
	repo := new(RepoMock)
	cache := new(CacheMock)
	user := &models.User{UID: "uid-1", Email: "ana@example.com", StatusAssinatura: models.StatusAtivo}

	cache.On("Get", mock.Anything, "user:uid-1", mock.Anything).Return(false, nil)
	repo.On("GetUser", mock.Anything, "uid-1").Return(user, nil)
	cache.On("Set", mock.Anything, "user:uid-1", user, userCacheTTL).Return(nil)

	svc := newAuthService(repo, cache, new(MakerMock), new(PublisherMock))
	got, err := svc.GetUser(context.Background(), "uid-1")

	require.NoError(t, err)
	assert.Equal(t, user, got)
	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestAuth_GetUser_CacheHit(t *testing.T) {
	repo := new(RepoMock)
	cache := new(CacheMock)

	cache.On("Get", mock.Anything, "user:uid-1", mock.Anything).
		Run(func(args mock.Arguments) {
			u := args.Get(2).(*models.User)
			u.UID = "uid-1"
			u.StatusAssinatura = models.StatusAtivo
		}).Return(true, nil)

	svc := newAuthService(repo, cache, new(MakerMock), new(PublisherMock))
	got, err := svc.GetUser(context.Background(), "uid-1")

	require.NoError(t, err)
	assert.Equal(t, "uid-1", got.UID)
	repo.AssertNotCalled(t, "GetUser", mock.Anything, mock.Anything)
}
