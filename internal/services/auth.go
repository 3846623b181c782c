// Package services contém a lógica de negócio do FinanceFlow:
// autenticação, lançamentos, categorias, metas, painel financeiro,
// insights e administração de assinaturas.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/financeflow-app/financeflow/internal/lib/jwt"
	"github.com/financeflow-app/financeflow/internal/lib/password"
	"github.com/financeflow-app/financeflow/internal/lib/rabbitmq"
	"github.com/financeflow-app/financeflow/internal/lib/sl"
	"github.com/financeflow-app/financeflow/internal/models"
)

// ErrInvalidCredentials é devolvido quando email ou senha não conferem.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserRepository descreve o contrato de persistência de usuários.
type UserRepository interface {
	// RegisterUser grava um novo usuário e devolve o uid gerado.
	RegisterUser(ctx context.Context, user models.User) (string, error)

	// GetUserByEmail devolve o usuário pelo email de login.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUser devolve o usuário pelo uid.
	GetUser(ctx context.Context, userUID string) (*models.User, error)
}

// Cache descreve o contrato do cache usado pelos serviços.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Invalidate(ctx context.Context, key string) error
}

// NotificationPublisher descreve a publicação de eventos no broker.
type NotificationPublisher interface {
	Publish(routingKey string, message any) error
}

// TTL do perfil de usuário no cache. Curto de propósito: uma mudança de
// assinatura feita pelo admin invalida a chave, mas o TTL limita o dano
// caso a invalidação falhe.
const userCacheTTL = 10 * time.Minute

func userCacheKey(userUID string) string {
	return fmt.Sprintf("user:%s", userUID)
}

// AuthService responde pelo cadastro, login e sessão dos usuários.
type AuthService struct {
	users     UserRepository
	cache     Cache
	jwtMaker  jwt.Maker
	publisher NotificationPublisher
	log       *slog.Logger
}

// NewAuthService cria um novo AuthService.
func NewAuthService(users UserRepository, cache Cache, jwtMaker jwt.Maker,
	publisher NotificationPublisher, log *slog.Logger) *AuthService {
	return &AuthService{
		users:     users,
		cache:     cache,
		jwtMaker:  jwtMaker,
		publisher: publisher,
		log:       log,
	}
}

// Register cria um usuário com senha em hash bcrypt, papel "user" e
// status "nao_assinou". Publica o evento de cadastro para o email de
// boas-vindas; falha na publicação não desfaz o cadastro.
func (s *AuthService) Register(ctx context.Context, email, nome, rawPassword string) (string, error) {
	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return "", err
	}
	user := models.User{
		Email:            email,
		Nome:             nome,
		PasswordHash:     hashed,
		Role:             "user",
		StatusAssinatura: models.StatusNaoAssinou,
	}
	uid, err := s.users.RegisterUser(ctx, user)
	if err != nil {
		return "", err
	}

	msg := models.UserRegisteredMessage{Email: email, Nome: nome}
	if err := s.publisher.Publish(rabbitmq.RoutingKeyUserRegistered, msg); err != nil {
		s.log.Warn("failed to publish user registered event", sl.Err(err))
	}
	return uid, nil
}

// Login confere a senha e gera o JWT de acesso. Devolve também o papel
// do usuário para o redirecionamento do frontend.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (token, role string, err error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return "", "", ErrInvalidCredentials
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", "", ErrInvalidCredentials
	}
	token, err = s.jwtMaker.GenerateToken(user.Email, user.Role, user.UID)
	if err != nil {
		return "", "", err
	}
	return token, user.Role, nil
}

// GetUser devolve o perfil completo do usuário, preferindo o cache.
// É a fonte do estado de assinatura usado pelo gate de acesso: o perfil
// é recarregado do banco a cada expiração do TTL, nunca congelado na
// sessão.
func (s *AuthService) GetUser(ctx context.Context, userUID string) (*models.User, error) {
	cacheKey := userCacheKey(userUID)
	var cached models.User
	found, err := s.cache.Get(ctx, cacheKey, &cached)
	if err != nil {
		s.log.Warn("failed to read user from cache", slog.String("key", cacheKey), sl.Err(err))
	}
	if found {
		return &cached, nil
	}

	user, err := s.users.GetUser(ctx, userUID)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, cacheKey, user, userCacheTTL); err != nil {
		s.log.Warn("failed to cache user", slog.String("key", cacheKey), sl.Err(err))
	}
	return user, nil
}

// ValidateToken verifica o JWT e devolve a identidade contida nele.
func (s *AuthService) ValidateToken(_ context.Context, token string) (*models.User, string, bool, error) {
	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return nil, "", false, err
	}
	user := &models.User{
		Email: claims.Email,
		Role:  claims.Role,
		UID:   claims.UserUID,
	}
	return user, claims.Role, true, nil
}
