package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/financeflow-app/financeflow/internal/lib/rabbitmq"
	"github.com/financeflow-app/financeflow/internal/lib/sl"
	"github.com/financeflow-app/financeflow/internal/models"
)

// AdminRepository descreve as operações administrativas sobre usuários.
type AdminRepository interface {
	ListUsers(ctx context.Context, limit, offset int) ([]*models.User, error)
	GetUser(ctx context.Context, userUID string) (*models.User, error)
	UpdateSubscription(ctx context.Context, userUID string, upd models.SubscriptionUpdate) (int, error)
}

// AdminService responde pelo painel administrativo: listagem de usuários
// e gestão manual das assinaturas.
type AdminService struct {
	repo      AdminRepository
	cache     Cache
	publisher NotificationPublisher
	log       *slog.Logger
}

// NewAdminService cria um novo AdminService.
func NewAdminService(repo AdminRepository, cache Cache, publisher NotificationPublisher,
	log *slog.Logger) *AdminService {
	return &AdminService{
		repo:      repo,
		cache:     cache,
		publisher: publisher,
		log:       log,
	}
}

// ListUsers devolve os usuários cadastrados com paginação.
func (s *AdminService) ListUsers(ctx context.Context, limit, offset int) ([]*models.User, error) {
	return s.repo.ListUsers(ctx, limit, offset)
}

func parseSubscriptionUpdate(req models.DummySubscriptionUpdate) (models.SubscriptionUpdate, error) {
	var upd models.SubscriptionUpdate
	if req.Plano != "" {
		plano := req.Plano
		upd.Plano = &plano
	}
	if req.Status != "" {
		status := req.Status
		upd.Status = &status
	}
	if req.DataInicio != "" {
		dataInicio, err := time.Parse("2006-01-02", req.DataInicio)
		if err != nil {
			return upd, fmt.Errorf("invalid data_inicio: %w", err)
		}
		upd.DataInicio = &dataInicio
	}
	if req.DataFim != "" {
		dataFim, err := time.Parse("2006-01-02", req.DataFim)
		if err != nil {
			return upd, fmt.Errorf("invalid data_fim: %w", err)
		}
		upd.DataFim = &dataFim
	}
	return upd, nil
}

// UpdateSubscription aplica a atualização parcial de assinatura, derruba
// o perfil em cache para que o gate de acesso enxergue o novo estado na
// próxima requisição e publica o evento de mudança de status. Devolve as
// linhas afetadas: zero indica usuário inexistente.
func (s *AdminService) UpdateSubscription(ctx context.Context, userUID string, req models.DummySubscriptionUpdate) (int, error) {
	upd, err := parseSubscriptionUpdate(req)
	if err != nil {
		return 0, err
	}
	count, err := s.repo.UpdateSubscription(ctx, userUID, upd)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, nil
	}

	cacheKey := userCacheKey(userUID)
	if err := s.cache.Invalidate(ctx, cacheKey); err != nil {
		s.log.Warn("failed to invalidate cached user", slog.String("key", cacheKey), sl.Err(err))
	}

	user, err := s.repo.GetUser(ctx, userUID)
	if err != nil {
		s.log.Warn("failed to load user for notification", slog.String("uid", userUID), sl.Err(err))
		return count, nil
	}
	msg := models.SubscriptionStatusMessage{
		Email:  user.Email,
		Nome:   user.Nome,
		Status: user.StatusAssinatura,
	}
	if user.Plano != nil {
		msg.Plano = *user.Plano
	}
	if err := s.publisher.Publish(rabbitmq.RoutingKeySubscriptionStatus, msg); err != nil {
		s.log.Warn("failed to publish subscription status event", sl.Err(err))
	}

	s.log.Info("updated subscription",
		slog.String("uid", userUID), slog.String("status", user.StatusAssinatura))
	return count, nil
}
