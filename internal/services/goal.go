package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/financeflow-app/financeflow/internal/models"
)

// GoalRepository descreve o contrato de persistência de metas.
type GoalRepository interface {
	CreateMeta(ctx context.Context, meta models.Meta) (string, error)
	ListMetas(ctx context.Context, userUID string) ([]*models.Meta, error)
	UpdateMeta(ctx context.Context, meta models.Meta, id, userUID string) (int, error)
	RemoveMeta(ctx context.Context, id, userUID string) (int, error)
}

// GoalService responde pelo CRUD de metas de poupança.
type GoalService struct {
	repo GoalRepository
	log  *slog.Logger
}

// NewGoalService cria um novo GoalService.
func NewGoalService(repo GoalRepository, log *slog.Logger) *GoalService {
	return &GoalService{
		repo: repo,
		log:  log,
	}
}

func parseMeta(req models.DummyMeta, userUID string) (models.Meta, error) {
	dataInicio, err := time.Parse("2006-01-02", req.DataInicio)
	if err != nil {
		return models.Meta{}, fmt.Errorf("invalid data_inicio: %w", err)
	}
	var dataLimitePtr *time.Time
	if req.DataLimite != "" {
		dataLimite, err := time.Parse("2006-01-02", req.DataLimite)
		if err != nil {
			return models.Meta{}, fmt.Errorf("invalid data_limite: %w", err)
		}
		dataLimitePtr = &dataLimite
	}
	status := req.Status
	if status == "" {
		status = models.MetaAtiva
	}
	return models.Meta{
		UserUID:       userUID,
		Nome:          req.Nome,
		Descricao:     req.Descricao,
		ValorObjetivo: req.ValorObjetivo,
		ValorAtual:    req.ValorAtual,
		DataInicio:    dataInicio,
		DataLimite:    dataLimitePtr,
		Prioridade:    req.Prioridade,
		Status:        status,
	}, nil
}

// Create grava uma nova meta do usuário e devolve o id.
func (s *GoalService) Create(ctx context.Context, userUID string, req models.DummyMeta) (string, error) {
	meta, err := parseMeta(req, userUID)
	if err != nil {
		return "", err
	}
	id, err := s.repo.CreateMeta(ctx, meta)
	if err != nil {
		return "", err
	}
	s.log.Info("created goal", slog.String("id", id))
	return id, nil
}

// List devolve todas as metas do usuário.
func (s *GoalService) List(ctx context.Context, userUID string) ([]*models.Meta, error) {
	return s.repo.ListMetas(ctx, userUID)
}

// Update substitui os campos de uma meta do usuário. Devolve as linhas
// afetadas: zero indica meta inexistente ou de outro dono.
func (s *GoalService) Update(ctx context.Context, userUID, id string, req models.DummyMeta) (int, error) {
	meta, err := parseMeta(req, userUID)
	if err != nil {
		return 0, err
	}
	return s.repo.UpdateMeta(ctx, meta, id, userUID)
}

// Remove apaga uma meta do usuário. Devolve as linhas afetadas.
func (s *GoalService) Remove(ctx context.Context, userUID, id string) (int, error) {
	return s.repo.RemoveMeta(ctx, id, userUID)
}
