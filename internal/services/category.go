package services

import (
	"context"
	"log/slog"

	"github.com/financeflow-app/financeflow/internal/models"
)

// CategoryRepository descreve o contrato de persistência de categorias.
type CategoryRepository interface {
	CreateCategoria(ctx context.Context, cat models.Categoria) (string, error)
	ListCategorias(ctx context.Context, userUID string) ([]*models.Categoria, error)
	UpdateCategoria(ctx context.Context, cat models.Categoria, id, userUID string) (int, error)
	RemoveCategoria(ctx context.Context, id, userUID string) (int, error)
}

// CategoryService responde pelo CRUD de categorias de orçamento.
type CategoryService struct {
	repo CategoryRepository
	log  *slog.Logger
}

// NewCategoryService cria um novo CategoryService.
func NewCategoryService(repo CategoryRepository, log *slog.Logger) *CategoryService {
	return &CategoryService{
		repo: repo,
		log:  log,
	}
}

func buildCategoria(req models.DummyCategoria, userUID string) models.Categoria {
	return models.Categoria{
		UserUID:         userUID,
		Nome:            req.Nome,
		Icone:           req.Icone,
		Cor:             req.Cor,
		OrcamentoMensal: req.OrcamentoMensal,
		Ativa:           req.Ativa,
		Tipo:            req.Tipo,
	}
}

// Create grava uma nova categoria do usuário e devolve o id.
func (s *CategoryService) Create(ctx context.Context, userUID string, req models.DummyCategoria) (string, error) {
	id, err := s.repo.CreateCategoria(ctx, buildCategoria(req, userUID))
	if err != nil {
		return "", err
	}
	s.log.Info("created category", slog.String("id", id))
	return id, nil
}

// List devolve todas as categorias do usuário.
func (s *CategoryService) List(ctx context.Context, userUID string) ([]*models.Categoria, error) {
	return s.repo.ListCategorias(ctx, userUID)
}

// Update substitui os campos de uma categoria do usuário. Devolve as
// linhas afetadas: zero indica categoria inexistente ou de outro dono.
func (s *CategoryService) Update(ctx context.Context, userUID, id string, req models.DummyCategoria) (int, error) {
	return s.repo.UpdateCategoria(ctx, buildCategoria(req, userUID), id, userUID)
}

// Remove apaga uma categoria do usuário. O histórico de lançamentos que
// referenciam o nome fica intacto. Devolve as linhas afetadas.
func (s *CategoryService) Remove(ctx context.Context, userUID, id string) (int, error) {
	return s.repo.RemoveCategoria(ctx, id, userUID)
}
