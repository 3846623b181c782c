package services

import (
	"context"
	"log/slog"

	"github.com/financeflow-app/financeflow/internal/lib/aggregate"
	"github.com/financeflow-app/financeflow/internal/models"
)

// DashboardRepository descreve as leituras necessárias para montar o
// painel financeiro.
type DashboardRepository interface {
	ListTransactions(ctx context.Context, userUID string) ([]*models.Transaction, error)
	ListCategorias(ctx context.Context, userUID string) ([]*models.Categoria, error)
	ListMetas(ctx context.Context, userUID string) ([]*models.Meta, error)
}

// DashboardSummary é a resposta consolidada do painel: totais da janela,
// quebras por categoria e resumos de orçamento e metas.
type DashboardSummary struct {
	Totais               aggregate.Totals            `json:"totais"`
	GastosPorCategoria   map[string]float64          `json:"gastos_por_categoria"`
	ReceitasPorCategoria map[string]float64          `json:"receitas_por_categoria"`
	Categorias           aggregate.CategoriasSummary `json:"categorias"`
	Metas                aggregate.MetasSummary      `json:"metas"`
}

// AnalyticsService monta o painel financeiro do usuário. Os números são
// sempre recalculados das transações no momento da leitura — não há
// contadores acumulados para corrigir.
type AnalyticsService struct {
	repo DashboardRepository
	log  *slog.Logger
}

// NewAnalyticsService cria um novo AnalyticsService.
func NewAnalyticsService(repo DashboardRepository, log *slog.Logger) *AnalyticsService {
	return &AnalyticsService{
		repo: repo,
		log:  log,
	}
}

func derefTransactions(list []*models.Transaction) []models.Transaction {
	result := make([]models.Transaction, 0, len(list))
	for _, t := range list {
		result = append(result, *t)
	}
	return result
}

func derefCategorias(list []*models.Categoria) []models.Categoria {
	result := make([]models.Categoria, 0, len(list))
	for _, c := range list {
		result = append(result, *c)
	}
	return result
}

func derefMetas(list []*models.Meta) []models.Meta {
	result := make([]models.Meta, 0, len(list))
	for _, m := range list {
		result = append(result, *m)
	}
	return result
}

// Summary calcula o painel do usuário para a janela informada.
// period nil agrega o histórico inteiro; os resumos de categorias e
// metas independem da janela, como no restante do produto.
func (s *AnalyticsService) Summary(ctx context.Context, userUID string, period *aggregate.Period) (*DashboardSummary, error) {
	transactions, err := s.repo.ListTransactions(ctx, userUID)
	if err != nil {
		return nil, err
	}
	categorias, err := s.repo.ListCategorias(ctx, userUID)
	if err != nil {
		return nil, err
	}
	metas, err := s.repo.ListMetas(ctx, userUID)
	if err != nil {
		return nil, err
	}

	txs := derefTransactions(transactions)
	gastos := aggregate.CalculateGastosPorCategoria(txs, period)

	return &DashboardSummary{
		Totais:               aggregate.CalculateTotals(txs, period),
		GastosPorCategoria:   gastos,
		ReceitasPorCategoria: aggregate.CalculateReceitasPorCategoria(txs, period),
		Categorias:           aggregate.CalculateCategoriasSummary(derefCategorias(categorias), gastos),
		Metas:                aggregate.CalculateMetasSummary(derefMetas(metas)),
	}, nil
}
