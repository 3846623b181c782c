package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/financeflow-app/financeflow/internal/models"
)

var agora = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func setupInsightData(repo *RepoMock) {
	repo.On("ListTransactions", mock.Anything, "uid-1").Return([]*models.Transaction{
		{Tipo: models.TipoDespesa, Categoria: "Mercado", Valor: 850,
			Data: time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)},
	}, nil)
	repo.On("ListCategorias", mock.Anything, "uid-1").Return([]*models.Categoria{
		{Nome: "Mercado", OrcamentoMensal: 1000, Ativa: true, Tipo: models.TipoDespesa},
	}, nil)
	repo.On("ListMetas", mock.Anything, "uid-1").Return([]*models.Meta{}, nil)
}

func TestInsight_Generate_AplicaStatusLido(t *testing.T) {
	repo := new(RepoMock)
	cache := new(CacheMock)
	setupInsightData(repo)

	cache.On("Get", mock.Anything, "insight:uid-1:orcamento-limite-mercado", mock.Anything).
		Run(func(args mock.Arguments) {
			status := args.Get(2).(*string)
			*status = models.InsightLido
		}).Return(true, nil)

	svc := NewInsightService(repo, cache, newNoopLogger())
	insights, err := svc.Generate(context.Background(), "uid-1", agora)

	require.NoError(t, err)
	require.Len(t, insights, 1)
	assert.Equal(t, "orcamento-limite-mercado", insights[0].ID)
	assert.Equal(t, models.InsightLido, insights[0].Status)
}

func TestInsight_Generate_OmiteIgnorados(t *testing.T) {
	repo := new(RepoMock)
	cache := new(CacheMock)
	setupInsightData(repo)

	cache.On("Get", mock.Anything, "insight:uid-1:orcamento-limite-mercado", mock.Anything).
		Run(func(args mock.Arguments) {
			status := args.Get(2).(*string)
			*status = models.InsightIgnorado
		}).Return(true, nil)

	svc := NewInsightService(repo, cache, newNoopLogger())
	insights, err := svc.Generate(context.Background(), "uid-1", agora)

	require.NoError(t, err)
	assert.Empty(t, insights)
}

func TestInsight_Generate_SemMarcacaoVoltaComoNovo(t *testing.T) {
	repo := new(RepoMock)
	cache := new(CacheMock)
	setupInsightData(repo)

	cache.On("Get", mock.Anything, mock.Anything, mock.Anything).Return(false, nil)

	svc := NewInsightService(repo, cache, newNoopLogger())
	insights, err := svc.Generate(context.Background(), "uid-1", agora)

	require.NoError(t, err)
	require.Len(t, insights, 1)
	assert.Equal(t, models.InsightNovo, insights[0].Status)
}

func TestInsight_Generate_IgnoraCategoriasDeReceita(t *testing.T) {
	repo := new(RepoMock)
	cache := new(CacheMock)
	repo.On("ListTransactions", mock.Anything, "uid-1").Return([]*models.Transaction{}, nil)
	repo.On("ListCategorias", mock.Anything, "uid-1").Return([]*models.Categoria{
		{Nome: "Salário", OrcamentoMensal: 1000, Ativa: true, Tipo: models.TipoReceita},
		{Nome: "Inativa", OrcamentoMensal: 1000, Ativa: false, Tipo: models.TipoDespesa},
	}, nil)
	repo.On("ListMetas", mock.Anything, "uid-1").Return([]*models.Meta{}, nil)

	svc := NewInsightService(repo, cache, newNoopLogger())
	insights, err := svc.Generate(context.Background(), "uid-1", agora)

	require.NoError(t, err)
	assert.Empty(t, insights)
}

func TestInsight_SetStatus(t *testing.T) {
	cache := new(CacheMock)
	cache.On("Set", mock.Anything, "insight:uid-1:orcamento-limite-mercado",
		models.InsightLido, insightStatusTTL).Return(nil)

	svc := NewInsightService(new(RepoMock), cache, newNoopLogger())

	err := svc.SetStatus(context.Background(), "uid-1", "orcamento-limite-mercado", models.InsightLido)
	require.NoError(t, err)
	cache.AssertExpectations(t)
}

func TestInsight_SetStatus_StatusInvalido(t *testing.T) {
	svc := NewInsightService(new(RepoMock), new(CacheMock), newNoopLogger())

	err := svc.SetStatus(context.Background(), "uid-1", "qualquer", "novo")
	assert.ErrorIs(t, err, ErrInvalidInsightStatus)
}
