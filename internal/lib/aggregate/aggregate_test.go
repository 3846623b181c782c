package aggregate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/financeflow-app/financeflow/internal/models"
)

func data(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func sampleTransactions() []models.Transaction {
	return []models.Transaction{
		{Tipo: models.TipoReceita, Categoria: "Salário", Valor: 5000, Data: data(2024, time.June, 5)},
		{Tipo: models.TipoDespesa, Categoria: "Mercado", Valor: 120, Data: data(2024, time.June, 10)},
		{Tipo: models.TipoDespesa, Categoria: "Mercado", Valor: 80, Data: data(2024, time.May, 10)},
		{Tipo: models.TipoReceita, Categoria: "Freelance", Valor: 900, Data: data(2024, time.May, 20)},
	}
}

func TestCalculateTotals(t *testing.T) {
	tests := []struct {
		name         string
		transactions []models.Transaction
		period       *Period
		want         Totals
	}{
		{
			name:         "janela de junho de 2024",
			transactions: sampleTransactions(),
			period:       &Period{Month: time.June, Year: 2024},
			want:         Totals{Receitas: 5000, Despesas: 120, Saldo: 4880, Quantidade: 2},
		},
		{
			name:         "sem janela agrega o histórico inteiro",
			transactions: sampleTransactions(),
			period:       nil,
			want:         Totals{Receitas: 5900, Despesas: 200, Saldo: 5700, Quantidade: 4},
		},
		{
			name:         "lista vazia devolve zeros",
			transactions: nil,
			period:       &Period{Month: time.June, Year: 2024},
			want:         Totals{},
		},
		{
			name:         "janela sem lançamentos devolve zeros",
			transactions: sampleTransactions(),
			period:       &Period{Month: time.January, Year: 2023},
			want:         Totals{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateTotals(tt.transactions, tt.period)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGastosEReceitasPorCategoria(t *testing.T) {
	transactions := sampleTransactions()
	period := &Period{Month: time.June, Year: 2024}

	gastos := CalculateGastosPorCategoria(transactions, period)
	receitas := CalculateReceitasPorCategoria(transactions, period)

	assert.Equal(t, map[string]float64{"Mercado": 120}, gastos)
	assert.Equal(t, map[string]float64{"Salário": 5000}, receitas)

	// Partição disjunta: nenhuma categoria aparece nos dois mapas.
	for nome := range gastos {
		_, ok := receitas[nome]
		assert.False(t, ok, "categoria %s presente nos dois mapas", nome)
	}
}

func TestGastosPorCategoria_SomaMultiplosLancamentos(t *testing.T) {
	transactions := []models.Transaction{
		{Tipo: models.TipoDespesa, Categoria: "Mercado", Valor: 100, Data: data(2024, time.June, 1)},
		{Tipo: models.TipoDespesa, Categoria: "Mercado", Valor: 50.5, Data: data(2024, time.June, 15)},
		{Tipo: models.TipoDespesa, Categoria: "Transporte", Valor: 30, Data: data(2024, time.June, 20)},
	}

	gastos := CalculateGastosPorCategoria(transactions, &Period{Month: time.June, Year: 2024})

	assert.InDelta(t, 150.5, gastos["Mercado"], 0.001)
	assert.InDelta(t, 30, gastos["Transporte"], 0.001)
	assert.Len(t, gastos, 2)
}

func TestCalculateCategoriasSummary(t *testing.T) {
	categorias := []models.Categoria{
		{Nome: "Mercado", OrcamentoMensal: 500, Ativa: true, Tipo: models.TipoDespesa},
		{Nome: "Lazer", OrcamentoMensal: 200, Ativa: true, Tipo: models.TipoDespesa},
		{Nome: "Antiga", OrcamentoMensal: 1000, Ativa: false, Tipo: models.TipoDespesa},
	}
	gastos := map[string]float64{
		"Mercado": 450,
		"Lazer":   250,
	}

	summary := CalculateCategoriasSummary(categorias, gastos)

	// A categoria inativa fica fora do orçamento total.
	assert.Equal(t, 700.0, summary.OrcamentoTotal)
	assert.Equal(t, 700.0, summary.GastoTotal)
	assert.Equal(t, 0.0, summary.Saldo)
	assert.Equal(t, 1, summary.CategoriasEstouradas)
}

func TestCalculateCategoriasSummary_OrcamentoZeroSemGasto(t *testing.T) {
	categorias := []models.Categoria{
		{Nome: "Reserva", OrcamentoMensal: 0, Ativa: true, Tipo: models.TipoDespesa},
	}

	summary := CalculateCategoriasSummary(categorias, map[string]float64{})

	assert.Equal(t, 0, summary.CategoriasEstouradas)
}

func TestCalculateMetasSummary(t *testing.T) {
	prazoCurto := data(2024, time.August, 1)
	prazoLongo := data(2025, time.January, 1)
	metas := []models.Meta{
		{Nome: "Viagem", ValorObjetivo: 1000, ValorAtual: 500, DataLimite: &prazoLongo, Status: models.MetaAtiva},
		{Nome: "Reserva", ValorObjetivo: 2000, ValorAtual: 2000, DataLimite: &prazoCurto, Status: models.MetaAtiva},
		{Nome: "Cancelada", ValorObjetivo: 500, ValorAtual: 0, Status: models.MetaCancelada},
	}

	summary := CalculateMetasSummary(metas)

	assert.Equal(t, 2500.0, summary.TotalPoupado)
	assert.Equal(t, 3000.0, summary.TotalObjetivos)
	assert.InDelta(t, 75.0, summary.ProgressoMedio, 0.001)
	require.NotNil(t, summary.ProximaMeta)
	assert.Equal(t, "Reserva", summary.ProximaMeta.Nome)
}

func TestCalculateMetasSummary_SemMetasAtivas(t *testing.T) {
	metas := []models.Meta{
		{Nome: "Concluida", ValorObjetivo: 100, ValorAtual: 100, Status: models.MetaConcluida},
	}

	summary := CalculateMetasSummary(metas)

	assert.Equal(t, MetasSummary{}, summary)
}

func TestCalculateMetasSummary_ObjetivoZeroNaoDivide(t *testing.T) {
	metas := []models.Meta{
		{Nome: "Sem objetivo", ValorObjetivo: 0, ValorAtual: 50, Status: models.MetaAtiva},
		{Nome: "Normal", ValorObjetivo: 100, ValorAtual: 50, Status: models.MetaAtiva},
	}

	summary := CalculateMetasSummary(metas)

	// A meta sem objetivo contribui zero para o progresso médio.
	assert.InDelta(t, 25.0, summary.ProgressoMedio, 0.001)
	assert.Nil(t, summary.ProximaMeta)
}
