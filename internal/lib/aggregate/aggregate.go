// Package aggregate implementa o motor de agregação financeira: funções
// puras sobre coleções em memória de transações, categorias e metas,
// já filtradas para um único usuário. Nenhuma função realiza I/O nem
// devolve erro — ausência de dados degrada para zero/vazio.
package aggregate

import (
	"time"

	"github.com/financeflow-app/financeflow/internal/models"
)

// Period é a janela opcional (mês, ano) de agregação.
// Um ponteiro nil agrega o histórico inteiro.
type Period struct {
	Month time.Month
	Year  int
}

// Totals é o resultado de CalculateTotals.
type Totals struct {
	Receitas   float64 `json:"receitas"`
	Despesas   float64 `json:"despesas"`
	Saldo      float64 `json:"saldo"`
	Quantidade int     `json:"quantidade"`
}

// CategoriasSummary resume orçamento versus gasto das categorias ativas.
type CategoriasSummary struct {
	OrcamentoTotal       float64 `json:"orcamento_total"`
	GastoTotal           float64 `json:"gasto_total"`
	Saldo                float64 `json:"saldo"`
	CategoriasEstouradas int     `json:"categorias_estouradas"`
}

// MetasSummary resume as metas ativas do usuário.
type MetasSummary struct {
	TotalPoupado   float64      `json:"total_poupado"`
	TotalObjetivos float64      `json:"total_objetivos"`
	ProgressoMedio float64      `json:"progresso_medio"`
	ProximaMeta    *models.Meta `json:"proxima_meta,omitempty"`
}

func inPeriod(t models.Transaction, p *Period) bool {
	if p == nil {
		return true
	}
	return t.Data.Month() == p.Month && t.Data.Year() == p.Year
}

// CalculateTotals soma receitas e despesas dentro da janela opcional.
// Saldo é sempre receitas menos despesas; Quantidade conta as transações
// consideradas. Lista vazia devolve todos os campos zerados.
func CalculateTotals(transactions []models.Transaction, period *Period) Totals {
	var totals Totals
	for _, t := range transactions {
		if !inPeriod(t, period) {
			continue
		}
		switch t.Tipo {
		case models.TipoReceita:
			totals.Receitas += t.Valor
		case models.TipoDespesa:
			totals.Despesas += t.Valor
		}
		totals.Quantidade++
	}
	totals.Saldo = totals.Receitas - totals.Despesas
	return totals
}

func sumByCategoria(transactions []models.Transaction, tipo string, period *Period) map[string]float64 {
	result := make(map[string]float64)
	for _, t := range transactions {
		if t.Tipo != tipo || !inPeriod(t, period) {
			continue
		}
		result[t.Categoria] += t.Valor
	}
	return result
}

// CalculateGastosPorCategoria agrupa as despesas da janela pelo nome da
// categoria. Devolve um mapa vazio (não nil-error) quando nada casa.
func CalculateGastosPorCategoria(transactions []models.Transaction, period *Period) map[string]float64 {
	return sumByCategoria(transactions, models.TipoDespesa, period)
}

// CalculateReceitasPorCategoria agrupa as receitas da janela pelo nome da
// categoria. Partição disjunta de CalculateGastosPorCategoria: uma
// transação de receita nunca aparece no mapa de despesas e vice-versa.
func CalculateReceitasPorCategoria(transactions []models.Transaction, period *Period) map[string]float64 {
	return sumByCategoria(transactions, models.TipoReceita, period)
}

// CalculateCategoriasSummary compara orçamento e gasto das categorias
// ativas. O gasto de cada categoria é buscado no mapa pelo nome,
// assumindo zero quando ausente; uma categoria estoura quando o gasto
// supera o orçamento (orçamento zero sem gasto nunca conta como estouro).
func CalculateCategoriasSummary(categorias []models.Categoria, gastos map[string]float64) CategoriasSummary {
	var summary CategoriasSummary
	for _, c := range categorias {
		if !c.Ativa {
			continue
		}
		summary.OrcamentoTotal += c.OrcamentoMensal
		if gastos[c.Nome] > c.OrcamentoMensal {
			summary.CategoriasEstouradas++
		}
	}
	for _, valor := range gastos {
		summary.GastoTotal += valor
	}
	summary.Saldo = summary.OrcamentoTotal - summary.GastoTotal
	return summary
}

// CalculateMetasSummary resume as metas com status "ativa". O progresso
// médio é a média das razões atual/objetivo em percentual — zero quando
// não há metas ativas ou quando o objetivo de uma meta é zero (guarda de
// divisão). ProximaMeta é a meta ativa com prazo mais próximo; empates
// mantêm a ordem estável da entrada; nil quando nenhuma meta tem prazo.
func CalculateMetasSummary(metas []models.Meta) MetasSummary {
	var summary MetasSummary
	var ativas []models.Meta
	for _, m := range metas {
		if m.Status == models.MetaAtiva {
			ativas = append(ativas, m)
		}
	}
	if len(ativas) == 0 {
		return summary
	}

	var somaProgresso float64
	for _, m := range ativas {
		summary.TotalPoupado += m.ValorAtual
		summary.TotalObjetivos += m.ValorObjetivo
		if m.ValorObjetivo > 0 {
			somaProgresso += m.ValorAtual / m.ValorObjetivo
		}
	}
	summary.ProgressoMedio = somaProgresso / float64(len(ativas)) * 100

	for i := range ativas {
		if ativas[i].DataLimite == nil {
			continue
		}
		if summary.ProximaMeta == nil || ativas[i].DataLimite.Before(*summary.ProximaMeta.DataLimite) {
			summary.ProximaMeta = &ativas[i]
		}
	}
	return summary
}
