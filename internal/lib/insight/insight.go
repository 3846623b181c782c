// Package insight implementa o gerador de insights: uma varredura de
// regras sobre as categorias (com gasto do mês) e metas do usuário que
// produz avisos legíveis. Função pura — os insights não são persistidos,
// são recalculados a cada chamada e descartados quando ignorados.
package insight

import (
	"fmt"
	"strings"
	"time"

	"github.com/financeflow-app/financeflow/internal/lib/month"
	"github.com/financeflow-app/financeflow/internal/models"
)

// Limiares das regras. Os valores vêm do produto e não são configuráveis.
const (
	// LimiteAlertaOrcamento — percentual de uso que dispara o aviso de
	// categoria próxima do limite.
	LimiteAlertaOrcamento = 80.0
	// GastoAltoMinimo — gasto mensal a partir do qual uma categoria é
	// candidata à sugestão de economia.
	GastoAltoMinimo = 1000.0
	// FracaoEconomia — redução hipotética aplicada na sugestão de economia.
	FracaoEconomia = 0.20
	// TaxaMensalInvestimento — 0,8% ao mês, usada na projeção de 10 anos.
	TaxaMensalInvestimento = 0.008
	// MesesProjecao — horizonte da projeção de investimento (10 anos).
	MesesProjecao = 120
)

// CategoriaGasto é a visão de entrada do gerador: uma categoria ativa de
// despesa com o gasto acumulado do mês corrente.
type CategoriaGasto struct {
	Nome            string
	OrcamentoMensal float64
	GastoAtual      float64
}

func slug(parts ...string) string {
	s := strings.ToLower(strings.Join(parts, "-"))
	return strings.ReplaceAll(s, " ", "-")
}

func novo(id, tipo, prioridade, titulo, descricao string, dados map[string]any, now time.Time) models.Insight {
	return models.Insight{
		ID:         id,
		Tipo:       tipo,
		Prioridade: prioridade,
		Titulo:     titulo,
		Descricao:  descricao,
		Dados:      dados,
		Status:     models.InsightNovo,
		CriadoEm:   now,
	}
}

// Generate executa todas as regras e devolve os insights resultantes.
// Cada regra é avaliada de forma independente; uma execução pode emitir
// zero, um ou vários insights de cada tipo. Entrada vazia (nenhuma
// categoria e nenhuma meta) devolve nil, nunca erro.
func Generate(categorias []CategoriaGasto, metas []models.Meta, now time.Time) []models.Insight {
	if len(categorias) == 0 && len(metas) == 0 {
		return nil
	}

	var insights []models.Insight

	// Regra 1: categoria próxima de estourar o orçamento.
	for _, cat := range categorias {
		if cat.OrcamentoMensal <= 0 {
			continue
		}
		percentual := cat.GastoAtual / cat.OrcamentoMensal * 100
		if percentual >= LimiteAlertaOrcamento && percentual < 100 {
			restante := cat.OrcamentoMensal - cat.GastoAtual
			insights = append(insights, novo(
				slug("orcamento-limite", cat.Nome),
				models.InsightOrcamento, models.PrioridadeMedia,
				fmt.Sprintf("%s próxima do limite", cat.Nome),
				fmt.Sprintf("Você já utilizou %.1f%% do orçamento de %s. Restam apenas R$ %.2f para este mês.",
					percentual, cat.Nome, restante),
				map[string]any{"categoria": cat.Nome, "percentual": percentual, "restante": restante},
				now,
			))
		}
	}

	// Regra 2: categoria com orçamento estourado. Uma categoria estourada
	// não emite também o aviso de limite da regra 1 (percentual >= 100).
	for _, cat := range categorias {
		if cat.OrcamentoMensal <= 0 || cat.GastoAtual <= cat.OrcamentoMensal {
			continue
		}
		excesso := cat.GastoAtual - cat.OrcamentoMensal
		insights = append(insights, novo(
			slug("orcamento-estourado", cat.Nome),
			models.InsightOrcamento, models.PrioridadeAlta,
			fmt.Sprintf("Orçamento de %s estourado!", cat.Nome),
			fmt.Sprintf("Você gastou R$ %.2f a mais do que o planejado em %s. Considere reduzir gastos nesta categoria.",
				excesso, cat.Nome),
			map[string]any{"categoria": cat.Nome, "excesso": excesso},
			now,
		))
	}

	// Regra 3: oportunidade de economia — apenas a primeira categoria com
	// gasto alto gera o aviso, mesmo que várias se qualifiquem.
	var gastoAlto []CategoriaGasto
	for _, cat := range categorias {
		if cat.GastoAtual > GastoAltoMinimo {
			gastoAlto = append(gastoAlto, cat)
		}
	}
	if len(gastoAlto) > 0 {
		cat := gastoAlto[0]
		economiaMensal := cat.GastoAtual * FracaoEconomia
		economiaAnual := economiaMensal * 12
		insights = append(insights, novo(
			slug("economia", cat.Nome),
			models.InsightGastos, models.PrioridadeMedia,
			fmt.Sprintf("Oportunidade de economia em %s", cat.Nome),
			fmt.Sprintf("Reduzindo 20%% dos gastos em %s, você economizaria R$ %.2f por mês, totalizando R$ %.2f por ano.",
				cat.Nome, economiaMensal, economiaAnual),
			map[string]any{"categoria": cat.Nome, "economiaMensal": economiaMensal, "economiaAnual": economiaAnual},
			now,
		))
	}

	// Regras 4 e 5: metas em risco e metas quase concluídas.
	// Somente metas ativas com objetivo positivo entram na avaliação.
	for _, meta := range metas {
		if meta.Status != models.MetaAtiva || meta.ValorObjetivo <= 0 {
			continue
		}
		progresso := meta.ValorAtual / meta.ValorObjetivo * 100

		if meta.DataLimite != nil {
			mesesRestantes := month.Remaining(*meta.DataLimite, now)
			if mesesRestantes <= 3 && progresso < 70 {
				faltante := meta.ValorObjetivo - meta.ValorAtual
				contribuicao := faltante / float64(mesesRestantes)
				insights = append(insights, novo(
					slug("meta-risco", meta.Nome),
					models.InsightMetas, models.PrioridadeAlta,
					fmt.Sprintf("Meta %q em risco", meta.Nome),
					fmt.Sprintf("Faltam apenas %d meses e você está em %.1f%% da meta. Você precisa investir R$ %.2f por mês para alcançá-la.",
						mesesRestantes, progresso, contribuicao),
					map[string]any{"meta": meta.Nome, "mesesRestantes": mesesRestantes, "contribuicaoNecessaria": contribuicao, "progressoAtual": progresso},
					now,
				))
			}
		}

		if progresso >= 80 && progresso < 100 {
			faltante := meta.ValorObjetivo - meta.ValorAtual
			insights = append(insights, novo(
				slug("meta-quase", meta.Nome),
				models.InsightMetas, models.PrioridadeMedia,
				fmt.Sprintf("Meta %q quase concluída!", meta.Nome),
				fmt.Sprintf("Você já alcançou %.1f%% da meta! Faltam apenas R$ %.2f para completar.", progresso, faltante),
				map[string]any{"meta": meta.Nome, "progressoAtual": progresso, "faltante": faltante},
				now,
			))
		}
	}

	// Regra 6: projeção de investimento sobre a economia hipotética de
	// todas as categorias de gasto alto, capitalizada mensalmente.
	var economiaTotal float64
	for _, cat := range gastoAlto {
		economiaTotal += cat.GastoAtual * FracaoEconomia
	}
	if economiaTotal > 0 {
		var montante float64
		for range MesesProjecao {
			montante = (montante + economiaTotal) * (1 + TaxaMensalInvestimento)
		}
		insights = append(insights, novo(
			slug("investimento"),
			models.InsightHabitos, models.PrioridadeMedia,
			"Potencial de investimento",
			fmt.Sprintf("Investindo R$ %.2f por mês a 0,8%% ao mês, em 10 anos você teria R$ %.2f!",
				economiaTotal, montante),
			map[string]any{"economiaMensal": economiaTotal, "montanteFinal": montante, "anos": 10},
			now,
		))
	}

	return insights
}
