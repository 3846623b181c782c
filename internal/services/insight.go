package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/financeflow-app/financeflow/internal/lib/aggregate"
	"github.com/financeflow-app/financeflow/internal/lib/insight"
	"github.com/financeflow-app/financeflow/internal/lib/sl"
	"github.com/financeflow-app/financeflow/internal/models"
)

// ErrInvalidInsightStatus é devolvido quando o status pedido não é
// "lido" nem "ignorado".
var ErrInvalidInsightStatus = fmt.Errorf("invalid insight status")

// TTL do status de visualização de um insight. Depois disso o insight
// volta como novo caso as condições que o geraram persistam.
const insightStatusTTL = 30 * 24 * time.Hour

func insightStatusKey(userUID, insightID string) string {
	return fmt.Sprintf("insight:%s:%s", userUID, insightID)
}

// InsightService gera os insights sob demanda e mantém o estado de
// visualização no cache. Os insights nunca são gravados no banco: o ID
// determinístico de cada regra permite reaplicar o status após cada
// regeneração.
type InsightService struct {
	repo  DashboardRepository
	cache Cache
	log   *slog.Logger
}

// NewInsightService cria um novo InsightService.
func NewInsightService(repo DashboardRepository, cache Cache, log *slog.Logger) *InsightService {
	return &InsightService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// Generate recalcula os insights do usuário com os dados do mês corrente
// e aplica o estado de visualização: insights ignorados são omitidos,
// insights lidos voltam marcados como lidos.
func (s *InsightService) Generate(ctx context.Context, userUID string, now time.Time) ([]models.Insight, error) {
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

	period := &aggregate.Period{Month: now.Month(), Year: now.Year()}
	gastos := aggregate.CalculateGastosPorCategoria(derefTransactions(transactions), period)

	var entrada []insight.CategoriaGasto
	for _, c := range categorias {
		if !c.Ativa || c.Tipo != models.TipoDespesa {
			continue
		}
		entrada = append(entrada, insight.CategoriaGasto{
			Nome:            c.Nome,
			OrcamentoMensal: c.OrcamentoMensal,
			GastoAtual:      gastos[c.Nome],
		})
	}

	gerados := insight.Generate(entrada, derefMetas(metas), now)

	result := make([]models.Insight, 0, len(gerados))
	for _, ins := range gerados {
		var status string
		found, err := s.cache.Get(ctx, insightStatusKey(userUID, ins.ID), &status)
		if err != nil {
			s.log.Warn("failed to read insight status", slog.String("id", ins.ID), sl.Err(err))
		}
		if found {
			if status == models.InsightIgnorado {
				continue
			}
			ins.Status = status
		}
		result = append(result, ins)
	}
	return result, nil
}

// SetStatus marca um insight como lido ou ignorado. A marcação vive no
// cache com TTL; nenhuma validação de existência do ID é feita porque o
// conjunto de insights muda a cada regeneração.
func (s *InsightService) SetStatus(ctx context.Context, userUID, insightID, status string) error {
	if status != models.InsightLido && status != models.InsightIgnorado {
		return ErrInvalidInsightStatus
	}
	return s.cache.Set(ctx, insightStatusKey(userUID, insightID), status, insightStatusTTL)
}
