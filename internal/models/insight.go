package models

import "time"

// Tipos de insight gerados pelo motor de regras.
const (
	InsightGastos    = "gastos"
	InsightMetas     = "metas"
	InsightOrcamento = "orcamento"
	InsightReceitas  = "receitas"
	InsightHabitos   = "habitos"
)

// Prioridades de insight.
const (
	PrioridadeAlta  = "alta"
	PrioridadeMedia = "media"
	PrioridadeBaixa = "baixa"
)

// Status de visualização de um insight. Não é persistido no banco:
// vive apenas no cache, com TTL, e é reaplicado a cada regeneração.
const (
	InsightNovo     = "novo"
	InsightLido     = "lido"
	InsightIgnorado = "ignorado"
)

// Insight é um aviso derivado dos dados do usuário. Efêmero: recalculado
// sob demanda e nunca gravado no banco. O ID é um slug determinístico
// (regra + assunto) para que o status de visualização sobreviva à
// regeneração.
type Insight struct {
	ID         string         `json:"id"`
	Tipo       string         `json:"tipo"`
	Prioridade string         `json:"prioridade"`
	Titulo     string         `json:"titulo"`
	Descricao  string         `json:"descricao"`
	Dados      map[string]any `json:"dados,omitempty"`
	Status     string         `json:"status"`
	CriadoEm   time.Time      `json:"criado_em"`
}
