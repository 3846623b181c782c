// Package models contém as estruturas de domínio do FinanceFlow:
// usuários, transações, categorias, metas e insights, além dos tipos
// auxiliares usados para receber dados de requisições JSON.
package models

import "time"

// Status possíveis de assinatura de um usuário.
// A política de acesso considera apenas StatusAtivo como liberado;
// a data de fim da assinatura nunca é consultada (o status vence a data).
const (
	StatusAtivo      = "ativo"
	StatusExpirado   = "expirado"
	StatusInativo    = "inativo"
	StatusNaoAssinou = "nao_assinou"
)

// Planos de assinatura disponíveis.
const (
	PlanoNenhum     = "nenhum"
	PlanoMensal     = "mensal"
	PlanoTrimestral = "trimestral"
)

// User representa um usuário cadastrado no sistema.
// Os campos de assinatura são alterados apenas pelo painel administrativo;
// o cadastro sempre cria o usuário com status "nao_assinou".
type User struct {
	UID                  string     // Identificador único do usuário
	Email                string     // Email (único, usado no login)
	Nome                 string     // Nome de exibição
	PasswordHash         string     // Hash bcrypt da senha
	Role                 string     // Papel do usuário: admin ou user
	Plano                *string    // Plano de assinatura (nil quando nunca assinou)
	StatusAssinatura     string     // Status da assinatura (ver constantes acima)
	DataInicioAssinatura *time.Time // Início da assinatura (nil quando ausente)
	DataFimAssinatura    *time.Time // Fim nominal da assinatura (nil quando ausente)
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// SubscriptionUpdate carrega a atualização parcial de assinatura feita
// pelo administrador. Campos nil não são alterados no banco.
type SubscriptionUpdate struct {
	Plano      *string
	Status     *string
	DataInicio *time.Time
	DataFim    *time.Time
}

// DummySubscriptionUpdate recebe do JSON a atualização de assinatura.
// As datas chegam como strings no formato 2006-01-02 para serem validadas
// e convertidas manualmente.
type DummySubscriptionUpdate struct {
	Plano      string `json:"plano,omitempty" validate:"omitempty,oneof=nenhum mensal trimestral"`
	Status     string `json:"status,omitempty" validate:"omitempty,oneof=ativo expirado inativo nao_assinou"`
	DataInicio string `json:"data_inicio,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DataFim    string `json:"data_fim,omitempty" validate:"omitempty,datetime=2006-01-02"`
}
