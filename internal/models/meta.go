package models

import "time"

// Status possíveis de uma meta de poupança.
const (
	MetaAtiva     = "ativa"
	MetaConcluida = "concluida"
	MetaAtrasada  = "atrasada"
	MetaCancelada = "cancelada"
)

// Meta representa um objetivo de poupança de um usuário.
// O progresso é sempre ValorAtual/ValorObjetivo; apenas metas com status
// "ativa" entram nos resumos e na geração de insights.
type Meta struct {
	ID            string     // Identificador único (uuid)
	UserUID       string     // Dono da meta
	Nome          string     // Nome de exibição
	Descricao     string     // Descrição livre
	ValorObjetivo float64    // Valor alvo
	ValorAtual    float64    // Valor já poupado
	DataInicio    time.Time  // Início da meta
	DataLimite    *time.Time // Prazo (nil quando a meta não tem prazo)
	Prioridade    string     // alta, media ou baixa
	Status        string     // ver constantes acima
}

// DummyMeta recebe os dados de uma meta do JSON.
type DummyMeta struct {
	Nome          string  `json:"nome" validate:"required"`
	Descricao     string  `json:"descricao"`
	ValorObjetivo float64 `json:"valor_objetivo" validate:"required,gt=0"`
	ValorAtual    float64 `json:"valor_atual" validate:"gte=0"`
	DataInicio    string  `json:"data_inicio" validate:"required,datetime=2006-01-02"`
	DataLimite    string  `json:"data_limite,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Prioridade    string  `json:"prioridade" validate:"required,oneof=alta media baixa"`
	Status        string  `json:"status,omitempty" validate:"omitempty,oneof=ativa concluida atrasada cancelada"`
}
