package models

import "time"

// Tipos de transação e de categoria.
const (
	TipoReceita = "receita"
	TipoDespesa = "despesa"
)

// Transaction representa um lançamento financeiro de um usuário.
// A categoria é referenciada pelo nome, não pelo id — comportamento
// herdado e documentado: renomear uma categoria desvincula o histórico.
type Transaction struct {
	ID        string    // Identificador único (uuid)
	UserUID   string    // Dono do lançamento
	Tipo      string    // receita ou despesa
	Categoria string    // Nome da categoria
	Descricao string    // Descrição livre
	Valor     float64   // Valor monetário, sempre >= 0
	Data      time.Time // Data do lançamento
	CreatedAt time.Time
}

// DummyTransaction recebe os dados de um lançamento do JSON.
// A data chega como string para ser validada e convertida manualmente.
type DummyTransaction struct {
	Tipo      string  `json:"tipo" validate:"required,oneof=receita despesa"`
	Categoria string  `json:"categoria" validate:"required"`
	Descricao string  `json:"descricao"`
	Valor     float64 `json:"valor" validate:"required,gte=0"`
	Data      string  `json:"data" validate:"required,datetime=2006-01-02"`
}
