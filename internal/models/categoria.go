package models

// Categoria representa uma categoria de orçamento de um usuário.
// Categorias de receita apenas acumulam totais; categorias de despesa
// comparam o gasto do mês com o orçamento mensal configurado.
type Categoria struct {
	ID              string  // Identificador único (uuid)
	UserUID         string  // Dono da categoria
	Nome            string  // Nome de exibição (chave de vínculo das transações)
	Icone           string  // Glifo do ícone
	Cor             string  // Cor em hexadecimal
	OrcamentoMensal float64 // Orçamento mensal planejado
	Ativa           bool    // Categorias inativas ficam fora dos resumos
	Tipo            string  // receita ou despesa
}

// DummyCategoria recebe os dados de uma categoria do JSON.
type DummyCategoria struct {
	Nome            string  `json:"nome" validate:"required"`
	Icone           string  `json:"icone"`
	Cor             string  `json:"cor"`
	OrcamentoMensal float64 `json:"orcamento_mensal" validate:"gte=0"`
	Ativa           bool    `json:"ativa"`
	Tipo            string  `json:"tipo" validate:"required,oneof=receita despesa"`
}
