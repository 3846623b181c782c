package repository

import (
	"context"
	"fmt"

	"github.com/financeflow-app/financeflow/internal/models"
)

// CreateCategoria insere uma categoria e devolve o id gerado.
func (s *Storage) CreateCategoria(ctx context.Context, cat models.Categoria) (string, error) {
	const op = "storage.CreateCategoria"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO categorias (user_uid, nome, icone, cor, orcamento_mensal, ativa, tipo)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING id`
	var newID string
	err := s.DB.QueryRowContext(ctx, query,
		cat.UserUID, cat.Nome, cat.Icone, cat.Cor, cat.OrcamentoMensal, cat.Ativa, cat.Tipo).Scan(&newID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListCategorias devolve todas as categorias do usuário em ordem de nome.
func (s *Storage) ListCategorias(ctx context.Context, userUID string) ([]*models.Categoria, error) {
	const op = "storage.ListCategorias"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_uid, nome, icone, cor, orcamento_mensal, ativa, tipo
			  FROM categorias
			  WHERE user_uid = $1
			  ORDER BY nome`
	rows, err := s.DB.QueryContext(ctx, query, userUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Categoria
	for rows.Next() {
		var item models.Categoria
		if err := rows.Scan(&item.ID, &item.UserUID, &item.Nome, &item.Icone,
			&item.Cor, &item.OrcamentoMensal, &item.Ativa, &item.Tipo); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateCategoria atualiza uma categoria do usuário e devolve as linhas
// afetadas. Renomear a categoria não reescreve o histórico de
// transações — comportamento herdado, vínculo é pelo nome.
func (s *Storage) UpdateCategoria(ctx context.Context, cat models.Categoria, id, userUID string) (int, error) {
	const op = "storage.UpdateCategoria"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE categorias
			  SET nome = $1, icone = $2, cor = $3, orcamento_mensal = $4, ativa = $5, tipo = $6
			  WHERE id = $7 AND user_uid = $8`
	result, err := s.DB.ExecContext(ctx, query,
		cat.Nome, cat.Icone, cat.Cor, cat.OrcamentoMensal, cat.Ativa, cat.Tipo, id, userUID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// RemoveCategoria apaga uma categoria do usuário e devolve as linhas
// afetadas.
func (s *Storage) RemoveCategoria(ctx context.Context, id, userUID string) (int, error) {
	const op = "storage.RemoveCategoria"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM categorias WHERE id = $1 AND user_uid = $2`
	result, err := s.DB.ExecContext(ctx, query, id, userUID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}
