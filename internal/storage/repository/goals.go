package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/financeflow-app/financeflow/internal/models"
)

// CreateMeta insere uma meta e devolve o id gerado.
func (s *Storage) CreateMeta(ctx context.Context, meta models.Meta) (string, error) {
	const op = "storage.CreateMeta"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO metas (user_uid, nome, descricao, valor_objetivo, valor_atual,
			      data_inicio, data_limite, prioridade, status)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING id`
	var newID string
	err := s.DB.QueryRowContext(ctx, query,
		meta.UserUID, meta.Nome, meta.Descricao, meta.ValorObjetivo, meta.ValorAtual,
		meta.DataInicio, meta.DataLimite, meta.Prioridade, meta.Status).Scan(&newID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListMetas devolve todas as metas do usuário em ordem de criação.
func (s *Storage) ListMetas(ctx context.Context, userUID string) ([]*models.Meta, error) {
	const op = "storage.ListMetas"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_uid, nome, descricao, valor_objetivo, valor_atual,
			      data_inicio, data_limite, prioridade, status
			  FROM metas
			  WHERE user_uid = $1
			  ORDER BY data_inicio`
	rows, err := s.DB.QueryContext(ctx, query, userUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Meta
	for rows.Next() {
		var item models.Meta
		var dataLimite sql.NullTime
		if err := rows.Scan(&item.ID, &item.UserUID, &item.Nome, &item.Descricao,
			&item.ValorObjetivo, &item.ValorAtual, &item.DataInicio, &dataLimite,
			&item.Prioridade, &item.Status); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if dataLimite.Valid {
			item.DataLimite = &dataLimite.Time
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateMeta atualiza uma meta do usuário e devolve as linhas afetadas.
func (s *Storage) UpdateMeta(ctx context.Context, meta models.Meta, id, userUID string) (int, error) {
	const op = "storage.UpdateMeta"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE metas
			  SET nome = $1, descricao = $2, valor_objetivo = $3, valor_atual = $4,
			      data_inicio = $5, data_limite = $6, prioridade = $7, status = $8
			  WHERE id = $9 AND user_uid = $10`
	result, err := s.DB.ExecContext(ctx, query,
		meta.Nome, meta.Descricao, meta.ValorObjetivo, meta.ValorAtual,
		meta.DataInicio, meta.DataLimite, meta.Prioridade, meta.Status, id, userUID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// RemoveMeta apaga uma meta do usuário e devolve as linhas afetadas.
func (s *Storage) RemoveMeta(ctx context.Context, id, userUID string) (int, error) {
	const op = "storage.RemoveMeta"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM metas WHERE id = $1 AND user_uid = $2`
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
