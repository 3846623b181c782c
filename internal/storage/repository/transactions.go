package repository

import (
	"context"
	"fmt"

	"github.com/financeflow-app/financeflow/internal/models"
)

// CreateTransaction insere um lançamento e devolve o id gerado.
func (s *Storage) CreateTransaction(ctx context.Context, tx models.Transaction) (string, error) {
	const op = "storage.CreateTransaction"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO transacoes (user_uid, tipo, categoria, descricao, valor, data)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id`
	var newID string
	err := s.DB.QueryRowContext(ctx, query,
		tx.UserUID, tx.Tipo, tx.Categoria, tx.Descricao, tx.Valor, tx.Data).Scan(&newID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListTransactions devolve todos os lançamentos do usuário, do mais
// recente para o mais antigo. A janela de mês/ano é aplicada em memória
// pelo motor de agregação, não aqui.
func (s *Storage) ListTransactions(ctx context.Context, userUID string) ([]*models.Transaction, error) {
	const op = "storage.ListTransactions"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_uid, tipo, categoria, descricao, valor, data, created_at
			  FROM transacoes
			  WHERE user_uid = $1
			  ORDER BY data DESC, created_at DESC`
	rows, err := s.DB.QueryContext(ctx, query, userUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Transaction
	for rows.Next() {
		var item models.Transaction
		if err := rows.Scan(&item.ID, &item.UserUID, &item.Tipo, &item.Categoria,
			&item.Descricao, &item.Valor, &item.Data, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateTransaction atualiza um lançamento do usuário e devolve as
// linhas afetadas. O filtro por user_uid impede edição cruzada.
func (s *Storage) UpdateTransaction(ctx context.Context, tx models.Transaction, id, userUID string) (int, error) {
	const op = "storage.UpdateTransaction"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE transacoes
			  SET tipo = $1, categoria = $2, descricao = $3, valor = $4, data = $5
			  WHERE id = $6 AND user_uid = $7`
	result, err := s.DB.ExecContext(ctx, query,
		tx.Tipo, tx.Categoria, tx.Descricao, tx.Valor, tx.Data, id, userUID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// RemoveTransaction apaga um lançamento do usuário e devolve as linhas
// afetadas.
func (s *Storage) RemoveTransaction(ctx context.Context, id, userUID string) (int, error) {
	const op = "storage.RemoveTransaction"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM transacoes WHERE id = $1 AND user_uid = $2`
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
