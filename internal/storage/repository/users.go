package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/financeflow-app/financeflow/internal/models"
)

func scanUser(row interface{ Scan(...any) error }) (*models.User, error) {
	u := &models.User{}
	var plano sql.NullString
	var dataInicio, dataFim sql.NullTime
	if err := row.Scan(&u.UID, &u.Email, &u.Nome, &u.PasswordHash, &u.Role,
		&plano, &u.StatusAssinatura, &dataInicio, &dataFim,
		&u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	if plano.Valid {
		u.Plano = &plano.String
	}
	if dataInicio.Valid {
		u.DataInicioAssinatura = &dataInicio.Time
	}
	if dataFim.Valid {
		u.DataFimAssinatura = &dataFim.Time
	}
	return u, nil
}

const userColumns = `uid, email, nome, password_hash, role, plano, status,
			      data_inicio_assinatura, data_fim_assinatura, created_at, updated_at`

// RegisterUser grava um novo usuário e devolve o uid gerado.
func (s *Storage) RegisterUser(ctx context.Context, user models.User) (string, error) {
	const op = "storage.RegisterUser"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newUID string
	query := `INSERT INTO users (email, nome, password_hash, role, status)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING uid;`
	if err := s.DB.QueryRowContext(ctx, query,
		user.Email, user.Nome, user.PasswordHash, user.Role,
		user.StatusAssinatura).Scan(&newUID); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newUID, nil
}

// GetUserByEmail devolve o usuário pelo email de login.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.GetUserByEmail"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + userColumns + `
			  FROM users
			  WHERE email = $1`
	u, err := scanUser(s.DB.QueryRowContext(ctx, query, email))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// GetUser devolve o usuário pelo uid.
func (s *Storage) GetUser(ctx context.Context, userUID string) (*models.User, error) {
	const op = "storage.GetUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + userColumns + `
			  FROM users
			  WHERE uid = $1`
	u, err := scanUser(s.DB.QueryRowContext(ctx, query, userUID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// ListUsers devolve os usuários ordenados do cadastro mais recente para
// o mais antigo, com paginação. Usado pelo painel administrativo.
func (s *Storage) ListUsers(ctx context.Context, limit, offset int) ([]*models.User, error) {
	const op = "storage.ListUsers"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + userColumns + `
			  FROM users
			  ORDER BY created_at DESC
			  LIMIT $1 OFFSET $2`
	rows, err := s.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateSubscription aplica a atualização parcial de assinatura do
// usuário (campos nil ficam intactos) e devolve as linhas afetadas.
func (s *Storage) UpdateSubscription(ctx context.Context, userUID string, upd models.SubscriptionUpdate) (int, error) {
	const op = "storage.UpdateSubscription"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users
			  SET plano = COALESCE($1, plano),
			      status = COALESCE($2, status),
			      data_inicio_assinatura = COALESCE($3, data_inicio_assinatura),
			      data_fim_assinatura = COALESCE($4, data_fim_assinatura),
			      updated_at = NOW()
			  WHERE uid = $5`
	result, err := s.DB.ExecContext(ctx, query,
		upd.Plano, upd.Status, upd.DataInicio, upd.DataFim, userUID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}
