// Package repository implementa o armazenamento em PostgreSQL dos
// usuários, transações, categorias e metas. Todas as leituras são
// filtradas por igualdade no uid do usuário; escritas de assinatura são
// atualizações parciais de campos.
package repository

import (
	"context"
	"database/sql"
	"fmt"

	// Registro do driver pgx para uso com database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Storage encapsula a conexão com o PostgreSQL.
type Storage struct {
	DB *sql.DB
}

// New abre a conexão com o PostgreSQL e valida com um ping.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// CheckDatabaseReady verifica que o schema foi migrado.
func CheckDatabaseReady(storage *Storage) error {
	var exists bool
	err := storage.DB.QueryRow(`SELECT EXISTS (
        SELECT FROM information_schema.tables
        WHERE table_name = 'transacoes'
    )`).Scan(&exists)
	if err != nil || !exists {
		return fmt.Errorf("required table transacoes missing or query error: %w", err)
	}
	return nil
}
