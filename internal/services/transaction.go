package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/financeflow-app/financeflow/internal/models"
)

// TransactionRepository descreve o contrato de persistência de
// lançamentos.
type TransactionRepository interface {
	CreateTransaction(ctx context.Context, tx models.Transaction) (string, error)
	ListTransactions(ctx context.Context, userUID string) ([]*models.Transaction, error)
	UpdateTransaction(ctx context.Context, tx models.Transaction, id, userUID string) (int, error)
	RemoveTransaction(ctx context.Context, id, userUID string) (int, error)
}

// TransactionService responde pelo CRUD de lançamentos.
type TransactionService struct {
	repo TransactionRepository
	log  *slog.Logger
}

// NewTransactionService cria um novo TransactionService.
func NewTransactionService(repo TransactionRepository, log *slog.Logger) *TransactionService {
	return &TransactionService{
		repo: repo,
		log:  log,
	}
}

func parseTransaction(req models.DummyTransaction, userUID string) (models.Transaction, error) {
	data, err := time.Parse("2006-01-02", req.Data)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("invalid data: %w", err)
	}
	return models.Transaction{
		UserUID:   userUID,
		Tipo:      req.Tipo,
		Categoria: req.Categoria,
		Descricao: req.Descricao,
		Valor:     req.Valor,
		Data:      data,
	}, nil
}

// Create grava um novo lançamento do usuário e devolve o id.
func (s *TransactionService) Create(ctx context.Context, userUID string, req models.DummyTransaction) (string, error) {
	tx, err := parseTransaction(req, userUID)
	if err != nil {
		return "", err
	}
	id, err := s.repo.CreateTransaction(ctx, tx)
	if err != nil {
		return "", err
	}
	s.log.Info("created transaction", slog.String("id", id))
	return id, nil
}

// List devolve todos os lançamentos do usuário.
func (s *TransactionService) List(ctx context.Context, userUID string) ([]*models.Transaction, error) {
	return s.repo.ListTransactions(ctx, userUID)
}

// Update substitui os campos de um lançamento do usuário. Devolve as
// linhas afetadas: zero indica lançamento inexistente ou de outro dono.
func (s *TransactionService) Update(ctx context.Context, userUID, id string, req models.DummyTransaction) (int, error) {
	tx, err := parseTransaction(req, userUID)
	if err != nil {
		return 0, err
	}
	count, err := s.repo.UpdateTransaction(ctx, tx, id, userUID)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Remove apaga um lançamento do usuário. Devolve as linhas afetadas.
func (s *TransactionService) Remove(ctx context.Context, userUID, id string) (int, error) {
	return s.repo.RemoveTransaction(ctx, id, userUID)
}
