package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/financeflow-app/financeflow/internal/models"
)

type TransactionRepoMock struct{ mock.Mock }

func (m *TransactionRepoMock) CreateTransaction(ctx context.Context, tx models.Transaction) (string, error) {
	args := m.Called(ctx, tx)
	return args.String(0), args.Error(1)
}

func (m *TransactionRepoMock) ListTransactions(ctx context.Context, userUID string) ([]*models.Transaction, error) {
	args := m.Called(ctx, userUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Transaction), args.Error(1)
}

func (m *TransactionRepoMock) UpdateTransaction(ctx context.Context, tx models.Transaction, id, userUID string) (int, error) {
	args := m.Called(ctx, tx, id, userUID)
	return args.Int(0), args.Error(1)
}

func (m *TransactionRepoMock) RemoveTransaction(ctx context.Context, id, userUID string) (int, error) {
	args := m.Called(ctx, id, userUID)
	return args.Int(0), args.Error(1)
}

func TestTransaction_Create(t *testing.T) {
	repo := new(TransactionRepoMock)
	esperada := models.Transaction{
		UserUID:   "uid-1",
		Tipo:      models.TipoDespesa,
		Categoria: "Mercado",
		Descricao: "compras da semana",
		Valor:     152.30,
		Data:      time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
	}
	repo.On("CreateTransaction", mock.Anything, esperada).Return("tx-1", nil)

	svc := NewTransactionService(repo, newNoopLogger())
	id, err := svc.Create(context.Background(), "uid-1", models.DummyTransaction{
		Tipo:      models.TipoDespesa,
		Categoria: "Mercado",
		Descricao: "compras da semana",
		Valor:     152.30,
		Data:      "2024-06-10",
	})

	require.NoError(t, err)
	assert.Equal(t, "tx-1", id)
	repo.AssertExpectations(t)
}

func TestTransaction_Create_DataInvalida(t *testing.T) {
	svc := NewTransactionService(new(TransactionRepoMock), newNoopLogger())

	_, err := svc.Create(context.Background(), "uid-1", models.DummyTransaction{
		Tipo:      models.TipoDespesa,
		Categoria: "Mercado",
		Valor:     10,
		Data:      "10/06/2024",
	})

	assert.Error(t, err)
}

func TestTransaction_Update_NaoEncontrada(t *testing.T) {
	repo := new(TransactionRepoMock)
	repo.On("UpdateTransaction", mock.Anything, mock.Anything, "tx-x", "uid-1").Return(0, nil)

	svc := NewTransactionService(repo, newNoopLogger())
	count, err := svc.Update(context.Background(), "uid-1", "tx-x", models.DummyTransaction{
		Tipo:      models.TipoReceita,
		Categoria: "Salário",
		Valor:     100,
		Data:      "2024-06-01",
	})

	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
