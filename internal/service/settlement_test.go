package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/JoaFoschiatti/gestioneo-transfers/internal/domain"
	"github.com/JoaFoschiatti/gestioneo-transfers/internal/eventbus"
	"github.com/JoaFoschiatti/gestioneo-transfers/internal/storage"
	"github.com/JoaFoschiatti/gestioneo-transfers/mocks"
	"github.com/JoaFoschiatti/gestioneo-transfers/pkg/logger"
)

func newTestSettler(store *storage.MemoryStore) *Settler {
	bus := eventbus.New(logger.NewNop(), nil)
	return NewSettler(store, bus, decimal.NewFromFloat(0.01), logger.NewNop())
}

func seedTransfer(t *testing.T, store *storage.MemoryStore, concept, amount string) *domain.IncomingTransfer {
	t.Helper()

	stored, created, err := store.CreateTransferIfAbsent(context.Background(), pendingTransfer(concept, amount))
	require.NoError(t, err)
	require.True(t, created)

	return stored
}

func TestSettle_FullCoverageCompletesOrderAndFreesTable(t *testing.T) {
	store := storage.NewMemoryStore()
	settler := newTestSettler(store)

	tableID := int64(4)
	store.SeedTable(&domain.Table{ID: tableID, Status: domain.TableStatusOccupied})
	store.SeedOrder(&domain.Order{
		ID:            17,
		Total:         decimal.RequireFromString("4500.00"),
		PaymentStatus: domain.PaymentStatusPending,
		Status:        domain.OrderStatusDelivered,
		TableID:       &tableID,
		CreatedAt:     time.Now(),
	})
	paymentID := seedPendingTransferPayment(store, 17, "4500.00")
	transfer := seedTransfer(t, store, "PEDIDO 17", "4500.00")

	settlement, err := settler.Settle(context.Background(), transfer.ID, 17, ScoreExactConcept, "exact concept and amount match for order 17")
	require.NoError(t, err)

	assert.Equal(t, domain.TransferStatusMatched, settlement.Transfer.Status)
	require.NotNil(t, settlement.Transfer.OrderID)
	assert.Equal(t, int64(17), *settlement.Transfer.OrderID)
	assert.NotNil(t, settlement.Transfer.MatchedAt)

	// The existing pending payment was approved, not duplicated
	assert.Equal(t, paymentID, settlement.Payment.ID)
	assert.Equal(t, domain.PaymentStatusApproved, settlement.Payment.Status)
	assert.Equal(t, "transfer:"+transfer.MovementID, settlement.Payment.Reference)
	assert.NotNil(t, settlement.Payment.ApprovedAt)

	assert.Equal(t, domain.PaymentStatusApproved, settlement.Order.PaymentStatus)
	assert.Equal(t, domain.OrderStatusCompleted, settlement.Order.Status)

	table, ok := store.GetTable(tableID)
	require.True(t, ok)
	assert.Equal(t, domain.TableStatusFree, table.Status)
}

func TestSettle_PartialCoverageLeavesOrderOpen(t *testing.T) {
	store := storage.NewMemoryStore()
	settler := newTestSettler(store)

	tableID := int64(2)
	store.SeedTable(&domain.Table{ID: tableID, Status: domain.TableStatusOccupied})
	store.SeedOrder(&domain.Order{
		ID:            9,
		Total:         decimal.RequireFromString("8000.00"),
		PaymentStatus: domain.PaymentStatusPending,
		Status:        domain.OrderStatusDelivered,
		TableID:       &tableID,
		CreatedAt:     time.Now(),
	})
	seedPendingTransferPayment(store, 9, "3000.00")
	transfer := seedTransfer(t, store, "#9", "3000.00")

	settlement, err := settler.Settle(context.Background(), transfer.ID, 9, ScoreExactConcept, "exact concept and amount match for order 9")
	require.NoError(t, err)

	assert.Equal(t, domain.PaymentStatusApproved, settlement.Order.PaymentStatus)
	assert.Equal(t, domain.OrderStatusDelivered, settlement.Order.Status)

	table, ok := store.GetTable(tableID)
	require.True(t, ok)
	assert.Equal(t, domain.TableStatusOccupied, table.Status)
}

func TestSettle_MultiplePendingPaymentsCreateFreshPayment(t *testing.T) {
	store := storage.NewMemoryStore()
	settler := newTestSettler(store)

	store.SeedOrder(&domain.Order{
		ID:            11,
		Total:         decimal.RequireFromString("5000.00"),
		PaymentStatus: domain.PaymentStatusPending,
		Status:        domain.OrderStatusDelivered,
		CreatedAt:     time.Now(),
	})
	firstID := seedPendingTransferPayment(store, 11, "2500.00")
	secondID := seedPendingTransferPayment(store, 11, "2500.00")
	transfer := seedTransfer(t, store, "#11", "5000.00")

	settlement, err := settler.Settle(context.Background(), transfer.ID, 11, ScoreExactConcept, ManualMatchReason)
	require.NoError(t, err)

	// Never guess between pending rows
	assert.NotEqual(t, firstID, settlement.Payment.ID)
	assert.NotEqual(t, secondID, settlement.Payment.ID)
	assert.Equal(t, domain.PaymentStatusApproved, settlement.Payment.Status)
	assert.True(t, settlement.Payment.Amount.Equal(transfer.Amount))

	payments, err := store.ListOrderPayments(context.Background(), 11)
	require.NoError(t, err)
	assert.Len(t, payments, 3)
}

func TestSettle_AlreadyResolved(t *testing.T) {
	store := storage.NewMemoryStore()
	settler := newTestSettler(store)

	seedOrder(store, 5, "1000.00")
	seedPendingTransferPayment(store, 5, "1000.00")
	transfer := seedTransfer(t, store, "#5", "1000.00")

	_, err := settler.Settle(context.Background(), transfer.ID, 5, ScoreExactConcept, "first")
	require.NoError(t, err)

	_, err = settler.Settle(context.Background(), transfer.ID, 5, ScoreExactConcept, "second")
	assert.ErrorIs(t, err, domain.ErrTransferAlreadyResolved)
}

func TestSettle_OrderNotFound(t *testing.T) {
	store := storage.NewMemoryStore()
	settler := newTestSettler(store)

	transfer := seedTransfer(t, store, "#77", "1000.00")

	_, err := settler.Settle(context.Background(), transfer.ID, 77, ScoreExactConcept, ManualMatchReason)
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestSettle_StorageErrorPropagates(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	bus := eventbus.New(logger.NewNop(), nil)
	settler := NewSettler(repo, bus, decimal.NewFromFloat(0.01), logger.NewNop())

	storageErr := errors.New("deadlock detected")
	repo.EXPECT().
		SettleTransfer(mock.Anything, mock.AnythingOfType("domain.SettlementParams")).
		Return(nil, storageErr)

	_, err := settler.Settle(context.Background(), uuid.New().String(), 1, ScoreUniqueAmount, "unique amount match for order 1")
	assert.ErrorIs(t, err, storageErr)
}
