package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoaFoschiatti/gestioneo-transfers/internal/domain"
	"github.com/JoaFoschiatti/gestioneo-transfers/internal/eventbus"
	"github.com/JoaFoschiatti/gestioneo-transfers/internal/gateway"
	"github.com/JoaFoschiatti/gestioneo-transfers/internal/storage"
	"github.com/JoaFoschiatti/gestioneo-transfers/pkg/logger"
)

func newTestIngestor(store *storage.MemoryStore) *Ingestor {
	log := logger.NewNop()
	bus := eventbus.New(log, nil)
	matcher := newTestMatcher(store)
	settler := NewSettler(store, bus, decimal.NewFromFloat(0.01), log)

	return NewIngestor(store, matcher, settler, bus, log)
}

func movement(id, concept, amount string) gateway.RawMovement {
	return gateway.RawMovement{
		ID:          id,
		Type:        "transfer_in",
		Amount:      decimal.RequireFromString(amount),
		NetAmount:   decimal.RequireFromString(amount),
		Description: concept,
		Counterpart: gateway.Counterpart{Name: "Juan Perez"},
		CreatedAt:   time.Now(),
	}
}

func TestIngest_ConceptMatchSettlesImmediately(t *testing.T) {
	store := storage.NewMemoryStore()
	ingestor := newTestIngestor(store)

	seedOrder(store, 17, "4500.00")
	seedPendingTransferPayment(store, 17, "4500.00")

	transfer, err := ingestor.Ingest(context.Background(), movement("M-001", "PEDIDO 17", "4500.00"))
	require.NoError(t, err)

	assert.Equal(t, domain.TransferStatusMatched, transfer.Status)
	require.NotNil(t, transfer.OrderID)
	assert.Equal(t, int64(17), *transfer.OrderID)
	assert.Equal(t, ScoreExactConcept, transfer.MatchScore)
	require.NotNil(t, transfer.PaymentID)

	order, err := store.GetOrder(context.Background(), 17)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCompleted, order.Status)
}

func TestIngest_ReDeliveryIsNoOp(t *testing.T) {
	store := storage.NewMemoryStore()
	ingestor := newTestIngestor(store)

	seedOrder(store, 17, "4500.00")
	seedPendingTransferPayment(store, 17, "4500.00")

	first, err := ingestor.Ingest(context.Background(), movement("M-100", "PEDIDO 17", "4500.00"))
	require.NoError(t, err)
	require.Equal(t, domain.TransferStatusMatched, first.Status)

	// The same movement delivered again must not touch the settled state or
	// create another payment
	second, err := ingestor.Ingest(context.Background(), movement("M-100", "PEDIDO 17", "4500.00"))
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, domain.TransferStatusMatched, second.Status)
	assert.Equal(t, first.PaymentID, second.PaymentID)

	payments, err := store.ListOrderPayments(context.Background(), 17)
	require.NoError(t, err)
	assert.Len(t, payments, 1)
}

func TestIngest_AmbiguousMovementStaysPending(t *testing.T) {
	store := storage.NewMemoryStore()
	ingestor := newTestIngestor(store)

	seedOrder(store, 21, "3000.00")
	seedPendingTransferPayment(store, 21, "3000.00")
	seedOrder(store, 22, "3000.00")
	seedPendingTransferPayment(store, 22, "3000.00")

	transfer, err := ingestor.Ingest(context.Background(), movement("M-002", "transferencia", "3000.00"))
	require.NoError(t, err)

	assert.Equal(t, domain.TransferStatusPending, transfer.Status)
	assert.Equal(t, ScoreAmbiguous, transfer.MatchScore)
	assert.ElementsMatch(t, []int64{21, 22}, transfer.CandidateOrderIDs)
	assert.Nil(t, transfer.OrderID)

	// The review fields were persisted, not just returned
	stored, err := store.GetTransfer(context.Background(), transfer.ID)
	require.NoError(t, err)
	assert.Equal(t, ScoreAmbiguous, stored.MatchScore)
	assert.ElementsMatch(t, []int64{21, 22}, stored.CandidateOrderIDs)
}

func TestIngest_NoCandidateStaysPendingWithZeroScore(t *testing.T) {
	store := storage.NewMemoryStore()
	ingestor := newTestIngestor(store)

	transfer, err := ingestor.Ingest(context.Background(), movement("M-003", "propina", "750.00"))
	require.NoError(t, err)

	assert.Equal(t, domain.TransferStatusPending, transfer.Status)
	assert.Equal(t, ScoreNone, transfer.MatchScore)
	assert.Empty(t, transfer.CandidateOrderIDs)
}
