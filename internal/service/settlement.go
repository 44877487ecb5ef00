package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/JoaFoschiatti/gestioneo-transfers/internal/domain"
	"github.com/JoaFoschiatti/gestioneo-transfers/internal/eventbus"
	"github.com/JoaFoschiatti/gestioneo-transfers/pkg/logger"
)

// ManualMatchReason stamps operator-driven settlements.
const ManualMatchReason = "manual match by operator"

// Settler drives the atomic settlement of a decided match. The storage layer
// owns the transaction; events go out only after it committed.
type Settler struct {
	repo      domain.Repository
	bus       eventbus.EventBus
	tolerance decimal.Decimal
	logger    *logger.Logger
}

func NewSettler(repo domain.Repository, bus eventbus.EventBus, tolerance decimal.Decimal, log *logger.Logger) *Settler {
	return &Settler{
		repo:      repo,
		bus:       bus,
		tolerance: tolerance,
		logger:    log,
	}
}

func (s *Settler) Settle(ctx context.Context, transferID string, orderID int64, score float64, reason string) (*domain.Settlement, error) {
	ctx = logger.WithTransferID(ctx, transferID)

	settlement, err := s.repo.SettleTransfer(ctx, domain.SettlementParams{
		TransferID: transferID,
		OrderID:    orderID,
		Score:      score,
		Reason:     reason,
		Tolerance:  s.tolerance,
	})
	if err != nil {
		s.logger.Error(ctx, "Settlement failed",
			"order_id", orderID,
			"error", err,
		)
		return nil, err
	}

	s.logger.Info(ctx, "Transfer settled",
		"order_id", orderID,
		"payment_id", settlement.Payment.ID,
		"score", score,
		"order_status", settlement.Order.Status,
	)

	s.publish(ctx, eventbus.EventTypeOrderUpdated, eventbus.OrderUpdatedEvent{
		Order: settlement.Order,
	})
	s.publish(ctx, eventbus.EventTypeTransferMatched, eventbus.TransferMatchedEvent{
		Transfer: settlement.Transfer,
		Payment:  settlement.Payment,
		Order:    settlement.Order,
	})

	return settlement, nil
}

func (s *Settler) publish(ctx context.Context, eventType eventbus.EventType, payload interface{}) {
	err := s.bus.Publish(ctx, eventbus.Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Payload:   payload,
		Timestamp: time.Now(),
	})
	if err != nil {
		s.logger.Warn(ctx, "Failed to publish event",
			"event_type", eventType,
			"error", err,
		)
	}
}
