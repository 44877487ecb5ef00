package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/JoaFoschiatti/gestioneo-transfers/internal/domain"
	"github.com/JoaFoschiatti/gestioneo-transfers/internal/eventbus"
	"github.com/JoaFoschiatti/gestioneo-transfers/internal/gateway"
	"github.com/JoaFoschiatti/gestioneo-transfers/pkg/logger"
)

// Ingestor records each gateway movement exactly once and drives the
// matching decision for fresh rows. Re-delivered movements are a no-op.
type Ingestor struct {
	repo    domain.Repository
	matcher *Matcher
	settler *Settler
	bus     eventbus.EventBus
	logger  *logger.Logger
}

func NewIngestor(repo domain.Repository, matcher *Matcher, settler *Settler, bus eventbus.EventBus, log *logger.Logger) *Ingestor {
	return &Ingestor{
		repo:    repo,
		matcher: matcher,
		settler: settler,
		bus:     bus,
		logger:  log,
	}
}

func (i *Ingestor) Ingest(ctx context.Context, movement gateway.RawMovement) (*domain.IncomingTransfer, error) {
	transfer := &domain.IncomingTransfer{
		ID:         uuid.New().String(),
		MovementID: movement.ID,
		Amount:     movement.Amount,
		Fee:        movement.Fee,
		NetAmount:  movement.NetAmount,
		PayerName:  movement.Counterpart.Name,
		PayerEmail: movement.Counterpart.Email,
		PayerTaxID: movement.Counterpart.TaxID,
		Concept:    movement.Description,
		Reference:  movement.Reference,
		RawPayload: movement.Raw,
		Status:     domain.TransferStatusPending,
		CreatedAt:  time.Now(),
	}

	stored, created, err := i.repo.CreateTransferIfAbsent(ctx, transfer)
	if err != nil {
		return nil, err
	}

	ctx = logger.WithTransferID(ctx, stored.ID)

	if !created {
		i.logger.Debug(ctx, "Movement already ingested",
			"movement_id", movement.ID,
			"status", stored.Status,
		)
		return stored, nil
	}

	i.logger.Info(ctx, "Movement ingested",
		"movement_id", movement.ID,
		"amount", movement.Amount,
		"concept", movement.Description,
	)

	decision, err := i.matcher.Decide(ctx, stored)
	if err != nil {
		return nil, err
	}

	if decision.Matched {
		settlement, err := i.settler.Settle(ctx, stored.ID, decision.OrderID, decision.Score, decision.Reason)
		if err != nil {
			return nil, err
		}
		return settlement.Transfer, nil
	}

	err = i.repo.UpdateTransferReview(ctx, stored.ID, decision.Score, decision.Reason, decision.CandidateIDs)
	if err != nil {
		return nil, err
	}

	stored.MatchScore = decision.Score
	stored.MatchReason = decision.Reason
	stored.CandidateOrderIDs = decision.CandidateIDs

	i.logger.Info(ctx, "Transfer left pending review",
		"movement_id", movement.ID,
		"score", decision.Score,
		"reason", decision.Reason,
	)

	publishErr := i.bus.Publish(ctx, eventbus.Event{
		ID:        uuid.New().String(),
		Type:      eventbus.EventTypeTransferPendingReview,
		Payload:   eventbus.TransferPendingReviewEvent{Transfer: stored, Reason: decision.Reason},
		Timestamp: time.Now(),
	})
	if publishErr != nil {
		i.logger.Warn(ctx, "Failed to publish pending review event",
			"error", publishErr,
		)
	}

	return stored, nil
}
