package service

import (
	"context"

	"github.com/JoaFoschiatti/gestioneo-transfers/internal/domain"
	"github.com/JoaFoschiatti/gestioneo-transfers/internal/gateway"
	"github.com/JoaFoschiatti/gestioneo-transfers/pkg/logger"
)

// TransferService is the manual-resolution surface backing the HTTP handler.
type TransferService interface {
	ListTransfers(ctx context.Context, filter domain.TransferFilter) ([]*domain.IncomingTransfer, domain.StatusTotals, error)
	Candidates(ctx context.Context, transferID string) ([]domain.CandidateScore, error)
	ManualMatch(ctx context.Context, transferID string, orderID int64) (*domain.Settlement, error)
	Reject(ctx context.Context, transferID, reason string) (*domain.IncomingTransfer, error)
	TriggerSync(ctx context.Context) domain.SyncResult
	AccountInfo(ctx context.Context) (*gateway.AccountInfo, error)
}

type transferService struct {
	repo      domain.Repository
	matcher   *Matcher
	settler   *Settler
	scheduler *Scheduler
	client    gateway.Client
	logger    *logger.Logger
}

func NewTransferService(
	repo domain.Repository,
	matcher *Matcher,
	settler *Settler,
	scheduler *Scheduler,
	client gateway.Client,
	log *logger.Logger,
) TransferService {
	return &transferService{
		repo:      repo,
		matcher:   matcher,
		settler:   settler,
		scheduler: scheduler,
		client:    client,
		logger:    log,
	}
}

func (s *transferService) ListTransfers(ctx context.Context, filter domain.TransferFilter) ([]*domain.IncomingTransfer, domain.StatusTotals, error) {
	transfers, totals, err := s.repo.ListTransfers(ctx, filter)
	if err != nil {
		s.logger.Error(ctx, "Failed to list transfers", "error", err)
		return nil, domain.StatusTotals{}, err
	}

	return transfers, totals, nil
}

func (s *transferService) Candidates(ctx context.Context, transferID string) ([]domain.CandidateScore, error) {
	ctx = logger.WithTransferID(ctx, transferID)

	scores, err := s.matcher.ScoreCandidates(ctx, transferID)
	if err != nil {
		s.logger.Error(ctx, "Failed to score candidates", "error", err)
		return nil, err
	}

	return scores, nil
}

func (s *transferService) ManualMatch(ctx context.Context, transferID string, orderID int64) (*domain.Settlement, error) {
	ctx = logger.WithTransferID(ctx, transferID)

	s.logger.Info(ctx, "Manual match requested", "order_id", orderID)

	return s.settler.Settle(ctx, transferID, orderID, ScoreExactConcept, ManualMatchReason)
}

func (s *transferService) Reject(ctx context.Context, transferID, reason string) (*domain.IncomingTransfer, error) {
	ctx = logger.WithTransferID(ctx, transferID)

	if err := s.repo.RejectTransfer(ctx, transferID, reason); err != nil {
		s.logger.Error(ctx, "Failed to reject transfer", "error", err)
		return nil, err
	}

	s.logger.Info(ctx, "Transfer rejected", "reason", reason)

	return s.repo.GetTransfer(ctx, transferID)
}

func (s *transferService) TriggerSync(ctx context.Context) domain.SyncResult {
	s.logger.Info(ctx, "Manual sync triggered")
	return s.scheduler.RunOnce(ctx)
}

func (s *transferService) AccountInfo(ctx context.Context) (*gateway.AccountInfo, error) {
	return s.client.GetAccountInfo(ctx)
}
