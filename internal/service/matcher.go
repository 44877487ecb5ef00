package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/JoaFoschiatti/gestioneo-transfers/internal/domain"
	"github.com/JoaFoschiatti/gestioneo-transfers/pkg/logger"
)

// Tunable policy constants. The ordering (exact concept > unique amount >
// ambiguous > none) is the contract; the exact values are not.
const (
	ScoreExactConcept = 1.0
	ScoreUniqueAmount = 0.8
	ScoreAmbiguous    = 0.5
	ScoreNone         = 0.0
)

// Review-scorer rubric weights. Ranking only, never settlement.
const (
	reviewWeightAmountExact    = 0.5
	reviewWeightAmountClose    = 0.2
	reviewWeightConceptID      = 0.5
	reviewWeightPendingPayment = 0.1

	reviewRelativeTolerance = 0.05
)

type MatcherConfig struct {
	Window          time.Duration
	AmountTolerance decimal.Decimal
	ReviewLookback  time.Duration
}

// Matcher decides which pending order an incoming transfer pays for.
type Matcher struct {
	repo   domain.Repository
	cfg    MatcherConfig
	logger *logger.Logger
}

func NewMatcher(repo domain.Repository, cfg MatcherConfig, log *logger.Logger) *Matcher {
	return &Matcher{
		repo:   repo,
		cfg:    cfg,
		logger: log,
	}
}

// Decide applies the matching rules in strict priority order:
//  1. concept id + qualifying pending payment on that order
//  2. amount-only scan with exactly one candidate
//  3. amount-only scan with several candidates (manual review)
//  4. nothing
//
// Ambiguity is never resolved automatically; mis-attributed money is worse
// than a transfer waiting for an operator.
func (m *Matcher) Decide(ctx context.Context, transfer *domain.IncomingTransfer) (*domain.MatchDecision, error) {
	since := time.Now().Add(-m.cfg.Window)

	if orderID, ok := ParseOrderIDFromConcept(transfer.Concept); ok {
		payment, err := m.repo.FindPendingTransferPayment(ctx, orderID, transfer.Amount, m.cfg.AmountTolerance, since)
		if err != nil {
			return nil, fmt.Errorf("hinted payment lookup for order %d: %w", orderID, err)
		}
		if payment != nil {
			m.logger.Debug(ctx, "Concept hint confirmed",
				"order_id", orderID,
				"payment_id", payment.ID,
			)
			return &domain.MatchDecision{
				Matched: true,
				OrderID: orderID,
				Score:   ScoreExactConcept,
				Reason:  fmt.Sprintf("exact concept and amount match for order %d", orderID),
			}, nil
		}

		m.logger.Debug(ctx, "Concept hint did not qualify, falling back to amount scan",
			"order_id", orderID,
		)
	}

	candidates, err := m.repo.FindCandidateOrders(ctx, transfer.Amount, m.cfg.AmountTolerance, since)
	if err != nil {
		return nil, fmt.Errorf("candidate scan: %w", err)
	}

	switch len(candidates) {
	case 0:
		return &domain.MatchDecision{
			Matched: false,
			Score:   ScoreNone,
			Reason:  fmt.Sprintf("no pending payment with amount %s", transfer.Amount),
		}, nil
	case 1:
		return &domain.MatchDecision{
			Matched: true,
			OrderID: candidates[0].ID,
			Score:   ScoreUniqueAmount,
			Reason:  fmt.Sprintf("unique amount match for order %d", candidates[0].ID),
		}, nil
	default:
		ids := make([]int64, 0, len(candidates))
		for _, order := range candidates {
			ids = append(ids, order.ID)
		}
		return &domain.MatchDecision{
			Matched:      false,
			Score:        ScoreAmbiguous,
			Reason:       fmt.Sprintf("%d candidate orders with amount %s, manual review required", len(candidates), transfer.Amount),
			CandidateIDs: ids,
		}, nil
	}
}

// ScoreCandidates recomputes per-candidate scores for the manual-review
// screen. The pool is wider than the automatic scan: amounts within 5% over
// the review lookback window, plus the concept-hinted order even when its
// amount drifted further.
func (m *Matcher) ScoreCandidates(ctx context.Context, transferID string) ([]domain.CandidateScore, error) {
	transfer, err := m.repo.GetTransfer(ctx, transferID)
	if err != nil {
		return nil, err
	}

	since := time.Now().Add(-m.cfg.ReviewLookback)
	relTolerance := transfer.Amount.Mul(decimal.NewFromFloat(reviewRelativeTolerance)).Abs()

	candidates, err := m.repo.FindCandidateOrders(ctx, transfer.Amount, relTolerance, since)
	if err != nil {
		return nil, fmt.Errorf("candidate scan: %w", err)
	}

	hintID, hasHint := ParseOrderIDFromConcept(transfer.Concept)
	if hasHint && !containsOrder(candidates, hintID) {
		hinted, err := m.repo.GetOrder(ctx, hintID)
		if err == nil && hinted != nil {
			candidates = append(candidates, hinted)
		}
	}

	scores := make([]domain.CandidateScore, 0, len(candidates))
	for _, order := range candidates {
		score, reasons, err := m.scoreCandidate(ctx, transfer, order, hintID, hasHint)
		if err != nil {
			return nil, err
		}
		scores = append(scores, domain.CandidateScore{
			Order:   order,
			Score:   score,
			Reasons: reasons,
		})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		if scores[i].Score != scores[j].Score {
			return scores[i].Score > scores[j].Score
		}
		return scores[i].Order.ID < scores[j].Order.ID
	})

	return scores, nil
}

func (m *Matcher) scoreCandidate(ctx context.Context, transfer *domain.IncomingTransfer, order *domain.Order, hintID int64, hasHint bool) (float64, []string, error) {
	var score float64
	var reasons []string

	payments, err := m.repo.ListOrderPayments(ctx, order.ID)
	if err != nil {
		return 0, nil, fmt.Errorf("payments for order %d: %w", order.ID, err)
	}

	reference := order.Total
	hasPendingTransfer := false
	for _, p := range payments {
		if p.Method == domain.PaymentMethodTransfer && p.Status == domain.PaymentStatusPending {
			hasPendingTransfer = true
			reference = p.Amount
			break
		}
	}

	if domain.AmountsWithinTolerance(transfer.Amount, reference, m.cfg.AmountTolerance) {
		score += reviewWeightAmountExact
		reasons = append(reasons, "amount matches exactly")
	} else if domain.AmountsWithinTolerance(transfer.Amount, reference, reference.Mul(decimal.NewFromFloat(reviewRelativeTolerance)).Abs()) {
		score += reviewWeightAmountClose
		reasons = append(reasons, "amount within 5%")
	}

	if hasHint && hintID == order.ID {
		score += reviewWeightConceptID
		reasons = append(reasons, "order id found in concept")
	}

	if hasPendingTransfer {
		score += reviewWeightPendingPayment
		reasons = append(reasons, "pending transfer payment exists")
	}

	return score, reasons, nil
}

func containsOrder(orders []*domain.Order, id int64) bool {
	for _, o := range orders {
		if o.ID == id {
			return true
		}
	}
	return false
}
