package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/JoaFoschiatti/gestioneo-transfers/internal/domain"
)

// MemoryStore is the in-memory repository used by tests and no-database
// deployments. The mutex is the transaction boundary: SettleTransfer
// validates everything before the first mutation, so a failed settlement
// leaves no partial state behind.
type MemoryStore struct {
	transfers           map[string]*domain.IncomingTransfer
	transfersByMovement map[string]string
	orders              map[int64]*domain.Order
	payments            map[string]*domain.Payment
	tables              map[int64]*domain.Table
	watermark           *domain.SyncWatermark
	mu                  sync.RWMutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		transfers:           make(map[string]*domain.IncomingTransfer),
		transfersByMovement: make(map[string]string),
		orders:              make(map[int64]*domain.Order),
		payments:            make(map[string]*domain.Payment),
		tables:              make(map[int64]*domain.Table),
	}
}

func (s *MemoryStore) CreateTransferIfAbsent(ctx context.Context, t *domain.IncomingTransfer) (*domain.IncomingTransfer, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existingID, ok := s.transfersByMovement[t.MovementID]; ok {
		return cloneTransfer(s.transfers[existingID]), false, nil
	}

	stored := cloneTransfer(t)
	s.transfers[stored.ID] = stored
	s.transfersByMovement[stored.MovementID] = stored.ID

	return cloneTransfer(stored), true, nil
}

func (s *MemoryStore) GetTransfer(ctx context.Context, id string) (*domain.IncomingTransfer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	transfer, ok := s.transfers[id]
	if !ok {
		return nil, domain.ErrTransferNotFound
	}

	return cloneTransfer(transfer), nil
}

func (s *MemoryStore) UpdateTransferReview(ctx context.Context, id string, score float64, reason string, candidateIDs []int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	transfer, ok := s.transfers[id]
	if !ok {
		return domain.ErrTransferNotFound
	}

	transfer.MatchScore = score
	transfer.MatchReason = reason
	transfer.CandidateOrderIDs = append([]int64(nil), candidateIDs...)

	return nil
}

func (s *MemoryStore) RejectTransfer(ctx context.Context, id, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	transfer, ok := s.transfers[id]
	if !ok {
		return domain.ErrTransferNotFound
	}
	if transfer.Status != domain.TransferStatusPending {
		return domain.ErrTransferAlreadyResolved
	}

	transfer.Status = domain.TransferStatusRejected
	transfer.MatchReason = reason

	return nil
}

func (s *MemoryStore) ListTransfers(ctx context.Context, filter domain.TransferFilter) ([]*domain.IncomingTransfer, domain.StatusTotals, error) {
	if filter.Page < 1 || filter.PerPage < 1 {
		return nil, domain.StatusTotals{}, domain.ErrInvalidPageParams
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var totals domain.StatusTotals
	var filtered []*domain.IncomingTransfer

	for _, transfer := range s.transfers {
		if filter.From != nil && transfer.CreatedAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && transfer.CreatedAt.After(*filter.To) {
			continue
		}

		switch transfer.Status {
		case domain.TransferStatusPending:
			totals.Pending++
		case domain.TransferStatusMatched:
			totals.Matched++
		case domain.TransferStatusRejected:
			totals.Rejected++
		}

		if filter.Status != nil && transfer.Status != *filter.Status {
			continue
		}

		filtered = append(filtered, cloneTransfer(transfer))
	}

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	start := (filter.Page - 1) * filter.PerPage
	end := start + filter.PerPage

	if start >= len(filtered) {
		return []*domain.IncomingTransfer{}, totals, nil
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	return filtered[start:end], totals, nil
}

func (s *MemoryStore) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}

	return cloneOrder(order), nil
}

func (s *MemoryStore) ListOrderPayments(ctx context.Context, orderID int64) ([]*domain.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.orderPaymentsLocked(orderID), nil
}

func (s *MemoryStore) FindPendingTransferPayment(ctx context.Context, orderID int64, amount, tolerance decimal.Decimal, since time.Time) (*domain.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, payment := range s.payments {
		if payment.OrderID != orderID {
			continue
		}
		if !qualifies(payment, amount, tolerance, since) {
			continue
		}
		return clonePayment(payment), nil
	}

	return nil, nil
}

func (s *MemoryStore) FindCandidateOrders(ctx context.Context, amount, tolerance decimal.Decimal, since time.Time) ([]*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	type candidate struct {
		order     *domain.Order
		createdAt time.Time
	}

	seen := make(map[int64]bool)
	var candidates []candidate

	for _, payment := range s.payments {
		if !qualifies(payment, amount, tolerance, since) {
			continue
		}
		if seen[payment.OrderID] {
			continue
		}
		order, ok := s.orders[payment.OrderID]
		if !ok {
			continue
		}
		seen[payment.OrderID] = true
		candidates = append(candidates, candidate{order: cloneOrder(order), createdAt: payment.CreatedAt})
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].createdAt.After(candidates[j].createdAt)
	})

	orders := make([]*domain.Order, 0, len(candidates))
	for _, c := range candidates {
		orders = append(orders, c.order)
	}

	return orders, nil
}

func (s *MemoryStore) SettleTransfer(ctx context.Context, params domain.SettlementParams) (*domain.Settlement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	transfer, ok := s.transfers[params.TransferID]
	if !ok {
		return nil, domain.ErrTransferNotFound
	}
	if transfer.Status != domain.TransferStatusPending {
		return nil, domain.ErrTransferAlreadyResolved
	}

	order, ok := s.orders[params.OrderID]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}

	// Approve the single pending transfer payment when it is unambiguous;
	// with zero or several pending rows a fresh payment is created instead
	// of guessing.
	var pending []*domain.Payment
	for _, payment := range s.payments {
		if payment.OrderID == order.ID &&
			payment.Method == domain.PaymentMethodTransfer &&
			payment.Status == domain.PaymentStatusPending {
			pending = append(pending, payment)
		}
	}

	now := time.Now()
	reference := "transfer:" + transfer.MovementID

	var payment *domain.Payment
	if len(pending) == 1 {
		payment = pending[0]
		payment.Status = domain.PaymentStatusApproved
		payment.Reference = reference
		payment.ApprovedAt = &now
	} else {
		payment = &domain.Payment{
			ID:         uuid.New().String(),
			OrderID:    order.ID,
			Amount:     transfer.Amount,
			Method:     domain.PaymentMethodTransfer,
			Status:     domain.PaymentStatusApproved,
			Reference:  reference,
			CreatedAt:  now,
			ApprovedAt: &now,
		}
		s.payments[payment.ID] = payment
	}

	orderID := order.ID
	paymentID := payment.ID
	transfer.Status = domain.TransferStatusMatched
	transfer.OrderID = &orderID
	transfer.PaymentID = &paymentID
	transfer.MatchScore = params.Score
	transfer.MatchReason = params.Reason
	transfer.MatchedAt = &now

	approvedSum := decimal.Zero
	for _, p := range s.payments {
		if p.OrderID == order.ID && p.Status == domain.PaymentStatusApproved {
			approvedSum = approvedSum.Add(p.Amount)
		}
	}

	order.PaymentStatus = domain.PaymentStatusApproved
	if domain.CoversTotal(approvedSum, order.Total, params.Tolerance) {
		order.Status = domain.OrderStatusCompleted
		if order.TableID != nil {
			if table, ok := s.tables[*order.TableID]; ok {
				table.Status = domain.TableStatusFree
			}
		}
	}

	return &domain.Settlement{
		Transfer: cloneTransfer(transfer),
		Payment:  clonePayment(payment),
		Order:    cloneOrder(order),
	}, nil
}

func (s *MemoryStore) GetSyncWatermark(ctx context.Context) (*domain.SyncWatermark, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.watermark == nil {
		return nil, nil
	}

	wm := *s.watermark
	return &wm, nil
}

func (s *MemoryStore) SaveSyncWatermark(ctx context.Context, lastSyncAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// The cursor only moves forward
	if s.watermark != nil && s.watermark.LastSyncAt.After(lastSyncAt) {
		return nil
	}

	s.watermark = &domain.SyncWatermark{LastSyncAt: lastSyncAt}

	return nil
}

// Seed helpers for tests and local development; orders, payments and tables
// are owned by the POS outside this subsystem.

func (s *MemoryStore) SeedOrder(order *domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders[order.ID] = cloneOrder(order)
}

func (s *MemoryStore) SeedPayment(payment *domain.Payment) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.payments[payment.ID] = clonePayment(payment)
}

func (s *MemoryStore) SeedTable(table *domain.Table) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := *table
	s.tables[table.ID] = &t
}

func (s *MemoryStore) GetTable(id int64) (*domain.Table, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	table, ok := s.tables[id]
	if !ok {
		return nil, false
	}

	t := *table
	return &t, true
}

func (s *MemoryStore) orderPaymentsLocked(orderID int64) []*domain.Payment {
	var payments []*domain.Payment
	for _, payment := range s.payments {
		if payment.OrderID == orderID {
			payments = append(payments, clonePayment(payment))
		}
	}

	sort.Slice(payments, func(i, j int) bool {
		return payments[i].CreatedAt.Before(payments[j].CreatedAt)
	})

	return payments
}

func qualifies(payment *domain.Payment, amount, tolerance decimal.Decimal, since time.Time) bool {
	return payment.Method == domain.PaymentMethodTransfer &&
		payment.Status == domain.PaymentStatusPending &&
		!payment.CreatedAt.Before(since) &&
		domain.AmountsWithinTolerance(payment.Amount, amount, tolerance)
}

func cloneTransfer(t *domain.IncomingTransfer) *domain.IncomingTransfer {
	c := *t
	c.CandidateOrderIDs = append([]int64(nil), t.CandidateOrderIDs...)
	if t.OrderID != nil {
		orderID := *t.OrderID
		c.OrderID = &orderID
	}
	if t.PaymentID != nil {
		paymentID := *t.PaymentID
		c.PaymentID = &paymentID
	}
	if t.MatchedAt != nil {
		matchedAt := *t.MatchedAt
		c.MatchedAt = &matchedAt
	}
	return &c
}

func cloneOrder(o *domain.Order) *domain.Order {
	c := *o
	if o.TableID != nil {
		tableID := *o.TableID
		c.TableID = &tableID
	}
	return &c
}

func clonePayment(p *domain.Payment) *domain.Payment {
	c := *p
	if p.ApprovedAt != nil {
		approvedAt := *p.ApprovedAt
		c.ApprovedAt = &approvedAt
	}
	return &c
}
