package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// TransferFilter narrows and paginates transfer listings.
type TransferFilter struct {
	Status  *TransferStatus
	From    *time.Time
	To      *time.Time
	Page    int
	PerPage int
}

// StatusTotals carries per-status row counts for the current filter window.
type StatusTotals struct {
	Pending  int `json:"pending"`
	Matched  int `json:"matched"`
	Rejected int `json:"rejected"`
}

// SettlementParams identifies the transfer/order pair to settle and the
// decision metadata to stamp on the transfer row.
type SettlementParams struct {
	TransferID string
	OrderID    int64
	Score      float64
	Reason     string
	Tolerance  decimal.Decimal
}

type Repository interface {
	// Transfer ingestion and resolution
	CreateTransferIfAbsent(ctx context.Context, t *IncomingTransfer) (*IncomingTransfer, bool, error)
	GetTransfer(ctx context.Context, id string) (*IncomingTransfer, error)
	UpdateTransferReview(ctx context.Context, id string, score float64, reason string, candidateIDs []int64) error
	RejectTransfer(ctx context.Context, id, reason string) error
	ListTransfers(ctx context.Context, filter TransferFilter) ([]*IncomingTransfer, StatusTotals, error)

	// Candidate lookups (read-only)
	GetOrder(ctx context.Context, id int64) (*Order, error)
	ListOrderPayments(ctx context.Context, orderID int64) ([]*Payment, error)
	FindPendingTransferPayment(ctx context.Context, orderID int64, amount, tolerance decimal.Decimal, since time.Time) (*Payment, error)
	FindCandidateOrders(ctx context.Context, amount, tolerance decimal.Decimal, since time.Time) ([]*Order, error)

	// SettleTransfer applies the whole settlement as one atomic unit:
	// payment approval (or creation), transfer resolution, order coverage
	// recomputation and table release. Partial application must not survive
	// a failure.
	SettleTransfer(ctx context.Context, params SettlementParams) (*Settlement, error)

	// Sync cursor. GetSyncWatermark returns (nil, nil) before the first pass.
	GetSyncWatermark(ctx context.Context) (*SyncWatermark, error)
	SaveSyncWatermark(ctx context.Context, lastSyncAt time.Time) error
}
