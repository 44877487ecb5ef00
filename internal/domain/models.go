package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type TransferStatus string

const (
	TransferStatusPending  TransferStatus = "PENDING"
	TransferStatusMatched  TransferStatus = "MATCHED"
	TransferStatusRejected TransferStatus = "REJECTED"
)

type PaymentMethod string

const (
	PaymentMethodTransfer PaymentMethod = "TRANSFER"
	PaymentMethodCash     PaymentMethod = "CASH"
	PaymentMethodCard     PaymentMethod = "CARD"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusApproved PaymentStatus = "APPROVED"
)

type OrderStatus string

const (
	OrderStatusOpen      OrderStatus = "OPEN"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCompleted OrderStatus = "COMPLETED"
)

type TableStatus string

const (
	TableStatusFree     TableStatus = "FREE"
	TableStatusOccupied TableStatus = "OCCUPIED"
)

// IncomingTransfer is one bank movement reported by the payment gateway.
// Rows are keyed internally by ID; MovementID is the external identity used
// for idempotent ingestion. Rows are never deleted, only resolved.
type IncomingTransfer struct {
	ID         string          `json:"id"`
	MovementID string          `json:"movement_id"`
	Amount     decimal.Decimal `json:"amount"`
	Fee        decimal.Decimal `json:"fee"`
	NetAmount  decimal.Decimal `json:"net_amount"`
	PayerName  string          `json:"payer_name,omitempty"`
	PayerEmail string          `json:"payer_email,omitempty"`
	PayerTaxID string          `json:"payer_tax_id,omitempty"`
	Concept    string          `json:"concept"`
	Reference  string          `json:"reference,omitempty"`
	RawPayload json.RawMessage `json:"raw_payload,omitempty"`

	Status            TransferStatus `json:"status"`
	MatchScore        float64        `json:"match_score"`
	MatchReason       string         `json:"match_reason,omitempty"`
	CandidateOrderIDs []int64        `json:"candidate_order_ids,omitempty"`
	OrderID           *int64         `json:"order_id,omitempty"`
	PaymentID         *string        `json:"payment_id,omitempty"`
	MatchedAt         *time.Time     `json:"matched_at,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
}

type Payment struct {
	ID         string          `json:"id"`
	OrderID    int64           `json:"order_id"`
	Amount     decimal.Decimal `json:"amount"`
	Method     PaymentMethod   `json:"method"`
	Status     PaymentStatus   `json:"status"`
	Reference  string          `json:"reference,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	ApprovedAt *time.Time      `json:"approved_at,omitempty"`
}

type Order struct {
	ID            int64           `json:"id"`
	Total         decimal.Decimal `json:"total"`
	PaymentStatus PaymentStatus   `json:"payment_status"`
	Status        OrderStatus     `json:"status"`
	TableID       *int64          `json:"table_id,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

type Table struct {
	ID     int64       `json:"id"`
	Status TableStatus `json:"status"`
}

// SyncWatermark is the singleton cursor of the movement pull. LastSyncAt is
// the exclusive upper bound of the last completed pass and never moves back.
type SyncWatermark struct {
	LastSyncAt time.Time `json:"last_sync_at"`
}

// MatchDecision is the outcome of running the matching rules for one transfer.
type MatchDecision struct {
	Matched      bool    `json:"matched"`
	OrderID      int64   `json:"order_id,omitempty"`
	Score        float64 `json:"score"`
	Reason       string  `json:"reason"`
	CandidateIDs []int64 `json:"candidate_ids,omitempty"`
}

// CandidateScore ranks one order for the manual-review screen. Ranking only;
// settlement is never driven by these scores.
type CandidateScore struct {
	Order   *Order   `json:"order"`
	Score   float64  `json:"score"`
	Reasons []string `json:"reasons"`
}

// Settlement is the state produced by atomically settling a transfer.
type Settlement struct {
	Transfer *IncomingTransfer `json:"transfer"`
	Payment  *Payment          `json:"payment"`
	Order    *Order            `json:"order"`
}

// SyncResult summarizes one watermark-to-now pull from the gateway.
type SyncResult struct {
	Discovered int    `json:"discovered"`
	Processed  int    `json:"processed"`
	Error      string `json:"error,omitempty"`
}

// AmountsWithinTolerance reports whether two amounts differ by at most tol.
func AmountsWithinTolerance(a, b, tol decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(tol)
}

// CoversTotal reports whether the summed approved payments cover the order
// total within tol.
func CoversTotal(approvedSum, total, tol decimal.Decimal) bool {
	return approvedSum.GreaterThanOrEqual(total.Sub(tol))
}
