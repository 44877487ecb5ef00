package eventbus

import (
	"time"

	"github.com/JoaFoschiatti/gestioneo-transfers/internal/domain"
)

type EventType string

const (
	EventTypeOrderUpdated          EventType = "order.updated"
	EventTypeTransferMatched       EventType = "transfer.matched"
	EventTypeTransferPendingReview EventType = "transfer.pending_review"
)

type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
	Retries   int         `json:"retries"`
}

type OrderUpdatedEvent struct {
	Order *domain.Order `json:"order"`
}

type TransferMatchedEvent struct {
	Transfer *domain.IncomingTransfer `json:"transfer"`
	Payment  *domain.Payment          `json:"payment"`
	Order    *domain.Order            `json:"order"`
}

type TransferPendingReviewEvent struct {
	Transfer *domain.IncomingTransfer `json:"transfer"`
	Reason   string                   `json:"reason"`
}
