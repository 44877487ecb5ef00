package eventbus

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/JoaFoschiatti/gestioneo-transfers/pkg/logger"
)

// WebhookConsumer forwards domain events to the notification endpoint that
// feeds the POS screens and ticket printers. Delivery is fire-and-forget:
// the bus retries a few times, then the event is dropped. Without a
// configured URL the consumer only logs, which keeps local development quiet.
type WebhookConsumer struct {
	webhookURL  string
	client      *http.Client
	logger      *logger.Logger
	workerCount int
}

func NewWebhookConsumer(webhookURL string, log *logger.Logger, workerCount int) *WebhookConsumer {
	return &WebhookConsumer{
		webhookURL:  webhookURL,
		client:      &http.Client{Timeout: 10 * time.Second},
		logger:      log,
		workerCount: workerCount,
	}
}

func (wc *WebhookConsumer) Consume(ctx context.Context, event Event) error {
	if wc.webhookURL == "" {
		wc.logger.Info(ctx, "Domain event",
			"event_id", event.ID,
			"event_type", event.Type,
		)
		return nil
	}

	body, err := json.Marshal(event)
	if err != nil {
		wc.logger.Error(ctx, "Failed to encode event",
			"event_id", event.ID,
			"error", err,
		)
		// Undeliverable payload, retrying won't help
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, wc.webhookURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Event-Type", string(event.Type))

	resp, err := wc.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("webhook returned %d", resp.StatusCode)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		wc.logger.Warn(ctx, "Webhook rejected event",
			"event_id", event.ID,
			"event_type", event.Type,
			"status", resp.StatusCode,
		)
		// Client errors are terminal for this event
		return nil
	}

	wc.logger.Debug(ctx, "Event delivered",
		"event_id", event.ID,
		"event_type", event.Type,
	)

	return nil
}

func (wc *WebhookConsumer) GetWorkerCount() int {
	return wc.workerCount
}
