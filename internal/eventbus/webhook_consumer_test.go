package eventbus

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoaFoschiatti/gestioneo-transfers/pkg/logger"
)

func testEvent() Event {
	return Event{
		ID:        "evt-1",
		Type:      EventTypeTransferMatched,
		Payload:   map[string]string{"transfer_id": "t-1"},
		Timestamp: time.Now(),
	}
}

func TestWebhookConsumer_PostsEvent(t *testing.T) {
	var received atomic.Int32
	var gotEventType atomic.Value

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received.Add(1)
		gotEventType.Store(r.Header.Get("X-Event-Type"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	consumer := NewWebhookConsumer(server.URL, logger.NewNop(), 1)

	err := consumer.Consume(context.Background(), testEvent())
	require.NoError(t, err)

	assert.Equal(t, int32(1), received.Load())
	assert.Equal(t, string(EventTypeTransferMatched), gotEventType.Load())
}

func TestWebhookConsumer_ServerErrorIsRetryable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	consumer := NewWebhookConsumer(server.URL, logger.NewNop(), 1)

	err := consumer.Consume(context.Background(), testEvent())
	assert.Error(t, err)
}

func TestWebhookConsumer_ClientErrorIsTerminal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	consumer := NewWebhookConsumer(server.URL, logger.NewNop(), 1)

	err := consumer.Consume(context.Background(), testEvent())
	assert.NoError(t, err)
}

func TestWebhookConsumer_NoURLOnlyLogs(t *testing.T) {
	consumer := NewWebhookConsumer("", logger.NewNop(), 1)

	err := consumer.Consume(context.Background(), testEvent())
	assert.NoError(t, err)
}
