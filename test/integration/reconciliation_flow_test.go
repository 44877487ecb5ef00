package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/JoaFoschiatti/gestioneo-transfers/internal/config"
	"github.com/JoaFoschiatti/gestioneo-transfers/internal/domain"
	"github.com/JoaFoschiatti/gestioneo-transfers/internal/eventbus"
	"github.com/JoaFoschiatti/gestioneo-transfers/internal/gateway"
	"github.com/JoaFoschiatti/gestioneo-transfers/internal/handler"
	"github.com/JoaFoschiatti/gestioneo-transfers/internal/server"
	"github.com/JoaFoschiatti/gestioneo-transfers/internal/service"
	"github.com/JoaFoschiatti/gestioneo-transfers/internal/storage"
	"github.com/JoaFoschiatti/gestioneo-transfers/mocks"
	"github.com/JoaFoschiatti/gestioneo-transfers/pkg/logger"
)

func setupTestServer(t *testing.T) (*httptest.Server, *storage.MemoryStore, *mocks.MockClient, eventbus.EventBus) {
	log := logger.NewNop()
	repo := storage.NewMemoryStore()
	client := mocks.NewMockClient(t)

	eventBusCfg := &eventbus.Config{
		ChannelBuffer: 100,
		MaxRetries:    3,
	}
	bus := eventbus.New(log, eventBusCfg)
	require.NoError(t, bus.Start(context.Background()))

	matcher := service.NewMatcher(repo, service.MatcherConfig{
		Window:          24 * time.Hour,
		AmountTolerance: decimal.NewFromFloat(0.01),
		ReviewLookback:  48 * time.Hour,
	}, log)
	settler := service.NewSettler(repo, bus, decimal.NewFromFloat(0.01), log)
	ingestor := service.NewIngestor(repo, matcher, settler, bus, log)
	scheduler := service.NewScheduler(repo, client, ingestor, service.SchedulerConfig{
		Interval:          time.Minute,
		StartupDelay:      time.Second,
		BootstrapLookback: 24 * time.Hour,
	}, log)

	transferService := service.NewTransferService(repo, matcher, settler, scheduler, client, log)

	transferHandler := handler.NewTransferHandler(transferService, log)
	healthHandler := handler.NewHealthHandler()

	cfg := &config.Config{
		Server: config.ServerConfig{
			Port: "8080",
			Host: "0.0.0.0",
		},
	}

	srv := server.New(cfg, log, transferHandler, healthHandler)

	testServer := httptest.NewServer(srv.Handler())

	return testServer, repo, client, bus
}

func seedRestaurantState(repo *storage.MemoryStore) {
	now := time.Now()
	tableID := int64(4)

	repo.SeedTable(&domain.Table{ID: tableID, Status: domain.TableStatusOccupied})
	repo.SeedOrder(&domain.Order{
		ID:            17,
		Total:         decimal.RequireFromString("4500.00"),
		PaymentStatus: domain.PaymentStatusPending,
		Status:        domain.OrderStatusDelivered,
		TableID:       &tableID,
		CreatedAt:     now,
	})
	repo.SeedPayment(&domain.Payment{
		ID:        "pay-17",
		OrderID:   17,
		Amount:    decimal.RequireFromString("4500.00"),
		Method:    domain.PaymentMethodTransfer,
		Status:    domain.PaymentStatusPending,
		CreatedAt: now,
	})

	for _, orderID := range []int64{21, 22} {
		repo.SeedOrder(&domain.Order{
			ID:            orderID,
			Total:         decimal.RequireFromString("3000.00"),
			PaymentStatus: domain.PaymentStatusPending,
			Status:        domain.OrderStatusDelivered,
			CreatedAt:     now,
		})
		repo.SeedPayment(&domain.Payment{
			ID:        fmt.Sprintf("pay-%d", orderID),
			OrderID:   orderID,
			Amount:    decimal.RequireFromString("3000.00"),
			Method:    domain.PaymentMethodTransfer,
			Status:    domain.PaymentStatusPending,
			CreatedAt: now,
		})
	}
}

func gatewayMovements() []gateway.RawMovement {
	now := time.Now()
	return []gateway.RawMovement{
		{
			ID:          "M-100",
			Type:        "transfer_in",
			Amount:      decimal.RequireFromString("4500.00"),
			NetAmount:   decimal.RequireFromString("4500.00"),
			Description: "PEDIDO 17",
			Counterpart: gateway.Counterpart{Name: "Juan Perez"},
			CreatedAt:   now,
		},
		{
			ID:          "M-101",
			Type:        "cvu_credit",
			Amount:      decimal.RequireFromString("3000.00"),
			NetAmount:   decimal.RequireFromString("3000.00"),
			Description: "transferencia",
			CreatedAt:   now,
		},
		{
			ID:          "M-102",
			Type:        "transfer_in",
			Amount:      decimal.RequireFromString("750.00"),
			NetAmount:   decimal.RequireFromString("750.00"),
			Description: "propina",
			CreatedAt:   now,
		},
		{
			ID:   "M-103",
			Type: "card_settlement",
		},
	}
}

type listResponse struct {
	Items  []domain.IncomingTransfer `json:"items"`
	Totals domain.StatusTotals       `json:"totals"`
}

func listTransfers(t *testing.T, baseURL, query string) listResponse {
	t.Helper()

	resp, err := http.Get(baseURL + "/transfers" + query)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result listResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))

	return result
}

func postJSON(t *testing.T, url string, payload interface{}) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	require.NoError(t, err)

	return resp
}

func TestReconciliationFlow(t *testing.T) {
	srv, repo, client, bus := setupTestServer(t)
	defer srv.Close()
	defer bus.Shutdown(context.Background())

	seedRestaurantState(repo)

	client.EXPECT().
		ListMovements(mock.Anything, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(gatewayMovements(), nil)

	// First sync pulls and reconciles everything the gateway reports
	resp := postJSON(t, srv.URL+"/transfers/sync", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result domain.SyncResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	resp.Body.Close()

	assert.Equal(t, 3, result.Discovered)
	assert.Equal(t, 3, result.Processed)
	assert.Empty(t, result.Error)

	list := listTransfers(t, srv.URL, "")
	require.Len(t, list.Items, 3)
	assert.Equal(t, 1, list.Totals.Matched)
	assert.Equal(t, 2, list.Totals.Pending)

	// The concept-hinted movement settled its order and freed the table
	order, err := repo.GetOrder(context.Background(), 17)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCompleted, order.Status)

	table, ok := repo.GetTable(4)
	require.True(t, ok)
	assert.Equal(t, domain.TableStatusFree, table.Status)

	// Re-running the sync re-delivers the same movements without duplicating
	resp = postJSON(t, srv.URL+"/transfers/sync", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	list = listTransfers(t, srv.URL, "")
	assert.Len(t, list.Items, 3)

	payments, err := repo.ListOrderPayments(context.Background(), 17)
	require.NoError(t, err)
	assert.Len(t, payments, 1)
}

func TestManualResolutionFlow(t *testing.T) {
	srv, repo, client, bus := setupTestServer(t)
	defer srv.Close()
	defer bus.Shutdown(context.Background())

	seedRestaurantState(repo)

	client.EXPECT().
		ListMovements(mock.Anything, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(gatewayMovements(), nil)

	resp := postJSON(t, srv.URL+"/transfers/sync", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	pending := listTransfers(t, srv.URL, "?status=PENDING")
	require.Len(t, pending.Items, 2)

	var ambiguousID, unmatchedID string
	for _, item := range pending.Items {
		if len(item.CandidateOrderIDs) > 0 {
			ambiguousID = item.ID
		} else {
			unmatchedID = item.ID
		}
	}
	require.NotEmpty(t, ambiguousID)
	require.NotEmpty(t, unmatchedID)

	// The review screen ranks both candidate orders
	candResp, err := http.Get(srv.URL + "/transfers/" + ambiguousID + "/candidates")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, candResp.StatusCode)

	var candidates struct {
		Candidates []domain.CandidateScore `json:"candidates"`
	}
	require.NoError(t, json.NewDecoder(candResp.Body).Decode(&candidates))
	candResp.Body.Close()
	assert.Len(t, candidates.Candidates, 2)

	// Operator picks order 21
	resp = postJSON(t, srv.URL+"/transfers/"+ambiguousID+"/match", map[string]interface{}{"order_id": 21})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var settlement domain.Settlement
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&settlement))
	resp.Body.Close()
	assert.Equal(t, domain.TransferStatusMatched, settlement.Transfer.Status)
	assert.Equal(t, domain.OrderStatusCompleted, settlement.Order.Status)

	// A second match attempt conflicts
	resp = postJSON(t, srv.URL+"/transfers/"+ambiguousID+"/match", map[string]interface{}{"order_id": 22})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// Matching against an unknown order is a 404
	resp = postJSON(t, srv.URL+"/transfers/"+unmatchedID+"/match", map[string]interface{}{"order_id": 999})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	// The stray tip gets rejected
	resp = postJSON(t, srv.URL+"/transfers/"+unmatchedID+"/reject", map[string]string{"reason": "tip, not an order payment"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rejected domain.IncomingTransfer
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rejected))
	resp.Body.Close()
	assert.Equal(t, domain.TransferStatusRejected, rejected.Status)

	resp = postJSON(t, srv.URL+"/transfers/"+unmatchedID+"/reject", map[string]string{"reason": "again"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	final := listTransfers(t, srv.URL, "")
	assert.Equal(t, 2, final.Totals.Matched)
	assert.Equal(t, 1, final.Totals.Rejected)
	assert.Zero(t, final.Totals.Pending)
}

func TestAccountInfoEndpoint(t *testing.T) {
	srv, _, client, bus := setupTestServer(t)
	defer srv.Close()
	defer bus.Shutdown(context.Background())

	client.EXPECT().
		GetAccountInfo(mock.Anything).
		Return(&gateway.AccountInfo{
			AccountID: "acc-123",
			Alias:     "resto.pagos",
		}, nil).
		Once()

	resp, err := http.Get(srv.URL + "/transfers/config/account-info")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var info gateway.AccountInfo
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&info))
	resp.Body.Close()
	assert.Equal(t, "resto.pagos", info.Alias)

	client.EXPECT().
		GetAccountInfo(mock.Anything).
		Return(nil, domain.ErrGatewayUnconfigured).
		Once()

	resp, err = http.Get(srv.URL + "/transfers/config/account-info")
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	resp.Body.Close()
}

func TestHealthCheck(t *testing.T) {
	srv, _, _, bus := setupTestServer(t)
	defer srv.Close()
	defer bus.Shutdown(context.Background())

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))

	assert.Equal(t, "ok", result["status"])
	assert.Equal(t, "transfers", result["service"])
	assert.NotEmpty(t, result["timestamp"])
}
