package gateway

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoaFoschiatti/gestioneo-transfers/internal/domain"
	"github.com/JoaFoschiatti/gestioneo-transfers/pkg/logger"
)

const (
	testBaseURL = "https://gateway.test"
	testToken   = "test-token"
)

func newMockedClient(t *testing.T) *httpClient {
	t.Helper()

	c := NewHTTPClient(testBaseURL, testToken, 5*time.Second, logger.NewNop()).(*httpClient)
	httpmock.ActivateNonDefault(c.client)
	t.Cleanup(httpmock.DeactivateAndReset)

	return c
}

func TestListMovements_ParsesAndKeepsRawPayload(t *testing.T) {
	c := newMockedClient(t)

	httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/v1/account/movements",
		httpmock.NewStringResponder(http.StatusOK, `{
			"movements": [
				{
					"id": "M-001",
					"type": "transfer_in",
					"amount": "4500.00",
					"fee": "45.00",
					"net_amount": "4455.00",
					"description": "PEDIDO 17",
					"counterpart": {"name": "Juan Perez", "tax_id": "20-12345678-9"},
					"created_at": "2026-08-30T12:00:00Z"
				},
				{
					"id": "M-002",
					"type": "card_settlement",
					"amount": "1000.00",
					"created_at": "2026-08-30T12:05:00Z"
				}
			]
		}`))

	from := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	movements, err := c.ListMovements(context.Background(), from, to)
	require.NoError(t, err)
	require.Len(t, movements, 2)

	first := movements[0]
	assert.Equal(t, "M-001", first.ID)
	assert.True(t, first.IsIncomingTransfer())
	assert.Equal(t, "4500", first.Amount.String())
	assert.Equal(t, "PEDIDO 17", first.Description)
	assert.Equal(t, "Juan Perez", first.Counterpart.Name)
	assert.NotEmpty(t, first.Raw)
	assert.Contains(t, string(first.Raw), `"M-001"`)

	assert.False(t, movements[1].IsIncomingTransfer())
}

func TestListMovements_SendsWindowAndAuth(t *testing.T) {
	c := newMockedClient(t)

	from := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 30, 11, 0, 0, 0, time.UTC)

	httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/v1/account/movements",
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "Bearer "+testToken, req.Header.Get("Authorization"))
			assert.Equal(t, "2026-08-30T10:00:00Z", req.URL.Query().Get("from"))
			assert.Equal(t, "2026-08-30T11:00:00Z", req.URL.Query().Get("to"))
			return httpmock.NewStringResponse(http.StatusOK, `{"movements": []}`), nil
		})

	movements, err := c.ListMovements(context.Background(), from, to)
	require.NoError(t, err)
	assert.Empty(t, movements)
}

func TestListMovements_ServerErrorIsUnavailable(t *testing.T) {
	c := newMockedClient(t)

	httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/v1/account/movements",
		httpmock.NewStringResponder(http.StatusBadGateway, "upstream down"))

	_, err := c.ListMovements(context.Background(), time.Now().Add(-time.Hour), time.Now())
	assert.ErrorIs(t, err, domain.ErrGatewayUnavailable)
}

func TestListMovements_MalformedMovementIsSkipped(t *testing.T) {
	c := newMockedClient(t)

	// One poison entry alongside a valid one; only the poison entry is dropped
	httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/v1/account/movements",
		httpmock.NewStringResponder(http.StatusOK, `{
			"movements": [
				{"id": 123},
				{
					"id": "M-OK",
					"type": "transfer_in",
					"amount": "4500.00",
					"description": "PEDIDO 17",
					"created_at": "2026-08-30T12:00:00Z"
				}
			]
		}`))

	movements, err := c.ListMovements(context.Background(), time.Now().Add(-time.Hour), time.Now())
	require.NoError(t, err)

	require.Len(t, movements, 1)
	assert.Equal(t, "M-OK", movements[0].ID)
	assert.Equal(t, "PEDIDO 17", movements[0].Description)
}

func TestUnconfiguredClientFailsFast(t *testing.T) {
	c := NewHTTPClient("", "", 5*time.Second, logger.NewNop())

	_, err := c.ListMovements(context.Background(), time.Now().Add(-time.Hour), time.Now())
	assert.ErrorIs(t, err, domain.ErrGatewayUnconfigured)

	_, err = c.GetAccountInfo(context.Background())
	assert.ErrorIs(t, err, domain.ErrGatewayUnconfigured)

	_, err = c.GetMovement(context.Background(), "M-001")
	assert.ErrorIs(t, err, domain.ErrGatewayUnconfigured)
}

func TestGetAccountInfo(t *testing.T) {
	c := newMockedClient(t)

	httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/v1/account",
		httpmock.NewStringResponder(http.StatusOK, `{
			"account_id": "acc-123",
			"virtual_account_number": "0000003100012345678901",
			"alias": "resto.pagos",
			"holder_name": "Gestioneo SRL"
		}`))

	info, err := c.GetAccountInfo(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "acc-123", info.AccountID)
	assert.Equal(t, "resto.pagos", info.Alias)
	assert.Equal(t, "Gestioneo SRL", info.HolderName)
}

func TestGetMovement(t *testing.T) {
	c := newMockedClient(t)

	httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/v1/account/movements/M-001",
		httpmock.NewStringResponder(http.StatusOK, `{
			"id": "M-001",
			"type": "cvu_credit",
			"amount": "750.50",
			"created_at": "2026-08-30T12:00:00Z"
		}`))

	movement, err := c.GetMovement(context.Background(), "M-001")
	require.NoError(t, err)

	assert.Equal(t, "M-001", movement.ID)
	assert.True(t, movement.IsIncomingTransfer())
	assert.Equal(t, "750.5", movement.Amount.String())
	assert.NotEmpty(t, movement.Raw)
}
