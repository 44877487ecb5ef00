package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"github.com/JoaFoschiatti/gestioneo-transfers/internal/domain"
	"github.com/JoaFoschiatti/gestioneo-transfers/pkg/logger"
)

// RawMovement is one account event as reported by the gateway. Raw keeps the
// untouched response body for audit storage; nothing outside the audit path
// reads it.
type RawMovement struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Fee         decimal.Decimal `json:"fee"`
	NetAmount   decimal.Decimal `json:"net_amount"`
	Description string          `json:"description"`
	Reference   string          `json:"external_reference,omitempty"`
	Counterpart Counterpart     `json:"counterpart"`
	CreatedAt   time.Time       `json:"created_at"`
	Raw         json.RawMessage `json:"-"`
}

type Counterpart struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	TaxID string `json:"tax_id,omitempty"`
}

// AccountInfo identifies the collecting account, shown to payers so they can
// address their transfers.
type AccountInfo struct {
	AccountID            string `json:"account_id"`
	VirtualAccountNumber string `json:"virtual_account_number,omitempty"`
	Alias                string `json:"alias,omitempty"`
	HolderName           string `json:"holder_name,omitempty"`
	HolderTaxID          string `json:"holder_tax_id,omitempty"`
}

// IsIncomingTransfer filters movement types the reconciliation engine cares
// about; everything else (card settlements, fees, payouts) is skipped.
func (m RawMovement) IsIncomingTransfer() bool {
	switch m.Type {
	case "transfer_in", "incoming_transfer", "cvu_credit":
		return true
	}
	return false
}

type Client interface {
	GetAccountInfo(ctx context.Context) (*AccountInfo, error)
	ListMovements(ctx context.Context, from, to time.Time) ([]RawMovement, error)
	GetMovement(ctx context.Context, id string) (*RawMovement, error)
}

type httpClient struct {
	baseURL string
	token   string
	client  *http.Client
	logger  *logger.Logger
}

// NewHTTPClient builds the gateway adapter. An empty base URL or token marks
// the client as unconfigured; calls then fail fast with
// domain.ErrGatewayUnconfigured instead of hitting the network.
func NewHTTPClient(baseURL, token string, timeout time.Duration, log *logger.Logger) Client {
	return &httpClient{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: timeout},
		logger:  log,
	}
}

func (c *httpClient) configured() bool {
	return c.baseURL != "" && c.token != ""
}

func (c *httpClient) GetAccountInfo(ctx context.Context) (*AccountInfo, error) {
	var info AccountInfo
	if err := c.get(ctx, "/v1/account", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *httpClient) ListMovements(ctx context.Context, from, to time.Time) ([]RawMovement, error) {
	query := url.Values{}
	query.Set("from", from.UTC().Format(time.RFC3339))
	query.Set("to", to.UTC().Format(time.RFC3339))

	var body struct {
		Movements []json.RawMessage `json:"movements"`
	}
	if err := c.get(ctx, "/v1/account/movements", query, &body); err != nil {
		return nil, err
	}

	// Decode entry by entry; one poison movement must not sink the window
	movements := make([]RawMovement, 0, len(body.Movements))
	for _, raw := range body.Movements {
		var m RawMovement
		if err := json.Unmarshal(raw, &m); err != nil {
			c.logger.Warn(ctx, "Skipping malformed movement",
				"error", err,
				"payload", string(raw),
			)
			continue
		}
		m.Raw = raw
		movements = append(movements, m)
	}

	return movements, nil
}

func (c *httpClient) GetMovement(ctx context.Context, id string) (*RawMovement, error) {
	var raw json.RawMessage
	if err := c.get(ctx, "/v1/account/movements/"+url.PathEscape(id), nil, &raw); err != nil {
		return nil, err
	}

	var m RawMovement
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedMovement, err)
	}
	m.Raw = raw

	return &m, nil
}

func (c *httpClient) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	if !c.configured() {
		return domain.ErrGatewayUnconfigured
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("%w: gateway returned %d", domain.ErrGatewayUnavailable, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("gateway returned %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode gateway response: %w", err)
	}

	return nil
}
