package paystack

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Transaction statuses as reported by Paystack
const (
	StatusSuccess   = "success"
	StatusFailed    = "failed"
	StatusPending   = "pending"
	StatusAbandoned = "abandoned"
)

// Client represents a Paystack API client
type Client struct {
	BaseURL   string
	SecretKey string
	MockAPI   bool
	client    *http.Client
}

// TransactionData is the slice of Paystack's transaction object we use
type TransactionData struct {
	Reference string  `json:"reference"`
	Status    string  `json:"status"`
	Amount    float64 `json:"amount"` // pesewas
	Currency  string  `json:"currency"`
	PaidAt    string  `json:"paid_at"`
}

type verifyResponse struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    TransactionData `json:"data"`
}

// NewClient creates a new Paystack API client
func NewClient(baseURL, secretKey string, mockAPI bool) *Client {
	return &Client{
		BaseURL:   baseURL,
		SecretKey: secretKey,
		MockAPI:   mockAPI,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

// VerifyTransaction looks up a transaction by its reference
func (c *Client) VerifyTransaction(ctx context.Context, reference string) (*TransactionData, error) {
	if c.MockAPI {
		return c.mockVerifyTransaction(reference)
	}

	url := fmt.Sprintf("%s/transaction/verify/%s", c.BaseURL, reference)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.SecretKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("verify request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var parsed verifyResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if !parsed.Status {
		return nil, fmt.Errorf("verify rejected by gateway: %s", parsed.Message)
	}

	return &parsed.Data, nil
}

// mockVerifyTransaction mocks the verify call for testing
func (c *Client) mockVerifyTransaction(reference string) (*TransactionData, error) {
	return &TransactionData{
		Reference: reference,
		Status:    StatusSuccess,
		Amount:    40000,
		Currency:  "GHS",
		PaidAt:    time.Now().Format(time.RFC3339),
	}, nil
}
