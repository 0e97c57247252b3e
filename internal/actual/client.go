// Package actual talks to an Actual budget server through its REST bridge
// and drives the CSV import against it.
package actual

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Account is a budget account as the server reports it.
type Account struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Category is a budget category as the server reports it.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NewTransaction is one transaction to create. Amount is in minor currency
// units with the server's sign convention (negative = expense).
type NewTransaction struct {
	Date       string `json:"date"` // YYYY-MM-DD
	Amount     int64  `json:"amount"`
	PayeeName  string `json:"payee_name"`
	CategoryID string `json:"category,omitempty"` // empty = uncategorized
	Notes      string `json:"notes,omitempty"`
}

// Client is the narrow surface the import driver needs. The HTTP
// implementation is the only real one; tests substitute a fake.
type Client interface {
	Accounts(ctx context.Context) ([]Account, error)
	Categories(ctx context.Context) ([]Category, error)
	CreateTransaction(ctx context.Context, accountID string, txn NewTransaction) error
	Sync(ctx context.Context) error
}

// HTTPClient implements Client against the Actual REST API bridge.
type HTTPClient struct {
	baseURL  string
	apiKey   string
	budgetID string
	client   *http.Client
}

// NewHTTPClient creates a client for one budget on one server.
func NewHTTPClient(serverURL, apiKey, budgetID string) *HTTPClient {
	return &HTTPClient{
		baseURL:  strings.TrimRight(serverURL, "/"),
		apiKey:   apiKey,
		budgetID: budgetID,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// dataEnvelope is the bridge's standard response wrapper.
type dataEnvelope[T any] struct {
	Data T `json:"data"`
}

// Accounts lists the budget's accounts.
func (c *HTTPClient) Accounts(ctx context.Context) ([]Account, error) {
	var env dataEnvelope[[]Account]
	if err := c.do(ctx, http.MethodGet, c.budgetPath("accounts"), nil, &env); err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}
	return env.Data, nil
}

// Categories lists the budget's categories.
func (c *HTTPClient) Categories(ctx context.Context) ([]Category, error) {
	var env dataEnvelope[[]Category]
	if err := c.do(ctx, http.MethodGet, c.budgetPath("categories"), nil, &env); err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	return env.Data, nil
}

// CreateTransaction creates one transaction in the given account.
func (c *HTTPClient) CreateTransaction(ctx context.Context, accountID string, txn NewTransaction) error {
	body := struct {
		Transaction NewTransaction `json:"transaction"`
	}{Transaction: txn}

	path := c.budgetPath("accounts", accountID, "transactions")
	if err := c.do(ctx, http.MethodPost, path, body, nil); err != nil {
		return fmt.Errorf("creating transaction: %w", err)
	}
	return nil
}

// Sync commits the budget file and pushes it to the sync server.
func (c *HTTPClient) Sync(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, c.budgetPath("sync"), nil, nil); err != nil {
		return fmt.Errorf("syncing budget: %w", err)
	}
	return nil
}

func (c *HTTPClient) budgetPath(parts ...string) string {
	segments := append([]string{"budgets", c.budgetID}, parts...)
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return "/" + strings.Join(segments, "/")
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s %s: status %d: %s", method, path, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}
