// Package shopify adapts the Shopify Admin GraphQL API as the upstream order
// feed. It fetches orders with their fulfillments and delivery event
// timelines, and performs the single feed mutation the system needs:
// appending a fulfillment event after an accepted transition.
package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Config holds the connection parameters for one shop's Admin API.
type Config struct {
	ShopDomain  string
	AccessToken string
	APIVersion  string
}

// Client is a minimal Shopify Admin GraphQL client.
type Client struct {
	endpoint    string
	accessToken string
	httpClient  *http.Client
	logger      *slog.Logger
}

// NewClient creates a new Shopify GraphQL client.
// The shop domain is normalized: scheme prefixes and trailing slashes are removed.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	shopDomain := cfg.ShopDomain
	shopDomain = strings.TrimPrefix(shopDomain, "https://")
	shopDomain = strings.TrimPrefix(shopDomain, "http://")
	shopDomain = strings.TrimSuffix(shopDomain, "/")

	return &Client{
		endpoint:    fmt.Sprintf("https://%s/admin/api/%s/graphql.json", shopDomain, cfg.APIVersion),
		accessToken: cfg.AccessToken,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger.With("component", "shopify_client"),
	}
}

// graphQLRequest is the wire format of a GraphQL request.
type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// graphQLResponse is the wire format of a GraphQL response.
type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors,omitempty"`
}

// graphQLError is one top-level GraphQL error.
type graphQLError struct {
	Message string `json:"message"`
	Path    []any  `json:"path,omitempty"`
}

// execute runs a GraphQL query or mutation against the shop's Admin API.
func (c *Client) execute(ctx context.Context, query string, variables map[string]any) (*graphQLResponse, error) {
	payload, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Access-Token", c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.WarnContext(ctx, "Admin API returned non-200 status",
			"status", resp.StatusCode)
		return nil, fmt.Errorf("shopify API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var graphQLResp graphQLResponse
	if err = json.Unmarshal(body, &graphQLResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(graphQLResp.Errors) > 0 {
		messages := make([]string, len(graphQLResp.Errors))
		for i, gqlErr := range graphQLResp.Errors {
			messages[i] = gqlErr.Message
		}
		return nil, fmt.Errorf("graphQL errors: %s", strings.Join(messages, "; "))
	}

	return &graphQLResp, nil
}
