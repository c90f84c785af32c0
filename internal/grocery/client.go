// Copyright (c) Rowant Labs
// SPDX-License-Identifier: BUSL-1.1

// Package grocery builds and sends order requests to the external
// grocery-ordering API, turning recipes and shopping lists into shoppable
// links.
package grocery

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rowant-labs/Kitchly/internal/kitchendb"
)

const (
	productionBaseURL = "https://connect.instacart.com/idp/v1"
	sandboxBaseURL    = "https://connect.dev.instacart.tools/idp/v1"

	requestTimeout = 30 * time.Second
)

var (
	// ErrDisabled is returned when no API credential was configured at
	// startup.
	ErrDisabled = errors.New("grocery: ordering is not configured")

	// ErrTimeout is returned when the API does not respond within the
	// request timeout.
	ErrTimeout = errors.New("grocery: request timed out")

	// ErrMissingLink is returned when a successful response does not contain
	// an order link.
	ErrMissingLink = errors.New("grocery: response missing order link")
)

// ValidationError indicates a request that failed pre-flight validation and
// was never sent.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "grocery: invalid order request: " + e.Reason
}

// StatusError indicates a non-success HTTP status from the API. Body is
// captured best-effort.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("grocery: request failed with status %d: %s", e.Status, e.Body)
}

// Client sends order requests to the grocery API. The base URL is chosen
// once at construction and the client never retries.
type Client struct {
	apiKey      string
	baseURL     string
	linkbackURL string
	httpClient  *http.Client
	timeout     time.Duration
}

// NewClient returns a Client. An empty API key produces a disabled client
// whose calls fail with ErrDisabled; callers check Enabled once rather than
// per call.
func NewClient(apiKey string, sandbox bool, partnerLinkbackURL string) *Client {
	baseURL := productionBaseURL
	if sandbox {
		baseURL = sandboxBaseURL
	}
	if apiKey != "" && !strings.HasPrefix(apiKey, "Bearer ") {
		apiKey = "Bearer " + apiKey
	}
	return &Client{
		apiKey:      apiKey,
		baseURL:     baseURL,
		linkbackURL: partnerLinkbackURL,
		httpClient:  http.DefaultClient,
		timeout:     requestTimeout,
	}
}

// NewTestClient returns a Client pointed at an arbitrary base URL with a
// short timeout, for tests against a local server.
func NewTestClient(apiKey string, baseURL string, partnerLinkbackURL string, timeout time.Duration) *Client {
	c := NewClient(apiKey, false, partnerLinkbackURL)
	c.baseURL = baseURL
	c.timeout = timeout
	return c
}

// Enabled reports whether an API credential was configured.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// CreateRecipeOrder creates a shoppable order link for a recipe and returns
// the link URL.
func (c *Client) CreateRecipeOrder(ctx context.Context, recipe *kitchendb.Recipe) (string, error) {
	if strings.TrimSpace(recipe.Title) == "" {
		return "", &ValidationError{Reason: "recipe title is required"}
	}
	if len(recipe.Ingredients) == 0 {
		return "", &ValidationError{Reason: "recipe has no ingredients"}
	}
	instructions := make([]string, 0, len(recipe.Instructions))
	for _, step := range recipe.Instructions {
		if s := strings.TrimSpace(step); s != "" {
			instructions = append(instructions, s)
		}
	}
	if len(instructions) == 0 {
		return "", &ValidationError{Reason: "recipe has no instructions"}
	}

	body := recipeRequest{
		Title:        recipe.Title,
		LinkType:     "recipe",
		Ingredients:  wireIngredients(recipe.Ingredients),
		Instructions: instructions,
		LandingPage:  c.landingPage(),
	}
	return c.createLink(ctx, "/products/recipe", body)
}

// CreateShoppingListOrder creates a shoppable order link for a list of line
// items and returns the link URL.
func (c *Client) CreateShoppingListOrder(ctx context.Context, title string, items []kitchendb.Ingredient) (string, error) {
	if strings.TrimSpace(title) == "" {
		return "", &ValidationError{Reason: "shopping list title is required"}
	}
	if len(items) == 0 {
		return "", &ValidationError{Reason: "shopping list has no items"}
	}

	body := shoppingListRequest{
		Title:       title,
		LinkType:    "shopping_list",
		LineItems:   wireLineItems(items),
		LandingPage: c.landingPage(),
	}
	return c.createLink(ctx, "/products/products_link", body)
}

func (c *Client) createLink(ctx context.Context, path string, body any) (string, error) {
	if !c.Enabled() {
		return "", ErrDisabled
	}

	reqJSON, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("grocery: marshalling order request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(reqJSON))
	if err != nil {
		return "", fmt.Errorf("grocery: creating order request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Authorization", c.apiKey)

	httpRes, err := c.httpClient.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("grocery: no response within %s: %w", c.timeout, ErrTimeout)
		}
		return "", fmt.Errorf("grocery: sending order request: %w", err)
	}
	defer func() {
		_ = httpRes.Body.Close()
	}()

	if httpRes.StatusCode < http.StatusOK || httpRes.StatusCode >= http.StatusMultipleChoices {
		resBody, _ := io.ReadAll(httpRes.Body)
		return "", &StatusError{Status: httpRes.StatusCode, Body: string(resBody)}
	}

	var res orderResponse
	if err := json.NewDecoder(httpRes.Body).Decode(&res); err != nil {
		return "", fmt.Errorf("grocery: decoding order response: %w", err)
	}
	if res.OrdersLinkURL == "" {
		return "", ErrMissingLink
	}
	return res.OrdersLinkURL, nil
}
