package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/naveenspark/gymhum/pkg/domain"
)

// DefaultBaseURL is the mock catalog API.
const DefaultBaseURL = "https://json-mock-api-vk2o.onrender.com/api"

// maxBodySize caps how much of a response body is read.
const maxBodySize = 10 << 20

// Section is the decoded item list of one catalog section. Exactly one of the
// slices is populated, matching Kind.
type Section struct {
	Kind     domain.SectionKind
	Workouts []domain.Workout
	Recipes  []domain.Recipe
	Products []domain.Product
}

// Len returns the number of items in the section.
func (s Section) Len() int {
	switch s.Kind {
	case domain.SectionWorkouts:
		return len(s.Workouts)
	case domain.SectionNutrition:
		return len(s.Recipes)
	case domain.SectionProducts:
		return len(s.Products)
	}
	return 0
}

// Client is the GymHum catalog API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a new catalog client. Requests are single-attempt and bounded only
// by the caller's context.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

// FetchSection fetches and decodes the item list for kind.
func (c *Client) FetchSection(ctx context.Context, kind domain.SectionKind) (Section, error) {
	s := Section{Kind: kind}
	var err error
	switch kind {
	case domain.SectionWorkouts:
		s.Workouts, err = fetchList[domain.Workout](ctx, c, kind)
	case domain.SectionNutrition:
		s.Recipes, err = fetchList[domain.Recipe](ctx, c, kind)
	case domain.SectionProducts:
		s.Products, err = fetchList[domain.Product](ctx, c, kind)
	default:
		return Section{}, fmt.Errorf("client.FetchSection: unknown section %v", kind)
	}
	if err != nil {
		return Section{}, fmt.Errorf("client.FetchSection: %w", err)
	}
	return s, nil
}

// ListWorkouts returns the workouts catalog.
func (c *Client) ListWorkouts(ctx context.Context) ([]domain.Workout, error) {
	items, err := fetchList[domain.Workout](ctx, c, domain.SectionWorkouts)
	if err != nil {
		return nil, fmt.Errorf("client.ListWorkouts: %w", err)
	}
	return items, nil
}

// ListRecipes returns the nutrition catalog.
func (c *Client) ListRecipes(ctx context.Context) ([]domain.Recipe, error) {
	items, err := fetchList[domain.Recipe](ctx, c, domain.SectionNutrition)
	if err != nil {
		return nil, fmt.Errorf("client.ListRecipes: %w", err)
	}
	return items, nil
}

// ListProducts returns the products catalog.
func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	items, err := fetchList[domain.Product](ctx, c, domain.SectionProducts)
	if err != nil {
		return nil, fmt.Errorf("client.ListProducts: %w", err)
	}
	return items, nil
}

func fetchList[T any](ctx context.Context, c *Client, kind domain.SectionKind) ([]T, error) {
	body, err := c.get(ctx, kind)
	if err != nil {
		return nil, err
	}
	var items []T
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, &ParseError{Section: kind, Err: err}
	}
	if items == nil {
		// A literal null body is not an item list.
		return nil, &ParseError{Section: kind, Err: fmt.Errorf("expected JSON array, got %s", truncateBody(body))}
	}
	return items, nil
}

func (c *Client) get(ctx context.Context, kind domain.SectionKind) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+kind.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Section: kind, Err: err}
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20)) // 1 MB max error body
		if readErr != nil {
			return nil, &NetworkError{Section: kind, StatusCode: resp.StatusCode, Message: fmt.Sprintf("failed to read body: %v", readErr)}
		}
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error != "" {
			return nil, &NetworkError{Section: kind, StatusCode: resp.StatusCode, Message: apiErr.Error}
		}
		return nil, &NetworkError{Section: kind, StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(respBody))}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, &NetworkError{Section: kind, StatusCode: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}
	return body, nil
}

func truncateBody(b []byte) string {
	const limit = 64
	if len(b) > limit {
		return string(b[:limit]) + "..."
	}
	return string(b)
}
