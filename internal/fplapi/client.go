// Package fplapi is the raw data source adapter for the Fantasy Premier
// League API. It fetches player, team, fixture, history, standings and live
// gameweek records as typed raw structs, with rate limiting and an in-memory
// TTL response cache.
package fplapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/aatrey56/fpl-vibe-scout/internal/cache"
)

const defaultBaseURL = "https://fantasy.premierleague.com/api"

// Client fetches raw records from the FPL API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	limiter    *rate.Limiter
	cache      *cache.Cache
	logger     *slog.Logger
}

// NewClient creates a rate-limited FPL client. A nil cache disables
// memoization; a nil logger falls back to slog.Default.
func NewClient(baseURL string, c *cache.Cache, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if c == nil {
		c = cache.New(false)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		httpClient: &http.Client{Timeout: 20 * time.Second},
		baseURL:    baseURL,
		userAgent:  "fpl-vibe-scout/1.0",
		limiter:    rate.NewLimiter(rate.Limit(2), 1),
		cache:      c,
		logger:     logger,
	}
}

// getJSON performs a cached, rate-limited GET of urlPath and decodes the
// response into v. The cache key is the URL path itself.
func (c *Client) getJSON(ctx context.Context, urlPath string, ttl time.Duration, v any) error {
	if b, ok := c.cache.Get(urlPath); ok {
		return json.Unmarshal(b, v)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+urlPath, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", urlPath, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s: %w", urlPath, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("GET %s failed: %d body=%s", urlPath, resp.StatusCode, truncate(body, 200))
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decode %s: %w", urlPath, err)
	}
	c.cache.Set(urlPath, body, ttl)
	c.logger.Debug("fetched", "path", urlPath, "bytes", len(body))
	return nil
}

// Bootstrap fetches the primary dataset (players and teams). A failure here
// is fatal to the current query cycle.
func (c *Client) Bootstrap(ctx context.Context) (*Bootstrap, error) {
	var out Bootstrap
	if err := c.getJSON(ctx, "/bootstrap-static/", cache.TTLBootstrap, &out); err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}
	return &out, nil
}

// Fixtures fetches the full fixture list.
func (c *Client) Fixtures(ctx context.Context) ([]Fixture, error) {
	var out []Fixture
	if err := c.getJSON(ctx, "/fixtures/", cache.TTLBootstrap, &out); err != nil {
		return nil, fmt.Errorf("fixtures: %w", err)
	}
	return out, nil
}

// ElementSummary fetches per-gameweek history for one player.
func (c *Client) ElementSummary(ctx context.Context, elementID int) (*ElementSummary, error) {
	var out ElementSummary
	path := fmt.Sprintf("/element-summary/%d/", elementID)
	if err := c.getJSON(ctx, path, cache.TTLHistory, &out); err != nil {
		return nil, fmt.Errorf("element summary %d: %w", elementID, err)
	}
	return &out, nil
}

// LeagueStandings fetches classic league standings.
func (c *Client) LeagueStandings(ctx context.Context, leagueID int) (*LeagueStandings, error) {
	var out LeagueStandings
	path := fmt.Sprintf("/leagues-classic/%d/standings/", leagueID)
	if err := c.getJSON(ctx, path, cache.TTLLive, &out); err != nil {
		return nil, fmt.Errorf("league %d standings: %w", leagueID, err)
	}
	return &out, nil
}

// EventLive fetches per-player point totals for one gameweek.
func (c *Client) EventLive(ctx context.Context, gw int) (*EventLive, error) {
	var out EventLive
	path := fmt.Sprintf("/event/%d/live/", gw)
	if err := c.getJSON(ctx, path, cache.TTLLive, &out); err != nil {
		return nil, fmt.Errorf("event %d live: %w", gw, err)
	}
	return &out, nil
}

func truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	return string(b[:maxLen]) + "..."
}
