package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/piggytree/piggytree/internal/metrics"
)

const (
	// DefaultSiteAPIBase serves search, scoreboard and schedule data.
	DefaultSiteAPIBase = "https://site.api.espn.com"
	// DefaultCoreAPIBase serves per-athlete detail records.
	DefaultCoreAPIBase = "https://sports.core.api.espn.com"

	// ESPN serves these endpoints without credentials but rejects requests
	// with an unfamiliar User-Agent.
	userAgent = "Mozilla/5.0"
)

// Client handles ESPN API requests.
type Client struct {
	siteBase   string
	coreBase   string
	httpClient *http.Client
}

// NewClient creates an ESPN API client. Empty base URLs fall back to the
// public endpoints.
func NewClient(siteBase, coreBase string, timeout time.Duration) *Client {
	if siteBase == "" {
		siteBase = DefaultSiteAPIBase
	}
	if coreBase == "" {
		coreBase = DefaultCoreAPIBase
	}
	return &Client{
		siteBase: siteBase,
		coreBase: coreBase,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// SearchPlayers searches athletes by free-text name, scoped to one sport
// and league (e.g. "football"/"nfl").
func (c *Client) SearchPlayers(ctx context.Context, sport, league, query string) (Document, error) {
	u := fmt.Sprintf("%s/apis/common/v3/search?query=%s&limit=10&type=player&sport=%s&league=%s",
		c.siteBase, url.QueryEscape(query), sport, league)
	return c.get(ctx, "search", u)
}

// AthleteDetail fetches the core-API record for an NFL athlete. Only the
// NFL flow needs it (position data is missing from search results).
func (c *Client) AthleteDetail(ctx context.Context, athleteID string) (Document, error) {
	u := fmt.Sprintf("%s/v2/sports/football/leagues/nfl/athletes/%s", c.coreBase, athleteID)
	return c.get(ctx, "athlete", u)
}

// TeamSchedule fetches a team's schedule. sportPath is the site-API sport
// segment, e.g. "football/nfl" or "basketball/nba".
func (c *Client) TeamSchedule(ctx context.Context, sportPath, teamID string) (Document, error) {
	u := fmt.Sprintf("%s/apis/site/v2/sports/%s/teams/%s/schedule", c.siteBase, sportPath, teamID)
	return c.get(ctx, "schedule", u)
}

// get performs a GET request and decodes the JSON body into a Document.
// Any non-200 status is an error; the caller decides whether that fails
// the whole lookup or just one best-effort field.
func (c *Client) get(ctx context.Context, endpoint, url string) (Document, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	log.Debug().Str("endpoint", endpoint).Str("url", url).Msg("ESPN API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ESPNCallsTotal.WithLabelValues(endpoint, "error").Inc()
		return nil, fmt.Errorf("ESPN request failed: %w", err)
	}
	defer resp.Body.Close()

	metrics.ESPNCallDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())

	if resp.StatusCode != http.StatusOK {
		metrics.ESPNCallsTotal.WithLabelValues(endpoint, fmt.Sprintf("%d", resp.StatusCode)).Inc()
		return nil, fmt.Errorf("ESPN returned status %d", resp.StatusCode)
	}
	metrics.ESPNCallsTotal.WithLabelValues(endpoint, "200").Inc()

	var doc Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode ESPN response: %w", err)
	}
	return doc, nil
}
