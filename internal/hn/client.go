package hn

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"hnstories/internal/domain"
)

// DefaultEndpoint is the Algolia Hacker News search endpoint
const DefaultEndpoint = "https://hn.algolia.com/api/v1/search"

// ClientConfig configures the HTTP source
type ClientConfig struct {
	Endpoint          string
	HitsPerPage       int
	RequestsPerSecond float64
	Timeout           time.Duration
}

// Client searches stories over HTTP
type Client struct {
	endpoint    string
	hitsPerPage int
	httpClient  *http.Client
	limiter     *rate.Limiter
	logger      *zap.SugaredLogger
}

// NewClient creates an HTTP source. A zero RequestsPerSecond disables rate
// limiting; a zero Timeout means requests only end with their context.
func NewClient(cfg ClientConfig, logger *zap.SugaredLogger) *Client {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}

	return &Client{
		endpoint:    endpoint,
		hitsPerPage: cfg.HitsPerPage,
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		limiter:     rate.NewLimiter(limit, 1),
		logger:      logger,
	}
}

// searchResponse mirrors the parts of the Algolia payload we read
type searchResponse struct {
	Hits []searchHit `json:"hits"`
}

// searchHit allows null counters, which Algolia sends for some stories
type searchHit struct {
	ObjectID    string    `json:"objectID"`
	Title       *string   `json:"title"`
	URL         *string   `json:"url"`
	Author      string    `json:"author"`
	NumComments *int      `json:"num_comments"`
	Points      *int      `json:"points"`
	CreatedAt   time.Time `json:"created_at"`
}

// Search issues one request for query
func (c *Client) Search(ctx context.Context, query string) ([]domain.Item, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(err, "rate limit wait")
	}

	reqURL, err := c.searchURL(query)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "search %q", query)
	}
	defer resp.Body.Close()

	c.logger.Debugw("search response",
		"query", query,
		"status", resp.StatusCode,
		"elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, errors.Newf("search %q: unexpected status %d: %s", query, resp.StatusCode, string(body))
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrap(err, "decode search response")
	}

	return toItems(payload.Hits), nil
}

func (c *Client) searchURL(query string) (string, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return "", errors.Wrapf(err, "parse endpoint %q", c.endpoint)
	}
	q := u.Query()
	q.Set("query", query)
	q.Set("tags", "story")
	if c.hitsPerPage > 0 {
		q.Set("hitsPerPage", strconv.Itoa(c.hitsPerPage))
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// toItems drops hits without an id and keeps the first of any duplicate id
func toItems(hits []searchHit) []domain.Item {
	items := make([]domain.Item, 0, len(hits))
	seen := make(map[string]struct{}, len(hits))
	for _, h := range hits {
		if h.ObjectID == "" {
			continue
		}
		if _, dup := seen[h.ObjectID]; dup {
			continue
		}
		seen[h.ObjectID] = struct{}{}
		items = append(items, domain.Item{
			ID:          h.ObjectID,
			Title:       deref(h.Title),
			URL:         deref(h.URL),
			Author:      h.Author,
			NumComments: derefCount(h.NumComments),
			Points:      derefInt(h.Points),
			CreatedAt:   h.CreatedAt,
		})
	}
	return items
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}

// derefCount is derefInt for counters, which are never negative
func derefCount(n *int) int {
	if v := derefInt(n); v > 0 {
		return v
	}
	return 0
}
