// Package cartola is a client for the Cartola FC fantasy football API.
//
// Every call goes through Fetch, which serves responses from an optional
// cache, retries responses that are not JSON (the service answers with an
// HTML "overloaded" page under load) and re-authenticates once when the
// session token expires. The endpoint methods map the JSON payloads onto the
// types in the model package.
package cartola

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/mww/cartolafc/cache"
	"github.com/mww/cartolafc/metrics"
	"github.com/mww/cartolafc/model"
)

const (
	CartolaURL = "https://api.cartolafc.globo.com"
	AuthURL    = "https://login.globo.com/api/authentication"
)

// API lists the endpoint methods of the Client, so that callers can mock it.
type API interface {
	Friends(ctx context.Context) ([]model.TeamInfo, error)
	League(ctx context.Context, q LeagueQuery) (*model.League, error)
	AthleteScores(ctx context.Context, athleteID int) ([]model.ScoreInfo, error)
	MyTeam(ctx context.Context) (*model.Team, error)

	Clubs(ctx context.Context) (map[int]model.Club, error)
	Leagues(ctx context.Context, query string) ([]model.LeagueInfo, error)
	Sponsors(ctx context.Context) (map[int]model.Sponsor, error)
	Market(ctx context.Context) (*model.Market, error)
	MarketAthletes(ctx context.Context) ([]model.Athlete, error)
	Partials(ctx context.Context) (map[int]*model.Athlete, error)
	Matches(ctx context.Context, round int) ([]model.Match, error)
	PostRoundHighlights(ctx context.Context) (*model.RoundHighlights, error)
	Team(ctx context.Context, q TeamQuery) (*model.Team, error)
	TeamJSON(ctx context.Context, q TeamQuery) (json.RawMessage, error)
	PartialTeam(ctx context.Context, q TeamQuery, partials map[int]*model.Athlete) (*model.Team, error)
	Teams(ctx context.Context, query string) ([]model.TeamInfo, error)
}

type Client struct {
	url        string
	authURL    string
	httpClient *http.Client
	attempts   int
	cache      cache.Cache
	cacheTTL   time.Duration
	logger     *slog.Logger
	metrics    *metrics.Manager
	clock      clock.Clock
	session    session
}

var _ API = (*Client)(nil)

type Option func(*Client)

// WithAttempts sets how many times a request is tried when the servers are
// overloaded. Values lower than 1 are treated as 1.
func WithAttempts(attempts int) Option {
	return func(c *Client) {
		c.attempts = normalizeAttempts(attempts)
	}
}

// WithCache enables the response cache. A non-positive ttl uses cache.DefaultTTL.
func WithCache(store cache.Cache, ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = store
		c.cacheTTL = cache.NormalizeTTL(ttl)
	}
}

// WithCredentials makes New authenticate with the given account. Passing
// only one of email and password makes New fail.
func WithCredentials(email, password string) Option {
	return func(c *Client) {
		c.session.email = email
		c.session.password = password
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func WithMetrics(m *metrics.Manager) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

func WithClock(clk clock.Clock) Option {
	return func(c *Client) {
		if clk != nil {
			c.clock = clk
		}
	}
}

// WithURLs overrides the API and identity service locations.
func WithURLs(apiURL, authURL string) Option {
	return func(c *Client) {
		if apiURL != "" {
			c.url = apiURL
		}
		if authURL != "" {
			c.authURL = authURL
		}
	}
}

// New creates a client. When credentials are given the client authenticates
// before returning.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	c := &Client{
		url:     CartolaURL,
		authURL: AuthURL,
		httpClient: &http.Client{
			Timeout: 1 * time.Minute,
		},
		attempts: 1,
		logger:   slog.Default(),
		clock:    clock.New(),
	}

	for _, opt := range opts {
		opt(c)
	}

	email, password := c.session.credentials()
	if (email == "") != (password == "") {
		return nil, newAPIError(msgCredentialsMissing)
	}
	if email != "" {
		if err := c.Authenticate(ctx, email, password); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// NewForTest creates a client pointed at fake servers.
func NewForTest(ctx context.Context, apiURL, authURL string, opts ...Option) (*Client, error) {
	opts = append([]Option{WithURLs(apiURL, authURL), WithHTTPClient(http.DefaultClient)}, opts...)
	return New(ctx, opts...)
}

// Attempts returns the effective number of attempts per request.
func (c *Client) Attempts() int {
	return c.attempts
}

func normalizeAttempts(attempts int) int {
	if attempts < 1 {
		return 1
	}
	return attempts
}
