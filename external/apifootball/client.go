package apifootball

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/matchday-api/internal/platform/logging"
	"github.com/riskibarqy/matchday-api/internal/platform/resilience"
	"github.com/riskibarqy/matchday-api/internal/usecase"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

const (
	headerAPIKey  = "x-rapidapi-key"
	headerAPIHost = "x-rapidapi-host"

	maxBodyBytes        = 6 << 20
	defaultTimeout      = 10 * time.Second
	defaultRetryBackoff = time.Second
	dateLayout          = "2006-01-02"
)

var errTransient = crerr.New("api-football transient failure")

type ClientConfig struct {
	HTTPClient *http.Client
	// BaseURL overrides https://<Host>.
	BaseURL           string
	Host              string
	APIKey            string
	Timeout           time.Duration
	MaxRetries        int
	RetryBackoff      time.Duration
	RequestsPerMinute int
	Logger            *logging.Logger
	CircuitBreaker    resilience.CircuitBreakerConfig
}

// Client talks to the api-sports football v3 API and implements
// usecase.FootballProvider.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	host           string
	apiKey         string
	maxRetries     int
	retryBackoff   time.Duration
	limiter        *rate.Limiter
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         singleflight.Group
}

var _ usecase.FootballProvider = (*Client)(nil)

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}

	host := strings.TrimSpace(cfg.Host)
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = "https://" + host
	}

	retryBackoff := cfg.RetryBackoff
	if retryBackoff <= 0 {
		retryBackoff = defaultRetryBackoff
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerMinute > 0 {
		burst := cfg.RequestsPerMinute / 60
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)), burst)
	}

	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)
	if breakerCfg.OnStateChange == nil {
		breakerCfg.OnStateChange = func(name string, from, to resilience.CircuitState) {
			logger.Warn("circuit breaker state changed", "breaker", name, "from", from, "to", to)
		}
	}

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		host:           host,
		apiKey:         strings.TrimSpace(cfg.APIKey),
		maxRetries:     max(cfg.MaxRetries, 0),
		retryBackoff:   retryBackoff,
		limiter:        limiter,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker("api-football", breakerCfg),
		circuitEnabled: breakerCfg.Enabled,
	}
}

func (c *Client) ListFixtures(ctx context.Context, query usecase.FixtureQuery) ([]usecase.ExternalFixture, error) {
	params := url.Values{}
	setInt64(params, "league", query.LeagueID)
	setInt(params, "season", query.Season)
	setInt64(params, "team", query.TeamID)
	if !query.From.IsZero() {
		params.Set("from", query.From.Format(dateLayout))
	}
	if !query.To.IsZero() {
		params.Set("to", query.To.Format(dateLayout))
	}
	setInt(params, "next", query.Next)
	setInt(params, "last", query.Last)
	if len(query.Statuses) > 0 {
		params.Set("status", strings.Join(query.Statuses, "-"))
	}

	var items []fixtureItem
	if _, err := c.doJSON(ctx, "/fixtures", params, &items); err != nil {
		return nil, crerr.Wrapf(err, "list fixtures %s", params.Encode())
	}
	return mapFixtures(items), nil
}

func (c *Client) ListTeams(ctx context.Context, query usecase.TeamQuery) ([]usecase.ExternalTeam, error) {
	params := url.Values{}
	setInt64(params, "id", query.TeamID)
	setInt64(params, "league", query.LeagueID)
	setInt(params, "season", query.Season)
	if search := strings.TrimSpace(query.Search); search != "" {
		params.Set("search", search)
	}

	var items []teamItem
	if _, err := c.doJSON(ctx, "/teams", params, &items); err != nil {
		return nil, crerr.Wrapf(err, "list teams %s", params.Encode())
	}
	return mapTeams(items), nil
}

func (c *Client) GetTeamStatistics(ctx context.Context, query usecase.TeamStatisticsQuery) (usecase.ExternalTeamStatistics, bool, error) {
	if query.TeamID <= 0 || query.LeagueID <= 0 || query.Season <= 0 {
		return usecase.ExternalTeamStatistics{}, false, fmt.Errorf("%w: league, season and team are required", usecase.ErrInvalidInput)
	}

	params := url.Values{}
	setInt64(params, "league", query.LeagueID)
	setInt(params, "season", query.Season)
	setInt64(params, "team", query.TeamID)

	raw, err := c.doJSON(ctx, "/teams/statistics", params, nil)
	if err != nil {
		return usecase.ExternalTeamStatistics{}, false, crerr.Wrapf(err, "team statistics %s", params.Encode())
	}

	// An empty block comes back as [] or {} instead of an object.
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return usecase.ExternalTeamStatistics{}, false, nil
	}
	var item teamStatisticsItem
	if err := sonic.Unmarshal(trimmed, &item); err != nil {
		return usecase.ExternalTeamStatistics{}, false, crerr.Mark(crerr.Wrap(err, "decode team statistics"), usecase.ErrUpstreamFailure)
	}
	if !hasStatistics(item) {
		return usecase.ExternalTeamStatistics{}, false, nil
	}
	return mapTeamStatistics(item), true, nil
}

// doJSON fetches path and returns the raw response member of the envelope.
// When target is non-nil the member is decoded into it.
func (c *Client) doJSON(ctx context.Context, path string, params url.Values, target any) ([]byte, error) {
	fullURL := c.baseURL + path
	if encoded := params.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	out, err, _ := c.flight.Do(fullURL, func() (any, error) {
		var body []byte
		call := func() error {
			var reqErr error
			body, reqErr = c.executeRequest(ctx, fullURL)
			return reqErr
		}
		if !c.circuitEnabled {
			callErr := call()
			return body, callErr
		}
		runErr := c.breaker.Run(call, isCircuitFailure)
		if crerr.Is(runErr, resilience.ErrCircuitOpen) {
			c.logger.WarnContext(ctx, "api-football circuit breaker rejected request", "state", c.breaker.State())
			return nil, crerr.Mark(
				crerr.Wrap(runErr, "football data provider is temporarily unavailable"),
				usecase.ErrDependencyUnavailable,
			)
		}
		return body, runErr
	})
	if err != nil {
		return nil, err
	}

	raw, ok := out.([]byte)
	if !ok {
		return nil, crerr.Newf("unexpected response payload type %T", out)
	}

	var env envelope
	if err := sonic.Unmarshal(raw, &env); err != nil {
		return nil, crerr.Mark(crerr.Wrap(err, "decode provider envelope"), usecase.ErrUpstreamFailure)
	}
	if messages := envelopeErrors(env.Errors); len(messages) > 0 {
		return nil, crerr.Mark(
			crerr.Newf("provider errors: %s", c.sanitize(strings.Join(messages, "; "))),
			usecase.ErrUpstreamFailure,
		)
	}

	if target != nil && len(env.Response) > 0 {
		if err := sonic.Unmarshal(env.Response, target); err != nil {
			return nil, crerr.Mark(crerr.Wrap(err, "decode provider response"), usecase.ErrUpstreamFailure)
		}
	}
	return env.Response, nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, crerr.Mark(crerr.Wrap(err, "rate limiter wait"), usecase.ErrDependencyUnavailable)
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, crerr.Wrap(err, "build request")
		}
		req.Header.Set("accept", "application/json")
		req.Header.Set(headerAPIKey, c.apiKey)
		req.Header.Set(headerAPIHost, c.host)

		started := time.Now()
		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = crerr.Mark(
				crerr.Wrapf(errTransient, "send request: %s", c.sanitize(err.Error())),
				usecase.ErrUpstreamFailure,
			)
		} else {
			raw, readErr := readBody(resp.Body)
			_ = resp.Body.Close()
			c.logger.DebugContext(ctx, "api-football response",
				"url", fullURL,
				"status", resp.StatusCode,
				"duration_ms", time.Since(started).Milliseconds(),
				"attempt", attempt+1,
			)

			switch {
			case readErr != nil:
				lastErr = crerr.Mark(crerr.Wrapf(errTransient, "read response body: %v", readErr), usecase.ErrUpstreamFailure)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			case isRetryableStatus(resp.StatusCode):
				lastErr = crerr.Mark(
					crerr.Wrapf(errTransient, "provider status=%d body=%s", resp.StatusCode, c.sanitize(abbreviateBody(raw))),
					usecase.ErrUpstreamFailure,
				)
			default:
				return nil, crerr.Mark(
					crerr.Newf("provider status=%d body=%s", resp.StatusCode, c.sanitize(abbreviateBody(raw))),
					usecase.ErrUpstreamFailure,
				)
			}
		}

		if attempt == c.maxRetries {
			break
		}
		timer := time.NewTimer(time.Duration(attempt+1) * c.retryBackoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = crerr.Mark(crerr.New("provider request failed"), usecase.ErrUpstreamFailure)
	}
	c.logger.WarnContext(ctx, "api-football request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func readBody(body io.Reader) ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if _, err := buf.ReadFrom(io.LimitReader(body, maxBodyBytes)); err != nil {
		return nil, err
	}
	out := make([]byte, buf.Len())
	copy(out, buf.B)
	return out, nil
}

// envelopeErrors flattens the errors member, which is either an array or an
// object keyed by parameter name.
func envelopeErrors(raw any) []string {
	switch v := raw.(type) {
	case map[string]any:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		out := make([]string, 0, len(keys))
		for _, key := range keys {
			out = append(out, fmt.Sprintf("%s: %v", key, v[key]))
		}
		return out
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if text := strings.TrimSpace(fmt.Sprint(item)); text != "" {
				out = append(out, text)
			}
		}
		return out
	case string:
		if strings.TrimSpace(v) != "" {
			return []string{v}
		}
	}
	return nil
}

// sanitize keeps the API key out of errors and logs.
func (c *Client) sanitize(value string) string {
	value = strings.TrimSpace(value)
	if c.apiKey != "" {
		value = strings.ReplaceAll(value, c.apiKey, "REDACTED")
	}
	return value
}

func isCircuitFailure(err error) bool {
	return err != nil && crerr.Is(err, errTransient)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}

func setInt(params url.Values, key string, value int) {
	if value > 0 {
		params.Set(key, strconv.Itoa(value))
	}
}

func setInt64(params url.Values, key string, value int64) {
	if value > 0 {
		params.Set(key, strconv.FormatInt(value, 10))
	}
}
