// Package amadeus wraps the travel-inventory provider: the OAuth2
// client-credentials exchange, the time-cached access token and the
// bearer-authenticated search endpoints. Search methods follow a swallow-and-
// degrade policy: recoverable provider failures are logged and surface as an
// empty result, only a failed credential exchange is returned as an error.
package amadeus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/voyago/voyago/app/observability/metrics"
	"github.com/voyago/voyago/internal/types"
)

// tokenSafetyMargin is subtracted from the provider TTL so the token is
// refreshed before it actually expires.
const tokenSafetyMargin = 300 * time.Second

// Client talks to the Amadeus self-service APIs. The zero value is not
// usable; construct with New.
type Client struct {
	baseURL      string
	clientID     string
	clientSecret string
	httpClient   *http.Client
	logger       *slog.Logger
	now          func() time.Time

	mu          sync.Mutex
	accessToken string
	expiresAt   time.Time
}

// New creates an Amadeus client. The timeout bounds every outbound call.
func New(baseURL, clientID, clientSecret string, timeout time.Duration, logger *slog.Logger) *Client {
	return NewWithClock(baseURL, clientID, clientSecret, timeout, logger, time.Now)
}

// NewWithClock is New with an injected clock, for tests that exercise the
// token lifecycle.
func NewWithClock(baseURL, clientID, clientSecret string, timeout time.Duration, logger *slog.Logger, now func() time.Time) *Client {
	return &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient:   &http.Client{Timeout: timeout},
		logger:       logger,
		now:          now,
	}
}

// Token returns the cached access token, performing a credential exchange
// only when no valid token is held. A failed exchange wraps types.ErrAuth
// and is fatal for the caller's gateway call; there is no retry loop.
func (c *Client) Token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && c.now().Before(c.expiresAt) {
		return c.accessToken, nil
	}

	if c.clientID == "" || c.clientSecret == "" {
		return "", fmt.Errorf("%w: client credentials not configured", types.ErrAuth)
	}

	l := c.logger.With(slog.String("method", "Token"))
	l.InfoContext(ctx, "Requesting new access token")

	outcome := "error"
	defer func() {
		metrics.Get().TokenExchangesTotal.Add(ctx, 1,
			metric.WithAttributes(attribute.String("outcome", outcome)))
	}()

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/security/oauth2/token",
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("%w: %v", types.ErrAuth, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", types.ErrAuth, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		l.ErrorContext(ctx, "Token exchange failed",
			slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return "", fmt.Errorf("%w: token endpoint returned %d", types.ErrAuth, resp.StatusCode)
	}

	var result struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("%w: %v", types.ErrAuth, err)
	}
	if result.AccessToken == "" {
		return "", fmt.Errorf("%w: token endpoint returned no token", types.ErrAuth)
	}

	c.accessToken = result.AccessToken
	c.expiresAt = c.now().Add(time.Duration(result.ExpiresIn)*time.Second - tokenSafetyMargin)
	outcome = "success"

	l.InfoContext(ctx, "Access token obtained", slog.Time("expires_at", c.expiresAt))
	return c.accessToken, nil
}

// get performs a bearer-authenticated GET against path with the given query
// parameters and returns the raw response body. Non-2xx responses are
// returned as errors so callers can apply the degrade policy.
func (c *Client) get(ctx context.Context, path string, query url.Values) (body []byte, err error) {
	ctx, span := otel.Tracer("AmadeusClient").Start(ctx, "get")
	defer span.End()
	span.SetAttributes(attribute.String("amadeus.path", path))

	start := time.Now()
	defer func() { metrics.ObserveGatewayCall(ctx, "amadeus", start, err) }()

	token, err := c.Token(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	defer resp.Body.Close()

	body, _ = io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("amadeus %s returned %d: %s", path, resp.StatusCode, string(body))
	}
	return body, nil
}

// degrade logs a recoverable provider failure and decides whether it must
// propagate. Only credential failures are returned; everything else becomes
// an empty result at the call site.
func (c *Client) degrade(ctx context.Context, op string, err error) error {
	if errors.Is(err, types.ErrAuth) {
		return err
	}
	c.logger.WarnContext(ctx, "Provider call degraded to empty result",
		slog.String("op", op), slog.Any("error", err))
	return nil
}
