// Package supabase implements the identity provider port against the Supabase GoTrue REST API.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"zephyr/config"
	domainerrors "zephyr/internal/domain/errors"
	"zephyr/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	authPathPrefix = "/auth/v1"
	clientInfo     = "zephyr-go"

	// maxErrorBodyBytes bounds how much of an error response is read.
	maxErrorBodyBytes = 64 << 10
)

// Client talks to GoTrue with the project's anon key, and with the service role key for admin calls.
type Client struct {
	baseURL        string
	anonKey        string
	serviceRoleKey string
	httpClient     *http.Client
	logger         *slog.Logger
}

// Params holds dependencies for the Supabase client, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewIdentityProvider creates the Supabase-backed identity provider.
func NewIdentityProvider(params Params) service.IdentityProvider {
	cfg := params.Config.Supabase
	if cfg.URL == "" || cfg.AnonKey == "" {
		params.Logger.Warn("Supabase url or anon key missing, identity provider calls will fail")
	}

	return NewClient(cfg.URL, cfg.AnonKey, cfg.ServiceRoleKey, cfg.Timeout, params.Logger)
}

// NewClient creates a GoTrue client. The timeout bounds every request.
func NewClient(baseURL, anonKey, serviceRoleKey string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		anonKey:        anonKey,
		serviceRoleKey: serviceRoleKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// request describes one call to GoTrue.
type request struct {
	method      string
	path        string
	query       url.Values
	body        any
	bearerToken string // Defaults to the api key.
	admin       bool
}

// do sends the request and decodes a 2xx JSON body into out (when out is non-nil).
// Provider errors become *domainerrors.AuthError, transport failures and 5xx become NetworkError.
func (c *Client) do(ctx context.Context, req request, out any) error {
	apiKey := c.anonKey
	if req.admin {
		apiKey = c.serviceRoleKey
	}

	endpoint := c.baseURL + authPathPrefix + req.path
	if len(req.query) > 0 {
		endpoint += "?" + req.query.Encode()
	}

	var body io.Reader
	if req.body != nil {
		payload, err := json.Marshal(req.body)
		if err != nil {
			return errors.Wrap(err, "failed to encode identity provider request")
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, endpoint, body)
	if err != nil {
		return errors.Wrap(err, "failed to create identity provider request")
	}

	bearer := req.bearerToken
	if bearer == "" {
		bearer = apiKey
	}
	httpReq.Header.Set("apikey", apiKey)
	httpReq.Header.Set("Authorization", "Bearer "+bearer)
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Client-Info", clientInfo)
	if req.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.WarnContext(ctx, "Identity provider unreachable",
			slog.String("method", req.method),
			slog.String("path", req.path),
			slog.Any("error", err),
		)

		return domainerrors.NewNetworkError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return c.decodeError(ctx, req, resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "failed to decode identity provider response")
	}

	return nil
}

func (c *Client) decodeError(ctx context.Context, req request, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))

	if resp.StatusCode >= http.StatusInternalServerError {
		c.logger.ErrorContext(ctx, "Identity provider server error",
			slog.String("method", req.method),
			slog.String("path", req.path),
			slog.Int("status", resp.StatusCode),
		)

		return domainerrors.NewNetworkError(errors.Errorf("identity provider returned status %d: %s", resp.StatusCode, string(raw)))
	}

	return normalizeError(resp.StatusCode, raw)
}
