/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package client

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/nscaledev/petfriends/pkg/constants"
	"github.com/nscaledev/petfriends/pkg/openapi"
)

// APIClient talks to a single PetFriends service.
type APIClient struct {
	baseURL   string
	client    *resty.Client
	endpoints *Endpoints
	logger    *zap.Logger
	validator *openapi.Validator

	httpClient   *http.Client
	timeout      time.Duration
	userAgent    string
	validate     bool
	logResponses bool
}

// Option configures an APIClient.
type Option func(*APIClient)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(a *APIClient) {
		a.httpClient = c
	}
}

// WithTimeout bounds each request, zero means no limit.
func WithTimeout(d time.Duration) Option {
	return func(a *APIClient) {
		a.timeout = d
	}
}

// WithLogger sets the logger, requests are logged at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(a *APIClient) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithResponseLogging logs response bodies at debug level.
func WithResponseLogging(enabled bool) Option {
	return func(a *APIClient) {
		a.logResponses = enabled
	}
}

// WithSchemaValidation checks every response against the API description.
// Mismatches are logged as warnings and never alter the response.
func WithSchemaValidation(enabled bool) Option {
	return func(a *APIClient) {
		a.validate = enabled
	}
}

// WithUserAgent overrides the default user agent.
func WithUserAgent(userAgent string) Option {
	return func(a *APIClient) {
		a.userAgent = userAgent
	}
}

// New returns a client for the service rooted at baseURL.
func New(baseURL string, opts ...Option) (*APIClient, error) {
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}

	c := &APIClient{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		endpoints: NewEndpoints(),
		logger:    zap.NewNop(),
		userAgent: constants.UserAgent(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient != nil {
		c.client = resty.NewWithClient(c.httpClient)
	} else {
		c.client = resty.New()
	}

	c.client.SetBaseURL(c.baseURL)
	c.client.SetLogger(c.logger.Sugar())
	c.client.SetHeader("User-Agent", c.userAgent)
	c.client.SetHeader("Accept", "application/json")

	if c.timeout > 0 {
		c.client.SetTimeout(c.timeout)
	}

	if c.validate {
		validator, err := openapi.NewValidator(c.baseURL)
		if err != nil {
			return nil, fmt.Errorf("creating response validator: %w", err)
		}

		c.validator = validator
	}

	return c, nil
}

// BaseURL returns the service root.
func (c *APIClient) BaseURL() string {
	return c.baseURL
}

// generateTraceID creates a new W3C trace ID.
func generateTraceID() string {
	bytes := make([]byte, 16)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// generateSpanID creates a new W3C span ID.
func generateSpanID() string {
	bytes := make([]byte, 8)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// createTraceParent creates a W3C traceparent header value.
func createTraceParent() string {
	return fmt.Sprintf("00-%s-%s-01", generateTraceID(), generateSpanID())
}

// extractTraceID extracts the trace ID from a traceparent header value.
func extractTraceID(traceParent string) string {
	parts := strings.Split(traceParent, "-")
	if len(parts) >= 2 {
		return parts[1]
	}

	return traceParent
}

// doRequest issues a single request; prepare may add headers and a body.
func (c *APIClient) doRequest(ctx context.Context, method, path string, prepare func(*resty.Request)) (*Response, error) {
	traceParent := createTraceParent()

	req := c.client.R().
		SetContext(ctx).
		SetHeader("Traceparent", traceParent).
		SetHeader("Tracestate", "test-automation="+constants.Application)

	if prepare != nil {
		prepare(req)
	}

	start := time.Now()
	resp, err := req.Execute(method, path)
	duration := time.Since(start)

	if err != nil {
		c.logger.Error("http request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Duration("duration", duration),
			zap.String("traceID", extractTraceID(traceParent)),
			zap.Error(err))

		return nil, fmt.Errorf("http request failed: %w", err)
	}

	c.logger.Debug("http request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode()),
		zap.Duration("duration", duration),
		zap.String("traceID", extractTraceID(traceParent)))

	if c.logResponses && len(resp.Body()) > 0 {
		c.logger.Debug("http response body",
			zap.String("method", method),
			zap.String("path", path),
			zap.ByteString("body", resp.Body()))
	}

	if c.validator != nil && resp.Request != nil && resp.Request.RawRequest != nil {
		if err := c.validator.ValidateResponse(ctx, resp.Request.RawRequest, resp.StatusCode(), resp.Header(), resp.Body()); err != nil {
			c.logger.Warn("response does not match API description",
				zap.String("method", method),
				zap.String("path", path),
				zap.Int("status", resp.StatusCode()),
				zap.String("traceID", extractTraceID(traceParent)),
				zap.Error(err))
		}
	}

	return NewResponse(resp.StatusCode(), resp.Header(), resp.Body()), nil
}
