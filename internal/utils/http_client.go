package utils

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/mcp-manager/internal/logger"
	"github.com/go-resty/resty/v2"
)

// DefaultUserAgent is sent by every client created with [NewHTTPClient].
const DefaultUserAgent = "mcp-manager"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient().WithLogger(log).WithRetries(2, 200*time.Millisecond)
//	resp, err := client.R().Get("https://registry.npmjs.org/express/latest")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent client that asks for JSON and
// identifies itself with [DefaultUserAgent]. Resty's own log output is
// discarded until [HTTPClient.WithLogger] is called.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetLogger(restyLogger{logger.Nop()}).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", DefaultUserAgent)
	return &HTTPClient{Client: client}
}

// WithLogger routes resty's internal messages (retry attempts, warnings)
// through l. A nil l discards them.
func (c *HTTPClient) WithLogger(l *logger.Logger) *HTTPClient {
	if l == nil {
		l = logger.Nop()
	}
	c.SetLogger(restyLogger{l})
	return c
}

// WithRetries retries a request up to count more times, waiting wait between
// attempts, when it failed in transport or was answered with a 5xx status.
// 4xx answers and timeouts are never retried.
func (c *HTTPClient) WithRetries(count int, wait time.Duration) *HTTPClient {
	c.SetRetryCount(count).
		SetRetryWaitTime(wait).
		AddRetryCondition(IsRetryable)
	return c
}

// IsRetryable reports whether a resty attempt should be retried.
func IsRetryable(resp *resty.Response, err error) bool {
	if err != nil {
		return !isTimeout(err)
	}
	return resp != nil && resp.StatusCode() >= http.StatusInternalServerError
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// restyLogger adapts *logger.Logger to resty.Logger.
type restyLogger struct {
	l *logger.Logger
}

func (r restyLogger) Errorf(format string, v ...any) {
	r.l.Error().Str("component", "resty").Msgf(strings.TrimSpace(format), v...)
}

func (r restyLogger) Warnf(format string, v ...any) {
	r.l.Warn().Str("component", "resty").Msgf(strings.TrimSpace(format), v...)
}

func (r restyLogger) Debugf(format string, v ...any) {
	r.l.Debug().Str("component", "resty").Msgf(strings.TrimSpace(format), v...)
}
