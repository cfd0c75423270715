package assistant

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

type loggingTransport struct {
	next http.RoundTripper
}

// NewLoggingTransport logs every request with the logger found in its context.
func NewLoggingTransport(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return &loggingTransport{next: next}
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	reqLogger := zerolog.Ctx(req.Context()).With().
		Str("method", req.Method).
		Str("host", req.URL.Host).
		Str("path", req.URL.Path).
		Logger()

	start := time.Now()
	resp, err := t.next.RoundTrip(req)
	if err != nil {
		reqLogger.Warn().Err(err).Dur("elapsed", time.Since(start)).Msg("assistant request failed")
		return nil, err
	}

	reqLogger.Debug().Int("status", resp.StatusCode).Dur("elapsed", time.Since(start)).Msg("assistant request")
	return resp, nil
}
