// Package mwlogger logs every outgoing API request the way the server
// side would log incoming ones: method, url, status, duration.
package mwlogger

import (
	"log/slog"
	"net/http"
	"time"
)

type roundTripper struct {
	next http.RoundTripper
	log  *slog.Logger
}

func New(log *slog.Logger, next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}

	return &roundTripper{
		next: next,
		log: log.With(
			slog.String("component", "client/mwlogger"),
		),
	}
}

func (rt *roundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	entry := rt.log.With(
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
	)

	start := time.Now()

	resp, err := rt.next.RoundTrip(req)
	if err != nil {
		entry.Error("request failed",
			slog.String("error", err.Error()),
			slog.String("duration", time.Since(start).String()),
		)

		return nil, err
	}

	entry.Debug("request completed",
		slog.Int("status", resp.StatusCode),
		slog.String("duration", time.Since(start).String()),
	)

	return resp, nil
}
