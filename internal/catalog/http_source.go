// Propmatch - Real Estate Listing Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/propmatch

package catalog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/propmatch/internal/metrics"
	"github.com/tomtom215/propmatch/internal/models"
)

// maxCatalogBody bounds the size of a remote catalog document.
const maxCatalogBody = 32 << 20

// ErrUnexpectedStatus is returned when the remote catalog answers with a non-200 status.
var ErrUnexpectedStatus = errors.New("unexpected catalog response status")

// ErrCatalogTooLarge is returned when the remote catalog exceeds the body limit.
var ErrCatalogTooLarge = errors.New("catalog too large")

// HTTPSourceConfig configures an HTTPSource.
type HTTPSourceConfig struct {
	URL string

	// Timeout bounds a single fetch.
	Timeout time.Duration

	// FailureThreshold is the number of consecutive failures that opens the breaker.
	FailureThreshold uint32

	// OpenTimeout is how long the breaker stays open before a half-open probe.
	OpenTimeout time.Duration

	// Client overrides the HTTP client. Timeout is ignored when set.
	Client *http.Client
}

// HTTPSource fetches the listing array from a remote URL. Fetches go through a
// circuit breaker so a failing upstream is not hammered by periodic reloads.
type HTTPSource struct {
	url     string
	maxBody int64
	client  *http.Client
	cb      *gobreaker.CircuitBreaker[[]models.Listing]
	name    string
	logger  zerolog.Logger
}

// NewHTTPSource creates an HTTP catalog source.
// Circuit breaker configuration:
//   - Opens after FailureThreshold consecutive failures
//   - Allows a single probe request in half-open state
//   - Invalid records and oversized documents are data problems, not availability ones, and do not count as failures
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewHTTPSource(cfg HTTPSourceConfig, logger zerolog.Logger) *HTTPSource {
	client := cfg.Client
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	threshold := cfg.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}

	s := &HTTPSource{
		url:     cfg.URL,
		maxBody: maxCatalogBody,
		client:  client,
		name:    "catalog-http",
		logger:  logger.With().Str("component", "catalog-http").Str("url", cfg.URL).Logger(),
	}

	metrics.CircuitBreakerState.WithLabelValues(s.name).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(s.name).Set(0)

	s.cb = gobreaker.NewCircuitBreaker[[]models.Listing](gobreaker.Settings{
		Name:        s.name,
		MaxRequests: 1,
		Interval:    0, // never reset counts while closed; only consecutive failures matter
		Timeout:     cfg.OpenTimeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},

		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrInvalidRecord) || errors.Is(err, ErrCatalogTooLarge)
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			s.logger.Warn().Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})

	return s
}

// Load fetches and decodes the remote catalog.
func (s *HTTPSource) Load(ctx context.Context) ([]models.Listing, error) {
	listings, err := s.cb.Execute(func() ([]models.Listing, error) {
		return s.fetch(ctx)
	})

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(s.name, "rejected").Inc()
		} else {
			metrics.CircuitBreakerRequests.WithLabelValues(s.name, "failure").Inc()
			metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(s.name).Set(float64(s.cb.Counts().ConsecutiveFailures))
		}
		return nil, fmt.Errorf("catalog %s: %w", s.url, err)
	}

	metrics.CircuitBreakerRequests.WithLabelValues(s.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(s.name).Set(0)
	return listings, nil
}

func (s *HTTPSource) fetch(ctx context.Context) ([]models.Listing, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "propmatch")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain a little so the connection can be reused.
		_, _ = io.CopyN(io.Discard, resp.Body, 4096)
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, s.maxBody+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if int64(len(body)) > s.maxBody {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrCatalogTooLarge, s.maxBody)
	}
	return Decode(bytes.NewReader(body))
}

// State reports the current circuit breaker state.
func (s *HTTPSource) State() gobreaker.State {
	return s.cb.State()
}

func (s *HTTPSource) String() string {
	return "http:" + s.url
}

// stateToFloat converts circuit breaker state to a float for the gauge.
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
