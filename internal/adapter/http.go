package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-health-server/internal/logger"
	"github.com/MKhiriev/go-health-server/internal/utils"
	"github.com/MKhiriev/go-health-server/models"
)

type httpHealthAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPHealthAdapter constructs an HTTP implementation of [HealthAdapter].
// address may omit the scheme ("127.0.0.1:3000"); http is assumed. A positive
// timeout bounds every request.
//
// Returns an error wrapping [ErrInvalidAddress] if address is empty or cannot
// be parsed as a URL with a host.
func NewHTTPHealthAdapter(address string, timeout time.Duration, logger *logger.Logger) (HealthAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpHealthAdapter{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpHealthAdapter) Health(ctx context.Context) (models.HealthStatus, error) {
	var status models.HealthStatus

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&status).
		Get("/health")
	if err != nil {
		return models.HealthStatus{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthStatus{}, err
	}

	if status.Status != models.StatusHealthy {
		return status, fmt.Errorf("%w: %q", ErrUnhealthy, status.Status)
	}

	h.logger.Debug().Str("status", status.Status).Msg("health probe succeeded")
	return status, nil
}

func (h *httpHealthAdapter) Ready(ctx context.Context) (models.ReadinessStatus, error) {
	var ready, notReady models.ReadinessStatus

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&ready).
		SetError(&notReady).
		Get("/ready")
	if err != nil {
		return models.ReadinessStatus{}, fmt.Errorf("readiness request: %w", err)
	}

	if resp.StatusCode() == http.StatusServiceUnavailable && notReady.Status != "" {
		return notReady, fmt.Errorf("%w: %s", ErrServiceUnavailable, notReady.Status)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ReadinessStatus{}, err
	}

	return ready, nil
}
