package service

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-health-server/internal/logger"
	"github.com/MKhiriev/go-health-server/internal/store"
	"github.com/MKhiriev/go-health-server/models"
)

type healthService struct {
	pingers map[string]store.Pinger
	timeout time.Duration

	logger *logger.Logger
}

// NewHealthService builds a [HealthService] checking pingers on readiness.
// Each ping is bounded by timeout when it is positive.
func NewHealthService(pingers map[string]store.Pinger, timeout time.Duration, logger *logger.Logger) HealthService {
	return &healthService{
		pingers: maps.Clone(pingers),
		timeout: timeout,
		logger:  logger,
	}
}

func (s *healthService) Liveness(_ context.Context) models.HealthStatus {
	return models.HealthStatus{
		Status:  models.StatusHealthy,
		Message: models.MessageHealthy,
	}
}

func (s *healthService) Readiness(ctx context.Context) (models.ReadinessStatus, error) {
	if len(s.pingers) == 0 {
		return models.ReadinessStatus{Status: models.StatusReady}, nil
	}

	var (
		mu     sync.Mutex
		checks = make(map[string]string, len(s.pingers))
		failed []string
		wg     sync.WaitGroup
	)

	for name, pinger := range s.pingers {
		wg.Go(func() {
			result := models.CheckOK
			if err := s.ping(ctx, pinger); err != nil {
				s.logger.Warn().Err(err).Str("check", name).Msg("readiness check failed")
				result = err.Error()
			}

			mu.Lock()
			defer mu.Unlock()
			checks[name] = result
			if result != models.CheckOK {
				failed = append(failed, name)
			}
		})
	}
	wg.Wait()

	if len(failed) > 0 {
		slices.Sort(failed)
		return models.ReadinessStatus{Status: models.StatusNotReady, Checks: checks},
			fmt.Errorf("%w: failed checks %v", ErrNotReady, failed)
	}

	return models.ReadinessStatus{Status: models.StatusReady, Checks: checks}, nil
}

func (s *healthService) ping(ctx context.Context, pinger store.Pinger) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	return pinger.PingContext(ctx)
}
