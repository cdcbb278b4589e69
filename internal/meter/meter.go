package meter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/kudos/internal/config"
	"github.com/GlebRadaev/kudos/internal/domain"
	"github.com/GlebRadaev/kudos/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
	workers       = 10
	readingsPath  = "/api/readings"
)

var (
	ErrUnexpectedStatus = errors.New("unexpected status code")
	ErrRateLimited      = errors.New("rate limited by metering system")
)

// Reading is one energy production record reported by the metering system.
type Reading struct {
	ID         string    `json:"id"`
	Account    string    `json:"account"`
	EnergyKWh  float64   `json:"energy_kwh"`
	ProducedAt time.Time `json:"produced_at"`
}

type Ledger interface {
	AddKudos(ctx context.Context, accountID string, amount decimal.Decimal, description string) (domain.Transaction, error)
	CreditsForEnergy(energyKWh float64) decimal.Decimal
}

type Service struct {
	url           string
	ledger        Ledger
	client        clients.HTTPClientI
	workerPool    WorkerPoolI
	pollInterval  time.Duration
	retryInterval time.Duration

	// handled holds ids of readings that are queued or done.
	handled sync.Map
}

func New(cfg *config.Config, ledger Ledger, client clients.HTTPClientI) *Service {
	return &Service{
		url:           cfg.MeterAddress,
		ledger:        ledger,
		client:        client,
		workerPool:    NewWorkerPool(workers),
		pollInterval:  cfg.MeterPollInterval,
		retryInterval: retryInterval,
	}
}

// Start polls the metering system until ctx is cancelled.
func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Meter poller started", zap.String("url", s.url), zap.Duration("interval", s.pollInterval))
	defer s.workerPool.Close()

	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping meter poller")
			return
		case <-ticker.C:
			s.poll(ctx)
		}
	}
}

func (s *Service) poll(ctx context.Context) {
	readings, err := s.fetchReadings(ctx)
	if err != nil {
		zap.L().Error("Failed to fetch meter readings", zap.Error(err))
		return
	}
	s.processReadings(ctx, readings)
}

func (s *Service) processReadings(ctx context.Context, readings []Reading) {
	var g errgroup.Group
	for _, reading := range readings {
		reading := reading

		if _, loaded := s.handled.LoadOrStore(reading.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				return s.handleReading(ctx, reading)
			})
			if err != nil {
				s.handled.Delete(reading.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error dispatching meter readings", zap.Error(err))
	}
}

// handleReading issues credits for a reading. Rejections by the ledger are
// final; any other failure forgets the reading so the next poll retries it.
func (s *Service) handleReading(ctx context.Context, reading Reading) error {
	if reading.EnergyKWh <= 0 {
		zap.L().Info("Skipping reading without production", zap.String("reading", reading.ID))
		return nil
	}

	amount := s.ledger.CreditsForEnergy(reading.EnergyKWh)
	_, err := s.ledger.AddKudos(ctx, reading.Account, amount, "energy production "+reading.ID)
	switch {
	case err == nil:
		zap.L().Info("Credits issued for reading",
			zap.String("reading", reading.ID),
			zap.String("account", reading.Account),
			zap.String("amount", amount.String()),
		)
		return nil
	case errors.Is(err, domain.ErrInvalidTransaction), errors.Is(err, domain.ErrInvalidAccountID):
		zap.L().Warn("Reading rejected by ledger", zap.String("reading", reading.ID), zap.Error(err))
		return nil
	default:
		s.handled.Delete(reading.ID)
		return fmt.Errorf("failed to issue credits for reading %s: %w", reading.ID, err)
	}
}

func (s *Service) fetchReadings(ctx context.Context) ([]Reading, error) {
	url := s.url + readingsPath

	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		statusCode, respBody, respHeaders, err := s.client.Get(url, nil)
		if err != nil {
			if attempt < maxRetries {
				s.sleep(ctx, s.retryInterval*time.Duration(attempt))
				continue
			}
			return nil, fmt.Errorf("failed to fetch readings after %d retries: %w", maxRetries, err)
		}

		switch statusCode {
		case http.StatusOK:
			var readings []Reading
			if err := json.Unmarshal(respBody, &readings); err != nil {
				return nil, fmt.Errorf("failed to parse response body: %w", err)
			}
			return readings, nil
		case http.StatusNoContent:
			return nil, nil
		case http.StatusTooManyRequests:
			wait := s.retryAfter(respHeaders, attempt)
			zap.L().Warn("Rate limit detected, retrying", zap.Int("attempt", attempt), zap.Duration("retryAfter", wait))
			if attempt < maxRetries {
				s.sleep(ctx, wait)
				continue
			}
			return nil, ErrRateLimited
		default:
			return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, statusCode)
		}
	}
	return nil, nil
}

func (s *Service) retryAfter(respHeaders http.Header, attempt int) time.Duration {
	retryAfter := s.retryInterval * time.Duration(attempt)
	if header := respHeaders.Get("Retry-After"); header != "" {
		if seconds, err := strconv.Atoi(header); err == nil {
			retryAfter = time.Duration(seconds) * time.Second
		}
	}
	return retryAfter
}

func (s *Service) sleep(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
