package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/kudos/internal/config"
	"github.com/GlebRadaev/kudos/internal/domain"
	"github.com/GlebRadaev/kudos/internal/events"
	"github.com/GlebRadaev/kudos/internal/events/kafka"
	"github.com/GlebRadaev/kudos/internal/handlers"
	"github.com/GlebRadaev/kudos/internal/meter"
	"github.com/GlebRadaev/kudos/internal/repo"
	"github.com/GlebRadaev/kudos/internal/service"
	"github.com/GlebRadaev/kudos/pkg/auth"
	"github.com/GlebRadaev/kudos/pkg/clients"
	"github.com/GlebRadaev/kudos/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type eventPublisher interface {
	Publish(ctx context.Context, event domain.TransactionEvent) error
	Close() error
}

type cleaner interface {
	CleanupExpired(ctx context.Context) domain.CleanupReport
}

type Application struct {
	cfg    *config.Config
	api    *handlers.Handlers
	srv    *service.Services
	repo   *repo.Repositories
	events eventPublisher
	ext    *meter.Service

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		zap.L().Error("invalid configuration: ", zap.Error(err))
		return fmt.Errorf("invalid configuration: %w", err)
	}

	a.cfg = cfg
	a.events = newEventPublisher(cfg)
	a.repo = repo.New()
	a.srv = service.New(a.repo, a.events, cfg.LedgerSettings())
	a.api = handlers.New(a.srv, newJWTService(cfg))

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startCleanupScheduler(ctx, a.srv.Ledger, cfg.CleanupInterval)

	if cfg.MeterAddress != "" {
		a.ext = meter.New(cfg, a.srv.Ledger, clients.NewHTTPClient())
		a.startMeterPoller(ctx)
	}

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func newEventPublisher(cfg *config.Config) eventPublisher {
	if len(cfg.KafkaBrokers) == 0 {
		return events.NopPublisher{}
	}
	zap.L().Info("publishing transaction events to kafka",
		zap.Strings("brokers", cfg.KafkaBrokers),
		zap.String("topic", cfg.KafkaTopic),
	)
	return kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
}

func newJWTService(cfg *config.Config) auth.JWTServiceInterface {
	if cfg.JWTSecret == "" {
		zap.L().Warn("JWT_SECRET is not set, API authentication is disabled")
		return nil
	}
	return auth.NewJWTService(cfg.JWTSecret)
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startCleanupScheduler(ctx context.Context, ledger cleaner, interval time.Duration) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				ledger.CleanupExpired(ctx)
			}
		}
	}()
}

func (a *Application) startMeterPoller(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.ext.Start(ctx)
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	if a.events != nil {
		if err := a.events.Close(); err != nil {
			zap.L().Error("failed to close event publisher", zap.Error(err))
		}
	}

	return appErr
}
