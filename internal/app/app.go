package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/earnpro/internal/config"
	"github.com/GlebRadaev/earnpro/internal/gateway"
	"github.com/GlebRadaev/earnpro/internal/gateway/memgateway"
	"github.com/GlebRadaev/earnpro/internal/gateway/pggateway"
	"github.com/GlebRadaev/earnpro/internal/handlers"
	"github.com/GlebRadaev/earnpro/internal/mailer"
	"github.com/GlebRadaev/earnpro/internal/pg"
	"github.com/GlebRadaev/earnpro/internal/proof"
	"github.com/GlebRadaev/earnpro/internal/service"
	"github.com/GlebRadaev/earnpro/internal/session"
	"github.com/GlebRadaev/earnpro/internal/shell"
	"github.com/GlebRadaev/earnpro/internal/withdraw"
	"github.com/GlebRadaev/earnpro/pkg/auth"
	"github.com/GlebRadaev/earnpro/pkg/clients"
	"github.com/GlebRadaev/earnpro/pkg/logger"
)

const (
	shutdownTimeout = 5 * time.Second
	hubWorkers      = 10
	mailWorkers     = 5
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg      *config.Config
	api      *handlers.Handlers
	srv      *service.Services
	sessions *session.Manager

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
	a.cfg = cfg

	hasher := auth.NewHashService(0)
	tokens := auth.NewJWTService(cfg.JWTSecret)
	deliverer := mailer.NewDeliverer(cfg.MailWebhookURL, clients.NewHTTPClient())

	proofs, err := newProofStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("can't init proof storage: %w", err)
	}
	connect, err := a.startBackend(ctx, hasher, deliverer)
	if err != nil {
		return err
	}

	a.sessions = session.NewManager(connect, shell.Options{
		Currency:   cfg.CurrencySymbol,
		Limits:     withdraw.Limits{Min: cfg.MinWithdrawal, Max: cfg.MaxWithdrawal},
		SupportURL: cfg.SupportURL,
		ToastTTL:   cfg.ToastTTL,
		Proofs:     proofs,
	}, cfg.SessionTTL)
	a.srv = service.New(a.sessions, tokens, cfg.SupportURL)
	a.api = handlers.New(a.srv, tokens, cfg.AllowedOrigins, cfg.Proof.MaxBytes)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}
	a.startSessionSweeper(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully", zap.String("backend", cfg.Backend))
	return nil
}

func newProofStore(ctx context.Context, cfg *config.Config) (proof.Store, error) {
	if cfg.Proof.Bucket == "" {
		zap.L().Info("proof bucket not configured, using placeholder references")
		return proof.NewPlaceholderStore(cfg.Proof.MaxBytes), nil
	}
	return proof.NewS3Store(ctx, cfg.Proof)
}

func (a *Application) startBackend(ctx context.Context, hasher auth.HashServiceInterface, deliverer *mailer.Deliverer) (session.Connect, error) {
	switch a.cfg.Backend {
	case config.BackendMemory:
		backend := memgateway.New(hasher, deliverer, a.cfg.ResetURL)
		if err := seedDemo(backend); err != nil {
			return nil, fmt.Errorf("can't seed demo data: %w", err)
		}
		return func() gateway.Gateway { return backend.Connect() }, nil
	case config.BackendPostgres:
		return a.startPostgres(ctx, hasher, deliverer)
	}
	return nil, fmt.Errorf("unknown backend %q", a.cfg.Backend)
}

func (a *Application) startPostgres(ctx context.Context, hasher auth.HashServiceInterface, deliverer *mailer.Deliverer) (session.Connect, error) {
	pool, err := getPgxpool(ctx, a.cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return nil, fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(ctx, pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return nil, fmt.Errorf("can't run migrations: %w", err)
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, mailer.NewResetMailWorker(deliverer))
	riverClient, err := river.NewClient(riverpgxv5.New(pool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: mailWorkers},
		},
		Workers: workers,
	})
	if err != nil {
		return nil, fmt.Errorf("can't create river client: %w", err)
	}
	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("can't start river client: %w", err)
	}

	hub := pggateway.NewHub(pggateway.NewPoolListener(pool), hubWorkers)
	backend := pggateway.New(
		pg.New(pool),
		pg.NewTXManager(pool),
		hub,
		hasher,
		mailer.NewQueue(mailer.RiverInserter(riverClient)),
		a.cfg.ResetURL,
	)

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if err := hub.Run(ctx); err != nil {
			a.errCh <- fmt.Errorf("notification hub exited with error: %w", err)
		}

		sCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := riverClient.Stop(sCtx); err != nil {
			zap.L().Warn("river client did not stop cleanly", zap.Error(err))
		}
		pool.Close()
	}()

	return func() gateway.Gateway { return backend.Connect() }, nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
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

		sCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startSessionSweeper(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.sessions.Run(ctx)
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

	return appErr
}
