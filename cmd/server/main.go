package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"golang.org/x/sync/errgroup"

	"hemobank/internal/audit"
	"hemobank/internal/auth"
	authstore "hemobank/internal/auth/store"
	"hemobank/internal/donor"
	donorstore "hemobank/internal/donor/store"
	"hemobank/internal/hospital"
	hospitalstore "hemobank/internal/hospital/store"
	"hemobank/internal/platform/config"
	"hemobank/internal/platform/httpserver"
	"hemobank/internal/platform/logger"
	"hemobank/internal/platform/metrics"
	"hemobank/internal/platform/mongodb"
	platformredis "hemobank/internal/platform/redis"
	"hemobank/internal/ratelimit"
	httptransport "hemobank/internal/transport/http"
)

const auditInboxCapacity = 256

// main wires dependencies and owns the process lifecycle. Business logic
// lives in the domain packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()
	slog.SetDefault(log)

	if err := run(cfg, log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New()

	stores, cleanup, err := buildStores(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	publisher := audit.NewPublisher(log, auditInboxCapacity)
	auditWorker := audit.NewWorker(audit.NewInMemoryStore(), publisher.Inbox(), log)

	donorSvc, err := donor.NewService(stores.donors,
		donor.WithLogger(log), donor.WithMetrics(m), donor.WithAuditor(publisher))
	if err != nil {
		return err
	}
	hospitalSvc, err := hospital.NewService(stores.hospitals,
		hospital.WithLogger(log), hospital.WithMetrics(m), hospital.WithAuditor(publisher))
	if err != nil {
		return err
	}
	authSvc, err := auth.NewService(stores.users,
		auth.WithLogger(log), auth.WithMetrics(m), auth.WithAuditor(publisher),
		auth.WithBcryptCost(cfg.BcryptCost))
	if err != nil {
		return err
	}

	limiter, err := buildRateLimiter(cfg, log, m, publisher)
	if err != nil {
		return err
	}

	router := httptransport.NewRouter(httptransport.Deps{
		Logger:         log,
		Metrics:        m,
		Donors:         donorSvc,
		Hospitals:      hospitalSvc,
		Auth:           authSvc,
		RateLimit:      limiter,
		RequestTimeout: cfg.RequestTimeout,
	})

	srv := httpserver.New(cfg.Addr, router)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return auditWorker.Run(gctx)
	})

	g.Go(func() error {
		log.Info("starting hemobank", "addr", cfg.Addr, "backend", string(cfg.StoreBackend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		publisher.Close()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// storeSet carries one store per entity, all backed by the same backend.
type storeSet struct {
	donors    donor.Store
	hospitals hospital.Store
	users     auth.Store
}

func buildStores(ctx context.Context, cfg config.Config) (storeSet, func(), error) {
	switch cfg.StoreBackend {
	case config.BackendMemory:
		return storeSet{
			donors:    donorstore.NewInMemoryStore(),
			hospitals: hospitalstore.NewInMemoryStore(),
			users:     authstore.NewInMemoryStore(),
		}, func() {}, nil

	case config.BackendPostgres:
		db, err := sql.Open("postgres", cfg.PostgresDSN)
		if err != nil {
			return storeSet{}, nil, fmt.Errorf("open postgres: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return storeSet{}, nil, fmt.Errorf("ping postgres: %w", err)
		}

		donors := donorstore.NewPostgresStore(db)
		hospitals := hospitalstore.NewPostgresStore(db)
		users := authstore.NewPostgresStore(db)
		for _, ensure := range []func(context.Context) error{
			donors.EnsureSchema, hospitals.EnsureSchema, users.EnsureSchema,
		} {
			if err := ensure(ctx); err != nil {
				_ = db.Close()
				return storeSet{}, nil, err
			}
		}
		return storeSet{donors: donors, hospitals: hospitals, users: users},
			func() { _ = db.Close() }, nil

	case config.BackendMongo:
		client, err := mongodb.New(cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return storeSet{}, nil, fmt.Errorf("connect mongo: %w", err)
		}
		users := authstore.NewMongoStore(client.Database())
		if err := users.EnsureIndexes(ctx); err != nil {
			_ = client.Close(ctx)
			return storeSet{}, nil, err
		}
		return storeSet{
				donors:    donorstore.NewMongoStore(client.Database()),
				hospitals: hospitalstore.NewMongoStore(client.Database()),
				users:     users,
			}, func() {
				closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = client.Close(closeCtx)
			}, nil

	default:
		return storeSet{}, nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}

// buildRateLimiter uses Redis when configured so limits hold across
// instances, and falls back to the in-process window otherwise.
func buildRateLimiter(cfg config.Config, log *slog.Logger, m *metrics.Metrics, auditor audit.Recorder) (*ratelimit.Middleware, error) {
	var store ratelimit.Store = ratelimit.NewInMemoryStore()
	if cfg.RedisURL != "" {
		client, err := platformredis.New(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		store = ratelimit.NewRedisStore(client.Client)
	}
	return ratelimit.NewMiddleware(store, cfg.RateLimitMax, cfg.RateLimitWindow, log,
		ratelimit.WithMetrics(m), ratelimit.WithAuditor(auditor)), nil
}
