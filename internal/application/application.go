package application

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"basket/internal/config"
	"basket/internal/domain/service/basket"
	"basket/internal/infrastructure/metrics"
	"basket/internal/infrastructure/persistence"
	"basket/internal/server"
	"basket/internal/transport/bot"
	"basket/internal/transport/bot/handler"
	"basket/pkg/application/connectors"
	"basket/pkg/application/modules"
	"basket/pkg/contextx"
	"basket/pkg/logx"
	"basket/pkg/probe"
)

const httpServerReadHeaderTimeout = 5 * time.Second

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Run поднимает корзину и все её интерфейсы и блокируется до отмены контекста.
func Run(ctx context.Context, cfg config.Config) error {
	// 1. Storage
	storage, checks, closeStorage, err := newStorage(ctx, cfg)
	if err != nil {
		return fmt.Errorf("newStorage: %w", err)
	}
	defer closeStorage(ctx)

	logger(ctx).Info("storage ready", slog.String(logx.FieldStorageDriver, string(cfg.Storage.Driver)))

	// 2. Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// 3. Basket
	repo := persistence.NewBasketRepository(storage, cfg.Storage.Key)

	svc := basket.NewService(repo).
		WithObserver(metrics.NewBasketMetrics(registry))
	svc.Init(ctx)

	// 4. Transport. Бот создаётся до запуска серверов: ошибка конфигурации
	// не должна оставить запущенные модули без ожидания.
	tgBot, err := newBot(cfg, svc)
	if err != nil {
		return fmt.Errorf("newBot: %w", err)
	}

	router := server.NewRouter(
		server.NewServer(server.NewBasketServer(svc)),
		logx.NewSensitiveDataMasker(),
		cfg.HTTP.LogFieldMaxLen,
	)

	httpServer := &http.Server{
		//nolint:exhaustruct
		Addr:              cfg.HTTP.ListenAddress,
		Handler:           router,
		ReadHeaderTimeout: httpServerReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	g, ctx := errgroup.WithContext(ctx)

	modules.HTTPServer{ShutdownTimeout: cfg.HTTP.ShutdownTimeout}.Run(ctx, g, httpServer)
	modules.MetricServer{ListenAddress: cfg.App.MetricsListenAddress, Gatherer: registry}.Run(ctx, g)
	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.App.ProbeListenAddress,
		Checks:        checks,
	}.Run(ctx, g)

	if tgBot != nil {
		g.Go(func() error {
			return tgBot.Run(ctx)
		})
	} else {
		logger(ctx).Info("telegram bot disabled")
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	logger(ctx).Info("application stopped")

	return nil
}

// newBot возвращает nil, если бот выключен в конфигурации.
func newBot(cfg config.Config, svc *basket.Service) (*bot.Bot, error) {
	if !cfg.Bot.Enabled() {
		return nil, nil //nolint:nilnil
	}

	tgBot, err := bot.New(cfg.Bot.Token, cfg.Bot.AdminID, handler.New(svc))
	if err != nil {
		return nil, fmt.Errorf("bot.New: %w", err)
	}

	return tgBot, nil
}

// newStorage выбирает драйвер хранилища по конфигурации.
func newStorage(
	ctx context.Context,
	cfg config.Config,
) (persistence.Storage, []probe.Check, func(context.Context), error) {
	nopClose := func(context.Context) {}

	switch cfg.Storage.Driver {
	case config.StorageFile:
		storage, err := persistence.NewFileStorage(cfg.Storage.FileDir)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("persistence.NewFileStorage: %w", err)
		}
		return storage, nil, nopClose, nil

	case config.StorageRedis:
		rc := &connectors.Redis{
			Username:           cfg.Redis.Username,
			Password:           cfg.Redis.Password,
			Address:            cfg.Redis.Address,
			DatabaseNumber:     cfg.Redis.DatabaseNumber,
			PoolSize:           cfg.Redis.PoolSize,
			MinIdleConnections: cfg.Redis.MinIdleConnections,
			MaxIdleConnections: cfg.Redis.MaxIdleConnections,
		}

		client, err := rc.Client(ctx)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("connectors.Redis.Client: %w", err)
		}

		check := func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		}

		return persistence.NewRedisStorage(client, cfg.Redis.KeyPrefix), []probe.Check{check}, rc.Close, nil

	case config.StoragePostgres:
		pg := &connectors.Postgres{
			DSN:             cfg.Postgres.DSN,
			MaxOpenConns:    cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
		}

		db, err := pg.Client(ctx)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("connectors.Postgres.Client: %w", err)
		}

		storage := persistence.NewPostgresStorage(db)
		if err := storage.EnsureSchema(ctx); err != nil {
			pg.Close(ctx)
			return nil, nil, nil, fmt.Errorf("storage.EnsureSchema: %w", err)
		}

		return storage, []probe.Check{db.PingContext}, pg.Close, nil

	default:
		return persistence.NewMemoryStorage(), nil, nopClose, nil
	}
}
