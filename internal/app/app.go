package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"

	"fraud-engine/internal/api/handlers"
	"fraud-engine/internal/api/middlew"
	"fraud-engine/internal/config"
	"fraud-engine/internal/db"
	"fraud-engine/internal/health"
	"fraud-engine/internal/kafka"
	"fraud-engine/internal/metrics"
	"fraud-engine/internal/rules"
	"fraud-engine/internal/server"
	"fraud-engine/internal/service"
	"fraud-engine/internal/storage/postgres"
	"fraud-engine/internal/storage/redisstore"
	"fraud-engine/pkg/logger"
)

type App struct {
	log           *slog.Logger
	logger        *logger.LoggerWithFile
	cfg           *config.Config
	server        *server.Server
	healthServer  *server.HealthServer
	redis         redis.UniversalClient
	pool          *pgxpool.Pool
	registry      *prometheus.Registry
	outcomes      metrics.Sink
	ruleEngine    *rules.Engine
	authService   service.Auth
	kafkaProducer kafka.Producer
	dispatcher    *service.DecisionDispatcher
	readiness     *health.Registry
}

func NewApp() (*App, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации конфига: %w", err)
	}

	loggerWithFile, err := logger.NewLoggerWithFile(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации логгера: %w", err)
	}
	log := loggerWithFile.Logger.With(slog.String("service", cfg.ServiceName))
	log.Info("конфигурация загружена", slog.String("port", cfg.HTTPPort), slog.String("version", cfg.ServiceVersion))

	a := &App{
		log:       log,
		logger:    loggerWithFile,
		cfg:       cfg,
		readiness: health.NewRegistry(2 * time.Second),
	}

	if err := a.init(context.Background()); err != nil {
		a.closeResources()
		return nil, err
	}
	return a, nil
}

func (a *App) init(ctx context.Context) error {
	cfg := a.cfg

	ruleSet, err := rules.LoadFile(cfg.RulesFile)
	if err != nil {
		return fmt.Errorf("ошибка загрузки правил: %w", err)
	}
	a.ruleEngine = rules.NewEngine(ruleSet)
	a.log.Info("правила загружены", slog.String("file", cfg.RulesFile), slog.Int("count", len(ruleSet)))

	a.redis, err = db.NewRedisClient(ctx, cfg.Redis.ClientConfig(), a.log)
	if err != nil {
		return fmt.Errorf("не удалось подключиться к redis: %w", err)
	}

	a.registry = prometheus.NewRegistry()
	a.registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	promOutcomes, err := metrics.NewPrometheus(a.registry)
	if err != nil {
		return fmt.Errorf("ошибка регистрации метрик: %w", err)
	}
	httpMetrics, err := metrics.NewHTTP(a.registry)
	if err != nil {
		return fmt.Errorf("ошибка регистрации метрик: %w", err)
	}
	a.outcomes = metrics.Multi{redisstore.NewCounters(a.redis), promOutcomes}

	if cfg.Audit.Enabled {
		a.log.Info("выполнение миграций базы аудита")
		if err := db.RunMigrations(cfg.DB.MigrationURL(), "migrations"); err != nil {
			return fmt.Errorf("ошибка выполнения миграций: %w", err)
		}

		poolCfg := db.PoolConfig{
			MaxConns:          20,
			MinConns:          2,
			HealthCheckPeriod: 30 * time.Second,
			PoolTimeout:       5 * time.Second,
			RetryAttempts:     5,
			RetryDelay:        1 * time.Second,
			ApplicationName:   cfg.ServiceName,
		}
		a.pool, err = db.NewPool(ctx, cfg.DB.DSN(), poolCfg, a.log)
		if err != nil {
			return fmt.Errorf("не удалось подключиться к базе аудита: %w", err)
		}
	} else {
		a.log.Info("аудит решений отключен в конфигурации")
	}

	if cfg.Kafka.Enabled {
		a.log.Info("инициализация kafka producer", slog.Any("brokers", cfg.Kafka.Brokers))
		a.kafkaProducer, err = kafka.NewKafkaProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic, a.log)
		if err != nil {
			return fmt.Errorf("ошибка инициализации kafka: %w", err)
		}
	} else {
		a.log.Info("kafka отключен в конфигурации")
		a.kafkaProducer = kafka.NewNoOpProducer(a.log)
	}

	if cfg.JWT.Enabled {
		a.authService = service.NewAuthService(cfg.JWT.Secret, cfg.JWT.Expiration, cfg.JWT.Issuer, a.log)
	} else {
		a.log.Warn("аутентификация отключена, /api/v1 доступен без токена")
	}

	if cfg.GRPC.HealthEnabled {
		a.healthServer, err = server.NewHealthServer(cfg.GRPC.HealthPort, cfg.ServiceName, a.log)
		if err != nil {
			return fmt.Errorf("ошибка инициализации gRPC health: %w", err)
		}
	}

	a.server = server.NewServer(cfg.HTTPPort)
	a.server.Router.Use(middleware.RequestID)
	a.server.Router.Use(middlew.WithLogger(a.log))
	a.server.Router.Use(middleware.RealIP)
	a.server.Router.Use(middleware.Recoverer)
	a.server.Router.Use(middlew.Metrics(httpMetrics))
	a.server.RegisterSwagger()
	a.server.RegisterMetrics(a.registry)
	a.log.Info("сервер инициализирован", slog.String("port", cfg.HTTPPort))

	return nil
}

// apiGroup mounts routes under the optional bearer guard and request timeout.
func (a *App) apiGroup(fn func(r chi.Router)) {
	a.server.Router.Group(func(r chi.Router) {
		if a.authService != nil {
			r.Use(middlew.RequireAuth(a.authService))
		}
		r.Use(middleware.Timeout(a.cfg.RequestTimeout))
		fn(r)
	})
}

func (a *App) BuildFraudLayer() error {
	if a.redis == nil {
		err := errors.New("redis client not initialized")
		a.log.Error(err.Error())
		return err
	}

	var recorder service.DecisionRecorder
	if a.pool != nil {
		recorder = postgres.NewDecisionRepository(a.pool)
	}
	a.dispatcher = service.NewDecisionDispatcher(
		recorder,
		a.kafkaProducer,
		a.cfg.Dispatch.Workers,
		a.cfg.Dispatch.QueueSize,
		a.log,
	)

	fraudService := service.NewFraudService(
		redisstore.NewProfileStore(a.redis),
		redisstore.NewVelocityTracker(a.redis),
		a.ruleEngine,
		a.outcomes,
		a.dispatcher,
		a.log,
	)

	transactionHandler := handlers.NewTransactionHandler(fraudService)
	profileHandler := handlers.NewProfileHandler(fraudService)

	a.apiGroup(func(r chi.Router) {
		r.Post("/api/v1/transaction", transactionHandler.CheckTransaction)
		r.Get("/api/v1/users/{userID}/profile", profileHandler.GetProfile)
		r.Get("/api/v1/rules", profileHandler.ListRules)
	})

	a.log.Info("слой 'fraud' собран и маршруты зарегистрированы")
	return nil
}

func (a *App) BuildAuditLayer() {
	if a.pool == nil {
		a.log.Info("слой 'audit' пропущен: аудит отключен")
		return
	}

	auditService := service.NewAuditService(postgres.NewDecisionRepository(a.pool))
	decisionHandler := handlers.NewDecisionHandler(auditService)

	a.apiGroup(func(r chi.Router) {
		r.Get("/api/v1/users/{userID}/decisions", decisionHandler.ListDecisions)
	})

	a.log.Info("слой 'audit' собран и маршруты зарегистрированы")
}

func (a *App) BuildHealthLayer() {
	a.readiness.Register("redis", health.Pinger("redis", func(ctx context.Context) error {
		return a.redis.Ping(ctx).Err()
	}))
	if a.pool != nil {
		a.readiness.Register("postgres", health.Pinger("postgres", a.pool.Ping))
	}

	healthHandler := handlers.NewHealthHandler(a.cfg.ServiceName, a.cfg.ServiceVersion, a.readiness)
	a.server.Router.Get("/health", healthHandler.Health)
	a.server.Router.Get("/ready", healthHandler.Ready)

	a.log.Info("слой 'health' собран и маршруты зарегистрированы")
}

func (a *App) Run() error {
	a.log.Info("сервер запускается")

	serverErr := make(chan error, 2)
	go func() {
		if err := a.server.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("ошибка запуска сервера: %w", err)
		}
	}()

	if a.healthServer != nil {
		go func() {
			if err := a.healthServer.Run(); err != nil {
				serverErr <- err
			}
		}()
	}

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)

	var runErr error
	select {
	case runErr = <-serverErr:
		a.log.Error("сервер завершился с ошибкой", slog.String("error", runErr.Error()))
	case sig := <-shutdownChan:
		a.log.Info("получен сигнал завершения", slog.String("signal", sig.String()))
	}

	a.shutdown()
	return runErr
}

func (a *App) shutdown() {
	a.log.Info("приложение останавливается")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if a.healthServer != nil {
		a.log.Info("остановка gRPC health сервера")
		a.healthServer.Shutdown(ctx)
	}

	if err := a.server.Shutdown(ctx); err != nil {
		a.log.Error("ошибка при остановке http сервера", slog.String("error", err.Error()))
	}

	if a.dispatcher != nil {
		a.log.Info("остановка dispatcher решений")
		if err := a.dispatcher.Shutdown(ctx); err != nil {
			a.log.Error("ошибка при остановке dispatcher", slog.String("error", err.Error()))
		}
	}

	a.closeResources()
}

func (a *App) closeResources() {
	if a.kafkaProducer != nil {
		a.log.Info("закрытие kafka producer")
		if err := a.kafkaProducer.Close(); err != nil {
			a.log.Error("ошибка при закрытии kafka producer", slog.String("error", err.Error()))
		}
	}

	if a.pool != nil {
		a.log.Info("закрытие соединения с базой аудита")
		a.pool.Close()
	}

	if a.redis != nil {
		a.log.Info("закрытие соединения с redis")
		if err := a.redis.Close(); err != nil {
			a.log.Error("ошибка при закрытии redis", slog.String("error", err.Error()))
		}
	}

	if a.logger != nil {
		a.log.Info("закрытие файла логов")
		if err := a.logger.Close(); err != nil {
			a.log.Error("ошибка при закрытии файла логов", slog.String("error", err.Error()))
		}
	}
}
