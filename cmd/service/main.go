package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
	application "marketplace/internal/app"
	"marketplace/internal/gateway/kafka/order_events"
	"marketplace/internal/handlers/rest/account_delete"
	"marketplace/internal/handlers/rest/account_get"
	"marketplace/internal/handlers/rest/account_patch"
	"marketplace/internal/handlers/rest/account_post"
	"marketplace/internal/handlers/rest/accounts_get"
	"marketplace/internal/handlers/rest/auth_login_post"
	"marketplace/internal/handlers/rest/auth_me_get"
	"marketplace/internal/handlers/rest/courier_delete"
	"marketplace/internal/handlers/rest/courier_get"
	"marketplace/internal/handlers/rest/courier_patch"
	"marketplace/internal/handlers/rest/courier_post"
	"marketplace/internal/handlers/rest/couriers_get"
	"marketplace/internal/handlers/rest/customer_delete"
	"marketplace/internal/handlers/rest/customer_get"
	"marketplace/internal/handlers/rest/customer_patch"
	"marketplace/internal/handlers/rest/customer_post"
	"marketplace/internal/handlers/rest/customers_get"
	"marketplace/internal/handlers/rest/health_get"
	"marketplace/internal/handlers/rest/order_delete"
	"marketplace/internal/handlers/rest/order_get"
	"marketplace/internal/handlers/rest/order_patch"
	"marketplace/internal/handlers/rest/order_post"
	"marketplace/internal/handlers/rest/orders_get"
	"marketplace/internal/handlers/rest/review_delete"
	"marketplace/internal/handlers/rest/review_get"
	"marketplace/internal/handlers/rest/review_patch"
	"marketplace/internal/handlers/rest/review_post"
	"marketplace/internal/handlers/rest/reviews_get"
	"marketplace/internal/pkg/config"
	"marketplace/internal/pkg/dotenv"
	"marketplace/internal/pkg/kafka"
	metrics_system "marketplace/internal/pkg/metrics"
	"marketplace/internal/pkg/middlewares/graceful_shutdown"
	"marketplace/internal/pkg/middlewares/metrics"
	"marketplace/internal/pkg/middlewares/rate_limiter"
	"marketplace/internal/pkg/middlewares/timeout"
	"marketplace/internal/pkg/postgres"
	orderService "marketplace/internal/service/order"
	"marketplace/pkg/logger"
	"marketplace/pkg/logger/zap_adapter"
	"marketplace/pkg/token_bucket"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting marketplace application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	var publisher orderService.EventPublisher = order_events.NewNop()
	if cfg.Kafka.Enabled {
		producer, err := kafka.NewSyncProducer(ctx, log, cfg.Kafka.BrokerList(), cfg.Kafka.Sarama.Version)
		if err != nil {
			return fmt.Errorf("kafka producer: %w", err)
		}
		kafkaPublisher := order_events.New(log, producer, cfg.Kafka.Topic)
		defer func() {
			if err := kafkaPublisher.Close(); err != nil {
				runLog.Error("failed to close Kafka producer",
					logger.NewField("error", err),
				)
			}
		}()
		publisher = kafkaPublisher
	}

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, publisher, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector()

	// ongoingCtx backs BaseContext and must survive SIGTERM: it is cancelled
	// only after server.Shutdown() so in-flight requests can finish.
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, pool, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	var pprofServer *http.Server
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown, pool),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}

	group, groupCtx := errgroup.WithContext(context.Background())
	group.Go(func() error {
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	})
	if pprofServer != nil {
		group.Go(func() error {
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("pprof server: %w", err)
			}
			return nil
		})
	}

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case <-groupCtx.Done():
		// a server failed; fall through to shutdown and surface the error
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx must not descend from ctx, which is already cancelled here.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	shutdownErr := server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		if err := pprofServer.Shutdown(shutdownCtx); err != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", err))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	if err := group.Wait(); err != nil {
		return err
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, pool health_get.Pinger, cfg config.HTTPServer) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/health", health_get.New(isShuttingDown, pool)).Methods("GET")

	router.Handle("/auth/login", auth_login_post.New(log, app.ServiceAccount, app.TokenIssuer)).Methods("POST")
	router.Handle("/auth/me", auth_me_get.New(log, app.Identity)).Methods("GET")

	router.Handle("/accounts", account_post.New(log, app.ServiceAccount)).Methods("POST")
	router.Handle("/accounts", accounts_get.New(log, app.ServiceAccount)).Methods("GET")
	router.Handle("/accounts/{id}", account_get.New(log, app.ServiceAccount)).Methods("GET")
	router.Handle("/accounts/{id}", account_patch.New(log, app.ServiceAccount)).Methods("PATCH")
	router.Handle("/accounts/{id}", account_delete.New(log, app.ServiceAccount)).Methods("DELETE")

	router.Handle("/customers", customer_post.New(log, app.ServiceCustomer)).Methods("POST")
	router.Handle("/customers", customers_get.New(log, app.ServiceCustomer)).Methods("GET")
	router.Handle("/customers/{id}", customer_get.New(log, app.ServiceCustomer)).Methods("GET")
	router.Handle("/customers/{id}", customer_patch.New(log, app.ServiceCustomer)).Methods("PATCH")
	router.Handle("/customers/{id}", customer_delete.New(log, app.ServiceCustomer)).Methods("DELETE")

	router.Handle("/couriers", courier_post.New(log, app.ServiceCourier)).Methods("POST")
	router.Handle("/couriers", couriers_get.New(log, app.ServiceCourier)).Methods("GET")
	router.Handle("/couriers/{id}", courier_get.New(log, app.ServiceCourier)).Methods("GET")
	router.Handle("/couriers/{id}", courier_patch.New(log, app.ServiceCourier)).Methods("PATCH")
	router.Handle("/couriers/{id}", courier_delete.New(log, app.ServiceCourier)).Methods("DELETE")

	router.Handle("/orders", order_post.New(log, app.ServiceOrder, app.Identity)).Methods("POST")
	router.Handle("/orders", orders_get.New(log, app.ServiceOrder)).Methods("GET")
	router.Handle("/orders/{id}", order_get.New(log, app.ServiceOrder)).Methods("GET")
	router.Handle("/orders/{id}", order_patch.New(log, app.ServiceOrder, app.Identity)).Methods("PATCH")
	router.Handle("/orders/{id}", order_delete.New(log, app.ServiceOrder)).Methods("DELETE")

	router.Handle("/reviews", review_post.New(log, app.ServiceReview)).Methods("POST")
	router.Handle("/reviews", reviews_get.New(log, app.ServiceReview)).Methods("GET")
	router.Handle("/reviews/{id}", review_get.New(log, app.ServiceReview)).Methods("GET")
	router.Handle("/reviews/{id}", review_patch.New(log, app.ServiceReview)).Methods("PATCH")
	router.Handle("/reviews/{id}", review_delete.New(log, app.ServiceReview)).Methods("DELETE")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool, pool health_get.Pinger) http.Handler {
	router := mux.NewRouter()

	router.Handle("/health", health_get.New(isShuttingDown, pool)).Methods("GET")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
