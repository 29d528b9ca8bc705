package main

import (
	"context"
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

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stripe/stripe-go/v82/client"
	application "parcelmarket/internal/app"
	"parcelmarket/internal/handlers/rest/healthcheck_head"
	"parcelmarket/internal/handlers/rest/parcel_assign_post"
	"parcelmarket/internal/handlers/rest/parcel_delete"
	"parcelmarket/internal/handlers/rest/parcel_get"
	"parcelmarket/internal/handlers/rest/parcel_post"
	"parcelmarket/internal/handlers/rest/parcels_get"
	"parcelmarket/internal/handlers/rest/payment_intent_post"
	"parcelmarket/internal/handlers/rest/payment_post"
	"parcelmarket/internal/handlers/rest/payments_get"
	"parcelmarket/internal/handlers/rest/ping_get"
	"parcelmarket/internal/handlers/rest/rider_delete"
	"parcelmarket/internal/handlers/rest/rider_post"
	"parcelmarket/internal/handlers/rest/rider_review_patch"
	"parcelmarket/internal/handlers/rest/rider_status_patch"
	"parcelmarket/internal/handlers/rest/riders_active_get"
	"parcelmarket/internal/handlers/rest/riders_available_get"
	"parcelmarket/internal/handlers/rest/riders_pending_get"
	"parcelmarket/internal/handlers/rest/tracking_post"
	"parcelmarket/internal/handlers/rest/user_post"
	"parcelmarket/internal/handlers/rest/user_role_get"
	"parcelmarket/internal/handlers/rest/user_role_patch"
	"parcelmarket/internal/handlers/rest/users_search_get"
	"parcelmarket/internal/pkg/config"
	"parcelmarket/internal/pkg/dotenv"
	metrics_system "parcelmarket/internal/pkg/metrics"
	"parcelmarket/internal/pkg/middlewares/admin_gate"
	"parcelmarket/internal/pkg/middlewares/graceful_shutdown"
	identity_gate "parcelmarket/internal/pkg/middlewares/identity"
	"parcelmarket/internal/pkg/middlewares/metrics"
	"parcelmarket/internal/pkg/middlewares/rate_limiter"
	"parcelmarket/internal/pkg/middlewares/timeout"
	"parcelmarket/internal/pkg/mongodb"
	"parcelmarket/pkg/logger"
	"parcelmarket/pkg/logger/zap_adapter"
	"parcelmarket/pkg/token_bucket"
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

	mainLog.Info("starting parcelmarket application")

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

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	mongoClient, err := mongodb.NewClient(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			runLog.Error("failed to disconnect mongodb client",
				logger.NewField("error", err),
			)
		}
	}()

	db := mongoClient.Database(cfg.Database.Name)

	stripeClient := &client.API{}
	stripeClient.Init(cfg.Stripe.SecretKey, nil)

	businessApp, err := application.InitializeApplication(ctx, log, db, stripeClient, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector()

	// ongoingCtx backs BaseContext and must survive SIGTERM: it is only
	// cancelled after server.Shutdown() so in-flight requests can finish.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofMux := http.NewServeMux()
		pprofMux.Handle("/debug/pprof/", http.DefaultServeMux)

		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // nil channel when pprof is disabled, so the case never fires
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx must be independent of ctx, which is already cancelled
	// at this point.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg config.HTTPServer) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	// Per-route access gates: the identity gate attaches the verified
	// email, the admin gate additionally requires the stored role.
	identityGate := identity_gate.Middleware(log, app.IdentityVerifier)
	adminGate := admin_gate.Middleware(log, app.ServiceUser)

	router.Handle("/users/search", users_search_get.New(log, app.ServiceUser)).Methods("GET")
	router.Handle("/users/{email}/role", user_role_get.New(log, app.ServiceUser)).Methods("GET")
	router.Handle("/users", user_post.New(log, app.ServiceUser)).Methods("POST")
	router.Handle("/users/{id}/role", user_role_patch.New(log, app.ServiceUser)).Methods("PATCH")

	router.Handle("/parcels", identityGate(parcels_get.New(log, app.ServiceParcel))).Methods("GET")
	router.Handle("/parcels/assign", parcel_assign_post.New(log, app.ServiceParcel)).Methods("POST")
	router.Handle("/parcels/{id}", parcel_get.New(log, app.ServiceParcel)).Methods("GET")
	router.Handle("/parcels", parcel_post.New(log, app.ServiceParcel)).Methods("POST")
	router.Handle("/parcels/{id}", parcel_delete.New(log, app.ServiceParcel)).Methods("DELETE")

	router.Handle("/riders", rider_post.New(log, app.ServiceRider)).Methods("POST")
	router.Handle("/riders/pending", identityGate(adminGate(riders_pending_get.New(log, app.ServiceRider)))).Methods("GET")
	router.Handle("/riders/active", identityGate(adminGate(riders_active_get.New(log, app.ServiceRider)))).Methods("GET")
	router.Handle("/riders/available", riders_available_get.New(log, app.ServiceRider)).Methods("GET")
	router.Handle("/riders/status/{id}", rider_status_patch.New(log, app.ServiceRider)).Methods("PATCH")
	router.Handle("/riders/{id}/status", identityGate(adminGate(rider_review_patch.New(log, app.ServiceRider)))).Methods("PATCH")
	router.Handle("/riders/{id}", rider_delete.New(log, app.ServiceRider)).Methods("DELETE")

	router.Handle("/tracking", tracking_post.New(log, app.ServiceTracking)).Methods("POST")

	router.Handle("/payments", identityGate(payments_get.New(log, app.ServicePayment))).Methods("GET")
	router.Handle("/payments", payment_post.New(log, app.ServicePayment)).Methods("POST")
	router.Handle("/create-payment-intent", payment_intent_post.New(log, app.ServicePayment)).Methods("POST")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
