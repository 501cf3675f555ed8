// Command balanced runs the chip balance service: the gRPC API, the HTTP
// gateway over it, Prometheus metrics, and the background expiry and ledger
// verification jobs.
package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/health"
	healthv1 "google.golang.org/grpc/health/grpc_health_v1"

	balancev1 "github.com/cardroomlabs/balanced/gen/balance/v1"
	"github.com/cardroomlabs/balanced/internal/balance/engine"
	"github.com/cardroomlabs/balanced/internal/balance/store"
	"github.com/cardroomlabs/balanced/internal/platform/auth"
	"github.com/cardroomlabs/balanced/internal/platform/clock"
	"github.com/cardroomlabs/balanced/internal/platform/config"
	"github.com/cardroomlabs/balanced/internal/platform/logging"
	"github.com/cardroomlabs/balanced/internal/platform/server"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.FromEnv()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}
	defer func() { _ = log.Sync() }()
	clk := clock.RealClock{}

	st, err := openStore(cfg, clk)
	if err != nil {
		return err
	}
	defer st.Close()

	var archive *store.Archive
	if cfg.DatabaseURL != "" {
		archive, err = store.OpenArchive(cfg.DatabaseURL, log)
		if err != nil {
			return fmt.Errorf("open archive: %w", err)
		}
		if err := archive.Ping(ctx); err != nil {
			return fmt.Errorf("ping archive: %w", err)
		}
		defer archive.Close()
		archive.StartIdempotencyCleanupWorker(ctx, time.Hour)
		log.Info("postgres archive enabled")
	}

	eng := engine.New(st, archive, clk, log, engine.NewMetrics(), engine.Config{
		ReservationTimeout: cfg.ReservationTimeout,
		IdempotencyTTL:     cfg.IdempotencyTTL,
		RakeBasisPoints:    cfg.RakeBasisPoints,
		RakeCap:            cfg.RakeCapChips,
		RakeMinPot:         cfg.RakeMinPotChips,
	})
	eng.StartReservationExpiryJob(ctx, cfg.ReservationExpiryInterval)
	eng.StartLedgerVerificationJob(ctx, cfg.LedgerVerificationInterval)

	tlsCfg, err := server.BuildTLSConfig(server.TLSConfig{
		Enabled:           cfg.TLSEnabled,
		CertFile:          cfg.TLSCertFile,
		KeyFile:           cfg.TLSKeyFile,
		ClientCAFile:      cfg.TLSClientCAFile,
		RequireClientCert: cfg.TLSRequireClientCert,
	})
	if err != nil {
		return fmt.Errorf("configure tls: %w", err)
	}

	balanceSvc := server.NewBalanceService(eng, log)

	grpcOpts := make([]grpc.ServerOption, 0, 2)
	if tlsCfg != nil {
		grpcOpts = append(grpcOpts, grpc.Creds(credentials.NewTLS(tlsCfg)))
	}
	var verifier *auth.JWTVerifier
	if cfg.JWTSecret != "" {
		verifier = auth.NewJWTVerifier(cfg.JWTSecret)
		grpcOpts = append(grpcOpts, grpc.UnaryInterceptor(auth.UnaryJWTInterceptor(verifier, []string{
			"/grpc.health.v1.Health/Check",
			"/grpc.health.v1.Health/Watch",
		})))
	}
	grpcServer := grpc.NewServer(grpcOpts...)
	hs := health.NewServer()
	hs.SetServingStatus("", healthv1.HealthCheckResponse_SERVING)
	healthv1.RegisterHealthServer(grpcServer, hs)
	balancev1.RegisterBalanceServiceServer(grpcServer, balanceSvc)

	grpcListener, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("listen grpc: %w", err)
	}

	mux := http.NewServeMux()
	server.SystemHandler{Store: st, Clock: clk}.Register(mux)
	gwMux := server.NewGatewayMux()
	if err := balancev1.RegisterBalanceServiceHandlerServer(ctx, gwMux, balanceSvc); err != nil {
		return fmt.Errorf("register gateway handlers: %w", err)
	}
	var apiHandler http.Handler = gwMux
	if verifier != nil {
		apiHandler = auth.HTTPJWTMiddleware(verifier, gwMux, []string{"/api/health", "/api/ready"})
	}
	mux.Handle("/", apiHandler)
	httpServer := &http.Server{Addr: fmt.Sprintf(":%d", cfg.HTTPPort), Handler: mux, TLSConfig: tlsCfg}

	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.Handler())
	metricsServer := &http.Server{Addr: fmt.Sprintf(":%d", cfg.MetricsPort), Handler: metricsMux}

	go func() {
		log.Info("grpc listening", zap.Int("port", cfg.GRPCPort))
		if err := grpcServer.Serve(grpcListener); err != nil {
			log.Warn("grpc server stopped", zap.Error(err))
		}
	}()
	go func() {
		log.Info("http listening", zap.Int("port", cfg.HTTPPort))
		var err error
		if tlsCfg != nil {
			err = httpServer.ListenAndServeTLS("", "")
		} else {
			err = httpServer.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			log.Warn("http server stopped", zap.Error(err))
		}
	}()
	go func() {
		log.Info("metrics listening", zap.Int("port", cfg.MetricsPort))
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Warn("metrics server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	grpcServer.GracefulStop()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Warn("http shutdown", zap.Error(err))
	}
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Warn("metrics shutdown", zap.Error(err))
	}
	return nil
}

func openStore(cfg config.Config, clk clock.Clock) (store.Store, error) {
	if cfg.RedisURL == "" {
		return store.NewMemory(clk, cfg.IdempotencyCacheMaxEntries), nil
	}
	return store.NewRedis(cfg.RedisURL)
}
