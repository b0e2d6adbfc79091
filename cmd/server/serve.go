package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"connectrpc.com/connect"
	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/costtracker/internal/api"
	"github.com/mmynk/costtracker/internal/auth"
	"github.com/mmynk/costtracker/internal/config"
	"github.com/mmynk/costtracker/internal/metrics"
	"github.com/mmynk/costtracker/internal/middleware"
	"github.com/mmynk/costtracker/internal/notify"
	"github.com/mmynk/costtracker/internal/service"
	"github.com/mmynk/costtracker/internal/storage"
	"github.com/mmynk/costtracker/pkg/proto/protoconnect"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	cfg := a.cfg

	store, err := a.openStore()
	if err != nil {
		return err
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.Database.Path)

	m := metrics.New(cfg.Metrics.Namespace)

	mailer, err := newMailer(ctx, cfg.Notifications)
	if err != nil {
		return err
	}

	notifier, scheduler, err := newNotifier(ctx, cfg.Notifications, store, mailer, m)
	if err != nil {
		return err
	}
	if scheduler != nil {
		defer scheduler.Stop()
	}

	stats := service.NewStatsService(store)
	evaluator := service.NewLimitEvaluator(store, stats, notifier, service.WithLimitMetrics(m))
	srv := api.NewServer(
		service.NewCostService(store, evaluator),
		stats,
		service.NewForecastService(store,
			service.WithForecastWindow(cfg.Forecast.LookbackDays, cfg.Forecast.HorizonDays),
			service.WithForecastMetrics(m),
		),
	)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	apiPath, apiHandler := protoconnect.NewCostServiceHandler(srv, connect.WithInterceptors(
		middleware.LoggingInterceptor(nil),
		middleware.RequireAuth(jwtManager),
	))

	mux := http.NewServeMux()
	mux.Handle(apiPath, apiHandler)
	if cfg.Metrics.IsEnabled() {
		mux.Handle(cfg.Metrics.Path, m.Handler())
	}

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	server := &http.Server{
		Addr:         cfg.Server.ListenAddress,
		Handler:      h2c.NewHandler(corsMiddleware(mux), &http2.Server{}),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Connect server starting", "address", cfg.Server.ListenAddress, "delivery", cfg.Notifications.Delivery)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// newMailer builds the configured mail transport.
func newMailer(ctx context.Context, cfg config.NotificationsConfig) (notify.Mailer, error) {
	switch cfg.Mailer {
	case config.MailerSES:
		return notify.NewSESMailer(ctx, cfg.SESRegion, cfg.From)
	default:
		return notify.NewLogMailer(nil), nil
	}
}

// newNotifier builds the alert path. Outbox delivery also returns the
// started scheduler that drains it.
func newNotifier(
	ctx context.Context,
	cfg config.NotificationsConfig,
	store storage.NotificationStore,
	mailer notify.Mailer,
	m *metrics.Metrics,
) (service.Notifier, *notify.Scheduler, error) {
	if cfg.Delivery == config.DeliveryDirect {
		return notify.NewDispatcher(mailer, m), nil, nil
	}

	worker := notify.NewWorker(store, mailer, m, cfg.MaxAttempts, cfg.BatchSize)
	scheduler := notify.NewScheduler(worker, cfg.Schedule)
	if err := scheduler.Start(ctx); err != nil {
		return nil, nil, err
	}
	return notify.NewOutbox(store, m), scheduler, nil
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
