package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Sententiaregum/flux-container/adapters/event"
	"github.com/Sententiaregum/flux-container/adapters/event/listeners"
	"github.com/Sententiaregum/flux-container/adapters/httpserver"
	"github.com/Sententiaregum/flux-container/adapters/postgrestore"
	"github.com/Sententiaregum/flux-container/adapters/redisstore"
	"github.com/Sententiaregum/flux-container/domain"
	"github.com/Sententiaregum/flux-container/pkg/config"
	"github.com/Sententiaregum/flux-container/pkg/logger"
	"github.com/Sententiaregum/flux-container/pkg/sentry"
	sentrygo "github.com/getsentry/sentry-go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	var envFiles []string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the admin HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(envFiles...)
			if err != nil {
				return fmt.Errorf("cannot load config: %w", err)
			}

			applog, err := logger.NewAppLogger(cfg.Debug)
			if err != nil {
				return fmt.Errorf("cannot init logger: %w", err)
			}
			defer logger.Sync(applog)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg, applog)
		},
	}

	cmd.Flags().StringSliceVar(&envFiles, "env-file", nil, "env files to load before reading the environment")

	return cmd
}

func serve(ctx context.Context, cfg *config.Config, applog *zap.SugaredLogger) error {
	err := sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		AttachStacktrace: true,
	})
	if err != nil {
		return fmt.Errorf("cannot init sentry: %w", err)
	}
	defer sentrygo.Flush(sentry.FlushTime)

	var (
		dispatcher domain.EventDispatcher = event.NewEventDispatcher(event.WithLogger(applog))
		options    []httpserver.Options
	)

	if cfg.DB.DSN != "" {
		db, err := postgrestore.NewConnection(postgrestore.ParseFromConfig(cfg))
		if err != nil {
			return err
		}
		defer db.Close()

		n, err := postgrestore.Migrate(db)
		if err != nil {
			return fmt.Errorf("cannot migrate: %w", err)
		}
		applog.Infow("migrations applied", "count", n)

		store := postgrestore.NewJournalStore(db)
		dispatcher = event.NewJournaledDispatcher(dispatcher, store, applog)
		options = append(options, httpserver.WithJournalStore(store))
	}

	if cfg.Redis.Addr != "" {
		rdb, err := redisstore.NewConnection(redisstore.ParseFromConfig(cfg))
		if err != nil {
			return err
		}
		defer rdb.Close()

		relay := event.NewRelay(dispatcher, redisstore.NewBroker(rdb, applog), cfg.Relay.Channel, applog)
		relay.Forward(cfg.Relay.Events...)
		dispatcher = relay

		go func() {
			if err := relay.Listen(ctx); err != nil && !errors.Is(err, context.Canceled) {
				applog.Errorw("relay stopped", "error", err)
			}
		}()
		applog.Infow("relay started", "channel", cfg.Relay.Channel, "origin", relay.Origin(), "events", cfg.Relay.Events)
	}

	listeners.Register(dispatcher, listeners.NewTraceListeners(applog, cfg.TraceEvents...)...)

	server, err := httpserver.New(cfg, applog, append(options, httpserver.WithEventDispatcher(dispatcher))...)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: server,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	applog.Infow("server started!", "addr", srv.Addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	applog.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	return nil
}
