package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/MrJamesThe3rd/finchat/internal/app"
	"github.com/MrJamesThe3rd/finchat/internal/database"
	finchatHttp "github.com/MrJamesThe3rd/finchat/internal/http"
	exportHandler "github.com/MrJamesThe3rd/finchat/internal/http/export"
	messageHandler "github.com/MrJamesThe3rd/finchat/internal/http/message"
	reportHandler "github.com/MrJamesThe3rd/finchat/internal/http/report"
	statementHandler "github.com/MrJamesThe3rd/finchat/internal/http/statement"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the gateway API, the flow sweeper and the reminder scanner",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), migrate)
		},
	}

	cmd.Flags().BoolVar(&migrate, "migrate", true, "apply pending migrations before serving")

	return cmd
}

func serve(ctx context.Context, migrate bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log := app.NewLogger(cfg.App.LogLevel)
	slog.SetDefault(log)

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer db.Close()

	if migrate {
		n, err := database.Migrate(ctx, db)
		if err != nil {
			return err
		}

		slog.Info("applied migrations", "count", n)
	}

	a := app.New(cfg, db, log)

	router := finchatHttp.New(finchatHttp.Handlers{
		Messages:  messageHandler.NewHandler(a.Dispatcher),
		Statement: statementHandler.NewHandler(a.Importer),
		Export:    exportHandler.NewHandler(a.Finance, a.Exporter),
		Report:    reportHandler.NewHandler(a.Finance),
	}, finchatHttp.Options{
		JWTSecret:      []byte(cfg.Gateway.JWTSecret),
		AllowedOrigins: cfg.Server.AllowedOrigins,
	})

	if cfg.Gateway.JWTSecret == "" {
		slog.Warn("GATEWAY_JWT_SECRET is empty, the API accepts unauthenticated requests")
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("starting server", "port", srv.Addr)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		a.Flows.RunSweeper(gctx, cfg.Flow.SweepInterval)
		return nil
	})

	g.Go(func() error {
		a.Scanner.Run(gctx, cfg.Reminder.Interval)
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	slog.Info("server stopped")

	return nil
}
