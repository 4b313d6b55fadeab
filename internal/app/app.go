// Package app wires the services shared by the API server and the console.
package app

import (
	"database/sql"
	"log/slog"
	"os"
	"strings"

	"github.com/MrJamesThe3rd/finchat/internal/config"
	"github.com/MrJamesThe3rd/finchat/internal/dispatch"
	"github.com/MrJamesThe3rd/finchat/internal/export"
	"github.com/MrJamesThe3rd/finchat/internal/extract"
	"github.com/MrJamesThe3rd/finchat/internal/finance"
	financeStore "github.com/MrJamesThe3rd/finchat/internal/finance/store"
	"github.com/MrJamesThe3rd/finchat/internal/flow"
	"github.com/MrJamesThe3rd/finchat/internal/importer"
	"github.com/MrJamesThe3rd/finchat/internal/matching"
	matchingStore "github.com/MrJamesThe3rd/finchat/internal/matching/store"
	"github.com/MrJamesThe3rd/finchat/internal/reminder"
	"github.com/MrJamesThe3rd/finchat/internal/report"
)

type App struct {
	Finance    *finance.Service
	Matching   *matching.Service
	Importer   *importer.Service
	Exporter   *export.Service
	Flows      *flow.Engine
	Reports    *report.Service
	Reminders  *reminder.Board
	Scanner    *reminder.Scanner
	Dispatcher *dispatch.Dispatcher
}

// New builds every service on top of db. Notifications go to the gateway
// callback when one is configured and to the log otherwise.
func New(cfg *config.Config, db *sql.DB, log *slog.Logger) *App {
	if log == nil {
		log = slog.Default()
	}

	var (
		ex          = extract.New()
		financeSvc  = finance.NewService(financeStore.New(db))
		matchingSvc = matching.NewService(matchingStore.New(db))
		exportSvc   = export.NewService()
	)

	engine := flow.NewEngine(flow.WithTTL(cfg.Flow.TTL), flow.WithLogger(log))
	engine.Register(flow.Definitions(flow.Deps{
		Finance:   financeSvc,
		Exporter:  exportSvc,
		Learner:   matchingSvc,
		Extractor: ex,
		Logger:    log,
	})...)

	var renderer report.Renderer
	if cfg.Chart.URL != "" {
		renderer = report.NewChartClient(cfg.Chart.URL, cfg.Chart.Timeout)
	}

	var notifier reminder.Notifier = reminder.NewLogNotifier(log)
	if cfg.Gateway.CallbackURL != "" {
		notifier = reminder.NewHTTPNotifier(cfg.Gateway.CallbackURL, cfg.Gateway.Token, cfg.Gateway.Timeout)
	}

	a := &App{
		Finance:   financeSvc,
		Matching:  matchingSvc,
		Importer:  importer.NewService(financeSvc, matchingSvc),
		Exporter:  exportSvc,
		Flows:     engine,
		Reports:   report.NewService(financeSvc, renderer, report.WithLogger(log)),
		Reminders: reminder.NewBoard(financeSvc),
		Scanner:   reminder.NewScanner(financeSvc, notifier, reminder.WithLogger(log)),
	}

	a.Dispatcher = dispatch.New(dispatch.Deps{
		Finance:   financeSvc,
		Flows:     engine,
		Reports:   a.Reports,
		Reminders: a.Reminders,
		Matcher:   matchingSvc,
		Extractor: ex,
		Logger:    log,
	})

	return a
}

// NewLogger returns a text logger at level ("debug", "info", "warn" or
// "error"; anything else means info).
func NewLogger(level string) *slog.Logger {
	var lvl slog.Level

	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
