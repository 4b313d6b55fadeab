package main

import (
	"flag"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/finchat/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/finchat/internal/app"
	"github.com/MrJamesThe3rd/finchat/internal/config"
	"github.com/MrJamesThe3rd/finchat/internal/database"
)

func main() {
	filesDir := flag.String("files", "./finchat-files", "directory for charts and exports sent by the bot")
	logFile := flag.String("log", "finchat-tui.log", "log file, the terminal belongs to the UI")
	flag.Parse()

	_ = godotenv.Load()

	f, err := tea.LogToFile(*logFile, "finchat")
	if err != nil {
		slog.Error("failed to open log file", "error", err)
		os.Exit(1)
	}
	defer f.Close()

	log := slog.New(slog.NewTextHandler(f, nil))
	slog.SetDefault(log)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var login view.Login
	if err := view.NewLoginForm(&login).Run(); err != nil {
		slog.Error("login cancelled", "error", err)
		os.Exit(1)
	}

	a := app.New(cfg, db, log)

	p := tea.NewProgram(view.NewChatModel(a.Dispatcher, login.ID(), login.Name, *filesDir), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
