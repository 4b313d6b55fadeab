// Package view holds the console screens that talk to the dispatcher.
package view

//go:generate mockgen -source=view.go -destination=view_mock.go -package=view

import (
	"context"

	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/finchat/internal/chat"
)

// Dispatcher answers chat events, in-process.
type Dispatcher interface {
	Handle(ctx context.Context, ev chat.Event) ([]chat.Reply, error)
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)

	userStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	botStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	noteStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	boldStyle   = lipgloss.NewStyle().Bold(true)
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))

	choicesStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
)
