package dispatch

import (
	"context"
	"slices"
	"strings"

	"github.com/MrJamesThe3rd/finchat/internal/chat"
	"github.com/MrJamesThe3rd/finchat/internal/flow"
	"github.com/MrJamesThe3rd/finchat/internal/reminder"
	"github.com/MrJamesThe3rd/finchat/internal/report"
)

var cancelTriggers = []string{"/cancelar", "cancelar", "/cancel"}

func isCancel(lower string) bool {
	return slices.Contains(cancelTriggers, lower)
}

// shortcut reports whether text opens with a one-shot prefix and whether
// that prefix records an income.
func shortcut(lower string) (income, ok bool) {
	switch {
	case strings.HasPrefix(lower, "gastei"):
		return false, true
	case strings.HasPrefix(lower, "recebi"):
		return true, true
	}

	return false, false
}

// Commands are matched lower-cased, menu labels and payloads as sent.
var (
	startCommands = map[string]flow.Kind{
		"/start":          flow.Registration,
		"/despesa":        flow.AddExpense,
		"/receita":        flow.AddIncome,
		"/orcamento":      flow.SetBudget,
		"/orçamento":      flow.SetBudget,
		"/lembrete":       flow.AddReminder,
		"/receita_futura": flow.AddFutureIncome,
		"/exportar":       flow.Export,
	}

	startButtons = map[string]flow.Kind{
		chat.MenuAddExpense:   flow.AddExpense,
		chat.MenuAddIncome:    flow.AddIncome,
		chat.MenuBudgets:      flow.SetBudget,
		chat.MenuFutureIncome: flow.AddFutureIncome,
		chat.MenuExport:       flow.Export,
		reminder.PayloadNew:   flow.AddReminder,
	}
)

func startTrigger(input string) (flow.Kind, bool) {
	if k, ok := startButtons[input]; ok {
		return k, true
	}

	k, ok := startCommands[strings.ToLower(input)]

	return k, ok
}

const helpText = `ℹ️ <b>Como posso ajudar</b>

Escreva de forma natural, por exemplo:
• "Gastei 45,90 no mercado"
• "Recebi 3000 de salário"
• "Definir orçamento para lazer 300"
• "Lembrar de pagar aluguel dia 10"
• "Quanto gastei com alimentação?"

Comandos:
/despesa, /receita, /orcamento, /lembrete, /receita_futura
/relatorio, /lembretes, /exportar, /cancelar`

// command runs the read-only commands, report buttons and reminder actions.
// ok is false when input is none of them.
func (d *Dispatcher) command(ctx context.Context, user int64, input string) (replies []chat.Reply, ok bool, err error) {
	switch strings.ToLower(input) {
	case "/relatorio", "/relatório", "/report":
		replies, err = d.reports.Menu(ctx, user)
		return replies, true, err
	case "/resumo":
		replies, err = d.reports.Monthly(ctx, user)
		return replies, true, err
	case "/lembretes", "/reminders":
		replies, err = d.reminders.List(ctx, user)
		return replies, true, err
	case "/ajuda", "/help":
		return []chat.Reply{chat.HTML(helpText).WithMenu()}, true, nil
	}

	switch input {
	case chat.MenuReports:
		replies, err = d.reports.Menu(ctx, user)
	case chat.MenuReminders:
		replies, err = d.reminders.List(ctx, user)
	case chat.MenuHelp:
		replies = []chat.Reply{chat.HTML(helpText).WithMenu()}
	case report.PayloadMonthly:
		replies, err = d.reports.Monthly(ctx, user)
	case report.PayloadCategory:
		replies, err = d.reports.CategoryPicker(ctx, user)
	case report.PayloadComparison:
		replies, err = d.reports.Comparison(ctx, user)
	case report.PayloadInsights:
		replies, err = d.reports.Insights(ctx, user)
	default:
		if cat, found := strings.CutPrefix(input, report.PayloadCategory+":"); found {
			replies, err = d.reports.Category(ctx, user, cat)
			return replies, true, err
		}

		if strings.HasPrefix(input, "reminder:") {
			replies, err = d.reminders.Handle(ctx, user, input)
			return replies, true, err
		}

		return nil, false, nil
	}

	return replies, true, err
}
