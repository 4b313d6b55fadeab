// Package report renders monthly summaries, category reports, month
// comparisons and spending insights as chat replies.
package report

//go:generate mockgen -source=report.go -destination=report_mock.go -package=report

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/MrJamesThe3rd/finchat/internal/chat"
	"github.com/MrJamesThe3rd/finchat/internal/finance"
)

// Option payloads of the report menu. A category report payload carries the
// category name after PayloadCategory and a colon.
const (
	PayloadMonthly    = "report:monthly"
	PayloadCategory   = "report:category"
	PayloadComparison = "report:comparison"
	PayloadInsights   = "report:insights"
)

// ComparisonMonths is how many months the comparison report covers.
const ComparisonMonths = 3

type Finance interface {
	FindUser(ctx context.Context, externalID int64) (*finance.User, error)
	ListCategories(ctx context.Context, externalID int64, income bool) ([]*finance.Category, error)
	MonthlySummary(ctx context.Context, externalID int64, year int, month time.Month) (*finance.MonthlySummary, error)
	CategoryExpenses(ctx context.Context, externalID int64, query string, year int, month time.Month) (*finance.CategoryReport, error)
	MonthlyComparison(ctx context.Context, externalID int64, months int) ([]finance.MonthTotals, error)
}

// Renderer draws charts as PNG images.
type Renderer interface {
	PieChart(ctx context.Context, title string, amounts []finance.CategoryAmount, currency string) ([]byte, error)
	ComparisonChart(ctx context.Context, months []finance.MonthTotals, currency string) ([]byte, error)
	BudgetChart(ctx context.Context, budgets []finance.BudgetStatus, currency string) ([]byte, error)
}

var printer = message.NewPrinter(language.BrazilianPortuguese)

type Service struct {
	finance  Finance
	renderer Renderer
	now      func() time.Time
	log      *slog.Logger
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.log = l }
}

// NewService builds a report service. A nil renderer sends text only.
func NewService(fin Finance, renderer Renderer, opts ...Option) *Service {
	s := &Service{
		finance:  fin,
		renderer: renderer,
		now:      time.Now,
		log:      slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Menu lists the available reports.
func (s *Service) Menu(ctx context.Context, externalID int64) ([]chat.Reply, error) {
	if _, err := s.finance.FindUser(ctx, externalID); err != nil {
		return nil, err
	}

	return []chat.Reply{{
		Text: "Que tipo de relatório você deseja ver?",
		Options: []chat.Option{
			{Label: "📊 Resumo Mensal", Value: PayloadMonthly},
			{Label: "📈 Relatório por Categoria", Value: PayloadCategory},
			{Label: "📅 Comparação entre Meses", Value: PayloadComparison},
			{Label: "💡 Insights e Sugestões", Value: PayloadInsights},
		},
	}}, nil
}

// Monthly summarizes the current month, with a pie chart of expenses and a
// second message of insights.
func (s *Service) Monthly(ctx context.Context, externalID int64) ([]chat.Reply, error) {
	cur, prev, err := s.summaries(ctx, externalID)
	if err != nil {
		return nil, err
	}

	if empty(cur) {
		return []chat.Reply{chat.Text("Não encontrei transações para este mês.").WithMenu()}, nil
	}

	currency := cur.User.Currency
	title := fmt.Sprintf("Resumo Financeiro - %s/%d", monthName(cur.Month), cur.Year)

	var b strings.Builder

	fmt.Fprintf(&b, "📊 <b>%s</b>\n\n", title)
	fmt.Fprintf(&b, "💰 <b>Receitas:</b> %s\n", finance.FormatMoney(currency, cur.Income))
	fmt.Fprintf(&b, "💸 <b>Despesas:</b> %s\n", finance.FormatMoney(currency, cur.Expense))
	fmt.Fprintf(&b, "🧮 <b>Saldo:</b> %s\n", finance.FormatMoney(currency, cur.Balance()))

	if len(cur.ByCategory) > 0 {
		b.WriteString("\n<b>Despesas por Categoria:</b>\n")

		for _, c := range cur.ByCategory {
			fmt.Fprintf(&b, "• %s: %s\n", html.EscapeString(c.Category), finance.FormatMoney(currency, c.Amount))
		}
	}

	if len(cur.Budgets) > 0 {
		b.WriteString("\n<b>Status dos Orçamentos:</b>\n")

		for _, st := range cur.Budgets {
			fmt.Fprintf(&b, "%s %s: %s (%s/%s)\n", st.Marker(), html.EscapeString(st.Category),
				percent(st.Percentage()), finance.FormatMoney(currency, st.Spent), finance.FormatAmount(st.Budget))
		}
	}

	if len(cur.FutureIncomes) > 0 {
		var total int64
		for _, fi := range cur.FutureIncomes {
			total += fi.Amount
		}

		fmt.Fprintf(&b, "\n<b>Receitas Futuras:</b> %s\n", finance.FormatMoney(currency, total))

		for _, fi := range cur.FutureIncomes {
			fmt.Fprintf(&b, "• %s: %s - %s\n", fi.ExpectedDate.Format("02/01"), html.EscapeString(fi.Description), finance.FormatMoney(currency, fi.Amount))
		}
	}

	if len(cur.Reminders) > 0 {
		var total int64
		for _, r := range cur.Reminders {
			total += r.Amount
		}

		fmt.Fprintf(&b, "\n<b>Contas a Pagar:</b> %s\n", finance.FormatMoney(currency, total))

		for _, r := range cur.Reminders {
			fmt.Fprintf(&b, "• %s: %s - %s\n", r.DueDate.Format("02/01"), html.EscapeString(r.Description), finance.FormatMoney(currency, r.Amount))
		}
	}

	summary := chat.HTML(b.String()).WithMenu()

	if s.renderer != nil && len(cur.ByCategory) > 0 {
		png, err := s.renderer.PieChart(ctx, "Despesas por Categoria - "+monthName(cur.Month), cur.ByCategory, currency)
		if err != nil {
			s.log.Warn("failed to render pie chart", "error", err, "user_id", externalID)
		} else {
			summary.Image = image("despesas.png", png)
		}
	}

	return []chat.Reply{summary, insightsReply(cur, prev)}, nil
}

// CategoryPicker asks which expense category to report on.
func (s *Service) CategoryPicker(ctx context.Context, externalID int64) ([]chat.Reply, error) {
	cats, err := s.finance.ListCategories(ctx, externalID, false)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}

	opts := make([]chat.Option, 0, len(cats))
	for _, c := range cats {
		opts = append(opts, chat.Option{Label: c.Name, Value: PayloadCategory + ":" + c.Name})
	}

	return []chat.Reply{{Text: "Selecione a categoria para ver o relatório:", Options: opts}}, nil
}

// Category reports the current month of expenses for the category matching
// query.
func (s *Service) Category(ctx context.Context, externalID int64, query string) ([]chat.Reply, error) {
	today := s.now()

	rep, err := s.finance.CategoryExpenses(ctx, externalID, query, today.Year(), today.Month())
	if err != nil {
		if errors.Is(err, finance.ErrCategoryNotFound) {
			return []chat.Reply{chat.Text(fmt.Sprintf("❌ Categoria \"%s\" não encontrada.", query)).WithMenu()}, nil
		}

		return nil, fmt.Errorf("loading category report: %w", err)
	}

	if len(rep.Transactions) == 0 {
		return []chat.Reply{chat.Text(fmt.Sprintf("Não encontrei despesas na categoria '%s' para este mês.", rep.Category.Name)).WithMenu()}, nil
	}

	currency := rep.User.Currency

	var b strings.Builder

	fmt.Fprintf(&b, "📊 <b>Despesas com %s - %s/%d</b>\n\n", html.EscapeString(rep.Category.Name), monthName(rep.Month), rep.Year)
	fmt.Fprintf(&b, "💸 <b>Total:</b> %s\n", finance.FormatMoney(currency, rep.Total))

	if rep.Budget != nil && rep.Budget.Budget > 0 {
		fmt.Fprintf(&b, "📌 <b>Orçamento:</b> %s\n", finance.FormatMoney(currency, rep.Budget.Budget))
		fmt.Fprintf(&b, "🧮 <b>Restante:</b> %s\n", finance.FormatMoney(currency, rep.Budget.Remaining()))
		fmt.Fprintf(&b, "📏 <b>Utilizado:</b> %s\n", percent(rep.Budget.Percentage()))
	}

	b.WriteString("\n<b>Transações:</b>\n")

	for _, tx := range rep.Transactions {
		desc := tx.Description
		if desc == "" {
			desc = rep.Category.Name
		}

		fmt.Fprintf(&b, "• %s: %s - %s\n", tx.Date.Format("02/01"), html.EscapeString(desc), finance.FormatMoney(currency, tx.Amount))
	}

	return []chat.Reply{chat.HTML(b.String()).WithMenu()}, nil
}

// Comparison tabulates income, expense and balance of the last months.
func (s *Service) Comparison(ctx context.Context, externalID int64) ([]chat.Reply, error) {
	u, err := s.finance.FindUser(ctx, externalID)
	if err != nil {
		return nil, err
	}

	months, err := s.finance.MonthlyComparison(ctx, externalID, ComparisonMonths)
	if err != nil {
		return nil, fmt.Errorf("loading comparison: %w", err)
	}

	hasData := false

	for _, m := range months {
		if m.Income != 0 || m.Expense != 0 {
			hasData = true
			break
		}
	}

	if !hasData {
		return []chat.Reply{chat.Text("Não encontrei transações para os últimos meses.").WithMenu()}, nil
	}

	var b strings.Builder

	b.WriteString("📊 <b>Comparação dos Últimos Meses</b>\n\n<pre>")
	fmt.Fprintf(&b, "%-10s%-15s%-15s%-15s\n", "Mês", "Receitas", "Despesas", "Saldo")
	b.WriteString(strings.Repeat("-", 50) + "\n")

	for _, m := range months {
		fmt.Fprintf(&b, "%-10s%-15s%-15s%-15s\n", shortMonth(m.Year, m.Month),
			finance.FormatMoney(u.Currency, m.Income),
			finance.FormatMoney(u.Currency, m.Expense),
			finance.FormatMoney(u.Currency, m.Income-m.Expense))
	}

	b.WriteString("</pre>")

	reply := chat.HTML(b.String()).WithMenu()

	if s.renderer != nil {
		png, err := s.renderer.ComparisonChart(ctx, months, u.Currency)
		if err != nil {
			s.log.Warn("failed to render comparison chart", "error", err, "user_id", externalID)
		} else {
			reply.Image = image("comparacao.png", png)
		}
	}

	return []chat.Reply{reply}, nil
}

// Insights sends the insights and savings recommendations for the current
// month, with a budget progress chart when budgets exist.
func (s *Service) Insights(ctx context.Context, externalID int64) ([]chat.Reply, error) {
	cur, prev, err := s.summaries(ctx, externalID)
	if err != nil {
		return nil, err
	}

	reply := insightsReply(cur, prev).WithMenu()

	if s.renderer != nil && len(cur.Budgets) > 0 {
		png, err := s.renderer.BudgetChart(ctx, cur.Budgets, cur.User.Currency)
		if err != nil {
			s.log.Warn("failed to render budget chart", "error", err, "user_id", externalID)
		} else {
			reply.Image = image("orcamentos.png", png)
		}
	}

	return []chat.Reply{reply}, nil
}

// summaries loads the current and the previous month concurrently.
func (s *Service) summaries(ctx context.Context, externalID int64) (*finance.MonthlySummary, *finance.MonthlySummary, error) {
	today := s.now()
	first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	before := first.AddDate(0, -1, 0)

	var cur, prev *finance.MonthlySummary

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error

		cur, err = s.finance.MonthlySummary(gctx, externalID, first.Year(), first.Month())
		if err != nil {
			return fmt.Errorf("loading summary: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		var err error

		prev, err = s.finance.MonthlySummary(gctx, externalID, before.Year(), before.Month())
		if err != nil {
			return fmt.Errorf("loading previous summary: %w", err)
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return cur, prev, nil
}

func insightsReply(cur, prev *finance.MonthlySummary) chat.Reply {
	var b strings.Builder

	b.WriteString("💡 <b>Insights e Recomendações Financeiras</b>\n\n<b>Análise dos seus gastos:</b>\n")

	for _, line := range Insights(cur, prev) {
		fmt.Fprintf(&b, "• %s\n", html.EscapeString(line))
	}

	b.WriteString("\n<b>Recomendações para economizar:</b>\n")

	for _, line := range Recommendations(cur) {
		fmt.Fprintf(&b, "• %s\n", html.EscapeString(line))
	}

	return chat.HTML(b.String())
}

func empty(m *finance.MonthlySummary) bool {
	return m.Income == 0 && m.Expense == 0 && len(m.Budgets) == 0 &&
		len(m.FutureIncomes) == 0 && len(m.Reminders) == 0
}

func image(name string, png []byte) *chat.Attachment {
	return &chat.Attachment{Name: name, ContentType: "image/png", Data: png}
}

func percent(p float64) string {
	return printer.Sprintf("%.1f%%", p)
}

var monthNames = [...]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

func monthName(m time.Month) string {
	return monthNames[m-1]
}

// shortMonth renders "Mar/2025".
func shortMonth(year int, m time.Month) string {
	return string([]rune(monthName(m))[:3]) + "/" + fmt.Sprint(year)
}
