// Package dispatch routes inbound chat events to shortcuts, the active flow,
// reports, reminder actions or the intent classifier.
package dispatch

//go:generate mockgen -source=dispatch.go -destination=dispatch_mock.go -package=dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/MrJamesThe3rd/finchat/internal/chat"
	"github.com/MrJamesThe3rd/finchat/internal/extract"
	"github.com/MrJamesThe3rd/finchat/internal/finance"
	"github.com/MrJamesThe3rd/finchat/internal/flow"
	"github.com/MrJamesThe3rd/finchat/internal/intent"
)

type Finance interface {
	FindUser(ctx context.Context, externalID int64) (*finance.User, error)
	RecordTransaction(ctx context.Context, externalID int64, params finance.TransactionParams) (*finance.Transaction, error)
}

// Flows is the conversation engine.
type Flows interface {
	Start(ctx context.Context, sess flow.Session, kind flow.Kind, seed intent.Params) (flow.Result, error)
	Advance(ctx context.Context, sess flow.Session, in flow.Input) (flow.Result, error)
	Cancel(user int64) bool
	Active(user int64) (flow.State, bool)
}

type Reports interface {
	Menu(ctx context.Context, externalID int64) ([]chat.Reply, error)
	Monthly(ctx context.Context, externalID int64) ([]chat.Reply, error)
	CategoryPicker(ctx context.Context, externalID int64) ([]chat.Reply, error)
	Category(ctx context.Context, externalID int64, query string) ([]chat.Reply, error)
	Comparison(ctx context.Context, externalID int64) ([]chat.Reply, error)
	Insights(ctx context.Context, externalID int64) ([]chat.Reply, error)
}

type Reminders interface {
	List(ctx context.Context, externalID int64) ([]chat.Reply, error)
	Handle(ctx context.Context, externalID int64, payload string) ([]chat.Reply, error)
}

// Matcher suggests a category learned from the user's earlier entries.
type Matcher interface {
	Suggest(ctx context.Context, externalID int64, text string, income bool) (string, error)
}

type Deps struct {
	Finance   Finance
	Flows     Flows
	Reports   Reports
	Reminders Reminders
	Matcher   Matcher
	Extractor *extract.Extractor
	Logger    *slog.Logger
}

type Dispatcher struct {
	finance    Finance
	flows      Flows
	reports    Reports
	reminders  Reminders
	matcher    Matcher
	extractor  *extract.Extractor
	classifier *intent.Classifier
	locks      *keyedMutex
	log        *slog.Logger
}

func New(deps Deps) *Dispatcher {
	ex := deps.Extractor
	if ex == nil {
		ex = extract.New()
	}

	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}

	return &Dispatcher{
		finance:    deps.Finance,
		flows:      deps.Flows,
		reports:    deps.Reports,
		reminders:  deps.Reminders,
		matcher:    deps.Matcher,
		extractor:  ex,
		classifier: intent.NewClassifier(ex),
		locks:      newKeyedMutex(),
		log:        log.With("component", "dispatcher"),
	}
}

// Handle answers one event. Events of the same user are handled one at a
// time, in arrival order of the lock.
func (d *Dispatcher) Handle(ctx context.Context, ev chat.Event) ([]chat.Reply, error) {
	unlock := d.locks.Lock(ev.UserID)
	defer unlock()

	replies, err := d.route(ctx, ev)
	if errors.Is(err, finance.ErrNotRegistered) {
		return []chat.Reply{chat.Text(finance.NotRegisteredMessage)}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("handling message from %d: %w", ev.UserID, err)
	}

	return replies, nil
}

func (d *Dispatcher) route(ctx context.Context, ev chat.Event) ([]chat.Reply, error) {
	input := ev.Input()
	lower := strings.ToLower(input)

	if isCancel(lower) {
		return d.cancel(ev.UserID), nil
	}

	if ev.Payload == "" {
		if income, ok := shortcut(lower); ok {
			if replies, handled, err := d.shortcut(ctx, ev, income); handled {
				return replies, err
			}
		}
	}

	if st, ok := d.flows.Active(ev.UserID); ok {
		if kind, isStart := startTrigger(input); isStart {
			return []chat.Reply{busy(st.Kind, kind)}, nil
		}

		replies, err := d.advance(ctx, ev)
		if !errors.Is(err, flow.ErrNoActiveFlow) {
			return replies, err
		}

		d.log.Error("active flow vanished before advancing", "user_id", ev.UserID, "flow", st.Kind)
	}

	if kind, ok := startTrigger(input); ok {
		return d.start(ctx, ev, kind, intent.Params{})
	}

	if replies, ok, err := d.command(ctx, ev.UserID, input); ok {
		return replies, err
	}

	if ev.Payload != "" {
		return d.fallback(ctx, ev.UserID)
	}

	return d.classify(ctx, ev, input)
}

func (d *Dispatcher) cancel(user int64) []chat.Reply {
	if d.flows.Cancel(user) {
		return []chat.Reply{chat.Text("❌ Operação cancelada.").WithMenu()}
	}

	return []chat.Reply{chat.Text("Não há nenhuma operação em andamento.").WithMenu()}
}

// shortcut records "gastei ..." or "recebi ..." in one go. Without an
// amount it leaves the text to the classifier, which can still start a
// seeded flow or answer "gastei este mês".
func (d *Dispatcher) shortcut(ctx context.Context, ev chat.Event, income bool) ([]chat.Reply, bool, error) {
	text := strings.TrimSpace(ev.Text)

	rest, date, dated := d.extractor.CutDate(text)

	amount, ok := d.extractor.Amount(rest)
	if !ok || !amount.IsPositive() {
		return nil, false, nil
	}

	u, err := d.finance.FindUser(ctx, ev.UserID)
	if err != nil {
		return nil, true, err
	}

	typ := finance.TypeExpense
	if income {
		typ = finance.TypeIncome
	}

	if !dated {
		date = d.extractor.Today()
	}

	tx, err := d.finance.RecordTransaction(ctx, ev.UserID, finance.TransactionParams{
		Type:           typ,
		Amount:         extract.Cents(amount),
		Category:       d.category(ctx, ev.UserID, text, income),
		Description:    text,
		RawDescription: text,
		Date:           date,
	})
	if err != nil {
		return nil, true, fmt.Errorf("recording shortcut transaction: %w", err)
	}

	return []chat.Reply{flow.TransactionReceipt(session(ev, u), tx).WithMenu()}, true, nil
}

// category prefers a learned rule over the keyword table.
func (d *Dispatcher) category(ctx context.Context, user int64, text string, income bool) string {
	if cat := d.learned(ctx, user, text, income); cat != "" {
		return cat
	}

	return d.extractor.Category(text, income)
}

// learned returns the user's learned category for text, or "".
func (d *Dispatcher) learned(ctx context.Context, user int64, text string, income bool) string {
	if d.matcher == nil {
		return ""
	}

	cat, err := d.matcher.Suggest(ctx, user, text, income)
	if err != nil {
		d.log.Warn("failed to suggest category", "error", err, "user_id", user)
		return ""
	}

	return cat
}

func (d *Dispatcher) advance(ctx context.Context, ev chat.Event) ([]chat.Reply, error) {
	sess, err := d.session(ctx, ev)
	if err != nil {
		return nil, err
	}

	res, err := d.flows.Advance(ctx, sess, flow.Input{Text: ev.Text, Value: ev.Payload})

	return d.result(ev.UserID, res, err)
}

func (d *Dispatcher) start(ctx context.Context, ev chat.Event, kind flow.Kind, seed intent.Params) ([]chat.Reply, error) {
	u, err := d.finance.FindUser(ctx, ev.UserID)

	switch {
	case kind == flow.Registration && err == nil:
		return []chat.Reply{chat.Text(fmt.Sprintf("Bem-vindo de volta, %s! Estou aqui para ajudar com suas finanças.", u.Name)).WithMenu()}, nil
	case kind == flow.Registration && errors.Is(err, finance.ErrNotRegistered):
		u = nil
	case err != nil:
		return nil, err
	}

	res, err := d.flows.Start(ctx, session(ev, u), kind, seed)
	if errors.Is(err, flow.ErrFlowAlreadyActive) {
		d.log.Error("flow started over an active one", "user_id", ev.UserID, "active", res.Kind, "requested", kind)
		return []chat.Reply{busy(res.Kind, kind)}, nil
	}

	return d.result(ev.UserID, res, err)
}

// result keeps a failed completion pending and shows its retry hint.
func (d *Dispatcher) result(user int64, res flow.Result, err error) ([]chat.Reply, error) {
	if errors.Is(err, flow.ErrCompletionFailed) {
		d.log.Error("failed to complete flow", "error", err, "user_id", user, "flow", res.Kind)
		return res.Replies, nil
	}

	if err != nil {
		return nil, err
	}

	return res.Replies, nil
}

// session falls back to the event's name for users who are not registered
// yet, so registration can run.
func (d *Dispatcher) session(ctx context.Context, ev chat.Event) (flow.Session, error) {
	u, err := d.finance.FindUser(ctx, ev.UserID)
	if errors.Is(err, finance.ErrNotRegistered) {
		return session(ev, nil), nil
	}

	if err != nil {
		return flow.Session{}, err
	}

	return session(ev, u), nil
}

func session(ev chat.Event, u *finance.User) flow.Session {
	if u == nil {
		return flow.Session{UserID: ev.UserID, Name: ev.Name}
	}

	return flow.Session{UserID: ev.UserID, Name: u.Name, Currency: u.Currency}
}

func (d *Dispatcher) classify(ctx context.Context, ev chat.Event, text string) ([]chat.Reply, error) {
	res := d.classifier.Classify(text)

	switch res.Kind {
	case intent.MonthlyReport:
		return d.reports.Monthly(ctx, ev.UserID)
	case intent.CategoryReport:
		if res.Params.Category == nil {
			return d.reports.CategoryPicker(ctx, ev.UserID)
		}

		return d.reports.Category(ctx, ev.UserID, *res.Params.Category)
	case intent.BudgetSet:
		return d.start(ctx, ev, flow.SetBudget, res.Params)
	case intent.AddReminder:
		return d.start(ctx, ev, flow.AddReminder, res.Params)
	case intent.FutureIncome:
		return d.start(ctx, ev, flow.AddFutureIncome, res.Params)
	case intent.AddExpense, intent.AddIncome:
		income := res.Kind == intent.AddIncome

		if cat := d.learned(ctx, ev.UserID, text, income); cat != "" {
			res.Params.Category = &cat
		}

		kind := flow.AddExpense
		if income {
			kind = flow.AddIncome
		}

		return d.start(ctx, ev, kind, res.Params)
	}

	return d.fallback(ctx, ev.UserID)
}

func (d *Dispatcher) fallback(ctx context.Context, user int64) ([]chat.Reply, error) {
	if _, err := d.finance.FindUser(ctx, user); err != nil {
		return nil, err
	}

	return []chat.Reply{chat.Text("Desculpe, não entendi o que você deseja. Você pode tentar novamente ou usar os botões abaixo:").WithMenu()}, nil
}

func busy(active, requested flow.Kind) chat.Reply {
	return chat.Text(fmt.Sprintf(
		"⚠️ Você está no meio de: %s. Termine essa etapa ou envie /cancelar antes de começar %s.",
		active.Label(), requested.Label(),
	))
}
