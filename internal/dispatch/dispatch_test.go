package dispatch_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/finchat/internal/chat"
	"github.com/MrJamesThe3rd/finchat/internal/dispatch"
	"github.com/MrJamesThe3rd/finchat/internal/extract"
	"github.com/MrJamesThe3rd/finchat/internal/finance"
	"github.com/MrJamesThe3rd/finchat/internal/flow"
	"github.com/MrJamesThe3rd/finchat/internal/intent"
	"github.com/MrJamesThe3rd/finchat/internal/reminder"
	"github.com/MrJamesThe3rd/finchat/internal/report"
)

const userID int64 = 42

var (
	ana     = &finance.User{ExternalID: userID, Name: "Ana", Currency: "R$"}
	anaSess = flow.Session{UserID: userID, Name: "Ana", Currency: "R$"}
	today   = time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
)

type fixture struct {
	dispatcher *dispatch.Dispatcher
	finance    *dispatch.MockFinance
	flows      *dispatch.MockFlows
	reports    *dispatch.MockReports
	reminders  *dispatch.MockReminders
	matcher    *dispatch.MockMatcher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		finance:   dispatch.NewMockFinance(ctrl),
		flows:     dispatch.NewMockFlows(ctrl),
		reports:   dispatch.NewMockReports(ctrl),
		reminders: dispatch.NewMockReminders(ctrl),
		matcher:   dispatch.NewMockMatcher(ctrl),
	}

	f.dispatcher = dispatch.New(dispatch.Deps{
		Finance:   f.finance,
		Flows:     f.flows,
		Reports:   f.reports,
		Reminders: f.reminders,
		Matcher:   f.matcher,
		Extractor: extract.NewWithClock(func() time.Time { return today.Add(10 * time.Hour) }),
	})

	return f
}

func (f *fixture) idle() {
	f.flows.EXPECT().Active(userID).Return(flow.State{}, false).AnyTimes()
}

func (f *fixture) send(t *testing.T, text string) []chat.Reply {
	t.Helper()

	replies, err := f.dispatcher.Handle(context.Background(), chat.Event{UserID: userID, Name: "Ana", Text: text})
	require.NoError(t, err)

	return replies
}

func (f *fixture) press(t *testing.T, payload string) []chat.Reply {
	t.Helper()

	replies, err := f.dispatcher.Handle(context.Background(), chat.Event{UserID: userID, Payload: payload})
	require.NoError(t, err)

	return replies
}

var sentinel = []chat.Reply{chat.Text("ok")}

func TestDispatcher_Cancel(t *testing.T) {
	type testCase struct {
		name   string
		active bool
		want   string
	}

	tests := []testCase{
		{name: "Active", active: true, want: "❌ Operação cancelada."},
		{name: "Idle", active: false, want: "Não há nenhuma operação em andamento."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.flows.EXPECT().Cancel(userID).Return(tt.active)

			replies := f.send(t, " /Cancelar ")
			require.Len(t, replies, 1)
			assert.Equal(t, tt.want, replies[0].Text)
			assert.Equal(t, chat.MainMenu, replies[0].Keyboard)
		})
	}
}

func TestDispatcher_Shortcut(t *testing.T) {
	f := newFixture(t)

	text := "Gastei 45,90 no mercado"
	want := finance.TransactionParams{
		Type:           finance.TypeExpense,
		Amount:         4590,
		Category:       "Alimentação",
		Description:    text,
		RawDescription: text,
		Date:           today,
	}

	f.finance.EXPECT().FindUser(gomock.Any(), userID).Return(ana, nil)
	f.matcher.EXPECT().Suggest(gomock.Any(), userID, text, false).Return("", nil)
	f.finance.EXPECT().RecordTransaction(gomock.Any(), userID, want).Return(&finance.Transaction{
		Type: finance.TypeExpense, Amount: 4590, Category: "Alimentação", Description: text, Date: today,
	}, nil)

	replies := f.send(t, text)
	require.Len(t, replies, 1)

	assert.Contains(t, replies[0].Text, "✅ Despesa registrada!")
	assert.Contains(t, replies[0].Text, "R$ 45,90")
	assert.Contains(t, replies[0].Text, "15/03/2025")
}

func TestDispatcher_Shortcut_LearnedCategory(t *testing.T) {
	f := newFixture(t)

	text := "recebi 1200 do cliente ACME ontem"

	f.finance.EXPECT().FindUser(gomock.Any(), userID).Return(ana, nil)
	f.matcher.EXPECT().Suggest(gomock.Any(), userID, text, true).Return("Freelance", nil)
	f.finance.EXPECT().RecordTransaction(gomock.Any(), userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, p finance.TransactionParams) (*finance.Transaction, error) {
			assert.Equal(t, finance.TypeIncome, p.Type)
			assert.Equal(t, int64(120000), p.Amount)
			assert.Equal(t, "Freelance", p.Category)
			assert.Equal(t, today.AddDate(0, 0, -1), p.Date)

			return &finance.Transaction{Type: p.Type, Amount: p.Amount, Category: p.Category, Date: p.Date}, nil
		})

	replies := f.send(t, text)
	require.Len(t, replies, 1)
	assert.Contains(t, replies[0].Text, "✅ Receita registrada!")
}

func TestDispatcher_Shortcut_DateIsNotAmount(t *testing.T) {
	f := newFixture(t)

	text := "gastei em 10/03 80 no mercado"

	f.finance.EXPECT().FindUser(gomock.Any(), userID).Return(ana, nil)
	f.matcher.EXPECT().Suggest(gomock.Any(), userID, text, false).Return("", nil)
	f.finance.EXPECT().RecordTransaction(gomock.Any(), userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, p finance.TransactionParams) (*finance.Transaction, error) {
			assert.Equal(t, int64(8000), p.Amount)
			assert.Equal(t, "Alimentação", p.Category)
			assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), p.Date)

			return &finance.Transaction{Type: p.Type, Amount: p.Amount, Category: p.Category, Date: p.Date}, nil
		})

	replies := f.send(t, text)
	require.Len(t, replies, 1)
	assert.Contains(t, replies[0].Text, "R$ 80,00")
}

func TestDispatcher_Shortcut_WithoutAmount(t *testing.T) {
	f := newFixture(t)
	f.idle()

	f.reports.EXPECT().Monthly(gomock.Any(), userID).Return(sentinel, nil)

	assert.Equal(t, sentinel, f.send(t, "gastei muito este mês?"))
}

func TestDispatcher_NotRegistered(t *testing.T) {
	f := newFixture(t)

	f.finance.EXPECT().FindUser(gomock.Any(), userID).Return(nil, finance.ErrNotRegistered)

	replies := f.send(t, "Gastei 10 no bar")
	require.Len(t, replies, 1)
	assert.Equal(t, finance.NotRegisteredMessage, replies[0].Text)
}

func TestDispatcher_ActiveFlow(t *testing.T) {
	f := newFixture(t)

	f.flows.EXPECT().Active(userID).Return(flow.State{Kind: flow.AddReminder, Step: "amount"}, true)
	f.finance.EXPECT().FindUser(gomock.Any(), userID).Return(ana, nil)
	f.flows.EXPECT().Advance(gomock.Any(), anaSess, flow.Input{Text: "150"}).Return(flow.Result{Kind: flow.AddReminder, Replies: sentinel}, nil)

	assert.Equal(t, sentinel, f.send(t, "150"))
}

func TestDispatcher_ActiveFlow_ButtonPress(t *testing.T) {
	f := newFixture(t)

	f.flows.EXPECT().Active(userID).Return(flow.State{Kind: flow.AddExpense, Step: "category"}, true)
	f.finance.EXPECT().FindUser(gomock.Any(), userID).Return(ana, nil)
	f.flows.EXPECT().Advance(gomock.Any(), anaSess, flow.Input{Value: "Lazer"}).Return(flow.Result{Replies: sentinel}, nil)

	assert.Equal(t, sentinel, f.press(t, "Lazer"))
}

func TestDispatcher_ActiveFlow_RejectsNewFlow(t *testing.T) {
	f := newFixture(t)

	f.flows.EXPECT().Active(userID).Return(flow.State{Kind: flow.AddReminder}, true)

	replies := f.send(t, "/despesa")
	require.Len(t, replies, 1)

	assert.Contains(t, replies[0].Text, "novo lembrete")
	assert.Contains(t, replies[0].Text, "/cancelar")
}

func TestDispatcher_ActiveFlow_CompletionFailure(t *testing.T) {
	f := newFixture(t)

	retry := []chat.Reply{chat.Text("⚠️ Não consegui concluir agora.")}

	f.flows.EXPECT().Active(userID).Return(flow.State{Kind: flow.SetBudget}, true)
	f.finance.EXPECT().FindUser(gomock.Any(), userID).Return(ana, nil)
	f.flows.EXPECT().Advance(gomock.Any(), anaSess, gomock.Any()).
		Return(flow.Result{Kind: flow.SetBudget, Replies: retry}, fmt.Errorf("%w: db down", flow.ErrCompletionFailed))

	assert.Equal(t, retry, f.send(t, "300"))
}

func TestDispatcher_ActiveFlow_Registration(t *testing.T) {
	f := newFixture(t)

	f.flows.EXPECT().Active(userID).Return(flow.State{Kind: flow.Registration, Step: "name"}, true)
	f.finance.EXPECT().FindUser(gomock.Any(), userID).Return(nil, finance.ErrNotRegistered)
	f.flows.EXPECT().Advance(gomock.Any(), flow.Session{UserID: userID, Name: "Ana"}, flow.Input{Text: "Ana Souza"}).
		Return(flow.Result{Replies: sentinel}, nil)

	assert.Equal(t, sentinel, f.send(t, "Ana Souza"))
}

func TestDispatcher_StartTriggers(t *testing.T) {
	type testCase struct {
		name    string
		text    string
		payload string
		want    flow.Kind
	}

	tests := []testCase{
		{name: "ExpenseCommand", text: "/despesa", want: flow.AddExpense},
		{name: "IncomeMenu", text: chat.MenuAddIncome, want: flow.AddIncome},
		{name: "BudgetMenu", text: chat.MenuBudgets, want: flow.SetBudget},
		{name: "FutureIncomeCommand", text: "/receita_futura", want: flow.AddFutureIncome},
		{name: "ExportMenu", text: chat.MenuExport, want: flow.Export},
		{name: "NewReminderButton", payload: reminder.PayloadNew, want: flow.AddReminder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.idle()

			f.finance.EXPECT().FindUser(gomock.Any(), userID).Return(ana, nil)
			f.flows.EXPECT().Start(gomock.Any(), anaSess, tt.want, intent.Params{}).Return(flow.Result{Replies: sentinel}, nil)

			replies, err := f.dispatcher.Handle(context.Background(), chat.Event{UserID: userID, Text: tt.text, Payload: tt.payload})
			require.NoError(t, err)
			assert.Equal(t, sentinel, replies)
		})
	}
}

func TestDispatcher_Start_Registration(t *testing.T) {
	f := newFixture(t)
	f.idle()

	f.finance.EXPECT().FindUser(gomock.Any(), userID).Return(nil, finance.ErrNotRegistered)
	f.flows.EXPECT().Start(gomock.Any(), flow.Session{UserID: userID, Name: "Ana"}, flow.Registration, intent.Params{}).
		Return(flow.Result{Replies: sentinel}, nil)

	assert.Equal(t, sentinel, f.send(t, "/start"))
}

func TestDispatcher_Start_WelcomeBack(t *testing.T) {
	f := newFixture(t)
	f.idle()

	f.finance.EXPECT().FindUser(gomock.Any(), userID).Return(ana, nil)

	replies := f.send(t, "/start")
	require.Len(t, replies, 1)
	assert.Equal(t, "Bem-vindo de volta, Ana! Estou aqui para ajudar com suas finanças.", replies[0].Text)
}

func TestDispatcher_Start_NotRegistered(t *testing.T) {
	f := newFixture(t)
	f.idle()

	f.finance.EXPECT().FindUser(gomock.Any(), userID).Return(nil, finance.ErrNotRegistered)

	replies := f.send(t, "/lembrete")
	require.Len(t, replies, 1)
	assert.Equal(t, finance.NotRegisteredMessage, replies[0].Text)
}

func TestDispatcher_Commands(t *testing.T) {
	id := uuid.New()

	type testCase struct {
		name    string
		text    string
		payload string
		expect  func(f *fixture)
	}

	tests := []testCase{
		{
			name: "ReportCommand",
			text: "/relatorio",
			expect: func(f *fixture) {
				f.reports.EXPECT().Menu(gomock.Any(), userID).Return(sentinel, nil)
			},
		},
		{
			name: "ReportsMenu",
			text: chat.MenuReports,
			expect: func(f *fixture) {
				f.reports.EXPECT().Menu(gomock.Any(), userID).Return(sentinel, nil)
			},
		},
		{
			name:    "MonthlyButton",
			payload: report.PayloadMonthly,
			expect: func(f *fixture) {
				f.reports.EXPECT().Monthly(gomock.Any(), userID).Return(sentinel, nil)
			},
		},
		{
			name:    "CategoryPicker",
			payload: report.PayloadCategory,
			expect: func(f *fixture) {
				f.reports.EXPECT().CategoryPicker(gomock.Any(), userID).Return(sentinel, nil)
			},
		},
		{
			name:    "CategoryButton",
			payload: "report:category:Lazer",
			expect: func(f *fixture) {
				f.reports.EXPECT().Category(gomock.Any(), userID, "Lazer").Return(sentinel, nil)
			},
		},
		{
			name:    "ComparisonButton",
			payload: report.PayloadComparison,
			expect: func(f *fixture) {
				f.reports.EXPECT().Comparison(gomock.Any(), userID).Return(sentinel, nil)
			},
		},
		{
			name:    "InsightsButton",
			payload: report.PayloadInsights,
			expect: func(f *fixture) {
				f.reports.EXPECT().Insights(gomock.Any(), userID).Return(sentinel, nil)
			},
		},
		{
			name: "RemindersMenu",
			text: chat.MenuReminders,
			expect: func(f *fixture) {
				f.reminders.EXPECT().List(gomock.Any(), userID).Return(sentinel, nil)
			},
		},
		{
			name:    "PayReminder",
			payload: reminder.Payload(reminder.ActionPay, id),
			expect: func(f *fixture) {
				f.reminders.EXPECT().Handle(gomock.Any(), userID, reminder.Payload(reminder.ActionPay, id)).Return(sentinel, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.idle()
			tt.expect(f)

			replies, err := f.dispatcher.Handle(context.Background(), chat.Event{UserID: userID, Text: tt.text, Payload: tt.payload})
			require.NoError(t, err)
			assert.Equal(t, sentinel, replies)
		})
	}
}

func TestDispatcher_Help(t *testing.T) {
	f := newFixture(t)
	f.idle()

	replies := f.send(t, "/ajuda")
	require.Len(t, replies, 1)
	assert.Contains(t, replies[0].Text, "/cancelar")
	assert.Equal(t, chat.MarkupHTML, replies[0].Markup)
}

func TestDispatcher_Classifier_CategoryReport(t *testing.T) {
	f := newFixture(t)
	f.idle()

	f.reports.EXPECT().Category(gomock.Any(), userID, "lazer").Return(sentinel, nil)

	assert.Equal(t, sentinel, f.send(t, "Quanto gastei com lazer"))
}

func TestDispatcher_Classifier_SeedsBudget(t *testing.T) {
	f := newFixture(t)
	f.idle()

	f.finance.EXPECT().FindUser(gomock.Any(), userID).Return(ana, nil)
	f.flows.EXPECT().Start(gomock.Any(), anaSess, flow.SetBudget, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ flow.Session, _ flow.Kind, seed intent.Params) (flow.Result, error) {
			require.NotNil(t, seed.Category)
			require.NotNil(t, seed.Amount)
			assert.Equal(t, "lazer", *seed.Category)
			assert.True(t, decimal.NewFromInt(500).Equal(*seed.Amount))

			return flow.Result{Replies: sentinel}, nil
		})

	assert.Equal(t, sentinel, f.send(t, "definir orçamento para lazer 500"))
}

func TestDispatcher_Classifier_SeedsExpenseWithLearnedCategory(t *testing.T) {
	f := newFixture(t)
	f.idle()

	text := "comprei algo por 20"

	f.matcher.EXPECT().Suggest(gomock.Any(), userID, text, false).Return("Lazer", nil)
	f.finance.EXPECT().FindUser(gomock.Any(), userID).Return(ana, nil)
	f.flows.EXPECT().Start(gomock.Any(), anaSess, flow.AddExpense, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ flow.Session, _ flow.Kind, seed intent.Params) (flow.Result, error) {
			require.NotNil(t, seed.Category)
			assert.Equal(t, "Lazer", *seed.Category)

			return flow.Result{Replies: sentinel}, nil
		})

	assert.Equal(t, sentinel, f.send(t, text))
}

func TestDispatcher_Classifier_LearnedCategoryBeatsKeywords(t *testing.T) {
	f := newFixture(t)
	f.idle()

	text := "paguei 30 no mercado"

	f.matcher.EXPECT().Suggest(gomock.Any(), userID, text, false).Return("Lazer", nil)
	f.finance.EXPECT().FindUser(gomock.Any(), userID).Return(ana, nil)
	f.flows.EXPECT().Start(gomock.Any(), anaSess, flow.AddExpense, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ flow.Session, _ flow.Kind, seed intent.Params) (flow.Result, error) {
			require.NotNil(t, seed.Category)
			assert.Equal(t, "Lazer", *seed.Category)

			return flow.Result{Replies: sentinel}, nil
		})

	assert.Equal(t, sentinel, f.send(t, text))
}

func TestDispatcher_Unknown(t *testing.T) {
	f := newFixture(t)
	f.idle()

	f.finance.EXPECT().FindUser(gomock.Any(), userID).Return(ana, nil)

	replies := f.send(t, "olá, tudo bem?")
	require.Len(t, replies, 1)
	assert.Contains(t, replies[0].Text, "não entendi")
	assert.Equal(t, chat.MainMenu, replies[0].Keyboard)
}

func TestDispatcher_CollaboratorFailure(t *testing.T) {
	f := newFixture(t)
	f.idle()

	f.reports.EXPECT().Monthly(gomock.Any(), userID).Return(nil, errors.New("db down"))

	_, err := f.dispatcher.Handle(context.Background(), chat.Event{UserID: userID, Payload: report.PayloadMonthly})
	assert.ErrorContains(t, err, "db down")
}
