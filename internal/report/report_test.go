package report_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/finchat/internal/chat"
	"github.com/MrJamesThe3rd/finchat/internal/finance"
	"github.com/MrJamesThe3rd/finchat/internal/report"
)

const userID int64 = 7

var user = &finance.User{Name: "Ana", Currency: "R$"}

func fixedNow() time.Time {
	return time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)
}

func newService(t *testing.T, withRenderer bool) (*report.Service, *report.MockFinance, *report.MockRenderer) {
	ctrl := gomock.NewController(t)
	fin := report.NewMockFinance(ctrl)
	renderer := report.NewMockRenderer(ctrl)

	var r report.Renderer
	if withRenderer {
		r = renderer
	}

	return report.NewService(fin, r, report.WithClock(fixedNow)), fin, renderer
}

func march() *finance.MonthlySummary {
	return &finance.MonthlySummary{
		User:       user,
		Year:       2025,
		Month:      time.March,
		Income:     500000,
		Expense:    4590,
		ByCategory: []finance.CategoryAmount{{Category: "Alimentação", Amount: 4590}},
		Budgets:    []finance.BudgetStatus{{Category: "Alimentação", Budget: 50000, Spent: 4590}},
		Reminders: []*finance.Reminder{
			{Description: "Conta de luz", Amount: 15000, DueDate: time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)},
		},
	}
}

func TestService_Monthly(t *testing.T) {
	svc, fin, renderer := newService(t, true)
	cur := march()

	fin.EXPECT().MonthlySummary(gomock.Any(), userID, 2025, time.March).Return(cur, nil)
	fin.EXPECT().MonthlySummary(gomock.Any(), userID, 2025, time.February).Return(&finance.MonthlySummary{User: user, Year: 2025, Month: time.February}, nil)
	renderer.EXPECT().PieChart(gomock.Any(), "Despesas por Categoria - Março", cur.ByCategory, "R$").Return([]byte("png"), nil)

	replies, err := svc.Monthly(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, replies, 2)

	summary := replies[0]
	assert.Equal(t, chat.MarkupHTML, summary.Markup)
	assert.Equal(t, chat.MainMenu, summary.Keyboard)
	assert.Contains(t, summary.Text, "Resumo Financeiro - Março/2025")
	assert.Contains(t, summary.Text, "💰 <b>Receitas:</b> R$ 5.000,00")
	assert.Contains(t, summary.Text, "🧮 <b>Saldo:</b> R$ 4.954,10")
	assert.Contains(t, summary.Text, "• Alimentação: R$ 45,90")
	assert.Contains(t, summary.Text, "🟢 Alimentação")
	assert.Contains(t, summary.Text, "• 20/03: Conta de luz - R$ 150,00")

	require.NotNil(t, summary.Image)
	assert.Equal(t, []byte("png"), summary.Image.Data)
	assert.Equal(t, "image/png", summary.Image.ContentType)

	insights := replies[1]
	assert.Contains(t, insights.Text, "controlando bem seus gastos com Alimentação")
	assert.Contains(t, insights.Text, "Você tem 1 contas a pagar este mês, totalizando R$ 150,00.")
	assert.Contains(t, insights.Text, "Considere investir parte desse valor")
}

func TestService_Monthly_ChartFailure(t *testing.T) {
	svc, fin, renderer := newService(t, true)

	fin.EXPECT().MonthlySummary(gomock.Any(), userID, gomock.Any(), gomock.Any()).Return(march(), nil).Times(2)
	renderer.EXPECT().PieChart(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

	replies, err := svc.Monthly(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, replies, 2)

	assert.Nil(t, replies[0].Image)
}

func TestService_Monthly_Empty(t *testing.T) {
	svc, fin, _ := newService(t, false)

	fin.EXPECT().MonthlySummary(gomock.Any(), userID, gomock.Any(), gomock.Any()).
		Return(&finance.MonthlySummary{User: user}, nil).Times(2)

	replies, err := svc.Monthly(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, replies, 1)

	assert.Equal(t, "Não encontrei transações para este mês.", replies[0].Text)
}

func TestService_Monthly_NotRegistered(t *testing.T) {
	svc, fin, _ := newService(t, false)

	fin.EXPECT().MonthlySummary(gomock.Any(), userID, gomock.Any(), gomock.Any()).
		Return(nil, finance.ErrNotRegistered).MinTimes(1)

	_, err := svc.Monthly(context.Background(), userID)
	assert.ErrorIs(t, err, finance.ErrNotRegistered)
}

func TestService_Menu(t *testing.T) {
	svc, fin, _ := newService(t, false)

	fin.EXPECT().FindUser(gomock.Any(), userID).Return(user, nil)

	replies, err := svc.Menu(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, replies, 1)

	var values []string
	for _, o := range replies[0].Options {
		values = append(values, o.Value)
	}

	assert.Equal(t, []string{report.PayloadMonthly, report.PayloadCategory, report.PayloadComparison, report.PayloadInsights}, values)
}

func TestService_CategoryPicker(t *testing.T) {
	svc, fin, _ := newService(t, false)

	fin.EXPECT().ListCategories(gomock.Any(), userID, false).Return([]*finance.Category{{Name: "Alimentação"}, {Name: "Lazer"}}, nil)

	replies, err := svc.CategoryPicker(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, replies, 1)

	assert.Equal(t, []chat.Option{
		{Label: "Alimentação", Value: "report:category:Alimentação"},
		{Label: "Lazer", Value: "report:category:Lazer"},
	}, replies[0].Options)
}

func TestService_Category(t *testing.T) {
	svc, fin, _ := newService(t, false)

	rep := &finance.CategoryReport{
		User:     user,
		Category: &finance.Category{Name: "Alimentação"},
		Year:     2025,
		Month:    time.March,
		Total:    4590,
		Budget:   &finance.BudgetStatus{Category: "Alimentação", Budget: 50000, Spent: 4590},
		Transactions: []*finance.Transaction{
			{Description: "mercado", Amount: 4590, Date: time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)},
		},
	}

	fin.EXPECT().CategoryExpenses(gomock.Any(), userID, "aliment", 2025, time.March).Return(rep, nil)

	replies, err := svc.Category(context.Background(), userID, "aliment")
	require.NoError(t, err)
	require.Len(t, replies, 1)

	text := replies[0].Text
	assert.Contains(t, text, "Despesas com Alimentação - Março/2025")
	assert.Contains(t, text, "💸 <b>Total:</b> R$ 45,90")
	assert.Contains(t, text, "📌 <b>Orçamento:</b> R$ 500,00")
	assert.Contains(t, text, "🧮 <b>Restante:</b> R$ 454,10")
	assert.Contains(t, text, "• 14/03: mercado - R$ 45,90")
}

func TestService_Category_Errors(t *testing.T) {
	type testCase struct {
		name      string
		report    *finance.CategoryReport
		err       error
		wantText  string
		wantError error
	}

	tests := []testCase{
		{
			name:     "NotFound",
			err:      finance.ErrCategoryNotFound,
			wantText: "❌ Categoria \"pets\" não encontrada.",
		},
		{
			name:     "NoExpenses",
			report:   &finance.CategoryReport{User: user, Category: &finance.Category{Name: "Pets"}},
			wantText: "Não encontrei despesas na categoria 'Pets' para este mês.",
		},
		{
			name:      "NotRegistered",
			err:       finance.ErrNotRegistered,
			wantError: finance.ErrNotRegistered,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, fin, _ := newService(t, false)

			fin.EXPECT().CategoryExpenses(gomock.Any(), userID, "pets", 2025, time.March).Return(tt.report, tt.err)

			replies, err := svc.Category(context.Background(), userID, "pets")
			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
				return
			}

			require.NoError(t, err)
			require.Len(t, replies, 1)
			assert.Equal(t, tt.wantText, replies[0].Text)
		})
	}
}

func TestService_Comparison(t *testing.T) {
	svc, fin, renderer := newService(t, true)

	months := []finance.MonthTotals{
		{Year: 2025, Month: time.January, Income: 500000, Expense: 320000},
		{Year: 2025, Month: time.February},
		{Year: 2025, Month: time.March, Income: 500000, Expense: 4590},
	}

	fin.EXPECT().FindUser(gomock.Any(), userID).Return(user, nil)
	fin.EXPECT().MonthlyComparison(gomock.Any(), userID, report.ComparisonMonths).Return(months, nil)
	renderer.EXPECT().ComparisonChart(gomock.Any(), months, "R$").Return([]byte("bars"), nil)

	replies, err := svc.Comparison(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, replies, 1)

	text := replies[0].Text
	assert.Contains(t, text, "<pre>")
	assert.Contains(t, text, "Jan/2025")
	assert.Contains(t, text, "Fev/2025")
	assert.Contains(t, text, "R$ 1.800,00")

	require.NotNil(t, replies[0].Image)
	assert.Equal(t, []byte("bars"), replies[0].Image.Data)
}

func TestService_Comparison_Empty(t *testing.T) {
	svc, fin, _ := newService(t, false)

	fin.EXPECT().FindUser(gomock.Any(), userID).Return(user, nil)
	fin.EXPECT().MonthlyComparison(gomock.Any(), userID, report.ComparisonMonths).
		Return([]finance.MonthTotals{{Year: 2025, Month: time.March}}, nil)

	replies, err := svc.Comparison(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, replies, 1)

	assert.Equal(t, "Não encontrei transações para os últimos meses.", replies[0].Text)
}

func TestService_Insights(t *testing.T) {
	svc, fin, renderer := newService(t, true)
	cur := march()

	fin.EXPECT().MonthlySummary(gomock.Any(), userID, 2025, time.March).Return(cur, nil)
	fin.EXPECT().MonthlySummary(gomock.Any(), userID, 2025, time.February).Return(&finance.MonthlySummary{User: user}, nil)
	renderer.EXPECT().BudgetChart(gomock.Any(), cur.Budgets, "R$").Return([]byte("budget"), nil)

	replies, err := svc.Insights(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, replies, 1)

	assert.Contains(t, replies[0].Text, "Insights e Recomendações Financeiras")
	assert.Equal(t, chat.MainMenu, replies[0].Keyboard)
	require.NotNil(t, replies[0].Image)
	assert.Equal(t, "orcamentos.png", replies[0].Image.Name)
}
