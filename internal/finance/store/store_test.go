package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/finchat/internal/database/dbtest"
	"github.com/MrJamesThe3rd/finchat/internal/finance"
	"github.com/MrJamesThe3rd/finchat/internal/finance/store"
)

func day(m time.Month, d int) time.Time {
	return time.Date(2025, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStore_Integration(t *testing.T) {
	db := dbtest.Setup(t)
	dbtest.Truncate(t, db)

	ctx := context.Background()
	svc := finance.NewService(store.New(db), finance.WithClock(func() time.Time {
		return time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	}))

	const externalID int64 = 1001

	_, err := svc.FindUser(ctx, externalID)
	require.ErrorIs(t, err, finance.ErrNotRegistered)

	u, err := svc.RegisterUser(ctx, finance.RegisterParams{
		ExternalID: externalID, Name: "Ana", Currency: "R$", MonthlyIncome: 500000,
	})
	require.NoError(t, err)

	_, err = svc.RegisterUser(ctx, finance.RegisterParams{ExternalID: externalID, Name: "Ana", Currency: "R$"})
	require.ErrorIs(t, err, finance.ErrAlreadyRegistered)

	t.Run("Categories", func(t *testing.T) {
		expense, err := svc.ListCategories(ctx, externalID, false)
		require.NoError(t, err)
		require.Len(t, expense, 8)
		assert.Equal(t, "Outros", expense[len(expense)-1].Name)
		assert.Equal(t, u.ID, expense[0].UserID)

		income, err := svc.ListCategories(ctx, externalID, true)
		require.NoError(t, err)
		assert.Len(t, income, 5)
	})

	t.Run("TransactionsAndSummary", func(t *testing.T) {
		_, err := svc.RecordTransaction(ctx, externalID, finance.TransactionParams{
			Type: finance.TypeExpense, Amount: 4590, Category: "alimentação", Description: "mercado", Date: day(3, 10),
		})
		require.NoError(t, err)

		_, err = svc.RecordTransaction(ctx, externalID, finance.TransactionParams{
			Type: finance.TypeExpense, Amount: 1000, Category: "Pets", Description: "ração", Date: day(3, 11),
		})
		require.NoError(t, err)

		_, err = svc.RecordTransaction(ctx, externalID, finance.TransactionParams{
			Type: finance.TypeIncome, Amount: 500000, Category: "Salário", Date: day(3, 5),
		})
		require.NoError(t, err)

		_, err = svc.SetBudget(ctx, externalID, finance.BudgetParams{Category: "Alimentação", Amount: 10000})
		require.NoError(t, err)

		// A second budget for the same month replaces the first.
		_, err = svc.SetBudget(ctx, externalID, finance.BudgetParams{Category: "Alimentação", Amount: 5000})
		require.NoError(t, err)

		sum, err := svc.MonthlySummary(ctx, externalID, 2025, time.March)
		require.NoError(t, err)
		assert.Equal(t, int64(500000), sum.Income)
		assert.Equal(t, int64(5590), sum.Expense)
		require.Len(t, sum.Budgets, 1)
		assert.Equal(t, int64(5000), sum.Budgets[0].Budget)
		assert.Equal(t, int64(4590), sum.Budgets[0].Spent)

		rep, err := svc.CategoryExpenses(ctx, externalID, "aliment", 2025, time.March)
		require.NoError(t, err)
		assert.Equal(t, "Alimentação", rep.Category.Name)
		assert.Equal(t, int64(4590), rep.Total)
		require.NotNil(t, rep.Budget)

		_, err = svc.CategoryExpenses(ctx, externalID, "inexistente", 2025, time.March)
		assert.ErrorIs(t, err, finance.ErrCategoryNotFound)

		cats, err := svc.ListCategories(ctx, externalID, false)
		require.NoError(t, err)
		assert.Len(t, cats, 9)
	})

	t.Run("Reminders", func(t *testing.T) {
		r, err := svc.AddReminder(ctx, externalID, finance.ReminderParams{
			Description: "Aluguel", Amount: 150000, DueDate: day(3, 16),
			IsRecurring: true, Recurrence: finance.RecurrenceMonthly, RecurrenceDay: new(16),
		})
		require.NoError(t, err)

		pending, err := svc.PendingReminders(ctx, 3)
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, externalID, pending[0].ExternalID)
		assert.Equal(t, 16, *pending[0].RecurrenceDay)

		require.NoError(t, svc.MarkReminderNotified(ctx, r.ID, time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)))

		res, err := svc.MarkReminderPaid(ctx, externalID, r.ID)
		require.NoError(t, err)
		require.NotNil(t, res.Next)
		assert.Equal(t, day(4, 16), res.Next.DueDate)

		open, err := svc.UserReminders(ctx, externalID)
		require.NoError(t, err)
		require.Len(t, open, 1)
		assert.Equal(t, res.Next.ID, open[0].ID)

		require.NoError(t, svc.DeleteReminder(ctx, externalID, res.Next.ID))

		open, err = svc.UserReminders(ctx, externalID)
		require.NoError(t, err)
		assert.Empty(t, open)
	})

	t.Run("Import", func(t *testing.T) {
		rows := []finance.TransactionParams{
			{Type: finance.TypeExpense, Amount: 2500, Category: "Lazer", RawDescription: "CINEMA XYZ", Date: day(2, 1)},
		}

		res, err := svc.ImportBatch(ctx, externalID, rows)
		require.NoError(t, err)
		assert.Len(t, res.Imported, 1)

		res, err = svc.ImportBatch(ctx, externalID, rows)
		require.NoError(t, err)
		assert.Empty(t, res.Imported)
		assert.Len(t, res.Conflicts, 1)
	})

	t.Run("FutureIncome", func(t *testing.T) {
		f, err := svc.AddFutureIncome(ctx, externalID, finance.FutureIncomeParams{
			Description: "projeto", Amount: 200000, ExpectedDate: day(3, 28), Category: "Freelance",
		})
		require.NoError(t, err)
		assert.Equal(t, "Freelance", f.Category)

		sum, err := svc.MonthlySummary(ctx, externalID, 2025, time.March)
		require.NoError(t, err)
		assert.Len(t, sum.FutureIncomes, 1)
	})
}
