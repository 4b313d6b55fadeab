package finance

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

type CategoryAmount struct {
	Category string
	Amount   int64
}

// BudgetStatus compares a budget with what was spent in its category.
type BudgetStatus struct {
	Category string
	Budget   int64
	Spent    int64
}

func (b BudgetStatus) Percentage() float64 {
	if b.Budget <= 0 {
		return 0
	}

	return float64(b.Spent) / float64(b.Budget) * 100
}

func (b BudgetStatus) Remaining() int64 {
	return b.Budget - b.Spent
}

// Marker is 🟢 below 80% of the budget, 🟠 below 100% and 🔴 otherwise.
func (b BudgetStatus) Marker() string {
	switch p := b.Percentage(); {
	case p < 80:
		return "🟢"
	case p < 100:
		return "🟠"
	default:
		return "🔴"
	}
}

type MonthlySummary struct {
	User          *User
	Year          int
	Month         time.Month
	Income        int64
	Expense       int64
	ByCategory    []CategoryAmount // Expenses, largest first
	Budgets       []BudgetStatus
	FutureIncomes []*FutureIncome
	Reminders     []*Reminder
}

func (m *MonthlySummary) Balance() int64 {
	return m.Income - m.Expense
}

// MonthlySummary aggregates one month of a user's finances. The independent
// reads run concurrently.
func (s *Service) MonthlySummary(ctx context.Context, externalID int64, year int, month time.Month) (*MonthlySummary, error) {
	u, err := s.FindUser(ctx, externalID)
	if err != nil {
		return nil, err
	}

	start, end := monthRange(year, month)

	var (
		txs     []*Transaction
		budgets []*Budget
		futures []*FutureIncome
		rems    []*Reminder
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error

		txs, err = s.repo.ListTransactions(gctx, TransactionFilter{UserID: u.ID, StartDate: &start, EndDate: &end})
		if err != nil {
			return fmt.Errorf("listing transactions: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		var err error

		budgets, err = s.repo.ListBudgets(gctx, u.ID, year, month)
		if err != nil {
			return fmt.Errorf("listing budgets: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		var err error

		futures, err = s.repo.ListFutureIncomes(gctx, FutureIncomeFilter{UserID: u.ID, From: &start, To: &end})
		if err != nil {
			return fmt.Errorf("listing future incomes: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		var err error

		rems, err = s.repo.ListReminders(gctx, ReminderFilter{UserID: &u.ID, DueFrom: &start, DueTo: &end})
		if err != nil {
			return fmt.Errorf("listing reminders: %w", err)
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sum := &MonthlySummary{
		User:          u,
		Year:          year,
		Month:         month,
		FutureIncomes: futures,
		Reminders:     rems,
	}

	spent := make(map[string]int64)

	for _, tx := range txs {
		if tx.Type == TypeIncome {
			sum.Income += tx.Amount
			continue
		}

		sum.Expense += tx.Amount
		spent[tx.Category] += tx.Amount
	}

	sum.ByCategory = sortedAmounts(spent)
	sum.Budgets = budgetStatuses(budgets, spent)

	return sum, nil
}

func sortedAmounts(m map[string]int64) []CategoryAmount {
	out := make([]CategoryAmount, 0, len(m))
	for name, amount := range m {
		out = append(out, CategoryAmount{Category: name, Amount: amount})
	}

	slices.SortFunc(out, func(a, b CategoryAmount) int {
		if c := cmp.Compare(b.Amount, a.Amount); c != 0 {
			return c
		}

		return strings.Compare(a.Category, b.Category)
	})

	return out
}

func budgetStatuses(budgets []*Budget, spent map[string]int64) []BudgetStatus {
	out := make([]BudgetStatus, 0, len(budgets))
	for _, b := range budgets {
		out = append(out, BudgetStatus{Category: b.Category, Budget: b.Amount, Spent: spent[b.Category]})
	}

	slices.SortFunc(out, func(a, b BudgetStatus) int {
		return strings.Compare(a.Category, b.Category)
	})

	return out
}

type CategoryReport struct {
	User         *User
	Category     *Category
	Year         int
	Month        time.Month
	Total        int64
	Budget       *BudgetStatus // Nil when the category has no budget this month
	Transactions []*Transaction
}

// CategoryExpenses reports one month of expenses for the first category whose
// name contains query, case-insensitively.
func (s *Service) CategoryExpenses(ctx context.Context, externalID int64, query string, year int, month time.Month) (*CategoryReport, error) {
	u, err := s.FindUser(ctx, externalID)
	if err != nil {
		return nil, err
	}

	cat, err := s.repo.SearchCategory(ctx, u.ID, strings.TrimSpace(query))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrCategoryNotFound
		}

		return nil, fmt.Errorf("searching category: %w", err)
	}

	start, end := monthRange(year, month)
	expense := TypeExpense

	txs, err := s.repo.ListTransactions(ctx, TransactionFilter{
		UserID:     u.ID,
		Type:       &expense,
		CategoryID: &cat.ID,
		StartDate:  &start,
		EndDate:    &end,
	})
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}

	budgets, err := s.repo.ListBudgets(ctx, u.ID, year, month)
	if err != nil {
		return nil, fmt.Errorf("listing budgets: %w", err)
	}

	rep := &CategoryReport{User: u, Category: cat, Year: year, Month: month, Transactions: txs}
	for _, tx := range txs {
		rep.Total += tx.Amount
	}

	for _, b := range budgets {
		if b.CategoryID == cat.ID {
			rep.Budget = &BudgetStatus{Category: cat.Name, Budget: b.Amount, Spent: rep.Total}
			break
		}
	}

	return rep, nil
}

// MonthTotals is one month of a comparison.
type MonthTotals struct {
	Year       int
	Month      time.Month
	Income     int64
	Expense    int64
	ByCategory map[string]int64
}

// MonthlyComparison returns totals for the last months months, oldest first,
// the current month included.
func (s *Service) MonthlyComparison(ctx context.Context, externalID int64, months int) ([]MonthTotals, error) {
	u, err := s.FindUser(ctx, externalID)
	if err != nil {
		return nil, err
	}

	today := s.today()
	current := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	out := make([]MonthTotals, months)

	g, gctx := errgroup.WithContext(ctx)

	for i := range months {
		first := current.AddDate(0, i-months+1, 0)

		g.Go(func() error {
			start, end := monthRange(first.Year(), first.Month())

			txs, err := s.repo.ListTransactions(gctx, TransactionFilter{UserID: u.ID, StartDate: &start, EndDate: &end})
			if err != nil {
				return fmt.Errorf("listing transactions for %s: %w", start.Format("01/2006"), err)
			}

			mt := MonthTotals{Year: first.Year(), Month: first.Month(), ByCategory: make(map[string]int64)}

			for _, tx := range txs {
				if tx.Type == TypeIncome {
					mt.Income += tx.Amount
					continue
				}

				mt.Expense += tx.Amount
				mt.ByCategory[tx.Category] += tx.Amount
			}

			out[i] = mt

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
