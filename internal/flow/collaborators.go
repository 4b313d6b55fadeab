package flow

//go:generate mockgen -source=collaborators.go -destination=collaborators_mock.go -package=flow

import (
	"context"
	"log/slog"
	"time"

	"github.com/MrJamesThe3rd/finchat/internal/export"
	"github.com/MrJamesThe3rd/finchat/internal/extract"
	"github.com/MrJamesThe3rd/finchat/internal/finance"
)

// Finance is the part of finance.Service the flows complete against.
type Finance interface {
	RegisterUser(ctx context.Context, params finance.RegisterParams) (*finance.User, error)
	ListCategories(ctx context.Context, externalID int64, income bool) ([]*finance.Category, error)
	RecordTransaction(ctx context.Context, externalID int64, params finance.TransactionParams) (*finance.Transaction, error)
	SetBudget(ctx context.Context, externalID int64, params finance.BudgetParams) (*finance.Budget, error)
	AddReminder(ctx context.Context, externalID int64, params finance.ReminderParams) (*finance.Reminder, error)
	AddFutureIncome(ctx context.Context, externalID int64, params finance.FutureIncomeParams) (*finance.FutureIncome, error)
	ListUserTransactions(ctx context.Context, externalID int64, from, to *time.Time) ([]*finance.Transaction, error)
}

type Exporter interface {
	Export(format export.Format, txs []*finance.Transaction) (*export.File, error)
}

// Learner remembers which category a description was filed under.
type Learner interface {
	Learn(ctx context.Context, externalID int64, description, category string, income bool) error
}

type Deps struct {
	Finance   Finance
	Exporter  Exporter
	Learner   Learner
	Extractor *extract.Extractor
	Logger    *slog.Logger
}

// Definitions returns every flow wired to deps.
func Definitions(deps Deps) []Flow {
	if deps.Extractor == nil {
		deps.Extractor = extract.New()
	}

	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}

	return []Flow{
		registrationFlow(deps),
		transactionFlow(deps, finance.TypeExpense),
		transactionFlow(deps, finance.TypeIncome),
		budgetFlow(deps),
		reminderFlow(deps),
		futureIncomeFlow(deps),
		exportFlow(deps),
	}
}
