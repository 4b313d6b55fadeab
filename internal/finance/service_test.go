package finance_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/finchat/internal/finance"
)

const externalID int64 = 42

func fixedClock() time.Time {
	return time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)
}

func newUser() *finance.User {
	return &finance.User{ID: uuid.New(), ExternalID: externalID, Name: "Ana", Currency: "R$"}
}

func TestService_FindUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := finance.NewMockRepository(ctrl)

	repo.EXPECT().FindUser(gomock.Any(), externalID).Return(nil, finance.ErrNotFound)

	svc := finance.NewService(repo)
	_, err := svc.FindUser(context.Background(), externalID)

	assert.ErrorIs(t, err, finance.ErrNotRegistered)
}

func TestService_RegisterUser(t *testing.T) {
	type args struct {
		params finance.RegisterParams
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(m *finance.MockRepository)
		wantErr   error
	}

	valid := finance.RegisterParams{ExternalID: externalID, Name: " Ana ", Currency: "R$", MonthlyIncome: 500000}

	tests := []testCase{
		{
			name: "CreatesDefaultCategories",
			args: args{params: valid},
			setupMock: func(m *finance.MockRepository) {
				m.EXPECT().FindUser(gomock.Any(), externalID).Return(nil, finance.ErrNotFound)
				m.EXPECT().
					CreateUser(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, u *finance.User, cats []*finance.Category) error {
						assert.Equal(t, "Ana", u.Name)
						assert.Len(t, cats, 13)

						var income int
						for _, c := range cats {
							assert.True(t, c.IsDefault)
							if c.IsIncome {
								income++
							}
						}

						assert.Equal(t, 5, income)

						return nil
					})
			},
		},
		{
			name: "AlreadyRegistered",
			args: args{params: valid},
			setupMock: func(m *finance.MockRepository) {
				m.EXPECT().FindUser(gomock.Any(), externalID).Return(newUser(), nil)
			},
			wantErr: finance.ErrAlreadyRegistered,
		},
		{
			name:    "InvalidCurrency",
			args:    args{params: finance.RegisterParams{ExternalID: externalID, Name: "Ana", Currency: "BTC"}},
			wantErr: finance.ErrInvalidCurrency,
		},
		{
			name:    "NegativeIncome",
			args:    args{params: finance.RegisterParams{ExternalID: externalID, Name: "Ana", Currency: "R$", MonthlyIncome: -1}},
			wantErr: finance.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := finance.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := finance.NewService(repo)
			got, err := svc.RegisterUser(context.Background(), tt.args.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, externalID, got.ExternalID)
		})
	}
}

func TestService_RecordTransaction(t *testing.T) {
	type args struct {
		params finance.TransactionParams
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(m *finance.MockRepository, u *finance.User)
		wantErr   error
		check     func(t *testing.T, tx *finance.Transaction)
	}

	catID := uuid.New()

	tests := []testCase{
		{
			name: "ExistingCategory",
			args: args{params: finance.TransactionParams{
				Type: finance.TypeExpense, Amount: 4590, Category: "Alimentação", Description: "mercado",
				Date: day(2025, 3, 14),
			}},
			setupMock: func(m *finance.MockRepository, u *finance.User) {
				m.EXPECT().FindUser(gomock.Any(), externalID).Return(u, nil)
				m.EXPECT().FindCategory(gomock.Any(), u.ID, "Alimentação", false).
					Return(&finance.Category{ID: catID, UserID: u.ID, Name: "Alimentação"}, nil)
				m.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, tx *finance.Transaction) {
				assert.Equal(t, catID, tx.CategoryID)
				assert.Equal(t, int64(4590), tx.Amount)
				assert.Equal(t, day(2025, 3, 14), tx.Date)
			},
		},
		{
			name: "CreatesMissingCategoryAndDefaultsDate",
			args: args{params: finance.TransactionParams{Type: finance.TypeIncome, Amount: 100, Category: "Bônus"}},
			setupMock: func(m *finance.MockRepository, u *finance.User) {
				m.EXPECT().FindUser(gomock.Any(), externalID).Return(u, nil)
				m.EXPECT().FindCategory(gomock.Any(), u.ID, "Bônus", true).Return(nil, finance.ErrNotFound)
				m.EXPECT().
					CreateCategory(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *finance.Category) error {
						assert.True(t, c.IsIncome)
						c.ID = catID

						return nil
					})
				m.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, tx *finance.Transaction) {
				assert.Equal(t, catID, tx.CategoryID)
				assert.Equal(t, "Bônus", tx.Category)
				assert.Equal(t, day(2025, 3, 15), tx.Date)
			},
		},
		{
			name: "EmptyCategoryIsOther",
			args: args{params: finance.TransactionParams{Type: finance.TypeExpense, Amount: 100}},
			setupMock: func(m *finance.MockRepository, u *finance.User) {
				m.EXPECT().FindUser(gomock.Any(), externalID).Return(u, nil)
				m.EXPECT().FindCategory(gomock.Any(), u.ID, "Outros", false).
					Return(&finance.Category{ID: catID, Name: "Outros"}, nil)
				m.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:    "ZeroAmount",
			args:    args{params: finance.TransactionParams{Type: finance.TypeExpense, Amount: 0}},
			wantErr: finance.ErrInvalidAmount,
		},
		{
			name: "NotRegistered",
			args: args{params: finance.TransactionParams{Type: finance.TypeExpense, Amount: 10}},
			setupMock: func(m *finance.MockRepository, _ *finance.User) {
				m.EXPECT().FindUser(gomock.Any(), externalID).Return(nil, finance.ErrNotFound)
			},
			wantErr: finance.ErrNotRegistered,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			u := newUser()
			repo := finance.NewMockRepository(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(repo, u)
			}

			svc := finance.NewService(repo, finance.WithClock(fixedClock))
			got, err := svc.RecordTransaction(context.Background(), externalID, tt.args.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, u.ID, got.UserID)

			if tt.check != nil {
				tt.check(t, got)
			}
		})
	}
}

func TestService_SetBudget(t *testing.T) {
	t.Run("DefaultsToCurrentMonth", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := finance.NewMockRepository(ctrl)
		u := newUser()
		cat := &finance.Category{ID: uuid.New(), Name: "Lazer"}

		repo.EXPECT().FindUser(gomock.Any(), externalID).Return(u, nil)
		repo.EXPECT().FindCategory(gomock.Any(), u.ID, "lazer", false).Return(cat, nil)
		repo.EXPECT().UpsertBudget(gomock.Any(), gomock.Any()).Return(nil)

		svc := finance.NewService(repo, finance.WithClock(fixedClock))
		got, err := svc.SetBudget(context.Background(), externalID, finance.BudgetParams{Category: "lazer", Amount: 50000})

		require.NoError(t, err)
		assert.Equal(t, cat.ID, got.CategoryID)
		assert.Equal(t, time.March, got.Month)
		assert.Equal(t, 2025, got.Year)
	})

	t.Run("UnknownCategory", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := finance.NewMockRepository(ctrl)
		u := newUser()

		repo.EXPECT().FindUser(gomock.Any(), externalID).Return(u, nil)
		repo.EXPECT().FindCategory(gomock.Any(), u.ID, "xyz", false).Return(nil, finance.ErrNotFound)

		svc := finance.NewService(repo)
		_, err := svc.SetBudget(context.Background(), externalID, finance.BudgetParams{Category: "xyz", Amount: 100})

		assert.ErrorIs(t, err, finance.ErrCategoryNotFound)
	})

	t.Run("ZeroIsAllowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := finance.NewMockRepository(ctrl)
		u := newUser()

		repo.EXPECT().FindUser(gomock.Any(), externalID).Return(u, nil)
		repo.EXPECT().FindCategory(gomock.Any(), u.ID, "Lazer", false).Return(&finance.Category{Name: "Lazer"}, nil)
		repo.EXPECT().UpsertBudget(gomock.Any(), gomock.Any()).Return(nil)

		svc := finance.NewService(repo)
		_, err := svc.SetBudget(context.Background(), externalID, finance.BudgetParams{Category: "Lazer", Amount: 0, Year: 2025, Month: time.May})

		assert.NoError(t, err)
	})
}

func TestService_MarkReminderPaid(t *testing.T) {
	type testCase struct {
		name     string
		reminder func(u *finance.User) *finance.Reminder
		wantNext *time.Time
		wantErr  error
	}

	tests := []testCase{
		{
			name: "OneOff",
			reminder: func(u *finance.User) *finance.Reminder {
				return &finance.Reminder{ID: uuid.New(), UserID: u.ID, Amount: 100, DueDate: day(2025, 3, 10)}
			},
		},
		{
			name: "RecurringSchedulesNext",
			reminder: func(u *finance.User) *finance.Reminder {
				return &finance.Reminder{
					ID: uuid.New(), UserID: u.ID, Amount: 100, DueDate: day(2025, 1, 31),
					IsRecurring: true, Recurrence: finance.RecurrenceMonthly,
				}
			},
			wantNext: new(day(2025, 2, 28)),
		},
		{
			name: "OtherUsersReminder",
			reminder: func(_ *finance.User) *finance.Reminder {
				return &finance.Reminder{ID: uuid.New(), UserID: uuid.New()}
			},
			wantErr: finance.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			u := newUser()
			r := tt.reminder(u)
			repo := finance.NewMockRepository(ctrl)

			repo.EXPECT().FindUser(gomock.Any(), externalID).Return(u, nil)
			repo.EXPECT().GetReminder(gomock.Any(), r.ID).Return(r, nil)

			if tt.wantErr == nil {
				repo.EXPECT().
					PayReminder(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, paid, next *finance.Reminder) error {
						assert.True(t, paid.IsPaid)

						if tt.wantNext == nil {
							assert.Nil(t, next)
							return nil
						}

						require.NotNil(t, next)
						assert.False(t, next.IsPaid)
						assert.Equal(t, *tt.wantNext, next.DueDate)

						return nil
					})
			}

			svc := finance.NewService(repo)
			got, err := svc.MarkReminderPaid(context.Background(), externalID, r.ID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.True(t, got.Paid.IsPaid)
			assert.Equal(t, tt.wantNext != nil, got.Next != nil)
		})
	}
}

func TestService_MarkReminderPaid_SaveFailure(t *testing.T) {
	ctrl := gomock.NewController(t)

	u := newUser()
	r := &finance.Reminder{
		ID: uuid.New(), UserID: u.ID, Amount: 100, DueDate: day(2025, 1, 31),
		IsRecurring: true, Recurrence: finance.RecurrenceMonthly,
	}

	repo := finance.NewMockRepository(ctrl)
	repo.EXPECT().FindUser(gomock.Any(), externalID).Return(u, nil)
	repo.EXPECT().GetReminder(gomock.Any(), r.ID).Return(r, nil)
	repo.EXPECT().PayReminder(gomock.Any(), r, gomock.Not(gomock.Nil())).Return(errors.New("insert failed"))

	_, err := finance.NewService(repo).MarkReminderPaid(context.Background(), externalID, r.ID)

	require.Error(t, err)
	assert.False(t, r.IsPaid)
}

func TestService_PendingReminders(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := finance.NewMockRepository(ctrl)

	repo.EXPECT().
		ListReminders(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f finance.ReminderFilter) ([]*finance.Reminder, error) {
			assert.Nil(t, f.UserID)
			assert.False(t, f.IncludePaid)
			require.NotNil(t, f.DueTo)
			assert.Equal(t, day(2025, 3, 18), *f.DueTo)

			return nil, nil
		})

	svc := finance.NewService(repo, finance.WithClock(fixedClock))
	_, err := svc.PendingReminders(context.Background(), 3)

	assert.NoError(t, err)
}

func TestService_MonthlySummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := finance.NewMockRepository(ctrl)
	u := newUser()

	repo.EXPECT().FindUser(gomock.Any(), externalID).Return(u, nil)
	repo.EXPECT().
		ListTransactions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f finance.TransactionFilter) ([]*finance.Transaction, error) {
			assert.Equal(t, day(2025, 2, 1), *f.StartDate)
			assert.Equal(t, day(2025, 2, 28), *f.EndDate)

			return []*finance.Transaction{
				{Type: finance.TypeIncome, Amount: 500000, Category: "Salário"},
				{Type: finance.TypeExpense, Amount: 20000, Category: "Lazer"},
				{Type: finance.TypeExpense, Amount: 30000, Category: "Alimentação"},
				{Type: finance.TypeExpense, Amount: 15000, Category: "Lazer"},
			}, nil
		})
	repo.EXPECT().ListBudgets(gomock.Any(), u.ID, 2025, time.February).Return([]*finance.Budget{
		{Category: "Lazer", Amount: 40000},
		{Category: "Educação", Amount: 10000},
	}, nil)
	repo.EXPECT().ListFutureIncomes(gomock.Any(), gomock.Any()).Return(nil, nil)
	repo.EXPECT().ListReminders(gomock.Any(), gomock.Any()).Return(nil, nil)

	svc := finance.NewService(repo)
	got, err := svc.MonthlySummary(context.Background(), externalID, 2025, time.February)

	require.NoError(t, err)
	assert.Equal(t, int64(500000), got.Income)
	assert.Equal(t, int64(65000), got.Expense)
	assert.Equal(t, int64(435000), got.Balance())
	assert.Equal(t, []finance.CategoryAmount{
		{Category: "Lazer", Amount: 35000},
		{Category: "Alimentação", Amount: 30000},
	}, got.ByCategory)
	assert.Equal(t, []finance.BudgetStatus{
		{Category: "Educação", Budget: 10000, Spent: 0},
		{Category: "Lazer", Budget: 40000, Spent: 35000},
	}, got.Budgets)
}

func TestService_MonthlySummary_ReadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := finance.NewMockRepository(ctrl)
	u := newUser()

	repo.EXPECT().FindUser(gomock.Any(), externalID).Return(u, nil)
	repo.EXPECT().ListTransactions(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
	repo.EXPECT().ListBudgets(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	repo.EXPECT().ListFutureIncomes(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	repo.EXPECT().ListReminders(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	svc := finance.NewService(repo)
	_, err := svc.MonthlySummary(context.Background(), externalID, 2025, time.February)

	assert.ErrorContains(t, err, "db down")
}

func TestService_MonthlyComparison(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := finance.NewMockRepository(ctrl)
	u := newUser()

	repo.EXPECT().FindUser(gomock.Any(), externalID).Return(u, nil)
	repo.EXPECT().
		ListTransactions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f finance.TransactionFilter) ([]*finance.Transaction, error) {
			return []*finance.Transaction{
				{Type: finance.TypeExpense, Amount: int64(f.StartDate.Month()) * 100, Category: "Lazer"},
			}, nil
		}).
		Times(3)

	svc := finance.NewService(repo, finance.WithClock(fixedClock))
	got, err := svc.MonthlyComparison(context.Background(), externalID, 3)

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, time.January, got[0].Month)
	assert.Equal(t, time.March, got[2].Month)
	assert.Equal(t, int64(200), got[1].Expense)
	assert.Equal(t, int64(300), got[2].ByCategory["Lazer"])
}

func TestService_ImportBatch(t *testing.T) {
	rows := []finance.TransactionParams{
		{Type: finance.TypeExpense, Amount: 1000, Category: "Lazer", RawDescription: "CINEMA", Date: day(2025, 3, 1)},
		{Type: finance.TypeExpense, Amount: 2000, Category: "lazer", RawDescription: "BAR", Date: day(2025, 3, 2)},
	}

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := finance.NewMockRepository(ctrl)
		itx := finance.NewMockImportTx(ctrl)
		u := newUser()

		repo.EXPECT().FindUser(gomock.Any(), externalID).Return(u, nil)
		repo.EXPECT().BeginImport(gomock.Any(), u.ID).Return(itx, nil)
		itx.EXPECT().FindDuplicates(gomock.Any(), rows).Return(nil, nil)
		repo.EXPECT().FindCategory(gomock.Any(), u.ID, "Lazer", false).
			Return(&finance.Category{ID: uuid.New(), Name: "Lazer"}, nil).
			Times(1)
		itx.EXPECT().CreateTransactions(gomock.Any(), gomock.Len(2)).Return(nil)
		itx.EXPECT().Commit().Return(nil)
		itx.EXPECT().Rollback().Return(nil)

		svc := finance.NewService(repo)
		got, err := svc.ImportBatch(context.Background(), externalID, rows)

		require.NoError(t, err)
		assert.Len(t, got.Imported, 2)
		assert.Empty(t, got.Conflicts)
	})

	t.Run("Conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := finance.NewMockRepository(ctrl)
		itx := finance.NewMockImportTx(ctrl)
		u := newUser()

		existing := &finance.Transaction{Type: finance.TypeExpense, Amount: 1000, RawDescription: "CINEMA", Date: day(2025, 3, 1)}

		repo.EXPECT().FindUser(gomock.Any(), externalID).Return(u, nil)
		repo.EXPECT().BeginImport(gomock.Any(), u.ID).Return(itx, nil)
		itx.EXPECT().FindDuplicates(gomock.Any(), rows).Return([]*finance.Transaction{existing}, nil)
		itx.EXPECT().Rollback().Return(nil)

		svc := finance.NewService(repo)
		got, err := svc.ImportBatch(context.Background(), externalID, rows)

		require.NoError(t, err)
		require.Len(t, got.Conflicts, 1)
		assert.Same(t, existing, got.Conflicts[0].Existing)
		assert.Equal(t, []finance.TransactionParams{rows[1]}, got.New)
		assert.Empty(t, got.Imported)
	})
}
