package finance

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/finchat/internal/extract"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=finance
type Repository interface {
	FindUser(ctx context.Context, externalID int64) (*User, error)
	CreateUser(ctx context.Context, u *User, categories []*Category) error

	ListCategories(ctx context.Context, userID uuid.UUID, income bool) ([]*Category, error)
	FindCategory(ctx context.Context, userID uuid.UUID, name string, income bool) (*Category, error)
	SearchCategory(ctx context.Context, userID uuid.UUID, query string) (*Category, error)
	CreateCategory(ctx context.Context, c *Category) error

	CreateTransaction(ctx context.Context, tx *Transaction) error
	ListTransactions(ctx context.Context, filter TransactionFilter) ([]*Transaction, error)

	UpsertBudget(ctx context.Context, b *Budget) error
	ListBudgets(ctx context.Context, userID uuid.UUID, year int, month time.Month) ([]*Budget, error)

	CreateReminder(ctx context.Context, r *Reminder) error
	GetReminder(ctx context.Context, id uuid.UUID) (*Reminder, error)
	ListReminders(ctx context.Context, filter ReminderFilter) ([]*Reminder, error)
	UpdateReminder(ctx context.Context, r *Reminder) error
	// PayReminder saves paid and, when next is set, creates next in the same
	// transaction.
	PayReminder(ctx context.Context, paid, next *Reminder) error
	DeleteReminder(ctx context.Context, id uuid.UUID) error

	CreateFutureIncome(ctx context.Context, f *FutureIncome) error
	ListFutureIncomes(ctx context.Context, filter FutureIncomeFilter) ([]*FutureIncome, error)

	BeginImport(ctx context.Context, userID uuid.UUID) (ImportTx, error)
}

// ImportTx is a batch insert scoped to one user. Implementations serialize
// concurrent imports for the same user.
type ImportTx interface {
	FindDuplicates(ctx context.Context, params []TransactionParams) ([]*Transaction, error)
	CreateTransactions(ctx context.Context, txs []*Transaction) error
	Commit() error
	Rollback() error
}

type TransactionFilter struct {
	UserID     uuid.UUID
	Type       *Type
	CategoryID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
}

// ReminderFilter selects unpaid reminders unless IncludePaid is set. A nil
// UserID matches every user.
type ReminderFilter struct {
	UserID      *uuid.UUID
	IncludePaid bool
	DueFrom     *time.Time
	DueTo       *time.Time
}

type FutureIncomeFilter struct {
	UserID          uuid.UUID
	From            *time.Time
	To              *time.Time
	IncludeReceived bool
}

type Service struct {
	repo Repository
	now  func() time.Time
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{repo: repo, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Service) today() time.Time {
	n := s.now().UTC()
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
}

// FindUser returns ErrNotRegistered when no user has the external id.
func (s *Service) FindUser(ctx context.Context, externalID int64) (*User, error) {
	u, err := s.repo.FindUser(ctx, externalID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotRegistered
		}

		return nil, fmt.Errorf("finding user: %w", err)
	}

	return u, nil
}

type RegisterParams struct {
	ExternalID    int64
	Name          string
	Currency      string
	MonthlyIncome int64
}

// RegisterUser creates the user together with the default expense and
// income categories.
func (s *Service) RegisterUser(ctx context.Context, params RegisterParams) (*User, error) {
	if !ValidCurrency(params.Currency) {
		return nil, ErrInvalidCurrency
	}

	if params.MonthlyIncome < 0 {
		return nil, ErrInvalidAmount
	}

	_, err := s.FindUser(ctx, params.ExternalID)
	if err == nil {
		return nil, ErrAlreadyRegistered
	}

	if !errors.Is(err, ErrNotRegistered) {
		return nil, err
	}

	u := &User{
		ExternalID:    params.ExternalID,
		Name:          strings.TrimSpace(params.Name),
		Currency:      params.Currency,
		MonthlyIncome: params.MonthlyIncome,
	}

	var cats []*Category
	for _, name := range extract.ExpenseCategories() {
		cats = append(cats, &Category{Name: name, IsDefault: true})
	}

	for _, name := range extract.IncomeCategories() {
		cats = append(cats, &Category{Name: name, IsIncome: true, IsDefault: true})
	}

	if err := s.repo.CreateUser(ctx, u, cats); err != nil {
		return nil, fmt.Errorf("registering user: %w", err)
	}

	return u, nil
}

func (s *Service) ListCategories(ctx context.Context, externalID int64, income bool) ([]*Category, error) {
	u, err := s.FindUser(ctx, externalID)
	if err != nil {
		return nil, err
	}

	return s.repo.ListCategories(ctx, u.ID, income)
}

// resolveCategory finds the named category, creating it when missing. An
// empty name resolves to Outros.
func (s *Service) resolveCategory(ctx context.Context, userID uuid.UUID, name string, income bool) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = extract.Other
	}

	c, err := s.repo.FindCategory(ctx, userID, name, income)
	if err == nil {
		return c, nil
	}

	if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("finding category: %w", err)
	}

	c = &Category{UserID: userID, Name: name, IsIncome: income}
	if err := s.repo.CreateCategory(ctx, c); err != nil {
		return nil, fmt.Errorf("creating category: %w", err)
	}

	return c, nil
}

type TransactionParams struct {
	Type           Type
	Amount         int64
	Category       string
	Description    string
	RawDescription string
	Date           time.Time
}

// RecordTransaction stores an expense or income for the user. A category the
// user does not have yet is created.
func (s *Service) RecordTransaction(ctx context.Context, externalID int64, params TransactionParams) (*Transaction, error) {
	if params.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	u, err := s.FindUser(ctx, externalID)
	if err != nil {
		return nil, err
	}

	cat, err := s.resolveCategory(ctx, u.ID, params.Category, params.Type == TypeIncome)
	if err != nil {
		return nil, err
	}

	tx := s.newTransaction(u.ID, cat, params)
	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, fmt.Errorf("recording transaction: %w", err)
	}

	return tx, nil
}

func (s *Service) newTransaction(userID uuid.UUID, cat *Category, p TransactionParams) *Transaction {
	date := p.Date
	if date.IsZero() {
		date = s.today()
	}

	return &Transaction{
		UserID:         userID,
		CategoryID:     cat.ID,
		Category:       cat.Name,
		Amount:         p.Amount,
		Type:           p.Type,
		Description:    p.Description,
		RawDescription: p.RawDescription,
		Date:           date,
	}
}

// ListUserTransactions returns the user's transactions between from and to,
// either of which may be nil.
func (s *Service) ListUserTransactions(ctx context.Context, externalID int64, from, to *time.Time) ([]*Transaction, error) {
	u, err := s.FindUser(ctx, externalID)
	if err != nil {
		return nil, err
	}

	txs, err := s.repo.ListTransactions(ctx, TransactionFilter{UserID: u.ID, StartDate: from, EndDate: to})
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}

	return txs, nil
}

type BudgetParams struct {
	Category string
	Amount   int64
	Year     int
	Month    time.Month
}

// SetBudget creates or replaces the budget of an existing expense category.
// A zero Year or Month means the current one.
func (s *Service) SetBudget(ctx context.Context, externalID int64, params BudgetParams) (*Budget, error) {
	if params.Amount < 0 {
		return nil, ErrInvalidAmount
	}

	u, err := s.FindUser(ctx, externalID)
	if err != nil {
		return nil, err
	}

	cat, err := s.repo.FindCategory(ctx, u.ID, params.Category, false)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrCategoryNotFound
		}

		return nil, fmt.Errorf("finding category: %w", err)
	}

	today := s.today()
	if params.Year == 0 {
		params.Year = today.Year()
	}

	if params.Month == 0 {
		params.Month = today.Month()
	}

	b := &Budget{
		UserID:     u.ID,
		CategoryID: cat.ID,
		Category:   cat.Name,
		Amount:     params.Amount,
		Month:      params.Month,
		Year:       params.Year,
	}
	if err := s.repo.UpsertBudget(ctx, b); err != nil {
		return nil, fmt.Errorf("setting budget: %w", err)
	}

	return b, nil
}

type ReminderParams struct {
	Description   string
	Amount        int64
	DueDate       time.Time
	IsRecurring   bool
	Recurrence    Recurrence
	RecurrenceDay *int
}

func (s *Service) AddReminder(ctx context.Context, externalID int64, params ReminderParams) (*Reminder, error) {
	if params.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	u, err := s.FindUser(ctx, externalID)
	if err != nil {
		return nil, err
	}

	r := &Reminder{
		UserID:        u.ID,
		ExternalID:    u.ExternalID,
		Description:   params.Description,
		Amount:        params.Amount,
		DueDate:       params.DueDate,
		IsRecurring:   params.IsRecurring,
		Recurrence:    params.Recurrence,
		RecurrenceDay: params.RecurrenceDay,
	}
	if !r.IsRecurring {
		r.Recurrence = ""
		r.RecurrenceDay = nil
	}

	if err := s.repo.CreateReminder(ctx, r); err != nil {
		return nil, fmt.Errorf("adding reminder: %w", err)
	}

	return r, nil
}

// PendingReminders returns unpaid reminders of every user due within
// daysAhead days, overdue ones included.
func (s *Service) PendingReminders(ctx context.Context, daysAhead int) ([]*Reminder, error) {
	to := s.today().AddDate(0, 0, daysAhead)

	rs, err := s.repo.ListReminders(ctx, ReminderFilter{DueTo: &to})
	if err != nil {
		return nil, fmt.Errorf("listing pending reminders: %w", err)
	}

	return rs, nil
}

// UserReminders returns the user's unpaid reminders ordered by due date.
func (s *Service) UserReminders(ctx context.Context, externalID int64) ([]*Reminder, error) {
	u, err := s.FindUser(ctx, externalID)
	if err != nil {
		return nil, err
	}

	rs, err := s.repo.ListReminders(ctx, ReminderFilter{UserID: &u.ID})
	if err != nil {
		return nil, fmt.Errorf("listing reminders: %w", err)
	}

	return rs, nil
}

// userReminder loads a reminder and checks it belongs to the user.
func (s *Service) userReminder(ctx context.Context, externalID int64, id uuid.UUID) (*Reminder, error) {
	u, err := s.FindUser(ctx, externalID)
	if err != nil {
		return nil, err
	}

	r, err := s.repo.GetReminder(ctx, id)
	if err != nil {
		return nil, err
	}

	if r.UserID != u.ID {
		return nil, ErrNotFound
	}

	return r, nil
}

type PaymentResult struct {
	Paid *Reminder
	Next *Reminder // Set when the paid reminder recurs
}

// MarkReminderPaid marks the reminder paid. A recurring reminder gets its next
// occurrence scheduled as a new unpaid reminder.
func (s *Service) MarkReminderPaid(ctx context.Context, externalID int64, id uuid.UUID) (*PaymentResult, error) {
	r, err := s.userReminder(ctx, externalID, id)
	if err != nil {
		return nil, err
	}

	r.IsPaid = true

	var next *Reminder
	if r.IsRecurring {
		next = &Reminder{
			UserID:        r.UserID,
			ExternalID:    r.ExternalID,
			Description:   r.Description,
			Amount:        r.Amount,
			DueDate:       r.Recurrence.Next(r.DueDate, r.RecurrenceDay),
			IsRecurring:   true,
			Recurrence:    r.Recurrence,
			RecurrenceDay: r.RecurrenceDay,
		}
	}

	if err := s.repo.PayReminder(ctx, r, next); err != nil {
		r.IsPaid = false
		return nil, fmt.Errorf("marking reminder paid: %w", err)
	}

	return &PaymentResult{Paid: r, Next: next}, nil
}

func (s *Service) DeleteReminder(ctx context.Context, externalID int64, id uuid.UUID) error {
	if _, err := s.userReminder(ctx, externalID, id); err != nil {
		return err
	}

	if err := s.repo.DeleteReminder(ctx, id); err != nil {
		return fmt.Errorf("deleting reminder: %w", err)
	}

	return nil
}

// MarkReminderNotified records when a notification for the reminder was sent.
func (s *Service) MarkReminderNotified(ctx context.Context, id uuid.UUID, at time.Time) error {
	r, err := s.repo.GetReminder(ctx, id)
	if err != nil {
		return err
	}

	r.LastNotification = &at
	if err := s.repo.UpdateReminder(ctx, r); err != nil {
		return fmt.Errorf("marking reminder notified: %w", err)
	}

	return nil
}

type FutureIncomeParams struct {
	Description  string
	Amount       int64
	ExpectedDate time.Time
	Category     string
}

func (s *Service) AddFutureIncome(ctx context.Context, externalID int64, params FutureIncomeParams) (*FutureIncome, error) {
	if params.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	u, err := s.FindUser(ctx, externalID)
	if err != nil {
		return nil, err
	}

	cat, err := s.resolveCategory(ctx, u.ID, params.Category, true)
	if err != nil {
		return nil, err
	}

	f := &FutureIncome{
		UserID:       u.ID,
		CategoryID:   cat.ID,
		Category:     cat.Name,
		Description:  params.Description,
		Amount:       params.Amount,
		ExpectedDate: params.ExpectedDate,
	}
	if err := s.repo.CreateFutureIncome(ctx, f); err != nil {
		return nil, fmt.Errorf("adding future income: %w", err)
	}

	return f, nil
}
