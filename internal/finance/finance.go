// Package finance holds the personal-finance domain: users, categories,
// transactions, budgets, reminders and projected incomes.
package finance

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Type represents the type of transaction (income or expense).
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// Label is the pt-BR name shown to users and written to exports.
func (t Type) Label() string {
	if t == TypeIncome {
		return "Receita"
	}

	return "Despesa"
}

// Currencies are the symbols a user may pick at registration.
var Currencies = []string{"R$", "$", "€", "£"}

func ValidCurrency(s string) bool {
	return slices.Contains(Currencies, s)
}

// User is a registered chat user. ExternalID is the chat transport's user id.
type User struct {
	ID            uuid.UUID
	ExternalID    int64
	Name          string
	Currency      string
	MonthlyIncome int64 // Amount in cents
	CreatedAt     time.Time
}

type Category struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	IsIncome  bool
	IsDefault bool
}

// Transaction represents a recorded income or expense.
type Transaction struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	CategoryID     uuid.UUID
	Category       string // Loaded via JOIN
	Amount         int64  // Amount in cents
	Type           Type
	Description    string
	RawDescription string
	Date           time.Time
	CreatedAt      time.Time
}

// Budget is a monthly spending limit for one expense category.
type Budget struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Category   string
	Amount     int64
	Month      time.Month
	Year       int
}

type Reminder struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	ExternalID       int64 // Loaded via JOIN, used to address notifications
	Description      string
	Amount           int64
	DueDate          time.Time
	IsPaid           bool
	IsRecurring      bool
	Recurrence       Recurrence
	RecurrenceDay    *int
	LastNotification *time.Time
	CreatedAt        time.Time
}

// FutureIncome is an income the user expects to receive.
type FutureIncome struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	CategoryID   uuid.UUID
	Category     string
	Description  string
	Amount       int64
	ExpectedDate time.Time
	IsReceived   bool
	CreatedAt    time.Time
}

// Recurrence is how often a recurring reminder repeats.
type Recurrence string

const (
	RecurrenceMonthly    Recurrence = "monthly"
	RecurrenceWeekly     Recurrence = "weekly"
	RecurrenceBiweekly   Recurrence = "biweekly"
	RecurrenceBimonthly  Recurrence = "bimonthly"
	RecurrenceQuarterly  Recurrence = "quarterly"
	RecurrenceSemiannual Recurrence = "semiannual"
	RecurrenceAnnual     Recurrence = "annual"
)

var recurrenceLabels = []struct {
	recurrence Recurrence
	label      string
}{
	{RecurrenceMonthly, "Mensal"},
	{RecurrenceWeekly, "Semanal"},
	{RecurrenceBiweekly, "Quinzenal"},
	{RecurrenceBimonthly, "Bimestral"},
	{RecurrenceQuarterly, "Trimestral"},
	{RecurrenceSemiannual, "Semestral"},
	{RecurrenceAnnual, "Anual"},
}

// Recurrences lists every recurrence in menu order.
func Recurrences() []Recurrence {
	out := make([]Recurrence, len(recurrenceLabels))
	for i, l := range recurrenceLabels {
		out[i] = l.recurrence
	}

	return out
}

func (r Recurrence) Label() string {
	for _, l := range recurrenceLabels {
		if l.recurrence == r {
			return l.label
		}
	}

	return string(r)
}

// ParseRecurrence accepts either the identifier or the pt-BR label.
func ParseRecurrence(s string) (Recurrence, bool) {
	s = strings.ToLower(strings.TrimSpace(s))

	for _, l := range recurrenceLabels {
		if s == string(l.recurrence) || s == strings.ToLower(l.label) {
			return l.recurrence, true
		}
	}

	return "", false
}

// Next returns the occurrence after due. Month-based recurrences keep day
// (or due's day when day is nil), clamped to the length of the target month.
func (r Recurrence) Next(due time.Time, day *int) time.Time {
	switch r {
	case RecurrenceWeekly:
		return due.AddDate(0, 0, 7)
	case RecurrenceBiweekly:
		return due.AddDate(0, 0, 14)
	}

	months := map[Recurrence]int{
		RecurrenceMonthly:    1,
		RecurrenceBimonthly:  2,
		RecurrenceQuarterly:  3,
		RecurrenceSemiannual: 6,
		RecurrenceAnnual:     12,
	}[r]
	if months == 0 {
		months = 1
	}

	d := due.Day()
	if day != nil {
		d = *day
	}

	return addMonths(due, months, d)
}

func addMonths(t time.Time, months, day int) time.Time {
	first := time.Date(t.Year(), t.Month()+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1).Day()

	return time.Date(first.Year(), first.Month(), min(day, last), 0, 0, 0, 0, time.UTC)
}

// monthRange returns the first and last day of a month.
func monthRange(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

	return start, start.AddDate(0, 1, -1)
}
