// Package reminder notifies users about bills coming due and serves the
// reminder list with its pay and delete actions.
package reminder

//go:generate mockgen -source=scanner.go -destination=scanner_mock.go -package=reminder

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/finchat/internal/chat"
	"github.com/MrJamesThe3rd/finchat/internal/finance"
)

const (
	DefaultInterval = time.Hour
	// LookaheadDays bounds the reminders loaded per scan.
	LookaheadDays = 3
	// Only reminders due within notifyDays (or overdue) are sent.
	notifyDays  = 1
	renotifyGap = 24 * time.Hour
)

type Finance interface {
	FindUser(ctx context.Context, externalID int64) (*finance.User, error)
	PendingReminders(ctx context.Context, daysAhead int) ([]*finance.Reminder, error)
	MarkReminderNotified(ctx context.Context, id uuid.UUID, at time.Time) error
}

// Notifier delivers a message outside of a conversation.
type Notifier interface {
	Notify(ctx context.Context, externalID int64, reply chat.Reply) error
}

type Scanner struct {
	finance  Finance
	notifier Notifier
	now      func() time.Time
	log      *slog.Logger
}

type ScannerOption func(*Scanner)

func WithClock(now func() time.Time) ScannerOption {
	return func(s *Scanner) { s.now = now }
}

func WithLogger(l *slog.Logger) ScannerOption {
	return func(s *Scanner) { s.log = l }
}

func NewScanner(fin Finance, notifier Notifier, opts ...ScannerOption) *Scanner {
	s := &Scanner{
		finance:  fin,
		notifier: notifier,
		now:      time.Now,
		log:      slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Run scans once and then on every tick until ctx is done.
func (s *Scanner) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if n, err := s.Scan(ctx); err != nil {
			s.log.Error("failed to scan reminders", "error", err)
		} else if n > 0 {
			s.log.Info("sent reminder notifications", "count", n)
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Scan notifies every user with reminders due today, tomorrow or overdue that
// were not notified in the last 24 hours. It returns how many users were
// notified. A failed delivery leaves the reminders to the next scan.
func (s *Scanner) Scan(ctx context.Context) (int, error) {
	now := s.now()

	rs, err := s.finance.PendingReminders(ctx, LookaheadDays)
	if err != nil {
		return 0, fmt.Errorf("loading pending reminders: %w", err)
	}

	byUser := make(map[int64][]*finance.Reminder)

	for _, r := range rs {
		if r.IsPaid || !due(r, now) {
			continue
		}

		byUser[r.ExternalID] = append(byUser[r.ExternalID], r)
	}

	users := make([]int64, 0, len(byUser))
	for id := range byUser {
		users = append(users, id)
	}

	slices.Sort(users)

	sent := 0

	for _, externalID := range users {
		if err := s.notify(ctx, externalID, byUser[externalID], now); err != nil {
			s.log.Error("failed to notify reminders", "error", err, "user_id", externalID)
			continue
		}

		sent++
	}

	return sent, nil
}

func (s *Scanner) notify(ctx context.Context, externalID int64, rs []*finance.Reminder, now time.Time) error {
	u, err := s.finance.FindUser(ctx, externalID)
	if err != nil {
		return fmt.Errorf("finding user: %w", err)
	}

	slices.SortFunc(rs, func(a, b *finance.Reminder) int {
		return cmp.Compare(a.DueDate.Unix(), b.DueDate.Unix())
	})

	if err := s.notifier.Notify(ctx, externalID, Notification(u.Currency, rs, now)); err != nil {
		return fmt.Errorf("sending notification: %w", err)
	}

	for _, r := range rs {
		if err := s.finance.MarkReminderNotified(ctx, r.ID, now); err != nil {
			return fmt.Errorf("marking reminder %s notified: %w", r.ID, err)
		}
	}

	return nil
}

func due(r *finance.Reminder, now time.Time) bool {
	if r.LastNotification != nil && now.Sub(*r.LastNotification) <= renotifyGap {
		return false
	}

	return daysUntil(r.DueDate, now) <= notifyDays
}

func daysUntil(due, now time.Time) int {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	day := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, time.UTC)

	return int(day.Sub(today).Hours() / 24)
}

// Notification renders the bill reminder message.
func Notification(currency string, rs []*finance.Reminder, now time.Time) chat.Reply {
	var b strings.Builder

	b.WriteString("🔔 <b>Lembrete de contas a pagar:</b>\n\n")

	for _, r := range rs {
		fmt.Fprintf(&b, "• %s: %s - %s\n", r.Description, finance.FormatMoney(currency, r.Amount), dueLabel(daysUntil(r.DueDate, now)))
	}

	return chat.HTML(b.String())
}

func dueLabel(days int) string {
	switch {
	case days == 0:
		return "Vence HOJE"
	case days == 1:
		return "Vence AMANHÃ"
	case days < 0:
		return fmt.Sprintf("Venceu há %d dia(s)", -days)
	default:
		return fmt.Sprintf("Vence em %d dias", days)
	}
}
