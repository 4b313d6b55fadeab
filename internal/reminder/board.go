package reminder

//go:generate mockgen -source=board.go -destination=board_mock.go -package=reminder

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/finchat/internal/chat"
	"github.com/MrJamesThe3rd/finchat/internal/finance"
)

const (
	PayloadList = "reminder:list"
	// PayloadNew starts the reminder creation flow.
	PayloadNew = "reminder:new"
)

type Action string

const (
	ActionSelect Action = "select"
	ActionPay    Action = "pay"
	ActionDelete Action = "delete"
)

const notFoundMessage = "Não foi possível encontrar o lembrete."

// Payload builds the option value of an action on one reminder.
func Payload(action Action, id uuid.UUID) string {
	return "reminder:" + string(action) + ":" + id.String()
}

// ParseAction reads a payload built by Payload.
func ParseAction(payload string) (Action, uuid.UUID, bool) {
	rest, ok := strings.CutPrefix(payload, "reminder:")
	if !ok {
		return "", uuid.Nil, false
	}

	action, raw, ok := strings.Cut(rest, ":")
	if !ok {
		return "", uuid.Nil, false
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return "", uuid.Nil, false
	}

	switch a := Action(action); a {
	case ActionSelect, ActionPay, ActionDelete:
		return a, id, true
	}

	return "", uuid.Nil, false
}

type Ledger interface {
	UserReminders(ctx context.Context, externalID int64) ([]*finance.Reminder, error)
	MarkReminderPaid(ctx context.Context, externalID int64, id uuid.UUID) (*finance.PaymentResult, error)
	DeleteReminder(ctx context.Context, externalID int64, id uuid.UUID) error
}

// Board lists a user's pending reminders and applies the actions picked on
// them.
type Board struct {
	ledger Ledger
}

func NewBoard(ledger Ledger) *Board {
	return &Board{ledger: ledger}
}

// Handle runs the action encoded in payload.
func (b *Board) Handle(ctx context.Context, externalID int64, payload string) ([]chat.Reply, error) {
	if payload == PayloadList {
		return b.List(ctx, externalID)
	}

	action, id, ok := ParseAction(payload)
	if !ok {
		return nil, fmt.Errorf("unknown reminder action %q", payload)
	}

	switch action {
	case ActionPay:
		return b.Pay(ctx, externalID, id)
	case ActionDelete:
		return b.Delete(ctx, externalID, id)
	default:
		return b.Select(ctx, externalID, id)
	}
}

func (b *Board) List(ctx context.Context, externalID int64) ([]chat.Reply, error) {
	rs, err := b.ledger.UserReminders(ctx, externalID)
	if err != nil {
		return nil, fmt.Errorf("listing reminders: %w", err)
	}

	if len(rs) == 0 {
		return []chat.Reply{chat.Text("Você não tem lembretes pendentes. Use o comando /lembrete para adicionar um novo lembrete.").WithMenu()}, nil
	}

	opts := make([]chat.Option, 0, len(rs)+1)
	for _, r := range rs {
		opts = append(opts, chat.Option{
			Label: fmt.Sprintf("%s - %s - %s", r.Description, r.DueDate.Format("02/01"), finance.FormatAmount(r.Amount)),
			Value: Payload(ActionSelect, r.ID),
		})
	}

	opts = append(opts, chat.Option{Label: "➕ Novo Lembrete", Value: PayloadNew})

	return []chat.Reply{{Text: "Seus lembretes pendentes:", Options: opts}}, nil
}

func (b *Board) Select(ctx context.Context, externalID int64, id uuid.UUID) ([]chat.Reply, error) {
	rs, err := b.ledger.UserReminders(ctx, externalID)
	if err != nil {
		return nil, fmt.Errorf("listing reminders: %w", err)
	}

	for _, r := range rs {
		if r.ID != id {
			continue
		}

		return []chat.Reply{{
			Text: fmt.Sprintf("O que você deseja fazer com o lembrete \"%s\"?", r.Description),
			Options: []chat.Option{
				{Label: "✅ Marcar como pago", Value: Payload(ActionPay, id)},
				{Label: "🗑️ Excluir", Value: Payload(ActionDelete, id)},
				{Label: "🔙 Voltar", Value: PayloadList},
			},
		}}, nil
	}

	return []chat.Reply{chat.Text(notFoundMessage).WithMenu()}, nil
}

func (b *Board) Pay(ctx context.Context, externalID int64, id uuid.UUID) ([]chat.Reply, error) {
	res, err := b.ledger.MarkReminderPaid(ctx, externalID, id)
	if errors.Is(err, finance.ErrNotFound) {
		return []chat.Reply{chat.Text(notFoundMessage).WithMenu()}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("paying reminder: %w", err)
	}

	text := fmt.Sprintf("✅ Lembrete '%s' marcado como pago!", res.Paid.Description)
	if res.Next != nil {
		text += "\n📅 Próximo vencimento: " + res.Next.DueDate.Format("02/01/2006")
	}

	return []chat.Reply{chat.Text(text).WithMenu()}, nil
}

func (b *Board) Delete(ctx context.Context, externalID int64, id uuid.UUID) ([]chat.Reply, error) {
	err := b.ledger.DeleteReminder(ctx, externalID, id)
	if errors.Is(err, finance.ErrNotFound) {
		return []chat.Reply{chat.Text(notFoundMessage).WithMenu()}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("deleting reminder: %w", err)
	}

	return []chat.Reply{chat.Text("🗑️ Lembrete excluído.").WithMenu()}, nil
}
