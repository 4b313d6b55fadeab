package flow

import (
	"context"
	"fmt"
	"time"

	"github.com/MrJamesThe3rd/finchat/internal/chat"
	"github.com/MrJamesThe3rd/finchat/internal/extract"
	"github.com/MrJamesThe3rd/finchat/internal/finance"
	"github.com/MrJamesThe3rd/finchat/internal/intent"
)

type reminderDraft struct {
	Description *string
	Amount      *int64
	DueDate     *time.Time
	Recurring   *bool
	Recurrence  *finance.Recurrence
	Day         *int
}

func (d reminderDraft) build() (finance.ReminderParams, error) {
	if d.Description == nil || d.Amount == nil || d.DueDate == nil || d.Recurring == nil {
		return finance.ReminderParams{}, errIncomplete
	}

	p := finance.ReminderParams{
		Description: *d.Description,
		Amount:      *d.Amount,
		DueDate:     *d.DueDate,
		IsRecurring: *d.Recurring,
	}

	if !p.IsRecurring {
		return p, nil
	}

	if d.Recurrence == nil {
		return finance.ReminderParams{}, errIncomplete
	}

	p.Recurrence = *d.Recurrence
	if p.Recurrence == finance.RecurrenceMonthly {
		if d.Day == nil {
			return finance.ReminderParams{}, errIncomplete
		}

		p.RecurrenceDay = d.Day
	}

	return p, nil
}

func reminderFlow(deps Deps) *Definition[reminderDraft] {
	recurrences := make([]chat.Option, 0, len(finance.Recurrences()))
	for _, r := range finance.Recurrences() {
		recurrences = append(recurrences, chat.Option{Label: r.Label(), Value: string(r)})
	}

	return &Definition[reminderDraft]{
		Kind: AddReminder,
		Seed: func(d *reminderDraft, p intent.Params) {
			d.Description = p.Description
			if p.Amount != nil && p.Amount.IsPositive() {
				d.Amount = new(extract.Cents(*p.Amount))
			}

			d.DueDate = p.Date
		},
		Steps: []Step[reminderDraft]{
			{
				Name:   "description",
				Prompt: ask[reminderDraft]("🔔 O que você precisa pagar? Ex.: Conta de luz"),
				Skip:   func(d reminderDraft) bool { return d.Description != nil },
				Apply: func(_ context.Context, _ Session, d *reminderDraft, in Input) error {
					desc, err := requireText(in)
					if err != nil {
						return err
					}

					d.Description = &desc

					return nil
				},
			},
			{
				Name:   "amount",
				Prompt: ask[reminderDraft]("💵 Qual o valor?"),
				Skip:   func(d reminderDraft) bool { return d.Amount != nil },
				Apply: func(_ context.Context, _ Session, d *reminderDraft, in Input) error {
					cents, err := positiveAmount(deps.Extractor, in)
					if err != nil {
						return err
					}

					d.Amount = &cents

					return nil
				},
			},
			{
				Name:   "due_date",
				Prompt: ask[reminderDraft]("📅 Qual a data de vencimento? Use DD/MM/AAAA ou \"dia 10\"."),
				Skip:   func(d reminderDraft) bool { return d.DueDate != nil },
				Apply: func(_ context.Context, _ Session, d *reminderDraft, in Input) error {
					date, err := parseDate(deps.Extractor, in)
					if err != nil {
						return err
					}

					d.DueDate = &date

					return nil
				},
			},
			{
				Name:   "recurring",
				Prompt: ask[reminderDraft]("🔁 Este lembrete se repete?", yesNoOptions...),
				Apply: func(_ context.Context, _ Session, d *reminderDraft, in Input) error {
					yes, err := yesNo(in)
					if err != nil {
						return err
					}

					d.Recurring = &yes

					return nil
				},
				Next: func(d reminderDraft) string {
					if !*d.Recurring {
						return Done
					}

					return ""
				},
			},
			{
				Name:   "recurrence",
				Prompt: ask[reminderDraft]("Com que frequência?", recurrences...),
				Apply: func(_ context.Context, _ Session, d *reminderDraft, in Input) error {
					r, ok := finance.ParseRecurrence(in.String())
					if !ok {
						return Retry("Frequência inválida. Escolha uma das opções.")
					}

					d.Recurrence = &r

					return nil
				},
				Next: func(d reminderDraft) string {
					if *d.Recurrence != finance.RecurrenceMonthly {
						return Done
					}

					return ""
				},
			},
			{
				Name: "recurrence_day",
				Prompt: func(_ context.Context, _ Session, d reminderDraft) (chat.Reply, error) {
					return chat.Text(fmt.Sprintf("Em que dia do mês ele vence? (1 a 31, atual: %d)", d.DueDate.Day())), nil
				},
				Apply: func(_ context.Context, _ Session, d *reminderDraft, in Input) error {
					day, err := dayOfMonth(in)
					if err != nil {
						return err
					}

					d.Day = &day

					return nil
				},
			},
		},
		Complete: func(ctx context.Context, sess Session, d reminderDraft) ([]chat.Reply, error) {
			params, err := d.build()
			if err != nil {
				return nil, err
			}

			r, err := deps.Finance.AddReminder(ctx, sess.UserID, params)
			if err != nil {
				return nil, fmt.Errorf("adding reminder: %w", err)
			}

			text := fmt.Sprintf(
				"✅ Lembrete criado!\n\n📝 %s\n💵 Valor: %s\n📅 Vencimento: %s",
				r.Description, money(sess, r.Amount), extract.FormatDate(r.DueDate),
			)
			if r.IsRecurring {
				text += "\n🔁 Recorrência: " + r.Recurrence.Label()
			}

			return []chat.Reply{chat.Text(text).WithMenu()}, nil
		},
	}
}
