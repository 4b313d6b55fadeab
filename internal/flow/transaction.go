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

// NewCategoryValue is the option that branches into naming a new category.
const NewCategoryValue = "new_category"

const skipDescription = "-"

type transactionDraft struct {
	Amount      *int64
	Category    *string
	NewCategory bool
	Description *string
	Date        *time.Time
}

func (d transactionDraft) build(typ finance.Type) (finance.TransactionParams, error) {
	if d.Amount == nil || d.Category == nil || d.Description == nil || d.Date == nil {
		return finance.TransactionParams{}, errIncomplete
	}

	return finance.TransactionParams{
		Type:           typ,
		Amount:         *d.Amount,
		Category:       *d.Category,
		Description:    *d.Description,
		RawDescription: *d.Description,
		Date:           *d.Date,
	}, nil
}

func transactionFlow(deps Deps, typ finance.Type) *Definition[transactionDraft] {
	income := typ == finance.TypeIncome

	kind, noun, icon := AddExpense, "despesa", "💸"
	if income {
		kind, noun, icon = AddIncome, "receita", "💰"
	}

	return &Definition[transactionDraft]{
		Kind: kind,
		Seed: func(d *transactionDraft, p intent.Params) {
			if p.Amount != nil && p.Amount.IsPositive() {
				d.Amount = new(extract.Cents(*p.Amount))
			}

			d.Category = p.Category
			d.Description = p.Description
			d.Date = p.Date
		},
		Steps: []Step[transactionDraft]{
			{
				Name:   "amount",
				Prompt: ask[transactionDraft](fmt.Sprintf("%s Qual o valor da %s?", icon, noun)),
				Skip:   func(d transactionDraft) bool { return d.Amount != nil },
				Apply: func(_ context.Context, _ Session, d *transactionDraft, in Input) error {
					cents, err := positiveAmount(deps.Extractor, in)
					if err != nil {
						return err
					}

					d.Amount = &cents

					return nil
				},
			},
			{
				Name: "category",
				Prompt: func(ctx context.Context, sess Session, _ transactionDraft) (chat.Reply, error) {
					cats, err := deps.Finance.ListCategories(ctx, sess.UserID, income)
					if err != nil {
						return chat.Reply{}, fmt.Errorf("listing categories: %w", err)
					}

					opts := append(categoryOptions(cats), chat.Option{Label: "➕ Nova categoria", Value: NewCategoryValue})

					return chat.Reply{Text: "🏷️ Escolha a categoria:", Options: opts}, nil
				},
				Skip: func(d transactionDraft) bool { return d.Category != nil },
				Apply: func(ctx context.Context, sess Session, d *transactionDraft, in Input) error {
					if in.String() == NewCategoryValue {
						d.NewCategory = true
						return nil
					}

					cats, err := deps.Finance.ListCategories(ctx, sess.UserID, income)
					if err != nil {
						return fmt.Errorf("listing categories: %w", err)
					}

					name, ok := matchCategory(cats, in.String())
					if !ok {
						return Retry("Categoria não encontrada. Escolha uma das opções ou crie uma nova.")
					}

					d.Category = &name

					return nil
				},
				Next: func(d transactionDraft) string {
					if d.NewCategory {
						return "category_name"
					}

					return "description"
				},
			},
			{
				Name:   "category_name",
				Prompt: ask[transactionDraft]("✏️ Qual o nome da nova categoria?"),
				Skip:   func(d transactionDraft) bool { return d.Category != nil },
				Apply: func(_ context.Context, _ Session, d *transactionDraft, in Input) error {
					name, err := requireText(in)
					if err != nil {
						return err
					}

					d.Category = &name

					return nil
				},
			},
			{
				Name:   "description",
				Prompt: ask[transactionDraft](fmt.Sprintf("📝 Descreva a %s (ou envie \"-\" para deixar em branco):", noun)),
				Skip:   func(d transactionDraft) bool { return d.Description != nil },
				Apply: func(_ context.Context, _ Session, d *transactionDraft, in Input) error {
					desc, err := requireText(in)
					if err != nil {
						return err
					}

					if desc == skipDescription {
						desc = ""
					}

					d.Description = &desc

					return nil
				},
			},
			{
				Name: "date",
				Prompt: ask[transactionDraft](
					"📅 Qual a data? Use DD/MM/AAAA ou escolha abaixo.",
					chat.Option{Label: "Hoje", Value: "hoje"},
					chat.Option{Label: "Ontem", Value: "ontem"},
				),
				Skip: func(d transactionDraft) bool { return d.Date != nil },
				Apply: func(_ context.Context, _ Session, d *transactionDraft, in Input) error {
					date, err := parseDate(deps.Extractor, in)
					if err != nil {
						return err
					}

					d.Date = &date

					return nil
				},
			},
		},
		Complete: func(ctx context.Context, sess Session, d transactionDraft) ([]chat.Reply, error) {
			params, err := d.build(typ)
			if err != nil {
				return nil, err
			}

			tx, err := deps.Finance.RecordTransaction(ctx, sess.UserID, params)
			if err != nil {
				return nil, fmt.Errorf("recording %s: %w", noun, err)
			}

			if err := deps.Learner.Learn(ctx, sess.UserID, tx.Description, tx.Category, income); err != nil {
				deps.Logger.Error("failed to learn category rule", "error", err, "user", sess.UserID)
			}

			return []chat.Reply{TransactionReceipt(sess, tx).WithMenu()}, nil
		},
	}
}

// TransactionReceipt confirms a recorded transaction.
func TransactionReceipt(sess Session, tx *finance.Transaction) chat.Reply {
	text := fmt.Sprintf(
		"✅ %s registrada!\n\n💵 Valor: %s\n🏷️ Categoria: %s\n📅 Data: %s",
		tx.Type.Label(), money(sess, tx.Amount), tx.Category, extract.FormatDate(tx.Date),
	)
	if tx.Description != "" {
		text += "\n📝 Descrição: " + tx.Description
	}

	return chat.Text(text)
}
