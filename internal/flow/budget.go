package flow

import (
	"context"
	"errors"
	"fmt"

	"github.com/MrJamesThe3rd/finchat/internal/chat"
	"github.com/MrJamesThe3rd/finchat/internal/extract"
	"github.com/MrJamesThe3rd/finchat/internal/finance"
	"github.com/MrJamesThe3rd/finchat/internal/intent"
)

type budgetDraft struct {
	Category *string
	Amount   *int64
}

func (d budgetDraft) build() (finance.BudgetParams, error) {
	if d.Category == nil || d.Amount == nil {
		return finance.BudgetParams{}, errIncomplete
	}

	return finance.BudgetParams{Category: *d.Category, Amount: *d.Amount}, nil
}

func budgetFlow(deps Deps) *Definition[budgetDraft] {
	return &Definition[budgetDraft]{
		Kind: SetBudget,
		Seed: func(d *budgetDraft, p intent.Params) {
			d.Category = p.Category
			if p.Amount != nil {
				d.Amount = new(extract.Cents(*p.Amount))
			}
		},
		Steps: []Step[budgetDraft]{
			{
				Name: "category",
				Prompt: func(ctx context.Context, sess Session, _ budgetDraft) (chat.Reply, error) {
					cats, err := deps.Finance.ListCategories(ctx, sess.UserID, false)
					if err != nil {
						return chat.Reply{}, fmt.Errorf("listing categories: %w", err)
					}

					return chat.Reply{Text: "💰 Para qual categoria você quer definir um orçamento?", Options: categoryOptions(cats)}, nil
				},
				Skip: func(d budgetDraft) bool { return d.Category != nil },
				Apply: func(ctx context.Context, sess Session, d *budgetDraft, in Input) error {
					cats, err := deps.Finance.ListCategories(ctx, sess.UserID, false)
					if err != nil {
						return fmt.Errorf("listing categories: %w", err)
					}

					name, ok := matchCategory(cats, in.String())
					if !ok {
						return Retry("Categoria não encontrada. Escolha uma das opções.")
					}

					d.Category = &name

					return nil
				},
			},
			{
				Name: "amount",
				Prompt: func(_ context.Context, _ Session, d budgetDraft) (chat.Reply, error) {
					return chat.Text(fmt.Sprintf("Qual o limite mensal para %s?", *d.Category)), nil
				},
				Skip: func(d budgetDraft) bool { return d.Amount != nil },
				Apply: func(_ context.Context, _ Session, d *budgetDraft, in Input) error {
					cents, err := nonNegativeAmount(deps.Extractor, in)
					if err != nil {
						return err
					}

					d.Amount = &cents

					return nil
				},
			},
		},
		Complete: func(ctx context.Context, sess Session, d budgetDraft) ([]chat.Reply, error) {
			params, err := d.build()
			if err != nil {
				return nil, err
			}

			b, err := deps.Finance.SetBudget(ctx, sess.UserID, params)
			if errors.Is(err, finance.ErrCategoryNotFound) {
				return nil, Abort(fmt.Sprintf("❌ Categoria \"%s\" não encontrada. Use /orcamento para escolher uma categoria existente.", *d.Category))
			}

			if err != nil {
				return nil, fmt.Errorf("setting budget: %w", err)
			}

			return []chat.Reply{chat.Text(fmt.Sprintf(
				"✅ Orçamento definido!\n\n🏷️ Categoria: %s\n💰 Limite: %s\n📅 Mês: %02d/%d",
				b.Category, money(sess, b.Amount), int(b.Month), b.Year,
			)).WithMenu()}, nil
		},
	}
}
