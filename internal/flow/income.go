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

type futureIncomeDraft struct {
	Amount       *int64
	Description  *string
	ExpectedDate *time.Time
	Category     *string
}

func (d futureIncomeDraft) build() (finance.FutureIncomeParams, error) {
	if d.Amount == nil || d.Description == nil || d.ExpectedDate == nil || d.Category == nil {
		return finance.FutureIncomeParams{}, errIncomplete
	}

	return finance.FutureIncomeParams{
		Description:  *d.Description,
		Amount:       *d.Amount,
		ExpectedDate: *d.ExpectedDate,
		Category:     *d.Category,
	}, nil
}

func futureIncomeFlow(deps Deps) *Definition[futureIncomeDraft] {
	return &Definition[futureIncomeDraft]{
		Kind: AddFutureIncome,
		Seed: func(d *futureIncomeDraft, p intent.Params) {
			if p.Amount != nil && p.Amount.IsPositive() {
				d.Amount = new(extract.Cents(*p.Amount))
			}

			d.Description = p.Description
			if p.Date != nil && !p.Date.Before(deps.Extractor.Today()) {
				d.ExpectedDate = p.Date
			}

			d.Category = p.Category
		},
		Steps: []Step[futureIncomeDraft]{
			{
				Name:   "amount",
				Prompt: ask[futureIncomeDraft]("📆 Qual o valor que você vai receber?"),
				Skip:   func(d futureIncomeDraft) bool { return d.Amount != nil },
				Apply: func(_ context.Context, _ Session, d *futureIncomeDraft, in Input) error {
					cents, err := positiveAmount(deps.Extractor, in)
					if err != nil {
						return err
					}

					d.Amount = &cents

					return nil
				},
			},
			{
				Name:   "description",
				Prompt: ask[futureIncomeDraft]("📝 De onde vem essa receita? Ex.: Cliente X"),
				Skip:   func(d futureIncomeDraft) bool { return d.Description != nil },
				Apply: func(_ context.Context, _ Session, d *futureIncomeDraft, in Input) error {
					desc, err := requireText(in)
					if err != nil {
						return err
					}

					d.Description = &desc

					return nil
				},
			},
			{
				Name:   "expected_date",
				Prompt: ask[futureIncomeDraft]("📅 Quando você espera receber? Use DD/MM/AAAA."),
				Skip:   func(d futureIncomeDraft) bool { return d.ExpectedDate != nil },
				Apply: func(_ context.Context, _ Session, d *futureIncomeDraft, in Input) error {
					date, err := parseDate(deps.Extractor, in)
					if err != nil {
						return err
					}

					if date.Before(deps.Extractor.Today()) {
						return Retry("A data precisa ser hoje ou no futuro.")
					}

					d.ExpectedDate = &date

					return nil
				},
			},
			{
				Name: "category",
				Prompt: func(ctx context.Context, sess Session, _ futureIncomeDraft) (chat.Reply, error) {
					cats, err := deps.Finance.ListCategories(ctx, sess.UserID, true)
					if err != nil {
						return chat.Reply{}, fmt.Errorf("listing categories: %w", err)
					}

					return chat.Reply{Text: "🏷️ Escolha a categoria da receita ou digite uma nova:", Options: categoryOptions(cats)}, nil
				},
				Skip: func(d futureIncomeDraft) bool { return d.Category != nil },
				Apply: func(ctx context.Context, sess Session, d *futureIncomeDraft, in Input) error {
					name, err := requireText(in)
					if err != nil {
						return err
					}

					cats, err := deps.Finance.ListCategories(ctx, sess.UserID, true)
					if err != nil {
						return fmt.Errorf("listing categories: %w", err)
					}

					if existing, ok := matchCategory(cats, name); ok {
						name = existing
					}

					d.Category = &name

					return nil
				},
			},
		},
		Complete: func(ctx context.Context, sess Session, d futureIncomeDraft) ([]chat.Reply, error) {
			params, err := d.build()
			if err != nil {
				return nil, err
			}

			f, err := deps.Finance.AddFutureIncome(ctx, sess.UserID, params)
			if err != nil {
				return nil, fmt.Errorf("adding future income: %w", err)
			}

			return []chat.Reply{chat.Text(fmt.Sprintf(
				"✅ Receita futura registrada!\n\n📝 %s\n💵 Valor: %s\n📅 Previsão: %s\n🏷️ Categoria: %s",
				f.Description, money(sess, f.Amount), extract.FormatDate(f.ExpectedDate), f.Category,
			)).WithMenu()}, nil
		},
	}
}
