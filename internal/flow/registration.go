package flow

import (
	"context"
	"errors"
	"fmt"

	"github.com/MrJamesThe3rd/finchat/internal/chat"
	"github.com/MrJamesThe3rd/finchat/internal/finance"
)

type registrationDraft struct {
	Name          *string
	Currency      *string
	MonthlyIncome *int64
}

func (d registrationDraft) build(user int64) (finance.RegisterParams, error) {
	if d.Name == nil || d.Currency == nil || d.MonthlyIncome == nil {
		return finance.RegisterParams{}, errIncomplete
	}

	return finance.RegisterParams{
		ExternalID:    user,
		Name:          *d.Name,
		Currency:      *d.Currency,
		MonthlyIncome: *d.MonthlyIncome,
	}, nil
}

func registrationFlow(deps Deps) *Definition[registrationDraft] {
	currencies := make([]chat.Option, len(finance.Currencies))
	for i, c := range finance.Currencies {
		currencies[i] = chat.Option{Label: c, Value: c}
	}

	return &Definition[registrationDraft]{
		Kind: Registration,
		Steps: []Step[registrationDraft]{
			{
				Name:   "name",
				Prompt: ask[registrationDraft]("👋 Olá! Vamos configurar sua conta.\n\nComo você gostaria de ser chamado?"),
				Apply: func(_ context.Context, _ Session, d *registrationDraft, in Input) error {
					name, err := requireText(in)
					if err != nil {
						return err
					}

					d.Name = &name

					return nil
				},
			},
			{
				Name: "currency",
				Prompt: func(_ context.Context, _ Session, d registrationDraft) (chat.Reply, error) {
					return chat.Reply{
						Text:    fmt.Sprintf("Prazer, %s! Qual moeda você usa?", *d.Name),
						Options: currencies,
					}, nil
				},
				Apply: func(_ context.Context, _ Session, d *registrationDraft, in Input) error {
					c := in.String()
					if !finance.ValidCurrency(c) {
						return Retry("Moeda inválida. Escolha R$, $, € ou £.")
					}

					d.Currency = &c

					return nil
				},
			},
			{
				Name:   "monthly_income",
				Prompt: ask[registrationDraft]("💰 Qual é a sua renda mensal aproximada? Digite 0 se preferir não informar."),
				Apply: func(_ context.Context, _ Session, d *registrationDraft, in Input) error {
					cents, err := nonNegativeAmount(deps.Extractor, in)
					if err != nil {
						return err
					}

					d.MonthlyIncome = &cents

					return nil
				},
			},
		},
		Complete: func(ctx context.Context, sess Session, d registrationDraft) ([]chat.Reply, error) {
			params, err := d.build(sess.UserID)
			if err != nil {
				return nil, err
			}

			u, err := deps.Finance.RegisterUser(ctx, params)
			if errors.Is(err, finance.ErrAlreadyRegistered) {
				return nil, Abort("Você já está cadastrado! Use o menu abaixo para continuar.")
			}

			if err != nil {
				return nil, fmt.Errorf("registering user: %w", err)
			}

			return []chat.Reply{chat.Text(fmt.Sprintf(
				"✅ Cadastro concluído, %s!\n\nAgora é só me contar seus gastos, por exemplo: \"gastei 45,90 no mercado\".",
				u.Name,
			)).WithMenu()}, nil
		},
	}
}
