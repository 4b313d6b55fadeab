package flow

import (
	"context"
	"fmt"

	"github.com/MrJamesThe3rd/finchat/internal/chat"
	"github.com/MrJamesThe3rd/finchat/internal/export"
)

type exportDraft struct {
	Format *export.Format
}

func exportFlow(deps Deps) *Definition[exportDraft] {
	var formats []chat.Option
	for _, f := range export.Formats() {
		formats = append(formats, chat.Option{Label: f.Label(), Value: string(f)})
	}

	return &Definition[exportDraft]{
		Kind: Export,
		Steps: []Step[exportDraft]{
			{
				Name:   "format",
				Prompt: ask[exportDraft]("📤 Em qual formato você quer exportar suas transações?", formats...),
				Apply: func(_ context.Context, _ Session, d *exportDraft, in Input) error {
					f, ok := export.ParseFormat(in.String())
					if !ok {
						return Retry("Formato inválido. Escolha CSV, Excel ou PDF.")
					}

					d.Format = &f

					return nil
				},
			},
		},
		Complete: func(ctx context.Context, sess Session, d exportDraft) ([]chat.Reply, error) {
			if d.Format == nil {
				return nil, errIncomplete
			}

			txs, err := deps.Finance.ListUserTransactions(ctx, sess.UserID, nil, nil)
			if err != nil {
				return nil, fmt.Errorf("listing transactions: %w", err)
			}

			if len(txs) == 0 {
				return []chat.Reply{chat.Text("📭 Você ainda não tem transações para exportar.").WithMenu()}, nil
			}

			f, err := deps.Exporter.Export(*d.Format, txs)
			if err != nil {
				return nil, fmt.Errorf("exporting transactions: %w", err)
			}

			return []chat.Reply{{
				Text: fmt.Sprintf("📤 Aqui estão suas %d transações em %s.", len(txs), d.Format.Label()),
				File: &chat.Attachment{Name: f.Name, ContentType: f.ContentType, Data: f.Data},
			}}, nil
		},
	}
}
