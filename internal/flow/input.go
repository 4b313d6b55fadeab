package flow

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/MrJamesThe3rd/finchat/internal/chat"
	"github.com/MrJamesThe3rd/finchat/internal/extract"
	"github.com/MrJamesThe3rd/finchat/internal/finance"
)

// Option values of the yes/no buttons.
const (
	valueYes = "yes"
	valueNo  = "no"
)

var yesNoOptions = []chat.Option{{Label: "✅ Sim", Value: valueYes}, {Label: "❌ Não", Value: valueNo}}

// ask returns a Prompt that always sends the same question.
func ask[D any](text string, opts ...chat.Option) func(context.Context, Session, D) (chat.Reply, error) {
	return func(context.Context, Session, D) (chat.Reply, error) {
		return chat.Reply{Text: text, Options: opts}, nil
	}
}

func requireText(in Input) (string, error) {
	s := in.String()
	if s == "" {
		return "", Retry("A resposta não pode ficar vazia.")
	}

	return s, nil
}

func positiveAmount(ex *extract.Extractor, in Input) (int64, error) {
	amt, ok := ex.Amount(in.String())
	if !ok || !amt.IsPositive() {
		return 0, Retry("Valor inválido. Digite um número maior que zero, por exemplo 45,90.")
	}

	return extract.Cents(amt), nil
}

// nonNegativeAmount accepts zero, for limits and optional incomes.
func nonNegativeAmount(ex *extract.Extractor, in Input) (int64, error) {
	amt, ok := ex.Amount(in.String())
	if !ok {
		return 0, Retry("Valor inválido. Digite um número, por exemplo 1500 ou 0.")
	}

	return extract.Cents(amt), nil
}

func parseDate(ex *extract.Extractor, in Input) (time.Time, error) {
	d, ok := ex.Date(in.String())
	if !ok {
		return time.Time{}, Retry("Data inválida. Use DD/MM/AAAA, \"hoje\" ou \"ontem\".")
	}

	return d, nil
}

func yesNo(in Input) (bool, error) {
	switch strings.ToLower(in.String()) {
	case valueYes, "sim", "s", "✅ sim":
		return true, nil
	case valueNo, "não", "nao", "n", "❌ não":
		return false, nil
	}

	return false, Retry("Responda com sim ou não.")
}

func dayOfMonth(in Input) (int, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(strings.ToLower(in.String()), "dia "))
	if err != nil || n < 1 || n > 31 {
		return 0, Retry("Dia inválido. Digite um número de 1 a 31.")
	}

	return n, nil
}

func categoryOptions(cats []*finance.Category) []chat.Option {
	opts := make([]chat.Option, 0, len(cats))
	for _, c := range cats {
		opts = append(opts, chat.Option{Label: c.Name, Value: c.Name})
	}

	return opts
}

// matchCategory finds name among cats ignoring case.
func matchCategory(cats []*finance.Category, name string) (string, bool) {
	for _, c := range cats {
		if strings.EqualFold(c.Name, name) {
			return c.Name, true
		}
	}

	return "", false
}

func money(sess Session, cents int64) string {
	return finance.FormatMoney(sess.currency(), cents)
}
