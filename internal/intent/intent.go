// Package intent classifies free chat text into a financial intent and pulls
// out the parameters that intent needs.
package intent

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/finchat/internal/extract"
)

type Kind string

const (
	MonthlyReport  Kind = "monthly_report"
	CategoryReport Kind = "category_report"
	BudgetSet      Kind = "budget_set"
	AddReminder    Kind = "add_reminder"
	FutureIncome   Kind = "future_income"
	AddExpense     Kind = "add_expense"
	AddIncome      Kind = "add_income"
	Unknown        Kind = "unknown"
)

// Params holds what could be extracted. Nil fields were not found.
type Params struct {
	Category    *string
	Amount      *decimal.Decimal
	Date        *time.Time
	Description *string
}

type Result struct {
	Kind   Kind
	Params Params
}

type rule struct {
	kind     Kind
	keywords []string
}

// rules is scanned in declaration order. Reordering it changes which intent
// wins for texts matching several keyword lists.
var rules = []rule{
	{MonthlyReport, []string{"relatório", "relatorio", "resumo", "balanço", "mês", "mensal", "gastei este mês", "gastos do mês"}},
	{CategoryReport, []string{"quanto gastei com", "gastos em", "despesas com", "categoria"}},
	{BudgetSet, []string{"definir orçamento", "estabelecer limite", "orçamento para", "limite de gasto"}},
	{AddReminder, []string{"lembrar", "lembrete", "lembre", "não esquecer", "avise", "conta para pagar", "vencimento"}},
	{FutureIncome, []string{"vou receber", "receita futura", "entrada de dinheiro", "pagamento", "receberei"}},
	{AddExpense, []string{"gastei", "comprei", "paguei", "despesa", "gasto"}},
	{AddIncome, []string{"recebi", "ganhei", "salário", "receita", "entrada"}},
}

// Order returns the intents in the order they are matched.
func Order() []Kind {
	kinds := make([]Kind, len(rules))
	for i, r := range rules {
		kinds[i] = r.kind
	}

	return kinds
}

var (
	categoryAfterCom      = regexp.MustCompile(`\b(?:com|em)\s+(?:(?:o|a|os|as)\s+)?(\p{L}+)`)
	categoryAfterCategory = regexp.MustCompile(`categoria\s+(?:(?:de|do|da)\s+)?(\p{L}+)`)
	categoryAfterPara     = regexp.MustCompile(`\bpara\s+(?:(?:o|a|os|as)\s+)?(\p{L}+)`)
	futureDescription     = regexp.MustCompile(`receber\s+(.*?)(?:\s+no dia\b|\s+em\b|\s+dia\b|$)`)
	leadingFiller         = regexp.MustCompile(`^(?:de|que|me|do|da)\s+`)
	amountToken           = regexp.MustCompile(`(?:r\$|\$|€|£)?\s*\d+(?:[.,]\d+)?(?:\s*reais)?`)
)

// reminderDescriptions captures the text between a reminder keyword and the
// first date marker.
var reminderDescriptions = func() map[string]*regexp.Regexp {
	m := make(map[string]*regexp.Regexp)

	for _, r := range rules {
		if r.kind != AddReminder {
			continue
		}

		for _, kw := range r.keywords {
			m[kw] = regexp.MustCompile(regexp.QuoteMeta(kw) + `\s+(.*?)(?:\s+no dia\b|\s+em\b|\s+dia\b|\s+para\b|$)`)
		}
	}

	return m
}()

type Classifier struct {
	ex *extract.Extractor
}

func NewClassifier(ex *extract.Extractor) *Classifier {
	return &Classifier{ex: ex}
}

// Classify picks the first intent whose keyword occurs in text.
func (c *Classifier) Classify(text string) Result {
	lower := strings.ToLower(strings.TrimSpace(text))

	for _, r := range rules {
		kw, ok := firstKeyword(lower, r.keywords)
		if !ok {
			continue
		}

		return Result{Kind: r.kind, Params: c.params(r.kind, kw, lower, text)}
	}

	return Result{Kind: Unknown}
}

func firstKeyword(text string, keywords []string) (string, bool) {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return kw, true
		}
	}

	return "", false
}

func (c *Classifier) params(kind Kind, keyword, lower, original string) Params {
	switch kind {
	case CategoryReport:
		cat := captureWord(categoryAfterCom, lower)
		if cat == nil {
			cat = captureWord(categoryAfterCategory, lower)
		}

		return Params{Category: cat}
	case BudgetSet:
		return Params{
			Category: captureWord(categoryAfterPara, lower),
			Amount:   c.amount(lower),
		}
	case AddReminder:
		rest, date := c.cutDate(lower)

		return Params{
			Description: reminderDescription(rest, keyword),
			Date:        date,
			Amount:      c.amount(rest),
		}
	case FutureIncome:
		rest, date := c.cutDate(lower)

		return Params{
			Description: futureIncomeDescription(rest),
			Date:        date,
			Amount:      c.amount(rest),
		}
	case AddExpense, AddIncome:
		rest, date := c.cutDate(lower)
		p := Params{Amount: c.amount(rest), Date: date}

		if cat := c.ex.Category(lower, kind == AddIncome); cat != extract.Other {
			p.Category = new(cat)
		}

		if desc := strings.TrimSpace(original); desc != "" {
			p.Description = new(desc)
		}

		return p
	}

	return Params{}
}

func (c *Classifier) amount(text string) *decimal.Decimal {
	d, ok := c.ex.Amount(text)
	if !ok {
		return nil
	}

	return &d
}

// cutDate takes the date and its marker out of text, so "dia 10" is neither
// read as the amount nor left in the description.
func (c *Classifier) cutDate(text string) (string, *time.Time) {
	rest, d, ok := c.ex.CutDate(text)
	if !ok {
		return rest, nil
	}

	return rest, &d
}

func captureWord(re *regexp.Regexp, text string) *string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return nil
	}

	return new(m[1])
}

func reminderDescription(text, keyword string) *string {
	m := reminderDescriptions[keyword].FindStringSubmatch(text)
	if m == nil {
		return nil
	}

	return cleanDescription(m[1])
}

func futureIncomeDescription(text string) *string {
	m := futureDescription.FindStringSubmatch(text)
	if m == nil {
		return nil
	}

	return cleanDescription(m[1])
}

// cleanDescription drops leading filler words and any amount token.
func cleanDescription(s string) *string {
	s = amountToken.ReplaceAllString(s, "")
	s = strings.Join(strings.Fields(s), " ")

	for {
		trimmed := leadingFiller.ReplaceAllString(s, "")
		if trimmed == s {
			break
		}

		s = trimmed
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	return &s
}
