package extract

import (
	"slices"
	"strings"
	"unicode"
)

// Other is the fallback category for both expenses and incomes.
const Other = "Outros"

// CategoryRule maps a category to the keywords that select it.
type CategoryRule struct {
	Name     string
	Keywords []string
}

// ExpenseRules is scanned in order; the first rule with a matching keyword wins.
var ExpenseRules = []CategoryRule{
	{Name: "Alimentação", Keywords: []string{"mercado", "supermercado", "comida", "restaurante", "lanche", "café", "almoço", "jantar"}},
	{Name: "Transporte", Keywords: []string{"uber", "99", "táxi", "taxi", "ônibus", "onibus", "metrô", "metro", "gasolina", "combustível", "estacionamento", "passagem"}},
	{Name: "Moradia", Keywords: []string{"aluguel", "condomínio", "condominio", "luz", "água", "gás", "internet", "iptu"}},
	{Name: "Lazer", Keywords: []string{"cinema", "teatro", "show", "viagem", "passeio", "festa", "bar"}},
	{Name: "Saúde", Keywords: []string{"médico", "medico", "consulta", "remédio", "remedio", "farmácia", "farmacia", "exame", "plano de saúde"}},
	{Name: "Educação", Keywords: []string{"curso", "faculdade", "escola", "livro", "material"}},
	{Name: "Dívidas", Keywords: []string{"empréstimo", "emprestimo", "financiamento", "cartão", "cartao", "parcela", "prestação", "prestacao"}},
}

var IncomeRules = []CategoryRule{
	{Name: "Salário", Keywords: []string{"salário", "salario", "holerite"}},
	{Name: "Freelance", Keywords: []string{"freela", "freelance", "projeto", "cliente"}},
	{Name: "Investimentos", Keywords: []string{"dividendo", "rendimento", "juros", "investimento", "aplicação"}},
	{Name: "Presente", Keywords: []string{"presente", "mesada", "aniversário"}},
}

// ExpenseCategories lists the default expense categories, Other last.
func ExpenseCategories() []string {
	return categoryNames(ExpenseRules)
}

func IncomeCategories() []string {
	return categoryNames(IncomeRules)
}

func categoryNames(rules []CategoryRule) []string {
	names := make([]string, 0, len(rules)+1)
	for _, r := range rules {
		names = append(names, r.Name)
	}

	return append(names, Other)
}

// Category classifies text against the expense or income rules.
func (e *Extractor) Category(text string, income bool) string {
	rules := ExpenseRules
	if income {
		rules = IncomeRules
	}

	return Classify(text, rules)
}

// Classify returns the first rule whose keyword occurs in text, or Other.
// Keywords are substring matches, except purely numeric ones ("99"), which
// must be a whole token so amounts like 199,90 do not match.
func Classify(text string, rules []CategoryRule) string {
	lower := strings.ToLower(text)
	tokens := fields(lower)

	for _, rule := range rules {
		for _, kw := range rule.Keywords {
			if isNumeric(kw) {
				if slices.Contains(tokens, kw) {
					return rule.Name
				}

				continue
			}

			if strings.Contains(lower, kw) {
				return rule.Name
			}
		}
	}

	return Other
}

// fields splits on whitespace and trims surrounding punctuation, keeping
// decimal separators inside numbers ("99,90" stays one token).
func fields(text string) []string {
	raw := strings.Fields(text)
	out := make([]string, 0, len(raw))

	for _, f := range raw {
		f = strings.TrimFunc(f, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if f != "" {
			out = append(out, f)
		}
	}

	return out
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}

	return s != ""
}
