package extract_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/finchat/internal/extract"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

// Saturday, March 15, 2025.
func fixedClock() time.Time {
	return time.Date(2025, 3, 15, 14, 30, 0, 0, time.UTC)
}

func TestExtractor_Date(t *testing.T) {
	type testCase struct {
		name   string
		text   string
		want   time.Time
		wantOK bool
	}

	tests := []testCase{
		{name: "FullNumeric", text: "05/03/2025", want: date(2025, 3, 5), wantOK: true},
		{name: "DashSeparated", text: "paguei em 7-4-2024", want: date(2024, 4, 7), wantOK: true},
		{name: "TwoDigitYear", text: "10/05/23", want: date(2023, 5, 10), wantOK: true},
		{name: "MissingYear", text: "vence 20/12", want: date(2025, 12, 20), wantOK: true},
		{name: "ISO", text: "extrato de 2025-03-05", want: date(2025, 3, 5), wantOK: true},
		{name: "ISOInvalidIsNotReadAsDayMonth", text: "2025-02-30", wantOK: false},
		{name: "InvalidCalendarDate", text: "31/02/2025", wantOK: false},
		{name: "InvalidMonth", text: "10/13/2025", wantOK: false},
		{name: "InvalidNumericFallsThroughToRelative", text: "31/02 hoje", want: date(2025, 3, 15), wantOK: true},
		{name: "Textual", text: "5 de março de 2025", want: date(2025, 3, 5), wantOK: true},
		{name: "TextualWithoutAccent", text: "5 de marco", want: date(2025, 3, 5), wantOK: true},
		{name: "TextualNoYear", text: "recebo 1 de abril", want: date(2025, 4, 1), wantOK: true},
		{name: "TextualSkipsNonMonth", text: "10 de café em 2 de maio", want: date(2025, 5, 2), wantOK: true},
		{name: "TextualInvalidDay", text: "30 de fevereiro", wantOK: false},
		{name: "DayLaterThisMonth", text: "dia 20", want: date(2025, 3, 20), wantOK: true},
		{name: "DayToday", text: "dia 15", want: date(2025, 3, 15), wantOK: true},
		{name: "DayPassedRollsToNextMonth", text: "dia 10", want: date(2025, 4, 10), wantOK: true},
		{name: "DayEndOfMonth", text: "dia 31", want: date(2025, 3, 31), wantOK: true},
		{name: "Today", text: "hoje", want: date(2025, 3, 15), wantOK: true},
		{name: "Tomorrow", text: "Amanhã", want: date(2025, 3, 16), wantOK: true},
		{name: "TomorrowNoAccent", text: "amanha cedo", want: date(2025, 3, 16), wantOK: true},
		{name: "Yesterday", text: "foi ontem", want: date(2025, 3, 14), wantOK: true},
		{name: "DayBeforeYesterday", text: "anteontem", want: date(2025, 3, 13), wantOK: true},
		{name: "NotFound", text: "sem data aqui", wantOK: false},
	}

	ex := extract.NewWithClock(fixedClock)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ex.Date(tt.text)

			assert.Equal(t, tt.wantOK, ok)

			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestExtractor_DateSpan(t *testing.T) {
	type testCase struct {
		name     string
		text     string
		wantText string
	}

	tests := []testCase{
		{name: "Numeric", text: "luz em 10/05 150", wantText: "10/05"},
		{name: "DayOfMonth", text: "pagar aluguel dia 10", wantText: "dia 10"},
		{name: "Textual", text: "conta 5 de abril", wantText: "5 de abril"},
		{name: "Relative", text: "internet amanhã 99", wantText: "amanhã"},
	}

	ex := extract.NewWithClock(fixedClock)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, span, ok := ex.DateSpan(tt.text)

			require.True(t, ok)
			assert.Equal(t, tt.wantText, tt.text[span[0]:span[1]])
		})
	}
}

func TestExtractor_CutDate(t *testing.T) {
	type testCase struct {
		name     string
		text     string
		wantRest string
		wantDate time.Time
		wantOK   bool
	}

	tests := []testCase{
		{name: "DayOfMonth", text: "Lembrar de pagar aluguel dia 10", wantRest: "lembrar de pagar aluguel", wantDate: date(2025, 4, 10), wantOK: true},
		{name: "LeadingDayOfMonth", text: "lembrete dia 5 conta de luz 150", wantRest: "lembrete conta de luz 150", wantDate: date(2025, 4, 5), wantOK: true},
		{name: "MarkerWithNumeric", text: "aluguel 1500 em 05/04", wantRest: "aluguel 1500", wantDate: date(2025, 4, 5), wantOK: true},
		{name: "NoDia", text: "internet no dia 20 99,90", wantRest: "internet 99,90", wantDate: date(2025, 3, 20), wantOK: true},
		{name: "NoDate", text: "Conta de luz 150", wantRest: "conta de luz 150"},
	}

	ex := extract.NewWithClock(fixedClock)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rest, d, ok := ex.CutDate(tt.text)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantRest, rest)
			assert.Equal(t, tt.wantDate, d)
		})
	}
}

func TestExtractor_DateRoundTrip(t *testing.T) {
	ex := extract.NewWithClock(fixedClock)

	for d := date(2024, 1, 1); d.Year() == 2024; d = d.AddDate(0, 0, 1) {
		text := extract.FormatDate(d)

		got, ok := ex.Date(text)
		require.True(t, ok, text)
		assert.Equal(t, text, extract.FormatDate(got))
	}
}

func TestExtractor_Amount(t *testing.T) {
	type testCase struct {
		name   string
		text   string
		want   string
		wantOK bool
	}

	tests := []testCase{
		{name: "CommaDecimal", text: "Gastei 45,90 no mercado", want: "45.9", wantOK: true},
		{name: "DotDecimal", text: "recebi 1200.50", want: "1200.5", wantOK: true},
		{name: "Integer", text: "150", want: "150", wantOK: true},
		{name: "Zero", text: "0", want: "0", wantOK: true},
		{name: "CurrencyPrefix", text: "R$30", want: "30", wantOK: true},
		{name: "FirstTokenWins", text: "uber 12 e 30", want: "12", wantOK: true},
		{name: "NotFound", text: "sem valor", wantOK: false},
	}

	ex := extract.New()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ex.Amount(tt.text)

			require.Equal(t, tt.wantOK, ok)

			if tt.wantOK {
				assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
			}
		})
	}
}

func TestCents(t *testing.T) {
	assert.Equal(t, int64(4590), extract.Cents(decimal.RequireFromString("45.90")))
	assert.Equal(t, int64(15000), extract.Cents(decimal.NewFromInt(150)))
	assert.Equal(t, int64(1), extract.Cents(decimal.RequireFromString("0.005")))
}

func TestExtractor_Category(t *testing.T) {
	type args struct {
		text   string
		income bool
	}

	type testCase struct {
		name string
		args args
		want string
	}

	tests := []testCase{
		{name: "Market", args: args{text: "Gastei 45,90 no mercado"}, want: "Alimentação"},
		{name: "CaseInsensitive", args: args{text: "UBER para o trabalho"}, want: "Transporte"},
		{name: "DeclarationOrderBreaksTies", args: args{text: "almoço na viagem"}, want: "Alimentação"},
		{name: "NumericKeywordWholeToken", args: args{text: "corrida no 99"}, want: "Transporte"},
		{name: "NumericKeywordInsideAmount", args: args{text: "199,90 na farmácia"}, want: "Saúde"},
		{name: "Housing", args: args{text: "conta de luz"}, want: "Moradia"},
		{name: "Debt", args: args{text: "parcela do carro"}, want: "Dívidas"},
		{name: "DefaultOther", args: args{text: "coisa aleatória"}, want: "Outros"},
		{name: "IncomeSalary", args: args{text: "recebi meu salário", income: true}, want: "Salário"},
		{name: "IncomeDefault", args: args{text: "recebi 50 reais", income: true}, want: "Outros"},
		{name: "IncomeRulesIgnoreExpenseKeywords", args: args{text: "mercado", income: true}, want: "Outros"},
	}

	ex := extract.New()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ex.Category(tt.args.text, tt.args.income))
		})
	}
}

func TestDefaultCategories(t *testing.T) {
	assert.Equal(t, []string{
		"Alimentação", "Transporte", "Moradia", "Lazer", "Saúde", "Educação", "Dívidas", "Outros",
	}, extract.ExpenseCategories())
	assert.Equal(t, []string{
		"Salário", "Freelance", "Investimentos", "Presente", "Outros",
	}, extract.IncomeCategories())
}
