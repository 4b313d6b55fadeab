package extract

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var amountPattern = regexp.MustCompile(`\d+(?:[.,]\d+)?`)

// Amount returns the first numeric token of text. A comma is read as the
// decimal separator. ok is false when the text holds no digits at all, so a
// literal "0" is still a found amount.
func (e *Extractor) Amount(text string) (amount decimal.Decimal, ok bool) {
	return findAmount(text)
}

// AmountSpan is like Amount but also returns the byte offsets of the token.
func (e *Extractor) AmountSpan(text string) (decimal.Decimal, [2]int, bool) {
	loc := amountPattern.FindStringIndex(text)
	if loc == nil {
		return decimal.Decimal{}, [2]int{}, false
	}

	d, ok := parseAmountToken(text[loc[0]:loc[1]])

	return d, [2]int{loc[0], loc[1]}, ok
}

func findAmount(text string) (decimal.Decimal, bool) {
	token := amountPattern.FindString(text)
	if token == "" {
		return decimal.Decimal{}, false
	}

	return parseAmountToken(token)
}

func parseAmountToken(token string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(strings.ReplaceAll(token, ",", "."))
	if err != nil {
		return decimal.Decimal{}, false
	}

	return d, true
}

// Cents converts a parsed amount to integer cents, rounding half away from zero.
func Cents(d decimal.Decimal) int64 {
	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
