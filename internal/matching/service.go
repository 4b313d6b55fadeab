// Package matching learns which category a user picks for a description and
// suggests it the next time a similar description appears.
package matching

import (
	"context"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MrJamesThe3rd/finchat/internal/extract"
)

const minKeywordLen = 3

// ignored words carry no category signal: articles, prepositions, the verbs
// that open a chat entry and date words.
var ignored = map[string]bool{
	"com": true, "sem": true, "para": true, "pra": true, "por": true, "pelo": true, "pela": true,
	"dos": true, "das": true, "nos": true, "nas": true, "num": true, "numa": true,
	"uma": true, "uns": true, "umas": true, "que": true, "meu": true, "minha": true,
	"gastei": true, "recebi": true, "comprei": true, "paguei": true, "ganhei": true,
	"gasto": true, "despesa": true, "receita": true, "entrada": true, "pix": true,
	"reais": true, "real": true, "valor": true, "conta": true,
	"hoje": true, "ontem": true, "anteontem": true, "amanhã": true, "amanha": true, "dia": true,
}

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=matching
type Repository interface {
	// FindMatch returns the category of the rule whose words all occur in
	// words, preferring the rule with the most words.
	FindMatch(ctx context.Context, externalID int64, words []string, income bool) (string, error)
	CreateRule(ctx context.Context, externalID int64, pattern, category string, income bool) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Suggest returns the category of the most specific learned rule whose words
// all appear in text. Returns empty string if no match found.
func (s *Service) Suggest(ctx context.Context, externalID int64, text string, income bool) (string, error) {
	words := tokens(text)
	if len(words) == 0 {
		return "", nil
	}

	return s.repo.FindMatch(ctx, externalID, words, income)
}

// Learn remembers the significant words of description as a pattern for
// category. Descriptions without such words and the fallback category are
// not worth remembering.
func (s *Service) Learn(ctx context.Context, externalID int64, description, category string, income bool) error {
	if category == "" || category == extract.Other {
		return nil
	}

	pattern := Pattern(description)
	if pattern == "" {
		return nil
	}

	return s.repo.CreateRule(ctx, externalID, pattern, category, income)
}

// Pattern is the rule description would be learned as: its distinct
// keywords, space separated, in order of appearance.
func Pattern(description string) string {
	var out []string

	for _, w := range tokens(description) {
		if utf8.RuneCountInString(w) < minKeywordLen || ignored[w] || isNumber(w) || slices.Contains(out, w) {
			continue
		}

		out = append(out, w)
	}

	return strings.Join(out, " ")
}

// tokens splits lower-cased text on anything that is not a letter or digit.
func tokens(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func isNumber(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}

	return true
}
