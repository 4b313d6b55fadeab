// Package bankcsv reads the CSV statements exported by Brazilian banks.
package bankcsv

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/finchat/internal/encoding"
	"github.com/MrJamesThe3rd/finchat/internal/extract"
	"github.com/MrJamesThe3rd/finchat/internal/finance"
)

var ErrUnknownLayout = errors.New("no matching bank CSV layout")

var dateLayouts = []string{"02/01/2006", "2006-01-02", "02-01-2006", "02/01/06"}

var delimiters = []rune{';', ','}

// Parser detects the delimiter and the bank layout from the header row.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]finance.TransactionParams, error) {
	utf8r, _, err := encoding.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	data, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, fmt.Errorf("read statement: %w", err)
	}

	for _, delim := range delimiters {
		rows, err := readRows(data, delim)
		if err != nil {
			continue
		}

		profile, cols, headerIdx := detectProfile(rows)
		if profile == nil {
			continue
		}

		return parseRows(profile, cols, rows[headerIdx+1:], headerIdx+1)
	}

	return nil, fmt.Errorf("%w: expected columns like Data, Descrição and Valor", ErrUnknownLayout)
}

func readRows(data []byte, delim rune) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delim
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	return reader.ReadAll()
}

type colIndex map[string]int

func detectProfile(rows [][]string) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			if name := strings.ToLower(strings.TrimSpace(cell)); name != "" {
				cols[name] = i
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

// parseRows skips rows without a date or amount, which covers balance and
// page footer lines.
func parseRows(p *Profile, cols colIndex, rows [][]string, headerRow int) ([]finance.TransactionParams, error) {
	var entries []finance.TransactionParams

	for i, row := range rows {
		rowNum := headerRow + i + 1

		date, ok := parseDate(cellValue(row, cols[p.DateCol]))
		if !ok {
			continue
		}

		desc := description(p, cols, row)
		if desc == "" {
			return nil, fmt.Errorf("row %d: missing description", rowNum)
		}

		amount, typ, ok := rowAmount(p, cols, row)
		if !ok {
			continue
		}

		entries = append(entries, finance.TransactionParams{
			Date:           date,
			Description:    desc,
			RawDescription: desc,
			Amount:         amount,
			Type:           typ,
		})
	}

	return entries, nil
}

func description(p *Profile, cols colIndex, row []string) string {
	var parts []string

	for _, c := range p.DescCols {
		if v := cellValue(row, cols[c]); v != "" {
			parts = append(parts, v)
		}
	}

	return strings.Join(parts, " - ")
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

func rowAmount(p *Profile, cols colIndex, row []string) (int64, finance.Type, bool) {
	switch p.AmountMode {
	case amountSingle:
		cents, ok := parseAmount(cellValue(row, cols[p.AmountCol]))
		if !ok || cents == 0 {
			return 0, "", false
		}

		if p.ExpensePositive {
			cents = -cents
		}

		if cents < 0 {
			return -cents, finance.TypeExpense, true
		}

		return cents, finance.TypeIncome, true
	case amountSplit:
		if cents, ok := parseAmount(cellValue(row, cols[p.DebitCol])); ok && cents != 0 {
			return abs(cents), finance.TypeExpense, true
		}

		if cents, ok := parseAmount(cellValue(row, cols[p.CreditCol])); ok && cents != 0 {
			return abs(cents), finance.TypeIncome, true
		}
	}

	return 0, "", false
}

// parseAmount reads "1.234,56", "-45,90", "R$ 10,00" and dot-decimal
// "45.90" into cents.
func parseAmount(s string) (int64, bool) {
	s = strings.ReplaceAll(s, "R$", "")
	s = strings.Join(strings.Fields(s), "")

	if s == "" {
		return 0, false
	}

	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, false
	}

	return extract.Cents(d), true
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}

	return n
}
