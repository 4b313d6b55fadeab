// Package ofx reads OFX/QFX statements, the format most Brazilian banks offer
// next to CSV.
package ofx

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/aclindsa/ofxgo"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/finchat/internal/encoding"
	"github.com/MrJamesThe3rd/finchat/internal/extract"
	"github.com/MrJamesThe3rd/finchat/internal/finance"
)

var (
	severityPattern = regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)`)
	// SGML exports sometimes drop the closing bracket of a bare tag.
	openTagPattern = regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])\s*$`)
)

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]finance.TransactionParams, error) {
	utf8r, _, err := encoding.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	raw, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, fmt.Errorf("read statement: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(clean(string(raw))))
	if err != nil {
		return nil, fmt.Errorf("parse ofx: %w", err)
	}

	var entries []finance.TransactionParams

	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok && stmt.BankTranList != nil {
			entries = append(entries, convert(stmt.BankTranList.Transactions)...)
		}
	}

	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok && stmt.BankTranList != nil {
			entries = append(entries, convert(stmt.BankTranList.Transactions)...)
		}
	}

	return entries, nil
}

func clean(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")
	content = severityPattern.ReplaceAllStringFunc(content, strings.ToUpper)

	return openTagPattern.ReplaceAllString(content, "$1>")
}

func convert(txs []ofxgo.Transaction) []finance.TransactionParams {
	entries := make([]finance.TransactionParams, 0, len(txs))

	for _, tx := range txs {
		amount, err := decimal.NewFromString(tx.TrnAmt.FloatString(2))
		if err != nil || amount.IsZero() {
			continue
		}

		typ := finance.TypeIncome
		if amount.IsNegative() {
			typ = finance.TypeExpense
		}

		posted := tx.DtPosted.Time

		desc := description(tx)

		entries = append(entries, finance.TransactionParams{
			Date:           time.Date(posted.Year(), posted.Month(), posted.Day(), 0, 0, 0, 0, time.UTC),
			Description:    desc,
			RawDescription: desc,
			Amount:         extract.Cents(amount.Abs()),
			Type:           typ,
		})
	}

	return entries
}

// description prefers the payee, then NAME, then MEMO when NAME is empty.
func description(tx ofxgo.Transaction) string {
	if tx.Payee != nil && tx.Payee.Name != "" {
		return strings.TrimSpace(string(tx.Payee.Name))
	}

	if name := strings.TrimSpace(string(tx.Name)); name != "" {
		return name
	}

	return strings.TrimSpace(string(tx.Memo))
}
