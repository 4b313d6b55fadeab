// Package importer turns bank statement files into transactions.
package importer

import (
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/MrJamesThe3rd/finchat/internal/finance"
)

type Format string

const (
	FormatCSV Format = "csv"
	FormatOFX Format = "ofx"
)

var (
	ErrUnknownFormat = errors.New("unknown statement format")
	ErrMalformed     = errors.New("malformed statement")
)

// Parser reads a statement into uncategorized transactions. Amounts are
// positive cents; Type carries the sign.
type Parser interface {
	Parse(r io.Reader) ([]finance.TransactionParams, error)
}

// FormatOf picks the format from a file name, or from an explicit format
// name when the caller has one.
func FormatOf(name string) (Format, bool) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if ext == "" {
		ext = strings.ToLower(strings.TrimSpace(name))
	}

	switch ext {
	case "csv", "txt":
		return FormatCSV, true
	case "ofx", "qfx":
		return FormatOFX, true
	}

	return "", false
}
