// Package export renders a user's transactions as a downloadable file.
package export

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MrJamesThe3rd/finchat/internal/extract"
	"github.com/MrJamesThe3rd/finchat/internal/finance"
)

type Format string

const (
	FormatCSV   Format = "csv"
	FormatExcel Format = "excel"
	FormatPDF   Format = "pdf"
)

var ErrUnknownFormat = errors.New("unknown export format")

var formats = []struct {
	format      Format
	label       string
	extension   string
	contentType string
}{
	{FormatCSV, "CSV", "csv", "text/csv; charset=utf-8"},
	{FormatExcel, "Excel", "xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
	{FormatPDF, "PDF", "pdf", "application/pdf"},
}

// Formats lists the supported formats in menu order.
func Formats() []Format {
	out := make([]Format, len(formats))
	for i, f := range formats {
		out[i] = f.format
	}

	return out
}

func (f Format) Label() string {
	for _, d := range formats {
		if d.format == f {
			return d.label
		}
	}

	return string(f)
}

// ParseFormat accepts the identifier or the label, case-insensitively.
func ParseFormat(s string) (Format, bool) {
	s = strings.ToLower(strings.TrimSpace(s))

	for _, d := range formats {
		if s == string(d.format) || s == strings.ToLower(d.label) || s == d.extension {
			return d.format, true
		}
	}

	return "", false
}

// File is an encoded export ready to be sent to the user.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

var header = []string{"Data", "Tipo", "Categoria", "Descrição", "Valor"}

type Service struct {
	now func() time.Time
}

func NewService() *Service {
	return &Service{now: time.Now}
}

// NewServiceWithClock stamps file names with now instead of the wall clock.
func NewServiceWithClock(now func() time.Time) *Service {
	return &Service{now: now}
}

// Export encodes txs in the given format. The file is named
// financas_YYYYMMDD.<ext>.
func (s *Service) Export(format Format, txs []*finance.Transaction) (*File, error) {
	var (
		data []byte
		err  error
	)

	switch format {
	case FormatCSV:
		data, err = encodeCSV(txs)
	case FormatExcel:
		data, err = encodeXLSX(txs)
	case FormatPDF:
		data, err = encodePDF(txs, s.now())
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}

	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", format, err)
	}

	for _, d := range formats {
		if d.format == format {
			return &File{
				Name:        "financas_" + s.now().Format("20060102") + "." + d.extension,
				ContentType: d.contentType,
				Data:        data,
			}, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
}

func row(tx *finance.Transaction) []string {
	return []string{
		extract.FormatDate(tx.Date),
		tx.Type.Label(),
		tx.Category,
		tx.Description,
		finance.Amount(tx.Amount).StringFixed(2),
	}
}
