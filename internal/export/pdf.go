package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/MrJamesThe3rd/finchat/internal/extract"
	"github.com/MrJamesThe3rd/finchat/internal/finance"
)

const rowHeight = 6

// Column widths in mm; they add up to the A4 width inside 10mm margins.
var columnWidths = []float64{25, 22, 38, 70, 35}

func encodePDF(txs []*finance.Transaction, now time.Time) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(true, 15)
	pdf.SetTitle("Relatório de Transações", true)

	// Core fonts are cp1252; tr maps UTF-8 text onto it.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	tableHeader := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(230, 230, 230)

		for i, h := range header {
			pdf.CellFormat(columnWidths[i], rowHeight, tr(h), "1", 0, "C", true, 0, "")
		}

		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 9)
	}

	pdf.SetHeaderFunc(func() {
		if pdf.PageNo() > 1 {
			tableHeader()
		}
	})

	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, tr("Relatório de Transações"), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, tr("Gerado em "+extract.FormatDate(now)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	tableHeader()

	var income, expense int64

	for _, tx := range txs {
		r := row(tx)
		r[4] = finance.FormatAmount(tx.Amount)

		for i, c := range r {
			align := "L"
			if i == len(r)-1 {
				align = "R"
			}

			pdf.CellFormat(columnWidths[i], rowHeight, fit(pdf, tr(c), columnWidths[i]-2), "1", 0, align, false, 0, "")
		}

		pdf.Ln(-1)

		if tx.Type == finance.TypeIncome {
			income += tx.Amount
		} else {
			expense += tx.Amount
		}
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 7, tr(fmt.Sprintf("Receitas: %s   Despesas: %s   Saldo: %s",
		finance.FormatAmount(income),
		finance.FormatAmount(expense),
		finance.FormatAmount(income-expense),
	)), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// fit shortens s with an ellipsis until it is at most width mm wide.
func fit(pdf *fpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s) <= width {
		return s
	}

	b := []byte(s)
	for len(b) > 0 && pdf.GetStringWidth(string(b)+"...") > width {
		b = b[:len(b)-1]
	}

	return string(b) + "..."
}
