package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/MrJamesThe3rd/finchat/internal/extract"
	"github.com/MrJamesThe3rd/finchat/internal/finance"
)

const sheetName = "Transações"

// amountFormat is the built-in "#,##0.00" number format.
const amountFormat = 4

func encodeXLSX(txs []*finance.Transaction) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("naming sheet: %w", err)
	}

	head := make([]any, len(header))
	for i, h := range header {
		head[i] = h
	}

	if err := f.SetSheetRow(sheetName, "A1", &head); err != nil {
		return nil, fmt.Errorf("writing header: %w", err)
	}

	for i, tx := range txs {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}

		values := []any{
			extract.FormatDate(tx.Date),
			tx.Type.Label(),
			tx.Category,
			tx.Description,
			finance.Amount(tx.Amount).InexactFloat64(),
		}

		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("creating header style: %w", err)
	}

	if err := f.SetCellStyle(sheetName, "A1", "E1", bold); err != nil {
		return nil, fmt.Errorf("styling header: %w", err)
	}

	if len(txs) > 0 {
		money, err := f.NewStyle(&excelize.Style{NumFmt: amountFormat})
		if err != nil {
			return nil, fmt.Errorf("creating amount style: %w", err)
		}

		last, err := excelize.CoordinatesToCellName(5, len(txs)+1)
		if err != nil {
			return nil, err
		}

		if err := f.SetCellStyle(sheetName, "E2", last, money); err != nil {
			return nil, fmt.Errorf("styling amounts: %w", err)
		}
	}

	if err := f.SetColWidth(sheetName, "C", "C", 18); err != nil {
		return nil, err
	}

	if err := f.SetColWidth(sheetName, "D", "D", 40); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}

	return buf.Bytes(), nil
}
