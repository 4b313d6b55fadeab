package export

import (
	"bytes"
	"encoding/csv"

	"github.com/MrJamesThe3rd/finchat/internal/finance"
)

func encodeCSV(txs []*finance.Transaction) ([]byte, error) {
	var buf bytes.Buffer

	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, tx := range txs {
		if err := w.Write(row(tx)); err != nil {
			return nil, err
		}
	}

	w.Flush()

	return buf.Bytes(), w.Error()
}
