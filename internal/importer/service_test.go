package importer_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/finchat/internal/finance"
	"github.com/MrJamesThe3rd/finchat/internal/importer"
)

const externalID int64 = 42

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

const statement = `Data;Descrição;Valor
05/03/2025;SUPERMERCADO DIA;-45,90
06/03/2025;PIX SALARIO ACME;3.000,00
07/03/2025;NETFLIX;-39,90
`

func TestService_Import(t *testing.T) {
	ctrl := gomock.NewController(t)
	fin := importer.NewMockFinance(ctrl)
	matcher := importer.NewMockMatcher(ctrl)

	matcher.EXPECT().Suggest(gomock.Any(), externalID, "SUPERMERCADO DIA", false).Return("", nil)
	matcher.EXPECT().Suggest(gomock.Any(), externalID, "PIX SALARIO ACME", true).Return("", errors.New("timeout"))
	matcher.EXPECT().Suggest(gomock.Any(), externalID, "NETFLIX", false).Return("Lazer", nil)

	want := []finance.TransactionParams{
		{Type: finance.TypeExpense, Amount: 4590, Category: "Alimentação", Description: "SUPERMERCADO DIA", RawDescription: "SUPERMERCADO DIA", Date: date(2025, 3, 5)},
		{Type: finance.TypeIncome, Amount: 300000, Category: "Salário", Description: "PIX SALARIO ACME", RawDescription: "PIX SALARIO ACME", Date: date(2025, 3, 6)},
		{Type: finance.TypeExpense, Amount: 3990, Category: "Lazer", Description: "NETFLIX", RawDescription: "NETFLIX", Date: date(2025, 3, 7)},
	}

	result := &finance.ImportResult{Imported: []*finance.Transaction{{}, {}, {}}}
	fin.EXPECT().ImportBatch(gomock.Any(), externalID, want).Return(result, nil)

	svc := importer.NewService(fin, matcher)

	got, err := svc.Import(context.Background(), externalID, importer.FormatCSV, strings.NewReader(statement))
	require.NoError(t, err)
	assert.Same(t, result, got)
}

func TestService_Import_UnknownFormat(t *testing.T) {
	ctrl := gomock.NewController(t)

	svc := importer.NewService(importer.NewMockFinance(ctrl), importer.NewMockMatcher(ctrl))

	_, err := svc.Import(context.Background(), externalID, "xlsx", strings.NewReader(statement))
	assert.ErrorIs(t, err, importer.ErrUnknownFormat)
}

func TestService_Import_NotRegistered(t *testing.T) {
	ctrl := gomock.NewController(t)
	fin := importer.NewMockFinance(ctrl)
	matcher := importer.NewMockMatcher(ctrl)

	matcher.EXPECT().Suggest(gomock.Any(), externalID, gomock.Any(), gomock.Any()).Return("", nil).AnyTimes()
	fin.EXPECT().ImportBatch(gomock.Any(), externalID, gomock.Len(3)).Return(nil, finance.ErrNotRegistered)

	svc := importer.NewService(fin, matcher)

	_, err := svc.Import(context.Background(), externalID, importer.FormatCSV, strings.NewReader(statement))
	assert.ErrorIs(t, err, finance.ErrNotRegistered)
}

func TestService_Confirm(t *testing.T) {
	ctrl := gomock.NewController(t)
	fin := importer.NewMockFinance(ctrl)

	params := []finance.TransactionParams{{Type: finance.TypeExpense, Amount: 100, Description: "x", RawDescription: "x"}}
	txs := []*finance.Transaction{{Amount: 100}}

	fin.EXPECT().CreateBatch(gomock.Any(), externalID, params).Return(txs, nil)

	got, err := importer.NewService(fin, importer.NewMockMatcher(ctrl)).Confirm(context.Background(), externalID, params)
	require.NoError(t, err)
	assert.Equal(t, txs, got)
}

func TestFormatOf(t *testing.T) {
	type testCase struct {
		name   string
		input  string
		want   importer.Format
		wantOK bool
	}

	tests := []testCase{
		{name: "CSVFile", input: "extrato.CSV", want: importer.FormatCSV, wantOK: true},
		{name: "QFXFile", input: "nubank.qfx", want: importer.FormatOFX, wantOK: true},
		{name: "BareName", input: "ofx", want: importer.FormatOFX, wantOK: true},
		{name: "Unknown", input: "planilha.xlsx", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := importer.FormatOf(tt.input)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
