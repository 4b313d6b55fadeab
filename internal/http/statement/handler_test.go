package statement_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/finchat/internal/finance"
	"github.com/MrJamesThe3rd/finchat/internal/http/statement"
	"github.com/MrJamesThe3rd/finchat/internal/importer"
)

var day = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func newRouter(t *testing.T) (http.Handler, *statement.MockImporter) {
	t.Helper()

	imp := statement.NewMockImporter(gomock.NewController(t))

	r := chi.NewRouter()
	statement.NewHandler(imp).Routes(r)

	return r, imp
}

func upload(t *testing.T, fields map[string]string, filename, content string) *http.Request {
	t.Helper()

	var body bytes.Buffer

	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}

	if filename != "" {
		fw, err := mw.CreateFormFile("file", filename)
		require.NoError(t, err)

		_, err = io.WriteString(fw, content)
		require.NoError(t, err)
	}

	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return req
}

const csvBody = "Data;Descrição;Valor\n10/03/2025;PADARIA;-12,50\n"

func TestHandler_Import(t *testing.T) {
	router, imp := newRouter(t)

	imp.EXPECT().Import(gomock.Any(), int64(42), importer.FormatCSV, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, _ importer.Format, r io.Reader) (*finance.ImportResult, error) {
			data, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, csvBody, string(data))

			return &finance.ImportResult{Imported: []*finance.Transaction{{
				ID: uuid.New(), Amount: 1250, Type: finance.TypeExpense, Category: "Alimentação",
				Description: "PADARIA", RawDescription: "PADARIA", Date: day,
			}}}, nil
		})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, upload(t, map[string]string{"user_id": "42"}, "extrato.csv", csvBody))

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Imported     int `json:"imported"`
		Transactions []struct {
			Amount   int64  `json:"amount"`
			Category string `json:"category"`
		} `json:"transactions"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	assert.Equal(t, 1, resp.Imported)
	require.Len(t, resp.Transactions, 1)
	assert.Equal(t, "Alimentação", resp.Transactions[0].Category)
}

func TestHandler_Import_FormatOverride(t *testing.T) {
	router, imp := newRouter(t)

	imp.EXPECT().Import(gomock.Any(), int64(42), importer.FormatOFX, gomock.Any()).Return(&finance.ImportResult{}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, upload(t, map[string]string{"user_id": "42", "format": "ofx"}, "statement.dat", "OFXHEADER:100"))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestHandler_Import_Conflicts(t *testing.T) {
	router, imp := newRouter(t)

	incoming := finance.TransactionParams{Type: finance.TypeExpense, Amount: 1250, RawDescription: "PADARIA", Date: day}
	fresh := finance.TransactionParams{Type: finance.TypeIncome, Amount: 500000, RawDescription: "SALARIO", Date: day}

	imp.EXPECT().Import(gomock.Any(), int64(42), importer.FormatCSV, gomock.Any()).Return(&finance.ImportResult{
		New: []finance.TransactionParams{fresh},
		Conflicts: []finance.Conflict{{
			Incoming: incoming,
			Existing: &finance.Transaction{ID: uuid.New(), Amount: 1250, Type: finance.TypeExpense, RawDescription: "PADARIA", Date: day},
		}},
	}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, upload(t, map[string]string{"user_id": "42"}, "extrato.csv", csvBody))

	require.Equal(t, http.StatusConflict, rec.Code)

	var resp struct {
		New       []json.RawMessage `json:"new"`
		Conflicts []json.RawMessage `json:"conflicts"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	assert.Len(t, resp.New, 1)
	assert.Len(t, resp.Conflicts, 1)
}

func TestHandler_Import_BadRequests(t *testing.T) {
	type testCase struct {
		name     string
		fields   map[string]string
		filename string
	}

	tests := []testCase{
		{name: "MissingUser", fields: map[string]string{}, filename: "extrato.csv"},
		{name: "MissingFile", fields: map[string]string{"user_id": "42"}},
		{name: "UnsupportedFormat", fields: map[string]string{"user_id": "42"}, filename: "extrato.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newRouter(t)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, upload(t, tt.fields, tt.filename, csvBody))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandler_Import_Errors(t *testing.T) {
	type testCase struct {
		name string
		err  error
		want int
	}

	tests := []testCase{
		{name: "NotRegistered", err: finance.ErrNotRegistered, want: http.StatusNotFound},
		{name: "Malformed", err: fmt.Errorf("parsing csv statement: %w", importer.ErrMalformed), want: http.StatusBadRequest},
		{name: "Storage", err: fmt.Errorf("importing statement: %w", assert.AnError), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, imp := newRouter(t)

			imp.EXPECT().Import(gomock.Any(), int64(42), importer.FormatCSV, gomock.Any()).Return(nil, tt.err)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, upload(t, map[string]string{"user_id": "42"}, "extrato.csv", csvBody))

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestHandler_Confirm(t *testing.T) {
	router, imp := newRouter(t)

	want := []finance.TransactionParams{{
		Type: finance.TypeExpense, Amount: 1250, Category: "Alimentação",
		Description: "Padaria", RawDescription: "PADARIA", Date: day,
	}}

	imp.EXPECT().Confirm(gomock.Any(), int64(42), want).
		Return([]*finance.Transaction{{ID: uuid.New(), Amount: 1250, Type: finance.TypeExpense, Date: day}}, nil)

	body := `{"user_id":42,"params":[{"amount":1250,"type":"expense","category":"Alimentação",` +
		`"description":"Padaria","raw_description":"PADARIA","date":"2025-03-10T00:00:00Z"}]}`

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/confirm", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"imported":1`)
}

func TestHandler_Confirm_InvalidBody(t *testing.T) {
	router, _ := newRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/confirm", strings.NewReader(`{"params":[]}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
