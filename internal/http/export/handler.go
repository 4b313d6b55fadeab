package export

//go:generate mockgen -source=handler.go -destination=handler_mock.go -package=export

import (
	"archive/zip"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/finchat/internal/export"
	"github.com/MrJamesThe3rd/finchat/internal/finance"
	"github.com/MrJamesThe3rd/finchat/internal/http/respond"
)

type Transactions interface {
	ListUserTransactions(ctx context.Context, externalID int64, from, to *time.Time) ([]*finance.Transaction, error)
}

type Exporter interface {
	Export(format export.Format, txs []*finance.Transaction) (*export.File, error)
}

type Handler struct {
	txs      Transactions
	exporter Exporter
	now      func() time.Time
}

func NewHandler(txs Transactions, exporter Exporter) *Handler {
	return &Handler{txs: txs, exporter: exporter, now: time.Now}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.file)
	r.Post("/download", h.download)
}

type exportRequest struct {
	UserID    int64      `json:"user_id"`
	Format    string     `json:"format"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request) (exportRequest, []*finance.Transaction, bool) {
	var req exportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return req, nil, false
	}

	if req.UserID == 0 {
		http.Error(w, "user_id is required", http.StatusBadRequest)
		return req, nil, false
	}

	txs, err := h.txs.ListUserTransactions(r.Context(), req.UserID, req.StartDate, req.EndDate)
	if err != nil {
		respond.Error(w, err)
		return req, nil, false
	}

	return req, txs, true
}

// file returns the transactions encoded in the requested format.
func (h *Handler) file(w http.ResponseWriter, r *http.Request) {
	req, txs, ok := h.decode(w, r)
	if !ok {
		return
	}

	format, ok := export.ParseFormat(req.Format)
	if !ok {
		http.Error(w, fmt.Sprintf("unknown export format %q", req.Format), http.StatusBadRequest)
		return
	}

	f, err := h.exporter.Export(format, txs)
	if err != nil {
		respond.Error(w, err)
		return
	}

	w.Header().Set("Content-Type", f.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", f.Name))

	if _, err := w.Write(f.Data); err != nil {
		slog.Error("failed to write export", "error", err)
	}
}

// download bundles every format into one zip archive.
func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	_, txs, ok := h.decode(w, r)
	if !ok {
		return
	}

	files := make([]*export.File, 0, len(export.Formats()))

	for _, format := range export.Formats() {
		f, err := h.exporter.Export(format, txs)
		if err != nil {
			respond.Error(w, err)
			return
		}

		files = append(files, f)
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=\"financas_%s.zip\"", h.now().Format("20060102")))

	zipWriter := zip.NewWriter(w)
	defer zipWriter.Close()

	for _, f := range files {
		zf, err := zipWriter.Create(f.Name)
		if err != nil {
			slog.Error("failed to create zip entry", "error", err, "file", f.Name)
			return
		}

		if _, err := zf.Write(f.Data); err != nil {
			slog.Error("failed to write zip entry", "error", err, "file", f.Name)
			return
		}
	}
}
