// Package respond writes JSON bodies and maps domain errors to status codes.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/MrJamesThe3rd/finchat/internal/export"
	"github.com/MrJamesThe3rd/finchat/internal/finance"
	"github.com/MrJamesThe3rd/finchat/internal/importer"
)

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Error writes err with the status of its domain sentinel. Unknown errors are
// logged and hidden behind a 500.
func Error(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, finance.ErrNotRegistered):
		http.Error(w, finance.NotRegisteredMessage, http.StatusNotFound)
	case errors.Is(err, finance.ErrNotFound), errors.Is(err, finance.ErrCategoryNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, finance.ErrInvalidAmount),
		errors.Is(err, importer.ErrUnknownFormat),
		errors.Is(err, importer.ErrMalformed),
		errors.Is(err, export.ErrUnknownFormat):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		slog.Error("request failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
