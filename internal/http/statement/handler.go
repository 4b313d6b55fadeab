package statement

//go:generate mockgen -source=handler.go -destination=handler_mock.go -package=statement

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/finchat/internal/finance"
	"github.com/MrJamesThe3rd/finchat/internal/http/respond"
	"github.com/MrJamesThe3rd/finchat/internal/importer"
)

const maxUpload = 10 << 20

type Importer interface {
	Import(ctx context.Context, externalID int64, format importer.Format, r io.Reader) (*finance.ImportResult, error)
	Confirm(ctx context.Context, externalID int64, params []finance.TransactionParams) ([]*finance.Transaction, error)
}

type Handler struct {
	importer Importer
}

func NewHandler(imp Importer) *Handler {
	return &Handler{importer: imp}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importStatement)
	r.Post("/confirm", h.confirmImport)
}

type transactionResponse struct {
	ID             uuid.UUID    `json:"id"`
	Amount         int64        `json:"amount"`
	Type           finance.Type `json:"type"`
	Category       string       `json:"category"`
	Description    string       `json:"description"`
	RawDescription string       `json:"raw_description,omitempty"`
	Date           time.Time    `json:"date"`
	CreatedAt      time.Time    `json:"created_at"`
}

type importSuccessResponse struct {
	Imported     int                   `json:"imported"`
	Transactions []transactionResponse `json:"transactions"`
}

type paramsDTO struct {
	Amount         int64        `json:"amount"`
	Type           finance.Type `json:"type"`
	Category       string       `json:"category"`
	Description    string       `json:"description"`
	RawDescription string       `json:"raw_description"`
	Date           time.Time    `json:"date"`
}

type conflictDTO struct {
	Incoming paramsDTO           `json:"incoming"`
	Existing transactionResponse `json:"existing"`
}

type importConflictResponse struct {
	New       []paramsDTO   `json:"new"`
	Conflicts []conflictDTO `json:"conflicts"`
}

type confirmRequest struct {
	UserID int64       `json:"user_id"`
	Params []paramsDTO `json:"params"`
}

// importStatement takes a multipart form with user_id, file and an optional
// format overriding the file extension.
func (h *Handler) importStatement(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUpload); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	userID, err := strconv.ParseInt(r.FormValue("user_id"), 10, 64)
	if err != nil || userID == 0 {
		http.Error(w, "user_id field is required", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	name := header.Filename
	if f := r.FormValue("format"); f != "" {
		name = f
	}

	format, ok := importer.FormatOf(name)
	if !ok {
		http.Error(w, "unsupported statement format", http.StatusBadRequest)
		return
	}

	result, err := h.importer.Import(r.Context(), userID, format, file)
	if err != nil {
		respond.Error(w, err)
		return
	}

	if len(result.Conflicts) > 0 {
		resp := importConflictResponse{
			New:       make([]paramsDTO, 0, len(result.New)),
			Conflicts: make([]conflictDTO, 0, len(result.Conflicts)),
		}

		for _, p := range result.New {
			resp.New = append(resp.New, toParamsDTO(p))
		}

		for _, c := range result.Conflicts {
			resp.Conflicts = append(resp.Conflicts, conflictDTO{
				Incoming: toParamsDTO(c.Incoming),
				Existing: toTxResponse(c.Existing),
			})
		}

		respond.JSON(w, http.StatusConflict, resp)

		return
	}

	respond.JSON(w, http.StatusCreated, toSuccessResponse(result.Imported))
}

func (h *Handler) confirmImport(w http.ResponseWriter, r *http.Request) {
	var req confirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	if req.UserID == 0 {
		http.Error(w, "user_id is required", http.StatusBadRequest)
		return
	}

	params := make([]finance.TransactionParams, 0, len(req.Params))
	for _, p := range req.Params {
		params = append(params, finance.TransactionParams{
			Amount:         p.Amount,
			Type:           p.Type,
			Category:       p.Category,
			Description:    p.Description,
			RawDescription: p.RawDescription,
			Date:           p.Date,
		})
	}

	txs, err := h.importer.Confirm(r.Context(), req.UserID, params)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toSuccessResponse(txs))
}

func toSuccessResponse(txs []*finance.Transaction) importSuccessResponse {
	responses := make([]transactionResponse, 0, len(txs))
	for _, tx := range txs {
		responses = append(responses, toTxResponse(tx))
	}

	return importSuccessResponse{
		Imported:     len(txs),
		Transactions: responses,
	}
}

func toTxResponse(tx *finance.Transaction) transactionResponse {
	return transactionResponse{
		ID:             tx.ID,
		Amount:         tx.Amount,
		Type:           tx.Type,
		Category:       tx.Category,
		Description:    tx.Description,
		RawDescription: tx.RawDescription,
		Date:           tx.Date,
		CreatedAt:      tx.CreatedAt,
	}
}

func toParamsDTO(p finance.TransactionParams) paramsDTO {
	return paramsDTO{
		Amount:         p.Amount,
		Type:           p.Type,
		Category:       p.Category,
		Description:    p.Description,
		RawDescription: p.RawDescription,
		Date:           p.Date,
	}
}
