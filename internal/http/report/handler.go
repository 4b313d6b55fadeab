package report

//go:generate mockgen -source=handler.go -destination=handler_mock.go -package=report

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/finchat/internal/finance"
	"github.com/MrJamesThe3rd/finchat/internal/http/respond"
	"github.com/MrJamesThe3rd/finchat/internal/report"
)

const maxComparisonMonths = 12

type Finance interface {
	MonthlySummary(ctx context.Context, externalID int64, year int, month time.Month) (*finance.MonthlySummary, error)
	MonthlyComparison(ctx context.Context, externalID int64, months int) ([]finance.MonthTotals, error)
}

type Handler struct {
	finance Finance
	now     func() time.Time
}

func NewHandler(fin Finance) *Handler {
	return &Handler{finance: fin, now: time.Now}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/{userID}/monthly", h.monthly)
	r.Get("/{userID}/comparison", h.comparison)
}

type categoryResponse struct {
	Category string `json:"category"`
	Amount   int64  `json:"amount"`
}

type budgetResponse struct {
	Category   string  `json:"category"`
	Budget     int64   `json:"budget"`
	Spent      int64   `json:"spent"`
	Percentage float64 `json:"percentage"`
}

type monthlyResponse struct {
	Year       int                `json:"year"`
	Month      int                `json:"month"`
	Currency   string             `json:"currency"`
	Income     int64              `json:"income"`
	Expense    int64              `json:"expense"`
	Balance    int64              `json:"balance"`
	Categories []categoryResponse `json:"categories"`
	Budgets    []budgetResponse   `json:"budgets"`
	Insights   []string           `json:"insights"`
}

type monthResponse struct {
	Year    int   `json:"year"`
	Month   int   `json:"month"`
	Income  int64 `json:"income"`
	Expense int64 `json:"expense"`
}

// monthly serves one month, the current one unless year and month are given.
func (h *Handler) monthly(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUser(w, r)
	if !ok {
		return
	}

	now := h.now()
	year, month := now.Year(), now.Month()

	if v := r.URL.Query().Get("year"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "invalid year", http.StatusBadRequest)
			return
		}

		year = y
	}

	if v := r.URL.Query().Get("month"); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil || m < 1 || m > 12 {
			http.Error(w, "invalid month", http.StatusBadRequest)
			return
		}

		month = time.Month(m)
	}

	sum, err := h.finance.MonthlySummary(r.Context(), userID, year, month)
	if err != nil {
		respond.Error(w, err)
		return
	}

	resp := monthlyResponse{
		Year:       sum.Year,
		Month:      int(sum.Month),
		Income:     sum.Income,
		Expense:    sum.Expense,
		Balance:    sum.Balance(),
		Categories: make([]categoryResponse, 0, len(sum.ByCategory)),
		Budgets:    make([]budgetResponse, 0, len(sum.Budgets)),
		Insights:   report.Insights(sum, nil),
	}

	if sum.User != nil {
		resp.Currency = sum.User.Currency
	}

	for _, c := range sum.ByCategory {
		resp.Categories = append(resp.Categories, categoryResponse{Category: c.Category, Amount: c.Amount})
	}

	for _, b := range sum.Budgets {
		resp.Budgets = append(resp.Budgets, budgetResponse{
			Category:   b.Category,
			Budget:     b.Budget,
			Spent:      b.Spent,
			Percentage: b.Percentage(),
		})
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) comparison(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUser(w, r)
	if !ok {
		return
	}

	months := report.ComparisonMonths

	if v := r.URL.Query().Get("months"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > maxComparisonMonths {
			http.Error(w, "months must be between 1 and 12", http.StatusBadRequest)
			return
		}

		months = n
	}

	totals, err := h.finance.MonthlyComparison(r.Context(), userID, months)
	if err != nil {
		respond.Error(w, err)
		return
	}

	resp := make([]monthResponse, 0, len(totals))
	for _, m := range totals {
		resp = append(resp, monthResponse{Year: m.Year, Month: int(m.Month), Income: m.Income, Expense: m.Expense})
	}

	respond.JSON(w, http.StatusOK, resp)
}

func pathUser(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil || id == 0 {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return 0, false
	}

	return id, true
}
