package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/MrJamesThe3rd/finchat/internal/finance"
)

// ChartClient renders charts through a QuickChart compatible endpoint, which
// accepts a Chart.js configuration and answers with the image.
type ChartClient struct {
	url    string
	client *http.Client
}

func NewChartClient(url string, timeout time.Duration) *ChartClient {
	return &ChartClient{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

type chartRequest struct {
	Chart           chartConfig `json:"chart"`
	Width           int         `json:"width"`
	Height          int         `json:"height"`
	Format          string      `json:"format"`
	BackgroundColor string      `json:"backgroundColor"`
}

type chartConfig struct {
	Type    string       `json:"type"`
	Data    chartData    `json:"data"`
	Options chartOptions `json:"options"`
}

type chartData struct {
	Labels   []string       `json:"labels"`
	Datasets []chartDataset `json:"datasets"`
}

type chartDataset struct {
	Label           string    `json:"label,omitempty"`
	Data            []float64 `json:"data"`
	BackgroundColor any       `json:"backgroundColor,omitempty"`
}

type chartOptions struct {
	Title     chartTitle `json:"title"`
	IndexAxis string     `json:"indexAxis,omitempty"`
}

type chartTitle struct {
	Display bool   `json:"display"`
	Text    string `json:"text"`
}

const (
	colorExpense = "#ff6b6b"
	colorIncome  = "#51cf66"
	colorWarning = "#fcc419"
	colorBudget  = "#d3d3d3"
)

var palette = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd", "#8c564b",
	"#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

func (c *ChartClient) PieChart(ctx context.Context, title string, amounts []finance.CategoryAmount, _ string) ([]byte, error) {
	labels := make([]string, len(amounts))
	values := make([]float64, len(amounts))
	colors := make([]string, len(amounts))

	for i, a := range amounts {
		labels[i] = a.Category
		values[i] = finance.Amount(a.Amount).InexactFloat64()
		colors[i] = palette[i%len(palette)]
	}

	return c.render(ctx, chartConfig{
		Type: "pie",
		Data: chartData{
			Labels:   labels,
			Datasets: []chartDataset{{Data: values, BackgroundColor: colors}},
		},
		Options: chartOptions{Title: chartTitle{Display: true, Text: title}},
	})
}

func (c *ChartClient) ComparisonChart(ctx context.Context, months []finance.MonthTotals, currency string) ([]byte, error) {
	labels := make([]string, len(months))
	expenses := make([]float64, len(months))
	incomes := make([]float64, len(months))

	for i, m := range months {
		labels[i] = shortMonth(m.Year, m.Month)
		expenses[i] = finance.Amount(m.Expense).InexactFloat64()
		incomes[i] = finance.Amount(m.Income).InexactFloat64()
	}

	return c.render(ctx, chartConfig{
		Type: "bar",
		Data: chartData{
			Labels: labels,
			Datasets: []chartDataset{
				{Label: "Despesas", Data: expenses, BackgroundColor: colorExpense},
				{Label: "Receitas", Data: incomes, BackgroundColor: colorIncome},
			},
		},
		Options: chartOptions{Title: chartTitle{Display: true, Text: "Comparação de Despesas e Receitas por Mês (" + currency + ")"}},
	})
}

func (c *ChartClient) BudgetChart(ctx context.Context, budgets []finance.BudgetStatus, currency string) ([]byte, error) {
	labels := make([]string, len(budgets))
	limits := make([]float64, len(budgets))
	spent := make([]float64, len(budgets))
	colors := make([]string, len(budgets))

	for i, b := range budgets {
		labels[i] = b.Category
		limits[i] = finance.Amount(b.Budget).InexactFloat64()
		spent[i] = finance.Amount(b.Spent).InexactFloat64()

		switch p := b.Percentage(); {
		case p < 80:
			colors[i] = colorIncome
		case p < 100:
			colors[i] = colorWarning
		default:
			colors[i] = colorExpense
		}
	}

	return c.render(ctx, chartConfig{
		Type: "bar",
		Data: chartData{
			Labels: labels,
			Datasets: []chartDataset{
				{Label: "Orçamento", Data: limits, BackgroundColor: colorBudget},
				{Label: "Gasto", Data: spent, BackgroundColor: colors},
			},
		},
		Options: chartOptions{
			Title:     chartTitle{Display: true, Text: "Progresso do Orçamento por Categoria (" + currency + ")"},
			IndexAxis: "y",
		},
	})
}

func (c *ChartClient) render(ctx context.Context, cfg chartConfig) ([]byte, error) {
	body, err := json.Marshal(chartRequest{
		Chart:           cfg,
		Width:           800,
		Height:          500,
		Format:          "png",
		BackgroundColor: "white",
	})
	if err != nil {
		return nil, fmt.Errorf("encoding chart: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rendering chart: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rendering chart: unexpected status %d", resp.StatusCode)
	}

	png, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading chart: %w", err)
	}

	return png, nil
}
