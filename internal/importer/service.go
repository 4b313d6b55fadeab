package importer

//go:generate mockgen -source=service.go -destination=service_mock.go -package=importer

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/MrJamesThe3rd/finchat/internal/extract"
	"github.com/MrJamesThe3rd/finchat/internal/finance"
	"github.com/MrJamesThe3rd/finchat/internal/importer/bankcsv"
	"github.com/MrJamesThe3rd/finchat/internal/importer/ofx"
)

type Finance interface {
	ImportBatch(ctx context.Context, externalID int64, params []finance.TransactionParams) (*finance.ImportResult, error)
	CreateBatch(ctx context.Context, externalID int64, params []finance.TransactionParams) ([]*finance.Transaction, error)
}

// Matcher looks up categories learned from earlier entries.
type Matcher interface {
	Suggest(ctx context.Context, externalID int64, text string, income bool) (string, error)
}

type Service struct {
	parsers   map[Format]Parser
	finance   Finance
	matcher   Matcher
	extractor *extract.Extractor
}

func NewService(fin Finance, matcher Matcher) *Service {
	return &Service{
		parsers: map[Format]Parser{
			FormatCSV: bankcsv.NewParser(),
			FormatOFX: ofx.NewParser(),
		},
		finance:   fin,
		matcher:   matcher,
		extractor: extract.New(),
	}
}

// Import parses a statement, categorizes every row and hands the batch to
// finance. Rows duplicating stored transactions come back as conflicts and
// nothing is written until Confirm.
func (s *Service) Import(ctx context.Context, externalID int64, format Format, r io.Reader) (*finance.ImportResult, error) {
	params, err := s.parse(format, r)
	if err != nil {
		return nil, err
	}

	s.categorize(ctx, externalID, params)

	result, err := s.finance.ImportBatch(ctx, externalID, params)
	if err != nil {
		return nil, fmt.Errorf("importing statement: %w", err)
	}

	return result, nil
}

// Confirm stores rows the user already reviewed, skipping duplicate checks.
func (s *Service) Confirm(ctx context.Context, externalID int64, params []finance.TransactionParams) ([]*finance.Transaction, error) {
	txs, err := s.finance.CreateBatch(ctx, externalID, params)
	if err != nil {
		return nil, fmt.Errorf("confirming import: %w", err)
	}

	return txs, nil
}

func (s *Service) parse(format Format, r io.Reader) ([]finance.TransactionParams, error) {
	p, ok := s.parsers[format]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}

	params, err := p.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing %s statement: %w: %w", format, ErrMalformed, err)
	}

	return params, nil
}

// categorize prefers a learned rule and falls back to the keyword table.
func (s *Service) categorize(ctx context.Context, externalID int64, params []finance.TransactionParams) {
	for i := range params {
		p := &params[i]
		if p.Category != "" {
			continue
		}

		income := p.Type == finance.TypeIncome

		cat, err := s.matcher.Suggest(ctx, externalID, p.Description, income)
		if err != nil {
			slog.Warn("failed to suggest category", "error", err, "description", p.Description)
		}

		if cat == "" {
			cat = s.extractor.Category(p.Description, income)
		}

		p.Category = cat
	}
}
