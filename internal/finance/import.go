package finance

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type ImportResult struct {
	Imported  []*Transaction
	New       []TransactionParams
	Conflicts []Conflict
}

// Conflict pairs an incoming row with the stored transaction it duplicates.
type Conflict struct {
	Incoming TransactionParams
	Existing *Transaction
}

type dupKey struct {
	Date           string
	Amount         int64
	Type           Type
	RawDescription string
}

func keyOf(date time.Time, amount int64, typ Type, raw string) dupKey {
	return dupKey{
		Date:           date.Format(time.DateOnly),
		Amount:         amount,
		Type:           typ,
		RawDescription: raw,
	}
}

// ImportBatch stores imported statement rows. When any row matches a stored
// transaction on date, amount, type and raw description nothing is written and
// the result lists the conflicts and the remaining new rows, to be confirmed
// through CreateBatch.
func (s *Service) ImportBatch(ctx context.Context, externalID int64, params []TransactionParams) (*ImportResult, error) {
	if len(params) == 0 {
		return &ImportResult{}, nil
	}

	u, err := s.FindUser(ctx, externalID)
	if err != nil {
		return nil, err
	}

	itx, err := s.repo.BeginImport(ctx, u.ID)
	if err != nil {
		return nil, fmt.Errorf("begin import: %w", err)
	}
	defer itx.Rollback()

	duplicates, err := itx.FindDuplicates(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("find duplicates: %w", err)
	}

	lookup := make(map[dupKey]*Transaction, len(duplicates))
	for _, d := range duplicates {
		lookup[keyOf(d.Date, d.Amount, d.Type, d.RawDescription)] = d
	}

	var (
		fresh     []TransactionParams
		conflicts []Conflict
	)

	for _, p := range params {
		if existing, found := lookup[keyOf(p.Date, p.Amount, p.Type, p.RawDescription)]; found {
			conflicts = append(conflicts, Conflict{Incoming: p, Existing: existing})
			continue
		}

		fresh = append(fresh, p)
	}

	if len(conflicts) > 0 {
		return &ImportResult{New: fresh, Conflicts: conflicts}, nil
	}

	txs, err := s.storeBatch(ctx, itx, u.ID, fresh)
	if err != nil {
		return nil, err
	}

	return &ImportResult{Imported: txs}, nil
}

// CreateBatch stores rows without duplicate detection.
func (s *Service) CreateBatch(ctx context.Context, externalID int64, params []TransactionParams) ([]*Transaction, error) {
	if len(params) == 0 {
		return nil, nil
	}

	u, err := s.FindUser(ctx, externalID)
	if err != nil {
		return nil, err
	}

	itx, err := s.repo.BeginImport(ctx, u.ID)
	if err != nil {
		return nil, fmt.Errorf("begin import: %w", err)
	}
	defer itx.Rollback()

	return s.storeBatch(ctx, itx, u.ID, params)
}

func (s *Service) storeBatch(ctx context.Context, itx ImportTx, userID uuid.UUID, params []TransactionParams) ([]*Transaction, error) {
	type catKey struct {
		name   string
		income bool
	}

	cache := make(map[catKey]*Category)
	txs := make([]*Transaction, 0, len(params))

	for _, p := range params {
		if p.Amount <= 0 {
			return nil, fmt.Errorf("row %q: %w", p.RawDescription, ErrInvalidAmount)
		}

		k := catKey{name: strings.ToLower(p.Category), income: p.Type == TypeIncome}

		cat, ok := cache[k]
		if !ok {
			var err error

			cat, err = s.resolveCategory(ctx, userID, p.Category, k.income)
			if err != nil {
				return nil, err
			}

			cache[k] = cat
		}

		txs = append(txs, s.newTransaction(userID, cat, p))
	}

	if err := itx.CreateTransactions(ctx, txs); err != nil {
		return nil, fmt.Errorf("create transactions: %w", err)
	}

	if err := itx.Commit(); err != nil {
		return nil, fmt.Errorf("commit import: %w", err)
	}

	return txs, nil
}
