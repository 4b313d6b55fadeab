package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MrJamesThe3rd/finchat/internal/finance"
)

func (s *Store) CreateFutureIncome(ctx context.Context, f *finance.FutureIncome) error {
	query := `
		INSERT INTO future_incomes (user_id, category_id, description, amount, expected_date, is_received, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		f.UserID,
		f.CategoryID,
		f.Description,
		f.Amount,
		f.ExpectedDate,
		f.IsReceived,
	).Scan(&f.ID, &f.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating future income: %w", err)
	}

	return nil
}

func (s *Store) ListFutureIncomes(ctx context.Context, filter finance.FutureIncomeFilter) ([]*finance.FutureIncome, error) {
	q := psql.Select(
		"f.id", "f.user_id", "f.category_id", "c.name", "f.description",
		"f.amount", "f.expected_date", "f.is_received", "f.created_at",
	).
		From("future_incomes f").
		Join("categories c ON c.id = f.category_id").
		Where(sq.Eq{"f.user_id": filter.UserID})

	if !filter.IncludeReceived {
		q = q.Where(sq.Eq{"f.is_received": false})
	}

	if filter.From != nil {
		q = q.Where(sq.GtOrEq{"f.expected_date": *filter.From})
	}

	if filter.To != nil {
		q = q.Where(sq.LtOrEq{"f.expected_date": *filter.To})
	}

	query, args, err := q.OrderBy("f.expected_date ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing future incomes: %w", err)
	}
	defer rows.Close()

	var incomes []*finance.FutureIncome

	for rows.Next() {
		var f finance.FutureIncome
		if err := rows.Scan(
			&f.ID, &f.UserID, &f.CategoryID, &f.Category, &f.Description,
			&f.Amount, &f.ExpectedDate, &f.IsReceived, &f.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning future income: %w", err)
		}

		incomes = append(incomes, &f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating future incomes: %w", err)
	}

	return incomes, nil
}
