package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/finchat/internal/finance"
)

// UpsertBudget replaces the amount when the category already has a budget
// for the month.
func (s *Store) UpsertBudget(ctx context.Context, b *finance.Budget) error {
	query := `
		INSERT INTO budgets (user_id, category_id, amount, month, year, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		ON CONFLICT (user_id, category_id, month, year)
		DO UPDATE SET amount = EXCLUDED.amount, updated_at = NOW()
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query, b.UserID, b.CategoryID, b.Amount, int(b.Month), b.Year).Scan(&b.ID)
	if err != nil {
		return fmt.Errorf("upserting budget: %w", err)
	}

	return nil
}

func (s *Store) ListBudgets(ctx context.Context, userID uuid.UUID, year int, month time.Month) ([]*finance.Budget, error) {
	query := `
		SELECT b.id, b.user_id, b.category_id, c.name, b.amount, b.month, b.year
		FROM budgets b
		JOIN categories c ON c.id = b.category_id
		WHERE b.user_id = $1 AND b.year = $2 AND b.month = $3
		ORDER BY c.name ASC
	`

	rows, err := s.db.QueryContext(ctx, query, userID, year, int(month))
	if err != nil {
		return nil, fmt.Errorf("listing budgets: %w", err)
	}
	defer rows.Close()

	var budgets []*finance.Budget

	for rows.Next() {
		var (
			b finance.Budget
			m int
		)

		if err := rows.Scan(&b.ID, &b.UserID, &b.CategoryID, &b.Category, &b.Amount, &m, &b.Year); err != nil {
			return nil, fmt.Errorf("scanning budget: %w", err)
		}

		b.Month = time.Month(m)
		budgets = append(budgets, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating budgets: %w", err)
	}

	return budgets, nil
}
