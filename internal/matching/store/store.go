package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// FindMatch compares whole words, so a rule never matches inside a longer word.
func (s *Store) FindMatch(ctx context.Context, externalID int64, words []string, income bool) (string, error) {
	query := `
		SELECT r.category
		FROM category_rules r
		JOIN users u ON u.id = r.user_id
		WHERE u.external_id = $1 AND r.is_income = $2
			AND string_to_array(r.pattern, ' ') <@ string_to_array($3, ' ')
		ORDER BY cardinality(string_to_array(r.pattern, ' ')) DESC, LENGTH(r.pattern) DESC, r.created_at DESC
		LIMIT 1
	`

	var category string

	err := s.db.QueryRowContext(ctx, query, externalID, income, strings.Join(words, " ")).Scan(&category)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}

		return "", fmt.Errorf("finding match: %w", err)
	}

	return category, nil
}

// CreateRule stores the rule, replacing the category of an identical pattern.
func (s *Store) CreateRule(ctx context.Context, externalID int64, pattern, category string, income bool) error {
	query := `
		INSERT INTO category_rules (user_id, pattern, category, is_income, created_at)
		SELECT u.id, $2, $3, $4, NOW()
		FROM users u
		WHERE u.external_id = $1
		ON CONFLICT (user_id, pattern, is_income)
		DO UPDATE SET category = EXCLUDED.category, created_at = NOW()
	`

	_, err := s.db.ExecContext(ctx, query, externalID, pattern, category, income)
	if err != nil {
		return fmt.Errorf("creating rule: %w", err)
	}

	return nil
}
