package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/finchat/internal/finance"
)

type Store struct {
	db *sql.DB
}

var _ finance.Repository = (*Store)(nil)

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func (s *Store) FindUser(ctx context.Context, externalID int64) (*finance.User, error) {
	query := `
		SELECT id, external_id, name, currency, monthly_income, created_at
		FROM users
		WHERE external_id = $1
	`

	var u finance.User

	err := s.db.QueryRowContext(ctx, query, externalID).Scan(
		&u.ID, &u.ExternalID, &u.Name, &u.Currency, &u.MonthlyIncome, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, finance.ErrNotFound
		}

		return nil, fmt.Errorf("finding user: %w", err)
	}

	return &u, nil
}

// CreateUser inserts the user and its categories in one transaction.
func (s *Store) CreateUser(ctx context.Context, u *finance.User, categories []*finance.Category) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	query := `
		INSERT INTO users (external_id, name, currency, monthly_income, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`

	err = dbTx.QueryRowContext(ctx, query, u.ExternalID, u.Name, u.Currency, u.MonthlyIncome).
		Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating user: %w", err)
	}

	for _, c := range categories {
		c.UserID = u.ID
		if err := insertCategory(ctx, dbTx, c); err != nil {
			return err
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func insertCategory(ctx context.Context, q queryer, c *finance.Category) error {
	query := `
		INSERT INTO categories (user_id, name, is_income, is_default, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (user_id, (LOWER(name)), is_income) DO UPDATE SET name = categories.name
		RETURNING id, name
	`

	if err := q.QueryRowContext(ctx, query, c.UserID, c.Name, c.IsIncome, c.IsDefault).Scan(&c.ID, &c.Name); err != nil {
		return fmt.Errorf("creating category: %w", err)
	}

	return nil
}

const selectCategoryColumns = `id, user_id, name, is_income, is_default`

func scanCategory(s scanner) (*finance.Category, error) {
	var c finance.Category
	if err := s.Scan(&c.ID, &c.UserID, &c.Name, &c.IsIncome, &c.IsDefault); err != nil {
		return nil, err
	}

	return &c, nil
}

func (s *Store) ListCategories(ctx context.Context, userID uuid.UUID, income bool) ([]*finance.Category, error) {
	query := `SELECT ` + selectCategoryColumns + `
		FROM categories
		WHERE user_id = $1 AND is_income = $2
		ORDER BY LOWER(name) = 'outros', name ASC`

	rows, err := s.db.QueryContext(ctx, query, userID, income)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var cats []*finance.Category

	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}

		cats = append(cats, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating categories: %w", err)
	}

	return cats, nil
}

func (s *Store) FindCategory(ctx context.Context, userID uuid.UUID, name string, income bool) (*finance.Category, error) {
	query := `SELECT ` + selectCategoryColumns + `
		FROM categories
		WHERE user_id = $1 AND LOWER(name) = LOWER($2) AND is_income = $3`

	c, err := scanCategory(s.db.QueryRowContext(ctx, query, userID, name, income))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, finance.ErrNotFound
		}

		return nil, fmt.Errorf("finding category: %w", err)
	}

	return c, nil
}

// SearchCategory matches expense categories by partial name. An exact match
// wins, then the shortest name.
func (s *Store) SearchCategory(ctx context.Context, userID uuid.UUID, query string) (*finance.Category, error) {
	q := `SELECT ` + selectCategoryColumns + `
		FROM categories
		WHERE user_id = $1 AND NOT is_income AND name ILIKE '%' || $2 || '%'
		ORDER BY LOWER(name) = LOWER($2) DESC, LENGTH(name) ASC
		LIMIT 1`

	c, err := scanCategory(s.db.QueryRowContext(ctx, q, userID, query))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, finance.ErrNotFound
		}

		return nil, fmt.Errorf("searching category: %w", err)
	}

	return c, nil
}

func (s *Store) CreateCategory(ctx context.Context, c *finance.Category) error {
	return insertCategory(ctx, s.db, c)
}
