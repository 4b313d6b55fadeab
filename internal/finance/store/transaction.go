package store

import (
	"context"
	"fmt"
	"hash/fnv"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/finchat/internal/finance"
)

var transactionColumns = []string{
	"t.id", "t.user_id", "t.category_id", "c.name", "t.amount", "t.type",
	"t.description", "t.raw_description", "t.date", "t.created_at",
}

func scanTransaction(s scanner) (*finance.Transaction, error) {
	var tx finance.Transaction

	var typeStr string

	if err := s.Scan(
		&tx.ID, &tx.UserID, &tx.CategoryID, &tx.Category, &tx.Amount, &typeStr,
		&tx.Description, &tx.RawDescription, &tx.Date, &tx.CreatedAt,
	); err != nil {
		return nil, err
	}

	tx.Type = finance.Type(typeStr)

	return &tx, nil
}

const insertTransaction = `
	INSERT INTO transactions (user_id, category_id, amount, type, description, raw_description, date, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
	RETURNING id, created_at
`

func (s *Store) CreateTransaction(ctx context.Context, tx *finance.Transaction) error {
	err := s.db.QueryRowContext(ctx, insertTransaction,
		tx.UserID,
		tx.CategoryID,
		tx.Amount,
		string(tx.Type),
		tx.Description,
		tx.RawDescription,
		tx.Date,
	).Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating transaction: %w", err)
	}

	return nil
}

func transactionQuery(filter finance.TransactionFilter) sq.SelectBuilder {
	q := psql.Select(transactionColumns...).
		From("transactions t").
		Join("categories c ON c.id = t.category_id").
		Where(sq.Eq{"t.user_id": filter.UserID})

	if filter.Type != nil {
		q = q.Where(sq.Eq{"t.type": string(*filter.Type)})
	}

	if filter.CategoryID != nil {
		q = q.Where(sq.Eq{"t.category_id": *filter.CategoryID})
	}

	if filter.StartDate != nil {
		q = q.Where(sq.GtOrEq{"t.date": *filter.StartDate})
	}

	if filter.EndDate != nil {
		q = q.Where(sq.LtOrEq{"t.date": *filter.EndDate})
	}

	return q.OrderBy("t.date ASC", "t.created_at ASC")
}

func (s *Store) ListTransactions(ctx context.Context, filter finance.TransactionFilter) ([]*finance.Transaction, error) {
	query, args, err := transactionQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txs []*finance.Transaction

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transactions: %w", err)
	}

	return txs, nil
}

func importLockKey(userID uuid.UUID) int64 {
	h := fnv.New64a()
	h.Write([]byte("import"))
	h.Write(userID[:])

	return int64(h.Sum64())
}
