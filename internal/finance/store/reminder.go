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

var reminderColumns = []string{
	"r.id", "r.user_id", "u.external_id", "r.description", "r.amount", "r.due_date",
	"r.is_paid", "r.is_recurring", "r.recurrence", "r.recurrence_day", "r.last_notification", "r.created_at",
}

func scanReminder(s scanner) (*finance.Reminder, error) {
	var (
		r          finance.Reminder
		recurrence string
		day        sql.NullInt16
		notified   sql.NullTime
	)

	if err := s.Scan(
		&r.ID, &r.UserID, &r.ExternalID, &r.Description, &r.Amount, &r.DueDate,
		&r.IsPaid, &r.IsRecurring, &recurrence, &day, &notified, &r.CreatedAt,
	); err != nil {
		return nil, err
	}

	r.Recurrence = finance.Recurrence(recurrence)

	if day.Valid {
		r.RecurrenceDay = new(int(day.Int16))
	}

	if notified.Valid {
		r.LastNotification = &notified.Time
	}

	return &r, nil
}

func nullableDay(day *int) any {
	if day == nil {
		return nil
	}

	return *day
}

func nullableTime(r *finance.Reminder) any {
	if r.LastNotification == nil {
		return nil
	}

	return *r.LastNotification
}

// execQuerier is satisfied by both *sql.DB and *sql.Tx.
type execQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *Store) CreateReminder(ctx context.Context, r *finance.Reminder) error {
	return insertReminder(ctx, s.db, r)
}

func insertReminder(ctx context.Context, db execQuerier, r *finance.Reminder) error {
	query := `
		INSERT INTO reminders (user_id, description, amount, due_date, is_paid, is_recurring, recurrence, recurrence_day, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id, created_at
	`

	err := db.QueryRowContext(ctx, query,
		r.UserID,
		r.Description,
		r.Amount,
		r.DueDate,
		r.IsPaid,
		r.IsRecurring,
		string(r.Recurrence),
		nullableDay(r.RecurrenceDay),
	).Scan(&r.ID, &r.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating reminder: %w", err)
	}

	return nil
}

func (s *Store) GetReminder(ctx context.Context, id uuid.UUID) (*finance.Reminder, error) {
	query, args, err := psql.Select(reminderColumns...).
		From("reminders r").
		Join("users u ON u.id = r.user_id").
		Where(sq.Eq{"r.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	r, err := scanReminder(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, finance.ErrNotFound
		}

		return nil, fmt.Errorf("getting reminder: %w", err)
	}

	return r, nil
}

func (s *Store) ListReminders(ctx context.Context, filter finance.ReminderFilter) ([]*finance.Reminder, error) {
	q := psql.Select(reminderColumns...).
		From("reminders r").
		Join("users u ON u.id = r.user_id")

	if filter.UserID != nil {
		q = q.Where(sq.Eq{"r.user_id": *filter.UserID})
	}

	if !filter.IncludePaid {
		q = q.Where(sq.Eq{"r.is_paid": false})
	}

	if filter.DueFrom != nil {
		q = q.Where(sq.GtOrEq{"r.due_date": *filter.DueFrom})
	}

	if filter.DueTo != nil {
		q = q.Where(sq.LtOrEq{"r.due_date": *filter.DueTo})
	}

	query, args, err := q.OrderBy("r.due_date ASC", "r.created_at ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing reminders: %w", err)
	}
	defer rows.Close()

	var reminders []*finance.Reminder

	for rows.Next() {
		r, err := scanReminder(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning reminder: %w", err)
		}

		reminders = append(reminders, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reminders: %w", err)
	}

	return reminders, nil
}

func (s *Store) UpdateReminder(ctx context.Context, r *finance.Reminder) error {
	return updateReminder(ctx, s.db, r)
}

func updateReminder(ctx context.Context, db execQuerier, r *finance.Reminder) error {
	query := `
		UPDATE reminders
		SET description = $1, amount = $2, due_date = $3, is_paid = $4, last_notification = $5
		WHERE id = $6
	`

	res, err := db.ExecContext(ctx, query,
		r.Description,
		r.Amount,
		r.DueDate,
		r.IsPaid,
		nullableTime(r),
		r.ID,
	)
	if err != nil {
		return fmt.Errorf("updating reminder: %w", err)
	}

	return affectedOne(res)
}

func (s *Store) PayReminder(ctx context.Context, paid, next *finance.Reminder) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning payment tx: %w", err)
	}
	defer tx.Rollback()

	if err := updateReminder(ctx, tx, paid); err != nil {
		return err
	}

	if next != nil {
		if err := insertReminder(ctx, tx, next); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing payment: %w", err)
	}

	return nil
}

func (s *Store) DeleteReminder(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM reminders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting reminder: %w", err)
	}

	return affectedOne(res)
}

func affectedOne(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}

	if n == 0 {
		return finance.ErrNotFound
	}

	return nil
}
