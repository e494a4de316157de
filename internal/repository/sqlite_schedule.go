package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ogison/daily-planner/internal/db"
	"github.com/ogison/daily-planner/internal/domain"
)

const scheduleItemColumns = `id, title, start_min, end_min, category, notes, color, created_at, updated_at`

// SQLiteScheduleRepo implements ScheduleRepo against a SQLite database.
// It accepts a db.DBTX so the same implementation can run inside a
// transaction created by the unit of work.
type SQLiteScheduleRepo struct {
	db db.DBTX
}

// NewSQLiteScheduleRepo creates a new SQLiteScheduleRepo.
func NewSQLiteScheduleRepo(dbtx db.DBTX) *SQLiteScheduleRepo {
	return &SQLiteScheduleRepo{db: dbtx}
}

func (r *SQLiteScheduleRepo) DayExists(ctx context.Context, date string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM days WHERE date = ?`, date).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("checking day: %w", err)
	}
	return n > 0, nil
}

func (r *SQLiteScheduleRepo) MarkDay(ctx context.Context, date string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO days (date) VALUES (?)`, date)
	if err != nil {
		return fmt.Errorf("marking day: %w", err)
	}
	return nil
}

func (r *SQLiteScheduleRepo) GetDay(ctx context.Context, date string) (*domain.DaySchedule, error) {
	// Secondary keys make equal-start items render in a stable order.
	query := `SELECT ` + scheduleItemColumns + `
		FROM schedule_items WHERE date = ?
		ORDER BY start_min, created_at, id`
	rows, err := r.db.QueryContext(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("listing schedule items: %w", err)
	}
	defer rows.Close()

	items, err := r.scanItems(rows)
	if err != nil {
		return nil, err
	}
	return &domain.DaySchedule{Date: date, Items: items}, nil
}

func (r *SQLiteScheduleRepo) CreateItem(ctx context.Context, date string, item *domain.ScheduleItem) error {
	query := `INSERT INTO schedule_items (id, date, title, start_min, end_min, category, notes, color, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		item.ID,
		date,
		item.Title,
		item.StartMin,
		item.EndMin,
		string(item.Category),
		item.Notes,
		item.Color,
		item.CreatedAt.Format(time.RFC3339Nano),
		item.UpdatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("inserting schedule item: %w", err)
	}
	return nil
}

func (r *SQLiteScheduleRepo) GetItem(ctx context.Context, date, id string) (*domain.ScheduleItem, error) {
	query := `SELECT ` + scheduleItemColumns + `
		FROM schedule_items WHERE date = ? AND id = ?`
	row := r.db.QueryRowContext(ctx, query, date, id)
	return r.scanItem(row)
}

func (r *SQLiteScheduleRepo) UpdateItem(ctx context.Context, date string, item *domain.ScheduleItem) error {
	query := `UPDATE schedule_items
		SET title = ?, start_min = ?, end_min = ?, category = ?, notes = ?, color = ?, updated_at = ?
		WHERE date = ? AND id = ?`
	_, err := r.db.ExecContext(ctx, query,
		item.Title,
		item.StartMin,
		item.EndMin,
		string(item.Category),
		item.Notes,
		item.Color,
		item.UpdatedAt.Format(time.RFC3339Nano),
		date,
		item.ID,
	)
	if err != nil {
		return fmt.Errorf("updating schedule item: %w", err)
	}
	return nil
}

func (r *SQLiteScheduleRepo) DeleteItem(ctx context.Context, date, id string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM schedule_items WHERE date = ? AND id = ?`, date, id)
	if err != nil {
		return fmt.Errorf("deleting schedule item: %w", err)
	}
	return nil
}

func (r *SQLiteScheduleRepo) DeleteDay(ctx context.Context, date string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM schedule_items WHERE date = ?`, date)
	if err != nil {
		return fmt.Errorf("deleting day schedule: %w", err)
	}
	return nil
}

// scanItem scans a single item from a *sql.Row.
func (r *SQLiteScheduleRepo) scanItem(row *sql.Row) (*domain.ScheduleItem, error) {
	var it domain.ScheduleItem
	var category, createdAtStr, updatedAtStr string

	err := row.Scan(
		&it.ID, &it.Title, &it.StartMin, &it.EndMin, &category, &it.Notes, &it.Color,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("schedule item: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning schedule item: %w", err)
	}

	return r.populateItem(&it, category, createdAtStr, updatedAtStr)
}

// scanItems scans multiple items from *sql.Rows.
func (r *SQLiteScheduleRepo) scanItems(rows *sql.Rows) ([]*domain.ScheduleItem, error) {
	var items []*domain.ScheduleItem
	for rows.Next() {
		var it domain.ScheduleItem
		var category, createdAtStr, updatedAtStr string

		err := rows.Scan(
			&it.ID, &it.Title, &it.StartMin, &it.EndMin, &category, &it.Notes, &it.Color,
			&createdAtStr, &updatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning schedule item row: %w", err)
		}

		item, parseErr := r.populateItem(&it, category, createdAtStr, updatedAtStr)
		if parseErr != nil {
			return nil, parseErr
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating schedule items: %w", err)
	}
	return items, nil
}

// populateItem fills in parsed fields after scanning raw strings.
func (r *SQLiteScheduleRepo) populateItem(it *domain.ScheduleItem, category, createdAtStr, updatedAtStr string) (*domain.ScheduleItem, error) {
	it.Category = domain.Category(category)

	var parseErr error
	it.CreatedAt, parseErr = time.Parse(time.RFC3339Nano, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	it.UpdatedAt, parseErr = time.Parse(time.RFC3339Nano, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return it, nil
}
