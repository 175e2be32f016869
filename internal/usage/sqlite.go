package usage

import (
	"context"
	"database/sql"
	"fmt"
)

// SQLiteStore keeps counters and the allow-list in the shared sqlite
// database. Default backend for the API server.
type SQLiteStore struct {
	DB *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{DB: db}
}

func (s *SQLiteStore) Count(ctx context.Context, day, email string) (int, error) {
	row := s.DB.QueryRowContext(ctx, `
		SELECT count FROM usage_counts
		WHERE day = ? AND email = ?
	`, day, email)

	var count int
	if err := row.Scan(&count); err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, fmt.Errorf("scan usage count: %w", err)
	}
	return count, nil
}

func (s *SQLiteStore) Increment(ctx context.Context, day, email string) error {
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO usage_counts (day, email, count) VALUES (?, ?, 1)
		ON CONFLICT(day, email) DO UPDATE SET count = count + 1
	`, day, email)
	if err != nil {
		return fmt.Errorf("increment usage: %w", err)
	}
	return nil
}

func (s *SQLiteStore) IsPro(ctx context.Context, email string) (bool, error) {
	row := s.DB.QueryRowContext(ctx, `SELECT 1 FROM pro_users WHERE email = ?`, email)
	var one int
	if err := row.Scan(&one); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("scan pro user: %w", err)
	}
	return true, nil
}

func (s *SQLiteStore) ProEmails(ctx context.Context) ([]string, error) {
	rows, err := s.DB.QueryContext(ctx, `SELECT email FROM pro_users ORDER BY email`)
	if err != nil {
		return nil, fmt.Errorf("list pro users: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, fmt.Errorf("scan pro email: %w", err)
		}
		out = append(out, email)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}

func (s *SQLiteStore) AddPro(ctx context.Context, email string) error {
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO pro_users (email) VALUES (?)
		ON CONFLICT(email) DO NOTHING
	`, email)
	if err != nil {
		return fmt.Errorf("add pro user: %w", err)
	}
	return nil
}

func (s *SQLiteStore) RemovePro(ctx context.Context, email string) error {
	_, err := s.DB.ExecContext(ctx, `DELETE FROM pro_users WHERE email = ?`, email)
	if err != nil {
		return fmt.Errorf("remove pro user: %w", err)
	}
	return nil
}

func (s *SQLiteStore) UsageForDay(ctx context.Context, day string) (map[string]int, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT email, count FROM usage_counts
		WHERE day = ?
		ORDER BY email
	`, day)
	if err != nil {
		return nil, fmt.Errorf("usage for day: %w", err)
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var (
			email string
			count int
		)
		if err := rows.Scan(&email, &count); err != nil {
			return nil, fmt.Errorf("scan usage row: %w", err)
		}
		out[email] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}
