package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/nitish7045/Team11-adminWebsite/model"
)

func (db *postgresDB) GetUsers(ctx context.Context) ([]model.User, error) {
	const query = `SELECT user_id, full_name FROM users ORDER BY user_id`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	defer rows.Close()

	results := make([]model.User, 0, 64)
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.UserID, &u.FullName); err != nil {
			return nil, fmt.Errorf("error scanning user: %w", err)
		}
		results = append(results, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading users: %w", err)
	}

	return results, nil
}

func (db *postgresDB) GetUser(ctx context.Context, userID string) (*model.User, error) {
	const query = `SELECT user_id, full_name FROM users WHERE user_id=$1`

	var u model.User
	err := db.pool.QueryRow(ctx, query, model.CanonicalID(userID)).Scan(&u.UserID, &u.FullName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("error looking up user %s: %w", userID, err)
	}
	return &u, nil
}

func (db *postgresDB) SaveUser(ctx context.Context, u *model.User) error {
	const query = `INSERT INTO users (user_id, full_name, created, updated)
					VALUES (@id, @name, @now, @now)
					ON CONFLICT (user_id) DO UPDATE
						SET full_name=@name, updated=@now`

	args := pgx.NamedArgs{
		"id":   model.CanonicalID(u.UserID),
		"name": u.FullName,
		"now":  db.clock.Now().UTC(),
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error saving user %s: %w", u.UserID, err)
	}
	return nil
}
