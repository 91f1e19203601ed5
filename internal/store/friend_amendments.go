package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/seamlessgov/govdash/internal/model"
)

// SendAmendment stores an amendment name sent by another dashboard and
// returns the created record.
func SendAmendment(ctx context.Context, db *sql.DB, name string) (*model.FriendAmendment, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO friend_amendments (amendment_name) VALUES (?)`,
		name,
	)
	if err != nil {
		return nil, fmt.Errorf("saving amendment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting amendment id: %w", err)
	}

	return GetFriendAmendment(ctx, db, id)
}

// GetFriendAmendment returns a stored amendment by ID, or nil if absent.
func GetFriendAmendment(ctx context.Context, db *sql.DB, id int64) (*model.FriendAmendment, error) {
	fa := &model.FriendAmendment{}
	err := db.QueryRowContext(ctx,
		`SELECT id, amendment_name, sent_at FROM friend_amendments WHERE id = ?`, id,
	).Scan(&fa.ID, &fa.Name, &fa.SentAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting amendment: %w", err)
	}
	return fa, nil
}

// LatestFriendAmendment returns the most recently stored amendment, or nil
// if the table is empty.
func LatestFriendAmendment(ctx context.Context, db *sql.DB) (*model.FriendAmendment, error) {
	fa := &model.FriendAmendment{}
	err := db.QueryRowContext(ctx,
		`SELECT id, amendment_name, sent_at FROM friend_amendments ORDER BY id DESC LIMIT 1`,
	).Scan(&fa.ID, &fa.Name, &fa.SentAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting latest amendment: %w", err)
	}
	return fa, nil
}
