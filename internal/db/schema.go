package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema. The table holds amendment names sent
// by other dashboards; rows are never updated or deleted through the API.
const schema = `
CREATE TABLE IF NOT EXISTS friend_amendments (
    id             INTEGER PRIMARY KEY AUTOINCREMENT,
    amendment_name TEXT NOT NULL,
    sent_at        DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

// Migrate creates all tables if they don't already exist. Safe to run on
// every start.
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
