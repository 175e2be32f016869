package database

import (
	"database/sql"
	"fmt"
)

// Schema is the full sqlite schema. Statements are idempotent so Migrate
// can run at every startup.
const Schema = `
CREATE TABLE IF NOT EXISTS usage_counts (
    day   TEXT NOT NULL,
    email TEXT NOT NULL,
    count INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (day, email)
);

CREATE TABLE IF NOT EXISTS pro_users (
    email TEXT PRIMARY KEY
);
`

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(Schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
