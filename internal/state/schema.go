package state

import (
	"database/sql"

	"github.com/llehouerou/montage/internal/db"
)

const currentSchemaVersion = 1

func initSchema(conn *sql.DB) error {
	return db.WithTx(conn, func(tx *sql.Tx) error {
		if err := db.ExecAll(tx,
			`CREATE TABLE IF NOT EXISTS schema_version (
				version INTEGER PRIMARY KEY
			)`,
			`CREATE TABLE IF NOT EXISTS kv (
				key TEXT PRIMARY KEY,
				value TEXT NOT NULL,
				updated_at INTEGER NOT NULL
			)`,
		); err != nil {
			return err
		}

		// Set initial version if not exists
		_, err := tx.Exec(`INSERT OR IGNORE INTO schema_version (version) VALUES (?)`, currentSchemaVersion)
		return err
	})
}
