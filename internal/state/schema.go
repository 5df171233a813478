package state

import (
	"database/sql"

	"github.com/llehouerou/wavelet/internal/db"
)

const currentSchemaVersion = 1

func initSchema(conn *sql.DB) error {
	return db.WithTx(conn, func(tx *sql.Tx) error {
		return createTables(tx)
	})
}

func createTables(tx *sql.Tx) error {
	_, err := tx.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS preferences (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
		INSERT OR IGNORE INTO schema_version (version) VALUES (?)
	`, currentSchemaVersion)
	return err
}

func getPreference(conn *sql.DB, key string) (string, bool, error) {
	var value string
	err := conn.QueryRow(`SELECT value FROM preferences WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func setPreference(conn *sql.DB, key, value string) error {
	_, err := conn.Exec(`
		INSERT INTO preferences (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}
