package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// DB is the global database connection
var DB *sqlx.DB

// Connect establishes a connection to the database. SQLite is the
// default; set DB_TYPE=postgres and DATABASE_URL to use PostgreSQL.
func Connect() error {
	dbType := os.Getenv("DB_TYPE")
	if dbType == "" {
		dbType = "sqlite"
	}

	var db *sqlx.DB
	var err error
	if dbType == "postgres" {
		dsn := os.Getenv("DATABASE_URL")
		if dsn == "" {
			return fmt.Errorf("DATABASE_URL environment variable is not set")
		}
		db, err = sqlx.Connect("postgres", dsn)
		if err != nil {
			return fmt.Errorf("failed to connect to postgres: %v", err)
		}
	} else {
		// Create data directory if it doesn't exist
		dataDir := os.Getenv("DATA_DIR")
		if dataDir == "" {
			dataDir = "data"
		}
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return fmt.Errorf("failed to create data directory: %v", err)
		}

		dbPath := filepath.Join(dataDir, "kanasensei.db")
		db, err = sqlx.Connect("sqlite3", dbPath)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %v", err)
		}

		// SQLite doesn't support multiple writers
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	DB = db

	// Initialize schema
	return initializeSchema()
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}

// initializeSchema creates necessary tables if they don't exist
func initializeSchema() error {
	// Different autoincrement syntax per database
	serial := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if DB.DriverName() == "postgres" {
		serial = "SERIAL PRIMARY KEY"
	}

	// Characters the learner has been shown, one row per composite identity
	_, err := DB.Exec(`
		CREATE TABLE IF NOT EXISTS seen_items (
			char TEXT NOT NULL,
			script_type TEXT NOT NULL,
			last_seen TIMESTAMP NOT NULL,
			PRIMARY KEY (char, script_type)
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create seen_items table: %v", err)
	}

	// The review set: full item snapshots keyed by composite identity
	_, err = DB.Exec(`
		CREATE TABLE IF NOT EXISTS incorrect_items (
			item_key TEXT PRIMARY KEY,
			snapshot TEXT NOT NULL,
			marked_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create incorrect_items table: %v", err)
	}

	// Append-only log of finished sessions
	_, err = DB.Exec(`
		CREATE TABLE IF NOT EXISTS session_history (
			id `+serial+`,
			quiz_kind TEXT NOT NULL,
			score INTEGER NOT NULL,
			total INTEGER NOT NULL,
			missed_snapshot TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create session_history table: %v", err)
	}

	// Tutor conversation log
	_, err = DB.Exec(`
		CREATE TABLE IF NOT EXISTS conversation_log (
			id `+serial+`,
			role TEXT NOT NULL,
			content TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create conversation_log table: %v", err)
	}

	// Streak counters and user preferences
	_, err = DB.Exec(`
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create meta table: %v", err)
	}

	return nil
}
