package db

import (
	"os"
	"testing"

	"github.com/ZeroDread/nudge/internal/config"
)

func TestInitDBCreatesFileAndSchema(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv(config.EnvNudgeHome, tmp)
	t.Setenv(config.EnvNudgeDB, "")

	dbPath, err := config.DBPath()
	if err != nil {
		t.Fatalf("DBPath(): %v", err)
	}

	db, err := InitDB()
	if err != nil {
		t.Fatalf("InitDB() error: %v", err)
	}
	defer func() { _ = db.Close() }()

	if _, err := os.Stat(dbPath); err != nil {
		t.Fatalf("db file not created: %v", err)
	}

	for _, table := range []string{"runs", "run_commands"} {
		var count int
		r := db.QueryRow("SELECT count(*) FROM sqlite_master WHERE type='table' AND name=?", table)
		if err := r.Scan(&count); err != nil {
			t.Fatalf("query schema: %v", err)
		}
		if count != 1 {
			t.Fatalf("expected table %q to exist", table)
		}
	}

	if _, err := db.Exec("INSERT INTO runs (started_at, total, dry_run) VALUES (datetime('now'), 3, 1)"); err != nil {
		t.Fatalf("insert run failed: %v", err)
	}
}

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	t.Setenv(config.EnvNudgeDB, t.TempDir()+"/again.db")
	db, err := InitDB()
	if err != nil {
		t.Fatalf("InitDB() error: %v", err)
	}
	defer func() { _ = db.Close() }()
	if err := ApplyMigrations(db); err != nil {
		t.Fatalf("second ApplyMigrations: %v", err)
	}
}
