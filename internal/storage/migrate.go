package storage

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed migrations/*.sql
var schemaFiles embed.FS

// ApplySchema brings the database up to the current app_state schema.
// The scripts are idempotent, so it runs on every open.
func ApplySchema(db *sql.DB) error {
	scripts, err := schemaScripts(".up.sql")
	if err != nil {
		return err
	}
	return execScripts(db, scripts)
}

// DropSchema tears the schema back down; only tests reach for it.
func DropSchema(db *sql.DB) error {
	scripts, err := schemaScripts(".down.sql")
	if err != nil {
		return err
	}
	return execScripts(db, scripts)
}

type schemaScript struct {
	name string
	body string
}

func schemaScripts(suffix string) ([]schemaScript, error) {
	names, err := fs.Glob(schemaFiles, "migrations/*"+suffix)
	if err != nil {
		return nil, fmt.Errorf("glob schema scripts: %w", err)
	}
	sort.Strings(names)
	scripts := make([]schemaScript, 0, len(names))
	for _, name := range names {
		body, err := schemaFiles.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read schema script %s: %w", name, err)
		}
		scripts = append(scripts, schemaScript{name: name, body: string(body)})
	}
	return scripts, nil
}

func execScripts(db *sql.DB, scripts []schemaScript) error {
	for _, s := range scripts {
		if _, err := db.Exec(s.body); err != nil {
			return fmt.Errorf("apply schema script %s: %w", s.name, err)
		}
	}
	return nil
}
