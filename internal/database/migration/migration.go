package migration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_extension_uuid_ossp",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		Name: "create_table_lawyers",
		SQL: `CREATE TABLE IF NOT EXISTS lawyers (
  id         UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  full_name  TEXT        NOT NULL,
  bar_number TEXT        NOT NULL DEFAULT '',
  phone      TEXT        NOT NULL DEFAULT '',
  email      TEXT        NOT NULL DEFAULT '',
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_cases",
		SQL: `CREATE TABLE IF NOT EXISTS cases (
  id             UUID             PRIMARY KEY DEFAULT uuid_generate_v4(),
  case_no        TEXT             NOT NULL UNIQUE,
  vehicle        JSONB            NOT NULL,
  driver         JSONB            NOT NULL,
  accident       JSONB            NOT NULL,
  client         JSONB            NOT NULL,
  fee_percentage DOUBLE PRECISION NOT NULL CHECK (fee_percentage >= 0 AND fee_percentage <= 100),
  lawyer_id      UUID             NULL REFERENCES lawyers (id) ON DELETE SET NULL,
  assigned_at    TIMESTAMPTZ      NULL,
  status         TEXT             NOT NULL,
  stage_history  JSONB            NOT NULL,
  expenses       JSONB            NOT NULL,
  settlement     JSONB            NULL,
  created_at     TIMESTAMPTZ      NOT NULL DEFAULT now(),
  updated_at     TIMESTAMPTZ      NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_cases_status",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_cases_status ON cases (status);`,
	},
	{
		Name: "create_index_cases_lawyer_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_cases_lawyer_id ON cases (lawyer_id);`,
	},
	{
		Name: "create_index_cases_case_no",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_cases_case_no ON cases (case_no text_pattern_ops);`,
	},
	{
		Name: "create_table_branches",
		SQL: `CREATE TABLE IF NOT EXISTS branches (
  id      UUID    PRIMARY KEY DEFAULT uuid_generate_v4(),
  name    TEXT    NOT NULL,
  is_main BOOLEAN NOT NULL DEFAULT false
);`,
	},
	{
		Name: "seed_main_branch",
		SQL: `INSERT INTO branches (id, name, is_main)
SELECT uuid_generate_v4(), 'Merkez Sube', true
WHERE NOT EXISTS (SELECT 1 FROM branches WHERE is_main);`,
	},
	{
		Name: "create_table_productions",
		SQL: `CREATE TABLE IF NOT EXISTS productions (
  id             UUID             PRIMARY KEY DEFAULT uuid_generate_v4(),
  branch_id      UUID             NOT NULL REFERENCES branches (id),
  insurance_type TEXT             NOT NULL,
  premium        DOUBLE PRECISION NOT NULL CHECK (premium >= 0),
  policy_count   INTEGER          NOT NULL CHECK (policy_count >= 0),
  date           TIMESTAMPTZ      NOT NULL,
  created_at     TIMESTAMPTZ      NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_productions_branch_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_productions_branch_id ON productions (branch_id);`,
	},
	{
		Name: "create_index_productions_date",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_productions_date ON productions (date);`,
	},
	{
		Name: "create_table_kv_store",
		SQL: `CREATE TABLE IF NOT EXISTS kv_store (
  key        TEXT        PRIMARY KEY,
  value      JSONB       NOT NULL,
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
}

// EnsureMigrated checks if the 'cases' table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, loc *time.Location, dbHost string) error {
	start := time.Now()

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_check",
		"status":    "starting",
		"db_host":   dbHost,
	})

	var exists bool
	query := "SELECT to_regclass('public.cases') IS NOT NULL"
	err := db.QueryRowContext(ctx, query).Scan(&exists)
	if err != nil {
		logJSON(loc, map[string]any{
			"component":     "database",
			"event":         "db_migration_failed",
			"status":        "error",
			"error_message": fmt.Sprintf("failed to check sentinel table: %v", err),
			"db_host":       dbHost,
			"duration_ms":   time.Since(start).Milliseconds(),
		})
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		logJSON(loc, map[string]any{
			"component":   "database",
			"event":       "db_migration_skip",
			"status":      "success",
			"msg":         "schema already exists, skipping migration",
			"db_host":     dbHost,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return nil
	}

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_start",
		"status":    "in_progress",
		"db_host":   dbHost,
	})

	for _, step := range steps {
		stepStart := time.Now()
		_, err := db.ExecContext(ctx, step.SQL)
		if err != nil {
			logJSON(loc, map[string]any{
				"component":        "database",
				"event":            "db_migration_failed",
				"status":           "error",
				"migration_step":   step.Name,
				"error_message":    err.Error(),
				"db_host":          dbHost,
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			})
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		logJSON(loc, map[string]any{
			"component":        "database",
			"event":            "db_migration_step",
			"status":           "success",
			"migration_step":   step.Name,
			"db_host":          dbHost,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	logJSON(loc, map[string]any{
		"component":   "database",
		"event":       "db_migration_success",
		"status":      "success",
		"db_host":     dbHost,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return nil
}

func logJSON(loc *time.Location, data map[string]any) {
	data["ts"] = time.Now().In(loc).Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		if data["status"] == "error" {
			data["level"] = "error"
		} else {
			data["level"] = "info"
		}
	}

	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal migration log: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
