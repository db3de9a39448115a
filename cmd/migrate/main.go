package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	database "cloud.google.com/go/spanner/admin/database/apiv1"
	databasepb "cloud.google.com/go/spanner/admin/database/apiv1/databasepb"
)

// Applies the DDL from migrations/ to a Cloud Spanner database, typically
// the emulator during local development.
//
// Usage (emulator):
//
//	export SPANNER_EMULATOR_HOST=localhost:9010
//	export SPANNER_DATABASE=projects/test-project/instances/emulator-instance/databases/test-db
//	go run ./cmd/migrate
func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db := os.Getenv("SPANNER_DATABASE")
	if db == "" {
		log.Error("SPANNER_DATABASE is required")
		os.Exit(1)
	}

	ddlPath := filepath.Join("migrations", "001_initial_schema.sql")
	stmts, err := readDDLStatements(ddlPath)
	if err != nil {
		log.Error("read DDL", "path", ddlPath, "error", err)
		os.Exit(1)
	}
	if len(stmts) == 0 {
		log.Error("no DDL statements found", "path", ddlPath)
		os.Exit(1)
	}

	admin, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		log.Error("database admin client", "error", err)
		os.Exit(1)
	}
	defer admin.Close()

	op, err := admin.UpdateDatabaseDdl(ctx, &databasepb.UpdateDatabaseDdlRequest{
		Database:   db,
		Statements: stmts,
	})
	if err != nil {
		log.Error("update database ddl", "error", err)
		os.Exit(1)
	}
	if err := op.Wait(ctx); err != nil {
		log.Error("update database ddl wait", "error", err)
		os.Exit(1)
	}

	log.Info("applied DDL", "statements", len(stmts), "database", db)
}

func readDDLStatements(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sql := strings.ReplaceAll(string(b), "\r\n", "\n")

	parts := strings.Split(sql, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		stmt := strings.TrimSpace(p)
		if stmt == "" {
			continue
		}
		out = append(out, stmt)
	}
	return out, nil
}
