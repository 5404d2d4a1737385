// apply_patch applies a SQL migration to the Postgres session store.
//
// Usage: go run ./migrations [file.sql]   (defaults to migrations/001_sessions.sql)
package main

import (
	"context"
	"fmt"
	"os"

	"bilantra/internal/db"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	ctx := context.Background()

	pool, err := db.NewPool(ctx, os.Getenv("DATABASE_URL"))
	if err != nil {
		fmt.Printf("Failed to connect to DB: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	file := "migrations/001_sessions.sql"
	if len(os.Args) > 1 {
		file = os.Args[1]
	}

	sqlFile, err := os.ReadFile(file)
	if err != nil {
		fmt.Printf("Failed to read sql file: %v\n", err)
		os.Exit(1)
	}

	if _, err := pool.Exec(ctx, string(sqlFile)); err != nil {
		fmt.Printf("Migration failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Migration %s applied.\n", file)
}
