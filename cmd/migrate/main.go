package main

import (
	"context"
	"database/sql"
	stdlog "log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/spf13/pflag"

	"marketplace/internal/pkg/config"
	"marketplace/internal/pkg/postgres"
)

const defaultMigrationsDir = "migrations"

func main() {
	var dir string
	pflag.StringVar(&dir, "dir", defaultMigrationsDir, "directory with migration files")
	pflag.Parse()

	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			stdlog.Fatalf("failed to load .env file: %v", err)
		}
	}

	command := "up"
	var commandArgs []string
	if args := pflag.Args(); len(args) > 0 {
		command = args[0]
		commandArgs = args[1:]
	}

	dsn := postgres.NewDsn(&config.Database{
		Host:     os.Getenv("POSTGRES_HOST"),
		Port:     os.Getenv("POSTGRES_PORT"),
		User:     os.Getenv("POSTGRES_USER"),
		Password: os.Getenv("POSTGRES_PASSWORD"),
		DBName:   os.Getenv("POSTGRES_DB"),
		SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
	})

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		stdlog.Fatalf("failed to open database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			stdlog.Printf("failed to close database: %v", err)
		}
	}()

	if err := goose.SetDialect("postgres"); err != nil {
		stdlog.Fatalf("failed to set goose dialect: %v", err)
	}

	ctx := context.Background()
	if err := goose.RunContext(ctx, command, db, dir, commandArgs...); err != nil {
		stdlog.Fatalf("goose %s: %v", command, err)
	}
}
