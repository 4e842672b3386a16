package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"finmentor/internal/models"
	"finmentor/internal/storage"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("adduser", flag.ContinueOnError)
	fs.SetOutput(stderr)

	email := fs.String("email", "", "Email address")
	name := fs.String("name", "", "Display name")
	income := fs.Float64("income", 0, "Monthly income")
	goal := fs.String("goal", "", "Financial goal")
	mood := fs.String("mood", "neutral", "Starting mood")
	dbPath := fs.String("db", "finmentor.db", "Path to database file")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *email == "" || *name == "" {
		fmt.Fprintln(stdout, "Usage: adduser -email <email> -name <name> [-income <amount>] [-goal <goal>] [-mood <mood>] [-db <db_path>]")
		fs.PrintDefaults()
		return fmt.Errorf("missing required flags: email, name")
	}

	// Allow overriding db path via env var if not explicitly set via flag (flag default is used)
	if path := os.Getenv("DB_PATH"); path != "" && *dbPath == "finmentor.db" {
		*dbPath = path
	}

	db, err := storage.NewDB(*dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	s, err := db.Session(context.Background())
	if err != nil {
		return fmt.Errorf("failed to open session: %w", err)
	}
	defer s.Close()

	if _, err := s.GetUserByEmail(*email); err == nil {
		return fmt.Errorf("email %s already registered", *email)
	} else if !errors.Is(err, storage.ErrUserNotFound) {
		return fmt.Errorf("failed to look up email: %w", err)
	}

	user := models.User{
		Email:         *email,
		Name:          *name,
		MonthlyIncome: *income,
		FinancialGoal: *goal,
		Mood:          *mood,
	}
	if err := s.CreateUser(&user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	fmt.Fprintf(stdout, "User %s created successfully with ID %d\n", user.Email, user.ID)
	return nil
}
