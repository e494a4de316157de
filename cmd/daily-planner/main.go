package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/ogison/daily-planner/internal/cli"
	"github.com/ogison/daily-planner/internal/db"
	"github.com/ogison/daily-planner/internal/repository"
	"github.com/ogison/daily-planner/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or in-memory, so the schedule lives and
	// dies with the process unless the user asks for a file.
	dbPath := os.Getenv("DAILY_PLANNER_DB")
	if dbPath == "" {
		dbPath = ":memory:"
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	repo := repository.NewSQLiteScheduleRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	var observers []service.UseCaseObserver
	if os.Getenv("DAILY_PLANNER_LOG") != "" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Schedules: service.NewScheduleService(repo, uow, service.DefaultDay, observers...),
	}

	rootCmd := cli.NewRootCmd(app)

	// Bare invocation on a terminal opens the interactive day view.
	if len(os.Args) == 1 && (isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())) {
		rootCmd.SetArgs([]string{"tui"})
	}

	return rootCmd.Execute()
}
