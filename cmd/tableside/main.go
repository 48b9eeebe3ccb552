package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/tableside/internal/catalog"
	"github.com/alexanderramin/tableside/internal/cli"
	"github.com/alexanderramin/tableside/internal/db"
	"github.com/alexanderramin/tableside/internal/judge"
	"github.com/alexanderramin/tableside/internal/llm"
	"github.com/alexanderramin/tableside/internal/progress"
	"github.com/alexanderramin/tableside/internal/repository"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	dbPath, err := db.DefaultPath()
	if err != nil {
		return err
	}
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Built-in scenarios plus any operator packs from TABLESIDE_SCENARIOS.
	cat, err := catalog.Load(os.Getenv("TABLESIDE_SCENARIOS"))
	if err != nil {
		return fmt.Errorf("loading scenario catalog: %w", err)
	}

	grader, err := buildJudge()
	if err != nil {
		return err
	}

	app := &cli.App{
		Catalog:     cat,
		Judge:       grader,
		Store:       progress.NewSQLiteStore(database),
		Sessions:    repository.NewSQLiteSessionRepo(database),
		LogWriter:   os.Stderr,
		Interactive: isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()),
	}

	return cli.NewRootCmd(app).Execute()
}

// buildJudge picks a grading backend: explicit TABLESIDE_LLM_PROVIDER wins,
// then standard API key env vars, then a local Ollama instance. When nothing
// is configured and no Ollama server answers, grading falls back to the
// deterministic offline judge.
func buildJudge() (judge.Judge, error) {
	cfg := llm.LoadConfig()

	if os.Getenv("TABLESIDE_LLM_PROVIDER") == "" {
		if discovered, ok := llm.DiscoverConfig(); ok {
			discovered.LogCalls = cfg.LogCalls
			cfg = discovered
		} else {
			if !llm.NewOllamaProvider(cfg.Ollama).Available(context.Background()) {
				fmt.Fprintln(os.Stderr, "No LLM configured and no Ollama server found; using the offline judge.")
				return judge.NewOfflineJudge(), nil
			}
			cfg.Provider = "ollama"
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	provider, err := llm.NewProvider(cfg, os.Stderr)
	if err != nil {
		return nil, err
	}
	return judge.NewLLMJudge(provider), nil
}
