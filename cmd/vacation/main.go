package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/td0m/vacation/internal/config"
	"github.com/td0m/vacation/internal/logger"
	"github.com/td0m/vacation/pkg/calendar"
	"github.com/td0m/vacation/pkg/persist"
	"github.com/td0m/vacation/pkg/plan"
	"github.com/td0m/vacation/pkg/planner"
	"golang.org/x/term"
)

func check(err error) {
	if err != nil {
		panic(err)
	}
}

var (
	configPath = flag.String("config", "", "Path to a YAML config file (defaults to $CONFIG_PATH)")
	dataDir    = flag.String("file", "", "Directory the planner data is stored in (overrides config)")
	year       = flag.String("year", "", "Year to show, defaults to the current year")
	ephemeral  = flag.Bool("ephemeral", false, "Keep data in memory only")
	summary    = flag.Bool("print", false, "Print a summary instead of starting the UI")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	check(err)
	if *dataDir != "" {
		cfg.Storage.Dir = *dataDir
	}
	if *ephemeral {
		cfg.Storage.Ephemeral = true
	}

	log, closer, err := logger.New(cfg.Log)
	check(err)
	defer closer.Close()

	var storage persist.Storage = persist.InDir(cfg.Storage.Dir)
	if cfg.Storage.Ephemeral {
		storage = persist.InMemory()
	}
	if err := seed(storage, cfg, log); err != nil {
		log.Warn("skipping first run setup", "err", err)
	}
	store := persist.New(storage, cfg.Storage.Key, log)

	now := time.Now()
	p := planner.New(store, calendar.ResolveYear(*year, now), log)
	log.Info("planner started", "year", p.Year(), "dir", cfg.Storage.Dir, "ephemeral", cfg.Storage.Ephemeral)

	if *summary || !term.IsTerminal(int(os.Stdout.Fd())) {
		check(printSummary(os.Stdout, p.Snapshot()))
		return
	}

	a := newApp(p, calendar.FromTime(now))
	prog := tea.NewProgram(a)

	// enable full terminal mode
	prog.EnterAltScreen()
	defer prog.ExitAltScreen()

	check(prog.Start())
}

// seed writes a first document using the configured vacation allowance.
// Existing data is left alone, and so is storage that cannot be read.
func seed(storage persist.Storage, cfg *config.Config, log *slog.Logger) error {
	_, ok, err := storage.GetItem(cfg.Storage.Key)
	if err != nil {
		return fmt.Errorf("read %s: %w", cfg.Storage.Key, err)
	}
	if ok {
		return nil
	}
	doc := plan.NewDocument()
	doc.TotalVacationDays = cfg.Planner.TotalVacationDays
	return persist.New(storage, cfg.Storage.Key, log).Save(doc)
}
