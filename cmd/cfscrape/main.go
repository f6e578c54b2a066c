package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/cfscrape"
	"github.com/fwojciec/cfscrape/fs"
	"github.com/fwojciec/cfscrape/goquery"
	"github.com/fwojciec/cfscrape/rod"
	cfslog "github.com/fwojciec/cfscrape/slog"
	"github.com/fwojciec/cfscrape/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Problems []string      `arg:"" optional:"" help:"Problem identifiers (e.g. 1/A). Defaults to a fixed sample list."`
	Out      string        `short:"o" default:"scraped_data" help:"Output directory for the artifacts"`
	BaseURL  string        `help:"Site root to fetch problems from (default: ${default_base_url})" default:"${default_base_url}"`
	Timeout  time.Duration `short:"t" default:"20s" help:"Wait budget for the problem statement to render"`
	Settle   time.Duration `default:"3s" help:"Pause before closing the browser session"`
	DB       string        `help:"Optional SQLite archive path"`
	Headed   bool          `help:"Run the browser with a visible window"`
	Verbose  bool          `short:"v" help:"Enable debug logging"`
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("cfscrape"),
		kong.Description("Extract Codeforces problems to text and JSON files"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Vars{"default_base_url": cfscrape.DefaultBaseURL},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	// No identifiers means the fixed sample list.
	problems := cli.Problems
	if len(problems) == 0 {
		problems = DefaultProblems()
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	writer, err := fs.NewWriter(cli.Out)
	if err != nil {
		return err
	}

	fetcher := rod.NewFetcher(
		rod.WithWaitTimeout(cli.Timeout),
		rod.WithSettleDelay(cli.Settle),
		rod.WithHeadless(!cli.Headed),
	)

	markers := goquery.DefaultMarkers()

	pipeline := &Pipeline{
		Fetcher:   rod.NewLoggingFetcher(fetcher, logger),
		Extractor: goquery.NewExtractorWithMarkers(markers),
		Writer:    cfslog.NewLoggingWriter(writer, logger),
		Logger:    logger,
		BaseURL:   cli.BaseURL,
		WaitFor:   markers.Statement,
	}

	if cli.DB != "" {
		db := sqlite.NewDB(cli.DB)
		if err := db.Open(); err != nil {
			return fmt.Errorf("opening archive: %w", err)
		}
		defer db.Close()
		pipeline.Archive = sqlite.NewProblemService(db)
	}

	deps := &Dependencies{
		Ctx:      ctx,
		Stdout:   stdout,
		Stderr:   stderr,
		Pipeline: pipeline,
	}

	cmd := &ScrapeCmd{Problems: problems}
	return cmd.Run(deps)
}

// DefaultProblems returns the identifier list processed when none are
// given on the command line.
func DefaultProblems() []string {
	return []string{"1/A", "1/B", "1/C", "2/A", "2/B", "2/C"}
}
