package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagemeta"
	"github.com/fwojciec/pagemeta/bloom"
	"github.com/fwojciec/pagemeta/fs"
	"github.com/fwojciec/pagemeta/goquery"
	"github.com/fwojciec/pagemeta/scan"
	pmslog "github.com/fwojciec/pagemeta/slog"
	"github.com/google/uuid"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// duplicateFPRate is the false positive rate of the duplicate node filter.
const duplicateFPRate = 0.001

// Main represents the program.
type Main struct {
	// NewRunID returns the identifier attached to log lines of a run.
	NewRunID func() string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		NewRunID: uuid.NewString,
	}
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Date       string `arg:"" help:"Date stamp of the wget run, e.g. 20160525"`
	Time       string `arg:"" help:"Time stamp of the wget run, e.g. 112610"`
	Base       string `short:"b" default:"." env:"PAGEMETA_BASE" help:"Directory holding the date stamped runs"`
	Convention string `short:"c" default:"div" enum:"div,meta,auto" env:"PAGEMETA_CONVENTION" help:"Marker convention (div, meta or auto)"`
	Verbose    bool   `short:"v" help:"Log operations to stderr"`
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagemeta"),
		kong.Description("Extract debug metadata from wget downloaded pages into <base>/<date>/<time>/nodes.csv"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	convention, err := pagemeta.ParseConvention(cli.Convention)
	if err != nil {
		return err
	}

	layout := pagemeta.Layout{Base: cli.Base, Date: cli.Date, Time: cli.Time}
	logger := m.newLogger(stderr, cli.Verbose).With("date", cli.Date, "time", cli.Time)

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Scanner: &scan.Scanner{
			Pages:     pmslog.NewLoggingPageSource(fs.NewPageDir(layout.PagesDir()), logger),
			Extractor: pmslog.NewLoggingMarkerExtractor(goquery.NewExtractor(convention), logger),
			Records:   pmslog.NewLoggingRecordWriter(fs.NewCSVWriter(layout.OutputPath()), logger),
			NewNodeTracker: func(pages int) pagemeta.NodeTracker {
				return bloom.NewFilter(uint(pages), duplicateFPRate)
			},
			Stdout: stdout,
		},
	}

	cmd := &ScanCmd{OutputDir: layout.Dir()}
	return cmd.Run(deps)
}

// newLogger returns a text logger on w when verbose, and a discarding
// logger otherwise.
func (m *Main) newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	if m.NewRunID != nil {
		logger = logger.With("run", m.NewRunID())
	}
	return logger
}
