package main

import (
	"context"
	"fmt"
	"io"

	"github.com/fwojciec/pagemeta"
	"github.com/fwojciec/pagemeta/scan"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Scanner *scan.Scanner
}

// ScanCmd processes one wget run and prints its summary.
type ScanCmd struct {
	// OutputDir is reported at the end of the summary. Omitted when empty.
	OutputDir string
}

// Run executes the scan command.
func (c *ScanCmd) Run(deps *Dependencies) error {
	result, err := deps.Scanner.Run(deps.Ctx)
	if err != nil {
		return err
	}

	if err := pagemeta.WriteSummary(deps.Stdout, result.Summary(), c.OutputDir); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}
