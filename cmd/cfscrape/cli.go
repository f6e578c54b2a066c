package main

import (
	"context"
	"io"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Pipeline *Pipeline
}

// ScrapeCmd processes a list of problem identifiers sequentially.
type ScrapeCmd struct {
	Problems []string
}
