package main

import "fmt"

// Run processes each identifier in order, one exclusively-owned browser
// session at a time. A failed identifier is reported and skipped; it
// never stops the run and is never retried.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	for _, id := range c.Problems {
		fmt.Fprintf(deps.Stdout, "\nScraping problem %s...\n", id)

		problem, err := deps.Pipeline.Extract(deps.Ctx, id)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error scraping problem %s: %v\n", id, err)
			continue
		}

		fmt.Fprintf(deps.Stdout, "Title: %s\n", orNotFound(problem.Title))
		fmt.Fprintf(deps.Stdout, "Time Limit: %s\n", orNotFound(problem.TimeLimit))
		fmt.Fprintf(deps.Stdout, "Memory Limit: %s\n", orNotFound(problem.MemoryLimit))
		fmt.Fprintf(deps.Stdout, "Sample tests: %d\n", len(problem.Samples))
	}

	return nil
}

// orNotFound substitutes a placeholder for absent optional fields in the
// per-problem summary.
func orNotFound(s string) string {
	if s == "" {
		return "Not found"
	}
	return s
}
