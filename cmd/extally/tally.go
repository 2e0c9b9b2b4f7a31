package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vyskocilm/extally/internal/lines"
	"github.com/vyskocilm/extally/internal/log"
	"github.com/vyskocilm/extally/internal/model"
	"github.com/vyskocilm/extally/internal/stats"
	"github.com/vyskocilm/extally/internal/tally"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func doTally(cmd *cobra.Command, args []string) error {
	// initialize logging
	slog.SetDefault(log.New(flagVerbose))
	attrs := slog.Group("extally",
		slog.String("cmd", "tally"),
		slog.Int("pid", os.Getpid()),
	)
	ctx := log.ContextAttrs(cmd.Context(), attrs)

	counter := stats.New("extally")
	return run(ctx, counter, os.Stdin, os.Stdout)
}

// run consumes in until the end of stream, accumulates the tally and writes
// the report to out. Nothing is written unless the whole input was read
// successfully, a failed run produces no partial report.
func run(ctx context.Context, counter model.Stats, in io.Reader, out io.Writer) error {
	t := tally.New()

	// reading is decoupled from the accumulation, the errgroup propagates
	// the first read error and cancels the producer
	g, ctx := errgroup.WithContext(ctx)
	paths := make(chan string)
	g.Go(func() error {
		defer close(paths)
		for line, err := range lines.Lines(ctx, counter, in) {
			if err != nil {
				return err
			}
			select {
			case paths <- line:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})
	g.Go(func() error {
		for path := range paths {
			t.Add(path)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("reading paths: %w", err)
	}

	report := t.Report()
	for range report {
		counter.IncKeys()
	}

	w := bufio.NewWriter(out)
	for _, entry := range report {
		if _, err := fmt.Fprintf(w, "%s: %d\n", entry.Key, entry.Count); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	for key, value := range counter.Stats() {
		slog.DebugContext(ctx, "run finished", key, value)
	}
	return nil
}
