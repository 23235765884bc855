package cli

import (
	"context"
	"log/slog"

	"github.com/roach88/cantor/internal/history"
)

// recordHistory appends a calculation to the history database. Recording
// is best-effort: failures are logged, never surfaced to the user.
func recordHistory(opts *RootOptions, kind, input, output string, stepsUsed int) {
	if opts.Config.HistoryPath == "" {
		return
	}

	rec, err := history.NewRecord(kind, input, output, stepsUsed)
	if err != nil {
		slog.Warn("history record not built", "error", err)
		return
	}

	s, err := history.Open(opts.Config.HistoryPath)
	if err != nil {
		slog.Warn("history database unavailable", "path", opts.Config.HistoryPath, "error", err)
		return
	}
	defer s.Close()

	if err := s.Append(context.Background(), rec); err != nil {
		slog.Warn("history record not written", "error", err)
	}
}
