package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/cantor/internal/history"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Limit int
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "history",
		Short:         "Show recorded calculations, newest first",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showHistory(opts, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "maximum number of records (0 for all)")

	return cmd
}

type historyEntry struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Input     string    `json:"input"`
	Output    string    `json:"output"`
	StepsUsed int       `json:"steps_used"`
	Hash      string    `json:"hash"`
	CreatedAt time.Time `json:"created_at"`
}

type historyResult struct {
	Records []historyEntry `json:"records"`
}

func (r historyResult) String() string {
	if len(r.Records) == 0 {
		return "no records"
	}
	var b strings.Builder
	for i, rec := range r.Records {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s  %-8s  %s = %s  (%d steps)",
			rec.CreatedAt.Format(time.RFC3339), rec.Kind, rec.Input, rec.Output, rec.StepsUsed)
	}
	return b.String()
}

func showHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	out := formatter(opts.RootOptions, cmd)

	if opts.Config.HistoryPath == "" {
		return WrapExitError(ExitCommandError, "history recording is disabled: history_path is empty", nil)
	}
	s, err := history.Open(opts.Config.HistoryPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "opening history database", err)
	}
	defer s.Close()

	recs, err := s.List(context.Background(), opts.Limit)
	if err != nil {
		return WrapExitError(ExitCommandError, "reading history", err)
	}

	data := historyResult{Records: make([]historyEntry, 0, len(recs))}
	for _, rec := range recs {
		data.Records = append(data.Records, historyEntry{
			ID:        rec.ID,
			Kind:      rec.Kind,
			Input:     rec.Input,
			Output:    rec.Output,
			StepsUsed: rec.StepsUsed,
			Hash:      rec.Hash,
			CreatedAt: rec.CreatedAt,
		})
	}
	return out.Success(data)
}
