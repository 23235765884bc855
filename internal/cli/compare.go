package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/cantor/internal/budget"
	"github.com/roach88/cantor/internal/expr"
	"github.com/roach88/cantor/internal/history"
	"github.com/roach88/cantor/internal/ordinal"
)

// CompareOptions holds flags for the compare command.
type CompareOptions struct {
	*RootOptions
	Budget int
}

// NewCompareCommand creates the compare command.
func NewCompareCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CompareOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "compare <left> <right>",
		Short: "Compare two ordinal expressions",
		Long: `Evaluate two expressions and print their order relation:
"<", "=", or ">".

Example:
  cantor compare 'w*2' '2*w'`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return compareExpressions(opts, args[0], args[1], cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Budget, "budget", 0, "operation budget override (0 uses the configured value)")

	return cmd
}

type compareResult struct {
	Left      string `json:"left"`
	Right     string `json:"right"`
	Relation  string `json:"relation"`
	StepsUsed int    `json:"steps_used"`
}

func (r compareResult) String() string {
	return fmt.Sprintf("%s %s %s", r.Left, r.Relation, r.Right)
}

func compareExpressions(opts *CompareOptions, left, right string, cmd *cobra.Command) error {
	out := formatter(opts.RootOptions, cmd)

	limit := opts.Budget
	if limit <= 0 {
		limit = opts.Config.OperationBudget
	}
	m := budget.NewMeter(limit)

	lv, err := expr.EvalString(left, m)
	if err != nil {
		return out.Error(err)
	}
	rv, err := expr.EvalString(right, m)
	if err != nil {
		return out.Error(err)
	}

	c, err := ordinal.Compare(lv, rv, m)
	if err != nil {
		return out.Error(err)
	}
	relation := "="
	switch {
	case c < 0:
		relation = "<"
	case c > 0:
		relation = ">"
	}

	data := compareResult{
		Left:      lv.String(),
		Right:     rv.String(),
		Relation:  relation,
		StepsUsed: m.Used(),
	}
	slog.Debug("compared expressions", "left", left, "right", right, "relation", relation, "steps", data.StepsUsed)
	recordHistory(opts.RootOptions, history.KindCompare, fmt.Sprintf("%s vs %s", left, right), relation, data.StepsUsed)
	return out.Success(data)
}
