package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/cantor/internal/budget"
	"github.com/roach88/cantor/internal/expr"
	"github.com/roach88/cantor/internal/history"
	"github.com/roach88/cantor/internal/simplify"
)

// SimplifyOptions holds flags for the simplify command.
type SimplifyOptions struct {
	*RootOptions
	Budget int
	Cost   int
}

// NewSimplifyCommand creates the simplify command.
func NewSimplifyCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SimplifyOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "simplify <expression>",
		Short: "Approximate an ordinal by a simpler one from below",
		Long: `Evaluate an expression and replace the result with the largest
simpler ordinal the bounded search finds under the complexity ceiling.
The output never exceeds the input in the ordinal order.

Example:
  cantor simplify 'w^3*99+w*5+7' --cost 6`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return simplifyExpression(opts, args[0], cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Budget, "budget", 0, "operation budget override (0 uses the configured value)")
	cmd.Flags().IntVar(&opts.Cost, "cost", -1, "complexity ceiling (-1 uses the configured value)")

	return cmd
}

type simplifyResult struct {
	Input     string `json:"input"`
	Exact     string `json:"exact"`
	Result    string `json:"result"`
	Cost      int    `json:"cost"`
	StepsUsed int    `json:"steps_used"`
}

func (r simplifyResult) String() string {
	return fmt.Sprintf("%s (exact: %s, cost %d)", r.Result, r.Exact, r.Cost)
}

func simplifyExpression(opts *SimplifyOptions, src string, cmd *cobra.Command) error {
	out := formatter(opts.RootOptions, cmd)

	limit := opts.Budget
	if limit <= 0 {
		limit = opts.Config.OperationBudget
	}
	cost := opts.Cost
	if cost < 0 {
		cost = opts.Config.SimplifyBudget
	}
	m := budget.NewMeter(limit)

	v, err := expr.EvalString(src, m)
	if err != nil {
		return out.Error(err)
	}
	sv, err := simplify.Simplify(v, cost, m)
	if err != nil {
		return out.Error(err)
	}

	data := simplifyResult{
		Input:     src,
		Exact:     v.String(),
		Result:    sv.String(),
		Cost:      simplify.Cost(sv),
		StepsUsed: m.Used(),
	}
	slog.Debug("simplified expression", "input", src, "result", data.Result, "steps", data.StepsUsed)
	recordHistory(opts.RootOptions, history.KindSimplify, src, data.Result, data.StepsUsed)
	return out.Success(data)
}
