package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/cantor/internal/budget"
	"github.com/roach88/cantor/internal/embed"
	"github.com/roach88/cantor/internal/expr"
	"github.com/roach88/cantor/internal/history"
	"github.com/roach88/cantor/internal/simplify"
)

// EvalOptions holds flags for the eval command.
type EvalOptions struct {
	*RootOptions
	Budget       int
	SimplifyCost int
	Map          bool
}

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EvalOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "eval <expression>",
		Short: "Evaluate an ordinal expression",
		Long: `Evaluate an ordinal expression to Cantor Normal Form.

The grammar accepts naturals, "w" for ω, "e_0" for ε₀, the operators
+ * ^ ^^, and parentheses. "^^" (tetration) binds tighter than "^",
both associate to the right.

Example:
  cantor eval '(w+1)*(w+1)'
  cantor eval 'w^w' --map
  cantor eval 'w^3*99+w*5+7' --simplify 6`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return evalExpression(opts, args[0], cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Budget, "budget", 0, "operation budget override (0 uses the configured value)")
	cmd.Flags().IntVar(&opts.SimplifyCost, "simplify", -1, "also simplify the result to the given complexity (-1 disables)")
	cmd.Flags().BoolVar(&opts.Map, "map", false, "also print the real embedding of the result")

	return cmd
}

type evalResult struct {
	Input      string   `json:"input"`
	Result     string   `json:"result"`
	Simplified string   `json:"simplified,omitempty"`
	Mapped     *float64 `json:"mapped,omitempty"`
	StepsUsed  int      `json:"steps_used"`
}

func (r evalResult) String() string {
	var b strings.Builder
	b.WriteString(r.Result)
	if r.Simplified != "" {
		fmt.Fprintf(&b, "\nsimplified: %s", r.Simplified)
	}
	if r.Mapped != nil {
		fmt.Fprintf(&b, "\nmapped: %g", *r.Mapped)
	}
	return b.String()
}

func evalExpression(opts *EvalOptions, src string, cmd *cobra.Command) error {
	out := formatter(opts.RootOptions, cmd)

	limit := opts.Budget
	if limit <= 0 {
		limit = opts.Config.OperationBudget
	}
	m := budget.NewMeter(limit)

	v, err := expr.EvalString(src, m)
	if err != nil {
		return out.Error(err)
	}
	data := evalResult{Input: src, Result: v.String()}

	if opts.SimplifyCost >= 0 {
		sv, err := simplify.Simplify(v, opts.SimplifyCost, m)
		if err != nil {
			return out.Error(err)
		}
		data.Simplified = sv.String()
	}
	if opts.Map {
		mp, err := embed.NewMapper(opts.Config.Embedding(), opts.Config.InverseDepth, m)
		if err != nil {
			return out.Error(err)
		}
		x, err := mp.F(v)
		if err != nil {
			return out.Error(err)
		}
		data.Mapped = &x
	}
	data.StepsUsed = m.Used()

	slog.Debug("evaluated expression", "input", src, "result", data.Result, "steps", data.StepsUsed)
	recordHistory(opts.RootOptions, history.KindEval, src, data.Result, data.StepsUsed)
	return out.Success(data)
}
