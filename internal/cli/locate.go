package cli

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/cantor/internal/budget"
	"github.com/roach88/cantor/internal/embed"
	"github.com/roach88/cantor/internal/history"
)

// LocateOptions holds flags for the locate command.
type LocateOptions struct {
	*RootOptions
	Budget int
}

// NewLocateCommand creates the locate command.
func NewLocateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LocateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "locate <real>",
		Short: "Find the ordinal near a point of the embedding",
		Long: `Invert the real embedding: given a number in [0, f(ε₀)], print
the ordinal whose image is at or near it, together with the exact image
of that ordinal.

Example:
  cantor locate 3.4`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return locatePoint(opts, args[0], cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Budget, "budget", 0, "operation budget override (0 uses the configured value)")

	return cmd
}

type locateResult struct {
	X         float64 `json:"x"`
	Result    string  `json:"result"`
	Image     float64 `json:"image"`
	StepsUsed int     `json:"steps_used"`
}

func (r locateResult) String() string {
	return fmt.Sprintf("%s (image %g)", r.Result, r.Image)
}

func locatePoint(opts *LocateOptions, arg string, cmd *cobra.Command) error {
	out := formatter(opts.RootOptions, cmd)

	x, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("invalid number %q", arg), err)
	}

	limit := opts.Budget
	if limit <= 0 {
		limit = opts.Config.OperationBudget
	}
	m := budget.NewMeter(limit)

	mp, err := embed.NewMapper(opts.Config.Embedding(), opts.Config.InverseDepth, m)
	if err != nil {
		return out.Error(err)
	}
	v, err := mp.Inverse(x)
	if err != nil {
		return out.Error(err)
	}
	image, err := mp.F(v)
	if err != nil {
		return out.Error(err)
	}

	data := locateResult{
		X:         x,
		Result:    v.String(),
		Image:     image,
		StepsUsed: m.Used(),
	}
	slog.Debug("located ordinal", "x", x, "result", data.Result, "steps", data.StepsUsed)
	recordHistory(opts.RootOptions, history.KindLocate, arg, data.Result, data.StepsUsed)
	return out.Success(data)
}
