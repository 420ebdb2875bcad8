package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/bobg/errors"
	"github.com/spf13/cobra"

	"github.com/govalues/radix"
)

// globals holds the state shared by all subcommands of one root command.
type globals struct {
	scale   int
	digits  string
	verbose bool

	logger *slog.Logger
	opts   []radix.Option
}

// Execute runs the baseconv command line against the process arguments,
// writing results to stdout and logs to stderr.
func Execute() error {
	return newRootCmd(os.Stdout, os.Stderr).Execute()
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	g := &globals{}
	root := &cobra.Command{
		Use:          "baseconv",
		Short:        "Exact number base conversion",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if g.verbose {
				level = slog.LevelDebug
			}
			g.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			if g.scale < 0 {
				return errors.Wrapf(radix.ErrInvalidScale, "--scale %d", g.scale)
			}
			g.opts = []radix.Option{radix.WithScale(g.scale)}
			if g.digits != "" {
				a, err := radix.NewAlphabet(g.digits)
				if err != nil {
					return errors.Wrap(err, "parsing --digits")
				}
				g.opts = append(g.opts, radix.WithAlphabet(a))
			}
			g.logger.Debug("configured", "command", cmd.Name(), "scale", g.scale, "digits", g.digits)
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.IntVar(&g.scale, "scale", radix.DefaultScale, "digits after the radix point")
	pf.StringVar(&g.digits, "digits", "", "digit symbols (default 0-9 then a-z)")
	pf.BoolVarP(&g.verbose, "verbose", "v", false, "log debug details to stderr")

	root.AddCommand(toCmd(g), basesCmd(g), fromCmd(g), sumCmd(g))
	return root
}

// addRepeatFlag registers --repeat, which takes the markers as "BEGIN,END".
// A bare --repeat uses parentheses.
func addRepeatFlag(cmd *cobra.Command, repeat *string) {
	cmd.Flags().StringVar(repeat, "repeat", "", `write repetends between markers, as --repeat="BEGIN,END"`)
	cmd.Flags().Lookup("repeat").NoOptDefVal = radix.DefaultRepeatNotation.Begin + "," + radix.DefaultRepeatNotation.End
}

// parseNotation returns nil if no markers were requested.
func parseNotation(s string) (*radix.RepeatNotation, error) {
	if s == "" {
		return nil, nil
	}
	begin, end, ok := strings.Cut(s, ",")
	if !ok {
		return nil, fmt.Errorf("--repeat %q: want BEGIN,END", s)
	}
	return &radix.RepeatNotation{Begin: begin, End: end}, nil
}

func convert(c *radix.Converter, base int, notation *radix.RepeatNotation) (string, error) {
	if notation == nil {
		return c.ToBase(base)
	}
	return c.ToBaseRepeat(base, *notation)
}
