package commands

import (
	"fmt"

	"github.com/bobg/errors"
	"github.com/spf13/cobra"

	"github.com/govalues/radix"
)

// to NUMBER --base B: convert NUMBER, written in base --from, to base B.
func toCmd(g *globals) *cobra.Command {
	var (
		base, from int
		repeat     string
		plain      bool
	)
	cmd := &cobra.Command{
		Use:   "to NUMBER",
		Short: "Convert a number to another base",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			notation, err := parseNotation(repeat)
			if err != nil {
				return err
			}

			var s string
			if plain {
				if from != 10 {
					return fmt.Errorf("--plain requires a base 10 number, got --from %d", from)
				}
				if notation != nil {
					return fmt.Errorf("--plain cannot be combined with --repeat")
				}
				g.logger.Debug("converting with fixed-point arithmetic", "number", args[0], "base", base)
				s, err = radix.DecimalToBase(args[0], base, g.opts...)
				if err != nil {
					return errors.Wrap(err, "converting")
				}
			} else {
				c, err := radix.NewConverter(args[0], from, g.opts...)
				if err != nil {
					return errors.Wrapf(err, "reading base %d number", from)
				}
				g.logger.Debug("converting", "number", c.Number().String(), "from", from, "base", base)
				s, err = convert(c, base, notation)
				if err != nil {
					return errors.Wrap(err, "converting")
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
	cmd.Flags().IntVarP(&base, "base", "b", 0, "target base")
	cmd.Flags().IntVarP(&from, "from", "f", 10, "base of NUMBER")
	cmd.Flags().BoolVar(&plain, "plain", false, "use fixed-point arithmetic on the decimal digits")
	addRepeatFlag(cmd, &repeat)
	_ = cmd.MarkFlagRequired("base")
	return cmd
}
