package commands

import (
	"fmt"

	"github.com/bobg/errors"
	"github.com/spf13/cobra"

	"github.com/govalues/radix"
)

// bases NUMBER --bases 2,8,16: convert NUMBER to each base, one line per base.
func basesCmd(g *globals) *cobra.Command {
	var (
		bases  []int
		from   int
		repeat string
	)
	cmd := &cobra.Command{
		Use:   "bases NUMBER",
		Short: "Convert a number to several bases",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			notation, err := parseNotation(repeat)
			if err != nil {
				return err
			}
			c, err := radix.NewConverter(args[0], from, g.opts...)
			if err != nil {
				return errors.Wrapf(err, "reading base %d number", from)
			}
			g.logger.Debug("converting", "number", c.Number().String(), "from", from, "bases", bases)

			var res []radix.Conversion
			if notation == nil {
				res, err = c.ToBases(bases)
			} else {
				res, err = c.ToBasesRepeat(bases, *notation)
			}
			if err != nil {
				return errors.Wrap(err, "converting")
			}
			for _, r := range res {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", r.Base, r.Digits)
			}
			return nil
		},
	}
	cmd.Flags().IntSliceVar(&bases, "bases", []int{2, 8, 10, 16}, "target bases")
	cmd.Flags().IntVarP(&from, "from", "f", 10, "base of NUMBER")
	addRepeatFlag(cmd, &repeat)
	return cmd
}
