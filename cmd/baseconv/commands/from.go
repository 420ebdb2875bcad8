package commands

import (
	"fmt"

	"github.com/bobg/errors"
	"github.com/spf13/cobra"

	"github.com/govalues/radix"
)

// from NUMBER --base B: convert NUMBER, written in base B, to base 10.
func fromCmd(g *globals) *cobra.Command {
	var base int
	cmd := &cobra.Command{
		Use:   "from NUMBER",
		Short: "Convert a number written in another base to base 10",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g.logger.Debug("converting to base 10", "number", args[0], "from", base)
			s, err := radix.BaseToDecimal(args[0], base, g.opts...)
			if err != nil {
				return errors.Wrap(err, "converting")
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
	cmd.Flags().IntVarP(&base, "base", "b", 0, "base of NUMBER")
	_ = cmd.MarkFlagRequired("base")
	return cmd
}
