package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bobg/errors"
	"github.com/spf13/cobra"

	"github.com/govalues/radix"
)

// sum N[@B]...: add numbers, each written in base B (10 if omitted).
func sumCmd(g *globals) *cobra.Command {
	var (
		base   int
		repeat string
		exact  bool
	)
	cmd := &cobra.Command{
		Use:   "sum N[@B]...",
		Short: "Add numbers written in different bases",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			notation, err := parseNotation(repeat)
			if err != nil {
				return err
			}
			numbers := make([]radix.Number, 0, len(args))
			for _, arg := range args {
				n, err := parseOperand(arg, g.opts)
				if err != nil {
					return errors.Wrapf(err, "reading operand %s", arg)
				}
				g.logger.Debug("operand", "arg", arg, "value", n.String())
				numbers = append(numbers, n)
			}
			total := radix.Sum(numbers...)
			g.logger.Debug("total", "value", total.String())

			if exact {
				fmt.Fprintln(cmd.OutOrStdout(), total)
				return nil
			}
			c, err := radix.NewConverterFromNumber(total, g.opts...)
			if err != nil {
				return errors.Wrap(err, "creating converter")
			}
			s, err := convert(c, base, notation)
			if err != nil {
				return errors.Wrap(err, "converting")
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
	cmd.Flags().IntVarP(&base, "base", "b", 10, "base of the total")
	cmd.Flags().BoolVar(&exact, "exact", false, "print the exact total as a whole part and a fraction")
	addRepeatFlag(cmd, &repeat)
	return cmd
}

// parseOperand reads "DIGITS" or "DIGITS@BASE".
func parseOperand(arg string, opts []radix.Option) (radix.Number, error) {
	digits, b, ok := strings.Cut(arg, "@")
	base := 10
	if ok {
		var err error
		base, err = strconv.Atoi(b)
		if err != nil {
			return radix.Number{}, errors.Wrapf(err, "parsing base %q", b)
		}
	}
	c, err := radix.NewConverter(digits, base, opts...)
	if err != nil {
		return radix.Number{}, err
	}
	return c.Number(), nil
}
