package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/avdva/biquinary"
)

func (a *app) tableCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print the digit code table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for v, code := range biquinary.Codes() {
				decoded, err := biquinary.Decode(code)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%d %04b %d\n", v, code, decoded)
			}
			return nil
		},
	}
}

func (a *app) addCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add A B",
		Short: "Print (A + B) mod 10^N",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, y, err := a.operands(args)
			if err != nil {
				return err
			}
			sum, carry, err := x.AddWithCarry(y, 0)
			if err != nil {
				return err
			}
			a.log.Debug("add", zap.Stringer("a", x), zap.Stringer("b", y), zap.Int("carry", carry))
			a.print(cmd.OutOrStdout(), sum)
			return nil
		},
	}
}

func (a *app) subCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sub A B",
		Short: "Print (A - B) mod 10^N",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, y, err := a.operands(args)
			if err != nil {
				return err
			}
			diff, err := x.Sub(y)
			if err != nil {
				return err
			}
			a.log.Debug("sub", zap.Stringer("a", x), zap.Stringer("b", y), zap.Stringer("complement", y.Complement9()))
			a.print(cmd.OutOrStdout(), diff)
			return nil
		},
	}
}

func (a *app) complementCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "complement A",
		Short: "Print the 9's complement of A",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.operand(args[0])
			if err != nil {
				return err
			}
			a.print(cmd.OutOrStdout(), x.Complement9())
			return nil
		},
	}
}

func (a *app) demoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run a short demonstration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			m1, err := biquinary.FromValues([]int{1, 2, 3})
			if err != nil {
				return err
			}
			m2, err := biquinary.FromValues([]int{4, 3, 2})
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "m1 =", m1)
			fmt.Fprintln(out, "m2 =", m2)

			m3, err := m1.Add(m2)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "m1 + m2 =", m3)
			fmt.Fprintln(out, "complement of m1 =", m1.Complement9())

			m4, err := m2.Sub(m1)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "m2 - m1 =", m4)
			return nil
		},
	}
}
