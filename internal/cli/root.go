// Package cli implements the biquinary command line: a thin driver that
// prints the digit code table and runs mantissa arithmetic on its arguments.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/avdva/biquinary"
)

type app struct {
	verbose bool
	codes   bool
	width   int

	level zap.AtomicLevel
	log   *zap.Logger
}

func newApp(stderr io.Writer) *app {
	level := zap.NewAtomicLevelAt(zap.WarnLevel)
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.AddSync(stderr), level)
	return &app{
		level: level,
		log:   zap.New(core),
	}
}

// Main runs the command line with given arguments and returns the exit code.
func Main(args []string, stdout, stderr io.Writer) int {
	a := newApp(stderr)
	defer func() {
		_ = a.log.Sync()
	}()

	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		a.log.Error("command failed", zap.String("error", err.Error()))
		return 1
	}
	return 0
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "biquinary",
		Short: "Bi-quinary decimal arithmetic",
		Long: `biquinary prints the bi-quinary digit code table and runs
fixed-width decimal arithmetic. Operands are strings of decimal digits
with 3, 15 or 18 digits; the result is truncated to the operand width.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if a.verbose {
				a.level.SetLevel(zap.DebugLevel)
			}
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().BoolVar(&a.codes, "codes", false, "Print bi-quinary codes instead of decimal digits")
	root.PersistentFlags().IntVarP(&a.width, "width", "w", 0, "Left-pad operands with zeros to this width (3, 15 or 18)")

	root.AddCommand(
		a.tableCommand(),
		a.addCommand(),
		a.subCommand(),
		a.complementCommand(),
		a.demoCommand(),
	)

	return root
}

// operand parses a decimal digit string, padding it to the --width flag.
func (a *app) operand(s string) (biquinary.Mantissa, error) {
	if a.width > len(s) {
		s = strings.Repeat("0", a.width-len(s)) + s
	}
	m, err := biquinary.FromString(s)
	if err != nil {
		return biquinary.Mantissa{}, fmt.Errorf("operand %q: %w", s, err)
	}
	return m, nil
}

func (a *app) operands(args []string) (x, y biquinary.Mantissa, err error) {
	if x, err = a.operand(args[0]); err != nil {
		return
	}
	y, err = a.operand(args[1])
	return
}

func (a *app) print(w io.Writer, m biquinary.Mantissa) {
	if !a.codes {
		fmt.Fprintln(w, m)
		return
	}
	codes := m.Codes()
	parts := make([]string, len(codes))
	for i, c := range codes {
		parts[i] = fmt.Sprintf("%04b", c)
	}
	fmt.Fprintln(w, strings.Join(parts, " "))
}
