// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ezrec/sapsim/config"
	"github.com/ezrec/sapsim/display"
	"github.com/ezrec/sapsim/emulator"
	sapio "github.com/ezrec/sapsim/io"
	"github.com/ezrec/sapsim/program"
)

// runOptions are the settings of the run command.
type runOptions struct {
	config.Config
	change string
	tape   string
}

// applyConfig fills the options not set on the command line from the
// user configuration.
func (opts *runOptions) applyConfig(flags *pflag.FlagSet, cfg config.Config) {
	if !flags.Changed("bits") {
		opts.Bits = cfg.Bits
	}
	if !flags.Changed("format") {
		opts.Style = cfg.Style
	}
	if !flags.Changed("color") {
		opts.Color = cfg.Color
	}
	if !flags.Changed("speed") {
		opts.Speed = cfg.Speed
	}
}

func main() {
	var verbose bool
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "sapsim",
		Short:         "SAP-1 8-bit CPU simulator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose mode")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Configuration file (default is the user sapsim config.toml)")

	// run command
	opts := runOptions{Config: config.Default()}

	runCmd := &cobra.Command{
		Use:   "run PROG.csv",
		Short: "Run a SAP program, one instruction per Enter unless --speed is set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			var cfg config.Config
			if configPath != "" {
				cfg, err = config.ReadFile(configPath)
			} else {
				cfg, err = config.Load()
			}
			if err != nil {
				return
			}
			opts.applyConfig(cmd.Flags(), cfg)

			err = opts.Validate()
			if err != nil {
				return
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			return run(ctx, args[0], opts, verbose)
		},
	}
	runCmd.Flags().BoolVarP(&opts.Speed, "speed", "s", opts.Speed, "Run at full speed")
	runCmd.Flags().StringVarP(&opts.change, "change", "c", "", "Overwrite memory before execution, as <addr>:<value>,<addr>:<value>,...")
	runCmd.Flags().IntVarP(&opts.Bits, "bits", "b", opts.Bits, "Number of bits in the unsigned registers")
	runCmd.Flags().StringVarP(&opts.Style, "format", "f", opts.Style, "Table format, 'plain' or 'outline'")
	runCmd.Flags().StringVarP(&opts.tape, "tape", "t", "", "Also write each OUT value to a file, as 'PC Dec Hex' lines")
	runCmd.Flags().BoolVar(&opts.Color, "color", opts.Color, "Highlight the PC row and changed registers")

	// template command
	templateCmd := &cobra.Command{
		Use:   "template [PATH]",
		Short: "Write an empty SAP program",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "template.csv"
			if len(args) == 1 {
				path = args[0]
			}
			err := program.WriteTemplateFile(path)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Template written to %s\n", path)
			return nil
		},
	}

	// asm command
	asmCmd := &cobra.Command{
		Use:   "asm INSTRUCTION[,INSTRUCTION...]",
		Short: "Print the byte of each instruction, such as 'LDA 14'",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, text := range strings.Split(strings.Join(args, " "), ",") {
				code, err := program.Assemble(text)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s %3d\n", code, display.Hex(uint64(code)), uint8(code))
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, templateCmd, asmCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "%v: %v\n", rootCmd.Name(), err)
		os.Exit(1)
	}
}

// run loads and runs a program file.
func run(ctx context.Context, path string, opts runOptions, verbose bool) (err error) {
	prog, err := program.ParseFile(path)
	if err != nil {
		return
	}

	patches, err := program.ParsePatches(opts.change)
	if err != nil {
		return
	}

	style, err := display.ParseStyle(opts.Style)
	if err != nil {
		return
	}

	printer := display.NewPrinter(os.Stdout)
	printer.Style = style
	printer.Color = opts.Color

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.Display = printer

	if opts.tape != "" {
		var fd *os.File
		fd, err = os.Create(opts.tape)
		if err != nil {
			return
		}
		defer fd.Close()
		emu.Display = sapio.Displays{printer, &sapio.Tape{Output: fd}}
	}

	warnings, err := emu.Boot(prog.Image(), emulator.Options{Width: opts.Bits, Patches: patches})
	if err != nil {
		return
	}
	for _, warning := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %v\n", warning)
	}

	sess := &session{
		Name:    path,
		Emu:     emu,
		Printer: printer,
		Output:  os.Stdout,
	}

	if opts.Speed {
		return sess.Speed(ctx)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "",
		HistoryFile:     config.History(),
		InterruptPrompt: "\n",
	})
	if err != nil {
		return
	}
	defer rl.Close()

	return sess.Step(ctx, rl)
}
