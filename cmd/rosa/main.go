// Command rosa is the command-line driver for the Rosa toolchain: lexing,
// parsing, and semantic analysis of .rosa source files, plus a small
// bytecode virtual machine.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rosa/internal/config"
	"rosa/internal/trace"
)

type rootFlags struct {
	configPath string
	color      string
	traceLevel string
}

func main() {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:           "rosa",
		Short:         "Rosa language toolchain",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.configPath, "config", "rosa.toml", "path to the project config file")
	root.PersistentFlags().StringVar(&flags.color, "color", "", "override color mode: auto, always, never")
	root.PersistentFlags().StringVar(&flags.traceLevel, "trace", "", "tracing level: off, phase, debug")

	root.AddCommand(
		newCheckCmd(flags),
		newTokenizeCmd(flags),
		newVMCmd(flags),
		newInitCmd(),
		newVersionCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func loadConfig(flags *rootFlags) config.Config {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning:", err)
		cfg = config.Default()
	}
	if flags.color != "" {
		cfg.Output.Color = config.Color(flags.color)
	}
	if flags.traceLevel != "" {
		cfg.Trace.Level = flags.traceLevel
	}
	return cfg
}

func tracerFromConfig(cfg config.Config) trace.Tracer {
	level, err := trace.ParseLevel(cfg.Trace.Level)
	if err != nil || level == trace.LevelOff {
		return trace.Nop
	}
	return trace.NewTextTracer(os.Stderr, level)
}
