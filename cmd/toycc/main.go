// Command toycc compiles a Toy source file to a native AArch64
// executable for Apple Darwin.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/skx/toycc/diag"
	"github.com/skx/toycc/driver"
)

var (
	outputPath string
	debug      bool
	keepAsm    bool
	verbose    bool

	errorColor = color.New(color.FgRed, color.Bold)
	caretColor = color.New(color.FgYellow)
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toycc <input.toy>",
		Short: "Compile a Toy program to a native AArch64 executable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0])
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output executable path (default: input path with its extension stripped)")
	cmd.Flags().BoolVar(&debug, "debug", false, "insert a debug trap in the generated assembly")
	cmd.Flags().BoolVar(&keepAsm, "keep-asm", false, "keep the generated .s file instead of deleting it")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log the input read and the output written to stderr")

	return cmd
}

func run(inputPath string) error {
	logStage("reading %s", inputPath)

	opts := driver.Options{
		InputPath:    inputPath,
		OutputPath:   outputPath,
		Debug:        debug,
		KeepAssembly: keepAsm,
	}

	if err := driver.Run(opts); err != nil {
		report(err)
		return err
	}

	resolved := outputPath
	if resolved == "" {
		resolved = driver.DefaultOutputPath(inputPath)
	}
	logStage("wrote %s", resolved)
	return nil
}

// logStage prints a stage-transition line only when -v/--verbose was
// passed; diagnostics are always printed regardless of verbosity.
func logStage(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, "toycc: "+format+"\n", args...)
	}
}

// report prints a single colorized diagnostic: kind, span, message.
func report(err error) {
	var derr *diag.Error
	if !errors.As(err, &derr) {
		errorColor.Fprintf(os.Stderr, "error: ")
		fmt.Fprintf(os.Stderr, "%s\n", err)
		return
	}

	errorColor.Fprintf(os.Stderr, "error[%s]: ", derr.Kind)
	fmt.Fprintf(os.Stderr, "%s ", derr.Message)
	caretColor.Fprintf(os.Stderr, "(at %d:%d)\n", derr.Span.Line, derr.Span.Column)
}
