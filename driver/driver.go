// Package driver is the glue around the core compiler: reading the
// source file, invoking the pipeline, writing the assembly to a
// temporary file, and invoking the platform assembler and linker.
//
// None of this is part of the compiler core (spec §1); it is
// intentionally kept separate so the core stays synchronous, pure,
// and free of any filesystem or subprocess dependency.
package driver

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/skx/toycc/compiler"
	"github.com/skx/toycc/diag"
)

// Options configures a single compile-and-link run.
type Options struct {
	// InputPath is the ".toy" source file to compile.
	InputPath string

	// OutputPath is where the linked executable is written. If
	// empty, it defaults to InputPath with its extension stripped
	// (see DESIGN.md for the no-extension-input edge case).
	OutputPath string

	// Debug requests a debug trap in the generated assembly.
	Debug bool

	// KeepAssembly, if set, leaves the generated ".s" file on disk
	// (in the system temporary directory, named "toycc-*.s") instead
	// of deleting it. Useful for
	// inspecting codegen output without re-running with no linking.
	KeepAssembly bool
}

// resolvedOutputPath applies the default-output-path rule.
func (o Options) resolvedOutputPath() string {
	if o.OutputPath != "" {
		return o.OutputPath
	}
	return DefaultOutputPath(o.InputPath)
}

// DefaultOutputPath is the input path with its extension stripped. An
// input with no extension would otherwise collide with itself, so a
// ".out" suffix is appended instead (spec.md's OQ-3, resolved here).
func DefaultOutputPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	if ext == "" {
		return inputPath + ".out"
	}
	return strings.TrimSuffix(inputPath, ext)
}

// Run reads, compiles, assembles and links a Toy program per opts. It
// returns the first diag.Error from the compiler, a
// diag.ToolchainFailure wrapping the failing subprocess's error, or a
// wrapped I/O error if the source cannot be read or the temporary
// assembly file cannot be written.
func Run(opts Options) error {
	src, err := os.ReadFile(opts.InputPath)
	if err != nil {
		return errors.Wrapf(err, "reading %s", opts.InputPath)
	}

	comp := compiler.New(string(src))
	comp.SetDebug(opts.Debug)

	asmText, err := comp.Compile()
	if err != nil {
		return err
	}

	outputPath := opts.resolvedOutputPath()

	asmPath, err := writeTempAssembly(asmText)
	if err != nil {
		return errors.Wrap(err, "writing temporary assembly file")
	}
	if !opts.KeepAssembly {
		defer os.Remove(asmPath)
	}

	objPath := asmPath + ".o"
	defer os.Remove(objPath)

	if err := assemble(asmPath, objPath); err != nil {
		return err
	}

	if err := link(objPath, outputPath); err != nil {
		return err
	}

	return nil
}

func writeTempAssembly(text string) (string, error) {
	f, err := os.CreateTemp("", "toycc-*.s")
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := f.WriteString(text); err != nil {
		return "", err
	}
	return f.Name(), nil
}

// assemble invokes `as` to turn the generated assembly into an object
// file targeting AArch64.
func assemble(asmPath, objPath string) error {
	cmd := exec.Command("as", "-arch", "arm64", "-o", objPath, asmPath)
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return toolchainFailure("as", err)
	}
	return nil
}

// link invokes the platform C compiler/linker, which provides the
// _printf our generated code calls.
func link(objPath, outputPath string) error {
	cmd := exec.Command("cc", "-o", outputPath, objPath)
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return toolchainFailure("cc", err)
	}
	return nil
}

func toolchainFailure(tool string, cause error) error {
	wrapped := errors.Wrapf(cause, "invoking %s", tool)
	return &diag.Error{
		Kind:    diag.ToolchainFailure,
		Message: wrapped.Error(),
	}
}
