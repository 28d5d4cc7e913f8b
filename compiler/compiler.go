// Package compiler orchestrates the four-stage pipeline: lex, parse,
// resolve, and generate AArch64 assembly for a Toy program.
//
// This mirrors the math-compiler teacher's compiler.Compiler: a small
// struct with New/SetDebug/Compile, where Compile walks the pipeline
// stages and returns the finished assembly text or the first error.
package compiler

import (
	"github.com/skx/toycc/codegen"
	"github.com/skx/toycc/ir"
	"github.com/skx/toycc/parser"
	"github.com/skx/toycc/resolver"
)

// Compiler holds our object-state: the source text and whether to
// emit debug scaffolding in the generated assembly.
type Compiler struct {
	// source holds the Toy program we're compiling.
	source string

	// debug controls whether CodeGen inserts a debug trap in its
	// output.
	debug bool
}

// New creates a new compiler for the given source text.
func New(source string) *Compiler {
	return &Compiler{source: source}
}

// SetDebug changes the debug-flag for our output.
func (c *Compiler) SetDebug(val bool) {
	c.debug = val
}

// Compile runs the source through lex/parse/resolve/codegen and
// returns the resulting AArch64 assembly text, or the first error any
// stage produced.
func (c *Compiler) Compile() (string, error) {
	prog, err := parser.Parse(c.source)
	if err != nil {
		return "", err
	}

	if err := resolver.Resolve(prog); err != nil {
		return "", err
	}

	instrs := ir.Lower(prog)

	gen := codegen.New(instrs)
	gen.SetDebug(c.debug)

	return gen.Emit(), nil
}
