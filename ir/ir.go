// Package ir lowers a resolved AST to a flat list of statement-level
// pseudo-instructions, mirroring the math-compiler teacher's
// instructions package: codegen consumes one instruction at a time,
// each with its own gen* handler, rather than walking the raw AST
// inline inside a single giant switch.
//
// Unlike the teacher - whose expressions were already flattened to
// RPN by its lexer/parser, since "3 4 +" is the concrete syntax - Toy
// has real operator precedence and parentheses, so an expression stays
// a tree below the statement level. CodeGen's push/pop-minimal Bin
// emission (spec §4.4) depends on that tree shape, so only the
// statement sequence is flattened here; each instruction still carries
// its expression subtree for CodeGen to walk recursively.
package ir

import "github.com/skx/toycc/ast"

// Kind identifies the kind of a single statement-level instruction.
type Kind byte

const (
	// StoreLet evaluates X and stores it to Slot (a fresh slot
	// allocated by a "let").
	StoreLet Kind = 'L'

	// StoreAssign evaluates X and stores it to Slot (a slot
	// previously allocated by some "let").
	StoreAssign Kind = 'A'

	// Print evaluates X and prints it as a signed decimal.
	Print Kind = 'P'
)

// Instruction is one entry in the lowered program.
type Instruction struct {
	Kind Kind
	Slot int // meaningful for StoreLet and StoreAssign
	X    ast.Expr
}

// Lower walks a resolved ast.Program in statement order and produces
// the flat instruction list CodeGen emits assembly for.
func Lower(prog *ast.Program) []Instruction {
	out := make([]Instruction, 0, len(prog.Stmts))
	for _, stmt := range prog.Stmts {
		out = append(out, lowerStmt(stmt))
	}
	return out
}

func lowerStmt(stmt ast.Stmt) Instruction {
	switch s := stmt.(type) {
	case *ast.Let:
		return Instruction{Kind: StoreLet, Slot: s.Slot, X: s.X}
	case *ast.Assign:
		return Instruction{Kind: StoreAssign, Slot: s.Slot, X: s.X}
	case *ast.Print:
		return Instruction{Kind: Print, X: s.X}
	default:
		panic("ir: unknown statement type")
	}
}
