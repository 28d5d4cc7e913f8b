// Package codegen emits AArch64 assembly, in Apple's Darwin dialect,
// for a lowered Toy program.
//
// The structure mirrors the math-compiler teacher's
// compiler/generator.go: a header, a prologue, a body assembled by
// walking the lowered instructions and calling one gen* method per
// instruction kind, and an epilogue. Where the teacher's instructions
// were already RPN-flat tokens, ir.Instruction still carries an
// expression tree; genExpr walks it in post-order exactly as spec'd
// (push the left operand, evaluate the right, pop and combine).
package codegen

import (
	"fmt"
	"strings"

	"github.com/skx/toycc/ast"
	"github.com/skx/toycc/ir"
	"github.com/skx/toycc/stack"
)

// maxSlots is the fixed slot budget; the locals frame always reserves
// room for all of them, even if a particular program uses fewer.
const maxSlots = 32

// localsSize is the number of bytes reserved for variable storage in
// the prologue: maxSlots slots of 8 bytes each. 256 is already a
// multiple of 16, so no further alignment padding is required.
const localsSize = maxSlots * 8

// CodeGen holds the generator's state: the lowered instruction list
// and a compile-time stack used only to assert that every expression's
// emitted push/pop pairs balance.
type CodeGen struct {
	debug   bool
	instrs  []ir.Instruction
	balance *stack.Stack[struct{}]
}

// New creates a CodeGen over an already-lowered instruction list.
func New(instrs []ir.Instruction) *CodeGen {
	return &CodeGen{instrs: instrs, balance: stack.New[struct{}]()}
}

// SetDebug toggles emission of a debug trap at the start of _main,
// mirroring the teacher's "-debug" flag.
func (c *CodeGen) SetDebug(v bool) {
	c.debug = v
}

// Emit returns the full assembly text for the program.
func (c *CodeGen) Emit() string {
	var body strings.Builder
	for _, instr := range c.instrs {
		body.WriteString(c.genInstruction(instr))
	}

	return header() + prologue(c.debug) + body.String() + epilogue()
}

// header emits the .data/.cstring section holding the one format
// string every "print" statement shares.
func header() string {
	return `
#
# This assembly file was produced by toycc.
#
# AArch64, Apple Darwin assembler dialect (as(1) from Xcode).
#
.section __TEXT,__cstring,cstring_literals
L_fmt:
        .asciz "%ld\n"

.section __TEXT,__text,regular,pure_instructions
.globl _main
.p2align 2
`
}

// prologue sets up the frame record and reserves the locals frame.
func prologue(debug bool) string {
	out := fmt.Sprintf(`_main:
        stp x29, x30, [sp, #-16]!
        mov x29, sp
        sub sp, sp, #%d
`, localsSize)

	if debug {
		out += asm("brk #0")
	}

	return out
}

// epilogue restores the frame and returns 0, so the process exits
// with status 0 once the last "print" has run.
func epilogue() string {
	return fmt.Sprintf(`        add sp, sp, #%d
        ldp x29, x30, [sp], #16
        mov x0, #0
        ret
`, localsSize)
}

// genInstruction emits one statement's worth of assembly.
func (c *CodeGen) genInstruction(instr ir.Instruction) string {
	switch instr.Kind {
	case ir.StoreLet, ir.StoreAssign:
		return c.genExpr(instr.X) + c.genStore(instr.Slot)
	case ir.Print:
		return c.genExpr(instr.X) + c.genPrint()
	default:
		panic("codegen: unknown instruction kind")
	}
}

// genStore writes x0 to the fixed stack offset for a slot.
func (c *CodeGen) genStore(slot int) string {
	return asm(fmt.Sprintf("# [STORE slot %d]", slot)) +
		asm(fmt.Sprintf("str x0, [x29, #%d]", slotOffset(slot)))
}

// genPrint calls printf(L_fmt, x0).
func (c *CodeGen) genPrint() string {
	return asm("# [PRINT]") +
		asm("mov x1, x0") +
		asm("adrp x0, L_fmt@PAGE") +
		asm("add x0, x0, L_fmt@PAGEOFF") +
		asm("bl _printf")
}

// genExpr recursively emits post-order code for expr, leaving the
// result in x0.
func (c *CodeGen) genExpr(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.IntLit:
		return genImmediate(e.Value)

	case *ast.Var:
		return asm(fmt.Sprintf("ldr x0, [x29, #%d]", slotOffset(e.Slot)))

	case *ast.Neg:
		return c.genExpr(e.X) + asm("neg x0, x0")

	case *ast.Bin:
		return c.genBin(e)

	default:
		panic("codegen: unknown expression type")
	}
}

// genBin implements the spec's push/pop-minimal lowering: the left
// operand is evaluated and pushed, the right operand is evaluated
// directly into x0, the saved left is popped, and the two are
// combined.
func (c *CodeGen) genBin(e *ast.Bin) string {
	var out strings.Builder

	out.WriteString(c.genExpr(e.X))
	out.WriteString(asm("str x0, [sp, #-16]!"))
	c.balance.Push(struct{}{})

	out.WriteString(c.genExpr(e.Y))
	out.WriteString(asm("mov x1, x0"))

	out.WriteString(asm("ldr x0, [sp], #16"))
	if _, err := c.balance.Pop(); err != nil {
		panic("codegen: unbalanced push/pop in Bin emission: " + err.Error())
	}

	switch e.Op {
	case ast.Add:
		out.WriteString(asm("add x0, x0, x1"))
	case ast.Sub:
		out.WriteString(asm("sub x0, x0, x1"))
	case ast.Mul:
		out.WriteString(asm("mul x0, x0, x1"))
	case ast.Div:
		out.WriteString(asm("sdiv x0, x0, x1"))
	case ast.Mod:
		out.WriteString(asm("sdiv x2, x0, x1"))
		out.WriteString(asm("msub x0, x2, x1, x0"))
	default:
		panic("codegen: unknown binary operator")
	}

	return out.String()
}

// genImmediate materializes a 64-bit unsigned magnitude into x0 using
// a "mov" for the low 16-bit lane and one "movk" per non-zero
// remaining lane, per spec §4.4.
func genImmediate(n uint64) string {
	var out strings.Builder
	out.WriteString(asm(fmt.Sprintf("mov x0, #%d", n&0xffff)))

	for shift := 16; shift < 64; shift += 16 {
		lane := (n >> uint(shift)) & 0xffff
		if lane != 0 {
			out.WriteString(asm(fmt.Sprintf("movk x0, #%d, lsl #%d", lane, shift)))
		}
	}

	return out.String()
}

// slotOffset returns the [x29, #offset] offset for a variable slot.
// Slot 0 sits nearest x29; slot 31 sits at the bottom of the locals
// frame, furthest from x29.
func slotOffset(slot int) int {
	return -8 * (slot + 1)
}

// asm formats a single indented assembly line.
func asm(line string) string {
	return "        " + line + "\n"
}
