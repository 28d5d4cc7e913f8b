// Package resolver walks the parsed statement list, assigning a
// stable stack slot to every "let" and checking every variable
// reference against the bindings visible at that point in the
// program.
package resolver

import (
	"github.com/skx/toycc/ast"
	"github.com/skx/toycc/diag"
	"github.com/skx/toycc/token"
)

// MaxSlots is the total number of "let" statements a program may
// contain; each consumes one fresh slot even when shadowing an
// existing name.
const MaxSlots = 32

// binding is one entry in the association list: a name and the slot
// it was most recently bound to.
type binding struct {
	name string
	slot int
}

// Resolver holds the symbol table: an association list in
// declaration order. Shadowing appends a new binding; lookup returns
// the most recent match, scanning from the end.
type Resolver struct {
	bindings []binding
	nextSlot int
}

// New creates an empty Resolver.
func New() *Resolver {
	return &Resolver{}
}

// Resolve annotates prog in place: every ast.Var gets its Slot filled
// in, every ast.Let and ast.Assign gets its Slot filled in. It returns
// the first error encountered.
func Resolve(prog *ast.Program) error {
	r := New()
	for _, stmt := range prog.Stmts {
		if err := r.resolveStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.Let:
		// Resolve the RHS under the *current* table first, so
		// "let x = x + 1;" sees the previous binding of x before
		// the new one is appended.
		if err := r.resolveExpr(s.X); err != nil {
			return err
		}

		if r.nextSlot >= MaxSlots {
			return diag.New(diag.TooManyLets, spanOf(s.Sp), "too many 'let' statements: limit is %d", MaxSlots)
		}

		s.Slot = r.nextSlot
		r.bindings = append(r.bindings, binding{name: s.Name, slot: s.Slot})
		r.nextSlot++
		return nil

	case *ast.Assign:
		if err := r.resolveExpr(s.X); err != nil {
			return err
		}

		slot, ok := r.lookup(s.Name)
		if !ok {
			return diag.New(diag.UndefinedVariable, spanOf(s.Sp), "undefined variable %q", s.Name)
		}
		s.Slot = slot
		return nil

	case *ast.Print:
		return r.resolveExpr(s.X)

	default:
		panic("resolver: unknown statement type")
	}
}

func (r *Resolver) resolveExpr(expr ast.Expr) error {
	switch e := expr.(type) {
	case *ast.IntLit:
		return nil

	case *ast.Var:
		slot, ok := r.lookup(e.Name)
		if !ok {
			return diag.New(diag.UndefinedVariable, spanOf(e.Sp), "undefined variable %q", e.Name)
		}
		e.Slot = slot
		return nil

	case *ast.Neg:
		return r.resolveExpr(e.X)

	case *ast.Bin:
		if err := r.resolveExpr(e.X); err != nil {
			return err
		}
		return r.resolveExpr(e.Y)

	default:
		panic("resolver: unknown expression type")
	}
}

// lookup scans the association list from the end, so a shadowing
// binding is found before the one it shadows.
func (r *Resolver) lookup(name string) (int, bool) {
	for i := len(r.bindings) - 1; i >= 0; i-- {
		if r.bindings[i].name == name {
			return r.bindings[i].slot, true
		}
	}
	return 0, false
}

func spanOf(sp token.Span) diag.Span {
	return diag.Span{Line: sp.Line, Column: sp.Column}
}
