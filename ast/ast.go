// Package ast defines the expression and statement trees produced by
// the parser and annotated in place by the resolver.
package ast

import "github.com/skx/toycc/token"

// Node is implemented by every expression and statement.
type Node interface {
	Span() token.Span
}

// Expr is implemented by every expression node.
type Expr interface {
	Node
	exprNode()
}

// Op identifies a binary operator.
type Op int

// The five binary operators Toy supports.
const (
	Add Op = iota
	Sub
	Mul
	Div
	Mod
)

func (o Op) String() string {
	switch o {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Mod:
		return "%"
	default:
		return "?"
	}
}

// IntLit is an integer literal. Value is the lexed magnitude, always
// in 0..=2^63-1; negative literals only arise via Neg.
type IntLit struct {
	Value uint64
	Sp    token.Span
}

func (n *IntLit) Span() token.Span { return n.Sp }
func (*IntLit) exprNode()          {}

// Var is a variable reference. Before resolution, Name is set and
// Slot is meaningless; the resolver fills in Slot and leaves Name for
// diagnostics.
type Var struct {
	Name string
	Slot int
	Sp   token.Span
}

func (n *Var) Span() token.Span { return n.Sp }
func (*Var) exprNode()          {}

// Neg is unary minus.
type Neg struct {
	X  Expr
	Sp token.Span
}

func (n *Neg) Span() token.Span { return n.Sp }
func (*Neg) exprNode()          {}

// Bin is a binary operator application.
type Bin struct {
	Op   Op
	X, Y Expr
	Sp   token.Span
}

func (n *Bin) Span() token.Span { return n.Sp }
func (*Bin) exprNode()          {}

// Stmt is implemented by every statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Let declares a new binding, allocating a fresh slot even when Name
// shadows an existing binding.
type Let struct {
	Name string
	Slot int
	X    Expr
	Sp   token.Span
}

func (n *Let) Span() token.Span { return n.Sp }
func (*Let) stmtNode()          {}

// Assign stores into the most recent slot bound to Name.
type Assign struct {
	Name string
	Slot int
	X    Expr
	Sp   token.Span
}

func (n *Assign) Span() token.Span { return n.Sp }
func (*Assign) stmtNode()          {}

// Print evaluates X and writes it as a signed decimal followed by a
// newline.
type Print struct {
	X  Expr
	Sp token.Span
}

func (n *Print) Span() token.Span { return n.Sp }
func (*Print) stmtNode()          {}

// Program is an ordered list of statements.
type Program struct {
	Stmts []Stmt
}
