// Package parser implements a recursive-descent parser for Toy,
// matching the grammar:
//
//	expr  = term  (("+"|"-") term)*       -- left-associative
//	term  = unary (("*"|"/"|"%") unary)*  -- left-associative
//	unary = "-" unary | atom              -- right-associative chain
//	atom  = INT | IDENT | "(" expr ")"
package parser

import (
	"github.com/skx/toycc/ast"
	"github.com/skx/toycc/diag"
	"github.com/skx/toycc/lexer"
	"github.com/skx/toycc/token"
)

// maxDepth bounds the syntactic nesting of parenthesized expressions
// and chained unary minus. It does not count binary-operator chains.
const maxDepth = 256

// Parser holds parser state: the lexer, a single token of lookahead,
// and the current nesting-depth counter.
type Parser struct {
	lex   *lexer.Lexer
	cur   token.Token
	depth int
}

// New creates a Parser reading from the given Lexer.
func New(lex *lexer.Lexer) (*Parser, error) {
	p := &Parser{lex: lex}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

// Parse consumes the full token stream and returns the statement
// list, or the first error encountered.
func Parse(src string) (*ast.Program, error) {
	p, err := New(lexer.New(src))
	if err != nil {
		return nil, err
	}
	return p.parseProgram()
}

func (p *Parser) advance() error {
	tok, err := p.lex.NextToken()
	if err != nil {
		return err
	}
	p.cur = tok
	return nil
}

func (p *Parser) parseProgram() (*ast.Program, error) {
	prog := &ast.Program{}

	for p.cur.Type != token.EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		prog.Stmts = append(prog.Stmts, stmt)
	}

	return prog, nil
}

// parseStatement dispatches on one token of lookahead.
func (p *Parser) parseStatement() (ast.Stmt, error) {
	switch p.cur.Type {
	case token.LET:
		return p.parseLet()
	case token.PRINT:
		return p.parsePrint()
	case token.IDENT:
		return p.parseAssign()
	case token.EOF:
		return nil, p.unexpectedEOF("a statement")
	default:
		return nil, p.unexpectedToken("a statement")
	}
}

func (p *Parser) parseLet() (ast.Stmt, error) {
	sp := p.cur.Span
	if err := p.advance(); err != nil { // consume "let"
		return nil, err
	}

	if p.cur.Type != token.IDENT {
		return nil, p.unexpectedToken("an identifier after 'let'")
	}
	name := p.cur.Literal
	if err := p.advance(); err != nil {
		return nil, err
	}

	if err := p.expect(token.ASSIGN, "'='"); err != nil {
		return nil, err
	}

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if err := p.expect(token.SEMI, "';'"); err != nil {
		return nil, err
	}

	return &ast.Let{Name: name, X: expr, Sp: sp}, nil
}

func (p *Parser) parsePrint() (ast.Stmt, error) {
	sp := p.cur.Span
	if err := p.advance(); err != nil { // consume "print"
		return nil, err
	}

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if err := p.expect(token.SEMI, "';'"); err != nil {
		return nil, err
	}

	return &ast.Print{X: expr, Sp: sp}, nil
}

func (p *Parser) parseAssign() (ast.Stmt, error) {
	sp := p.cur.Span
	name := p.cur.Literal
	if err := p.advance(); err != nil { // consume identifier
		return nil, err
	}

	if err := p.expect(token.ASSIGN, "'='"); err != nil {
		return nil, err
	}

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if err := p.expect(token.SEMI, "';'"); err != nil {
		return nil, err
	}

	return &ast.Assign{Name: name, X: expr, Sp: sp}, nil
}

// parseExpr handles "+" and "-" at the lowest precedence,
// left-associative.
func (p *Parser) parseExpr() (ast.Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for p.cur.Type == token.PLUS || p.cur.Type == token.MINUS {
		op := binOp(p.cur.Type)
		sp := p.cur.Span
		if err := p.advance(); err != nil {
			return nil, err
		}

		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}

		left = &ast.Bin{Op: op, X: left, Y: right, Sp: sp}
	}

	return left, nil
}

// parseTerm handles "*", "/" and "%", left-associative, binding
// tighter than "+"/"-".
func (p *Parser) parseTerm() (ast.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for p.cur.Type == token.ASTERISK || p.cur.Type == token.SLASH || p.cur.Type == token.PERCENT {
		op := binOp(p.cur.Type)
		sp := p.cur.Span
		if err := p.advance(); err != nil {
			return nil, err
		}

		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}

		left = &ast.Bin{Op: op, X: left, Y: right, Sp: sp}
	}

	return left, nil
}

// parseUnary handles a right-associative chain of unary minus,
// each application adding one to the nesting-depth counter.
func (p *Parser) parseUnary() (ast.Expr, error) {
	if p.cur.Type == token.MINUS {
		sp := p.cur.Span
		if err := p.enterNesting(sp); err != nil {
			return nil, err
		}
		defer p.leaveNesting()

		if err := p.advance(); err != nil {
			return nil, err
		}

		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.Neg{X: x, Sp: sp}, nil
	}

	return p.parseAtom()
}

// parseAtom handles literals, variable references, and parenthesized
// sub-expressions; a parenthesized sub-expression adds one to the
// nesting-depth counter.
func (p *Parser) parseAtom() (ast.Expr, error) {
	switch p.cur.Type {
	case token.INT:
		sp := p.cur.Span
		val, err := parseUint64(p.cur.Literal)
		if err != nil {
			return nil, diag.New(diag.IntegerOutOfRange, diagSpan(sp), "integer literal %q exceeds 9223372036854775807", p.cur.Literal)
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.IntLit{Value: val, Sp: sp}, nil

	case token.IDENT:
		sp := p.cur.Span
		name := p.cur.Literal
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.Var{Name: name, Sp: sp}, nil

	case token.LPAREN:
		sp := p.cur.Span
		if err := p.enterNesting(sp); err != nil {
			return nil, err
		}
		defer p.leaveNesting()

		if err := p.advance(); err != nil {
			return nil, err
		}

		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		if err := p.expect(token.RPAREN, "')'"); err != nil {
			return nil, err
		}

		return expr, nil

	case token.EOF:
		return nil, p.unexpectedEOF("an expression")

	default:
		return nil, p.unexpectedToken("an expression")
	}
}

func (p *Parser) enterNesting(sp token.Span) error {
	p.depth++
	if p.depth > maxDepth {
		return diag.New(diag.NestingTooDeep, diagSpan(sp), "expression nesting exceeds %d", maxDepth)
	}
	return nil
}

func (p *Parser) leaveNesting() {
	p.depth--
}

func (p *Parser) expect(tt token.Type, description string) error {
	if p.cur.Type != tt {
		if p.cur.Type == token.EOF {
			return p.unexpectedEOF(description)
		}
		return p.unexpectedToken("expected " + description)
	}
	return p.advance()
}

func (p *Parser) unexpectedToken(context string) error {
	return diag.New(diag.UnexpectedToken, diagSpan(p.cur.Span), "%s, found %q", context, tokenDescription(p.cur))
}

func (p *Parser) unexpectedEOF(context string) error {
	return diag.New(diag.UnexpectedEndOfInput, diagSpan(p.cur.Span), "input ended while looking for %s", context)
}

func tokenDescription(tok token.Token) string {
	if tok.Type == token.EOF {
		return "end of input"
	}
	return string(tok.Type)
}

func binOp(tt token.Type) ast.Op {
	switch tt {
	case token.PLUS:
		return ast.Add
	case token.MINUS:
		return ast.Sub
	case token.ASTERISK:
		return ast.Mul
	case token.SLASH:
		return ast.Div
	case token.PERCENT:
		return ast.Mod
	default:
		panic("parser: binOp called with non-operator token")
	}
}

func diagSpan(sp token.Span) diag.Span {
	return diag.Span{Line: sp.Line, Column: sp.Column}
}
