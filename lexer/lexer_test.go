package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skx/toycc/diag"
	"github.com/skx/toycc/token"
)

// Trivial test of the parsing of numbers, identifiers and keywords.
func TestParseWords(t *testing.T) {
	input := `3 43 let print x print3`

	tests := []struct {
		expectedType    token.Type
		expectedLiteral string
	}{
		{token.INT, "3"},
		{token.INT, "43"},
		{token.LET, "let"},
		{token.PRINT, "print"},
		{token.IDENT, "x"},
		{token.IDENT, "print3"},
		{token.EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok, err := l.NextToken()
		require.NoError(t, err)
		require.Equalf(t, tt.expectedType, tok.Type, "tests[%d]", i)
		require.Equalf(t, tt.expectedLiteral, tok.Literal, "tests[%d]", i)
	}
}

// Trivial test of the parsing of operators; unary minus is the
// parser's job, not the lexer's, so "-" is always its own token.
func TestParseOperators(t *testing.T) {
	input := `+ - * / % = ; ( )`

	tests := []token.Type{
		token.PLUS, token.MINUS, token.ASTERISK, token.SLASH, token.PERCENT,
		token.ASSIGN, token.SEMI, token.LPAREN, token.RPAREN, token.EOF,
	}

	l := New(input)
	for i, expected := range tests {
		tok, err := l.NextToken()
		require.NoError(t, err)
		require.Equalf(t, expected, tok.Type, "tests[%d]", i)
	}
}

// Line comments run to end of line, not including the newline.
func TestLineComments(t *testing.T) {
	input := "1 // ignore me\n+ 2"

	l := New(input)

	tok, err := l.NextToken()
	require.NoError(t, err)
	require.Equal(t, token.INT, tok.Type)

	tok, err = l.NextToken()
	require.NoError(t, err)
	require.Equal(t, token.PLUS, tok.Type)

	tok, err = l.NextToken()
	require.NoError(t, err)
	require.Equal(t, token.INT, tok.Type)
	require.Equal(t, "2", tok.Literal)
}

// An unexpected byte is a lexical error, not a token.
func TestUnexpectedCharacter(t *testing.T) {
	l := New(`3 $`)

	_, err := l.NextToken()
	require.NoError(t, err)

	_, err = l.NextToken()
	require.Error(t, err)

	var derr *diag.Error
	require.ErrorAs(t, err, &derr)
	require.Equal(t, diag.UnexpectedCharacter, derr.Kind)
}

// 2^63-1 lexes; 2^63 does not.
func TestIntegerOutOfRange(t *testing.T) {
	l := New(`9223372036854775807`)
	tok, err := l.NextToken()
	require.NoError(t, err)
	require.Equal(t, token.INT, tok.Type)

	l = New(`9223372036854775808`)
	_, err = l.NextToken()
	require.Error(t, err)

	var derr *diag.Error
	require.ErrorAs(t, err, &derr)
	require.Equal(t, diag.IntegerOutOfRange, derr.Kind)
}

// A digit run immediately followed by a letter is accepted by the
// lexer as two tokens; the parser is responsible for rejecting the
// resulting grammar (see DESIGN.md, OQ-1).
func TestDigitsThenLetterIsTwoTokens(t *testing.T) {
	l := New(`3x`)

	tok, err := l.NextToken()
	require.NoError(t, err)
	require.Equal(t, token.INT, tok.Type)
	require.Equal(t, "3", tok.Literal)

	tok, err = l.NextToken()
	require.NoError(t, err)
	require.Equal(t, token.IDENT, tok.Type)
	require.Equal(t, "x", tok.Literal)
}

// Spans track line/column across newlines.
func TestSpans(t *testing.T) {
	l := New("1\n  2")

	tok, err := l.NextToken()
	require.NoError(t, err)
	require.Equal(t, token.Span{Line: 1, Column: 1}, tok.Span)

	tok, err = l.NextToken()
	require.NoError(t, err)
	require.Equal(t, token.Span{Line: 2, Column: 3}, tok.Span)
}
