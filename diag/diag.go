// Package diag defines the single flat error taxonomy shared by every
// compiler stage: lexer, parser, resolver, codegen and the driver.
//
// Every stage fails fast on its first error and returns it; there is
// no multi-error accumulation (spec: one diagnostic, one exit code).
package diag

import "fmt"

// Kind identifies the category of a compile error.
type Kind string

// The fixed taxonomy. Each member carries a span and a message.
const (
	UnexpectedCharacter  Kind = "UnexpectedCharacter"
	IntegerOutOfRange    Kind = "IntegerOutOfRange"
	UnexpectedToken      Kind = "UnexpectedToken"
	UnexpectedEndOfInput Kind = "UnexpectedEndOfInput"
	NestingTooDeep       Kind = "NestingTooDeep"
	UndefinedVariable    Kind = "UndefinedVariable"
	TooManyLets          Kind = "TooManyLets"
	ToolchainFailure     Kind = "ToolchainFailure"
)

// Span is duplicated here (rather than imported from token) so that
// diag has no dependency on any compiler stage; every stage depends on
// diag, not the other way around.
type Span struct {
	Line   int
	Column int
}

// Error is the single error type produced by every stage.
type Error struct {
	Kind    Kind
	Span    Span
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at line %d, column %d: %s", e.Kind, e.Span.Line, e.Span.Column, e.Message)
}

// New builds an Error at the given span.
func New(kind Kind, span Span, format string, args ...interface{}) *Error {
	return &Error{
		Kind:    kind,
		Span:    span,
		Message: fmt.Sprintf(format, args...),
	}
}
