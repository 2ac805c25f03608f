package token

import (
	"jsfront/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	// Text is the raw lexeme sliced from the source.
	Text string
	// Number is the value of a Number token, computed while scanning.
	Number float64
	// Value is the decoded payload: string literal contents for String,
	// the error message for Invalid.
	Value string
	// NewlineBefore is set when a line terminator precedes the token.
	NewlineBefore bool
	// Leading holds skipped trivia; only filled when the lexer keeps trivia.
	Leading []Trivia
}

// IsLiteral reports whether the token is a number, string, boolean, null or undefined literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case Number, String, KwTrue, KwFalse, KwNull, KwUndefined:
		return true
	default:
		return false
	}
}

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool {
	return t.Kind >= firstOperator && t.Kind <= lastOperator
}

// IsKeyword reports whether the token is a keyword (including contextual ones).
func (t Token) IsKeyword() bool {
	return t.Kind.IsKeyword()
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsIdentName reports whether the token may be used as a property name
// after '.', i.e. any identifier or keyword.
func (t Token) IsIdentName() bool {
	return t.Kind == Ident || t.Kind.IsKeyword()
}

// IsAssignOp reports whether the token is '=' or a compound assignment.
func (t Token) IsAssignOp() bool {
	switch t.Kind {
	case Assign, PlusAssign, MinusAssign, StarAssign, SlashAssign, PercentAssign,
		StarStarAssign, ShlAssign, ShrAssign, UShrAssign, AmpAssign, PipeAssign,
		CaretAssign, AndAndAssign, OrOrAssign, QuestionQuestionAssign:
		return true
	default:
		return false
	}
}
