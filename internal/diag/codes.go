package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Lexical (1..99)
	LexUnexpectedChar      Code = 1
	LexUnterminatedString  Code = 2
	LexUnterminatedComment Code = 3
	LexInvalidNumber       Code = 4
	LexInvalidEscape       Code = 5
	LexTokenTooLong        Code = 6

	// Syntax (100..199)
	SynUnexpectedToken     Code = 100
	SynExpectExpression    Code = 101
	SynExpectStatement     Code = 102
	SynExpectIdentifier    Code = 103
	SynExpectToken         Code = 104
	SynInvalidAssignTarget Code = 105
	SynDuplicateParameter  Code = 106
	SynMissingInitializer  Code = 107
	SynIllegalBreak        Code = 108
	SynIllegalReturn       Code = 109
	SynUnexpectedEOF       Code = 110

	// Runtime (200..299), reserved for evaluators built on this front end
	RunTypeError      Code = 200
	RunReferenceError Code = 201
	RunRangeError     Code = 202

	// Sandbox (300..399), reserved
	SbxForbiddenAccess Code = 300
	SbxLimitExceeded   Code = 301

	// Driver I/O
	IOLoadFileError Code = 400
)

var codeDescription = map[Code]string{
	UnknownCode: "Unknown error",

	LexUnexpectedChar:      "Unexpected character",
	LexUnterminatedString:  "Unterminated string literal",
	LexUnterminatedComment: "Unterminated block comment",
	LexInvalidNumber:       "Invalid numeric literal",
	LexInvalidEscape:       "Invalid escape sequence",
	LexTokenTooLong:        "Token too long",

	SynUnexpectedToken:     "Unexpected token",
	SynExpectExpression:    "Expected expression",
	SynExpectStatement:     "Expected statement",
	SynExpectIdentifier:    "Expected identifier",
	SynExpectToken:         "Expected token",
	SynInvalidAssignTarget: "Invalid assignment target",
	SynDuplicateParameter:  "Duplicate parameter name",
	SynMissingInitializer:  "Missing initializer in const declaration",
	SynIllegalBreak:        "Illegal break or continue",
	SynIllegalReturn:       "Return outside of function",
	SynUnexpectedEOF:       "Unexpected end of input",

	RunTypeError:      "Type error",
	RunReferenceError: "Reference error",
	RunRangeError:     "Range error",

	SbxForbiddenAccess: "Forbidden access",
	SbxLimitExceeded:   "Resource limit exceeded",

	IOLoadFileError: "Failed to load file",
}

// Subsystem names the producer range of a code.
func (c Code) Subsystem() string {
	switch ic := int(c); {
	case ic >= 1 && ic < 100:
		return "lexer"
	case ic >= 100 && ic < 200:
		return "parser"
	case ic >= 200 && ic < 300:
		return "runtime"
	case ic >= 300 && ic < 400:
		return "sandbox"
	case ic >= 400 && ic < 500:
		return "io"
	}
	return "unknown"
}

func (c Code) ID() string {
	return fmt.Sprintf("E%04d", int(c))
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
