package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF
	// Ident represents an identifier token.
	Ident
	// Number represents a numeric literal.
	Number
	// String represents a string literal.
	String

	// KwVar represents the 'var' keyword.
	KwVar // var
	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwConst represents the 'const' keyword.
	KwConst // const
	// KwFunction represents the 'function' keyword.
	KwFunction // function
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwWhile represents the 'while' keyword.
	KwWhile // while
	// KwDo represents the 'do' keyword.
	KwDo // do
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwBreak represents the 'break' keyword.
	KwBreak // break
	// KwContinue represents the 'continue' keyword.
	KwContinue // continue
	// KwSwitch represents the 'switch' keyword.
	KwSwitch // switch
	// KwCase represents the 'case' keyword.
	KwCase // case
	// KwDefault represents the 'default' keyword.
	KwDefault // default
	// KwThrow represents the 'throw' keyword.
	KwThrow // throw
	// KwTry represents the 'try' keyword.
	KwTry // try
	// KwCatch represents the 'catch' keyword.
	KwCatch // catch
	// KwFinally represents the 'finally' keyword.
	KwFinally // finally
	// KwNew represents the 'new' keyword.
	KwNew // new
	// KwDelete represents the 'delete' keyword.
	KwDelete // delete
	// KwTypeof represents the 'typeof' keyword.
	KwTypeof // typeof
	// KwInstanceof represents the 'instanceof' keyword.
	KwInstanceof // instanceof
	// KwIn represents the 'in' keyword.
	KwIn // in
	// KwOf represents the 'of' keyword.
	KwOf // of
	// KwThis represents the 'this' keyword.
	KwThis // this
	// KwNull represents the 'null' keyword.
	KwNull // null
	// KwUndefined represents the 'undefined' keyword.
	KwUndefined // undefined
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwFalse represents the 'false' keyword.
	KwFalse // false
	// KwClass represents the 'class' keyword.
	KwClass // class
	// KwExtends represents the 'extends' keyword.
	KwExtends // extends
	// KwSuper represents the 'super' keyword.
	KwSuper // super
	// KwImport represents the 'import' keyword.
	KwImport // import
	// KwExport represents the 'export' keyword.
	KwExport // export
	// KwAsync represents the 'async' keyword.
	KwAsync // async
	// KwAwait represents the 'await' keyword.
	KwAwait // await
	// KwYield represents the 'yield' keyword.
	KwYield // yield
	// KwVoid represents the 'void' keyword.
	KwVoid // void
	// KwDebugger represents the 'debugger' keyword.
	KwDebugger // debugger
	// KwStatic represents the 'static' keyword.
	KwStatic // static
	// KwGet represents the 'get' keyword.
	KwGet // get
	// KwSet represents the 'set' keyword.
	KwSet // set

	// Plus represents the plus token.
	Plus // +
	// Minus represents the minus token.
	Minus // -
	// Star represents the star token.
	Star // *
	// Slash represents the slash token.
	Slash // /
	// Percent represents the percent token.
	Percent // %
	// StarStar represents the exponent token.
	StarStar // **
	// PlusPlus represents the increment token.
	PlusPlus // ++
	// MinusMinus represents the decrement token.
	MinusMinus // --
	// Assign represents the assign token.
	Assign // =
	// PlusAssign represents the plus assign token.
	PlusAssign // +=
	// MinusAssign represents the minus assign token.
	MinusAssign // -=
	// StarAssign represents the star assign token.
	StarAssign // *=
	// SlashAssign represents the slash assign token.
	SlashAssign // /=
	// PercentAssign represents the percent assign token.
	PercentAssign // %=
	// StarStarAssign represents the exponent assign token.
	StarStarAssign // **=
	// ShlAssign represents the shl assign token.
	ShlAssign // <<=
	// ShrAssign represents the shr assign token.
	ShrAssign // >>=
	// UShrAssign represents the unsigned shr assign token.
	UShrAssign // >>>=
	// AmpAssign represents the amp assign token.
	AmpAssign // &=
	// PipeAssign represents the pipe assign token.
	PipeAssign // |=
	// CaretAssign represents the caret assign token.
	CaretAssign // ^=
	// AndAndAssign represents the logical and assign token.
	AndAndAssign // &&=
	// OrOrAssign represents the logical or assign token.
	OrOrAssign // ||=
	// QuestionQuestionAssign represents the nullish assign token.
	QuestionQuestionAssign // ??=
	// EqEq represents the loose equality token.
	EqEq // ==
	// BangEq represents the loose inequality token.
	BangEq // !=
	// EqEqEq represents the strict equality token.
	EqEqEq // ===
	// BangEqEq represents the strict inequality token.
	BangEqEq // !==
	// Lt represents the lt token.
	Lt // <
	// Gt represents the gt token.
	Gt // >
	// LtEq represents the lt eq token.
	LtEq // <=
	// GtEq represents the gt eq token.
	GtEq // >=
	// Shl represents the shl token.
	Shl // <<
	// Shr represents the shr token.
	Shr // >>
	// UShr represents the unsigned shr token.
	UShr // >>>
	// Amp represents the amp token.
	Amp // &
	// Pipe represents the pipe token.
	Pipe // |
	// Caret represents the caret token.
	Caret // ^
	// Tilde represents the tilde token.
	Tilde // ~
	// AndAnd represents the logical and token.
	AndAnd // &&
	// OrOr represents the logical or token.
	OrOr // ||
	// QuestionQuestion represents the nullish coalescing token.
	QuestionQuestion // ??
	// Bang represents the bang token.
	Bang // !
	// Question represents the question token.
	Question // ?
	// QuestionDot represents the optional chaining token.
	QuestionDot // ?.
	// FatArrow represents the fat arrow token.
	FatArrow // =>
	// DotDotDot represents the spread token.
	DotDotDot // ...
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
	// LBracket represents the left bracket token.
	LBracket // [
	// RBracket represents the right bracket token.
	RBracket // ]
	// Semicolon represents the semicolon token.
	Semicolon // ;
	// Comma represents the comma token.
	Comma // ,
	// Dot represents the dot token.
	Dot // .
	// Colon represents the colon token.
	Colon // :
)

const (
	firstKeyword  = KwVar
	lastKeyword   = KwSet
	firstOperator = Plus
	lastOperator  = Colon
)

var kindNames = [...]string{
	Invalid:                "ERROR",
	EOF:                    "EOF",
	Ident:                  "Identifier",
	Number:                 "Number",
	String:                 "String",
	KwVar:                  "var",
	KwLet:                  "let",
	KwConst:                "const",
	KwFunction:             "function",
	KwReturn:               "return",
	KwIf:                   "if",
	KwElse:                 "else",
	KwWhile:                "while",
	KwDo:                   "do",
	KwFor:                  "for",
	KwBreak:                "break",
	KwContinue:             "continue",
	KwSwitch:               "switch",
	KwCase:                 "case",
	KwDefault:              "default",
	KwThrow:                "throw",
	KwTry:                  "try",
	KwCatch:                "catch",
	KwFinally:              "finally",
	KwNew:                  "new",
	KwDelete:               "delete",
	KwTypeof:               "typeof",
	KwInstanceof:           "instanceof",
	KwIn:                   "in",
	KwOf:                   "of",
	KwThis:                 "this",
	KwNull:                 "null",
	KwUndefined:            "undefined",
	KwTrue:                 "true",
	KwFalse:                "false",
	KwClass:                "class",
	KwExtends:              "extends",
	KwSuper:                "super",
	KwImport:               "import",
	KwExport:               "export",
	KwAsync:                "async",
	KwAwait:                "await",
	KwYield:                "yield",
	KwVoid:                 "void",
	KwDebugger:             "debugger",
	KwStatic:               "static",
	KwGet:                  "get",
	KwSet:                  "set",
	Plus:                   "+",
	Minus:                  "-",
	Star:                   "*",
	Slash:                  "/",
	Percent:                "%",
	StarStar:               "**",
	PlusPlus:               "++",
	MinusMinus:             "--",
	Assign:                 "=",
	PlusAssign:             "+=",
	MinusAssign:            "-=",
	StarAssign:             "*=",
	SlashAssign:            "/=",
	PercentAssign:          "%=",
	StarStarAssign:         "**=",
	ShlAssign:              "<<=",
	ShrAssign:              ">>=",
	UShrAssign:             ">>>=",
	AmpAssign:              "&=",
	PipeAssign:             "|=",
	CaretAssign:            "^=",
	AndAndAssign:           "&&=",
	OrOrAssign:             "||=",
	QuestionQuestionAssign: "??=",
	EqEq:                   "==",
	BangEq:                 "!=",
	EqEqEq:                 "===",
	BangEqEq:               "!==",
	Lt:                     "<",
	Gt:                     ">",
	LtEq:                   "<=",
	GtEq:                   ">=",
	Shl:                    "<<",
	Shr:                    ">>",
	UShr:                   ">>>",
	Amp:                    "&",
	Pipe:                   "|",
	Caret:                  "^",
	Tilde:                  "~",
	AndAnd:                 "&&",
	OrOr:                   "||",
	QuestionQuestion:       "??",
	Bang:                   "!",
	Question:               "?",
	QuestionDot:            "?.",
	FatArrow:               "=>",
	DotDotDot:              "...",
	LParen:                 "(",
	RParen:                 ")",
	LBrace:                 "{",
	RBrace:                 "}",
	LBracket:               "[",
	RBracket:               "]",
	Semicolon:              ";",
	Comma:                  ",",
	Dot:                    ".",
	Colon:                  ":",
}

// String returns the display name of the kind: the lexeme for operators and
// keywords, a category name otherwise.
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind?"
}

// IsKeyword reports whether k is a keyword kind.
func (k Kind) IsKeyword() bool {
	return k >= firstKeyword && k <= lastKeyword
}
