package ast

// NodeKind tags every variant for display and quick checks.
type NodeKind uint8

const (
	KindInvalid NodeKind = iota
	KindProgram

	// literals
	KindNumberLit
	KindStringLit
	KindBoolLit
	KindNullLit
	KindUndefinedLit

	// expressions
	KindIdent
	KindThis
	KindArrayLit
	KindObjectLit
	KindFuncExpr
	KindArrowFunc
	KindUnary
	KindUpdate
	KindBinary
	KindLogical
	KindAssign
	KindConditional
	KindCall
	KindNew
	KindMember
	KindSequence
	KindSpread
	KindHole

	// helpers
	KindProperty
	KindParam
	KindVarDeclarator
	KindSwitchCase
	KindCatchClause

	// statements
	KindVarDecl
	KindFuncDecl
	KindReturn
	KindIf
	KindWhile
	KindDoWhile
	KindFor
	KindForIn
	KindForOf
	KindBreak
	KindContinue
	KindThrow
	KindTry
	KindSwitch
	KindBlock
	KindExprStmt
	KindEmpty
	KindLabeled
	KindDebugger
)

var kindNames = [...]string{
	KindInvalid:       "Invalid",
	KindProgram:       "Program",
	KindNumberLit:     "NumberLiteral",
	KindStringLit:     "StringLiteral",
	KindBoolLit:       "BooleanLiteral",
	KindNullLit:       "NullLiteral",
	KindUndefinedLit:  "UndefinedLiteral",
	KindIdent:         "Identifier",
	KindThis:          "ThisExpression",
	KindArrayLit:      "ArrayExpression",
	KindObjectLit:     "ObjectExpression",
	KindFuncExpr:      "FunctionExpression",
	KindArrowFunc:     "ArrowFunctionExpression",
	KindUnary:         "UnaryExpression",
	KindUpdate:        "UpdateExpression",
	KindBinary:        "BinaryExpression",
	KindLogical:       "LogicalExpression",
	KindAssign:        "AssignmentExpression",
	KindConditional:   "ConditionalExpression",
	KindCall:          "CallExpression",
	KindNew:           "NewExpression",
	KindMember:        "MemberExpression",
	KindSequence:      "SequenceExpression",
	KindSpread:        "SpreadElement",
	KindHole:          "ArrayHole",
	KindProperty:      "Property",
	KindParam:         "Parameter",
	KindVarDeclarator: "VariableDeclarator",
	KindSwitchCase:    "SwitchCase",
	KindCatchClause:   "CatchClause",
	KindVarDecl:       "VariableDeclaration",
	KindFuncDecl:      "FunctionDeclaration",
	KindReturn:        "ReturnStatement",
	KindIf:            "IfStatement",
	KindWhile:         "WhileStatement",
	KindDoWhile:       "DoWhileStatement",
	KindFor:           "ForStatement",
	KindForIn:         "ForInStatement",
	KindForOf:         "ForOfStatement",
	KindBreak:         "BreakStatement",
	KindContinue:      "ContinueStatement",
	KindThrow:         "ThrowStatement",
	KindTry:           "TryStatement",
	KindSwitch:        "SwitchStatement",
	KindBlock:         "BlockStatement",
	KindExprStmt:      "ExpressionStatement",
	KindEmpty:         "EmptyStatement",
	KindLabeled:       "LabeledStatement",
	KindDebugger:      "DebuggerStatement",
}

// String returns the display name used by AST dumps.
func (k NodeKind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Node?"
}
