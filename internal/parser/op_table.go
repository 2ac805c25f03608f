package parser

import (
	"jsfront/internal/token"
)

// Таблица приоритетов для бинарных операторов
// Чем больше число, тем выше приоритет
const (
	precNullish        = 1  // ??
	precLogicalOr      = 2  // ||
	precLogicalAnd     = 3  // &&
	precBitwiseOr      = 4  // |
	precBitwiseXor     = 5  // ^
	precBitwiseAnd     = 6  // &
	precEquality       = 7  // == != === !==
	precRelational     = 8  // < <= > >= instanceof in
	precShift          = 9  // << >> >>>
	precAdditive       = 10 // + -
	precMultiplicative = 11 // * / %
	precExponent       = 12 // **
)

// getBinaryOperatorPrec возвращает приоритет и ассоциативность оператора
// Возвращает (приоритет, правоассоциативный); -1 для не-операторов.
func getBinaryOperatorPrec(kind token.Kind) (int, bool) {
	switch kind {
	case token.QuestionQuestion:
		return precNullish, false
	case token.OrOr:
		return precLogicalOr, false
	case token.AndAnd:
		return precLogicalAnd, false

	case token.Pipe:
		return precBitwiseOr, false
	case token.Caret:
		return precBitwiseXor, false
	case token.Amp:
		return precBitwiseAnd, false

	case token.EqEq, token.BangEq, token.EqEqEq, token.BangEqEq:
		return precEquality, false
	case token.Lt, token.LtEq, token.Gt, token.GtEq, token.KwInstanceof, token.KwIn:
		return precRelational, false

	case token.Shl, token.Shr, token.UShr:
		return precShift, false
	case token.Plus, token.Minus:
		return precAdditive, false
	case token.Star, token.Slash, token.Percent:
		return precMultiplicative, false

	// возведение в степень правоассоциативно
	case token.StarStar:
		return precExponent, true

	default:
		return -1, false
	}
}

// isLogicalOp — операторы с коротким замыканием дают ast.Logical.
func isLogicalOp(kind token.Kind) bool {
	return kind == token.AndAnd || kind == token.OrOr || kind == token.QuestionQuestion
}

// isUnaryPrefix returns true for prefix operators handled by parseUnaryExpr.
func isUnaryPrefix(kind token.Kind) bool {
	switch kind {
	case token.Bang, token.Tilde, token.Plus, token.Minus,
		token.KwTypeof, token.KwVoid, token.KwDelete, token.KwAwait,
		token.PlusPlus, token.MinusMinus:
		return true
	default:
		return false
	}
}

// isBindingIdent — идентификатор или контекстное ключевое слово.
func isBindingIdent(kind token.Kind) bool {
	return kind == token.Ident || token.IsContextual(kind)
}

// canStartExpression reports whether an expression statement may begin
// with kind. Invalid is included: the lexer already reported it.
func canStartExpression(kind token.Kind) bool {
	if isBindingIdent(kind) || isUnaryPrefix(kind) {
		return true
	}
	switch kind {
	case token.Number, token.String, token.Invalid,
		token.KwThis, token.KwNull, token.KwTrue, token.KwFalse,
		token.KwFunction, token.KwNew, token.KwYield,
		token.LParen, token.LBracket, token.LBrace:
		return true
	default:
		return false
	}
}
