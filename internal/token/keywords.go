package token

var keywords = map[string]Kind{
	"var":        KwVar,
	"let":        KwLet,
	"const":      KwConst,
	"function":   KwFunction,
	"return":     KwReturn,
	"if":         KwIf,
	"else":       KwElse,
	"while":      KwWhile,
	"do":         KwDo,
	"for":        KwFor,
	"break":      KwBreak,
	"continue":   KwContinue,
	"switch":     KwSwitch,
	"case":       KwCase,
	"default":    KwDefault,
	"throw":      KwThrow,
	"try":        KwTry,
	"catch":      KwCatch,
	"finally":    KwFinally,
	"new":        KwNew,
	"delete":     KwDelete,
	"typeof":     KwTypeof,
	"instanceof": KwInstanceof,
	"in":         KwIn,
	"of":         KwOf,
	"this":       KwThis,
	"null":       KwNull,
	"undefined":  KwUndefined,
	"true":       KwTrue,
	"false":      KwFalse,
	"class":      KwClass,
	"extends":    KwExtends,
	"super":      KwSuper,
	"import":     KwImport,
	"export":     KwExport,
	"async":      KwAsync,
	"await":      KwAwait,
	"yield":      KwYield,
	"void":       KwVoid,
	"debugger":   KwDebugger,
	"static":     KwStatic,
	"get":        KwGet,
	"set":        KwSet,
}

// LookupKeyword returns the keyword kind for ident.
// Keywords are case-sensitive.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// IsContextual reports whether k is a keyword that may still serve as an
// identifier (binding or reference) in ordinary code.
func IsContextual(k Kind) bool {
	switch k {
	case KwOf, KwAsync, KwGet, KwSet, KwStatic, KwUndefined:
		return true
	default:
		return false
	}
}
