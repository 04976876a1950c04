package token

// KeywordID enumerates Rosa's reserved words.
type KeywordID uint8

const (
	KwNone KeywordID = iota
	KwFun
	KwReturn
	KwVal
	KwVar
	KwType
	KwTrue
	KwFalse
	KwIf
	KwElse
	KwPub
)

var keywordText = map[string]KeywordID{
	"fun":    KwFun,
	"return": KwReturn,
	"val":    KwVal,
	"var":    KwVar,
	"type":   KwType,
	"true":   KwTrue,
	"false":  KwFalse,
	"if":     KwIf,
	"else":   KwElse,
	"pub":    KwPub,
}

var keywordName = func() map[KeywordID]string {
	m := make(map[KeywordID]string, len(keywordText))
	for s, k := range keywordText {
		m[k] = s
	}
	return m
}()

// LookupKeyword reports whether ident is a reserved word, and which one.
func LookupKeyword(ident string) (KeywordID, bool) {
	kw, ok := keywordText[ident]
	return kw, ok
}

func (k KeywordID) String() string {
	if s, ok := keywordName[k]; ok {
		return s
	}
	return "<none>"
}
