package token

// PunctID enumerates operator and punctuation tokens. Each has an inherent
// byte width, reported by Width.
type PunctID uint8

const (
	PunctNone PunctID = iota

	LParen   // (
	RParen   // )
	LBrace   // {
	RBrace   // }
	Comma    // ,
	Colon    // :
	Arrow    // ->
	Assign   // =
	Plus     // +
	Minus    // -
	Star     // *
	Slash    // /
	Percent  // %
	Shl      // <<
	Shr      // >>
	Lt       // <
	Gt       // >
	Le       // <=
	Ge       // >=
	EqEq     // ==
	NotEq    // !=
	Bang     // !
)

var punctWidth = map[PunctID]int{
	LParen: 1, RParen: 1, LBrace: 1, RBrace: 1,
	Comma: 1, Colon: 1, Arrow: 2, Assign: 1,
	Plus: 1, Minus: 1, Star: 1, Slash: 1, Percent: 1,
	Shl: 2, Shr: 2, Lt: 1, Gt: 1, Le: 2, Ge: 2,
	EqEq: 2, NotEq: 2, Bang: 1,
}

var punctText = map[PunctID]string{
	LParen: "(", RParen: ")", LBrace: "{", RBrace: "}",
	Comma: ",", Colon: ":", Arrow: "->", Assign: "=",
	Plus: "+", Minus: "-", Star: "*", Slash: "/", Percent: "%",
	Shl: "<<", Shr: ">>", Lt: "<", Gt: ">", Le: "<=", Ge: ">=",
	EqEq: "==", NotEq: "!=", Bang: "!",
}

// Width returns the number of source bytes this punctuation token spans.
func (p PunctID) Width() int { return punctWidth[p] }

func (p PunctID) String() string {
	if s, ok := punctText[p]; ok {
		return s
	}
	return "<none>"
}
