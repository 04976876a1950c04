package lexer

import "rosa/internal/token"

// twoCharPuncts must be checked before their single-character prefixes.
var twoCharPuncts = map[[2]rune]token.PunctID{
	{'-', '>'}: token.Arrow,
	{'<', '<'}: token.Shl,
	{'>', '>'}: token.Shr,
	{'<', '='}: token.Le,
	{'>', '='}: token.Ge,
	{'=', '='}: token.EqEq,
	{'!', '='}: token.NotEq,
}

var oneCharPuncts = map[rune]token.PunctID{
	'(': token.LParen,
	')': token.RParen,
	'{': token.LBrace,
	'}': token.RBrace,
	',': token.Comma,
	':': token.Colon,
	'=': token.Assign,
	'+': token.Plus,
	'-': token.Minus,
	'*': token.Star,
	'/': token.Slash,
	'%': token.Percent,
	'<': token.Lt,
	'>': token.Gt,
	'!': token.Bang,
}

// scanPunct attempts to match punctuation starting at the cursor. It
// returns false without consuming anything if the current rune is not the
// start of any known punctuation token.
func (l *Lexer) scanPunct() (token.Token, bool) {
	r1, w1 := l.cur.Peek()
	if w1 == 0 {
		return token.Token{}, false
	}
	r2, w2 := l.cur.Peek2()
	if w2 > 0 {
		if p, ok := twoCharPuncts[[2]rune{r1, r2}]; ok {
			l.cur.Bump()
			l.cur.Bump()
			return token.Token{Kind: token.Punct, Span: l.cur.SpanFrom(), Punct: p}, true
		}
	}
	if p, ok := oneCharPuncts[r1]; ok {
		l.cur.Bump()
		return token.Token{Kind: token.Punct, Span: l.cur.SpanFrom(), Punct: p}, true
	}
	return token.Token{}, false
}
