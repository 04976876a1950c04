package token

// Kind is the closed set of lexical token kinds Rosa source breaks into.
type Kind uint8

const (
	Invalid Kind = iota

	// Keyword is a reserved word; use Token.Keyword to tell which one.
	Keyword
	// Ident is an identifier that is not a reserved keyword.
	Ident
	// Int is an integer literal.
	Int
	// Str is a string literal, already unescaped.
	Str
	// Char is a character literal, already unescaped.
	Char
	// Punct is an operator or piece of punctuation; use Token.Punct.
	Punct
	// NewLine marks a logical line break significant to the indentation
	// grammar. Blank and comment-only lines do not emit one.
	NewLine
	// EndOfFile is the single token lexing terminates with. Requesting a
	// token again after EndOfFile yields EndOfFile again.
	EndOfFile
)

func (k Kind) String() string {
	switch k {
	case Keyword:
		return "keyword"
	case Ident:
		return "identifier"
	case Int:
		return "integer"
	case Str:
		return "string"
	case Char:
		return "character"
	case Punct:
		return "punctuation"
	case NewLine:
		return "newline"
	case EndOfFile:
		return "end of file"
	default:
		return "invalid"
	}
}
