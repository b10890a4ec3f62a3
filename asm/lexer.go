package asm

// LexKind is the kind of a lexeme.
type LexKind int

//go:generate go tool stringer -linecomment -type=LexKind
const (
	LEX_RAW     = LexKind(0) // raw
	LEX_STRING  = LexKind(1) // string
	LEX_CHAR    = LexKind(2) // char
	LEX_COMMENT = LexKind(3) // comment
	LEX_EXPR    = LexKind(4) // expr
)

// Pos is a 1-based source position.
type Pos struct {
	LineNo int
	Column int
}

// Lexeme is a single word of source text.
//
// Text excludes the quotes of string and char literals, and the $( )
// of expressions. Comment text includes the leading ';'.
type Lexeme struct {
	Kind LexKind
	Text string
	Pos
}

// lexer holds the scan state of Lex.
type lexer struct {
	input []rune
	index int
	here  Pos

	lexemes []Lexeme

	raw    []rune
	rawPos Pos
}

// isDelimiter returns true for runes that separate raw words.
func isDelimiter(r rune) bool {
	switch r {
	case ' ', ',', '\n', '\r', '\t':
		return true
	}
	return false
}

func (lx *lexer) eof() bool {
	return lx.index >= len(lx.input)
}

func (lx *lexer) peek() rune {
	if lx.eof() {
		return 0
	}
	return lx.input[lx.index]
}

// next consumes a rune, tracking line and column. CR, LF and CR LF each
// end a line.
func (lx *lexer) next() (r rune) {
	r = lx.input[lx.index]
	lx.index++

	if r == '\n' || (r == '\r' && lx.peek() != '\n') {
		lx.here.LineNo++
		lx.here.Column = 1
	} else {
		lx.here.Column++
	}

	return
}

func (lx *lexer) emit(kind LexKind, text string, at Pos) {
	// Empty words are dropped, quoted or not.
	if len(text) == 0 {
		return
	}
	lx.lexemes = append(lx.lexemes, Lexeme{Kind: kind, Text: text, Pos: at})
}

func (lx *lexer) flush() {
	lx.emit(LEX_RAW, string(lx.raw), lx.rawPos)
	lx.raw = lx.raw[:0]
}

// quoted scans to the closing quote.
func (lx *lexer) quoted(quote rune, at Pos) (err error) {
	var text []rune
	for !lx.eof() {
		r := lx.next()
		if r == quote {
			kind := LEX_STRING
			if quote == '\'' {
				kind = LEX_CHAR
			}
			lx.emit(kind, string(text), at)
			return
		}
		text = append(text, r)
	}

	err = ErrUnterminatedString
	if quote == '\'' {
		err = ErrUnterminatedChar
	}

	return &ErrSyntax{LineNo: at.LineNo, Column: at.Column, Token: string(quote) + string(text), Err: err}
}

// comment scans to the end of the line.
func (lx *lexer) comment(at Pos) {
	text := []rune{';'}
	for !lx.eof() {
		r := lx.peek()
		if r == '\n' || r == '\r' {
			break
		}
		text = append(text, lx.next())
	}
	lx.emit(LEX_COMMENT, string(text), at)
}

// expression scans to the ')' balancing the '$(' already consumed.
// Parentheses inside quotes are not counted.
func (lx *lexer) expression(at Pos) (err error) {
	var text []rune
	depth := 1
	var quote rune
	for !lx.eof() {
		r := lx.next()
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '"' || r == '\'':
			quote = r
		case r == '(':
			depth++
		case r == ')':
			depth--
			if depth == 0 {
				lx.emit(LEX_EXPR, string(text), at)
				return
			}
		}
		text = append(text, r)
	}

	return &ErrSyntax{LineNo: at.LineNo, Column: at.Column, Token: "$(" + string(text), Err: ErrUnterminatedExpression}
}

// Lex splits source text into lexemes.
func Lex(source string) (lexemes []Lexeme, err error) {
	lx := &lexer{
		input: []rune(source),
		here:  Pos{LineNo: 1, Column: 1},
	}

	for !lx.eof() {
		at := lx.here
		r := lx.next()

		switch {
		case r == '"' || r == '\'':
			lx.flush()
			err = lx.quoted(r, at)
		case r == ';':
			lx.flush()
			lx.comment(at)
		case r == '$' && lx.peek() == '(' && len(lx.raw) == 0:
			lx.next()
			err = lx.expression(at)
		case isDelimiter(r):
			lx.flush()
		default:
			if len(lx.raw) == 0 {
				lx.rawPos = at
			}
			lx.raw = append(lx.raw, r)
		}

		if err != nil {
			return
		}
	}

	lx.flush()

	lexemes = lx.lexemes
	return
}
