package groupexpr

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokAnd
	tokOr
	tokNot
	tokLParen
	tokRParen
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of expression"
	case tokIdent:
		return "group name"
	case tokAnd:
		return "'&'"
	case tokOr:
		return "'|'"
	case tokNot:
		return "'~'"
	case tokLParen:
		return "'('"
	case tokRParen:
		return "')'"
	}
	return "unknown token"
}

type token struct {
	kind tokenKind
	text string
	pos  int
}

var operators = map[rune]tokenKind{
	'&': tokAnd,
	'|': tokOr,
	'~': tokNot,
	'(': tokLParen,
	')': tokRParen,
}

func isDelim(r rune) bool {
	if unicode.IsSpace(r) {
		return true
	}
	_, ok := operators[r]
	return ok
}

// lexer splits an expression into tokens using the known group names as its
// identifier vocabulary.
type lexer struct {
	src   string
	vocab []string // longest first
}

func newLexer(src string, names []string) *lexer {
	vocab := make([]string, len(names))
	copy(vocab, names)
	sort.SliceStable(vocab, func(i, j int) bool { return len(vocab[i]) > len(vocab[j]) })
	return &lexer{src: src, vocab: vocab}
}

func (l *lexer) tokens() []token {
	var out []token
	i := 0
	for i < len(l.src) {
		r, size := utf8.DecodeRuneInString(l.src[i:])
		if unicode.IsSpace(r) {
			i += size
			continue
		}
		if kind, ok := operators[r]; ok {
			out = append(out, token{kind: kind, text: string(r), pos: i})
			i += size
			continue
		}

		n := l.matchName(i)
		if n == 0 {
			n = l.scanWord(i)
		}
		out = append(out, token{kind: tokIdent, text: l.src[i : i+n], pos: i})
		i += n
	}
	return append(out, token{kind: tokEOF, pos: len(l.src)})
}

// matchName returns the byte length of the longest known name at i that ends
// on a delimiter, or 0.
func (l *lexer) matchName(i int) int {
	rest := l.src[i:]
	for _, name := range l.vocab {
		if len(name) == 0 || len(name) > len(rest) {
			continue
		}
		if !strings.EqualFold(rest[:len(name)], name) {
			continue
		}
		if len(name) == len(rest) {
			return len(name)
		}
		if next, _ := utf8.DecodeRuneInString(rest[len(name):]); isDelim(next) {
			return len(name)
		}
	}
	return 0
}

// scanWord returns the byte length of the run of non-delimiters at i.
func (l *lexer) scanWord(i int) int {
	j := i
	for j < len(l.src) {
		r, size := utf8.DecodeRuneInString(l.src[j:])
		if isDelim(r) {
			break
		}
		j += size
	}
	return j - i
}
