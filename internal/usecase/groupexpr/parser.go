package groupexpr

import (
	"fmt"

	"github.com/aalvaropc/mailgroup/internal/domain"
)

// Error describes why an expression was rejected. Its message is the same
// for syntax errors and unknown groups; Pos and Reason carry the detail.
type Error struct {
	Expr   string
	Pos    int
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: `%s`", domain.ErrInvalidExpression.Error(), e.Expr)
}

func (e *Error) Unwrap() error { return domain.ErrInvalidExpression }

// Detail returns the position and reason, for debug output.
func (e *Error) Detail() string {
	return fmt.Sprintf("at offset %d: %s", e.Pos, e.Reason)
}

type parser struct {
	src    string
	toks   []token
	pos    int
	groups domain.GroupTable
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) fail(t token, format string, args ...any) error {
	return &Error{Expr: p.src, Pos: t.pos, Reason: fmt.Sprintf(format, args...)}
}

func (p *parser) parse() (Node, error) {
	if p.peek().kind == tokEOF {
		return nil, p.fail(p.peek(), "empty expression")
	}
	n, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return nil, p.fail(t, "unexpected %s %q", t.kind, t.text)
	}
	return n, nil
}

func (p *parser) parseOr() (Node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokOr {
		p.next()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = Or{L: left, R: right}
	}
	return left, nil
}

func (p *parser) parseAnd() (Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokAnd {
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = And{L: left, R: right}
	}
	return left, nil
}

func (p *parser) parseUnary() (Node, error) {
	if p.peek().kind == tokNot {
		p.next()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return Not{X: x}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (Node, error) {
	t := p.next()
	switch t.kind {
	case tokIdent:
		g, ok := p.groups.Lookup(t.text)
		if !ok {
			return nil, p.fail(t, "unknown group %q", t.text)
		}
		return GroupRef{Name: g.Name, Slot: g.Slot}, nil
	case tokLParen:
		n, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.kind != tokRParen {
			return nil, p.fail(closing, "expected ')', found %s", closing.kind)
		}
		return n, nil
	default:
		return nil, p.fail(t, "expected group name or '(', found %s", t.kind)
	}
}
