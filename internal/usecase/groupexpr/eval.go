package groupexpr

import (
	"github.com/aalvaropc/mailgroup/internal/domain"
)

// Compile parses expr against the known groups. Any syntax error or unknown
// group yields a KindExpression *domain.OpError wrapping *Error.
func Compile(expr string, groups domain.GroupTable) (Node, error) {
	lx := newLexer(expr, groups.Names())
	p := &parser{src: expr, toks: lx.tokens(), groups: groups}

	n, err := p.parse()
	if err != nil {
		return nil, &domain.OpError{
			Op:   "groupexpr.compile",
			Kind: domain.KindExpression,
			Err:  err,
		}
	}
	return n, nil
}

// Evaluate compiles expr and evaluates it over the matrix, returning one
// entry per member.
func Evaluate(expr string, groups domain.GroupTable, m *domain.Matrix) (domain.Selection, error) {
	n, err := Compile(expr, groups)
	if err != nil {
		return nil, err
	}
	return n.Eval(m), nil
}
