package groupexpr

import "github.com/aalvaropc/mailgroup/internal/domain"

// Columns supplies one boolean column per group slot. *domain.Matrix
// satisfies it.
type Columns interface {
	Column(slot int) domain.Selection
}

// Node is a compiled expression.
type Node interface {
	Eval(c Columns) domain.Selection
	// String renders the node fully parenthesised.
	String() string
}

// GroupRef selects the members of one group.
type GroupRef struct {
	Name string
	Slot int
}

func (n GroupRef) Eval(c Columns) domain.Selection { return c.Column(n.Slot) }
func (n GroupRef) String() string { return n.Name }

type Not struct {
	X Node
}

func (n Not) Eval(c Columns) domain.Selection { return n.X.Eval(c).Not() }
func (n Not) String() string { return "~" + n.X.String() }

type And struct {
	L, R Node
}

func (n And) Eval(c Columns) domain.Selection { return n.L.Eval(c).And(n.R.Eval(c)) }
func (n And) String() string { return "(" + n.L.String() + " & " + n.R.String() + ")" }

type Or struct {
	L, R Node
}

func (n Or) Eval(c Columns) domain.Selection { return n.L.Eval(c).Or(n.R.Eval(c)) }
func (n Or) String() string { return "(" + n.L.String() + " | " + n.R.String() + ")" }

// Groups lists the distinct group names referenced by n, left to right.
func Groups(n Node) []string {
	seen := map[string]struct{}{}
	var out []string
	var walk func(Node)
	walk = func(n Node) {
		switch v := n.(type) {
		case GroupRef:
			if _, ok := seen[v.Name]; !ok {
				seen[v.Name] = struct{}{}
				out = append(out, v.Name)
			}
		case Not:
			walk(v.X)
		case And:
			walk(v.L)
			walk(v.R)
		case Or:
			walk(v.L)
			walk(v.R)
		}
	}
	walk(n)
	return out
}
