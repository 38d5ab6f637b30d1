package groupexpr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/aalvaropc/mailgroup/internal/domain"
)

type EvaluateSuite struct {
	suite.Suite
	groups domain.GroupTable
	matrix *domain.Matrix
}

func TestEvaluateSuite(t *testing.T) {
	suite.Run(t, new(EvaluateSuite))
}

func (s *EvaluateSuite) SetupTest() {
	s.groups = domain.NewGroupTable("groups.csv", []domain.GroupEntry{
		{Name: "proj1"},
		{Name: "proj2"},
		{Name: "mgmt"},
		{Name: "proj"},
		{Name: "r&d"},
		{Name: "board members"},
	})
	members := domain.MemberTable{Members: []domain.Member{
		{Groups: []string{"proj1"}},
		{Groups: []string{"proj1", "mgmt"}},
		{Groups: []string{"mgmt", "proj2"}},
		{Groups: []string{"proj2"}},
		{Groups: []string{"proj", "r&d"}},
		{Groups: []string{"board members"}},
	}}
	m, err := domain.BuildMatrix(members, s.groups)
	s.Require().NoError(err)
	s.matrix = m
}

func (s *EvaluateSuite) column(name string) domain.Selection {
	slot, ok := s.groups.Slot(name)
	s.Require().True(ok, name)
	return s.matrix.Column(slot)
}

func (s *EvaluateSuite) eval(expr string) domain.Selection {
	sel, err := Evaluate(expr, s.groups, s.matrix)
	s.Require().NoError(err, expr)
	s.Require().Len(sel, s.matrix.Rows())
	return sel
}

func (s *EvaluateSuite) TestSingleGroupIsItsColumn() {
	for _, name := range s.groups.Names() {
		s.Equal(s.column(name), s.eval(name), name)
	}
}

func (s *EvaluateSuite) TestOperators() {
	s.Run("and", func() {
		s.Equal(s.column("proj1").And(s.column("mgmt")), s.eval("proj1 & mgmt"))
	})
	s.Run("or", func() {
		s.Equal(s.column("proj1").Or(s.column("proj2")), s.eval("proj1|proj2"))
	})
	s.Run("not", func() {
		s.Equal(s.column("mgmt").Not(), s.eval("~mgmt"))
	})
	s.Run("double not", func() {
		s.Equal(s.column("mgmt"), s.eval("~~mgmt"))
	})
}

func (s *EvaluateSuite) TestPrecedence() {
	p1, p2, mg := s.column("proj1"), s.column("proj2"), s.column("mgmt")

	s.Run("and binds tighter than or", func() {
		s.Equal(p1.And(p2).Or(mg), s.eval("proj1&proj2|mgmt"))
		s.Equal(mg.Or(p1.And(p2)), s.eval("mgmt|proj1&proj2"))
	})
	s.Run("not binds tighter than and", func() {
		s.Equal(mg.Not().And(p1), s.eval("~mgmt&proj1"))
	})
	s.Run("parentheses override", func() {
		s.Equal(p1.And(p2.Or(mg)), s.eval("proj1&(proj2|mgmt)"))
		s.Equal(p1.Or(mg).Not(), s.eval("~(proj1 | mgmt)"))
	})
	s.Run("left associative", func() {
		s.Equal(p1.Or(p2).Or(mg), s.eval("proj1|proj2|mgmt"))
	})
}

func (s *EvaluateSuite) TestPrefixNamesDoNotCollide() {
	s.Equal(s.column("proj"), s.eval("proj"))
	s.Equal(s.column("proj2"), s.eval("proj2"))
	s.Equal(s.column("proj").Or(s.column("proj2")), s.eval("proj|proj2"))
}

func (s *EvaluateSuite) TestNamesWithOperatorsAndSpaces() {
	s.Equal(s.column("r&d"), s.eval("r&d"))
	s.Equal(s.column("board members").And(s.column("proj1").Not()), s.eval("board members & ~proj1"))
}

func (s *EvaluateSuite) TestCaseInsensitive() {
	s.Equal(s.column("mgmt"), s.eval("MGMT"))
	s.Equal(s.column("proj1").And(s.column("mgmt")), s.eval("Proj1&Mgmt"))
}

func (s *EvaluateSuite) TestInvalidExpressions() {
	cases := map[string]string{
		"unknown group":       "unknown",
		"prefix of unknown":   "proj3",
		"empty":               "",
		"whitespace":          "   ",
		"dangling operator":   "proj1 &",
		"leading operator":    "| proj1",
		"unbalanced open":     "(proj1 | mgmt",
		"unbalanced close":    "proj1)",
		"empty parens":        "()",
		"adjacent groups":     "proj1 mgmt",
		"trailing not":        "proj1 ~",
		"unknown in subexpr":  "proj1 & (mgmt | ghost)",
		"python style and":    "proj1 and mgmt",
		"double and operator": "proj1 && mgmt",
	}
	for name, expr := range cases {
		s.Run(name, func() {
			sel, err := Evaluate(expr, s.groups, s.matrix)
			s.Nil(sel)
			s.Require().Error(err)
			s.True(domain.IsKind(err, domain.KindExpression))
			s.True(errors.Is(err, domain.ErrInvalidExpression))

			var ee *Error
			s.Require().True(errors.As(err, &ee))
			s.Equal(expr, ee.Expr)
			s.NotEmpty(ee.Detail())
			s.Equal("logical expression invalid; check that the specified group(s) exist: `"+expr+"`", domain.Describe(err))
		})
	}
}

func (s *EvaluateSuite) TestCompileStringAndGroups() {
	n, err := Compile("proj1&proj2|~mgmt", s.groups)
	s.Require().NoError(err)
	s.Equal("((proj1 & proj2) | ~mgmt)", n.String())
	s.Equal([]string{"proj1", "proj2", "mgmt"}, Groups(n))
}

func TestEvaluate_EndToEndExample(t *testing.T) {
	groups := domain.NewGroupTable("groups.csv", []domain.GroupEntry{
		{Name: "proj1"}, {Name: "proj2"}, {Name: "mgmt"},
	})
	members := domain.MemberTable{Members: []domain.Member{
		{Groups: []string{"proj1"}},
		{Groups: []string{"proj1", "mgmt"}},
		{Groups: []string{"mgmt"}},
	}}
	m, err := domain.BuildMatrix(members, groups)
	if err != nil {
		t.Fatalf("BuildMatrix: %v", err)
	}

	sel, err := Evaluate("proj1&proj2|mgmt", groups, m)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	want := domain.Selection{false, true, true}
	for i := range want {
		if sel[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, sel)
		}
	}
}

func TestEvaluate_OperatorNameVersusSpacedOperator(t *testing.T) {
	groups := domain.NewGroupTable("groups.csv", []domain.GroupEntry{
		{Name: "a"}, {Name: "b"}, {Name: "a&b"},
	})
	members := domain.MemberTable{Members: []domain.Member{
		{Groups: []string{"a", "b"}},
		{Groups: []string{"a&b"}},
	}}
	m, err := domain.BuildMatrix(members, groups)
	if err != nil {
		t.Fatalf("BuildMatrix: %v", err)
	}

	cases := map[string]domain.Selection{
		"a&b":   {false, true},
		"a & b": {true, false},
		"(a)&b": {true, false},
	}
	for expr, want := range cases {
		got, err := Evaluate(expr, groups, m)
		if err != nil {
			t.Fatalf("%q: %v", expr, err)
		}
		if got[0] != want[0] || got[1] != want[1] {
			t.Errorf("%q: got %v, want %v", expr, got, want)
		}
	}
}
