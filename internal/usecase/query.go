package usecase

import (
	"context"
	"errors"

	"github.com/aalvaropc/mailgroup/internal/domain"
	"github.com/aalvaropc/mailgroup/internal/usecase/groupexpr"
	"github.com/aalvaropc/mailgroup/internal/usecase/render"
)

// QueryResult is the outcome of one expression.
type QueryResult struct {
	Expr      string
	Selection domain.Selection
	// Matched counts selected members; Rendered counts those with an email.
	Matched  int
	Rendered int
	Line     string
}

type Query struct {
	dataset *BuildDataset
}

func NewQuery(dataset *BuildDataset) *Query {
	return &Query{dataset: dataset}
}

// Execute evaluates expr and renders the mailing list. When nothing matches,
// the result is returned together with a KindEmptySelection error, which is a
// warning rather than a failure.
func (uc *Query) Execute(ctx context.Context, src domain.Sources, expr string) (QueryResult, error) {
	ds, err := uc.dataset.Execute(ctx, src)
	if err != nil {
		return QueryResult{}, err
	}

	node, err := groupexpr.Compile(expr, ds.Groups)
	if err != nil {
		var ee *groupexpr.Error
		if errors.As(err, &ee) {
			uc.dataset.log.Debug("query.invalid_expression", "expr", expr, "detail", ee.Detail())
		}
		return QueryResult{}, err
	}
	if err := ctx.Err(); err != nil {
		return QueryResult{}, err
	}

	sel := node.Eval(ds.Matrix)
	res := QueryResult{
		Expr:      expr,
		Selection: sel,
		Matched:   sel.Count(),
	}
	uc.dataset.log.Debug("query.evaluated", "expr", expr, "ast", node.String(),
		"groups", groupexpr.Groups(node), "matched", res.Matched)

	line, err := render.List(ds.Members, sel)
	if err != nil {
		return res, err
	}
	res.Line = line
	for i, m := range ds.Members.Members {
		if _, ok := m.PrimaryEmail(); ok && sel[i] {
			res.Rendered++
		}
	}
	return res, nil
}
