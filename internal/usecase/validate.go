package usecase

import (
	"context"
	"strings"

	"github.com/aalvaropc/mailgroup/internal/domain"
	"github.com/aalvaropc/mailgroup/internal/usecase/groupexpr"
)

type Validate struct {
	dataset *BuildDataset
}

func NewValidate(dataset *BuildDataset) *Validate {
	return &Validate{dataset: dataset}
}

// Execute checks both files and, when expr is non-blank, that it compiles.
// It never renders anything.
func (uc *Validate) Execute(ctx context.Context, src domain.Sources, expr string) error {
	ds, err := uc.dataset.Execute(ctx, src)
	if err != nil {
		return err
	}
	if strings.TrimSpace(expr) == "" {
		return nil
	}
	_, err = groupexpr.Compile(expr, ds.Groups)
	return err
}
