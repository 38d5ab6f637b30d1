package usecase

import (
	"context"

	"github.com/aalvaropc/mailgroup/internal/domain"
)

type Summarize struct {
	dataset *BuildDataset
}

func NewSummarize(dataset *BuildDataset) *Summarize {
	return &Summarize{dataset: dataset}
}

// Execute builds the dataset and returns its summary diagnostics.
func (uc *Summarize) Execute(ctx context.Context, src domain.Sources) (domain.Summary, error) {
	ds, err := uc.dataset.Execute(ctx, src)
	if err != nil {
		return domain.Summary{}, err
	}
	return domain.Summarize(src, ds.Members, ds.Groups, ds.Matrix), nil
}
