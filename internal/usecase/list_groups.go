package usecase

import (
	"context"

	"github.com/aalvaropc/mailgroup/internal/domain"
)

// GroupListing is one row of `mailgroup groups`.
type GroupListing struct {
	Slot        int
	Name        string
	Description string
	Members     int
}

type ListGroups struct {
	dataset *BuildDataset
}

func NewListGroups(dataset *BuildDataset) *ListGroups {
	return &ListGroups{dataset: dataset}
}

func (uc *ListGroups) Execute(ctx context.Context, src domain.Sources) ([]GroupListing, error) {
	ds, err := uc.dataset.Execute(ctx, src)
	if err != nil {
		return nil, err
	}

	out := make([]GroupListing, 0, ds.Groups.Len())
	for _, g := range ds.Groups.Groups() {
		out = append(out, GroupListing{
			Slot:        g.Slot,
			Name:        g.Name,
			Description: g.Description,
			Members:     ds.Matrix.ColumnSum(g.Slot),
		})
	}
	return out, nil
}
