package usecase

import (
	"context"
	"io"
	"log/slog"

	"github.com/aalvaropc/mailgroup/internal/domain"
	"github.com/aalvaropc/mailgroup/internal/ports"
)

// Dataset is a validated member/group pair and the matrix built from them.
type Dataset struct {
	Sources domain.Sources
	Members domain.MemberTable
	Groups  domain.GroupTable
	Matrix  *domain.Matrix
}

type BuildDataset struct {
	members ports.MemberLoader
	groups  ports.GroupLoader
	log     *slog.Logger
}

type Option func(*BuildDataset)

func WithLogger(l *slog.Logger) Option {
	return func(uc *BuildDataset) {
		if l != nil {
			uc.log = l
		}
	}
}

func NewBuildDataset(ml ports.MemberLoader, gl ports.GroupLoader, opts ...Option) *BuildDataset {
	uc := &BuildDataset{
		members: ml,
		groups:  gl,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute loads both files and builds the membership matrix. Every schema and
// referential error surfaces here, before anything is rendered.
func (uc *BuildDataset) Execute(ctx context.Context, src domain.Sources) (Dataset, error) {
	members, err := uc.members.LoadMembers(src.MembersPath)
	if err != nil {
		return Dataset{}, err
	}
	if err := ctx.Err(); err != nil {
		return Dataset{}, err
	}

	groups, err := uc.groups.LoadGroups(src.GroupsPath)
	if err != nil {
		return Dataset{}, err
	}
	if err := ctx.Err(); err != nil {
		return Dataset{}, err
	}

	m, err := domain.BuildMatrix(members, groups)
	if err != nil {
		return Dataset{}, err
	}

	uc.log.Debug("dataset.built",
		"members", members.Len(),
		"groups", groups.Len(),
		"members_path", src.MembersPath,
		"groups_path", src.GroupsPath,
	)

	return Dataset{
		Sources: src,
		Members: members,
		Groups:  groups,
		Matrix:  m,
	}, nil
}
