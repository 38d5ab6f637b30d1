package ports

import "github.com/aalvaropc/mailgroup/internal/domain"

type ProjectInitializer interface {
	Init(spec domain.ProjectSpec, force bool) error
}
