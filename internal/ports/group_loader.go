package ports

import "github.com/aalvaropc/mailgroup/internal/domain"

// GroupLoader loads group definitions and assigns their matrix slots.
type GroupLoader interface {
	LoadGroups(path string) (domain.GroupTable, error)
}
