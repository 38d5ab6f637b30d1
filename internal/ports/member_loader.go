package ports

import "github.com/aalvaropc/mailgroup/internal/domain"

// MemberLoader loads the member table from a source (e.g., a CSV file).
type MemberLoader interface {
	LoadMembers(path string) (domain.MemberTable, error)
}
