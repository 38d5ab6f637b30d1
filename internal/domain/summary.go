package domain

// GroupCount is the member tally of one group.
type GroupCount struct {
	Name    string
	Members int
}

// Summary is the read-only diagnostic view over a built dataset.
type Summary struct {
	Sources     Sources
	MemberCount int
	GroupCount  int
	Groups      []GroupCount // slot order
	Unassigned  []string     // labels of members with no group
	EmptyGroups []string     // groups with no members
}

// Summarize computes counts and warnings without touching the matrix.
func Summarize(src Sources, members MemberTable, groups GroupTable, m *Matrix) Summary {
	s := Summary{
		Sources:     src,
		MemberCount: members.Len(),
		GroupCount:  groups.Len(),
		Groups:      make([]GroupCount, 0, groups.Len()),
	}

	for _, g := range groups.groups {
		n := m.ColumnSum(g.Slot)
		s.Groups = append(s.Groups, GroupCount{Name: g.Name, Members: n})
		if n == 0 {
			s.EmptyGroups = append(s.EmptyGroups, g.Name)
		}
	}

	for i, mem := range members.Members {
		if mem.Unassigned() {
			s.Unassigned = append(s.Unassigned, mem.Label(i+1))
		}
	}
	return s
}
