package domain

import (
	"fmt"
	"strings"
)

// Required member file columns, lowercase.
const (
	ColumnLastName  = "last name"
	ColumnFirstName = "first name"
	ColumnEmail     = "email"
	ColumnGroups    = "groups"
)

// RequiredMemberColumns lists the member file columns in the order they are
// reported when missing.
var RequiredMemberColumns = []string{ColumnLastName, ColumnFirstName, ColumnEmail, ColumnGroups}

// Member is one person record. Each field holds zero or more values; an empty
// slice means the value is missing. Identity is the row position in the
// source file.
type Member struct {
	LastName  []string
	FirstName []string
	Email     []string
	Groups    []string
}

// first returns the first value or "" when the field is missing.
func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// DisplayName joins the first first-name and last-name values, trimming any
// space left behind by a missing part.
func (m Member) DisplayName() string {
	return strings.TrimSpace(first(m.FirstName) + " " + first(m.LastName))
}

// Label names the member in diagnostics: the display name, else the primary
// email, else the 1-based row number.
func (m Member) Label(row int) string {
	if name := m.DisplayName(); name != "" {
		return name
	}
	if email, ok := m.PrimaryEmail(); ok {
		return email
	}
	return fmt.Sprintf("(row %d)", row)
}

// PrimaryEmail returns the first email and whether the member has one.
func (m Member) PrimaryEmail() (string, bool) {
	if len(m.Email) == 0 {
		return "", false
	}
	return m.Email[0], true
}

// Unassigned reports whether the member belongs to no group.
func (m Member) Unassigned() bool {
	return len(m.Groups) == 0
}

// MemberTable is the loaded member file in row order.
type MemberTable struct {
	Source  string
	Members []Member
}

func (t MemberTable) Len() int {
	return len(t.Members)
}

// ReferencedGroups returns the distinct group names referenced by any member,
// in first-seen order.
func (t MemberTable) ReferencedGroups() []string {
	seen := map[string]struct{}{}
	var out []string
	for _, m := range t.Members {
		for _, g := range m.Groups {
			if _, ok := seen[g]; ok {
				continue
			}
			seen[g] = struct{}{}
			out = append(out, g)
		}
	}
	return out
}
