// Package render turns query results and dataset summaries into text.
package render

import (
	"strings"

	"github.com/aalvaropc/mailgroup/internal/domain"
)

// Separator joins list entries; mail clients accept it as an address list.
const Separator = ", "

// Entry formats one member as "First Last <email>". A member without any
// name renders as "<email>".
func Entry(name, email string) string {
	if name == "" {
		return "<" + email + ">"
	}
	return name + " <" + email + ">"
}

// List renders the selected members that have an email address, in member
// order. An all-false selection returns a KindEmptySelection error instead of
// an empty list.
func List(members domain.MemberTable, sel domain.Selection) (string, error) {
	if !sel.Any() {
		return "", &domain.OpError{
			Op:   "render.list",
			Kind: domain.KindEmptySelection,
			Err:  domain.ErrEmptySelection,
		}
	}

	var entries []string
	for i, m := range members.Members {
		if i >= len(sel) || !sel[i] {
			continue
		}
		email, ok := m.PrimaryEmail()
		if !ok {
			continue
		}
		entries = append(entries, Entry(m.DisplayName(), email))
	}
	return strings.Join(entries, Separator), nil
}
