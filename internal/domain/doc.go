// Package domain contains the core model for mailgroup: members, groups, the
// membership matrix built from them, and the selections evaluated against it.
//
// The domain does not depend on CSV parsing, the terminal, or the filesystem.
// Infra/adapters map into these types.
package domain
