package domain

import "strings"

// Group file header tokens.
const (
	HeaderKey         = "key"
	HeaderDescription = "description"
)

// GroupDef is one group definition. Name is lowercase and unique within a
// GroupTable; Slot is its column in the membership matrix.
type GroupDef struct {
	Name        string
	Description string
	// Fields holds every column after the name, Description included.
	Fields []string
	Slot   int
}

// GroupEntry is a raw group row before slot assignment.
type GroupEntry struct {
	Name   string
	Fields []string
}

// GroupTable holds the groups in slot order.
type GroupTable struct {
	Source string
	groups []GroupDef
	slots  map[string]int
}

// NormalizeGroupName applies the case-insensitive identity used for group
// names everywhere.
func NormalizeGroupName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ExpressionOperators are the characters with meaning in a group expression.
const ExpressionOperators = "&|~()"

// HasOperatorChars reports whether name contains an expression operator. Such
// a group can still be referenced, but an expression spelling it out is read
// as that one group rather than as an operation on shorter names.
func HasOperatorChars(name string) bool {
	return strings.ContainsAny(name, ExpressionOperators)
}

// NewGroupTable assigns slots in entry order. Names are normalized; entries
// with a blank name are skipped and the first occurrence of a name wins.
func NewGroupTable(source string, entries []GroupEntry) GroupTable {
	t := GroupTable{
		Source: source,
		slots:  make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		name := NormalizeGroupName(e.Name)
		if name == "" {
			continue
		}
		if _, dup := t.slots[name]; dup {
			continue
		}

		fields := make([]string, len(e.Fields))
		copy(fields, e.Fields)
		desc := ""
		if len(fields) > 0 {
			desc = strings.TrimSpace(fields[0])
		}

		slot := len(t.groups)
		t.slots[name] = slot
		t.groups = append(t.groups, GroupDef{
			Name:        name,
			Description: desc,
			Fields:      fields,
			Slot:        slot,
		})
	}
	return t
}

func (t GroupTable) Len() int {
	return len(t.groups)
}

// Slot returns the matrix column for name.
func (t GroupTable) Slot(name string) (int, bool) {
	slot, ok := t.slots[NormalizeGroupName(name)]
	return slot, ok
}

// Lookup returns the definition for name.
func (t GroupTable) Lookup(name string) (GroupDef, bool) {
	slot, ok := t.Slot(name)
	if !ok {
		return GroupDef{}, false
	}
	return t.groups[slot], true
}

// Groups returns a copy of the definitions in slot order.
func (t GroupTable) Groups() []GroupDef {
	out := make([]GroupDef, len(t.groups))
	copy(out, t.groups)
	return out
}

// Names returns the group names in slot order.
func (t GroupTable) Names() []string {
	out := make([]string, len(t.groups))
	for i, g := range t.groups {
		out[i] = g.Name
	}
	return out
}
