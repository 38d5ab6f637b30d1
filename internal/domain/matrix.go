package domain

import (
	"fmt"
	"strings"
)

// Matrix is the boolean [members x groups] membership relation. Columns are
// addressed by GroupDef.Slot.
type Matrix struct {
	rows  int
	cols  int
	cells []bool
}

// BuildMatrix validates that every group referenced by a member is defined
// and then fills the membership matrix. The column count comes from the full
// group table so groups without members still get a column.
func BuildMatrix(members MemberTable, groups GroupTable) (*Matrix, error) {
	var undefined []string
	for _, g := range members.ReferencedGroups() {
		if _, ok := groups.Slot(g); !ok {
			undefined = append(undefined, g)
		}
	}
	if len(undefined) > 0 {
		return nil, &OpError{
			Op:   "matrix.build",
			Kind: KindReferential,
			Path: groups.Source,
			Err:  fmt.Errorf("%w: %s", ErrUndefinedGroup, strings.Join(undefined, ", ")),
		}
	}

	m := &Matrix{
		rows:  members.Len(),
		cols:  groups.Len(),
		cells: make([]bool, members.Len()*groups.Len()),
	}
	for i, mem := range members.Members {
		for _, g := range mem.Groups {
			slot, _ := groups.Slot(g)
			m.cells[i*m.cols+slot] = true
		}
	}
	return m, nil
}

func (m *Matrix) Rows() int { return m.rows }

func (m *Matrix) Cols() int { return m.cols }

// At reports whether member i belongs to the group in column slot.
func (m *Matrix) At(i, slot int) bool {
	return m.cells[i*m.cols+slot]
}

// Column returns a fresh selection holding column slot.
func (m *Matrix) Column(slot int) Selection {
	out := make(Selection, m.rows)
	for i := 0; i < m.rows; i++ {
		out[i] = m.cells[i*m.cols+slot]
	}
	return out
}

// ColumnSum returns the number of members in the group at slot.
func (m *Matrix) ColumnSum(slot int) int {
	n := 0
	for i := 0; i < m.rows; i++ {
		if m.cells[i*m.cols+slot] {
			n++
		}
	}
	return n
}
