package domain

// Selection is the per-member result of evaluating a group expression.
type Selection []bool

// Any reports whether at least one member is selected.
func (s Selection) Any() bool {
	for _, v := range s {
		if v {
			return true
		}
	}
	return false
}

// Count returns the number of selected members.
func (s Selection) Count() int {
	n := 0
	for _, v := range s {
		if v {
			n++
		}
	}
	return n
}

// And returns the element-wise conjunction. Both selections must have the
// same length.
func (s Selection) And(o Selection) Selection {
	out := make(Selection, len(s))
	for i := range s {
		out[i] = s[i] && o[i]
	}
	return out
}

// Or returns the element-wise disjunction.
func (s Selection) Or(o Selection) Selection {
	out := make(Selection, len(s))
	for i := range s {
		out[i] = s[i] || o[i]
	}
	return out
}

// Not returns the element-wise complement.
func (s Selection) Not() Selection {
	out := make(Selection, len(s))
	for i := range s {
		out[i] = !s[i]
	}
	return out
}
