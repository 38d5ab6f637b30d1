package domain

// Sources identifies the two input files of one run. It travels with every
// use case call so diagnostics can name the offending file.
type Sources struct {
	MembersPath string
	GroupsPath  string
}
