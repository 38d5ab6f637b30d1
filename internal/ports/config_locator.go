package ports

// ConfigLocator finds the directory holding mailgroup.yaml, searching upward
// from start (a directory or a file; empty means the working directory).
type ConfigLocator interface {
	FindRoot(start string) (string, error)
}
