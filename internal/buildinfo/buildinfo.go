package buildinfo

import "fmt"

// Overridden at build time with -ldflags "-X".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("mailgroup %s (commit=%s, date=%s)", Version, Commit, Date)
}
