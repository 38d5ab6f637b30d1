package configfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aalvaropc/mailgroup/internal/domain"
	"github.com/aalvaropc/mailgroup/internal/ports"
)

// FileName is the config file searched for by Finder.
const FileName = "mailgroup.yaml"

// Finder locates the nearest directory holding a mailgroup config, starting
// from a directory or from the directory of a member/group file.
type Finder struct {
	name string
}

func NewFinder() *Finder {
	return &Finder{name: FileName}
}

var _ ports.ConfigLocator = (*Finder)(nil)

// FindRoot returns the directory containing the config file. An empty start
// means the working directory.
func (f *Finder) FindRoot(start string) (string, error) {
	if start == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", &domain.OpError{Op: "configfile.findroot", Kind: domain.KindExecution, Err: err}
		}
		start = wd
	}

	dir, err := filepath.Abs(start)
	if err != nil {
		return "", &domain.OpError{Op: "configfile.findroot", Kind: domain.KindExecution, Path: start, Err: err}
	}
	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}

	for cur := filepath.Clean(dir); ; {
		if info, err := os.Stat(filepath.Join(cur, f.name)); err == nil && !info.IsDir() {
			return cur, nil
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			break
		}
		cur = parent
	}

	return "", &domain.OpError{
		Op:   "configfile.findroot",
		Kind: domain.KindNotFound,
		Path: dir,
		Err:  fmt.Errorf("%w: no %s here or in any parent directory", domain.ErrNotFound, f.name),
	}
}
