package fsproject

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/mailgroup/internal/domain"
	"github.com/aalvaropc/mailgroup/internal/ports"
)

//go:embed templates/*
var templatesFS embed.FS

type Initializer struct{}

func NewInitializer() *Initializer {
	return &Initializer{}
}

var _ ports.ProjectInitializer = (*Initializer)(nil)

// Init writes the starter config and CSV files under spec.Root. Existing files
// are kept unless force is set.
func (i *Initializer) Init(spec domain.ProjectSpec, force bool) error {
	root := filepath.Clean(spec.Root)
	if err := os.MkdirAll(root, 0o755); err != nil {
		return &domain.OpError{
			Op:   "fsproject.init",
			Kind: domain.KindExecution,
			Path: root,
			Err:  err,
		}
	}

	return fs.WalkDir(templatesFS, "templates", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel := strings.TrimPrefix(p, "templates/")
		dst := filepath.Join(root, rel)

		if !force {
			if _, statErr := os.Stat(dst); statErr == nil {
				return nil
			}
		}

		b, err := fs.ReadFile(templatesFS, p)
		if err != nil {
			return err
		}

		// Member lists hold personal contact details.
		mode := fs.FileMode(0o644)
		if strings.HasPrefix(rel, "members") {
			mode = 0o600
		}

		if err := os.WriteFile(dst, b, mode); err != nil {
			return &domain.OpError{
				Op:   "fsproject.init",
				Kind: domain.KindExecution,
				Path: dst,
				Err:  err,
			}
		}
		return nil
	})
}
