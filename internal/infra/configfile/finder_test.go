package configfile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aalvaropc/mailgroup/internal/domain"
)

func writeConfig(t *testing.T, dir string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("mailgroup:\n  members: m.csv\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func TestFindRoot_FindsConfigFromNestedDir(t *testing.T) {
	root := filepath.Join(t.TempDir(), "lists")
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeConfig(t, root)

	got, err := NewFinder().FindRoot(nested)
	if err != nil {
		t.Fatalf("FindRoot returned error: %v", err)
	}
	if got != root {
		t.Fatalf("expected root=%s, got=%s", root, got)
	}
}

func TestFindRoot_StartFromMemberFile(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root)
	members := filepath.Join(root, "members.csv")
	if err := os.WriteFile(members, []byte("Last name,First name,Email,Groups\n"), 0o644); err != nil {
		t.Fatalf("write members: %v", err)
	}

	got, err := NewFinder().FindRoot(members)
	if err != nil {
		t.Fatalf("FindRoot returned error: %v", err)
	}
	if got != root {
		t.Fatalf("expected root=%s, got=%s", root, got)
	}
}

func TestFindRoot_IgnoresDirectoryNamedLikeConfig(t *testing.T) {
	start := t.TempDir()
	if err := os.Mkdir(filepath.Join(start, FileName), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	if got, err := NewFinder().FindRoot(start); err == nil && got == start {
		t.Fatalf("a directory named %s must not count as config", FileName)
	}
}

func TestFindRoot_NotFound(t *testing.T) {
	start := filepath.Join(t.TempDir(), "a", "b")
	_ = os.MkdirAll(start, 0o755)

	f := &Finder{name: "mailgroup-test-does-not-exist.yaml"}
	_, err := f.FindRoot(start)
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got: %v", err)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
	if got := domain.Describe(err); !strings.HasPrefix(got, start+" not found: no mailgroup-test-does-not-exist.yaml") {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestFindRoot_EmptyStartUsesWorkingDir(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root)
	chdir(t, root)

	got, err := NewFinder().FindRoot("")
	if err != nil {
		t.Fatalf("FindRoot returned error: %v", err)
	}
	want, _ := filepath.EvalSymlinks(root)
	if g, _ := filepath.EvalSymlinks(got); g != want {
		t.Fatalf("expected root=%s, got=%s", want, got)
	}
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
