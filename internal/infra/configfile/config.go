package configfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/mailgroup/internal/domain"
	"gopkg.in/yaml.v3"
)

// LoadConfig loads mailgroup.yaml from root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	return LoadFile(filepath.Join(root, FileName))
}

// LoadFile loads a config file at an explicit path. Relative input paths in
// the file are resolved against the file's directory.
func LoadFile(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "configfile.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "configfile.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err),
		}
	}

	dir := filepath.Dir(path)
	cfg.Defaults.MembersPath = resolve(dir, y.Mailgroup.Members)
	cfg.Defaults.GroupsPath = resolve(dir, y.Mailgroup.Groups)
	if y.Mailgroup.Color != nil {
		cfg.Output.Color = *y.Mailgroup.Color
	}

	return cfg, nil
}

func resolve(dir, p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return ""
	}
	if strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, p[2:])
		}
	}
	if !filepath.IsAbs(p) {
		p = filepath.Join(dir, p)
	}
	return filepath.Clean(p)
}

type yamlConfig struct {
	Mailgroup struct {
		Members string `yaml:"members"`
		Groups  string `yaml:"groups"`
		Color   *bool  `yaml:"color"`
	} `yaml:"mailgroup"`
}
