package domain

// Config represents the mailgroup configuration loaded from mailgroup.yaml.
type Config struct {
	Defaults DefaultsConfig
	Output   OutputConfig
}

// DefaultsConfig holds the default input files, already resolved against the
// directory holding the config file.
type DefaultsConfig struct {
	MembersPath string
	GroupsPath  string
}

type OutputConfig struct {
	Color bool
}

// HasSources reports whether both default input files are configured.
func (c Config) HasSources() bool {
	return c.Defaults.MembersPath != "" && c.Defaults.GroupsPath != ""
}

// Sources returns the configured input files.
func (c Config) Sources() Sources {
	return Sources{
		MembersPath: c.Defaults.MembersPath,
		GroupsPath:  c.Defaults.GroupsPath,
	}
}

// DefaultConfig is used when no mailgroup.yaml is found.
func DefaultConfig() Config {
	return Config{}
}

// ProjectSpec describes where `mailgroup init` writes its starter files.
type ProjectSpec struct {
	Root string
}
