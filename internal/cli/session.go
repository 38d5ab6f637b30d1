package cli

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/mailgroup/internal/domain"
	"github.com/aalvaropc/mailgroup/internal/infra/configfile"
	"github.com/aalvaropc/mailgroup/internal/infra/csvgroups"
	"github.com/aalvaropc/mailgroup/internal/infra/csvmembers"
	"github.com/aalvaropc/mailgroup/internal/infra/logger"
	"github.com/aalvaropc/mailgroup/internal/ui/theme"
	"github.com/aalvaropc/mailgroup/internal/usecase"
)

var errNoSources = errors.New("member and group files are required (pass MEMBERS GROUPS, use --members/--groups, or add them to mailgroup.yaml)")

type session struct {
	cfg     domain.Config
	sources domain.Sources
	theme   theme.Theme
	log     *slog.Logger

	dataset *usecase.BuildDataset
	cleanup func() error
}

func (s *session) close() {
	if s.cleanup != nil {
		_ = s.cleanup()
	}
}

// openSession sets up logging, reads the config, resolves the two input files
// and returns the arguments left after the file paths.
func openSession(cmd *cobra.Command, opts *rootOptions, args []string) (*session, []string, error) {
	cleanup, err := logger.Setup(logger.Config{
		Out:    cmd.ErrOrStderr(),
		Debug:  opts.debug,
		Format: opts.logFormat,
	})
	if err != nil {
		return nil, nil, err
	}
	log := logger.L()

	cfg, err := loadConfig(opts.config, log)
	if err != nil {
		_ = cleanup()
		return nil, nil, err
	}

	src, rest := resolveSources(cfg, opts.members, opts.groups, args)
	if src.MembersPath == "" || src.GroupsPath == "" {
		_ = cleanup()
		return nil, nil, errNoSources
	}

	color := cfg.Output.Color
	if cmd.Flags().Changed("color") {
		color = opts.color
	}

	log.Debug("session.opened", "members", src.MembersPath, "groups", src.GroupsPath, "args", len(rest))

	return &session{
		cfg:     cfg,
		sources: src,
		theme:   theme.For(color),
		log:     log,
		dataset: usecase.NewBuildDataset(
			csvmembers.NewLoader(csvmembers.WithLogger(log)),
			csvgroups.NewLoader(csvgroups.WithLogger(log)),
			usecase.WithLogger(log),
		),
		cleanup: cleanup,
	}, rest, nil
}

// loadConfig reads an explicit config file, or the nearest mailgroup.yaml
// above the working directory. A missing discovered file is not an error.
func loadConfig(explicit string, log *slog.Logger) (domain.Config, error) {
	if p := strings.TrimSpace(explicit); p != "" {
		return configfile.LoadFile(p)
	}

	root, err := configfile.NewFinder().FindRoot("")
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			log.Debug("config.not_found", "detail", domain.Describe(err))
			return domain.DefaultConfig(), nil
		}
		return domain.DefaultConfig(), err
	}
	log.Debug("config.found", "root", root)
	return configfile.LoadConfig(root)
}

// resolveSources picks the input files. Two or more positional arguments
// always start with the member and group paths; otherwise flags and then the
// config supply them.
func resolveSources(cfg domain.Config, membersFlag, groupsFlag string, args []string) (domain.Sources, []string) {
	src := cfg.Sources()
	if m := strings.TrimSpace(membersFlag); m != "" {
		src.MembersPath = m
	}
	if g := strings.TrimSpace(groupsFlag); g != "" {
		src.GroupsPath = g
	}

	if len(args) >= 2 {
		src.MembersPath = args[0]
		src.GroupsPath = args[1]
		return src, args[2:]
	}
	return src, args
}
