package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/mailgroup/internal/domain"
	"github.com/aalvaropc/mailgroup/internal/usecase"
	"github.com/aalvaropc/mailgroup/internal/usecase/render"
)

const noMembersMessage = "No members found in the specified set."

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "mailgroup: error: %s\n", domain.Describe(err))
		os.Exit(1)
	}
}

type rootOptions struct {
	debug     bool
	logFormat string
	config    string
	color     bool
	members   string
	groups    string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "mailgroup [MEMBERS GROUPS] [EXPR]",
		Short: "Build a mailing list from member and group CSV files",
		Long: `mailgroup prints a list of email addresses that can be pasted into a mail
client. The list is built from two linked CSV files: a member file with the
columns 'Last name', 'First name', 'Email' and 'Groups', and a group file with
the columns 'key' and 'description'.

With only the two files, a summary of the database is printed. With a group
expression, the matching members are printed as "Name <email>, ...".
Expressions combine group names with & (and), | (or), ~ (not) and
parentheses; quote them so the shell leaves the operators alone:

  mailgroup members.csv groups.csv '(project1&project2)|management'

When a mailgroup.yaml naming both files is found in the current directory or
a parent, the file arguments can be omitted.`,
		Args:          cobra.RangeArgs(0, 3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, rest, err := openSession(cmd, opts, args)
			if err != nil {
				if errors.Is(err, errNoSources) && len(args) == 0 {
					return cmd.Help()
				}
				return err
			}
			defer s.close()

			if len(rest) == 0 {
				return runSummary(cmd, s)
			}
			return runQuery(cmd, s, rest[0])
		},
	}

	f := cmd.PersistentFlags()
	f.BoolVar(&opts.debug, "debug", false, "enable verbose logging to stderr")
	f.StringVar(&opts.logFormat, "log-format", "text", "Log format: text|json")
	f.StringVar(&opts.config, "config", "", "Path to mailgroup.yaml (optional; searched upward from the working directory if omitted)")
	f.BoolVar(&opts.color, "color", false, "Style the summary report for a terminal")
	f.StringVar(&opts.members, "members", "", "Member CSV file (overrides mailgroup.yaml)")
	f.StringVar(&opts.groups, "groups", "", "Group CSV file (overrides mailgroup.yaml)")

	cmd.AddCommand(
		validateCmd(opts),
		groupsCmd(opts),
		initCmd(),
		versionCmd(),
	)
	return cmd
}

func runSummary(cmd *cobra.Command, s *session) error {
	uc := usecase.NewSummarize(s.dataset)
	summary, err := uc.Execute(cmd.Context(), s.sources)
	if err != nil {
		return err
	}
	return render.Report(cmd.OutOrStdout(), summary, render.WithTheme(s.theme))
}

func runQuery(cmd *cobra.Command, s *session, expr string) error {
	uc := usecase.NewQuery(s.dataset)
	res, err := uc.Execute(cmd.Context(), s.sources, expr)
	if err != nil {
		if domain.IsWarning(err) {
			s.log.Info("query.empty", "expr", expr)
			fmt.Fprintln(cmd.ErrOrStderr(), noMembersMessage)
			return nil
		}
		return err
	}

	if res.Rendered < res.Matched {
		s.log.Warn("query.members_without_email", "expr", expr, "skipped", res.Matched-res.Rendered)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), res.Line)
	return err
}
