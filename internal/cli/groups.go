package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/mailgroup/internal/usecase"
)

func groupsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "groups [MEMBERS GROUPS]",
		Short: "List groups with their member counts",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("accepts 0 or 2 arg(s), received %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := openSession(cmd, opts, args)
			if err != nil {
				return err
			}
			defer s.close()

			uc := usecase.NewListGroups(s.dataset)
			groups, err := uc.Execute(cmd.Context(), s.sources)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(groups) == 0 {
				fmt.Fprintln(out, "(no groups found)")
				return nil
			}

			fmt.Fprintf(out, "Group file: %s\n\n", s.sources.GroupsPath)
			printGroups(out, groups)
			return nil
		},
	}
	return cmd
}

func printGroups(w io.Writer, groups []usecase.GroupListing) {
	width := 0
	for _, g := range groups {
		if len(g.Name) > width {
			width = len(g.Name)
		}
	}
	for _, g := range groups {
		line := fmt.Sprintf("- %-*s  %d member(s)", width, g.Name, g.Members)
		if g.Description != "" {
			line += "  " + g.Description
		}
		fmt.Fprintln(w, line)
	}
}
