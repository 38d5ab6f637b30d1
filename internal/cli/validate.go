package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/mailgroup/internal/usecase"
)

func validateCmd(opts *rootOptions) *cobra.Command {
	c := &cobra.Command{
		Use:   "validate [MEMBERS GROUPS] [EXPR]",
		Short: "Check both files (and optionally an expression) without printing a list",
		Args:  cobra.RangeArgs(0, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, rest, err := openSession(cmd, opts, args)
			if err != nil {
				return err
			}
			defer s.close()

			expr := ""
			if len(rest) > 0 {
				expr = rest[0]
			}

			uc := usecase.NewValidate(s.dataset)
			if err := uc.Execute(cmd.Context(), s.sources, expr); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "OK")
			return nil
		},
	}
	return c
}
