package cli

import (
	"errors"
	"fmt"

	"github.com/genvault/genvault-go/internal/viewmodel"
	"github.com/spf13/cobra"
)

func newSaveCmd(o *rootOptions) *cobra.Command {
	var (
		site     string
		link     string
		password string
		generate bool
	)

	cmd := &cobra.Command{
		Use:   "save <userId>",
		Short: "Save a new vault entry",
		Long: `Save a site, its URL and a password as a new entry of the user.
With --generate the password is generated by the server from the
--letters, --numbers and --symbols counts.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			vm := o.newViewModel(o.logger)

			fields := []struct {
				field viewmodel.Field
				value string
			}{
				{viewmodel.FieldSiteName, site},
				{viewmodel.FieldLink, link},
				{viewmodel.FieldPassword, password},
			}
			for _, f := range fields {
				if err := vm.UpdateDraftField(f.field, f.value); err != nil {
					return err
				}
			}

			if generate {
				applyGeneratorFlags(cmd, vm)
				if err := vm.GeneratePassword(ctx); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			err := vm.Save(ctx, args[0])
			if msg := vm.StatusMessage(); msg != "" {
				fmt.Fprintln(out, msg)
			}

			if op, ok := viewmodel.FailedOp(err); ok && op == viewmodel.OpRefresh {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
				return nil
			}
			if err != nil {
				var oe *viewmodel.OpError
				if errors.As(err, &oe) {
					return fmt.Errorf("entry not saved: %w", oe.Err)
				}
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&site, "site", "", "site name")
	cmd.Flags().StringVar(&link, "link", "", "site URL")
	cmd.Flags().StringVar(&password, "password", "", "password to store")
	cmd.Flags().BoolVarP(&generate, "generate", "g", false, "generate the password on the server")
	addGeneratorFlags(cmd)
	cmd.MarkFlagsMutuallyExclusive("password", "generate")

	return cmd
}
