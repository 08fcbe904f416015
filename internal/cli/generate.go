package cli

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

// writeClipboard is replaced in tests; there is no clipboard on CI hosts.
var writeClipboard = clipboard.WriteAll

func newGenerateCmd(o *rootOptions) *cobra.Command {
	var copyToClipboard bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			vm := o.newViewModel(o.logger)
			applyGeneratorFlags(cmd, vm)

			if err := vm.GeneratePassword(cmd.Context()); err != nil {
				return err
			}
			password := vm.Draft().Password
			fmt.Fprintln(cmd.OutOrStdout(), password)

			if copyToClipboard {
				if err := writeClipboard(password); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				fmt.Fprintln(cmd.ErrOrStderr(), "Copied to clipboard.")
			}
			return nil
		},
	}

	addGeneratorFlags(cmd)
	cmd.Flags().BoolVarP(&copyToClipboard, "copy", "c", false, "copy the password to the clipboard")

	return cmd
}
