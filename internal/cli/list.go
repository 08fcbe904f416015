package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

const maskedPassword = "********"

func newListCmd(o *rootOptions) *cobra.Command {
	var (
		search string
		reveal bool
	)

	cmd := &cobra.Command{
		Use:   "list <userId>",
		Short: "List a user's vault entries",
		Long: `Fetch the user's entries from the vault and print them as a table.
Use --search to keep only sites whose name contains the term (case-insensitive).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vm := o.newViewModel(o.logger)
			if err := vm.Refresh(cmd.Context(), args[0]); err != nil {
				return err
			}
			vm.SetSearchTerm(search)

			entries := vm.FilteredEntries()
			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No entries found.")
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSITE\tLINK\tPASSWORD")
			for _, e := range entries {
				password := maskedPassword
				if reveal {
					password = e.Password
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.ID, e.SiteName, e.Link, password)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "only show sites containing this term")
	cmd.Flags().BoolVar(&reveal, "reveal", false, "print passwords in clear text")

	return cmd
}
