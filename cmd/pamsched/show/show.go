package show

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/0kam/pamsched"
	"github.com/0kam/pamsched/cmd/pamsched/validate"
)

func InitShow(rootCmd *cobra.Command) {
	var strict bool

	showCmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Parse a schedule file and pretty-print its canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schedule, err := validate.ParseFile(args[0], strict)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Invalid schedule: %v\n", err)
				os.Exit(1)
			}

			doc, err := pamsched.Dumps(schedule)
			if err != nil {
				return err
			}

			pretty, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(pretty))
			return nil
		},
	}
	showCmd.Flags().BoolVar(&strict, "strict", false, "reject unknown keys instead of ignoring them")

	rootCmd.AddCommand(showCmd)
}
