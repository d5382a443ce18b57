package schema

import (
	"fmt"

	"github.com/spf13/cobra"

	schemasvc "github.com/0kam/pamsched/pkg/services/schema"
)

func InitSchema(rootCmd *cobra.Command) {
	schemaCmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the published JSON Schema for schedule documents",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), schemasvc.New().Document())
		},
	}

	rootCmd.AddCommand(schemaCmd)
}
