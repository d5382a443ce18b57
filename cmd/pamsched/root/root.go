package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Exported RootCmd
var RootCmd = &cobra.Command{
	Use:     "pamsched",
	Short:   "Validate and inspect PAM recording schedules",
	Long:    "Command line interface for validating and inspecting PAM recording schedule documents.",
	Version: "0.1.0",
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// Optional helper to return the RootCmd
func GetRoot() *cobra.Command {
	return RootCmd
}
