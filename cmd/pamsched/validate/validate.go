package validate

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/0kam/pamsched"
	"github.com/0kam/pamsched/pkg/config"
)

func InitValidate(rootCmd *cobra.Command) {
	var strict bool

	validateCmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a JSON schedule file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schedule, err := ParseFile(args[0], strict)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Invalid schedule: %v\n", err)
				os.Exit(1)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Valid schedule: %s\n", args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "  Version: %s\n", schedule.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "  Type:    %s\n", schedule.PatternType)
			return nil
		},
	}
	validateCmd.Flags().BoolVar(&strict, "strict", false, "reject unknown keys instead of ignoring them")

	rootCmd.AddCommand(validateCmd)
}

// ParseFile reads and parses one schedule file with an explicitly
// configured codec, so the --strict flag wins over the environment.
func ParseFile(path string, strict bool) (*pamsched.Schedule, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg, err := config.New()
	if err != nil {
		return nil, err
	}
	cfg.Strict = cfg.Strict || strict

	lib, err := pamsched.New(cfg)
	if err != nil {
		return nil, err
	}
	return lib.Codec().Parse(string(content))
}
