package cli

import (
	"encoding/json"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/passforge/passforge-go/internal/config"
	"github.com/passforge/passforge-go/internal/service"
)

// NewRootCommand builds the passforge command tree.
func NewRootCommand(cfg config.Config) *cobra.Command {
	if cfg.NoColor {
		color.NoColor = true
	}

	svc := service.NewGeneratorService()

	root := &cobra.Command{
		Use:           "passforge",
		Short:         "Generate cryptographically secure random passwords",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	root.AddCommand(
		newGenerateCommand(cfg, svc),
		newStrengthCommand(svc),
		newVersionCommand(),
	)

	return root
}

// encodeJSON writes v to the command's output as indented JSON.
func encodeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
