package app

import (
	"encoding/json"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/evanrichards/tsorder/internal/version"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Full())
		},
	}
}

func newConfigCommand(flags *globalFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective default sort options",
		Long: `Print the sort options every container starts from, after the project
configuration file and TSORDER_* environment variables are applied.

Examples:
  tsorder config                 # YAML, ready for .tsorder.yaml
  tsorder config --format toml   # TOML, ready for .tsorder.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := loadProject(cmd, *flags)
			if err != nil {
				return err
			}
			defaults, err := project.SortDefaults()
			if err != nil {
				return fmt.Errorf("project sort options: %w", err)
			}
			doc := map[string]any{"sort": defaults.Document()}

			out := cmd.OutOrStdout()
			switch format {
			case "yaml":
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(doc); err != nil {
					return err
				}
				return enc.Close()
			case "toml":
				return toml.NewEncoder(out).Encode(doc)
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(doc)
			default:
				return fmt.Errorf("unknown config format %q", format)
			}
		},
	}
	cmd.Flags().StringVar(&format, "format", "yaml", "Output format (yaml, toml, json)")
	return cmd
}
