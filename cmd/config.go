package cmd

import (
	"fmt"

	"github.com/rogersnm/taskeasy/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect taskeasy configuration",
}

var configShowCmd = &cobra.Command{
	Use:         "show",
	Short:       "Print the effective configuration",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationNoStore: ""},
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveDataDir()
		if err != nil {
			return err
		}
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("marshaling config: %w", err)
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "# data dir: %s\n", dir)
		if cfg.Storage.Backend == config.BackendSQLite {
			fmt.Fprintf(out, "# sqlite: %s\n", cfg.Storage.SQLitePath(dir))
		}
		fmt.Fprint(out, string(data))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}
