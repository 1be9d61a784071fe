package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rogersnm/taskeasy/internal/config"
	"github.com/rogersnm/taskeasy/internal/repofile"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:         "init",
	Short:       "Keep tasks for the current directory tree in a local data dir",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationNoStore: ""},
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		path, _ := cmd.Flags().GetString("path")
		backendName, _ := cmd.Flags().GetString("backend")

		dir := cwd
		if path != "" {
			dir = path
			if !filepath.IsAbs(path) {
				dir = filepath.Join(cwd, path)
			}
		}

		local, err := config.Load(dir)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if cmd.Flags().Changed("backend") {
			local.Storage.Backend = backendName
			if err := local.Validate(); err != nil {
				return err
			}
		}
		if err := config.Save(dir, local); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		if err := repofile.Write(cwd, path); err != nil {
			return fmt.Errorf("writing %s: %w", repofile.FileName, err)
		}
		logger.Debug("initialized", "marker", filepath.Join(cwd, repofile.FileName), "config", filepath.Join(dir, config.FileName))

		fmt.Fprintf(cmd.OutOrStdout(), "Initialized %s (data in %s, %s storage)\n",
			repofile.FileName, dir, local.Storage.Backend)
		return nil
	},
}

func init() {
	initCmd.Flags().String("path", "", "data dir, relative to the current directory (default: the current directory)")
	initCmd.Flags().String("backend", config.BackendFile, "storage backend (file, sqlite, redis, memory)")
	rootCmd.AddCommand(initCmd)
}
