package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	mtp "github.com/modeltoolsprotocol/go-sdk"
	"github.com/rogersnm/taskeasy/internal/config"
	"github.com/rogersnm/taskeasy/internal/kv"
	"github.com/rogersnm/taskeasy/internal/logging"
	"github.com/rogersnm/taskeasy/internal/repofile"
	"github.com/rogersnm/taskeasy/internal/store"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	dataDir string
	cfg     *config.Config
	backend kv.Backend
	st      *store.TaskStore
	logger  *log.Logger
)

var (
	logOut io.Writer = os.Stderr
	now              = time.Now
)

// Commands carrying this annotation run without opening storage.
const annotationNoStore = "taskeasy/no-store"

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".taskeasy")
	}
	return filepath.Join(home, ".taskeasy")
}

// resolveDataDir picks --data-dir, then the nearest .taskeasy marker, then
// ~/.taskeasy.
func resolveDataDir() (string, error) {
	if dataDir != "" {
		return dataDir, nil
	}
	if cwd, err := os.Getwd(); err == nil {
		found, err := repofile.Find(cwd)
		if err != nil {
			return "", fmt.Errorf("reading %s marker: %w", repofile.FileName, err)
		}
		if found != "" {
			return found, nil
		}
	}
	return defaultDataDir(), nil
}

var rootCmd = &cobra.Command{
	Use:     "taskeasy",
	Short:   "Prioritized personal task tracking",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveDataDir()
		if err != nil {
			return err
		}

		cfg, err = config.Load(dir)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		logger = logging.New(logOut, cfg.Log)

		if _, ok := cmd.Annotations[annotationNoStore]; ok {
			return nil
		}

		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}
		backend, err = kv.Open(cfg.Storage, dir)
		if err != nil {
			return fmt.Errorf("opening %s storage: %w", cfg.Storage.Backend, err)
		}
		logger.Debug("storage opened", "backend", backend.Name(), "dir", dir)
		st = store.New(backend, store.WithReporter(logging.NewReporter(logger)))
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeStore()
	},
	SilenceUsage: true,
}

func closeStore() error {
	if backend == nil {
		return nil
	}
	err := backend.Close()
	backend = nil
	st = nil
	if err != nil {
		return fmt.Errorf("closing storage: %w", err)
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory path (default: nearest .taskeasy marker, else ~/.taskeasy)")

	mtpOpts := &mtp.DescribeOptions{
		Commands: map[string]*mtp.CommandAnnotation{
			"init": {
				Examples: []mtp.Example{
					{Description: "Keep tasks for this directory tree in ./.taskeasy-data", Command: "taskeasy init --path .taskeasy-data"},
					{Description: "Use sqlite storage", Command: "taskeasy init --backend sqlite"},
				},
			},
			"task create": {
				Stdin: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "Task description",
				},
				Examples: []mtp.Example{
					{Description: "Create a high-priority task", Command: "taskeasy task create \"Fix login\" --priority high"},
					{Description: "Create with piped description", Command: "echo 'Steps to reproduce' | taskeasy task create \"Fix login\""},
				},
			},
			"task list": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "Table of tasks sorted high, medium, low followed by the stats line",
				},
			},
			"task show": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/markdown",
					Description: "Task as markdown with YAML frontmatter (title, priority, status); styled with --pretty",
				},
			},
			"task update": {
				Stdin: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "New task description",
				},
				Examples: []mtp.Example{
					{Description: "Rename a task", Command: "taskeasy task update k3m9x2p7qa --title \"New title\""},
					{Description: "Lower priority", Command: "taskeasy task update k3m9x2p7qa --priority low"},
				},
			},
			"task start": {
				Examples: []mtp.Example{
					{Description: "Mark a task in progress", Command: "taskeasy task start k3m9x2p7qa"},
				},
			},
			"task done": {
				Examples: []mtp.Example{
					{Description: "Mark a task done", Command: "taskeasy task done k3m9x2p7qa"},
				},
			},
			"stats": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "Counts by status and priority",
				},
			},
			"config show": {
				Stdout: &mtp.IODescriptor{
					ContentType: "application/yaml",
					Description: "Effective configuration",
				},
			},
		},
	}

	mtp.WithDescribe(rootCmd, mtpOpts)
}

func Execute() error {
	err := rootCmd.Execute()
	if cerr := closeStore(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}
