package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"docsift/internal/app"
	"docsift/internal/logging"
	"docsift/internal/services/inspect"
	"docsift/internal/store"
)

var (
	home    string
	verbose bool
	appCtx  *app.App
)

func Execute() error {
	var cleanup func() error

	root := &cobra.Command{
		Use:   "docsift",
		Short: "Inspect structured documents and extract values from them",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".docsift")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			cfg, err := app.LoadConfig(home)
			if err != nil {
				return err
			}
			cfg.Verbose = verbose

			cleanup, err = logging.Setup(home, verbose)
			if err != nil {
				return err
			}

			rs := store.NewRunStore(home)
			appCtx = app.New(inspect.New(rs), rs, cfg)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.docsift)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		pathsCmd(), grepCmd(), csvCmd(),
		jsonCmd(), yamlCmd(), xmlCmd(), htmlCmd(),
		extractCmd(), runsCmd(),
	)

	err := root.Execute()
	if cleanup != nil {
		_ = cleanup()
	}
	return err
}

// readable guards commands against directories passed as files.
func readable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	return nil
}
