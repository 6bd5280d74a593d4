package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"docsift/internal/pathutil"
)

func pathsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paths",
		Short: "Path surgery and globbing",
	}
	cmd.AddCommand(pathsGlobCmd(), pathsStemCmd(), pathsExtCmd(), pathsWithExtCmd(), pathsRmCmd())
	return cmd
}

func pathsExtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ext <path>",
		Short: "Print the extension",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, ext := pathutil.Split(args[0])
			fmt.Println(ext)
			return nil
		},
	}
}

func pathsGlobCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "glob <pattern>",
		Short: "Print sorted matches for a glob pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			matches, err := pathutil.Glob(args[0])
			if err != nil {
				return err
			}
			for _, m := range matches {
				fmt.Println(m)
			}
			return nil
		},
	}
}

func pathsStemCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stem <path>",
		Short: "Print the final component without its extension",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(pathutil.Stem(args[0]))
			return nil
		},
	}
}

func pathsWithExtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "with-ext <path> <ext>",
		Short: "Print the path with its extension replaced",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(pathutil.WithExt(args[0], args[1]))
			return nil
		},
	}
}

func pathsRmCmd() *cobra.Command {
	var missingOK bool
	cmd := &cobra.Command{
		Use:   "rm <path>",
		Short: "Delete a file; a missing file is an error unless --missing-ok",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if missingOK {
				removed, err := pathutil.RemoveIfPresent(args[0])
				if err != nil {
					return err
				}
				if !removed {
					fmt.Println("nothing to remove")
				}
				return nil
			}
			return pathutil.Remove(args[0])
		},
	}
	cmd.Flags().BoolVar(&missingOK, "missing-ok", false, "do not fail when the file does not exist")
	return cmd
}
