package commands

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"docsift/internal/scan"
)

// grep <pattern> <file...>: print named capture groups per match.
func grepCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "grep <pattern> <file>...",
		Short: "Extract named regex groups from files",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := scan.Compile(args[0])
			if err != nil {
				return err
			}
			for _, path := range args[1:] {
				b, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				matches := p.ExtractAll(string(b))
				if !all && len(matches) > 1 {
					matches = matches[:1]
				}
				for _, groups := range matches {
					printGroups(path, groups)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "print every match, not just the first")
	return cmd
}

func printGroups(path string, groups map[string]string) {
	names := make([]string, 0, len(groups))
	for n := range groups {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Printf("%s: %s=%s\n", path, n, groups[n])
	}
}
