package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"docsift/internal/tabular"
)

func csvCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Inspect delimited files",
	}
	cmd.AddCommand(csvHeadCmd(), csvColumnsCmd())
	return cmd
}

func csvHeadCmd() *cobra.Command {
	var n int
	var delim string
	cmd := &cobra.Command{
		Use:   "head <file>",
		Short: "Print the first rows as key=value records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := csvOptions(delim)
			if err != nil {
				return err
			}
			header, rows, err := tabular.ReadFile(args[0], opts)
			if err != nil {
				return err
			}
			for _, rec := range tabular.Head(rows, n) {
				parts := make([]string, len(header))
				for i, col := range header {
					parts[i] = fmt.Sprintf("%s=%s", col, rec[col])
				}
				fmt.Println(strings.Join(parts, " "))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&n, "rows", "n", 10, "rows to print")
	cmd.Flags().StringVarP(&delim, "delimiter", "d", ",", "field delimiter")
	return cmd
}

func csvColumnsCmd() *cobra.Command {
	var delim string
	cmd := &cobra.Command{
		Use:   "columns <file>",
		Short: "Print the header columns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := csvOptions(delim)
			if err != nil {
				return err
			}
			header, _, err := tabular.ReadFile(args[0], opts)
			if err != nil {
				return err
			}
			for _, col := range header {
				fmt.Println(col)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&delim, "delimiter", "d", ",", "field delimiter")
	return cmd
}

func csvOptions(delim string) (tabular.Options, error) {
	runes := []rune(delim)
	if len(runes) != 1 {
		return tabular.Options{}, fmt.Errorf("delimiter must be a single character, got %q", delim)
	}
	return tabular.Options{Comma: runes[0], TrimLeadingSpace: true}, nil
}
