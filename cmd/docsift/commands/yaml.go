package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"docsift/internal/yamldoc"
)

func yamlCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "yaml",
		Short: "JSONPath lookup in YAML files",
	}
	cmd.AddCommand(yamlGetCmd())
	return cmd
}

func yamlGetCmd() *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "get <jsonpath> <file>",
		Short: "Evaluate a JSONPath expression against a YAML file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := readable(args[1]); err != nil {
				return err
			}
			doc, err := yamldoc.DecodeFile(args[1])
			if err != nil {
				return err
			}
			if raw {
				v, err := doc.Get(args[0])
				if err != nil {
					return err
				}
				b, err := yamldoc.Encode(v)
				if err != nil {
					return err
				}
				fmt.Print(string(b))
				return nil
			}
			s, err := doc.GetString(args[0])
			if err != nil {
				return err
			}
			fmt.Println(s)
			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print the result as YAML instead of a coerced string")
	return cmd
}
