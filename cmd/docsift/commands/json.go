package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"docsift/internal/jsondoc"
)

func jsonCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "json",
		Short: "JSONPath lookup in JSON files",
	}
	cmd.AddCommand(jsonGetCmd())
	return cmd
}

func jsonGetCmd() *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "get <jsonpath> <file>",
		Short: "Evaluate a JSONPath expression against a JSON file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := readable(args[1]); err != nil {
				return err
			}
			doc, err := jsondoc.DecodeFile(args[1])
			if err != nil {
				return err
			}
			if raw {
				v, err := doc.Get(args[0])
				if err != nil {
					return err
				}
				enc := &jsondoc.Encoder{Indent: appCtx.Config.Indent}
				b, err := enc.Marshal(v)
				if err != nil {
					return err
				}
				fmt.Println(string(b))
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
	cmd.Flags().BoolVar(&raw, "raw", false, "print the result as indented JSON instead of a coerced string")
	return cmd
}
