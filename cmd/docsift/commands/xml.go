package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"docsift/internal/xmldoc"
)

func xmlCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "xml",
		Short: "Element-tree queries in XML files",
	}
	cmd.AddCommand(xmlFindCmd(), xmlAttrCmd())
	return cmd
}

func xmlFindCmd() *cobra.Command {
	var showAttrs bool
	cmd := &cobra.Command{
		Use:   "find <path> <file>",
		Short: "Print elements matched by an etree path",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := readable(args[1]); err != nil {
				return err
			}
			doc, err := xmldoc.LoadFile(args[1])
			if err != nil {
				return err
			}
			for _, el := range doc.FindAll(args[0]) {
				fmt.Printf("<%s> %s\n", el.Tag, el.Text)
				if showAttrs {
					keys := make([]string, 0, len(el.Attrs))
					for k := range el.Attrs {
						keys = append(keys, k)
					}
					sort.Strings(keys)
					for _, k := range keys {
						fmt.Printf("  @%s=%s\n", k, el.Attrs[k])
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showAttrs, "attrs", false, "also print attributes")
	return cmd
}

func xmlAttrCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "attr <path> <name> <file>",
		Short: "Print one attribute of the first matched element",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := readable(args[2]); err != nil {
				return err
			}
			doc, err := xmldoc.LoadFile(args[2])
			if err != nil {
				return err
			}
			v, ok := doc.Attr(args[0], args[1])
			if !ok {
				return fmt.Errorf("no element at %s with attribute %s", args[0], args[1])
			}
			fmt.Println(v)
			return nil
		},
	}
}
