package commands

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"docsift/internal/htmldoc"
)

func htmlCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "html",
		Short: "Tag and attribute extraction from HTML files",
	}
	cmd.AddCommand(htmlLinksCmd(), htmlSelectCmd(), htmlTagsCmd())
	return cmd
}

func openPage(path string) (*htmldoc.Page, error) {
	if err := readable(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return htmldoc.Parse(f)
}

func htmlLinksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "links <file>",
		Short: "Print every anchor href and its text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := openPage(args[0])
			if err != nil {
				return err
			}
			for _, l := range page.Links() {
				fmt.Printf("%s\t%s\n", l.Href, l.Text)
			}
			return nil
		},
	}
}

func htmlSelectCmd() *cobra.Command {
	var attr string
	cmd := &cobra.Command{
		Use:   "select <selector> <file>",
		Short: "Print elements matched by a CSS selector",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := openPage(args[1])
			if err != nil {
				return err
			}
			if attr != "" {
				for _, v := range page.AttrValues(args[0], attr) {
					fmt.Println(v)
				}
				return nil
			}
			for _, el := range page.Select(args[0]) {
				fmt.Printf("<%s> %s\n", el.Tag, el.Text)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&attr, "attr", "", "print this attribute instead of tag and text")
	return cmd
}

func htmlTagsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tags <file>",
		Short: "Print a tag histogram",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := readable(args[0]); err != nil {
				return err
			}
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			counts, err := htmldoc.TagCounts(f)
			if err != nil {
				return err
			}
			tags := make([]string, 0, len(counts))
			for t := range counts {
				tags = append(tags, t)
			}
			sort.Strings(tags)
			for _, t := range tags {
				fmt.Printf("%s\t%d\n", t, counts[t])
			}
			return nil
		},
	}
}
