package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"docsift/internal/services/inspect"
)

// extract <rules.yaml>: run the rule file over its sources and store
// the run.
func extractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extract <rules.yaml>",
		Short: "Run an extraction rule file over its sources and store the run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := inspect.LoadSpec(args[0])
			if err != nil {
				return err
			}
			if spec.Format == "" {
				spec.Format = appCtx.Config.Format
			}

			run, err := appCtx.Inspect.Run(spec)
			if err != nil {
				return err
			}

			names := make([]string, 0, len(run.Vars))
			for n := range run.Vars {
				names = append(names, n)
			}
			sort.Strings(names)
			for _, n := range names {
				fmt.Printf("%s=%s\n", n, run.Vars[n])
			}
			for _, res := range run.Results {
				if !res.Success {
					fmt.Printf("# %s: %s\n", res.Name, res.Message)
				}
			}
			fmt.Printf("run %s (%d/%d rules)\n", run.ID, len(run.Vars), len(run.Results))
			return nil
		},
	}
}
