package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func runsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List and show stored extraction runs",
	}
	cmd.AddCommand(runsListCmd(), runsShowCmd())
	return cmd
}

func runsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sums, err := appCtx.Runs.ListRuns()
			if err != nil {
				return err
			}
			if len(sums) == 0 {
				fmt.Println("no runs")
				return nil
			}
			for _, s := range sums {
				fmt.Printf("%s  %s  sources=%d  rules=%d/%d\n",
					s.ID, s.StartedAt.Format(time.RFC3339), s.Sources, s.RulesOK, s.Rules)
			}
			return nil
		},
	}
}

func runsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one stored run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := appCtx.Runs.LoadRun(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("run %s  format=%s  started=%s\n",
				run.ID, run.Format, run.StartedAt.Format(time.RFC3339))
			for _, src := range run.Sources {
				fmt.Printf("source %s  digest=%s\n", src.Path, src.Digest)
			}
			for _, res := range run.Results {
				if res.Success {
					fmt.Printf("ok   %s=%s  (%s)\n", res.Name, run.Vars[res.Name], res.Source)
				} else {
					fmt.Printf("fail %s: %s\n", res.Name, res.Message)
				}
			}
			return nil
		},
	}
}
