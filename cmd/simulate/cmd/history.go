package cmd

import (
	"fmt"

	"github.com/KirkDiggler/montecarlo/internal/services/simulation"
	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent runs stored in Redis",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "Number of runs to list")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	if err := requireRedis(); err != nil {
		return err
	}

	svc, closeRepo, err := newService(cmd.Context())
	if err != nil {
		return err
	}
	defer closeRepo()

	output, err := svc.ListRuns(cmd.Context(), &simulation.ListRunsInput{Limit: historyLimit})
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderHistory(output.Runs))
	return nil
}
