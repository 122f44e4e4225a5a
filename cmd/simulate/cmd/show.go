package cmd

import (
	"fmt"

	"github.com/KirkDiggler/montecarlo/internal/common/uuid"
	"github.com/KirkDiggler/montecarlo/internal/services/simulation"
	"github.com/spf13/cobra"
)

var showOutcomeRows int

var showCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show a run stored in Redis",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <run-id>",
	Short: "Delete a run stored in Redis",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	showCmd.Flags().IntVar(&showOutcomeRows, "outcomes", 0, "Print the first N outcome rows")
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(deleteCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	if err := requireRedis(); err != nil {
		return err
	}

	svc, closeRepo, err := newService(cmd.Context())
	if err != nil {
		return err
	}
	defer closeRepo()

	output, err := svc.GetRun(cmd.Context(), &simulation.GetRunInput{RunID: args[0]})
	if err != nil {
		return fmt.Errorf("failed to get run %s: %w", args[0], err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderRun(output.Run, showOutcomeRows))
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	if err := requireRedis(); err != nil {
		return err
	}

	svc, closeRepo, err := newService(cmd.Context())
	if err != nil {
		return err
	}
	defer closeRepo()

	if _, err := svc.DeleteRun(cmd.Context(), &simulation.DeleteRunInput{RunID: args[0]}); err != nil {
		return fmt.Errorf("failed to delete run %s: %w", args[0], err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "deleted run %s\n", uuid.Short(args[0]))
	return nil
}
