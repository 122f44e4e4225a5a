package cmd

import (
	"fmt"

	"github.com/KirkDiggler/montecarlo/internal/experiment"
	"github.com/KirkDiggler/montecarlo/internal/services/simulation"
	"github.com/spf13/cobra"
)

var (
	experimentFile string
	rollsOverride  int
	seedOverride   int64
	showOutcomes   int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Play an experiment file",
	Long: `Play the dice described in an experiment file and print the analysis.

Example:
  simulate run -f experiments/loaded_pair.yaml --seed 42 --outcomes 10`,
	Args: cobra.NoArgs,
	RunE: runExperiment,
}

func init() {
	runCmd.Flags().StringVarP(&experimentFile, "file", "f", "", "Experiment YAML file")
	runCmd.Flags().IntVar(&rollsOverride, "rolls", -1, "Override the experiment's roll count")
	runCmd.Flags().Int64Var(&seedOverride, "seed", 0, "Override the experiment's seed")
	runCmd.Flags().IntVar(&showOutcomes, "outcomes", 0, "Print the first N outcome rows")
	_ = runCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(runCmd)
}

func runExperiment(cmd *cobra.Command, args []string) error {
	exp, err := experiment.Load(experimentFile)
	if err != nil {
		return err
	}

	input := &simulation.RunSimulationInput{
		Name:  exp.Name,
		Dice:  exp.Dice,
		Rolls: exp.Rolls,
		Seed:  exp.Seed,
	}
	if cmd.Flags().Changed("rolls") {
		input.Rolls = rollsOverride
	}
	if cmd.Flags().Changed("seed") {
		input.Seed = seedOverride
	}

	svc, closeRepo, err := newService(cmd.Context())
	if err != nil {
		return err
	}
	defer closeRepo()

	output, err := svc.RunSimulation(cmd.Context(), input)
	if err != nil {
		return fmt.Errorf("failed to run %s: %w", experimentFile, err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderRun(output.Run, showOutcomes))
	return nil
}
