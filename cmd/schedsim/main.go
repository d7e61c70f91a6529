package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"schedkit/internal/simworld"
)

var (
	configPath string
	policyName string
	csvPath    string
	maxTicks   uint
)

func main() {
	root := &cobra.Command{
		Use:   "schedsim",
		Short: "Replay workloads against composable scheduler assemblies",
		Long: `schedsim plays the host kernel's part against a scheduler built from
the schedkit policy and handler components: it admits tasks, fires timer
interrupts, and context-switches to whatever task the scheduler returns.`,
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run a workload under the chosen scheduling policy",
		RunE:  runSimulation,
	}
	runCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML workload and simulator config")
	runCmd.Flags().StringVarP(&policyName, "policy", "p", simworld.PolicyRoundRobin, "scheduling policy to assemble")
	runCmd.Flags().StringVar(&csvPath, "csv", "", "write the dispatch trace to a CSV file")
	runCmd.Flags().UintVar(&maxTicks, "ticks", 0, "override the configured tick budget")

	policiesCmd := &cobra.Command{
		Use:   "policies",
		Short: "List the available scheduling policies",
		Run: func(cmd *cobra.Command, _ []string) {
			for _, name := range simworld.PolicyNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}

	root.AddCommand(runCmd, policiesCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSimulation(cmd *cobra.Command, _ []string) error {
	cfg, err := simworld.Load(configPath)
	if err != nil {
		return err
	}
	if maxTicks > 0 {
		cfg.MaxTicks = maxTicks
	}

	logger := simworld.NewLogger(simworld.ParseLevel(cfg.LogLevel), cfg.LogFormat, os.Stderr)

	var trace *simworld.TraceWriter
	if csvPath != "" {
		f, err := os.Create(csvPath)
		if err != nil {
			return fmt.Errorf("create trace file: %w", err)
		}
		defer f.Close()

		trace, err = simworld.NewTraceWriter(f, uuid.New())
		if err != nil {
			return err
		}
	}

	world := simworld.NewWorld(cfg, logger, trace)

	report, err := world.Run(cmd.Context(), policyName)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "run %s: policy=%s ticks=%d completed=%d\n",
		report.RunID, report.Policy, report.Ticks, len(report.Completions))

	ids := make([]uint, 0, len(report.Completions))
	for id := range report.Completions {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		fmt.Fprintf(cmd.OutOrStdout(), "  task %d finished at tick %d\n", id, report.Completions[id])
	}
	return nil
}
