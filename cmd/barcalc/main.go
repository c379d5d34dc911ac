package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/napolitain/solver-bar/internal/config"
	"github.com/napolitain/solver-bar/internal/economy"
)

var (
	configFile  string
	catalogPath string
	quiet       bool
	logLevel    string
	jsonLogs    bool
	withMetrics bool

	endTime       float64
	prefix        []string
	otherSequence []string
	catchUpObject string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "barcalc",
		Short: "Beyond All Reason economy calculator",
		Long: `A deterministic simulation of metal, energy and buildpower
that evaluates build orders, priority lists and what to build next.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to YAML config file")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Path to a YAML or JSON object catalog")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Minimal output")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Log simulation events as JSON")
	rootCmd.PersistentFlags().BoolVar(&withMetrics, "metrics", false, "Print Prometheus metrics after the run")

	sequenceCmd := &cobra.Command{
		Use:   "sequence [objects...]",
		Short: "Build objects in order and report the timeline",
		RunE:  runSequence,
	}

	prioritiesCmd := &cobra.Command{
		Use:   "priorities [objects...]",
		Short: "Build the first non-stalling priority until the end time",
		RunE:  runPriorities,
	}
	prioritiesCmd.Flags().Float64Var(&endTime, "end", 0, "Simulated time to stop at")

	adviseCmd := &cobra.Command{
		Use:   "advise [target]",
		Short: "Recommend what to build next toward a target",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runAdvise,
	}
	adviseCmd.Flags().StringSliceVar(&prefix, "sequence", nil, "Objects to build before advising")

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare two build sequences at equal time",
		RunE:  runCompare,
	}
	compareCmd.Flags().StringSliceVar(&prefix, "a", nil, "First build sequence")
	compareCmd.Flags().StringSliceVar(&otherSequence, "b", nil, "Second build sequence")
	compareCmd.Flags().StringVar(&catchUpObject, "catch-up", "", "Object the younger economy builds to catch up")

	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the object catalog",
		RunE:  runCatalog,
	}

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show the starting economy, optionally after a sequence",
		RunE:  runStatus,
	}
	statusCmd.Flags().StringSliceVar(&prefix, "sequence", nil, "Objects to build first")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the mode selected in the config file",
		RunE:  runConfigured,
	}

	rootCmd.AddCommand(sequenceCmd, prioritiesCmd, adviseCmd, compareCmd, catalogCmd, statusCmd, runCmd)

	if err := rootCmd.Execute(); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

func runSequence(cmd *cobra.Command, args []string) error {
	a, err := newApp(config.ModeSequence)
	if err != nil {
		return err
	}
	if len(args) > 0 {
		a.cfg.Run.Objects = args
	}
	return a.finish(a.sequence())
}

func runPriorities(cmd *cobra.Command, args []string) error {
	a, err := newApp(config.ModePriorities)
	if err != nil {
		return err
	}
	if len(args) > 0 {
		a.cfg.Run.Priorities = args
	}
	if cmd.Flags().Changed("end") {
		a.cfg.Run.EndTime = endTime
	}
	if err := config.ValidateConfig(a.cfg); err != nil {
		return err
	}
	return a.finish(a.priorities())
}

func runAdvise(cmd *cobra.Command, args []string) error {
	a, err := newApp(config.ModeAdvise)
	if err != nil {
		return err
	}
	if len(args) > 0 {
		a.cfg.Run.Target = args[0]
	}
	if cmd.Flags().Changed("sequence") {
		a.cfg.Run.Objects = prefix
	}
	if err := config.ValidateConfig(a.cfg); err != nil {
		return err
	}
	return a.finish(a.advise())
}

func runCompare(cmd *cobra.Command, args []string) error {
	a, err := newApp(config.ModeCompare)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("a") {
		a.cfg.Run.Objects = prefix
	}
	if cmd.Flags().Changed("b") {
		a.cfg.Run.CompareObjects = otherSequence
	}
	return a.finish(a.compare(catchUpObject))
}

func runCatalog(cmd *cobra.Command, args []string) error {
	a, err := newApp("")
	if err != nil {
		return err
	}
	printCatalog(a.catalog)
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	a, err := newApp("")
	if err != nil {
		return err
	}
	state := a.newState()
	if len(prefix) > 0 {
		if _, err := a.scheduler.BuildSequence(state, prefix); err != nil {
			return a.finish(err)
		}
	}
	printStatus(state)
	return a.finish(nil)
}

func runConfigured(cmd *cobra.Command, args []string) error {
	a, err := newApp("")
	if err != nil {
		return err
	}

	switch a.cfg.Run.Mode {
	case config.ModeSequence:
		err = a.sequence()
	case config.ModePriorities:
		err = a.priorities()
	case config.ModeAdvise:
		err = a.advise()
	case config.ModeCompare:
		err = a.compare("")
	default:
		err = fmt.Errorf("unknown mode %q", a.cfg.Run.Mode)
	}
	return a.finish(err)
}

func (a *app) sequence() error {
	state := a.newState()
	if !quiet {
		a.info.Printf("Building sequence: %s\n\n", strings.Join(a.cfg.Run.Objects, ", "))
	}

	_, err := a.scheduler.BuildSequence(state, a.cfg.Run.Objects)
	printHistory(state)
	if !quiet {
		printStatus(state)
	}
	return err
}

func (a *app) priorities() error {
	state := a.newState()
	if !quiet {
		a.info.Printf("Priorities until t=%.0f: %s\n\n", a.cfg.Run.EndTime, strings.Join(a.cfg.Run.Priorities, ", "))
	}

	result, err := a.scheduler.BuildWithPriorities(state, a.cfg.Run.Priorities, a.cfg.Run.EndTime)
	printHistory(state)
	if !quiet {
		printStatus(state)
		fmt.Printf("\nPasses: %d, fallbacks (%s): %d, waits: %d\n",
			result.Passes, a.scheduler.Fallback(), result.Fallbacks, result.Waits)
	}
	return err
}

func (a *app) advise() error {
	state := a.newState()
	if len(a.cfg.Run.Objects) > 0 {
		if _, err := a.scheduler.BuildSequence(state, a.cfg.Run.Objects); err != nil {
			return err
		}
	}

	advice, err := a.advisor.Recommend(state, a.cfg.Run.Target)
	if err != nil {
		return err
	}
	if !quiet {
		printStatus(state)
		fmt.Println()
	}
	printAdvice(advice)
	return nil
}

func (a *app) compare(catchUp string) error {
	first := a.newState()
	second := a.newState()

	if _, err := a.scheduler.BuildSequence(first, a.cfg.Run.Objects); err != nil {
		return fmt.Errorf("sequence A: %w", err)
	}
	if _, err := a.scheduler.BuildSequence(second, a.cfg.Run.CompareObjects); err != nil {
		return fmt.Errorf("sequence B: %w", err)
	}

	result := a.scheduler.CatchUp(first, second, catchUp)

	printComparison(first, second)
	if result.Stopped != nil {
		color.Yellow("\nCatch-up stopped after %d objects: %v", result.Built, result.Stopped)
	} else if !quiet {
		a.info.Printf("\nThe younger economy built %d extra objects to catch up\n", result.Built)
	}
	return nil
}

// newState starts a fresh economy from the configured scenario
func (a *app) newState() *economy.State {
	return economy.NewState(a.catalog, a.cfg.Scenario.Economy())
}
