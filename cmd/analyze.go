package cmd

import (
	"fmt"

	"propulsion-estimator/feature/component"
	"propulsion-estimator/feature/propulsion"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	analyzeVelocity   float64
	analyzeThrottle   float64
	analyzeTarget     float64
	analyzeVelocities []float64
	analyzeMode       string
)

// analyzeCmd evaluates a setup file at one or more operating points.
var analyzeCmd = &cobra.Command{
	Use:   "analyze [setup.json]",
	Short: "Estimate thrust, power, current and endurance of a setup",
	Long: `Reads a setup file with one "battery", "motor", "esc" and "propeller" row,
resolves it against the catalog and prints the operating point.

Examples:
  # Full throttle at 12 m/s
  analyze setup.json --velocity 12

  # Throttle needed for 8 N at 15 m/s
  analyze setup.json --velocity 15 --target 8

  # Velocity sweep
  analyze setup.json --sweep 0,5,10,15,20`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		jsonOutput, _ := cmd.Flags().GetBool("json")

		var setup component.Setup
		if err := readJSONFile(args[0], &setup); err != nil {
			return err
		}

		cfg, logg, err := bootstrap()
		if err != nil {
			return err
		}
		client, store, err := loadCatalog(ctx, cfg, logg)
		if err != nil {
			return err
		}

		components := component.NewService(store, cfg.Matching, logg)
		svc := propulsion.NewService(components, newAdapter(cfg, client, logg), cfg.Solver, cfg.Server.Mode, logg)

		req := propulsion.AnalyzeRequest{
			Setup:    setup,
			Velocity: analyzeVelocity,
			Throttle: &analyzeThrottle,
			Mode:     analyzeMode,
		}
		if cmd.Flags().Changed("target") {
			req.TargetThrust = &analyzeTarget
		}

		var reports []*propulsion.Report
		if len(analyzeVelocities) > 0 {
			reports, err = svc.Sweep(ctx, req, analyzeVelocities)
		} else {
			var r *propulsion.Report
			r, err = svc.Analyze(ctx, req)
			reports = []*propulsion.Report{r}
		}
		if err != nil {
			return fmt.Errorf("analysis failed: %w", err)
		}

		if jsonOutput {
			return printJSON(reports)
		}
		for _, r := range reports {
			printReport(r)
		}
		logg.Info("Analysis completed", zap.Int("operating_points", len(reports)))
		return nil
	},
}

func init() {
	analyzeCmd.Flags().Float64Var(&analyzeVelocity, "velocity", 0, "Cruise velocity in m/s")
	analyzeCmd.Flags().Float64Var(&analyzeThrottle, "throttle", 1, "Throttle between 0 and 1")
	analyzeCmd.Flags().Float64Var(&analyzeTarget, "target", 0, "Target thrust in newtons for the throttle search")
	analyzeCmd.Flags().Float64SliceVar(&analyzeVelocities, "sweep", nil, "Velocities in m/s to evaluate instead of --velocity")
	analyzeCmd.Flags().StringVar(&analyzeMode, "mode", "", "Analysis mode (analytic, calibrated); defaults to SERVER_MODE")
	analyzeCmd.Flags().Bool("json", false, "Print the reports as JSON")
	RootCmd.AddCommand(analyzeCmd)
}

func printReport(r *propulsion.Report) {
	fmt.Println("\n--- Operating Point ---")
	fmt.Printf("Mode:           %s\n", r.Mode)
	fmt.Printf("Velocity:       %.2f m/s\n", r.Velocity)
	fmt.Printf("Throttle:       %.3f\n", r.Throttle)
	fmt.Printf("Max RPM:        %.0f\n", r.MaxRPM)
	fmt.Printf("Static Thrust:  %.3f N\n", r.StaticThrust)
	fmt.Printf("Dynamic Thrust: %.3f N\n", r.DynamicThrust)
	fmt.Printf("Shaft Power:    %.1f W\n", r.MechanicalPower)
	fmt.Printf("Torque:         %.4f N·m\n", r.Torque)
	fmt.Printf("Current:        %.2f A\n", r.Current)
	fmt.Printf("Endurance:      %.2f min\n", r.Endurance)
	if r.ThrustToWeight != nil {
		fmt.Printf("Thrust/Weight:  %.2f\n", *r.ThrustToWeight)
	}
	if r.RequiredThrottle != nil {
		status := "\033[32mconverged\033[0m"
		if !r.RequiredThrottle.Converged {
			status = "\033[33mnot converged\033[0m"
		}
		fmt.Printf("Throttle for %.2f N: %.4f (%s, %d iterations)\n",
			*r.TargetThrust, r.RequiredThrottle.Throttle, status, r.RequiredThrottle.Iterations)
	}
	fmt.Println("-----------------------")
}
