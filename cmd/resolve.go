package cmd

import (
	"fmt"
	"os"

	"propulsion-estimator/feature/component"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// resolveCmd matches an inventory file against the catalog.
var resolveCmd = &cobra.Command{
	Use:   "resolve [inventory.json]",
	Short: "Match an inventory against the component catalog",
	Long: `Reads an inventory file with "batteries", "motors", "escs" and "propellers" rows
and reports the catalog record each row resolves to.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		jsonOutput, _ := cmd.Flags().GetBool("json")

		var inv component.Inventory
		if err := readJSONFile(args[0], &inv); err != nil {
			return err
		}

		cfg, logg, err := bootstrap()
		if err != nil {
			return err
		}
		_, store, err := loadCatalog(ctx, cfg, logg)
		if err != nil {
			return err
		}

		svc := component.NewService(store, cfg.Matching, logg)
		report, err := svc.ResolveInventory(inv)
		if err != nil {
			return fmt.Errorf("failed to resolve inventory: %w", err)
		}

		if jsonOutput {
			return printJSON(report)
		}

		fmt.Println("\n--- Inventory Resolution ---")
		printResolutions(component.DomainBattery, report.Batteries, func(b *component.Battery) string {
			return fmt.Sprintf("%s (%dS, %.1f V, %.4f ohm)", b.Name, b.SeriesCells, b.Voltage, b.Resistance)
		})
		printResolutions(component.DomainMotor, report.Motors, func(m *component.Motor) string {
			return fmt.Sprintf("%s (kv %.0f, %.4f ohm, io %.2f A) [%s]", m.Name, m.Kv, m.Resistance, m.NoLoadCurrent, m.Match.Tier)
		})
		printResolutions(component.DomainESC, report.ESCs, func(e *component.ESC) string {
			return fmt.Sprintf("%s (%.4f ohm) [%s]", e.Name, e.Resistance, e.Match.Tier)
		})
		printResolutions(component.DomainPropeller, report.Propellers, func(p *component.Propeller) string {
			return fmt.Sprintf("%dx %.1fx%.1f Tc %.2f Pc %.2f", p.Blades, p.Diameter, p.Pitch, p.Tconst, p.Pconst)
		})
		fmt.Println("-----------------------------")
		fmt.Printf("Resolved: %d  Missing: %d  Invalid: %d\n", report.Resolved, report.Missing, report.Invalid)

		logg.Info("Inventory resolved",
			zap.Int("resolved", report.Resolved),
			zap.Int("missing", report.Missing),
			zap.Int("invalid", report.Invalid),
		)
		return nil
	},
}

func init() {
	resolveCmd.Flags().Bool("json", false, "Print the full report as JSON")
	RootCmd.AddCommand(resolveCmd)
}

func printResolutions[T any](domain string, rows []component.Resolution[T], describe func(*T) string) {
	if len(rows) == 0 {
		return
	}
	fmt.Printf("\n%s:\n", domain)
	for _, r := range rows {
		switch {
		case r.Error != "":
			fmt.Printf("  #%d \033[31minvalid\033[0m  %s\n", r.Row, r.Error)
		case !r.Found:
			fmt.Printf("  #%d \033[33mmissing\033[0m\n", r.Row)
		default:
			fmt.Printf("  #%d \033[32mfound\033[0m    %s\n", r.Row, describe(r.Component))
		}
	}
}

func readJSONFile(path string, dest any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
