package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"propulsion-estimator/core/catalog"
	"propulsion-estimator/core/database"
	"propulsion-estimator/core/storage"
	"propulsion-estimator/feature/integrity"
	"propulsion-estimator/feature/integrity/checks"

	"github.com/minio/minio-go/v7"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	importDryRun bool
	yesConfirm   bool
)

// catalogCmd is the parent command for catalog maintenance.
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Maintain the component catalog",
	Long: `Move the component catalog between the database and JSON snapshots in object storage.

Examples:
  # List snapshot objects
  catalog status

  # Check schema, snapshots and drift
  catalog check

  # Replace the database tables with the storage snapshot
  catalog import --yes

  # Write the database tables to storage
  catalog export`,
}

var catalogImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Replace the catalog tables with the storage snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg, logg, err := bootstrap()
		if err != nil {
			return err
		}
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}

		c, err := catalog.LoadSnapshot(ctx, client, cfg.Storage.Bucket, cfg.Catalog.SnapshotPrefix)
		if err != nil {
			return err
		}
		logCounts(logg, "Snapshot loaded", c)

		if importDryRun {
			logg.Info("Dry-run mode: No changes were made.")
			return nil
		}
		if !confirmDestructiveAction() {
			logg.Warn("Operation cancelled by user. No changes were made.")
			return nil
		}

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := catalog.Import(ctx, db, c, cfg.Catalog.ImportBatchSize); err != nil {
			return err
		}
		logg.Info("Catalog imported", zap.String("driver", cfg.Database.Driver))
		return nil
	},
}

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the catalog tables to storage as JSON snapshots",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg, logg, err := bootstrap()
		if err != nil {
			return err
		}
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := catalog.VerifySchema(db); err != nil {
			return err
		}
		c, err := catalog.LoadDatabase(ctx, db)
		if err != nil {
			return err
		}
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}
		if err := catalog.WriteSnapshot(ctx, client, cfg.Storage.Bucket, cfg.Catalog.SnapshotPrefix, c); err != nil {
			return err
		}
		logCounts(logg, "Catalog exported", c)
		return nil
	},
}

var catalogCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the catalog schema, snapshots and drift between them",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		jsonOutput, _ := cmd.Flags().GetBool("json")

		cfg, logg, err := bootstrap()
		if err != nil {
			return err
		}
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("database connection required: %w", err)
		}

		svc := integrity.NewService(client, cfg.Storage.Bucket, cfg.Catalog.SnapshotPrefix, db, logg)

		schema, err := svc.CheckSchema()
		if err != nil {
			return fmt.Errorf("schema check failed: %w", err)
		}
		missing, err := svc.CheckSnapshots(ctx)
		if err != nil {
			return fmt.Errorf("snapshot check failed: %w", err)
		}
		var drift *checks.DriftReport
		if len(missing) == 0 && schema.Matched {
			if drift, err = svc.CheckDrift(ctx); err != nil {
				return fmt.Errorf("drift check failed: %w", err)
			}
		}

		if jsonOutput {
			return printJSON(map[string]any{"schema": schema, "missing_snapshots": missing, "drift": drift})
		}

		fmt.Println("\n=== Catalog Integrity ===")
		for _, table := range catalog.Tables() {
			t := schema.Tables[table]
			fmt.Printf("%-22s %s", table, t.Status)
			if len(t.MissingColumns) > 0 {
				fmt.Printf(" (missing: %s)", strings.Join(t.MissingColumns, ", "))
			}
			fmt.Println()
		}
		for _, e := range schema.Errors {
			fmt.Printf("- %s\n", e)
		}
		fmt.Printf("Missing Snapshots: %d %v\n", len(missing), missing)
		if drift != nil {
			for _, domain := range checks.SnapshotDomains {
				d := drift.Domains[domain]
				fmt.Printf("%-10s db only: %d  storage only: %d  changed: %d\n",
					domain, len(d.DatabaseOnly), len(d.StorageOnly), len(d.Changed))
			}
		}

		logg.Info("Catalog integrity check completed",
			zap.Bool("schema_matched", schema.Matched),
			zap.Int("missing_snapshots", len(missing)),
			zap.Bool("drift_checked", drift != nil),
		)
		return nil
	},
}

var catalogStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "List the snapshot objects in storage",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg, _, err := bootstrap()
		if err != nil {
			return err
		}
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}

		fmt.Printf("\n--- Snapshots in %s/%s ---\n", cfg.Storage.Bucket, cfg.Catalog.SnapshotPrefix)
		objects := client.ListObjects(ctx, cfg.Storage.Bucket, minio.ListObjectsOptions{
			Prefix:    cfg.Catalog.SnapshotPrefix + "/",
			Recursive: true,
		})
		found := 0
		for obj := range objects {
			if obj.Err != nil {
				return fmt.Errorf("failed to list snapshots: %w", obj.Err)
			}
			found++
			fmt.Printf("%-40s %10d  %s\n", obj.Key, obj.Size, obj.LastModified.Format("2006-01-02 15:04:05"))
		}
		if found == 0 {
			fmt.Println("No snapshots found.")
		}
		return nil
	},
}

func init() {
	catalogImportCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "Load and count the snapshot without touching the database")
	catalogImportCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm replacing the catalog tables (non-interactive)")

	catalogCheckCmd.Flags().Bool("json", false, "Print the full report as JSON")

	catalogCmd.AddCommand(catalogImportCmd, catalogExportCmd, catalogCheckCmd, catalogStatusCmd)
	RootCmd.AddCommand(catalogCmd)
}

func logCounts(l *zap.Logger, msg string, c *catalog.Catalog) {
	counts := c.Counts()
	l.Info(msg,
		zap.Int("batteries", counts[catalog.DomainBattery]),
		zap.Int("motors", counts[catalog.DomainMotor]),
		zap.Int("escs", counts[catalog.DomainESC]),
		zap.Int("propellers", counts[catalog.DomainPropeller]),
	)
}

// confirmDestructiveAction prompts the user for confirmation or uses --yes flag.
func confirmDestructiveAction() bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\n⚠️  Type 'yes' to replace the catalog tables: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.TrimSpace(response) == "yes"
}
