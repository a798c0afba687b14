package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"propulsion-estimator/core/loader"
	"propulsion-estimator/core/logger"
	"propulsion-estimator/core/metrics"
	"propulsion-estimator/core/middleware/auth"
	"propulsion-estimator/core/middleware/rayid"
	"propulsion-estimator/core/storage"
	"propulsion-estimator/feature/component"
	"propulsion-estimator/feature/integrity"
	"propulsion-estimator/feature/propulsion"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "propulsion-estimator/docs/swagger"
)

// @title Propulsion Estimator API
// @version 1.0
// @description API for matching drive components and estimating electric propulsion performance.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the propulsion estimator server",
	Long:  `Loads the component catalog, starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		cfg, logg, err := bootstrap()
		if err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		if !cfg.Server.IsValidMode() {
			logg.Fatal("Invalid analysis mode", zap.String("mode", cfg.Server.Mode))
		}

		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		db, err := connectDatabase(cfg, logg)
		if err != nil {
			logg.Fatal("Failed to connect to catalog database", zap.Error(err))
		}

		store, err := openCatalog(ctx, cfg, client, db, logg)
		if err != nil {
			logg.Fatal("Failed to load component catalog", zap.Error(err))
		}

		adapter := newAdapter(cfg, client, logg)
		if adapter == nil {
			logg.Info("Calculator bridge not configured, calibrated mode disabled")
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			JSONEncoder:           json.Marshal,
			JSONDecoder:           json.Unmarshal,
		})

		mgr := loader.NewManager()
		components := component.NewFeature(store, cfg.Matching, logg)
		mgr.Register(components)
		mgr.Register(propulsion.NewFeature(components.Service(), adapter, cfg.Solver, cfg.Server.Mode, logg))
		mgr.Register(integrity.NewFeature(client, cfg.Storage.Bucket, cfg.Catalog.SnapshotPrefix, db, logg))

		// RayID first so every later log line carries it.
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Public endpoints
		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/metrics", metrics.Handler())

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port), zap.String("mode", cfg.Server.Mode))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
