package integrity

import (
	"errors"

	"propulsion-estimator/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/schema", h.HandleSchemaCheck)
	group.Get("/snapshots", h.HandleSnapshotCheck)
	group.Get("/drift", h.HandleDriftCheck)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Performs the schema, snapshot and drift checks of the component catalog.
// @Tags integrity
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	ctx := c.Context()
	report := make(map[string]interface{})

	if schema, err := h.service.CheckSchema(); err != nil {
		report["schema"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["schema"] = schema
	}

	if missing, err := h.service.CheckSnapshots(ctx); err != nil {
		report["snapshots"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["snapshots"] = map[string]interface{}{"status": "ok", "missing": missing}
	}

	if drift, err := h.service.CheckDrift(ctx); err != nil {
		report["drift"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["drift"] = drift
	}

	return c.JSON(report)
}

// HandleSchemaCheck checks the catalog tables.
// @Summary Check Catalog Schema
// @Description Verify that every catalog table defines the columns the resolvers read.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.SchemaReport "Schema Report"
// @Failure 503 {object} map[string]string "No database"
// @Router /integrity/schema [get]
func (h *Handler) HandleSchemaCheck(c *fiber.Ctx) error {
	report, err := h.service.CheckSchema()
	if err != nil {
		return h.fail(c, "Schema check failed", err)
	}
	return c.JSON(report)
}

// HandleSnapshotCheck checks and optionally rewrites the storage snapshots.
// @Summary Check Catalog Snapshots
// @Description Checks that every domain has a snapshot in storage. Optionally rewrites them from the database.
// @Tags integrity
// @Produce json
// @Param fix query boolean false "Rewrite snapshots from the database"
// @Success 200 {object} map[string]interface{} "Snapshot Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/snapshots [get]
func (h *Handler) HandleSnapshotCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.Query("fix") == "true"

	missing, err := h.service.CheckSnapshots(c.Context())
	if err != nil {
		return h.fail(c, "Snapshot check failed", err)
	}

	if len(missing) > 0 {
		l.Warn("Missing snapshots detected", zap.Strings("missing", missing))

		if fix {
			l.Info("Attempting to rewrite snapshots")
			if err := h.service.FixSnapshots(c.Context()); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error":   "Failed to rewrite snapshots",
					"details": err.Error(),
					"missing": missing,
				})
			}
			return c.JSON(fiber.Map{
				"status": "fixed",
				"fixed":  missing,
			})
		}
	}

	return c.JSON(fiber.Map{
		"status":  "checked",
		"missing": missing,
	})
}

// HandleDriftCheck compares the database catalog with the storage snapshot.
// @Summary Check Catalog Drift
// @Description Report records present in only one catalog source or differing between them.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.DriftReport "Drift Report"
// @Failure 503 {object} map[string]string "No database"
// @Router /integrity/drift [get]
func (h *Handler) HandleDriftCheck(c *fiber.Ctx) error {
	report, err := h.service.CheckDrift(c.Context())
	if err != nil {
		return h.fail(c, "Drift check failed", err)
	}
	return c.JSON(report)
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	if errors.Is(err, ErrNoDatabase) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	}
	logger.WithRayID(h.service.logger, c).Error(msg, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
