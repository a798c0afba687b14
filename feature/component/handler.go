package component

import (
	"errors"

	"propulsion-estimator/core/catalog"
	"propulsion-estimator/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for component resolution and the catalog.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the component and catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/components")
	group.Post("/inventory", h.HandleResolveInventory)
	group.Post("/:domain/resolve", h.HandleResolve)

	cat := app.Group("/catalog")
	cat.Get("/", h.HandleGetCatalog)
	cat.Post("/reload", h.HandleReloadCatalog)
}

// HandleResolve resolves one inventory row.
// @Summary Resolve Component
// @Description Match one inventory row against the catalog and derive its constants.
// @Tags components
// @Accept json
// @Produce json
// @Param domain path string true "Component domain (battery, motor, esc, propeller)"
// @Param entry body map[string]interface{} true "Inventory row"
// @Success 200 {object} map[string]interface{} "Resolved component"
// @Failure 404 {object} map[string]string "No catalog match"
// @Failure 422 {object} map[string]string "Invalid field"
// @Router /components/{domain}/resolve [post]
func (h *Handler) HandleResolve(c *fiber.Ctx) error {
	domain := c.Params("domain")
	if !isDomain(domain) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown component domain: " + domain})
	}

	var entry InventoryEntry
	if err := c.BodyParser(&entry); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	l := logger.WithRayID(h.service.logger, c)
	comp, found, err := h.service.Resolve(domain, entry)
	if err != nil {
		return h.fail(c, l, err)
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no matching " + domain + " in catalog"})
	}
	return c.JSON(comp)
}

// HandleResolveInventory resolves a whole inventory.
// @Summary Resolve Inventory
// @Description Resolve every inventory row, skipping rows without a catalog match.
// @Tags components
// @Accept json
// @Produce json
// @Param inventory body Inventory true "Inventory grouped by domain"
// @Success 200 {object} InventoryReport "Resolution report"
// @Failure 503 {object} map[string]string "Catalog not loaded"
// @Router /components/inventory [post]
func (h *Handler) HandleResolveInventory(c *fiber.Ctx) error {
	var inv Inventory
	if err := c.BodyParser(&inv); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	l := logger.WithRayID(h.service.logger, c)
	report, err := h.service.ResolveInventory(inv)
	if err != nil {
		return h.fail(c, l, err)
	}
	return c.JSON(report)
}

// HandleGetCatalog returns the record counts of the active catalog.
// @Summary Catalog Summary
// @Tags catalog
// @Produce json
// @Success 200 {object} map[string]interface{} "Catalog summary"
// @Failure 503 {object} map[string]string "Catalog not loaded"
// @Router /catalog [get]
func (h *Handler) HandleGetCatalog(c *fiber.Ctx) error {
	cat, err := h.service.Catalog()
	if err != nil {
		return h.fail(c, logger.WithRayID(h.service.logger, c), err)
	}
	return c.JSON(summary(cat))
}

// HandleReloadCatalog reloads the catalog from its source.
// @Summary Reload Catalog
// @Tags catalog
// @Produce json
// @Success 200 {object} map[string]interface{} "Catalog summary"
// @Failure 500 {object} map[string]string "Reload failed"
// @Router /catalog/reload [post]
func (h *Handler) HandleReloadCatalog(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	cat, err := h.service.ReloadCatalog(c.Context())
	if err != nil {
		l.Error("Catalog reload failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(summary(cat))
}

func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, err error) error {
	var fieldErr *InvalidFieldError
	switch {
	case errors.As(err, &fieldErr):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error(), "field": fieldErr.Field})
	case errors.Is(err, catalog.ErrNotLoaded):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	default:
		l.Error("Component request failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}

func summary(cat *catalog.Catalog) fiber.Map {
	return fiber.Map{
		"source":    cat.Source,
		"loaded_at": cat.LoadedAt,
		"records":   cat.Counts(),
	}
}

func isDomain(domain string) bool {
	for _, d := range Domains {
		if d == domain {
			return true
		}
	}
	return false
}
