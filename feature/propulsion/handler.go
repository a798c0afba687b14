package propulsion

import (
	"errors"

	"propulsion-estimator/core/catalog"
	"propulsion-estimator/core/logger"
	"propulsion-estimator/feature/calibration"
	"propulsion-estimator/feature/component"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for propulsion analysis.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the propulsion routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/propulsion")
	group.Post("/analyze", h.HandleAnalyze)
	group.Post("/throttle", h.HandleThrottle)
	group.Post("/sweep", h.HandleSweep)
}

// SweepRequest is an analysis evaluated at several velocities.
type SweepRequest struct {
	AnalyzeRequest
	Velocities []float64 `json:"velocities"`
}

// HandleAnalyze evaluates a setup at one operating point.
// @Summary Analyze Propulsion
// @Description Resolve a setup and report rpm, thrust, power, torque, current and endurance.
// @Tags propulsion
// @Accept json
// @Produce json
// @Param request body AnalyzeRequest true "Analysis request"
// @Success 200 {object} Report "Analysis report"
// @Failure 404 {object} map[string]string "Unmatched component"
// @Failure 422 {object} map[string]string "Infeasible configuration"
// @Failure 502 {object} map[string]string "Calculator failure"
// @Router /propulsion/analyze [post]
func (h *Handler) HandleAnalyze(c *fiber.Ctx) error {
	var req AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	report, err := h.service.Analyze(c.Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(report)
}

// HandleThrottle finds the throttle for a target thrust.
// @Summary Throttle For Thrust
// @Description Bisect the throttle producing the target dynamic thrust at a velocity.
// @Tags propulsion
// @Accept json
// @Produce json
// @Param request body ThrottleRequest true "Throttle request"
// @Success 200 {object} ThrottleResult "Throttle"
// @Failure 422 {object} map[string]string "Target outside the throttle envelope"
// @Router /propulsion/throttle [post]
func (h *Handler) HandleThrottle(c *fiber.Ctx) error {
	var req ThrottleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	res, err := h.service.Throttle(c.Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(res)
}

// HandleSweep evaluates a setup across velocities.
// @Summary Velocity Sweep
// @Tags propulsion
// @Accept json
// @Produce json
// @Param request body SweepRequest true "Sweep request"
// @Success 200 {array} Report "Reports in velocity order"
// @Router /propulsion/sweep [post]
func (h *Handler) HandleSweep(c *fiber.Ctx) error {
	var req SweepRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if len(req.Velocities) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "velocities must not be empty"})
	}

	reports, err := h.service.Sweep(c.Context(), req.AnalyzeRequest, req.Velocities)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(reports)
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	l := logger.WithRayID(h.service.logger, c)

	var rangeErr *RangeError
	var fieldErr *component.InvalidFieldError
	var rerr *calibration.RetrievalError
	switch {
	case errors.As(err, &rangeErr):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": err.Error(),
			"min":   rangeErr.Min,
			"max":   rangeErr.Max,
		})
	case errors.As(err, &fieldErr):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error(), "field": fieldErr.Field})
	case errors.Is(err, ErrEquationUnsolvable), errors.Is(err, ErrNotConverged):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrIncompleteSetup):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.As(err, &rerr):
		l.Warn("Calculator unavailable", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error(), "retryable": true})
	case errors.Is(err, catalog.ErrNotLoaded), errors.Is(err, ErrCalibrationUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	default:
		l.Error("Propulsion request failed", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
}
