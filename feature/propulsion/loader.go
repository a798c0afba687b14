package propulsion

import (
	"propulsion-estimator/feature/calibration"
	"propulsion-estimator/feature/component"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new propulsion feature.
func NewFeature(components *component.Service, adapter calibration.Adapter, cfg Config, mode string, logger *zap.Logger) *Feature {
	svc := NewService(components, adapter, cfg, mode, logger)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "propulsion"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
