// Package loader provides the plugin-like feature loading system.
//
// Each feature (component resolution, propulsion analysis, catalog) implements the
// Feature interface and is registered with a Manager, which loads enabled features
// into the Fiber router in registration order.
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
package loader
