// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - Auth: API key validation (X-API-Key) protecting the estimator endpoints.
//   - RayID: assigns a Request ID (RayID) to every incoming request, storing it in
//     the context locals and echoing it in the response headers for tracing.
//
// These middleware components are registered globally in the start command.
package middleware
