// Package utils provides common utility functions for the propulsion estimator.
// It includes helper functions for converting loosely typed inventory and catalog
// values (spreadsheet cells decoded from JSON) into the numeric types the matcher
// and resolvers need.
package utils
