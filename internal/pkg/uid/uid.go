// Package uid generates identifiers used across the service.
package uid

// StringID generates unique string identifiers.
type StringID interface {
	Generate() string
}
