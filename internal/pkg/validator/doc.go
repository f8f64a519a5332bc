// Package validator provides a small validation abstraction for request and
// domain structs.
//
// Business code should depend on the Validator interface so validation can be
// shared and tested consistently. Concrete implementations (for example
// go-playground/validator v10) live in this package, together with Report, the
// ordered field-to-messages collection every implementation reports into.
package validator

// Validator validates a struct and returns a *Report (wrapped as error) when
// one or more rules fail.
type Validator interface {
	Validate(data any) error
}
