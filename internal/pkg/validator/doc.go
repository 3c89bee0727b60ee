// Package validator provides a small validation abstraction for request and
// domain structs.
//
// Business code depends on the Validator interface so validation stays
// consistent and testable; the concrete implementation wraps
// go-playground/validator v10.
package validator
