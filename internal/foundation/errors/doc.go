// Package errors provides the classified error primitives used across notesite.
//
// A ClassifiedError carries a broad category, a severity and structured context
// so that the CLI can pick an exit code and a log level without string matching.
//
// Example usage:
//
//	err := errors.WrapError(cause, errors.CategoryValidation, "route collision").
//		WithContext("collection", "ml").
//		WithContext("route", "/ai").
//		Build()
package errors
