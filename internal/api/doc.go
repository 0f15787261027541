// Package api implements the HTTP handlers of the service: content
// generation, the textbook catalog, subjects, the admin gate, API key checks
// and the provider catalog.
//
// Handlers decode and validate requests, call a service and translate the
// result. Errors go through HandleAPIError, which picks a status with
// MapErrorToStatusCode and a localized, leak-free message with
// GetSafeErrorMessage; the full error is only logged, redacted.
package api
