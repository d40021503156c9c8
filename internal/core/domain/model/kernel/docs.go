// Package kernel contains shared value objects used across all domain models.
//
// The package provides the UUID value object, a validated wrapper around
// github.com/google/uuid that every aggregate uses for identity. Keeping it
// here avoids cyclic dependencies between the delivery, business, and user
// models.
package kernel
