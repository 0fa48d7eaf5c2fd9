// Package repository contains the repository interfaces and related errors.
package repository

import "errors"

// Repository errors define common error conditions across all repositories.
// These errors are used to communicate specific failure conditions
// from the data access layer to the application layer.
var (
	// ErrDraftNotFound is returned when a shipment draft does not exist or
	// belongs to another session.
	ErrDraftNotFound = errors.New("shipment draft not found")

	// ErrSessionNotFound is returned when a session token is unknown or expired.
	ErrSessionNotFound = errors.New("session not found")

	// ErrBusinessUnitNotFound is returned when a business unit cannot be found by code.
	ErrBusinessUnitNotFound = errors.New("business unit not found")

	// ErrCustomerNotFound is returned when a customer cannot be found by ID.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrContractNotFound is returned when a contract cannot be found on a customer.
	ErrContractNotFound = errors.New("contract not found")

	// ErrDuplicateID is returned when creating a record whose key already exists.
	ErrDuplicateID = errors.New("record already exists")

	// ErrInvalidInput is returned when repository receives invalid input.
	ErrInvalidInput = errors.New("invalid input provided")
)

// IsNotFoundError checks if the error is a not found error.
// This is useful for handling not-found cases uniformly.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrDraftNotFound) ||
		errors.Is(err, ErrBusinessUnitNotFound) ||
		errors.Is(err, ErrCustomerNotFound) ||
		errors.Is(err, ErrContractNotFound)
}
