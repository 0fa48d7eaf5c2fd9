package entity

import "errors"

// Domain errors returned by entity constructors and mutators.
var (
	ErrInvalidDimensionPolicy = errors.New("invalid dimension policy")
	ErrInvalidServiceType     = errors.New("invalid service type")
	ErrInvalidContractType    = errors.New("invalid contract service type")
	ErrInvalidStatus          = errors.New("invalid status")
	ErrEmptyOwner             = errors.New("draft owner cannot be empty")
	ErrInvalidBusinessUnit    = errors.New("business unit name, phone and email are required")
	ErrInvalidCustomer        = errors.New("customer first name, last name and email are required")
)
