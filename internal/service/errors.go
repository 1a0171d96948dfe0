package service

import "errors"

var (
	// ErrCardNumberRequired is returned when a lookup is requested for an
	// empty card number. No outbound call is made in that case.
	ErrCardNumberRequired = errors.New("card number is required")

	ErrInvalidDataProvided = errors.New("invalid data provided")
)
