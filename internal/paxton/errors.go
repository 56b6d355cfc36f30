package paxton

import "errors"

var (
	// ErrMalformedInput is returned when the input is not of the form "<hex>:<decimal>".
	ErrMalformedInput = errors.New("malformed card number")
	// ErrInvalidFacility is returned when the facility code is not hex or exceeds one byte.
	ErrInvalidFacility = errors.New("invalid facility code")
	// ErrInvalidCardNumber is returned when the card number is not decimal or exceeds two bytes.
	ErrInvalidCardNumber = errors.New("invalid card number")
)
