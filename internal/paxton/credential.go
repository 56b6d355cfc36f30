package paxton

import (
	"fmt"
	"strconv"
	"strings"
)

// Credential is a Kantec card identity: a one-byte facility (site) code and
// a two-byte card number within that facility.
type Credential struct {
	Facility byte
	Number   uint16
}

const (
	maxFacility = 0xFF
	maxNumber   = 0xFFFF

	segments = 2
)

// Parse interprets s as "<hex-facility>:<decimal-card>", e.g. "4D:52042".
// Whitespace around the input and around each segment is ignored.
func Parse(s string) (Credential, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != segments {
		return Credential{}, fmt.Errorf("%w: expected \"XX:NNNNN\", got %q", ErrMalformedInput, s)
	}

	facilityPart := strings.TrimSpace(parts[0])
	numberPart := strings.TrimSpace(parts[1])

	if facilityPart == "" || numberPart == "" {
		return Credential{}, fmt.Errorf("%w: expected \"XX:NNNNN\", got %q", ErrMalformedInput, s)
	}

	facility, err := strconv.ParseUint(facilityPart, 16, 64)
	if err != nil || facility > maxFacility {
		return Credential{}, fmt.Errorf("%w: facility code must be 00-FF (hex), got %q", ErrInvalidFacility, facilityPart)
	}

	number, err := strconv.ParseUint(numberPart, 10, 64)
	if err != nil || number > maxNumber {
		return Credential{}, fmt.Errorf("%w: card number must be 0-65535, got %q", ErrInvalidCardNumber, numberPart)
	}

	return Credential{Facility: byte(facility), Number: uint16(number)}, nil
}

// String returns the canonical Kantec form of the credential.
func (c Credential) String() string {
	return fmt.Sprintf("%02X:%d", c.Facility, c.Number)
}
