package paxton_test

import (
	"errors"
	"testing"

	"github.com/idelchi/paxconv/internal/paxton"
)

// TestParse checks segment splitting, range enforcement and the error kinds.
func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    paxton.Credential
		wantErr error
	}{
		{"valid", "4D:52042", paxton.Credential{Facility: 0x4D, Number: 52042}, nil},
		{"valid_zero", "00:0", paxton.Credential{}, nil},
		{"valid_max", "FF:65535", paxton.Credential{Facility: 0xFF, Number: 65535}, nil},
		{"valid_whitespace", " 4D : 52042 ", paxton.Credential{Facility: 0x4D, Number: 52042}, nil},
		{"valid_lowercase_facility", "4d:52042", paxton.Credential{Facility: 0x4D, Number: 52042}, nil},

		{"no_separator", "4D52042", paxton.Credential{}, paxton.ErrMalformedInput},
		{"two_separators", "4D:52042:1", paxton.Credential{}, paxton.ErrMalformedInput},
		{"empty_facility", ":52042", paxton.Credential{}, paxton.ErrMalformedInput},
		{"empty_card_number", "4D:", paxton.Credential{}, paxton.ErrMalformedInput},
		{"blank_input", "   ", paxton.Credential{}, paxton.ErrMalformedInput},

		{"facility_not_hex", "GG:1", paxton.Credential{}, paxton.ErrInvalidFacility},
		{"facility_out_of_range", "100:1", paxton.Credential{}, paxton.ErrInvalidFacility},
		{"facility_negative", "-1:1", paxton.Credential{}, paxton.ErrInvalidFacility},

		{"card_number_not_decimal", "4D:abc", paxton.Credential{}, paxton.ErrInvalidCardNumber},
		{"card_number_hexadecimal", "4D:0x10", paxton.Credential{}, paxton.ErrInvalidCardNumber},
		{"card_number_out_of_range", "4D:65536", paxton.Credential{}, paxton.ErrInvalidCardNumber},
		{"card_number_negative", "4D:-1", paxton.Credential{}, paxton.ErrInvalidCardNumber},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := paxton.Parse(tc.input)

			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("Parse(%q) error = %v, want %v", tc.input, err, tc.wantErr)
				}

				return
			}

			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tc.input, err)
			}

			if got != tc.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tc.input, got, tc.want)
			}
		})
	}
}

// TestCredentialString checks the canonical round-trip form.
func TestCredentialString(t *testing.T) {
	t.Parallel()

	credential, err := paxton.Parse("4d:52042")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if got, want := credential.String(), "4D:52042"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
