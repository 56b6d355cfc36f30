package paxton

import "testing"

// TestChecksum pins the checksum formula, including the two's-complement
// wraparound when the intermediate subtraction goes negative.
func TestChecksum(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
		want byte
	}{
		{"reference_sum_4C", []byte{0x4C}, 0x13},
		{"reference_sum_14", []byte{0x14}, 0x17},
		{"zero_sum", []byte{0x00}, 0x17},
		{"max_sum", []byte{0xFF}, 0xEA},
		{"negative_intermediate", []byte{0xEA}, 0xE9},
		{"negative_intermediate_high_nibble", []byte{0xF5}, 0xE0},
		{"byte_sum_wraps", []byte{0x80, 0x80}, 0x17},
		{"multi_byte_record", []byte{0xAB, 0xCD, 0xEF, 0x82, 0x01, 0x4A, 0xCB, 0x4D}, 0x13},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := checksum(tc.data); got != tc.want {
				t.Errorf("checksum(% X) = %#02x, want %#02x", tc.data, got, tc.want)
			}
		})
	}
}
