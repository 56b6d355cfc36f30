package paxton

import (
	"encoding/binary"
	"encoding/hex"
	"strings"
)

const (
	// recordSize is the fixed length of a Paxton 10 card record.
	recordSize = 9

	// wrapper is the literal prepended and appended to the hex digits.
	wrapper = "9716"

	// marker is the literal delimiter inserted between record bytes 2/3 and 3/4.
	marker = "Z"
)

// header holds the constant record bytes 0-4, identical across all cards.
var header = [5]byte{0xAB, 0xCD, 0xEF, 0x82, 0x01}

// Encode converts a credential into its Paxton 10 card number. It is total:
// every credential encodes, and equal credentials encode identically.
func Encode(c Credential) string {
	var record [recordSize]byte

	copy(record[:], header[:])
	binary.LittleEndian.PutUint16(record[5:7], c.Number)
	record[7] = c.Facility
	record[8] = checksum(record[:8])

	digits := strings.ToUpper(hex.EncodeToString(record[:]))

	// Markers delimit the third and fourth record bytes: ...EF Z 82 Z 01...
	var out strings.Builder

	out.Grow(2*len(wrapper) + len(digits) + 2*len(marker))
	out.WriteString(wrapper)
	out.WriteString(digits[:6])
	out.WriteString(marker)
	out.WriteString(digits[6:8])
	out.WriteString(marker)
	out.WriteString(digits[8:])
	out.WriteString(wrapper)

	return out.String()
}

// Convert parses a Kantec card number and encodes it for Paxton 10.
func Convert(s string) (string, error) {
	credential, err := Parse(s)
	if err != nil {
		return "", err
	}

	return Encode(credential), nil
}

// checksum derives the trailing record byte from the sum of the preceding
// eight bytes. The formula was fitted to captured reader data:
//
//	checksum = (sum & 0x0F) + (0x17 - (sum >> 4) * 4)  (mod 256)
//
// The intermediate can go negative for large sums and wraps with
// two's-complement semantics. Verified only against captured cards; do not
// adjust without new reference data.
func checksum(data []byte) byte {
	var sum byte

	for _, b := range data {
		sum += b
	}

	low := int(sum & 0x0F)
	high := int(sum >> 4)

	return byte(low + 0x17 - high*4)
}
