package sharedmem

import (
	"fmt"

	"golang.org/x/text/encoding/unicode"

	"acrtelemetry/internal/acrerr"
)

var utf16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()

// DecodeWideString decodes a fixed-capacity UTF-16LE field: raw holds
// maxChars*2 bytes (the caller has already capped the read to whatever
// remains in the segment). The string ends at the first null char16 cell
// found within raw, or at maxChars if none is found.
func DecodeWideString(raw []byte, maxChars int) (string, error) {
	limit := maxChars
	if avail := len(raw) / 2; avail < limit {
		limit = avail
	}

	terminator := limit
	for i := 0; i < limit; i++ {
		if raw[2*i] == 0 && raw[2*i+1] == 0 {
			terminator = i
			break
		}
	}

	decoded, err := utf16LE.Bytes(raw[:terminator*2])
	if err != nil {
		return "", fmt.Errorf("sharedmem: decode utf-16 string: %w: %v", acrerr.ErrInvalidUTF16, err)
	}
	return string(decoded), nil
}
