package transport

import (
	"bufio"
	"fmt"
)

// maxVarintBytes is the most bytes a 32-bit LEB128 value can take; a stream
// whose fifth byte still has the continuation bit set is malformed.
const maxVarintBytes = 5

// encodeVarU32 appends v to dst as unsigned LEB128 and returns the result.
func encodeVarU32(dst []byte, v uint32) []byte {
	for v >= 0x80 {
		dst = append(dst, byte(v)|0x80)
		v >>= 7
	}
	return append(dst, byte(v))
}

// readVarU32 decodes an unsigned LEB128 u32 from r. If first is non-nil, its
// value is treated as the first byte already consumed from the stream (the
// peek-before-receive pattern in §4.4/§9 of the spec).
func readVarU32(r *bufio.Reader, first *byte) (uint32, error) {
	var result uint32
	var shift uint
	var b byte
	var err error

	for i := 0; i < maxVarintBytes; i++ {
		if i == 0 && first != nil {
			b = *first
		} else {
			b, err = r.ReadByte()
			if err != nil {
				return 0, err
			}
		}

		result |= uint32(b&0x7f) << shift
		if b&0x80 == 0 {
			return result, nil
		}
		shift += 7
	}

	return 0, fmt.Errorf("%w: no terminating byte within %d bytes", ErrVarintOverflow, maxVarintBytes)
}
