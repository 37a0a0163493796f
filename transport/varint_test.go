package transport

import (
	"bufio"
	"bytes"
	"errors"
	"testing"
)

func TestVarintRoundTrip(t *testing.T) {
	cases := []uint32{0, 1, 0x7F, 0x80, 0x3FFF, 0x4000, 0x1FFFFF, 0x200000, 0xFFFFFFFF}

	for _, v := range cases {
		buf := encodeVarU32(nil, v)
		got, err := readVarU32(bufio.NewReader(bytes.NewReader(buf)), nil)
		if err != nil {
			t.Fatalf("v=%d: %v", v, err)
		}
		if got != v {
			t.Fatalf("v=%d: got %d", v, got)
		}
	}
}

func TestVarintResumesFromPeekedByte(t *testing.T) {
	buf := encodeVarU32(nil, 300)
	first := buf[0]
	rest := buf[1:]

	got, err := readVarU32(bufio.NewReader(bytes.NewReader(rest)), &first)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 300 {
		t.Fatalf("got %d, want 300", got)
	}
}

func TestVarintOverlongRejected(t *testing.T) {
	// Six bytes whose first five all have the high bit set: the decoder gives
	// up after the fifth, before reading the sixth.
	overlong := []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x01}
	_, err := readVarU32(bufio.NewReader(bytes.NewReader(overlong)), nil)
	if !errors.Is(err, ErrVarintOverflow) {
		t.Fatalf("got %v, want ErrVarintOverflow", err)
	}
}
