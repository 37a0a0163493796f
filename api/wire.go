package api

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// Message is implemented by every typed request/response/state record in
// this package. It intentionally mirrors the surface a protoc-gen-go
// message exposes (MessageType identifies the wire type the way a
// descriptor would), without pulling in the full descriptor runtime.
type Message interface {
	MessageType() MessageType
	Marshal() ([]byte, error)
	Unmarshal([]byte) error
}

// ErrTruncated is returned when a message's wire bytes end mid-field.
var ErrTruncated = fmt.Errorf("truncated protobuf message")

// protowireNumber/protowireType let message files reference protowire's
// field-number and wire-type aliases without importing the package
// themselves — every Unmarshal's field switch only ever needs the alias.
type protowireNumber = protowire.Number
type protowireType = protowire.Type

// --- encode helpers -------------------------------------------------------

func appendVarint(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendBool(b []byte, num protowire.Number, v bool) []byte {
	if !v {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, 1)
}

func appendInt32(b []byte, num protowire.Number, v int32) []byte {
	return appendVarint(b, num, uint64(uint32(v)))
}

func appendUint32(b []byte, num protowire.Number, v uint32) []byte {
	return appendVarint(b, num, uint64(v))
}

func appendFloat32(b []byte, num protowire.Number, v float32) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.Fixed32Type)
	return protowire.AppendFixed32(b, math.Float32bits(v))
}

func appendString(b []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, []byte(v))
}

func appendBytes(b []byte, num protowire.Number, v []byte) []byte {
	if len(v) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

func appendStringSlice(b []byte, num protowire.Number, vs []string) []byte {
	for _, v := range vs {
		b = protowire.AppendTag(b, num, protowire.BytesType)
		b = protowire.AppendBytes(b, []byte(v))
	}
	return b
}

func appendInt32Slice(b []byte, num protowire.Number, vs []int32) []byte {
	for _, v := range vs {
		b = protowire.AppendTag(b, num, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(uint32(v)))
	}
	return b
}

// --- decode helpers --------------------------------------------------------

// forEachField walks the length-delimited protobuf wire format in data,
// invoking set for every field tag. set consumes exactly the value bytes
// for its wire type from b and returns the remainder; an unrecognized field
// number should fall through to skipUnknown.
func forEachField(data []byte, set func(num protowire.Number, typ protowire.Type, b []byte) ([]byte, error)) error {
	b := data
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("%w: bad tag", ErrTruncated)
		}
		b = b[n:]
		rest, err := set(num, typ, b)
		if err != nil {
			return err
		}
		b = rest
	}
	return nil
}

func skipUnknown(typ protowire.Type, b []byte) ([]byte, error) {
	n := protowire.ConsumeFieldValue(0, typ, b)
	if n < 0 {
		return nil, fmt.Errorf("%w: bad field value", ErrTruncated)
	}
	return b[n:], nil
}

func takeVarint(b []byte) (uint64, []byte, error) {
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return 0, nil, fmt.Errorf("%w: bad varint", ErrTruncated)
	}
	return v, b[n:], nil
}

func takeBool(b []byte) (bool, []byte, error) {
	v, rest, err := takeVarint(b)
	return v != 0, rest, err
}

func takeInt32(b []byte) (int32, []byte, error) {
	v, rest, err := takeVarint(b)
	return int32(uint32(v)), rest, err
}

func takeUint32(b []byte) (uint32, []byte, error) {
	v, rest, err := takeVarint(b)
	return uint32(v), rest, err
}

func takeFloat32(b []byte) (float32, []byte, error) {
	v, n := protowire.ConsumeFixed32(b)
	if n < 0 {
		return 0, nil, fmt.Errorf("%w: bad fixed32", ErrTruncated)
	}
	return math.Float32frombits(v), b[n:], nil
}

func takeBytes(b []byte) ([]byte, []byte, error) {
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return nil, nil, fmt.Errorf("%w: bad length-delimited field", ErrTruncated)
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, b[n:], nil
}

func takeString(b []byte) (string, []byte, error) {
	v, rest, err := takeBytes(b)
	return string(v), rest, err
}

