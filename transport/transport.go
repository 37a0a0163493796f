// Package transport implements the ESPHome native API wire framing: the
// plaintext varint framing and the Noise_NNpsk0 encrypted framing, behind a
// single Transport interface so the session layer is framing-agnostic
// (spec.md §4.4, design note "two framings, one interface").
package transport

import (
	"context"

	"github.com/esphome-go/api/api"
)

// Frame is the atomic unit crossing the transport boundary: a message type
// paired with its still-encoded payload bytes.
type Frame struct {
	Type    api.MessageType
	Payload []byte
}

// Transport is the uniform send/receive/peek/connect/disconnect surface
// implemented by both the plaintext and Noise framings (spec.md §4.4).
//
// Callers must not invoke methods on a Transport concurrently; ordering
// guarantees (spec.md §5) depend on the caller serializing sends and
// receives onto a single goroutine, exactly as the reference implementation
// relies on a single-threaded cooperative scheduler.
type Transport interface {
	// Connect opens the underlying socket (and, for Noise, performs the
	// handshake) so the transport is ready to exchange frames.
	Connect(ctx context.Context) error

	// Disconnect closes the underlying socket. Idempotent.
	Disconnect() error

	// SendMessage encodes a frame onto the wire.
	SendMessage(ctx context.Context, typ api.MessageType, payload []byte) error

	// ReceiveMessage reads the next full frame. If first is non-nil, its
	// value is treated as an already-consumed leading byte of the frame
	// (see TryReadByte), letting the pump resume a varint/length decode
	// without losing the peeked byte.
	ReceiveMessage(ctx context.Context, first *byte) (Frame, error)

	// TryReadByte performs a non-blocking single-byte read. It returns
	// (b, true) if a byte was immediately available (the byte is consumed
	// and belongs to the next frame), or (0, false) if none was available.
	// Transient I/O errors are folded into the "no data" case by design;
	// only a hard close is ever surfaced, and only from a subsequent full
	// receive (spec.md §5, "try_read_byte semantics").
	TryReadByte() (byte, bool)

	// ServerName returns the Noise-advertised peer name, or "" for the
	// plaintext transport (which has no such handshake step).
	ServerName() string
}
