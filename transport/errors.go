package transport

import "errors"

// Sentinel errors for the connection/framing layer. Session-level code wraps
// these rather than re-declaring them (spec.md §7: "session errors ... all
// transport errors (wrapped)").
var (
	ErrNotConnected                    = errors.New("not connected")
	ErrUnknownMessageType              = errors.New("unknown message type")
	ErrFrameHadWrongPreamble           = errors.New("frame had wrong preamble")
	ErrHandshakeHadWrongPreamble       = errors.New("handshake had wrong preamble")
	ErrMessageMissingNullTerminator    = errors.New("received message missing null terminator")
	ErrClientWantsUnknownNoiseProtocol = errors.New("client wants unknown noise protocol")
	ErrNoiseDecrypt                    = errors.New("noise decrypt error")
	ErrBase64DecodeSlice               = errors.New("base64 decode slice error")
	ErrVarintOverflow                  = errors.New("varint decode overflow")
	ErrTruncatedFrame                  = errors.New("truncated frame")
)
