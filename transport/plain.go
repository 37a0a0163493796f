package transport

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"time"

	"github.com/rs/zerolog"

	"github.com/esphome-go/api/api"
)

const plainPreamble = 0x00

// PlainConfig configures a PlainTransport.
type PlainConfig struct {
	Address string
	Logger  zerolog.Logger
}

// PlainTransport implements Transport over the unencrypted varint framing
// (spec.md §4.2): a 0x00 preamble byte, varint message type, varint payload
// length, then the payload.
type PlainTransport struct {
	cfg    PlainConfig
	logger zerolog.Logger

	conn   net.Conn
	reader *bufio.Reader
	writer *bufio.Writer
}

// NewPlainTransport constructs a transport that is not yet connected.
func NewPlainTransport(cfg PlainConfig) *PlainTransport {
	return &PlainTransport{cfg: cfg, logger: cfg.Logger}
}

// ServerName always returns "" for the plaintext transport: there is no
// handshake step that advertises a peer name.
func (t *PlainTransport) ServerName() string { return "" }

// Connect opens the TCP socket. There is no handshake.
func (t *PlainTransport) Connect(ctx context.Context) error {
	if t.conn != nil {
		return nil
	}
	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", t.cfg.Address)
	if err != nil {
		return fmt.Errorf("dial %s: %w", t.cfg.Address, err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	t.adoptConn(conn)
	t.logger.Debug().Str("addr", t.cfg.Address).Msg("plain transport connected")
	return nil
}

// adoptConn wires an already-established connection into the transport
// without dialing, so tests can pair a PlainTransport against an
// in-process peer.
func (t *PlainTransport) adoptConn(conn net.Conn) {
	t.conn = conn
	t.reader = bufio.NewReaderSize(conn, 4096)
	t.writer = bufio.NewWriterSize(conn, 4096)
}

// Disconnect closes the socket. Idempotent.
func (t *PlainTransport) Disconnect() error {
	if t.conn == nil {
		return nil
	}
	err := t.conn.Close()
	t.conn = nil
	t.reader = nil
	t.writer = nil
	return err
}

// SendMessage writes preamble, varint type, varint length, and payload as a
// single buffered write followed by a flush (spec.md §4.2).
func (t *PlainTransport) SendMessage(ctx context.Context, typ api.MessageType, payload []byte) error {
	if t.conn == nil {
		return ErrNotConnected
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = t.conn.SetWriteDeadline(deadline)
	}

	buf := make([]byte, 0, 1+10+10+len(payload))
	buf = append(buf, plainPreamble)
	buf = encodeVarU32(buf, uint32(typ))
	buf = encodeVarU32(buf, uint32(len(payload)))
	buf = append(buf, payload...)

	if _, err := t.writer.Write(buf); err != nil {
		return fmt.Errorf("write plain frame: %w", err)
	}
	if err := t.writer.Flush(); err != nil {
		return fmt.Errorf("flush plain frame: %w", err)
	}
	return nil
}

// ReceiveMessage reads the next full frame. If first is non-nil, it is
// treated as the already-consumed preamble byte.
func (t *PlainTransport) ReceiveMessage(ctx context.Context, first *byte) (Frame, error) {
	if t.conn == nil {
		return Frame{}, ErrNotConnected
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = t.conn.SetReadDeadline(deadline)
	}

	var preamble byte
	if first != nil {
		preamble = *first
	} else {
		b, err := t.reader.ReadByte()
		if err != nil {
			return Frame{}, fmt.Errorf("read preamble: %w", err)
		}
		preamble = b
	}
	if preamble != plainPreamble {
		return Frame{}, fmt.Errorf("%w: %d", ErrFrameHadWrongPreamble, preamble)
	}

	typ, err := readVarU32(t.reader, nil)
	if err != nil {
		return Frame{}, fmt.Errorf("read message type: %w", err)
	}
	length, err := readVarU32(t.reader, nil)
	if err != nil {
		return Frame{}, fmt.Errorf("read payload length: %w", err)
	}

	payload := make([]byte, length)
	n := 0
	for n < len(payload) {
		m, err := t.reader.Read(payload[n:])
		n += m
		if err != nil {
			return Frame{}, fmt.Errorf("read payload: %w", err)
		}
	}

	return Frame{Type: api.MessageType(typ), Payload: payload}, nil
}

// TryReadByte performs a non-blocking single-byte read via a short read
// deadline (spec.md §5, "try_read_byte semantics"): any error, including a
// timeout, is folded into "no byte available".
func (t *PlainTransport) TryReadByte() (byte, bool) {
	if t.conn == nil || t.reader == nil {
		return 0, false
	}
	_ = t.conn.SetReadDeadline(time.Now().Add(time.Millisecond))
	defer t.conn.SetReadDeadline(time.Time{})

	b, err := t.reader.ReadByte()
	if err != nil {
		return 0, false
	}
	return b, true
}
