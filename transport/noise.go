package transport

import (
	"bufio"
	"bytes"
	"context"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"net"
	"time"

	"github.com/flynn/noise"
	"github.com/rs/zerolog"
	"github.com/valyala/bytebufferpool"

	"github.com/esphome-go/api/api"
)

// noisePrologue binds the handshake to the ESPHome native API; see
// spec §4.3 / §6.
const noisePrologue = "NoiseAPIInit\x00\x00"

// noiseProtocolChosen is the only protocol byte either side ever offers.
const noiseProtocolChosen = 0x01

// handshakePreamble marks the second handshake packet's inner payload.
const handshakePreamble = 0x00

var noiseCipherSuite = noise.NewCipherSuite(noise.DH25519, noise.CipherChaChaPoly, noise.HashSHA256)

// noiseScratchPool holds reusable buffers for assembling the inner
// [type,len]+payload frame before encryption, following the teacher's
// acquire/wipe/release pattern for key-adjacent scratch memory
// (cryptoops.acquireBuffer/releaseBuffer).
var noiseScratchPool bytebufferpool.Pool

func acquireNoiseScratch() *bytebufferpool.ByteBuffer {
	buf := noiseScratchPool.Get()
	buf.B = buf.B[:0]
	return buf
}

func releaseNoiseScratch(buf *bytebufferpool.ByteBuffer) {
	b := buf.B[:cap(buf.B)]
	for i := range b {
		b[i] = 0
	}
	noiseScratchPool.Put(buf)
}

// NoiseConfig configures a NoiseTransport. PSK is the device's
// pre-shared key, standard base64 encoded, decoding to exactly 32 bytes.
type NoiseConfig struct {
	Address string
	PSK     string
	Logger  zerolog.Logger
}

// NoiseTransport implements Transport over Noise_NNpsk0_25519_ChaChaPoly_SHA256:
// no static keys on either side, the pre-shared key stands in for the
// missing identity proof. Once the handshake completes the connection
// never emits plaintext again.
type NoiseTransport struct {
	cfg    NoiseConfig
	logger zerolog.Logger

	conn   net.Conn
	reader *bufio.Reader

	encryptor  *noise.CipherState
	decryptor  *noise.CipherState
	serverName string
}

// NewNoiseTransport constructs a transport that is not yet connected.
func NewNoiseTransport(cfg NoiseConfig) *NoiseTransport {
	return &NoiseTransport{cfg: cfg, logger: cfg.Logger}
}

// ServerName returns the peer's self-reported name, populated once
// Connect has completed the handshake.
func (t *NoiseTransport) ServerName() string { return t.serverName }

// Connect dials the device and performs the Noise_NNpsk0 handshake.
func (t *NoiseTransport) Connect(ctx context.Context) error {
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

	return t.connectOverConn(ctx, conn)
}

// connectOverConn runs the Noise_NNpsk0 handshake over an already-dialed
// connection. Split out from Connect so handshake logic can be exercised
// against an in-process pipe in tests, without a real dialer.
func (t *NoiseTransport) connectOverConn(ctx context.Context, conn net.Conn) error {
	psk, err := base64.StdEncoding.DecodeString(t.cfg.PSK)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBase64DecodeSlice, err)
	}
	if len(psk) != 32 {
		return fmt.Errorf("%w: psk decodes to %d bytes, want 32", ErrBase64DecodeSlice, len(psk))
	}

	reader := bufio.NewReaderSize(conn, 4096)

	hs, err := noise.NewHandshakeState(noise.Config{
		CipherSuite:           noiseCipherSuite,
		Pattern:               noise.HandshakeNN,
		Initiator:             true,
		Prologue:              []byte(noisePrologue),
		PresharedKey:          psk,
		PresharedKeyPlacement: 0,
	})
	if err != nil {
		conn.Close()
		return fmt.Errorf("noise handshake init: %w", err)
	}

	msg1, _, _, err := hs.WriteMessage(nil, nil)
	if err != nil {
		conn.Close()
		return fmt.Errorf("noise handshake write message 1: %w", err)
	}

	first := make([]byte, 0, 2+len(msg1))
	first = append(first, noiseProtocolChosen, 0x00)
	first = append(first, msg1...)
	if err := writeOuterPacket(conn, first); err != nil {
		conn.Close()
		return fmt.Errorf("noise handshake send message 1: %w", err)
	}

	hello, err := readOuterPacket(reader)
	if err != nil {
		conn.Close()
		return err
	}
	if len(hello) == 0 {
		conn.Close()
		return fmt.Errorf("%w: empty hello packet", ErrHandshakeHadWrongPreamble)
	}
	if hello[0] != noiseProtocolChosen {
		conn.Close()
		return fmt.Errorf("%w: %d", ErrClientWantsUnknownNoiseProtocol, hello[0])
	}
	nameField := hello[1:]
	nul := bytes.IndexByte(nameField, 0)
	if nul < 0 {
		conn.Close()
		return ErrMessageMissingNullTerminator
	}
	serverName := string(nameField[:nul])

	msg2, err := readOuterPacket(reader)
	if err != nil {
		conn.Close()
		return err
	}
	if len(msg2) == 0 || msg2[0] != handshakePreamble {
		conn.Close()
		var got byte
		if len(msg2) > 0 {
			got = msg2[0]
		}
		return fmt.Errorf("%w: %d", ErrHandshakeHadWrongPreamble, got)
	}

	_, cs1, cs2, err := hs.ReadMessage(nil, msg2[1:])
	if err != nil {
		conn.Close()
		return fmt.Errorf("%w: %w", ErrNoiseDecrypt, err)
	}

	t.conn = conn
	t.reader = reader
	t.encryptor = cs1
	t.decryptor = cs2
	t.serverName = serverName

	t.logger.Debug().Str("server_name", serverName).Str("addr", t.cfg.Address).Msg("noise handshake complete")
	return nil
}

// Disconnect closes the underlying socket. Idempotent.
func (t *NoiseTransport) Disconnect() error {
	if t.conn == nil {
		return nil
	}
	err := t.conn.Close()
	t.conn = nil
	t.reader = nil
	t.encryptor = nil
	t.decryptor = nil
	return err
}

// SendMessage frames typ/payload as the inner 4-byte-header frame,
// encrypts it as a single Noise transport message, and wraps it in the
// 3-byte outer header.
func (t *NoiseTransport) SendMessage(ctx context.Context, typ api.MessageType, payload []byte) error {
	if t.conn == nil {
		return ErrNotConnected
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = t.conn.SetWriteDeadline(deadline)
	}

	scratch := acquireNoiseScratch()
	defer releaseNoiseScratch(scratch)

	var hdr [4]byte
	binary.BigEndian.PutUint16(hdr[0:2], uint16(typ))
	binary.BigEndian.PutUint16(hdr[2:4], uint16(len(payload)))
	scratch.B = append(scratch.B, hdr[:]...)
	scratch.B = append(scratch.B, payload...)

	ciphertext, err := t.encryptor.Encrypt(nil, nil, scratch.B)
	if err != nil {
		return fmt.Errorf("noise encrypt: %w", err)
	}
	return writeOuterPacket(t.conn, ciphertext)
}

// ReceiveMessage reads and decrypts the next frame. If first is non-nil
// it is the already-consumed outer preamble byte (from a prior
// TryReadByte), so the 3-byte outer header resumes from its second byte.
func (t *NoiseTransport) ReceiveMessage(ctx context.Context, first *byte) (Frame, error) {
	if t.conn == nil {
		return Frame{}, ErrNotConnected
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = t.conn.SetReadDeadline(deadline)
	}

	ciphertext, err := readOuterPacketResuming(t.reader, first)
	if err != nil {
		return Frame{}, err
	}

	plaintext, err := t.decryptor.Decrypt(nil, nil, ciphertext)
	if err != nil {
		return Frame{}, fmt.Errorf("%w: %w", ErrNoiseDecrypt, err)
	}
	if len(plaintext) < 4 {
		return Frame{}, fmt.Errorf("%w: inner frame shorter than header", ErrTruncatedFrame)
	}

	typ := api.MessageType(binary.BigEndian.Uint16(plaintext[0:2]))
	length := binary.BigEndian.Uint16(plaintext[2:4])
	body := plaintext[4:]
	if int(length) != len(body) {
		return Frame{}, fmt.Errorf("%w: declared %d, got %d", ErrTruncatedFrame, length, len(body))
	}

	return Frame{Type: typ, Payload: body}, nil
}

// TryReadByte performs a non-blocking single-byte read by racing a tiny
// read deadline; any error (including a timeout) is reported as "no byte
// available" per spec §5, since a hard close only needs to surface on the
// next full receive.
func (t *NoiseTransport) TryReadByte() (byte, bool) {
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

// --- outer packet framing --------------------------------------------------

func writeOuterPacket(w interface{ Write([]byte) (int, error) }, payload []byte) error {
	header := [3]byte{noiseProtocolChosen, 0, 0}
	binary.BigEndian.PutUint16(header[1:3], uint16(len(payload)))
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("write noise header: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("write noise payload: %w", err)
	}
	return nil
}

func readOuterPacket(r *bufio.Reader) ([]byte, error) {
	return readOuterPacketResuming(r, nil)
}

func readOuterPacketResuming(r *bufio.Reader, first *byte) ([]byte, error) {
	var preamble byte
	if first != nil {
		preamble = *first
	} else {
		b, err := r.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("read noise preamble: %w", err)
		}
		preamble = b
	}
	if preamble != noiseProtocolChosen {
		return nil, fmt.Errorf("%w: %d", ErrFrameHadWrongPreamble, preamble)
	}

	var lenBuf [2]byte
	if _, err := readFull(r, lenBuf[:]); err != nil {
		return nil, fmt.Errorf("read noise length: %w", err)
	}
	length := binary.BigEndian.Uint16(lenBuf[:])

	payload := make([]byte, length)
	if _, err := readFull(r, payload); err != nil {
		return nil, fmt.Errorf("read noise payload: %w", err)
	}
	return payload, nil
}

func readFull(r *bufio.Reader, buf []byte) (int, error) {
	n := 0
	for n < len(buf) {
		m, err := r.Read(buf[n:])
		n += m
		if err != nil {
			return n, err
		}
	}
	return n, nil
}
