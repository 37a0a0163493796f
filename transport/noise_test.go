package transport

import (
	"bufio"
	"context"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/flynn/noise"

	"github.com/esphome-go/api/api"
)

const testPSKBase64 = "ijB0K5jVngnqsKWIRUC99zDVoPb6scOz1/dS0W+MYPg="

// respondNNpsk0 plays the device side of the handshake directly against
// flynn/noise (not against our own client code) so the test exercises the
// wire format, not just a mirror of the implementation under test. It
// returns an error rather than calling t.Fatal, since it always runs on a
// background goroutine paired with the client handshake under test.
func respondNNpsk0(conn net.Conn, psk []byte, serverName string) (encrypt, decrypt *noise.CipherState, err error) {
	reader := bufio.NewReader(conn)

	msg1, err := readOuterPacket(reader)
	if err != nil {
		return nil, nil, fmt.Errorf("read message 1: %w", err)
	}
	if len(msg1) < 2 || msg1[0] != noiseProtocolChosen || msg1[1] != 0x00 {
		return nil, nil, fmt.Errorf("unexpected message 1 envelope: %v", msg1)
	}

	hs, err := noise.NewHandshakeState(noise.Config{
		CipherSuite:           noiseCipherSuite,
		Pattern:               noise.HandshakeNN,
		Initiator:             false,
		Prologue:              []byte(noisePrologue),
		PresharedKey:          psk,
		PresharedKeyPlacement: 0,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("responder handshake init: %w", err)
	}

	if _, _, _, err := hs.ReadMessage(nil, msg1[2:]); err != nil {
		return nil, nil, fmt.Errorf("responder read message 1: %w", err)
	}

	hello := append([]byte{noiseProtocolChosen}, append([]byte(serverName), 0x00)...)
	if err := writeOuterPacket(conn, hello); err != nil {
		return nil, nil, fmt.Errorf("write hello: %w", err)
	}

	msg2, cs1, cs2, err := hs.WriteMessage(nil, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("responder write message 2: %w", err)
	}
	framed := append([]byte{handshakePreamble}, msg2...)
	if err := writeOuterPacket(conn, framed); err != nil {
		return nil, nil, fmt.Errorf("write message 2: %w", err)
	}

	// flynn/noise returns the split cipher states in the same order on both
	// sides: cs1 carries initiator->responder, cs2 responder->initiator. The
	// client encrypts with cs1 and decrypts with cs2, so the responder
	// encrypts with cs2 and decrypts with cs1.
	return cs2, cs1, nil
}

func newTestPipe(t *testing.T) (clientConn net.Conn, serverConn net.Conn) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()

	serverCh := make(chan net.Conn, 1)
	errCh := make(chan error, 1)
	go func() {
		c, err := ln.Accept()
		if err != nil {
			errCh <- err
			return
		}
		serverCh <- c
	}()

	client, err := net.Dial("tcp", ln.Addr().String())
	if err != nil {
		t.Fatalf("dial: %v", err)
	}

	select {
	case server := <-serverCh:
		return client, server
	case err := <-errCh:
		t.Fatalf("accept: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for accept")
	}
	return nil, nil
}

func TestNoiseTransportHandshakeAndRoundTrip(t *testing.T) {
	psk, err := base64.StdEncoding.DecodeString(testPSKBase64)
	if err != nil || len(psk) != 32 {
		t.Fatalf("bad test psk fixture: %v (len=%d)", err, len(psk))
	}

	clientConn, serverConn := newTestPipe(t)
	defer clientConn.Close()
	defer serverConn.Close()

	tr := &NoiseTransport{cfg: NoiseConfig{PSK: testPSKBase64}}

	done := make(chan error, 1)
	var serverEncrypt, serverDecrypt *noise.CipherState
	go func() {
		var err error
		serverEncrypt, serverDecrypt, err = respondNNpsk0(serverConn, psk, "testdevice")
		done <- err
	}()

	if err := tr.connectOverConn(context.Background(), clientConn); err != nil {
		t.Fatalf("client handshake: %v", err)
	}
	if err := <-done; err != nil {
		t.Fatalf("responder handshake: %v", err)
	}

	if tr.ServerName() != "testdevice" {
		t.Fatalf("server name = %q, want %q", tr.ServerName(), "testdevice")
	}

	if err := tr.SendMessage(context.Background(), api.MessageTypePingRequest, []byte("hello")); err != nil {
		t.Fatalf("send: %v", err)
	}

	serverCiphertext, err := readOuterPacket(bufio.NewReader(serverConn))
	if err != nil {
		t.Fatalf("server read: %v", err)
	}
	plain, err := serverDecrypt.Decrypt(nil, nil, serverCiphertext)
	if err != nil {
		t.Fatalf("server decrypt: %v", err)
	}
	gotType := binary.BigEndian.Uint16(plain[0:2])
	gotLen := binary.BigEndian.Uint16(plain[2:4])
	if api.MessageType(gotType) != api.MessageTypePingRequest || int(gotLen) != len("hello") {
		t.Fatalf("unexpected frame header: type=%d len=%d", gotType, gotLen)
	}
	if string(plain[4:]) != "hello" {
		t.Fatalf("payload = %q, want %q", plain[4:], "hello")
	}

	reply := append([]byte{0, byte(api.MessageTypePingResponse)}, 0, 3)
	reply = append(reply, []byte("ack")...)
	cipherReply, err := serverEncrypt.Encrypt(nil, nil, reply)
	if err != nil {
		t.Fatalf("server encrypt: %v", err)
	}
	if err := writeOuterPacket(serverConn, cipherReply); err != nil {
		t.Fatalf("server write: %v", err)
	}

	frame, err := tr.ReceiveMessage(context.Background(), nil)
	if err != nil {
		t.Fatalf("client receive: %v", err)
	}
	if frame.Type != api.MessageTypePingResponse || string(frame.Payload) != "ack" {
		t.Fatalf("got frame %+v", frame)
	}
}

func TestNoiseTransportWrongPSKFailsHandshake(t *testing.T) {
	goodPSK, _ := base64.StdEncoding.DecodeString(testPSKBase64)
	wrongPSK := append([]byte(nil), goodPSK...)
	wrongPSK[0] ^= 0xFF

	clientConn, serverConn := newTestPipe(t)
	defer clientConn.Close()
	defer serverConn.Close()

	tr := &NoiseTransport{cfg: NoiseConfig{PSK: testPSKBase64}}

	go func() {
		_, _, _ = respondNNpsk0(serverConn, wrongPSK, "testdevice")
	}()

	err := tr.connectOverConn(context.Background(), clientConn)
	if !errors.Is(err, ErrNoiseDecrypt) {
		t.Fatalf("got %v, want ErrNoiseDecrypt", err)
	}
}

func TestNoiseTransportPSKWrongLength(t *testing.T) {
	clientConn, serverConn := newTestPipe(t)
	defer clientConn.Close()
	defer serverConn.Close()

	tr := &NoiseTransport{cfg: NoiseConfig{PSK: base64.StdEncoding.EncodeToString([]byte("too-short"))}}
	err := tr.connectOverConn(context.Background(), clientConn)
	if !errors.Is(err, ErrBase64DecodeSlice) {
		t.Fatal("expected an error for a short PSK")
	}
}

func TestNoiseOuterFramingRoundTrip(t *testing.T) {
	clientConn, serverConn := newTestPipe(t)
	defer clientConn.Close()
	defer serverConn.Close()

	payload := make([]byte, 65519)
	for i := range payload {
		payload[i] = byte(i)
	}

	go func() {
		_ = writeOuterPacket(serverConn, payload)
	}()

	got, err := readOuterPacket(bufio.NewReader(clientConn))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(got) != len(payload) {
		t.Fatalf("len = %d, want %d", len(got), len(payload))
	}
	for i := range got {
		if got[i] != payload[i] {
			t.Fatalf("byte %d mismatch", i)
		}
	}
}

func TestNoisePreambleEnforcement(t *testing.T) {
	clientConn, serverConn := newTestPipe(t)
	defer clientConn.Close()
	defer serverConn.Close()

	go func() {
		_, _ = serverConn.Write([]byte{0x02, 0x00, 0x01, 0xAA})
	}()

	_, err := readOuterPacket(bufio.NewReader(clientConn))
	if err == nil {
		t.Fatal("expected a preamble error")
	}
}
