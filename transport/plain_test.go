package transport

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/esphome-go/api/api"
)

func TestPlainTransportSendReceiveRoundTrip(t *testing.T) {
	clientConn, serverConn := newTestPipe(t)
	defer clientConn.Close()
	defer serverConn.Close()

	client := &PlainTransport{}
	client.adoptConn(clientConn)
	server := &PlainTransport{}
	server.adoptConn(serverConn)

	if err := client.SendMessage(context.Background(), api.MessageTypeHelloRequest, []byte("req")); err != nil {
		t.Fatalf("send: %v", err)
	}

	frame, err := server.ReceiveMessage(context.Background(), nil)
	if err != nil {
		t.Fatalf("receive: %v", err)
	}
	if frame.Type != api.MessageTypeHelloRequest || string(frame.Payload) != "req" {
		t.Fatalf("got %+v", frame)
	}
}

func TestPlainTransportWrongPreamble(t *testing.T) {
	clientConn, serverConn := newTestPipe(t)
	defer clientConn.Close()
	defer serverConn.Close()

	server := &PlainTransport{}
	server.adoptConn(serverConn)

	go func() {
		_, _ = clientConn.Write([]byte{0x01, 0x00, 0x00})
	}()

	_, err := server.ReceiveMessage(context.Background(), nil)
	if !errors.Is(err, ErrFrameHadWrongPreamble) {
		t.Fatalf("got %v, want ErrFrameHadWrongPreamble", err)
	}
}

func TestPlainTransportTryReadByte(t *testing.T) {
	clientConn, serverConn := newTestPipe(t)
	defer clientConn.Close()
	defer serverConn.Close()

	server := &PlainTransport{}
	server.adoptConn(serverConn)

	if _, ok := server.TryReadByte(); ok {
		t.Fatal("expected no byte available yet")
	}

	if _, err := clientConn.Write([]byte{0x00}); err != nil {
		t.Fatalf("write: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	b, ok := server.TryReadByte()
	if !ok || b != 0x00 {
		t.Fatalf("got (%v, %v), want (0x00, true)", b, ok)
	}
}
