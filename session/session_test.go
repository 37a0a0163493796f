package session

import (
	"bufio"
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/esphome-go/api/api"
)

// --- raw plaintext wire helpers, mirroring transport.PlainTransport's
// framing (spec.md §4.2) so the test can play the device side without
// reaching into the transport package's unexported pieces.

func encodeVar(dst []byte, v uint32) []byte {
	for v >= 0x80 {
		dst = append(dst, byte(v)|0x80)
		v >>= 7
	}
	return append(dst, byte(v))
}

func readVar(r *bufio.Reader) (uint32, error) {
	var result uint32
	var shift uint
	for {
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		result |= uint32(b&0x7f) << shift
		if b&0x80 == 0 {
			return result, nil
		}
		shift += 7
	}
}

func writeFrame(conn net.Conn, typ api.MessageType, payload []byte) error {
	buf := []byte{0x00}
	buf = encodeVar(buf, uint32(typ))
	buf = encodeVar(buf, uint32(len(payload)))
	buf = append(buf, payload...)
	_, err := conn.Write(buf)
	return err
}

type rawFrame struct {
	typ     api.MessageType
	payload []byte
}

func readFrame(r *bufio.Reader) (rawFrame, error) {
	preamble, err := r.ReadByte()
	if err != nil {
		return rawFrame{}, err
	}
	if preamble != 0x00 {
		return rawFrame{}, errors.New("bad preamble")
	}
	typ, err := readVar(r)
	if err != nil {
		return rawFrame{}, err
	}
	length, err := readVar(r)
	if err != nil {
		return rawFrame{}, err
	}
	payload := make([]byte, length)
	if _, err := readFull(r, payload); err != nil {
		return rawFrame{}, err
	}
	return rawFrame{typ: api.MessageType(typ), payload: payload}, nil
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

func newTestListener(t *testing.T) (addr string, accept func() net.Conn) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	t.Cleanup(func() { _ = ln.Close() })

	connCh := make(chan net.Conn, 1)
	go func() {
		c, err := ln.Accept()
		if err == nil {
			connCh <- c
		}
	}()

	return ln.Addr().String(), func() net.Conn {
		select {
		case c := <-connCh:
			return c
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for accept")
			return nil
		}
	}
}

func newConnectedSession(t *testing.T, password string, onServer func(conn net.Conn, r *bufio.Reader)) *Session {
	t.Helper()
	addr, accept := newTestListener(t)

	errCh := make(chan error, 1)
	go func() {
		conn := accept()
		defer conn.Close()
		r := bufio.NewReader(conn)

		hello, err := readFrame(r)
		if err != nil {
			errCh <- err
			return
		}
		if hello.typ != api.MessageTypeHelloRequest {
			errCh <- errors.New("expected hello request")
			return
		}
		resp := &api.HelloResponse{ServerInfo: "esphome-test", Name: "device"}
		payload, _ := resp.Marshal()
		if err := writeFrame(conn, api.MessageTypeHelloResponse, payload); err != nil {
			errCh <- err
			return
		}

		connReq, err := readFrame(r)
		if err != nil {
			errCh <- err
			return
		}
		if connReq.typ != api.MessageTypeConnectRequest {
			errCh <- errors.New("expected connect request")
			return
		}
		var req api.ConnectRequest
		_ = req.Unmarshal(connReq.payload)

		connResp := &api.ConnectResponse{InvalidPassword: password != "" && req.Password != password}
		connPayload, _ := connResp.Marshal()
		if err := writeFrame(conn, api.MessageTypeConnectResponse, connPayload); err != nil {
			errCh <- err
			return
		}
		if connResp.InvalidPassword {
			errCh <- nil
			return
		}

		listReq, err := readFrame(r)
		if err != nil {
			errCh <- err
			return
		}
		if listReq.typ != api.MessageTypeListEntitiesRequest {
			errCh <- errors.New("expected list entities request")
			return
		}
		if err := writeFrame(conn, api.MessageTypeListEntitiesDoneResponse, nil); err != nil {
			errCh <- err
			return
		}

		if onServer != nil {
			onServer(conn, r)
		}
		errCh <- nil
	}()

	cfg := Config{Address: addr, Password: password}
	s := New(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.Connect(ctx); err != nil {
		t.Fatalf("connect: %v", err)
	}

	t.Cleanup(func() {
		select {
		case err := <-errCh:
			if err != nil {
				t.Errorf("server goroutine: %v", err)
			}
		case <-time.After(2 * time.Second):
		}
	})

	return s
}

func TestSessionConnectSucceeds(t *testing.T) {
	s := newConnectedSession(t, "", nil)
	if !s.Connected() {
		t.Fatal("expected connected session")
	}
}

func TestSessionConnectWrongPassword(t *testing.T) {
	addr, accept := newTestListener(t)
	errCh := make(chan error, 1)
	go func() {
		conn := accept()
		defer conn.Close()
		r := bufio.NewReader(conn)

		if _, err := readFrame(r); err != nil {
			errCh <- err
			return
		}
		resp := &api.HelloResponse{ServerInfo: "esphome-test"}
		payload, _ := resp.Marshal()
		if err := writeFrame(conn, api.MessageTypeHelloResponse, payload); err != nil {
			errCh <- err
			return
		}

		if _, err := readFrame(r); err != nil {
			errCh <- err
			return
		}
		connResp := &api.ConnectResponse{InvalidPassword: true}
		connPayload, _ := connResp.Marshal()
		errCh <- writeFrame(conn, api.MessageTypeConnectResponse, connPayload)
	}()

	cfg := Config{Address: addr, Password: "wrong"}
	s := New(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	err := s.Connect(ctx)
	if !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("got %v, want ErrInvalidPassword", err)
	}
	if s.Connected() {
		t.Fatal("session must not be connected after invalid password")
	}
	if err := <-errCh; err != nil {
		t.Fatalf("server: %v", err)
	}
}

func TestSessionGetTimeRequest(t *testing.T) {
	respondedAt := make(chan rawFrame, 1)
	s := newConnectedSession(t, "", func(conn net.Conn, r *bufio.Reader) {
		if err := writeFrame(conn, api.MessageTypeGetTimeRequest, nil); err != nil {
			return
		}
		frame, err := readFrame(r)
		if err != nil {
			return
		}
		respondedAt <- frame
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.ProcessIncoming(ctx); err != nil {
		t.Fatalf("process incoming: %v", err)
	}

	select {
	case frame := <-respondedAt:
		if frame.typ != api.MessageTypeGetTimeResponse {
			t.Fatalf("got type %v, want GetTimeResponse", frame.typ)
		}
		var resp api.GetTimeResponse
		if err := resp.Unmarshal(frame.payload); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if resp.EpochSeconds == 0 {
			t.Fatal("expected nonzero epoch seconds")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for GetTimeResponse")
	}
}

func TestSessionServerPing(t *testing.T) {
	s := newConnectedSession(t, "", func(conn net.Conn, r *bufio.Reader) {
		_ = writeFrame(conn, api.MessageTypePingRequest, nil)
		_, _ = readFrame(r)
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.ProcessIncoming(ctx); err != nil {
		t.Fatalf("process incoming: %v", err)
	}
}

func TestSessionDisconnectHandshake(t *testing.T) {
	s := newConnectedSession(t, "", func(conn net.Conn, r *bufio.Reader) {
		frame, err := readFrame(r)
		if err != nil {
			return
		}
		if frame.typ != api.MessageTypeDisconnectRequest {
			return
		}
		_ = writeFrame(conn, api.MessageTypeDisconnectResponse, nil)
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.Disconnect(ctx); err != nil {
		t.Fatalf("disconnect: %v", err)
	}
	if s.Connected() {
		t.Fatal("expected session to be disconnected")
	}
}

func TestSessionLightCommandGlobalExcludesConfigCategory(t *testing.T) {
	var received []rawFrame
	done := make(chan struct{})

	s := newConnectedSession(t, "", func(conn net.Conn, r *bufio.Reader) {
		for i := 0; i < 3; i++ {
			frame, err := readFrame(r)
			if err != nil {
				close(done)
				return
			}
			received = append(received, frame)
		}
		close(done)
	})

	for _, e := range []struct {
		key      uint32
		category api.EntityCategory
	}{
		{10, api.EntityCategoryNone},
		{20, api.EntityCategoryNone},
		{30, api.EntityCategoryNone},
		{99, api.EntityCategoryConfig},
	} {
		base := api.EntityBase{Key: e.key, ObjectID: objectIDFor(e.key), EntityCategory: e.category}
		if err := s.Catalogue().Light.Insert(api.ListEntitiesLightResponse{EntityBase: base}); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.LightCommandGlobal(ctx, api.LightCommandRequest{HasState: true, State: true}); err != nil {
		t.Fatalf("light command global: %v", err)
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for server to read frames")
	}

	if len(received) != 3 {
		t.Fatalf("got %d frames, want 3", len(received))
	}
	wantKeys := map[uint32]bool{10: true, 20: true, 30: true}
	for _, frame := range received {
		if frame.typ != api.MessageTypeLightCommandRequest {
			t.Fatalf("got type %v, want LightCommandRequest", frame.typ)
		}
		var cmd api.LightCommandRequest
		if err := cmd.Unmarshal(frame.payload); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if !wantKeys[cmd.Key] {
			t.Fatalf("unexpected key %d in global command, the Config-category entity (key 99) must be excluded", cmd.Key)
		}
		delete(wantKeys, cmd.Key)
	}
	if len(wantKeys) != 0 {
		t.Fatalf("missing keys in global command: %v", wantKeys)
	}
}

func objectIDFor(key uint32) string {
	switch key {
	case 10:
		return "light_a"
	case 20:
		return "light_b"
	case 30:
		return "light_c"
	default:
		return "light_config"
	}
}
