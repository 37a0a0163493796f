// Package session implements the device session state machine: connect,
// discovery, request/response transactions, the asynchronous pump, state
// and log subscriptions, and per-kind commands (spec.md §4.5).
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/esphome-go/api/api"
	"github.com/esphome-go/api/entity"
	"github.com/esphome-go/api/transport"
)

// Option configures optional Session behavior, following the teacher's
// functional-options pattern (sdk.FunnelOption).
type Option func(*options)

type options struct {
	logger zerolog.Logger
}

// WithLogger attaches a structured logger. The default is zerolog.Nop().
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// Session is a single ESPHome native API connection: one transport, one
// entity catalogue, optional state/log sinks (spec.md §3). A Session is not
// safe for concurrent use (spec.md §5); callers that need cross-goroutine
// access must serialize it themselves.
type Session struct {
	id     string
	cfg    Config
	tr     transport.Transport
	logger zerolog.Logger

	connected bool
	catalogue *entity.EntityCatalogue
	lastPing  time.Time

	stateSink  chan entity.StateUpdate
	logSink    chan LogRecord
	cameraSink chan CameraImage
}

// New constructs a Session. The transport is chosen from cfg: a non-empty
// PSK selects Noise_NNpsk0, otherwise the plaintext varint framing.
func New(cfg Config, opts ...Option) *Session {
	cfg = applyDefaults(cfg)

	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	id := uuid.NewString()
	logger := o.logger.With().Str("session_id", id).Logger()

	var tr transport.Transport
	if cfg.PSK != "" {
		tr = transport.NewNoiseTransport(transport.NoiseConfig{Address: cfg.Address, PSK: cfg.PSK, Logger: logger})
	} else {
		tr = transport.NewPlainTransport(transport.PlainConfig{Address: cfg.Address, Logger: logger})
	}

	return &Session{
		id:        id,
		cfg:       cfg,
		tr:        tr,
		logger:    logger,
		catalogue: entity.New(),
	}
}

// Connected reports whether the session has completed Connect and not yet
// disconnected.
func (s *Session) Connected() bool { return s.connected }

// Catalogue returns the session's entity catalogue, populated after
// Connect completes.
func (s *Session) Catalogue() *entity.EntityCatalogue { return s.catalogue }

// ServerName returns the Noise-advertised peer name, or "" for plaintext
// sessions or before the handshake completes.
func (s *Session) ServerName() string { return s.tr.ServerName() }

// Connect is idempotent (spec.md §4.5): if already connected it returns
// success. Otherwise it opens the transport, exchanges Hello and Connect,
// fetches entities and services, and marks the session connected.
func (s *Session) Connect(ctx context.Context) error {
	if s.connected {
		return nil
	}

	if err := s.tr.Connect(ctx); err != nil {
		return fmt.Errorf("connect transport: %w", err)
	}

	hello := &api.HelloRequest{
		ClientInfo:      s.cfg.ClientInfo,
		APIVersionMajor: s.cfg.APIVersionMajor,
		APIVersionMinor: s.cfg.APIVersionMinor,
	}
	var helloResp api.HelloResponse
	if err := s.transact(ctx, hello, &helloResp); err != nil {
		return fmt.Errorf("hello: %w", err)
	}
	s.logger.Debug().
		Str("server_info", helloResp.ServerInfo).
		Str("name", helloResp.Name).
		Msg("hello complete")

	connReq := &api.ConnectRequest{Password: s.cfg.Password}
	var connResp api.ConnectResponse
	if err := s.transact(ctx, connReq, &connResp); err != nil {
		return fmt.Errorf("connect request: %w", err)
	}
	if connResp.InvalidPassword {
		return ErrInvalidPassword
	}

	if err := s.FetchEntitiesAndServices(ctx); err != nil {
		return fmt.Errorf("fetch entities and services: %w", err)
	}

	s.connected = true
	s.logger.Debug().Msg("session connected")
	return nil
}

// Disconnect drains pending traffic, performs the DisconnectRequest/Response
// handshake, and closes the transport. Idempotent.
func (s *Session) Disconnect(ctx context.Context) error {
	if !s.connected {
		return nil
	}
	if err := s.ProcessIncoming(ctx); err != nil {
		s.logger.Error().Err(err).Msg("process_incoming before disconnect failed")
	}

	req := &api.DisconnectRequest{}
	var resp api.DisconnectResponse
	err := s.transact(ctx, req, &resp)

	s.connected = false
	if closeErr := s.tr.Disconnect(); closeErr != nil && err == nil {
		err = fmt.Errorf("close transport: %w", closeErr)
	}
	if err != nil {
		return fmt.Errorf("disconnect: %w", err)
	}
	s.logger.Debug().Msg("session disconnected")
	return nil
}

// ForceDisconnect skips the handshake exchange and closes the transport
// directly. Idempotent.
func (s *Session) ForceDisconnect() error {
	s.connected = false
	return s.tr.Disconnect()
}

// transact encodes req, sends it, and waits for the next frame to equal
// resp's message type (spec.md §4.5 "transaction"). Callers that run after
// Connect must drain asynchronous traffic themselves via ProcessIncoming;
// transact does not do so, since Connect's own Hello/Connect exchange must
// run before any async traffic is possible.
func (s *Session) transact(ctx context.Context, req api.Message, resp api.Message) error {
	if deadline := s.cfg.RequestTimeout; deadline > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, deadline)
		defer cancel()
	}

	payload, err := req.Marshal()
	if err != nil {
		return fmt.Errorf("marshal %T: %w", req, err)
	}
	if err := s.tr.SendMessage(ctx, req.MessageType(), payload); err != nil {
		return fmt.Errorf("send %T: %w", req, err)
	}

	frame, err := s.tr.ReceiveMessage(ctx, nil)
	if err != nil {
		return fmt.Errorf("receive response to %T: %w", req, err)
	}
	if frame.Type != resp.MessageType() {
		return fmt.Errorf("%w: got %v, want %v", ErrWrongMessageType, frame.Type, resp.MessageType())
	}
	return resp.Unmarshal(frame.Payload)
}

// Transaction is transact's exported counterpart for commands that expect
// a typed response other than the fixed Hello/Connect/Disconnect exchange
// (e.g. a future RPC-style service call). It drains asynchronous traffic
// first, per spec.md §4.5.
func (s *Session) Transaction(ctx context.Context, req api.Message, resp api.Message) error {
	if !s.connected {
		return ErrNotConnected
	}
	if err := s.ProcessIncoming(ctx); err != nil {
		return err
	}
	return s.transact(ctx, req, resp)
}

// sendCommand is the common path for every single-target <Kind>Command:
// drain asynchronous traffic, then fire-and-forget the request (ESPHome's
// command requests have no response frame).
func (s *Session) sendCommand(ctx context.Context, req api.Message) error {
	if !s.connected {
		return ErrNotConnected
	}
	if err := s.ProcessIncoming(ctx); err != nil {
		return err
	}
	payload, err := req.Marshal()
	if err != nil {
		return fmt.Errorf("marshal %T: %w", req, err)
	}
	if err := s.tr.SendMessage(ctx, req.MessageType(), payload); err != nil {
		return fmt.Errorf("send %T: %w", req, err)
	}
	return nil
}
