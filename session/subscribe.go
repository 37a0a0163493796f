package session

import (
	"context"
	"fmt"

	"github.com/esphome-go/api/api"
	"github.com/esphome-go/api/entity"
)

// SubscribeStates requests the device begin pushing state updates and
// returns the receive side of a buffered channel that ProcessIncoming
// feeds (spec.md §4.5 "subscribe_states"). Calling it twice replaces the
// previous sink; the old channel is never closed, since a consumer may
// still be draining it.
func (s *Session) SubscribeStates(ctx context.Context, buffer int) (<-chan entity.StateUpdate, error) {
	if !s.connected {
		return nil, ErrNotConnected
	}
	sink := make(chan entity.StateUpdate, buffer)
	s.stateSink = sink

	if err := s.tr.SendMessage(ctx, api.MessageTypeSubscribeStatesRequest, nil); err != nil {
		return nil, fmt.Errorf("send subscribe states request: %w", err)
	}
	return sink, nil
}

// SubscribeLogs requests the device begin streaming log lines at level and
// returns the receive side of a buffered channel (spec.md §4.5
// "subscribe_logs").
func (s *Session) SubscribeLogs(ctx context.Context, level LogLevel, dumpConfig bool, buffer int) (<-chan LogRecord, error) {
	if !s.connected {
		return nil, ErrNotConnected
	}
	if !level.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLogLevel, level)
	}

	sink := make(chan LogRecord, buffer)
	s.logSink = sink

	req := &api.SubscribeLogsRequest{Level: int32(level), DumpConfig: dumpConfig}
	payload, err := req.Marshal()
	if err != nil {
		return nil, fmt.Errorf("marshal subscribe logs request: %w", err)
	}
	if err := s.tr.SendMessage(ctx, api.MessageTypeSubscribeLogsRequest, payload); err != nil {
		return nil, fmt.Errorf("send subscribe logs request: %w", err)
	}
	return sink, nil
}
