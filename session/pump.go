package session

import (
	"context"
	"fmt"
	"time"

	"github.com/esphome-go/api/api"
	"github.com/esphome-go/api/entity"
	"github.com/esphome-go/api/transport"
)

// ProcessIncoming drains every frame the peer has already sent, dispatching
// each to its handler, until try_read_byte reports no byte immediately
// available (spec.md §4.5 "Asynchronous pump"). All user-facing commands
// call this first so server-initiated traffic cannot stall behind a
// pending transaction.
func (s *Session) ProcessIncoming(ctx context.Context) error {
	for {
		first, ok := s.tr.TryReadByte()
		if !ok {
			return nil
		}

		frame, err := s.tr.ReceiveMessage(ctx, &first)
		if err != nil {
			return fmt.Errorf("process_incoming: receive: %w", err)
		}
		if err := s.dispatchAsync(ctx, frame); err != nil {
			return err
		}
	}
}

func (s *Session) dispatchAsync(ctx context.Context, frame transport.Frame) error {
	switch frame.Type {
	case api.MessageTypeDisconnectRequest:
		if err := s.tr.SendMessage(ctx, api.MessageTypeDisconnectResponse, nil); err != nil {
			return fmt.Errorf("send disconnect response: %w", err)
		}
		_ = s.tr.Disconnect()
		s.connected = false
		s.logger.Debug().Msg("device requested shutdown")
		return ErrDeviceRequestShutdown

	case api.MessageTypePingRequest:
		if err := s.tr.SendMessage(ctx, api.MessageTypePingResponse, nil); err != nil {
			return fmt.Errorf("send ping response: %w", err)
		}
		return nil

	case api.MessageTypePingResponse:
		s.lastPing = time.Now()
		return nil

	case api.MessageTypeGetTimeRequest:
		resp := &api.GetTimeResponse{EpochSeconds: uint32(time.Now().Unix())}
		payload, err := resp.Marshal()
		if err != nil {
			return fmt.Errorf("marshal get time response: %w", err)
		}
		if err := s.tr.SendMessage(ctx, api.MessageTypeGetTimeResponse, payload); err != nil {
			return fmt.Errorf("send get time response: %w", err)
		}
		return nil

	case api.MessageTypeSubscribeLogsResponse:
		return s.dispatchLog(ctx, frame)

	case api.MessageTypeCameraImageResponse:
		return s.dispatchCameraImage(ctx, frame)

	default:
		if kind, ok := entity.KindForStateType(frame.Type); ok {
			return s.dispatchState(ctx, kind, frame)
		}
		return fmt.Errorf("%w: %v", ErrUnknownIncomingMessageType, frame.Type)
	}
}

func (s *Session) dispatchLog(ctx context.Context, frame transport.Frame) error {
	if s.logSink == nil {
		return nil
	}
	var m api.SubscribeLogsResponse
	if err := m.Unmarshal(frame.Payload); err != nil {
		return fmt.Errorf("decode subscribe logs response: %w", err)
	}
	level := LogLevel(m.Level)
	if !level.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownLogLevel, m.Level)
	}

	record := LogRecord{Level: level, Message: m.Message, SendFailed: m.SendFailed}
	select {
	case s.logSink <- record:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", ErrLogChannelSend, ctx.Err())
	}
}

func (s *Session) pushState(ctx context.Context, update entity.StateUpdate) error {
	if s.stateSink == nil {
		return nil
	}
	select {
	case s.stateSink <- update:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", ErrStateUpdateChannelSend, ctx.Err())
	}
}
