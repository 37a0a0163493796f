package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/esphome-go/api/api"
)

// Run drains incoming traffic and sends keepalive pings until ctx is
// cancelled or the device requests shutdown (spec.md §4.5 "Run loop", an
// ESPHome behavior the distilled spec names but leaves unspecified —
// supplemented here the way client_routing.Router pairs two goroutines
// with errgroup.WithContext). transport.Transport forbids concurrent use
// (transport.go: "callers must not invoke methods on a Transport
// concurrently"), so only pumpLoop ever touches s.tr; keepaliveTicker just
// signals it on a timer instead of sending directly. ErrDeviceRequestShutdown
// and a cancelled ctx both return nil; any other error is returned as-is.
func (s *Session) Run(ctx context.Context) error {
	if !s.connected {
		return ErrNotConnected
	}

	group, gctx := errgroup.WithContext(ctx)
	pingRequested := make(chan struct{}, 1)

	group.Go(func() error {
		return s.pumpLoop(gctx, pingRequested)
	})
	group.Go(func() error {
		return s.keepaliveTicker(gctx, pingRequested)
	})

	err := group.Wait()
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, ErrDeviceRequestShutdown) {
		return nil
	}
	return err
}

// pumpLoop is the only goroutine that ever calls a method on s.tr: it
// drains incoming frames on its own ticker and, when keepaliveTicker
// signals pingRequested, sends the keepalive ping itself, so every
// SendMessage call is serialized onto this one goroutine.
func (s *Session) pumpLoop(ctx context.Context, pingRequested <-chan struct{}) error {
	ticker := time.NewTicker(20 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-pingRequested:
			if err := s.tr.SendMessage(ctx, api.MessageTypePingRequest, nil); err != nil {
				return fmt.Errorf("send keepalive ping: %w", err)
			}
		case <-ticker.C:
			if err := s.ProcessIncoming(ctx); err != nil {
				return err
			}
		}
	}
}

// keepaliveTicker requests a keepalive ping on interval by signalling
// pingRequested rather than sending on the transport itself. A full channel
// means a ping request is already pending, so a missed tick is dropped
// rather than queued.
func (s *Session) keepaliveTicker(ctx context.Context, pingRequested chan<- struct{}) error {
	interval := s.cfg.PingInterval
	if interval <= 0 {
		<-ctx.Done()
		return ctx.Err()
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			select {
			case pingRequested <- struct{}{}:
			default:
			}
		}
	}
}
