package session

import (
	"context"
	"fmt"

	"github.com/esphome-go/api/api"
	"github.com/esphome-go/api/transport"
)

// CameraImage is one frame (or one chunk of a larger frame) of a camera's
// JPEG stream (SPEC_FULL.md §11/§12: Camera is list+image-request rather
// than list+state, since it has no push state of its own).
type CameraImage struct {
	Key  uint32
	Data []byte
	Done bool
}

// RequestCameraImage asks a single camera entity for an image. single
// requests one frame; stream requests a continuous feed until another
// RequestCameraImage call turns it off (spec.md's wire semantics for
// CameraImageRequest).
func (s *Session) RequestCameraImage(ctx context.Context, key uint32, single, stream bool) error {
	return s.sendCommand(ctx, &api.CameraImageRequest{Key: key, Single: single, Stream: stream})
}

// SubscribeCameraImages returns the receive side of a buffered channel fed
// by CameraImageResponse frames. Calling it twice replaces the previous
// sink.
func (s *Session) SubscribeCameraImages(buffer int) <-chan CameraImage {
	sink := make(chan CameraImage, buffer)
	s.cameraSink = sink
	return sink
}

func (s *Session) dispatchCameraImage(ctx context.Context, frame transport.Frame) error {
	if s.cameraSink == nil {
		return nil
	}
	var m api.CameraImageResponse
	if err := m.Unmarshal(frame.Payload); err != nil {
		return fmt.Errorf("decode camera image response: %w", err)
	}

	select {
	case s.cameraSink <- CameraImage{Key: m.Key, Data: m.Data, Done: m.Done}:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("camera image channel send: %w", ctx.Err())
	}
}
