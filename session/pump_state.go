package session

import (
	"context"
	"fmt"

	"github.com/esphome-go/api/api"
	"github.com/esphome-go/api/entity"
	"github.com/esphome-go/api/transport"
)

// dispatchState decodes a <Kind>StateResponse frame, looks the entity up in
// its kind's catalogue table (a miss is fatal — spec.md §4.5: "missing key
// is a fatal error"), and pushes a StateUpdate to the sink. One case per
// stateful kind; Button and Camera never reach here since their Kind.StateType
// is 0 (entity.KindForStateType never maps to them).
func (s *Session) dispatchState(ctx context.Context, kind entity.Kind, frame transport.Frame) error {
	switch kind {
	case entity.KindBinarySensor:
		var m api.BinarySensorStateResponse
		if err := m.Unmarshal(frame.Payload); err != nil {
			return fmt.Errorf("decode binary_sensor state: %w", err)
		}
		d, ok := s.catalogue.BinarySensorFromKey(m.Key)
		if !ok {
			return unknownEntityErr(kind, m.Key)
		}
		return s.pushState(ctx, entity.StateUpdate{Kind: kind, Key: m.Key, ObjectID: d.ObjectID, State: &m})

	case entity.KindCover:
		var m api.CoverStateResponse
		if err := m.Unmarshal(frame.Payload); err != nil {
			return fmt.Errorf("decode cover state: %w", err)
		}
		d, ok := s.catalogue.CoverFromKey(m.Key)
		if !ok {
			return unknownEntityErr(kind, m.Key)
		}
		return s.pushState(ctx, entity.StateUpdate{Kind: kind, Key: m.Key, ObjectID: d.ObjectID, State: &m})

	case entity.KindFan:
		var m api.FanStateResponse
		if err := m.Unmarshal(frame.Payload); err != nil {
			return fmt.Errorf("decode fan state: %w", err)
		}
		d, ok := s.catalogue.FanFromKey(m.Key)
		if !ok {
			return unknownEntityErr(kind, m.Key)
		}
		return s.pushState(ctx, entity.StateUpdate{Kind: kind, Key: m.Key, ObjectID: d.ObjectID, State: &m})

	case entity.KindLight:
		var m api.LightStateResponse
		if err := m.Unmarshal(frame.Payload); err != nil {
			return fmt.Errorf("decode light state: %w", err)
		}
		d, ok := s.catalogue.LightFromKey(m.Key)
		if !ok {
			return unknownEntityErr(kind, m.Key)
		}
		return s.pushState(ctx, entity.StateUpdate{Kind: kind, Key: m.Key, ObjectID: d.ObjectID, State: &m})

	case entity.KindSensor:
		var m api.SensorStateResponse
		if err := m.Unmarshal(frame.Payload); err != nil {
			return fmt.Errorf("decode sensor state: %w", err)
		}
		d, ok := s.catalogue.SensorFromKey(m.Key)
		if !ok {
			return unknownEntityErr(kind, m.Key)
		}
		return s.pushState(ctx, entity.StateUpdate{Kind: kind, Key: m.Key, ObjectID: d.ObjectID, State: &m})

	case entity.KindSwitch:
		var m api.SwitchStateResponse
		if err := m.Unmarshal(frame.Payload); err != nil {
			return fmt.Errorf("decode switch state: %w", err)
		}
		d, ok := s.catalogue.SwitchFromKey(m.Key)
		if !ok {
			return unknownEntityErr(kind, m.Key)
		}
		return s.pushState(ctx, entity.StateUpdate{Kind: kind, Key: m.Key, ObjectID: d.ObjectID, State: &m})

	case entity.KindTextSensor:
		var m api.TextSensorStateResponse
		if err := m.Unmarshal(frame.Payload); err != nil {
			return fmt.Errorf("decode text_sensor state: %w", err)
		}
		d, ok := s.catalogue.TextSensorFromKey(m.Key)
		if !ok {
			return unknownEntityErr(kind, m.Key)
		}
		return s.pushState(ctx, entity.StateUpdate{Kind: kind, Key: m.Key, ObjectID: d.ObjectID, State: &m})

	case entity.KindClimate:
		var m api.ClimateStateResponse
		if err := m.Unmarshal(frame.Payload); err != nil {
			return fmt.Errorf("decode climate state: %w", err)
		}
		d, ok := s.catalogue.ClimateFromKey(m.Key)
		if !ok {
			return unknownEntityErr(kind, m.Key)
		}
		return s.pushState(ctx, entity.StateUpdate{Kind: kind, Key: m.Key, ObjectID: d.ObjectID, State: &m})

	case entity.KindNumber:
		var m api.NumberStateResponse
		if err := m.Unmarshal(frame.Payload); err != nil {
			return fmt.Errorf("decode number state: %w", err)
		}
		d, ok := s.catalogue.NumberFromKey(m.Key)
		if !ok {
			return unknownEntityErr(kind, m.Key)
		}
		return s.pushState(ctx, entity.StateUpdate{Kind: kind, Key: m.Key, ObjectID: d.ObjectID, State: &m})

	case entity.KindSelect:
		var m api.SelectStateResponse
		if err := m.Unmarshal(frame.Payload); err != nil {
			return fmt.Errorf("decode select state: %w", err)
		}
		d, ok := s.catalogue.SelectFromKey(m.Key)
		if !ok {
			return unknownEntityErr(kind, m.Key)
		}
		return s.pushState(ctx, entity.StateUpdate{Kind: kind, Key: m.Key, ObjectID: d.ObjectID, State: &m})

	case entity.KindSiren:
		var m api.SirenStateResponse
		if err := m.Unmarshal(frame.Payload); err != nil {
			return fmt.Errorf("decode siren state: %w", err)
		}
		d, ok := s.catalogue.SirenFromKey(m.Key)
		if !ok {
			return unknownEntityErr(kind, m.Key)
		}
		return s.pushState(ctx, entity.StateUpdate{Kind: kind, Key: m.Key, ObjectID: d.ObjectID, State: &m})

	case entity.KindLock:
		var m api.LockStateResponse
		if err := m.Unmarshal(frame.Payload); err != nil {
			return fmt.Errorf("decode lock state: %w", err)
		}
		d, ok := s.catalogue.LockFromKey(m.Key)
		if !ok {
			return unknownEntityErr(kind, m.Key)
		}
		return s.pushState(ctx, entity.StateUpdate{Kind: kind, Key: m.Key, ObjectID: d.ObjectID, State: &m})

	case entity.KindMediaPlayer:
		var m api.MediaPlayerStateResponse
		if err := m.Unmarshal(frame.Payload); err != nil {
			return fmt.Errorf("decode media_player state: %w", err)
		}
		d, ok := s.catalogue.MediaPlayerFromKey(m.Key)
		if !ok {
			return unknownEntityErr(kind, m.Key)
		}
		return s.pushState(ctx, entity.StateUpdate{Kind: kind, Key: m.Key, ObjectID: d.ObjectID, State: &m})

	case entity.KindAlarmControlPanel:
		var m api.AlarmControlPanelStateResponse
		if err := m.Unmarshal(frame.Payload); err != nil {
			return fmt.Errorf("decode alarm_control_panel state: %w", err)
		}
		d, ok := s.catalogue.AlarmControlPanelFromKey(m.Key)
		if !ok {
			return unknownEntityErr(kind, m.Key)
		}
		return s.pushState(ctx, entity.StateUpdate{Kind: kind, Key: m.Key, ObjectID: d.ObjectID, State: &m})

	case entity.KindText:
		var m api.TextStateResponse
		if err := m.Unmarshal(frame.Payload); err != nil {
			return fmt.Errorf("decode text state: %w", err)
		}
		d, ok := s.catalogue.TextFromKey(m.Key)
		if !ok {
			return unknownEntityErr(kind, m.Key)
		}
		return s.pushState(ctx, entity.StateUpdate{Kind: kind, Key: m.Key, ObjectID: d.ObjectID, State: &m})

	case entity.KindDate:
		var m api.DateStateResponse
		if err := m.Unmarshal(frame.Payload); err != nil {
			return fmt.Errorf("decode date state: %w", err)
		}
		d, ok := s.catalogue.DateFromKey(m.Key)
		if !ok {
			return unknownEntityErr(kind, m.Key)
		}
		return s.pushState(ctx, entity.StateUpdate{Kind: kind, Key: m.Key, ObjectID: d.ObjectID, State: &m})

	case entity.KindTime:
		var m api.TimeStateResponse
		if err := m.Unmarshal(frame.Payload); err != nil {
			return fmt.Errorf("decode time state: %w", err)
		}
		d, ok := s.catalogue.TimeFromKey(m.Key)
		if !ok {
			return unknownEntityErr(kind, m.Key)
		}
		return s.pushState(ctx, entity.StateUpdate{Kind: kind, Key: m.Key, ObjectID: d.ObjectID, State: &m})

	case entity.KindDateTime:
		var m api.DateTimeStateResponse
		if err := m.Unmarshal(frame.Payload); err != nil {
			return fmt.Errorf("decode datetime state: %w", err)
		}
		d, ok := s.catalogue.DateTimeFromKey(m.Key)
		if !ok {
			return unknownEntityErr(kind, m.Key)
		}
		return s.pushState(ctx, entity.StateUpdate{Kind: kind, Key: m.Key, ObjectID: d.ObjectID, State: &m})

	case entity.KindValve:
		var m api.ValveStateResponse
		if err := m.Unmarshal(frame.Payload); err != nil {
			return fmt.Errorf("decode valve state: %w", err)
		}
		d, ok := s.catalogue.ValveFromKey(m.Key)
		if !ok {
			return unknownEntityErr(kind, m.Key)
		}
		return s.pushState(ctx, entity.StateUpdate{Kind: kind, Key: m.Key, ObjectID: d.ObjectID, State: &m})

	case entity.KindUpdate:
		var m api.UpdateStateResponse
		if err := m.Unmarshal(frame.Payload); err != nil {
			return fmt.Errorf("decode update state: %w", err)
		}
		d, ok := s.catalogue.UpdateFromKey(m.Key)
		if !ok {
			return unknownEntityErr(kind, m.Key)
		}
		return s.pushState(ctx, entity.StateUpdate{Kind: kind, Key: m.Key, ObjectID: d.ObjectID, State: &m})

	case entity.KindEvent:
		var m api.EventResponse
		if err := m.Unmarshal(frame.Payload); err != nil {
			return fmt.Errorf("decode event: %w", err)
		}
		d, ok := s.catalogue.EventFromKey(m.Key)
		if !ok {
			return unknownEntityErr(kind, m.Key)
		}
		return s.pushState(ctx, entity.StateUpdate{Kind: kind, Key: m.Key, ObjectID: d.ObjectID, State: &m})

	default:
		return unknownEntityErr(kind, 0)
	}
}

func unknownEntityErr(kind entity.Kind, key uint32) error {
	return fmt.Errorf("%w: kind=%s key=%d", ErrStateUpdateForUnknownEntity, kind, key)
}
