package session

import (
	"context"
	"fmt"

	"github.com/esphome-go/api/api"
	"github.com/esphome-go/api/transport"
)

// FetchEntitiesAndServices drains pending traffic, sends ListEntitiesRequest,
// and reads frames until ListEntitiesDoneResponse, routing each
// ListEntities<Kind>Response or ListEntitiesServicesResponse into the
// catalogue. Unknown list-entities message types are fatal for this phase
// (spec.md §4.5 "Discovery").
func (s *Session) FetchEntitiesAndServices(ctx context.Context) error {
	if err := s.ProcessIncoming(ctx); err != nil {
		return err
	}
	if err := s.tr.SendMessage(ctx, api.MessageTypeListEntitiesRequest, nil); err != nil {
		return fmt.Errorf("send list entities request: %w", err)
	}

	for {
		frame, err := s.tr.ReceiveMessage(ctx, nil)
		if err != nil {
			return fmt.Errorf("receive list-entities frame: %w", err)
		}
		if frame.Type == api.MessageTypeListEntitiesDoneResponse {
			return nil
		}

		msg, err := decodeListEntitiesFrame(frame)
		if err != nil {
			return err
		}
		if err := s.catalogue.InsertListEntities(msg); err != nil {
			return fmt.Errorf("insert list-entities frame: %w", err)
		}
	}
}

// decodeListEntitiesFrame maps a frame's wire type to its concrete Go type,
// by hand — the Go realization of the "schema-table expansion" design note
// (spec.md §9): there is no descriptor registry to drive this generically,
// so the switch enumerates the 23 list-entities responses plus services.
func decodeListEntitiesFrame(frame transport.Frame) (api.Message, error) {
	var msg api.Message
	switch frame.Type {
	case api.MessageTypeListEntitiesBinarySensorResponse:
		msg = &api.ListEntitiesBinarySensorResponse{}
	case api.MessageTypeListEntitiesCoverResponse:
		msg = &api.ListEntitiesCoverResponse{}
	case api.MessageTypeListEntitiesFanResponse:
		msg = &api.ListEntitiesFanResponse{}
	case api.MessageTypeListEntitiesLightResponse:
		msg = &api.ListEntitiesLightResponse{}
	case api.MessageTypeListEntitiesSensorResponse:
		msg = &api.ListEntitiesSensorResponse{}
	case api.MessageTypeListEntitiesSwitchResponse:
		msg = &api.ListEntitiesSwitchResponse{}
	case api.MessageTypeListEntitiesTextSensorResponse:
		msg = &api.ListEntitiesTextSensorResponse{}
	case api.MessageTypeListEntitiesClimateResponse:
		msg = &api.ListEntitiesClimateResponse{}
	case api.MessageTypeListEntitiesNumberResponse:
		msg = &api.ListEntitiesNumberResponse{}
	case api.MessageTypeListEntitiesSelectResponse:
		msg = &api.ListEntitiesSelectResponse{}
	case api.MessageTypeListEntitiesSirenResponse:
		msg = &api.ListEntitiesSirenResponse{}
	case api.MessageTypeListEntitiesLockResponse:
		msg = &api.ListEntitiesLockResponse{}
	case api.MessageTypeListEntitiesButtonResponse:
		msg = &api.ListEntitiesButtonResponse{}
	case api.MessageTypeListEntitiesMediaPlayerResponse:
		msg = &api.ListEntitiesMediaPlayerResponse{}
	case api.MessageTypeListEntitiesAlarmControlPanelResponse:
		msg = &api.ListEntitiesAlarmControlPanelResponse{}
	case api.MessageTypeListEntitiesTextResponse:
		msg = &api.ListEntitiesTextResponse{}
	case api.MessageTypeListEntitiesDateResponse:
		msg = &api.ListEntitiesDateResponse{}
	case api.MessageTypeListEntitiesTimeResponse:
		msg = &api.ListEntitiesTimeResponse{}
	case api.MessageTypeListEntitiesDateTimeResponse:
		msg = &api.ListEntitiesDateTimeResponse{}
	case api.MessageTypeListEntitiesValveResponse:
		msg = &api.ListEntitiesValveResponse{}
	case api.MessageTypeListEntitiesUpdateResponse:
		msg = &api.ListEntitiesUpdateResponse{}
	case api.MessageTypeListEntitiesEventResponse:
		msg = &api.ListEntitiesEventResponse{}
	case api.MessageTypeListEntitiesCameraResponse:
		msg = &api.ListEntitiesCameraResponse{}
	case api.MessageTypeListEntitiesServicesResponse:
		msg = &api.ListEntitiesServicesResponse{}
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownListEntitiesResponse, frame.Type)
	}
	if err := msg.Unmarshal(frame.Payload); err != nil {
		return nil, fmt.Errorf("decode %T: %w", msg, err)
	}
	return msg, nil
}
