package entity

import (
	"fmt"

	"github.com/esphome-go/api/api"
)

// EntityCatalogue holds one Table per entity kind plus the user-service
// table, populated by fetch_entities_and_services and consulted by the
// pump when routing a <Kind>StateResponse (spec.md §4.5, §4.6).
type EntityCatalogue struct {
	BinarySensor      Table[api.ListEntitiesBinarySensorResponse]
	Cover             Table[api.ListEntitiesCoverResponse]
	Fan               Table[api.ListEntitiesFanResponse]
	Light             Table[api.ListEntitiesLightResponse]
	Sensor            Table[api.ListEntitiesSensorResponse]
	Switch            Table[api.ListEntitiesSwitchResponse]
	TextSensor        Table[api.ListEntitiesTextSensorResponse]
	Climate           Table[api.ListEntitiesClimateResponse]
	Number            Table[api.ListEntitiesNumberResponse]
	Select            Table[api.ListEntitiesSelectResponse]
	Siren             Table[api.ListEntitiesSirenResponse]
	Lock              Table[api.ListEntitiesLockResponse]
	Button            Table[api.ListEntitiesButtonResponse]
	MediaPlayer       Table[api.ListEntitiesMediaPlayerResponse]
	AlarmControlPanel Table[api.ListEntitiesAlarmControlPanelResponse]
	Text              Table[api.ListEntitiesTextResponse]
	Date              Table[api.ListEntitiesDateResponse]
	Time              Table[api.ListEntitiesTimeResponse]
	DateTime          Table[api.ListEntitiesDateTimeResponse]
	Valve             Table[api.ListEntitiesValveResponse]
	Update            Table[api.ListEntitiesUpdateResponse]
	Event             Table[api.ListEntitiesEventResponse]
	Camera            Table[api.ListEntitiesCameraResponse]

	Services ServiceTable
}

// New returns an empty catalogue, ready for fetch_entities_and_services to
// populate.
func New() *EntityCatalogue { return &EntityCatalogue{} }

// InsertListEntities routes a decoded ListEntities<Kind>Response (or
// ListEntitiesServicesResponse) into the matching table, by concrete Go
// type. Any other message is ErrUnknownListEntitiesType — a fatal error
// for the discovery phase per spec.md §4.5.
func (c *EntityCatalogue) InsertListEntities(msg api.Message) error {
	switch m := msg.(type) {
	case *api.ListEntitiesBinarySensorResponse:
		return c.BinarySensor.Insert(*m)
	case *api.ListEntitiesCoverResponse:
		return c.Cover.Insert(*m)
	case *api.ListEntitiesFanResponse:
		return c.Fan.Insert(*m)
	case *api.ListEntitiesLightResponse:
		return c.Light.Insert(*m)
	case *api.ListEntitiesSensorResponse:
		return c.Sensor.Insert(*m)
	case *api.ListEntitiesSwitchResponse:
		return c.Switch.Insert(*m)
	case *api.ListEntitiesTextSensorResponse:
		return c.TextSensor.Insert(*m)
	case *api.ListEntitiesClimateResponse:
		return c.Climate.Insert(*m)
	case *api.ListEntitiesNumberResponse:
		return c.Number.Insert(*m)
	case *api.ListEntitiesSelectResponse:
		return c.Select.Insert(*m)
	case *api.ListEntitiesSirenResponse:
		return c.Siren.Insert(*m)
	case *api.ListEntitiesLockResponse:
		return c.Lock.Insert(*m)
	case *api.ListEntitiesButtonResponse:
		return c.Button.Insert(*m)
	case *api.ListEntitiesMediaPlayerResponse:
		return c.MediaPlayer.Insert(*m)
	case *api.ListEntitiesAlarmControlPanelResponse:
		return c.AlarmControlPanel.Insert(*m)
	case *api.ListEntitiesTextResponse:
		return c.Text.Insert(*m)
	case *api.ListEntitiesDateResponse:
		return c.Date.Insert(*m)
	case *api.ListEntitiesTimeResponse:
		return c.Time.Insert(*m)
	case *api.ListEntitiesDateTimeResponse:
		return c.DateTime.Insert(*m)
	case *api.ListEntitiesValveResponse:
		return c.Valve.Insert(*m)
	case *api.ListEntitiesUpdateResponse:
		return c.Update.Insert(*m)
	case *api.ListEntitiesEventResponse:
		return c.Event.Insert(*m)
	case *api.ListEntitiesCameraResponse:
		return c.Camera.Insert(*m)
	case *api.ListEntitiesServicesResponse:
		return c.Services.Insert(*m)
	default:
		return fmt.Errorf("%w: %T", ErrUnknownListEntitiesType, msg)
	}
}

// KeysForKind returns every declared key for k, including Config and
// Diagnostic entities.
func (c *EntityCatalogue) KeysForKind(k Kind) []uint32 {
	switch k {
	case KindBinarySensor:
		return c.BinarySensor.AllKeys()
	case KindCover:
		return c.Cover.AllKeys()
	case KindFan:
		return c.Fan.AllKeys()
	case KindLight:
		return c.Light.AllKeys()
	case KindSensor:
		return c.Sensor.AllKeys()
	case KindSwitch:
		return c.Switch.AllKeys()
	case KindTextSensor:
		return c.TextSensor.AllKeys()
	case KindClimate:
		return c.Climate.AllKeys()
	case KindNumber:
		return c.Number.AllKeys()
	case KindSelect:
		return c.Select.AllKeys()
	case KindSiren:
		return c.Siren.AllKeys()
	case KindLock:
		return c.Lock.AllKeys()
	case KindButton:
		return c.Button.AllKeys()
	case KindMediaPlayer:
		return c.MediaPlayer.AllKeys()
	case KindAlarmControlPanel:
		return c.AlarmControlPanel.AllKeys()
	case KindText:
		return c.Text.AllKeys()
	case KindDate:
		return c.Date.AllKeys()
	case KindTime:
		return c.Time.AllKeys()
	case KindDateTime:
		return c.DateTime.AllKeys()
	case KindValve:
		return c.Valve.AllKeys()
	case KindUpdate:
		return c.Update.AllKeys()
	case KindEvent:
		return c.Event.AllKeys()
	case KindCamera:
		return c.Camera.AllKeys()
	default:
		return nil
	}
}

// PrimaryKeysForKind returns k's non-Config, non-Diagnostic keys — the
// target set for a "global broadcast" command (spec.md §4.5).
func (c *EntityCatalogue) PrimaryKeysForKind(k Kind) []uint32 {
	switch k {
	case KindBinarySensor:
		return c.BinarySensor.PrimaryKeys()
	case KindCover:
		return c.Cover.PrimaryKeys()
	case KindFan:
		return c.Fan.PrimaryKeys()
	case KindLight:
		return c.Light.PrimaryKeys()
	case KindSensor:
		return c.Sensor.PrimaryKeys()
	case KindSwitch:
		return c.Switch.PrimaryKeys()
	case KindTextSensor:
		return c.TextSensor.PrimaryKeys()
	case KindClimate:
		return c.Climate.PrimaryKeys()
	case KindNumber:
		return c.Number.PrimaryKeys()
	case KindSelect:
		return c.Select.PrimaryKeys()
	case KindSiren:
		return c.Siren.PrimaryKeys()
	case KindLock:
		return c.Lock.PrimaryKeys()
	case KindButton:
		return c.Button.PrimaryKeys()
	case KindMediaPlayer:
		return c.MediaPlayer.PrimaryKeys()
	case KindAlarmControlPanel:
		return c.AlarmControlPanel.PrimaryKeys()
	case KindText:
		return c.Text.PrimaryKeys()
	case KindDate:
		return c.Date.PrimaryKeys()
	case KindTime:
		return c.Time.PrimaryKeys()
	case KindDateTime:
		return c.DateTime.PrimaryKeys()
	case KindValve:
		return c.Valve.PrimaryKeys()
	case KindUpdate:
		return c.Update.PrimaryKeys()
	case KindEvent:
		return c.Event.PrimaryKeys()
	case KindCamera:
		return c.Camera.PrimaryKeys()
	default:
		return nil
	}
}
