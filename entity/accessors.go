package entity

import "github.com/esphome-go/api/api"

// The remainder of this file is per-kind wrappers around each Table's
// generic FromName/KeyFromName/FromKey, one block per kind (spec.md §4.6:
// get_<kind>_from_name, get_<kind>_key_from_name, get_<kind>_from_key).
// KeysForKind/PrimaryKeysForKind in catalogue.go cover get_all_<kind>_keys
// and get_primary_<kind>_keys generically, since those two don't need a
// typed return value.

func (c *EntityCatalogue) BinarySensorFromName(objectID string) (api.ListEntitiesBinarySensorResponse, bool) {
	return c.BinarySensor.FromName(objectID)
}
func (c *EntityCatalogue) BinarySensorKeyFromName(objectID string) (uint32, bool) {
	return c.BinarySensor.KeyFromName(objectID)
}
func (c *EntityCatalogue) BinarySensorFromKey(key uint32) (api.ListEntitiesBinarySensorResponse, bool) {
	return c.BinarySensor.FromKey(key)
}

func (c *EntityCatalogue) CoverFromName(objectID string) (api.ListEntitiesCoverResponse, bool) {
	return c.Cover.FromName(objectID)
}
func (c *EntityCatalogue) CoverKeyFromName(objectID string) (uint32, bool) {
	return c.Cover.KeyFromName(objectID)
}
func (c *EntityCatalogue) CoverFromKey(key uint32) (api.ListEntitiesCoverResponse, bool) {
	return c.Cover.FromKey(key)
}

func (c *EntityCatalogue) FanFromName(objectID string) (api.ListEntitiesFanResponse, bool) {
	return c.Fan.FromName(objectID)
}
func (c *EntityCatalogue) FanKeyFromName(objectID string) (uint32, bool) {
	return c.Fan.KeyFromName(objectID)
}
func (c *EntityCatalogue) FanFromKey(key uint32) (api.ListEntitiesFanResponse, bool) {
	return c.Fan.FromKey(key)
}

func (c *EntityCatalogue) LightFromName(objectID string) (api.ListEntitiesLightResponse, bool) {
	return c.Light.FromName(objectID)
}
func (c *EntityCatalogue) LightKeyFromName(objectID string) (uint32, bool) {
	return c.Light.KeyFromName(objectID)
}
func (c *EntityCatalogue) LightFromKey(key uint32) (api.ListEntitiesLightResponse, bool) {
	return c.Light.FromKey(key)
}

func (c *EntityCatalogue) SensorFromName(objectID string) (api.ListEntitiesSensorResponse, bool) {
	return c.Sensor.FromName(objectID)
}
func (c *EntityCatalogue) SensorKeyFromName(objectID string) (uint32, bool) {
	return c.Sensor.KeyFromName(objectID)
}
func (c *EntityCatalogue) SensorFromKey(key uint32) (api.ListEntitiesSensorResponse, bool) {
	return c.Sensor.FromKey(key)
}

func (c *EntityCatalogue) SwitchFromName(objectID string) (api.ListEntitiesSwitchResponse, bool) {
	return c.Switch.FromName(objectID)
}
func (c *EntityCatalogue) SwitchKeyFromName(objectID string) (uint32, bool) {
	return c.Switch.KeyFromName(objectID)
}
func (c *EntityCatalogue) SwitchFromKey(key uint32) (api.ListEntitiesSwitchResponse, bool) {
	return c.Switch.FromKey(key)
}

func (c *EntityCatalogue) TextSensorFromName(objectID string) (api.ListEntitiesTextSensorResponse, bool) {
	return c.TextSensor.FromName(objectID)
}
func (c *EntityCatalogue) TextSensorKeyFromName(objectID string) (uint32, bool) {
	return c.TextSensor.KeyFromName(objectID)
}
func (c *EntityCatalogue) TextSensorFromKey(key uint32) (api.ListEntitiesTextSensorResponse, bool) {
	return c.TextSensor.FromKey(key)
}

func (c *EntityCatalogue) ClimateFromName(objectID string) (api.ListEntitiesClimateResponse, bool) {
	return c.Climate.FromName(objectID)
}
func (c *EntityCatalogue) ClimateKeyFromName(objectID string) (uint32, bool) {
	return c.Climate.KeyFromName(objectID)
}
func (c *EntityCatalogue) ClimateFromKey(key uint32) (api.ListEntitiesClimateResponse, bool) {
	return c.Climate.FromKey(key)
}

func (c *EntityCatalogue) NumberFromName(objectID string) (api.ListEntitiesNumberResponse, bool) {
	return c.Number.FromName(objectID)
}
func (c *EntityCatalogue) NumberKeyFromName(objectID string) (uint32, bool) {
	return c.Number.KeyFromName(objectID)
}
func (c *EntityCatalogue) NumberFromKey(key uint32) (api.ListEntitiesNumberResponse, bool) {
	return c.Number.FromKey(key)
}

func (c *EntityCatalogue) SelectFromName(objectID string) (api.ListEntitiesSelectResponse, bool) {
	return c.Select.FromName(objectID)
}
func (c *EntityCatalogue) SelectKeyFromName(objectID string) (uint32, bool) {
	return c.Select.KeyFromName(objectID)
}
func (c *EntityCatalogue) SelectFromKey(key uint32) (api.ListEntitiesSelectResponse, bool) {
	return c.Select.FromKey(key)
}

func (c *EntityCatalogue) SirenFromName(objectID string) (api.ListEntitiesSirenResponse, bool) {
	return c.Siren.FromName(objectID)
}
func (c *EntityCatalogue) SirenKeyFromName(objectID string) (uint32, bool) {
	return c.Siren.KeyFromName(objectID)
}
func (c *EntityCatalogue) SirenFromKey(key uint32) (api.ListEntitiesSirenResponse, bool) {
	return c.Siren.FromKey(key)
}

func (c *EntityCatalogue) LockFromName(objectID string) (api.ListEntitiesLockResponse, bool) {
	return c.Lock.FromName(objectID)
}
func (c *EntityCatalogue) LockKeyFromName(objectID string) (uint32, bool) {
	return c.Lock.KeyFromName(objectID)
}
func (c *EntityCatalogue) LockFromKey(key uint32) (api.ListEntitiesLockResponse, bool) {
	return c.Lock.FromKey(key)
}

func (c *EntityCatalogue) ButtonFromName(objectID string) (api.ListEntitiesButtonResponse, bool) {
	return c.Button.FromName(objectID)
}
func (c *EntityCatalogue) ButtonKeyFromName(objectID string) (uint32, bool) {
	return c.Button.KeyFromName(objectID)
}
func (c *EntityCatalogue) ButtonFromKey(key uint32) (api.ListEntitiesButtonResponse, bool) {
	return c.Button.FromKey(key)
}

func (c *EntityCatalogue) MediaPlayerFromName(objectID string) (api.ListEntitiesMediaPlayerResponse, bool) {
	return c.MediaPlayer.FromName(objectID)
}
func (c *EntityCatalogue) MediaPlayerKeyFromName(objectID string) (uint32, bool) {
	return c.MediaPlayer.KeyFromName(objectID)
}
func (c *EntityCatalogue) MediaPlayerFromKey(key uint32) (api.ListEntitiesMediaPlayerResponse, bool) {
	return c.MediaPlayer.FromKey(key)
}

func (c *EntityCatalogue) AlarmControlPanelFromName(objectID string) (api.ListEntitiesAlarmControlPanelResponse, bool) {
	return c.AlarmControlPanel.FromName(objectID)
}
func (c *EntityCatalogue) AlarmControlPanelKeyFromName(objectID string) (uint32, bool) {
	return c.AlarmControlPanel.KeyFromName(objectID)
}
func (c *EntityCatalogue) AlarmControlPanelFromKey(key uint32) (api.ListEntitiesAlarmControlPanelResponse, bool) {
	return c.AlarmControlPanel.FromKey(key)
}

func (c *EntityCatalogue) TextFromName(objectID string) (api.ListEntitiesTextResponse, bool) {
	return c.Text.FromName(objectID)
}
func (c *EntityCatalogue) TextKeyFromName(objectID string) (uint32, bool) {
	return c.Text.KeyFromName(objectID)
}
func (c *EntityCatalogue) TextFromKey(key uint32) (api.ListEntitiesTextResponse, bool) {
	return c.Text.FromKey(key)
}

func (c *EntityCatalogue) DateFromName(objectID string) (api.ListEntitiesDateResponse, bool) {
	return c.Date.FromName(objectID)
}
func (c *EntityCatalogue) DateKeyFromName(objectID string) (uint32, bool) {
	return c.Date.KeyFromName(objectID)
}
func (c *EntityCatalogue) DateFromKey(key uint32) (api.ListEntitiesDateResponse, bool) {
	return c.Date.FromKey(key)
}

func (c *EntityCatalogue) TimeFromName(objectID string) (api.ListEntitiesTimeResponse, bool) {
	return c.Time.FromName(objectID)
}
func (c *EntityCatalogue) TimeKeyFromName(objectID string) (uint32, bool) {
	return c.Time.KeyFromName(objectID)
}
func (c *EntityCatalogue) TimeFromKey(key uint32) (api.ListEntitiesTimeResponse, bool) {
	return c.Time.FromKey(key)
}

func (c *EntityCatalogue) DateTimeFromName(objectID string) (api.ListEntitiesDateTimeResponse, bool) {
	return c.DateTime.FromName(objectID)
}
func (c *EntityCatalogue) DateTimeKeyFromName(objectID string) (uint32, bool) {
	return c.DateTime.KeyFromName(objectID)
}
func (c *EntityCatalogue) DateTimeFromKey(key uint32) (api.ListEntitiesDateTimeResponse, bool) {
	return c.DateTime.FromKey(key)
}

func (c *EntityCatalogue) ValveFromName(objectID string) (api.ListEntitiesValveResponse, bool) {
	return c.Valve.FromName(objectID)
}
func (c *EntityCatalogue) ValveKeyFromName(objectID string) (uint32, bool) {
	return c.Valve.KeyFromName(objectID)
}
func (c *EntityCatalogue) ValveFromKey(key uint32) (api.ListEntitiesValveResponse, bool) {
	return c.Valve.FromKey(key)
}

func (c *EntityCatalogue) UpdateFromName(objectID string) (api.ListEntitiesUpdateResponse, bool) {
	return c.Update.FromName(objectID)
}
func (c *EntityCatalogue) UpdateKeyFromName(objectID string) (uint32, bool) {
	return c.Update.KeyFromName(objectID)
}
func (c *EntityCatalogue) UpdateFromKey(key uint32) (api.ListEntitiesUpdateResponse, bool) {
	return c.Update.FromKey(key)
}

func (c *EntityCatalogue) EventFromName(objectID string) (api.ListEntitiesEventResponse, bool) {
	return c.Event.FromName(objectID)
}
func (c *EntityCatalogue) EventKeyFromName(objectID string) (uint32, bool) {
	return c.Event.KeyFromName(objectID)
}
func (c *EntityCatalogue) EventFromKey(key uint32) (api.ListEntitiesEventResponse, bool) {
	return c.Event.FromKey(key)
}

func (c *EntityCatalogue) CameraFromName(objectID string) (api.ListEntitiesCameraResponse, bool) {
	return c.Camera.FromName(objectID)
}
func (c *EntityCatalogue) CameraKeyFromName(objectID string) (uint32, bool) {
	return c.Camera.KeyFromName(objectID)
}
func (c *EntityCatalogue) CameraFromKey(key uint32) (api.ListEntitiesCameraResponse, bool) {
	return c.Camera.FromKey(key)
}
