// Package entity implements the per-kind entity catalogue described in
// spec.md §4.6: ordered descriptor storage with O(1) lookup by device key
// and by object id.
package entity

import "github.com/esphome-go/api/api"

// Kind is a closed enumeration of the entity kinds ESPHome's native API
// declares during list-entities (spec.md §3, §12). It has no relation to
// api.MessageType beyond the metadata table below: a Kind names a family of
// three related message types (list, state, command), not a single one.
type Kind int

const (
	KindBinarySensor Kind = iota
	KindCover
	KindFan
	KindLight
	KindSensor
	KindSwitch
	KindTextSensor
	KindClimate
	KindNumber
	KindSelect
	KindSiren
	KindLock
	KindButton
	KindMediaPlayer
	KindAlarmControlPanel
	KindText
	KindDate
	KindTime
	KindDateTime
	KindValve
	KindUpdate
	KindEvent
	KindCamera

	numKinds
)

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(unknown)"
	}
	return kindNames[k]
}

var kindNames = [numKinds]string{
	KindBinarySensor:      "BinarySensor",
	KindCover:             "Cover",
	KindFan:               "Fan",
	KindLight:             "Light",
	KindSensor:            "Sensor",
	KindSwitch:            "Switch",
	KindTextSensor:        "TextSensor",
	KindClimate:           "Climate",
	KindNumber:            "Number",
	KindSelect:            "Select",
	KindSiren:             "Siren",
	KindLock:              "Lock",
	KindButton:            "Button",
	KindMediaPlayer:       "MediaPlayer",
	KindAlarmControlPanel: "AlarmControlPanel",
	KindText:              "Text",
	KindDate:              "Date",
	KindTime:              "Time",
	KindDateTime:          "DateTime",
	KindValve:             "Valve",
	KindUpdate:            "Update",
	KindEvent:             "Event",
	KindCamera:            "Camera",
}

// kindMeta records the list/state/command message codes for a Kind.
// StateType is 0 for the kinds with no push-state message, Button and
// Camera: Button is commandable without a state push, and Camera is neither
// stateful nor commandable (its images use the camera request/response
// messages). Event's state type is EventResponse, which is routed through
// the same state-update path as every other kind.
type kindMeta struct {
	listType    api.MessageType
	stateType   api.MessageType
	commandType api.MessageType
	commandable bool
}

var kindTable = [numKinds]kindMeta{
	KindBinarySensor: {api.MessageTypeListEntitiesBinarySensorResponse, api.MessageTypeBinarySensorStateResponse, 0, false},
	KindCover:        {api.MessageTypeListEntitiesCoverResponse, api.MessageTypeCoverStateResponse, api.MessageTypeCoverCommandRequest, true},
	KindFan:          {api.MessageTypeListEntitiesFanResponse, api.MessageTypeFanStateResponse, api.MessageTypeFanCommandRequest, true},
	KindLight:        {api.MessageTypeListEntitiesLightResponse, api.MessageTypeLightStateResponse, api.MessageTypeLightCommandRequest, true},
	KindSensor:       {api.MessageTypeListEntitiesSensorResponse, api.MessageTypeSensorStateResponse, 0, false},
	KindSwitch:       {api.MessageTypeListEntitiesSwitchResponse, api.MessageTypeSwitchStateResponse, api.MessageTypeSwitchCommandRequest, true},
	KindTextSensor:   {api.MessageTypeListEntitiesTextSensorResponse, api.MessageTypeTextSensorStateResponse, 0, false},
	KindClimate:      {api.MessageTypeListEntitiesClimateResponse, api.MessageTypeClimateStateResponse, api.MessageTypeClimateCommandRequest, true},
	KindNumber:       {api.MessageTypeListEntitiesNumberResponse, api.MessageTypeNumberStateResponse, api.MessageTypeNumberCommandRequest, true},
	KindSelect:       {api.MessageTypeListEntitiesSelectResponse, api.MessageTypeSelectStateResponse, api.MessageTypeSelectCommandRequest, true},
	KindSiren:        {api.MessageTypeListEntitiesSirenResponse, api.MessageTypeSirenStateResponse, api.MessageTypeSirenCommandRequest, true},
	KindLock:         {api.MessageTypeListEntitiesLockResponse, api.MessageTypeLockStateResponse, api.MessageTypeLockCommandRequest, true},
	KindButton:       {api.MessageTypeListEntitiesButtonResponse, 0, api.MessageTypeButtonCommandRequest, true},
	KindMediaPlayer:  {api.MessageTypeListEntitiesMediaPlayerResponse, api.MessageTypeMediaPlayerStateResponse, api.MessageTypeMediaPlayerCommandRequest, true},
	KindAlarmControlPanel: {
		api.MessageTypeListEntitiesAlarmControlPanelResponse,
		api.MessageTypeAlarmControlPanelStateResponse,
		api.MessageTypeAlarmControlPanelCommandRequest,
		true,
	},
	KindText:     {api.MessageTypeListEntitiesTextResponse, api.MessageTypeTextStateResponse, api.MessageTypeTextCommandRequest, true},
	KindDate:     {api.MessageTypeListEntitiesDateResponse, api.MessageTypeDateStateResponse, api.MessageTypeDateCommandRequest, true},
	KindTime:     {api.MessageTypeListEntitiesTimeResponse, api.MessageTypeTimeStateResponse, api.MessageTypeTimeCommandRequest, true},
	KindDateTime: {api.MessageTypeListEntitiesDateTimeResponse, api.MessageTypeDateTimeStateResponse, api.MessageTypeDateTimeCommandRequest, true},
	KindValve:    {api.MessageTypeListEntitiesValveResponse, api.MessageTypeValveStateResponse, api.MessageTypeValveCommandRequest, true},
	KindUpdate:   {api.MessageTypeListEntitiesUpdateResponse, api.MessageTypeUpdateStateResponse, api.MessageTypeUpdateCommandRequest, true},
	KindEvent:    {api.MessageTypeListEntitiesEventResponse, api.MessageTypeEventResponse, 0, false},
	KindCamera:   {api.MessageTypeListEntitiesCameraResponse, 0, 0, false},
}

// ListType returns the ListEntities<Kind>Response message code for k.
func (k Kind) ListType() api.MessageType { return kindTable[k].listType }

// StateType returns the <Kind>StateResponse message code for k, or 0 if the
// kind never pushes a typed state.
func (k Kind) StateType() api.MessageType { return kindTable[k].stateType }

// CommandType returns the <Kind>CommandRequest message code for k, or 0 if
// the kind is not commandable.
func (k Kind) CommandType() api.MessageType { return kindTable[k].commandType }

// Commandable reports whether the session exposes single-target and
// global-broadcast commands for k (spec.md §4.5).
func (k Kind) Commandable() bool { return kindTable[k].commandable }

// Kinds lists every entity kind in declaration order, for callers that need
// to range over the whole catalogue (e.g. a generic "dump everything"
// diagnostic).
func Kinds() []Kind {
	out := make([]Kind, numKinds)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

var stateTypeToKind = func() map[api.MessageType]Kind {
	m := make(map[api.MessageType]Kind, numKinds)
	for i, meta := range kindTable {
		if meta.stateType != 0 {
			m[meta.stateType] = Kind(i)
		}
	}
	return m
}()

// KindForStateType resolves a <Kind>StateResponse message code back to its
// Kind, for the pump's dispatch table (spec.md §4.5).
func KindForStateType(t api.MessageType) (Kind, bool) {
	k, ok := stateTypeToKind[t]
	return k, ok
}
