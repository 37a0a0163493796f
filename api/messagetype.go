// Package api is the schema layer for the ESPHome native API: the numeric
// MessageType registry and the typed request/response records carried in
// each frame's payload. In a production client these would be generated
// from ESPHome's .proto definitions (spec.md §1 treats that generator as an
// external collaborator); here the same 123 numbered kinds are hand-written
// against google.golang.org/protobuf/encoding/protowire, the same wire
// primitives a generator would emit code against.
package api

import "fmt"

// MessageType is the closed, stable numeric enumeration of wire message
// kinds (spec.md §6). Codes 1..123 are reserved; 0 and anything above 123
// are never valid on the wire.
type MessageType uint16

const (
	MessageTypeHelloRequest     MessageType = 1
	MessageTypeHelloResponse    MessageType = 2
	MessageTypeConnectRequest   MessageType = 3
	MessageTypeConnectResponse  MessageType = 4
	MessageTypeDisconnectRequest  MessageType = 5
	MessageTypeDisconnectResponse MessageType = 6
	MessageTypePingRequest        MessageType = 7
	MessageTypePingResponse       MessageType = 8
	MessageTypeDeviceInfoRequest  MessageType = 9
	MessageTypeDeviceInfoResponse MessageType = 10
	MessageTypeListEntitiesRequest MessageType = 11

	MessageTypeListEntitiesBinarySensorResponse MessageType = 12
	MessageTypeListEntitiesCoverResponse        MessageType = 13
	MessageTypeListEntitiesFanResponse          MessageType = 14
	MessageTypeListEntitiesLightResponse        MessageType = 15
	MessageTypeListEntitiesSensorResponse       MessageType = 16
	MessageTypeListEntitiesSwitchResponse       MessageType = 17
	MessageTypeListEntitiesTextSensorResponse   MessageType = 18
	MessageTypeListEntitiesDoneResponse         MessageType = 19

	MessageTypeSubscribeStatesRequest MessageType = 20

	MessageTypeBinarySensorStateResponse MessageType = 21
	MessageTypeCoverStateResponse        MessageType = 22
	MessageTypeFanStateResponse          MessageType = 23
	MessageTypeLightStateResponse        MessageType = 24
	MessageTypeSensorStateResponse       MessageType = 25
	MessageTypeSwitchStateResponse       MessageType = 26
	MessageTypeTextSensorStateResponse   MessageType = 27

	MessageTypeSubscribeLogsRequest  MessageType = 28
	MessageTypeSubscribeLogsResponse MessageType = 29

	MessageTypeCoverCommandRequest  MessageType = 30
	MessageTypeFanCommandRequest    MessageType = 31
	MessageTypeLightCommandRequest  MessageType = 32
	MessageTypeSwitchCommandRequest MessageType = 33

	MessageTypeSubscribeHomeassistantServicesRequest MessageType = 34
	MessageTypeHomeassistantServiceResponse          MessageType = 35

	MessageTypeGetTimeRequest  MessageType = 36
	MessageTypeGetTimeResponse MessageType = 37

	MessageTypeSubscribeHomeAssistantStatesRequest MessageType = 38
	MessageTypeSubscribeHomeAssistantStateResponse MessageType = 39
	MessageTypeHomeAssistantStateResponse          MessageType = 40

	MessageTypeListEntitiesServicesResponse MessageType = 41
	MessageTypeExecuteServiceRequest         MessageType = 42

	MessageTypeListEntitiesCameraResponse MessageType = 43
	MessageTypeCameraImageResponse        MessageType = 44
	MessageTypeCameraImageRequest         MessageType = 45

	MessageTypeListEntitiesClimateResponse MessageType = 46
	MessageTypeClimateStateResponse        MessageType = 47
	MessageTypeClimateCommandRequest       MessageType = 48

	MessageTypeListEntitiesNumberResponse MessageType = 49
	MessageTypeNumberStateResponse        MessageType = 50
	MessageTypeNumberCommandRequest       MessageType = 51

	MessageTypeListEntitiesSelectResponse MessageType = 52
	MessageTypeSelectStateResponse        MessageType = 53
	MessageTypeSelectCommandRequest       MessageType = 54

	MessageTypeListEntitiesSirenResponse MessageType = 55
	MessageTypeSirenStateResponse        MessageType = 56
	MessageTypeSirenCommandRequest       MessageType = 57

	MessageTypeListEntitiesLockResponse MessageType = 58
	MessageTypeLockStateResponse        MessageType = 59
	MessageTypeLockCommandRequest       MessageType = 60

	MessageTypeListEntitiesButtonResponse MessageType = 61
	MessageTypeButtonCommandRequest       MessageType = 62

	MessageTypeListEntitiesMediaPlayerResponse MessageType = 63
	MessageTypeMediaPlayerStateResponse        MessageType = 64
	MessageTypeMediaPlayerCommandRequest       MessageType = 65

	MessageTypeSubscribeBluetoothLEAdvertisementsRequest MessageType = 66
	MessageTypeBluetoothLEAdvertisementResponse          MessageType = 67
	MessageTypeBluetoothDeviceRequest                    MessageType = 68
	MessageTypeBluetoothDeviceConnectionResponse         MessageType = 69
	MessageTypeBluetoothGATTGetServicesRequest           MessageType = 70
	MessageTypeBluetoothGATTGetServicesResponse          MessageType = 71
	MessageTypeBluetoothGATTGetServicesDoneResponse      MessageType = 72
	MessageTypeBluetoothGATTReadRequest                  MessageType = 73
	MessageTypeBluetoothGATTReadResponse                 MessageType = 74
	MessageTypeBluetoothGATTWriteRequest                 MessageType = 75
	MessageTypeBluetoothGATTReadDescriptorRequest        MessageType = 76
	MessageTypeBluetoothGATTWriteDescriptorRequest       MessageType = 77
	MessageTypeBluetoothGATTNotifyRequest                MessageType = 78
	MessageTypeBluetoothGATTNotifyDataResponse           MessageType = 79
	MessageTypeSubscribeBluetoothConnectionsFreeRequest  MessageType = 80
	MessageTypeBluetoothConnectionsFreeResponse          MessageType = 81
	MessageTypeBluetoothGATTErrorResponse                MessageType = 82
	MessageTypeBluetoothGATTWriteResponse                MessageType = 83
	MessageTypeBluetoothGATTNotifyResponse               MessageType = 84
	MessageTypeBluetoothDevicePairingResponse            MessageType = 85
	MessageTypeBluetoothDeviceUnpairingResponse          MessageType = 86
	MessageTypeUnsubscribeBluetoothLEAdvertisementsRequest MessageType = 87
	MessageTypeBluetoothDeviceClearCacheResponse         MessageType = 88

	MessageTypeSubscribeVoiceAssistantRequest MessageType = 89
	MessageTypeVoiceAssistantRequest          MessageType = 90
	MessageTypeVoiceAssistantResponse         MessageType = 91
	MessageTypeVoiceAssistantEventResponse    MessageType = 92

	MessageTypeBluetoothLERawAdvertisementsResponse MessageType = 93

	MessageTypeListEntitiesAlarmControlPanelResponse MessageType = 94
	MessageTypeAlarmControlPanelStateResponse        MessageType = 95
	MessageTypeAlarmControlPanelCommandRequest       MessageType = 96

	MessageTypeListEntitiesTextResponse MessageType = 97
	MessageTypeTextStateResponse        MessageType = 98
	MessageTypeTextCommandRequest       MessageType = 99

	MessageTypeListEntitiesDateResponse MessageType = 100
	MessageTypeDateStateResponse        MessageType = 101
	MessageTypeDateCommandRequest       MessageType = 102

	MessageTypeListEntitiesTimeResponse MessageType = 103
	MessageTypeTimeStateResponse        MessageType = 104
	MessageTypeTimeCommandRequest       MessageType = 105

	MessageTypeVoiceAssistantAudio MessageType = 106

	MessageTypeListEntitiesEventResponse MessageType = 107
	MessageTypeEventResponse             MessageType = 108

	MessageTypeListEntitiesValveResponse MessageType = 109
	MessageTypeValveStateResponse        MessageType = 110
	MessageTypeValveCommandRequest       MessageType = 111

	MessageTypeListEntitiesDateTimeResponse MessageType = 112
	MessageTypeDateTimeStateResponse        MessageType = 113
	MessageTypeDateTimeCommandRequest       MessageType = 114

	MessageTypeVoiceAssistantTimerEventResponse MessageType = 115

	MessageTypeListEntitiesUpdateResponse MessageType = 116
	MessageTypeUpdateStateResponse        MessageType = 117
	MessageTypeUpdateCommandRequest       MessageType = 118

	MessageTypeVoiceAssistantAnnounceRequest       MessageType = 119
	MessageTypeVoiceAssistantAnnounceFinished      MessageType = 120
	MessageTypeVoiceAssistantConfigurationRequest  MessageType = 121
	MessageTypeVoiceAssistantConfigurationResponse MessageType = 122
	MessageTypeVoiceAssistantSetConfiguration      MessageType = 123
)

// names maps every registered code to its message name; it backs String()
// and Valid().
var names = map[MessageType]string{
	MessageTypeHelloRequest: "HelloRequest", MessageTypeHelloResponse: "HelloResponse",
	MessageTypeConnectRequest: "ConnectRequest", MessageTypeConnectResponse: "ConnectResponse",
	MessageTypeDisconnectRequest: "DisconnectRequest", MessageTypeDisconnectResponse: "DisconnectResponse",
	MessageTypePingRequest: "PingRequest", MessageTypePingResponse: "PingResponse",
	MessageTypeDeviceInfoRequest: "DeviceInfoRequest", MessageTypeDeviceInfoResponse: "DeviceInfoResponse",
	MessageTypeListEntitiesRequest: "ListEntitiesRequest",
	MessageTypeListEntitiesBinarySensorResponse: "ListEntitiesBinarySensorResponse",
	MessageTypeListEntitiesCoverResponse:        "ListEntitiesCoverResponse",
	MessageTypeListEntitiesFanResponse:          "ListEntitiesFanResponse",
	MessageTypeListEntitiesLightResponse:        "ListEntitiesLightResponse",
	MessageTypeListEntitiesSensorResponse:       "ListEntitiesSensorResponse",
	MessageTypeListEntitiesSwitchResponse:       "ListEntitiesSwitchResponse",
	MessageTypeListEntitiesTextSensorResponse:   "ListEntitiesTextSensorResponse",
	MessageTypeListEntitiesDoneResponse:         "ListEntitiesDoneResponse",
	MessageTypeSubscribeStatesRequest:           "SubscribeStatesRequest",
	MessageTypeBinarySensorStateResponse: "BinarySensorStateResponse",
	MessageTypeCoverStateResponse:        "CoverStateResponse",
	MessageTypeFanStateResponse:          "FanStateResponse",
	MessageTypeLightStateResponse:        "LightStateResponse",
	MessageTypeSensorStateResponse:       "SensorStateResponse",
	MessageTypeSwitchStateResponse:       "SwitchStateResponse",
	MessageTypeTextSensorStateResponse:   "TextSensorStateResponse",
	MessageTypeSubscribeLogsRequest:  "SubscribeLogsRequest",
	MessageTypeSubscribeLogsResponse: "SubscribeLogsResponse",
	MessageTypeCoverCommandRequest:  "CoverCommandRequest",
	MessageTypeFanCommandRequest:    "FanCommandRequest",
	MessageTypeLightCommandRequest:  "LightCommandRequest",
	MessageTypeSwitchCommandRequest: "SwitchCommandRequest",
	MessageTypeSubscribeHomeassistantServicesRequest: "SubscribeHomeassistantServicesRequest",
	MessageTypeHomeassistantServiceResponse:          "HomeassistantServiceResponse",
	MessageTypeGetTimeRequest:  "GetTimeRequest",
	MessageTypeGetTimeResponse: "GetTimeResponse",
	MessageTypeSubscribeHomeAssistantStatesRequest: "SubscribeHomeAssistantStatesRequest",
	MessageTypeSubscribeHomeAssistantStateResponse: "SubscribeHomeAssistantStateResponse",
	MessageTypeHomeAssistantStateResponse:          "HomeAssistantStateResponse",
	MessageTypeListEntitiesServicesResponse: "ListEntitiesServicesResponse",
	MessageTypeExecuteServiceRequest:        "ExecuteServiceRequest",
	MessageTypeListEntitiesCameraResponse: "ListEntitiesCameraResponse",
	MessageTypeCameraImageResponse:        "CameraImageResponse",
	MessageTypeCameraImageRequest:         "CameraImageRequest",
	MessageTypeListEntitiesClimateResponse: "ListEntitiesClimateResponse",
	MessageTypeClimateStateResponse:        "ClimateStateResponse",
	MessageTypeClimateCommandRequest:       "ClimateCommandRequest",
	MessageTypeListEntitiesNumberResponse: "ListEntitiesNumberResponse",
	MessageTypeNumberStateResponse:        "NumberStateResponse",
	MessageTypeNumberCommandRequest:       "NumberCommandRequest",
	MessageTypeListEntitiesSelectResponse: "ListEntitiesSelectResponse",
	MessageTypeSelectStateResponse:        "SelectStateResponse",
	MessageTypeSelectCommandRequest:       "SelectCommandRequest",
	MessageTypeListEntitiesSirenResponse: "ListEntitiesSirenResponse",
	MessageTypeSirenStateResponse:        "SirenStateResponse",
	MessageTypeSirenCommandRequest:       "SirenCommandRequest",
	MessageTypeListEntitiesLockResponse: "ListEntitiesLockResponse",
	MessageTypeLockStateResponse:        "LockStateResponse",
	MessageTypeLockCommandRequest:       "LockCommandRequest",
	MessageTypeListEntitiesButtonResponse: "ListEntitiesButtonResponse",
	MessageTypeButtonCommandRequest:       "ButtonCommandRequest",
	MessageTypeListEntitiesMediaPlayerResponse: "ListEntitiesMediaPlayerResponse",
	MessageTypeMediaPlayerStateResponse:        "MediaPlayerStateResponse",
	MessageTypeMediaPlayerCommandRequest:       "MediaPlayerCommandRequest",
	MessageTypeSubscribeBluetoothLEAdvertisementsRequest: "SubscribeBluetoothLEAdvertisementsRequest",
	MessageTypeBluetoothLEAdvertisementResponse:          "BluetoothLEAdvertisementResponse",
	MessageTypeBluetoothDeviceRequest:                    "BluetoothDeviceRequest",
	MessageTypeBluetoothDeviceConnectionResponse:         "BluetoothDeviceConnectionResponse",
	MessageTypeBluetoothGATTGetServicesRequest:           "BluetoothGATTGetServicesRequest",
	MessageTypeBluetoothGATTGetServicesResponse:          "BluetoothGATTGetServicesResponse",
	MessageTypeBluetoothGATTGetServicesDoneResponse:      "BluetoothGATTGetServicesDoneResponse",
	MessageTypeBluetoothGATTReadRequest:                  "BluetoothGATTReadRequest",
	MessageTypeBluetoothGATTReadResponse:                 "BluetoothGATTReadResponse",
	MessageTypeBluetoothGATTWriteRequest:                 "BluetoothGATTWriteRequest",
	MessageTypeBluetoothGATTReadDescriptorRequest:        "BluetoothGATTReadDescriptorRequest",
	MessageTypeBluetoothGATTWriteDescriptorRequest:       "BluetoothGATTWriteDescriptorRequest",
	MessageTypeBluetoothGATTNotifyRequest:                "BluetoothGATTNotifyRequest",
	MessageTypeBluetoothGATTNotifyDataResponse:           "BluetoothGATTNotifyDataResponse",
	MessageTypeSubscribeBluetoothConnectionsFreeRequest:  "SubscribeBluetoothConnectionsFreeRequest",
	MessageTypeBluetoothConnectionsFreeResponse:          "BluetoothConnectionsFreeResponse",
	MessageTypeBluetoothGATTErrorResponse:                "BluetoothGATTErrorResponse",
	MessageTypeBluetoothGATTWriteResponse:                "BluetoothGATTWriteResponse",
	MessageTypeBluetoothGATTNotifyResponse:               "BluetoothGATTNotifyResponse",
	MessageTypeBluetoothDevicePairingResponse:            "BluetoothDevicePairingResponse",
	MessageTypeBluetoothDeviceUnpairingResponse:          "BluetoothDeviceUnpairingResponse",
	MessageTypeUnsubscribeBluetoothLEAdvertisementsRequest: "UnsubscribeBluetoothLEAdvertisementsRequest",
	MessageTypeBluetoothDeviceClearCacheResponse:         "BluetoothDeviceClearCacheResponse",
	MessageTypeSubscribeVoiceAssistantRequest: "SubscribeVoiceAssistantRequest",
	MessageTypeVoiceAssistantRequest:          "VoiceAssistantRequest",
	MessageTypeVoiceAssistantResponse:         "VoiceAssistantResponse",
	MessageTypeVoiceAssistantEventResponse:    "VoiceAssistantEventResponse",
	MessageTypeBluetoothLERawAdvertisementsResponse: "BluetoothLERawAdvertisementsResponse",
	MessageTypeListEntitiesAlarmControlPanelResponse: "ListEntitiesAlarmControlPanelResponse",
	MessageTypeAlarmControlPanelStateResponse:        "AlarmControlPanelStateResponse",
	MessageTypeAlarmControlPanelCommandRequest:       "AlarmControlPanelCommandRequest",
	MessageTypeListEntitiesTextResponse: "ListEntitiesTextResponse",
	MessageTypeTextStateResponse:        "TextStateResponse",
	MessageTypeTextCommandRequest:       "TextCommandRequest",
	MessageTypeListEntitiesDateResponse: "ListEntitiesDateResponse",
	MessageTypeDateStateResponse:        "DateStateResponse",
	MessageTypeDateCommandRequest:       "DateCommandRequest",
	MessageTypeListEntitiesTimeResponse: "ListEntitiesTimeResponse",
	MessageTypeTimeStateResponse:        "TimeStateResponse",
	MessageTypeTimeCommandRequest:       "TimeCommandRequest",
	MessageTypeVoiceAssistantAudio: "VoiceAssistantAudio",
	MessageTypeListEntitiesEventResponse: "ListEntitiesEventResponse",
	MessageTypeEventResponse:             "EventResponse",
	MessageTypeListEntitiesValveResponse: "ListEntitiesValveResponse",
	MessageTypeValveStateResponse:        "ValveStateResponse",
	MessageTypeValveCommandRequest:       "ValveCommandRequest",
	MessageTypeListEntitiesDateTimeResponse: "ListEntitiesDateTimeResponse",
	MessageTypeDateTimeStateResponse:        "DateTimeStateResponse",
	MessageTypeDateTimeCommandRequest:       "DateTimeCommandRequest",
	MessageTypeVoiceAssistantTimerEventResponse: "VoiceAssistantTimerEventResponse",
	MessageTypeListEntitiesUpdateResponse: "ListEntitiesUpdateResponse",
	MessageTypeUpdateStateResponse:        "UpdateStateResponse",
	MessageTypeUpdateCommandRequest:       "UpdateCommandRequest",
	MessageTypeVoiceAssistantAnnounceRequest:       "VoiceAssistantAnnounceRequest",
	MessageTypeVoiceAssistantAnnounceFinished:      "VoiceAssistantAnnounceFinished",
	MessageTypeVoiceAssistantConfigurationRequest:  "VoiceAssistantConfigurationRequest",
	MessageTypeVoiceAssistantConfigurationResponse: "VoiceAssistantConfigurationResponse",
	MessageTypeVoiceAssistantSetConfiguration:      "VoiceAssistantSetConfiguration",
}

// String renders the message type's registry name, or a numeric fallback
// for anything outside 1..123.
func (t MessageType) String() string {
	if name, ok := names[t]; ok {
		return name
	}
	return fmt.Sprintf("MessageType(%d)", uint16(t))
}

// Valid reports whether t is one of the 123 registered codes.
func (t MessageType) Valid() bool {
	_, ok := names[t]
	return ok
}
