package api

// ============================================================= TextSensor

type ListEntitiesTextSensorResponse struct {
	EntityBase
	DeviceClass string
}

func (*ListEntitiesTextSensorResponse) MessageType() MessageType {
	return MessageTypeListEntitiesTextSensorResponse
}

func (m *ListEntitiesTextSensorResponse) Marshal() ([]byte, error) {
	b := appendEntityBase(nil, m.EntityBase)
	b = appendString(b, 8, m.DeviceClass)
	return b, nil
}

func (m *ListEntitiesTextSensorResponse) Unmarshal(data []byte) error {
	return forEachField(data, func(num protowireNumber, typ protowireType, b []byte) ([]byte, error) {
		if ok, rest, err := takeEntityBaseField(&m.EntityBase, num, b); ok {
			return rest, err
		}
		switch num {
		case 8:
			v, rest, err := takeString(b)
			m.DeviceClass = v
			return rest, err
		default:
			return skipUnknown(typ, b)
		}
	})
}

type TextSensorStateResponse struct {
	Key          uint32
	State        string
	MissingState bool
}

func (*TextSensorStateResponse) MessageType() MessageType { return MessageTypeTextSensorStateResponse }

func (m *TextSensorStateResponse) Marshal() ([]byte, error) {
	var b []byte
	b = appendUint32(b, 1, m.Key)
	b = appendString(b, 2, m.State)
	b = appendBool(b, 3, m.MissingState)
	return b, nil
}

func (m *TextSensorStateResponse) Unmarshal(data []byte) error {
	return forEachField(data, func(num protowireNumber, typ protowireType, b []byte) ([]byte, error) {
		switch num {
		case 1:
			v, rest, err := takeUint32(b)
			m.Key = v
			return rest, err
		case 2:
			v, rest, err := takeString(b)
			m.State = v
			return rest, err
		case 3:
			v, rest, err := takeBool(b)
			m.MissingState = v
			return rest, err
		default:
			return skipUnknown(typ, b)
		}
	})
}

// ================================================================ Climate

type ListEntitiesClimateResponse struct {
	EntityBase
	SupportsCurrentTemperature bool
	SupportsTwoPointTargetTemperature bool
	SupportedModes            []int32
	VisualMinTemperature       float32
	VisualMaxTemperature       float32
	VisualTargetTemperatureStep float32
	SupportsAction             bool
	SupportedFanModes          []int32
	SupportedSwingModes        []int32
	SupportedCustomFanModes    []string
	SupportedPresets           []int32
	SupportedCustomPresets     []string
	VisualCurrentTemperatureStep float32
	SupportsCurrentHumidity    bool
	SupportsTargetHumidity     bool
	VisualMinHumidity          float32
	VisualMaxHumidity          float32
}

func (*ListEntitiesClimateResponse) MessageType() MessageType { return MessageTypeListEntitiesClimateResponse }

func (m *ListEntitiesClimateResponse) Marshal() ([]byte, error) {
	b := appendEntityBase(nil, m.EntityBase)
	b = appendBool(b, 8, m.SupportsCurrentTemperature)
	b = appendBool(b, 9, m.SupportsTwoPointTargetTemperature)
	b = appendInt32Slice(b, 10, m.SupportedModes)
	b = appendFloat32(b, 11, m.VisualMinTemperature)
	b = appendFloat32(b, 12, m.VisualMaxTemperature)
	b = appendFloat32(b, 13, m.VisualTargetTemperatureStep)
	b = appendBool(b, 14, m.SupportsAction)
	b = appendInt32Slice(b, 15, m.SupportedFanModes)
	b = appendInt32Slice(b, 16, m.SupportedSwingModes)
	b = appendStringSlice(b, 17, m.SupportedCustomFanModes)
	b = appendInt32Slice(b, 18, m.SupportedPresets)
	b = appendStringSlice(b, 19, m.SupportedCustomPresets)
	b = appendFloat32(b, 20, m.VisualCurrentTemperatureStep)
	b = appendBool(b, 21, m.SupportsCurrentHumidity)
	b = appendBool(b, 22, m.SupportsTargetHumidity)
	b = appendFloat32(b, 23, m.VisualMinHumidity)
	b = appendFloat32(b, 24, m.VisualMaxHumidity)
	return b, nil
}

func (m *ListEntitiesClimateResponse) Unmarshal(data []byte) error {
	return forEachField(data, func(num protowireNumber, typ protowireType, b []byte) ([]byte, error) {
		if ok, rest, err := takeEntityBaseField(&m.EntityBase, num, b); ok {
			return rest, err
		}
		switch num {
		case 8:
			v, rest, err := takeBool(b)
			m.SupportsCurrentTemperature = v
			return rest, err
		case 9:
			v, rest, err := takeBool(b)
			m.SupportsTwoPointTargetTemperature = v
			return rest, err
		case 10:
			v, rest, err := takeInt32(b)
			m.SupportedModes = append(m.SupportedModes, v)
			return rest, err
		case 11:
			v, rest, err := takeFloat32(b)
			m.VisualMinTemperature = v
			return rest, err
		case 12:
			v, rest, err := takeFloat32(b)
			m.VisualMaxTemperature = v
			return rest, err
		case 13:
			v, rest, err := takeFloat32(b)
			m.VisualTargetTemperatureStep = v
			return rest, err
		case 14:
			v, rest, err := takeBool(b)
			m.SupportsAction = v
			return rest, err
		case 15:
			v, rest, err := takeInt32(b)
			m.SupportedFanModes = append(m.SupportedFanModes, v)
			return rest, err
		case 16:
			v, rest, err := takeInt32(b)
			m.SupportedSwingModes = append(m.SupportedSwingModes, v)
			return rest, err
		case 17:
			v, rest, err := takeString(b)
			m.SupportedCustomFanModes = append(m.SupportedCustomFanModes, v)
			return rest, err
		case 18:
			v, rest, err := takeInt32(b)
			m.SupportedPresets = append(m.SupportedPresets, v)
			return rest, err
		case 19:
			v, rest, err := takeString(b)
			m.SupportedCustomPresets = append(m.SupportedCustomPresets, v)
			return rest, err
		case 20:
			v, rest, err := takeFloat32(b)
			m.VisualCurrentTemperatureStep = v
			return rest, err
		case 21:
			v, rest, err := takeBool(b)
			m.SupportsCurrentHumidity = v
			return rest, err
		case 22:
			v, rest, err := takeBool(b)
			m.SupportsTargetHumidity = v
			return rest, err
		case 23:
			v, rest, err := takeFloat32(b)
			m.VisualMinHumidity = v
			return rest, err
		case 24:
			v, rest, err := takeFloat32(b)
			m.VisualMaxHumidity = v
			return rest, err
		default:
			return skipUnknown(typ, b)
		}
	})
}

type ClimateStateResponse struct {
	Key                   uint32
	Mode                  int32
	CurrentTemperature    float32
	TargetTemperature     float32
	TargetTemperatureLow  float32
	TargetTemperatureHigh float32
	Action                int32
	FanMode               int32
	SwingMode             int32
	CustomFanMode         string
	Preset                int32
	CustomPreset          string
	CurrentHumidity       float32
	TargetHumidity        float32
}

func (*ClimateStateResponse) MessageType() MessageType { return MessageTypeClimateStateResponse }

func (m *ClimateStateResponse) Marshal() ([]byte, error) {
	var b []byte
	b = appendUint32(b, 1, m.Key)
	b = appendInt32(b, 2, m.Mode)
	b = appendFloat32(b, 3, m.CurrentTemperature)
	b = appendFloat32(b, 4, m.TargetTemperature)
	b = appendFloat32(b, 5, m.TargetTemperatureLow)
	b = appendFloat32(b, 6, m.TargetTemperatureHigh)
	b = appendInt32(b, 7, m.Action)
	b = appendInt32(b, 8, m.FanMode)
	b = appendInt32(b, 9, m.SwingMode)
	b = appendString(b, 10, m.CustomFanMode)
	b = appendInt32(b, 11, m.Preset)
	b = appendString(b, 12, m.CustomPreset)
	b = appendFloat32(b, 13, m.CurrentHumidity)
	b = appendFloat32(b, 14, m.TargetHumidity)
	return b, nil
}

func (m *ClimateStateResponse) Unmarshal(data []byte) error {
	return forEachField(data, func(num protowireNumber, typ protowireType, b []byte) ([]byte, error) {
		switch num {
		case 1:
			v, rest, err := takeUint32(b)
			m.Key = v
			return rest, err
		case 2:
			v, rest, err := takeInt32(b)
			m.Mode = v
			return rest, err
		case 3:
			v, rest, err := takeFloat32(b)
			m.CurrentTemperature = v
			return rest, err
		case 4:
			v, rest, err := takeFloat32(b)
			m.TargetTemperature = v
			return rest, err
		case 5:
			v, rest, err := takeFloat32(b)
			m.TargetTemperatureLow = v
			return rest, err
		case 6:
			v, rest, err := takeFloat32(b)
			m.TargetTemperatureHigh = v
			return rest, err
		case 7:
			v, rest, err := takeInt32(b)
			m.Action = v
			return rest, err
		case 8:
			v, rest, err := takeInt32(b)
			m.FanMode = v
			return rest, err
		case 9:
			v, rest, err := takeInt32(b)
			m.SwingMode = v
			return rest, err
		case 10:
			v, rest, err := takeString(b)
			m.CustomFanMode = v
			return rest, err
		case 11:
			v, rest, err := takeInt32(b)
			m.Preset = v
			return rest, err
		case 12:
			v, rest, err := takeString(b)
			m.CustomPreset = v
			return rest, err
		case 13:
			v, rest, err := takeFloat32(b)
			m.CurrentHumidity = v
			return rest, err
		case 14:
			v, rest, err := takeFloat32(b)
			m.TargetHumidity = v
			return rest, err
		default:
			return skipUnknown(typ, b)
		}
	})
}

type ClimateCommandRequest struct {
	Key                      uint32
	HasMode                  bool
	Mode                     int32
	HasTargetTemperature     bool
	TargetTemperature        float32
	HasTargetTemperatureLow  bool
	TargetTemperatureLow     float32
	HasTargetTemperatureHigh bool
	TargetTemperatureHigh    float32
	HasFanMode               bool
	FanMode                  int32
	HasSwingMode             bool
	SwingMode                int32
	HasCustomFanMode         bool
	CustomFanMode            string
	HasPreset                bool
	Preset                   int32
	HasCustomPreset          bool
	CustomPreset             string
	HasTargetHumidity        bool
	TargetHumidity           float32
}

func (*ClimateCommandRequest) MessageType() MessageType { return MessageTypeClimateCommandRequest }

func (m *ClimateCommandRequest) Marshal() ([]byte, error) {
	var b []byte
	b = appendUint32(b, 1, m.Key)
	b = appendBool(b, 2, m.HasMode)
	b = appendInt32(b, 3, m.Mode)
	b = appendBool(b, 4, m.HasTargetTemperature)
	b = appendFloat32(b, 5, m.TargetTemperature)
	b = appendBool(b, 6, m.HasTargetTemperatureLow)
	b = appendFloat32(b, 7, m.TargetTemperatureLow)
	b = appendBool(b, 8, m.HasTargetTemperatureHigh)
	b = appendFloat32(b, 9, m.TargetTemperatureHigh)
	b = appendBool(b, 10, m.HasFanMode)
	b = appendInt32(b, 11, m.FanMode)
	b = appendBool(b, 12, m.HasSwingMode)
	b = appendInt32(b, 13, m.SwingMode)
	b = appendBool(b, 14, m.HasCustomFanMode)
	b = appendString(b, 15, m.CustomFanMode)
	b = appendBool(b, 16, m.HasPreset)
	b = appendInt32(b, 17, m.Preset)
	b = appendBool(b, 18, m.HasCustomPreset)
	b = appendString(b, 19, m.CustomPreset)
	b = appendBool(b, 20, m.HasTargetHumidity)
	b = appendFloat32(b, 21, m.TargetHumidity)
	return b, nil
}

func (m *ClimateCommandRequest) Unmarshal(data []byte) error {
	return forEachField(data, func(num protowireNumber, typ protowireType, b []byte) ([]byte, error) {
		switch num {
		case 1:
			v, rest, err := takeUint32(b)
			m.Key = v
			return rest, err
		case 2:
			v, rest, err := takeBool(b)
			m.HasMode = v
			return rest, err
		case 3:
			v, rest, err := takeInt32(b)
			m.Mode = v
			return rest, err
		case 4:
			v, rest, err := takeBool(b)
			m.HasTargetTemperature = v
			return rest, err
		case 5:
			v, rest, err := takeFloat32(b)
			m.TargetTemperature = v
			return rest, err
		case 6:
			v, rest, err := takeBool(b)
			m.HasTargetTemperatureLow = v
			return rest, err
		case 7:
			v, rest, err := takeFloat32(b)
			m.TargetTemperatureLow = v
			return rest, err
		case 8:
			v, rest, err := takeBool(b)
			m.HasTargetTemperatureHigh = v
			return rest, err
		case 9:
			v, rest, err := takeFloat32(b)
			m.TargetTemperatureHigh = v
			return rest, err
		case 10:
			v, rest, err := takeBool(b)
			m.HasFanMode = v
			return rest, err
		case 11:
			v, rest, err := takeInt32(b)
			m.FanMode = v
			return rest, err
		case 12:
			v, rest, err := takeBool(b)
			m.HasSwingMode = v
			return rest, err
		case 13:
			v, rest, err := takeInt32(b)
			m.SwingMode = v
			return rest, err
		case 14:
			v, rest, err := takeBool(b)
			m.HasCustomFanMode = v
			return rest, err
		case 15:
			v, rest, err := takeString(b)
			m.CustomFanMode = v
			return rest, err
		case 16:
			v, rest, err := takeBool(b)
			m.HasPreset = v
			return rest, err
		case 17:
			v, rest, err := takeInt32(b)
			m.Preset = v
			return rest, err
		case 18:
			v, rest, err := takeBool(b)
			m.HasCustomPreset = v
			return rest, err
		case 19:
			v, rest, err := takeString(b)
			m.CustomPreset = v
			return rest, err
		case 20:
			v, rest, err := takeBool(b)
			m.HasTargetHumidity = v
			return rest, err
		case 21:
			v, rest, err := takeFloat32(b)
			m.TargetHumidity = v
			return rest, err
		default:
			return skipUnknown(typ, b)
		}
	})
}

// ================================================================= Number

type ListEntitiesNumberResponse struct {
	EntityBase
	MinValue          float32
	MaxValue          float32
	Step              float32
	UnitOfMeasurement string
	Mode              int32
	DeviceClass       string
}

func (*ListEntitiesNumberResponse) MessageType() MessageType { return MessageTypeListEntitiesNumberResponse }

func (m *ListEntitiesNumberResponse) Marshal() ([]byte, error) {
	b := appendEntityBase(nil, m.EntityBase)
	b = appendFloat32(b, 8, m.MinValue)
	b = appendFloat32(b, 9, m.MaxValue)
	b = appendFloat32(b, 10, m.Step)
	b = appendString(b, 11, m.UnitOfMeasurement)
	b = appendInt32(b, 12, m.Mode)
	b = appendString(b, 13, m.DeviceClass)
	return b, nil
}

func (m *ListEntitiesNumberResponse) Unmarshal(data []byte) error {
	return forEachField(data, func(num protowireNumber, typ protowireType, b []byte) ([]byte, error) {
		if ok, rest, err := takeEntityBaseField(&m.EntityBase, num, b); ok {
			return rest, err
		}
		switch num {
		case 8:
			v, rest, err := takeFloat32(b)
			m.MinValue = v
			return rest, err
		case 9:
			v, rest, err := takeFloat32(b)
			m.MaxValue = v
			return rest, err
		case 10:
			v, rest, err := takeFloat32(b)
			m.Step = v
			return rest, err
		case 11:
			v, rest, err := takeString(b)
			m.UnitOfMeasurement = v
			return rest, err
		case 12:
			v, rest, err := takeInt32(b)
			m.Mode = v
			return rest, err
		case 13:
			v, rest, err := takeString(b)
			m.DeviceClass = v
			return rest, err
		default:
			return skipUnknown(typ, b)
		}
	})
}

type NumberStateResponse struct {
	Key          uint32
	State        float32
	MissingState bool
}

func (*NumberStateResponse) MessageType() MessageType { return MessageTypeNumberStateResponse }

func (m *NumberStateResponse) Marshal() ([]byte, error) {
	var b []byte
	b = appendUint32(b, 1, m.Key)
	b = appendFloat32(b, 2, m.State)
	b = appendBool(b, 3, m.MissingState)
	return b, nil
}

func (m *NumberStateResponse) Unmarshal(data []byte) error {
	return forEachField(data, func(num protowireNumber, typ protowireType, b []byte) ([]byte, error) {
		switch num {
		case 1:
			v, rest, err := takeUint32(b)
			m.Key = v
			return rest, err
		case 2:
			v, rest, err := takeFloat32(b)
			m.State = v
			return rest, err
		case 3:
			v, rest, err := takeBool(b)
			m.MissingState = v
			return rest, err
		default:
			return skipUnknown(typ, b)
		}
	})
}

type NumberCommandRequest struct {
	Key   uint32
	State float32
}

func (*NumberCommandRequest) MessageType() MessageType { return MessageTypeNumberCommandRequest }

func (m *NumberCommandRequest) Marshal() ([]byte, error) {
	var b []byte
	b = appendUint32(b, 1, m.Key)
	b = appendFloat32(b, 2, m.State)
	return b, nil
}

func (m *NumberCommandRequest) Unmarshal(data []byte) error {
	return forEachField(data, func(num protowireNumber, typ protowireType, b []byte) ([]byte, error) {
		switch num {
		case 1:
			v, rest, err := takeUint32(b)
			m.Key = v
			return rest, err
		case 2:
			v, rest, err := takeFloat32(b)
			m.State = v
			return rest, err
		default:
			return skipUnknown(typ, b)
		}
	})
}

// ================================================================= Select
//
// Select is not in the commandable list the distilled spec carries over
// from ESPHome's component table, but the registry reserves
// MessageTypeSelectCommandRequest and the original implementation treats
// Select as a full citizen (list + state + command) — carried forward
// here, see SPEC_FULL.md §11.

type ListEntitiesSelectResponse struct {
	EntityBase
	Options []string
}

func (*ListEntitiesSelectResponse) MessageType() MessageType { return MessageTypeListEntitiesSelectResponse }

func (m *ListEntitiesSelectResponse) Marshal() ([]byte, error) {
	b := appendEntityBase(nil, m.EntityBase)
	b = appendStringSlice(b, 8, m.Options)
	return b, nil
}

func (m *ListEntitiesSelectResponse) Unmarshal(data []byte) error {
	return forEachField(data, func(num protowireNumber, typ protowireType, b []byte) ([]byte, error) {
		if ok, rest, err := takeEntityBaseField(&m.EntityBase, num, b); ok {
			return rest, err
		}
		switch num {
		case 8:
			v, rest, err := takeString(b)
			m.Options = append(m.Options, v)
			return rest, err
		default:
			return skipUnknown(typ, b)
		}
	})
}

type SelectStateResponse struct {
	Key          uint32
	State        string
	MissingState bool
}

func (*SelectStateResponse) MessageType() MessageType { return MessageTypeSelectStateResponse }

func (m *SelectStateResponse) Marshal() ([]byte, error) {
	var b []byte
	b = appendUint32(b, 1, m.Key)
	b = appendString(b, 2, m.State)
	b = appendBool(b, 3, m.MissingState)
	return b, nil
}

func (m *SelectStateResponse) Unmarshal(data []byte) error {
	return forEachField(data, func(num protowireNumber, typ protowireType, b []byte) ([]byte, error) {
		switch num {
		case 1:
			v, rest, err := takeUint32(b)
			m.Key = v
			return rest, err
		case 2:
			v, rest, err := takeString(b)
			m.State = v
			return rest, err
		case 3:
			v, rest, err := takeBool(b)
			m.MissingState = v
			return rest, err
		default:
			return skipUnknown(typ, b)
		}
	})
}

type SelectCommandRequest struct {
	Key   uint32
	State string
}

func (*SelectCommandRequest) MessageType() MessageType { return MessageTypeSelectCommandRequest }

func (m *SelectCommandRequest) Marshal() ([]byte, error) {
	var b []byte
	b = appendUint32(b, 1, m.Key)
	b = appendString(b, 2, m.State)
	return b, nil
}

func (m *SelectCommandRequest) Unmarshal(data []byte) error {
	return forEachField(data, func(num protowireNumber, typ protowireType, b []byte) ([]byte, error) {
		switch num {
		case 1:
			v, rest, err := takeUint32(b)
			m.Key = v
			return rest, err
		case 2:
			v, rest, err := takeString(b)
			m.State = v
			return rest, err
		default:
			return skipUnknown(typ, b)
		}
	})
}
