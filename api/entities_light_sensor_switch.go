package api

// ================================================================== Light

type ListEntitiesLightResponse struct {
	EntityBase
	SupportedColorModes []int32
	MinMireds           float32
	MaxMireds           float32
	Effects             []string
}

func (*ListEntitiesLightResponse) MessageType() MessageType { return MessageTypeListEntitiesLightResponse }

func (m *ListEntitiesLightResponse) Marshal() ([]byte, error) {
	b := appendEntityBase(nil, m.EntityBase)
	b = appendInt32Slice(b, 8, m.SupportedColorModes)
	b = appendFloat32(b, 9, m.MinMireds)
	b = appendFloat32(b, 10, m.MaxMireds)
	b = appendStringSlice(b, 11, m.Effects)
	return b, nil
}

func (m *ListEntitiesLightResponse) Unmarshal(data []byte) error {
	return forEachField(data, func(num protowireNumber, typ protowireType, b []byte) ([]byte, error) {
		if ok, rest, err := takeEntityBaseField(&m.EntityBase, num, b); ok {
			return rest, err
		}
		switch num {
		case 8:
			v, rest, err := takeInt32(b)
			m.SupportedColorModes = append(m.SupportedColorModes, v)
			return rest, err
		case 9:
			v, rest, err := takeFloat32(b)
			m.MinMireds = v
			return rest, err
		case 10:
			v, rest, err := takeFloat32(b)
			m.MaxMireds = v
			return rest, err
		case 11:
			v, rest, err := takeString(b)
			m.Effects = append(m.Effects, v)
			return rest, err
		default:
			return skipUnknown(typ, b)
		}
	})
}

type LightStateResponse struct {
	Key              uint32
	State            bool
	Brightness       float32
	ColorMode        int32
	ColorBrightness  float32
	Red              float32
	Green            float32
	Blue             float32
	White            float32
	ColorTemperature float32
	Effect           string
}

func (*LightStateResponse) MessageType() MessageType { return MessageTypeLightStateResponse }

func (m *LightStateResponse) Marshal() ([]byte, error) {
	var b []byte
	b = appendUint32(b, 1, m.Key)
	b = appendBool(b, 2, m.State)
	b = appendFloat32(b, 3, m.Brightness)
	b = appendInt32(b, 4, m.ColorMode)
	b = appendFloat32(b, 5, m.ColorBrightness)
	b = appendFloat32(b, 6, m.Red)
	b = appendFloat32(b, 7, m.Green)
	b = appendFloat32(b, 8, m.Blue)
	b = appendFloat32(b, 9, m.White)
	b = appendFloat32(b, 10, m.ColorTemperature)
	b = appendString(b, 11, m.Effect)
	return b, nil
}

func (m *LightStateResponse) Unmarshal(data []byte) error {
	return forEachField(data, func(num protowireNumber, typ protowireType, b []byte) ([]byte, error) {
		switch num {
		case 1:
			v, rest, err := takeUint32(b)
			m.Key = v
			return rest, err
		case 2:
			v, rest, err := takeBool(b)
			m.State = v
			return rest, err
		case 3:
			v, rest, err := takeFloat32(b)
			m.Brightness = v
			return rest, err
		case 4:
			v, rest, err := takeInt32(b)
			m.ColorMode = v
			return rest, err
		case 5:
			v, rest, err := takeFloat32(b)
			m.ColorBrightness = v
			return rest, err
		case 6:
			v, rest, err := takeFloat32(b)
			m.Red = v
			return rest, err
		case 7:
			v, rest, err := takeFloat32(b)
			m.Green = v
			return rest, err
		case 8:
			v, rest, err := takeFloat32(b)
			m.Blue = v
			return rest, err
		case 9:
			v, rest, err := takeFloat32(b)
			m.White = v
			return rest, err
		case 10:
			v, rest, err := takeFloat32(b)
			m.ColorTemperature = v
			return rest, err
		case 11:
			v, rest, err := takeString(b)
			m.Effect = v
			return rest, err
		default:
			return skipUnknown(typ, b)
		}
	})
}

// LightCommandRequest uses has_<field> gating exactly like the real
// ESPHome API: a field is only applied by the device when its has_ flag
// is set, letting one message change a subset of light parameters.
type LightCommandRequest struct {
	Key                   uint32
	HasState              bool
	State                 bool
	HasBrightness         bool
	Brightness            float32
	HasColorMode          bool
	ColorMode             int32
	HasRGB                bool
	Red                   float32
	Green                 float32
	Blue                  float32
	HasWhite              bool
	White                 float32
	HasColorTemperature   bool
	ColorTemperature      float32
	HasTransitionLength   bool
	TransitionLength      uint32
	HasFlash              bool
	FlashLength           uint32
	HasEffect             bool
	Effect                string
}

func (*LightCommandRequest) MessageType() MessageType { return MessageTypeLightCommandRequest }

func (m *LightCommandRequest) Marshal() ([]byte, error) {
	var b []byte
	b = appendUint32(b, 1, m.Key)
	b = appendBool(b, 2, m.HasState)
	b = appendBool(b, 3, m.State)
	b = appendBool(b, 4, m.HasBrightness)
	b = appendFloat32(b, 5, m.Brightness)
	b = appendBool(b, 6, m.HasColorMode)
	b = appendInt32(b, 7, m.ColorMode)
	b = appendBool(b, 8, m.HasRGB)
	b = appendFloat32(b, 9, m.Red)
	b = appendFloat32(b, 10, m.Green)
	b = appendFloat32(b, 11, m.Blue)
	b = appendBool(b, 12, m.HasWhite)
	b = appendFloat32(b, 13, m.White)
	b = appendBool(b, 14, m.HasColorTemperature)
	b = appendFloat32(b, 15, m.ColorTemperature)
	b = appendBool(b, 16, m.HasTransitionLength)
	b = appendUint32(b, 17, m.TransitionLength)
	b = appendBool(b, 18, m.HasFlash)
	b = appendUint32(b, 19, m.FlashLength)
	b = appendBool(b, 20, m.HasEffect)
	b = appendString(b, 21, m.Effect)
	return b, nil
}

func (m *LightCommandRequest) Unmarshal(data []byte) error {
	return forEachField(data, func(num protowireNumber, typ protowireType, b []byte) ([]byte, error) {
		switch num {
		case 1:
			v, rest, err := takeUint32(b)
			m.Key = v
			return rest, err
		case 2:
			v, rest, err := takeBool(b)
			m.HasState = v
			return rest, err
		case 3:
			v, rest, err := takeBool(b)
			m.State = v
			return rest, err
		case 4:
			v, rest, err := takeBool(b)
			m.HasBrightness = v
			return rest, err
		case 5:
			v, rest, err := takeFloat32(b)
			m.Brightness = v
			return rest, err
		case 6:
			v, rest, err := takeBool(b)
			m.HasColorMode = v
			return rest, err
		case 7:
			v, rest, err := takeInt32(b)
			m.ColorMode = v
			return rest, err
		case 8:
			v, rest, err := takeBool(b)
			m.HasRGB = v
			return rest, err
		case 9:
			v, rest, err := takeFloat32(b)
			m.Red = v
			return rest, err
		case 10:
			v, rest, err := takeFloat32(b)
			m.Green = v
			return rest, err
		case 11:
			v, rest, err := takeFloat32(b)
			m.Blue = v
			return rest, err
		case 12:
			v, rest, err := takeBool(b)
			m.HasWhite = v
			return rest, err
		case 13:
			v, rest, err := takeFloat32(b)
			m.White = v
			return rest, err
		case 14:
			v, rest, err := takeBool(b)
			m.HasColorTemperature = v
			return rest, err
		case 15:
			v, rest, err := takeFloat32(b)
			m.ColorTemperature = v
			return rest, err
		case 16:
			v, rest, err := takeBool(b)
			m.HasTransitionLength = v
			return rest, err
		case 17:
			v, rest, err := takeUint32(b)
			m.TransitionLength = v
			return rest, err
		case 18:
			v, rest, err := takeBool(b)
			m.HasFlash = v
			return rest, err
		case 19:
			v, rest, err := takeUint32(b)
			m.FlashLength = v
			return rest, err
		case 20:
			v, rest, err := takeBool(b)
			m.HasEffect = v
			return rest, err
		case 21:
			v, rest, err := takeString(b)
			m.Effect = v
			return rest, err
		default:
			return skipUnknown(typ, b)
		}
	})
}

// ================================================================= Sensor

type ListEntitiesSensorResponse struct {
	EntityBase
	UnitOfMeasurement string
	AccuracyDecimals  int32
	DeviceClass       string
	StateClass        int32
}

func (*ListEntitiesSensorResponse) MessageType() MessageType { return MessageTypeListEntitiesSensorResponse }

func (m *ListEntitiesSensorResponse) Marshal() ([]byte, error) {
	b := appendEntityBase(nil, m.EntityBase)
	b = appendString(b, 8, m.UnitOfMeasurement)
	b = appendInt32(b, 9, m.AccuracyDecimals)
	b = appendString(b, 10, m.DeviceClass)
	b = appendInt32(b, 11, m.StateClass)
	return b, nil
}

func (m *ListEntitiesSensorResponse) Unmarshal(data []byte) error {
	return forEachField(data, func(num protowireNumber, typ protowireType, b []byte) ([]byte, error) {
		if ok, rest, err := takeEntityBaseField(&m.EntityBase, num, b); ok {
			return rest, err
		}
		switch num {
		case 8:
			v, rest, err := takeString(b)
			m.UnitOfMeasurement = v
			return rest, err
		case 9:
			v, rest, err := takeInt32(b)
			m.AccuracyDecimals = v
			return rest, err
		case 10:
			v, rest, err := takeString(b)
			m.DeviceClass = v
			return rest, err
		case 11:
			v, rest, err := takeInt32(b)
			m.StateClass = v
			return rest, err
		default:
			return skipUnknown(typ, b)
		}
	})
}

type SensorStateResponse struct {
	Key          uint32
	State        float32
	MissingState bool
}

func (*SensorStateResponse) MessageType() MessageType { return MessageTypeSensorStateResponse }

func (m *SensorStateResponse) Marshal() ([]byte, error) {
	var b []byte
	b = appendUint32(b, 1, m.Key)
	b = appendFloat32(b, 2, m.State)
	b = appendBool(b, 3, m.MissingState)
	return b, nil
}

func (m *SensorStateResponse) Unmarshal(data []byte) error {
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

// ================================================================= Switch

type ListEntitiesSwitchResponse struct {
	EntityBase
	AssumedState bool
	DeviceClass  string
}

func (*ListEntitiesSwitchResponse) MessageType() MessageType { return MessageTypeListEntitiesSwitchResponse }

func (m *ListEntitiesSwitchResponse) Marshal() ([]byte, error) {
	b := appendEntityBase(nil, m.EntityBase)
	b = appendBool(b, 8, m.AssumedState)
	b = appendString(b, 9, m.DeviceClass)
	return b, nil
}

func (m *ListEntitiesSwitchResponse) Unmarshal(data []byte) error {
	return forEachField(data, func(num protowireNumber, typ protowireType, b []byte) ([]byte, error) {
		if ok, rest, err := takeEntityBaseField(&m.EntityBase, num, b); ok {
			return rest, err
		}
		switch num {
		case 8:
			v, rest, err := takeBool(b)
			m.AssumedState = v
			return rest, err
		case 9:
			v, rest, err := takeString(b)
			m.DeviceClass = v
			return rest, err
		default:
			return skipUnknown(typ, b)
		}
	})
}

type SwitchStateResponse struct {
	Key   uint32
	State bool
}

func (*SwitchStateResponse) MessageType() MessageType { return MessageTypeSwitchStateResponse }

func (m *SwitchStateResponse) Marshal() ([]byte, error) {
	var b []byte
	b = appendUint32(b, 1, m.Key)
	b = appendBool(b, 2, m.State)
	return b, nil
}

func (m *SwitchStateResponse) Unmarshal(data []byte) error {
	return forEachField(data, func(num protowireNumber, typ protowireType, b []byte) ([]byte, error) {
		switch num {
		case 1:
			v, rest, err := takeUint32(b)
			m.Key = v
			return rest, err
		case 2:
			v, rest, err := takeBool(b)
			m.State = v
			return rest, err
		default:
			return skipUnknown(typ, b)
		}
	})
}

type SwitchCommandRequest struct {
	Key   uint32
	State bool
}

func (*SwitchCommandRequest) MessageType() MessageType { return MessageTypeSwitchCommandRequest }

func (m *SwitchCommandRequest) Marshal() ([]byte, error) {
	var b []byte
	b = appendUint32(b, 1, m.Key)
	b = appendBool(b, 2, m.State)
	return b, nil
}

func (m *SwitchCommandRequest) Unmarshal(data []byte) error {
	return forEachField(data, func(num protowireNumber, typ protowireType, b []byte) ([]byte, error) {
		switch num {
		case 1:
			v, rest, err := takeUint32(b)
			m.Key = v
			return rest, err
		case 2:
			v, rest, err := takeBool(b)
			m.State = v
			return rest, err
		default:
			return skipUnknown(typ, b)
		}
	})
}
