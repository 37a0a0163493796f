package api

// ==================================================================== Text

type ListEntitiesTextResponse struct {
	EntityBase
	MinLength int32
	MaxLength int32
	Pattern   string
	Mode      int32
}

func (*ListEntitiesTextResponse) MessageType() MessageType { return MessageTypeListEntitiesTextResponse }

func (m *ListEntitiesTextResponse) Marshal() ([]byte, error) {
	b := appendEntityBase(nil, m.EntityBase)
	b = appendInt32(b, 8, m.MinLength)
	b = appendInt32(b, 9, m.MaxLength)
	b = appendString(b, 10, m.Pattern)
	b = appendInt32(b, 11, m.Mode)
	return b, nil
}

func (m *ListEntitiesTextResponse) Unmarshal(data []byte) error {
	return forEachField(data, func(num protowireNumber, typ protowireType, b []byte) ([]byte, error) {
		if ok, rest, err := takeEntityBaseField(&m.EntityBase, num, b); ok {
			return rest, err
		}
		switch num {
		case 8:
			v, rest, err := takeInt32(b)
			m.MinLength = v
			return rest, err
		case 9:
			v, rest, err := takeInt32(b)
			m.MaxLength = v
			return rest, err
		case 10:
			v, rest, err := takeString(b)
			m.Pattern = v
			return rest, err
		case 11:
			v, rest, err := takeInt32(b)
			m.Mode = v
			return rest, err
		default:
			return skipUnknown(typ, b)
		}
	})
}

type TextStateResponse struct {
	Key          uint32
	State        string
	MissingState bool
}

func (*TextStateResponse) MessageType() MessageType { return MessageTypeTextStateResponse }

func (m *TextStateResponse) Marshal() ([]byte, error) {
	var b []byte
	b = appendUint32(b, 1, m.Key)
	b = appendString(b, 2, m.State)
	b = appendBool(b, 3, m.MissingState)
	return b, nil
}

func (m *TextStateResponse) Unmarshal(data []byte) error {
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

type TextCommandRequest struct {
	Key   uint32
	State string
}

func (*TextCommandRequest) MessageType() MessageType { return MessageTypeTextCommandRequest }

func (m *TextCommandRequest) Marshal() ([]byte, error) {
	var b []byte
	b = appendUint32(b, 1, m.Key)
	b = appendString(b, 2, m.State)
	return b, nil
}

func (m *TextCommandRequest) Unmarshal(data []byte) error {
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

// ==================================================================== Date

// ListEntitiesDateResponse carries no kind-specific fields beyond EntityBase.
type ListEntitiesDateResponse struct {
	EntityBase
}

func (*ListEntitiesDateResponse) MessageType() MessageType { return MessageTypeListEntitiesDateResponse }

func (m *ListEntitiesDateResponse) Marshal() ([]byte, error) {
	return appendEntityBase(nil, m.EntityBase), nil
}

func (m *ListEntitiesDateResponse) Unmarshal(data []byte) error {
	return forEachField(data, func(num protowireNumber, typ protowireType, b []byte) ([]byte, error) {
		if ok, rest, err := takeEntityBaseField(&m.EntityBase, num, b); ok {
			return rest, err
		}
		return skipUnknown(typ, b)
	})
}

type DateStateResponse struct {
	Key          uint32
	MissingState bool
	Year         uint32
	Month        uint32
	Day          uint32
}

func (*DateStateResponse) MessageType() MessageType { return MessageTypeDateStateResponse }

func (m *DateStateResponse) Marshal() ([]byte, error) {
	var b []byte
	b = appendUint32(b, 1, m.Key)
	b = appendBool(b, 2, m.MissingState)
	b = appendUint32(b, 3, m.Year)
	b = appendUint32(b, 4, m.Month)
	b = appendUint32(b, 5, m.Day)
	return b, nil
}

func (m *DateStateResponse) Unmarshal(data []byte) error {
	return forEachField(data, func(num protowireNumber, typ protowireType, b []byte) ([]byte, error) {
		switch num {
		case 1:
			v, rest, err := takeUint32(b)
			m.Key = v
			return rest, err
		case 2:
			v, rest, err := takeBool(b)
			m.MissingState = v
			return rest, err
		case 3:
			v, rest, err := takeUint32(b)
			m.Year = v
			return rest, err
		case 4:
			v, rest, err := takeUint32(b)
			m.Month = v
			return rest, err
		case 5:
			v, rest, err := takeUint32(b)
			m.Day = v
			return rest, err
		default:
			return skipUnknown(typ, b)
		}
	})
}

type DateCommandRequest struct {
	Key   uint32
	Year  uint32
	Month uint32
	Day   uint32
}

func (*DateCommandRequest) MessageType() MessageType { return MessageTypeDateCommandRequest }

func (m *DateCommandRequest) Marshal() ([]byte, error) {
	var b []byte
	b = appendUint32(b, 1, m.Key)
	b = appendUint32(b, 2, m.Year)
	b = appendUint32(b, 3, m.Month)
	b = appendUint32(b, 4, m.Day)
	return b, nil
}

func (m *DateCommandRequest) Unmarshal(data []byte) error {
	return forEachField(data, func(num protowireNumber, typ protowireType, b []byte) ([]byte, error) {
		switch num {
		case 1:
			v, rest, err := takeUint32(b)
			m.Key = v
			return rest, err
		case 2:
			v, rest, err := takeUint32(b)
			m.Year = v
			return rest, err
		case 3:
			v, rest, err := takeUint32(b)
			m.Month = v
			return rest, err
		case 4:
			v, rest, err := takeUint32(b)
			m.Day = v
			return rest, err
		default:
			return skipUnknown(typ, b)
		}
	})
}

// ==================================================================== Time

type ListEntitiesTimeResponse struct {
	EntityBase
}

func (*ListEntitiesTimeResponse) MessageType() MessageType { return MessageTypeListEntitiesTimeResponse }

func (m *ListEntitiesTimeResponse) Marshal() ([]byte, error) {
	return appendEntityBase(nil, m.EntityBase), nil
}

func (m *ListEntitiesTimeResponse) Unmarshal(data []byte) error {
	return forEachField(data, func(num protowireNumber, typ protowireType, b []byte) ([]byte, error) {
		if ok, rest, err := takeEntityBaseField(&m.EntityBase, num, b); ok {
			return rest, err
		}
		return skipUnknown(typ, b)
	})
}

type TimeStateResponse struct {
	Key          uint32
	MissingState bool
	Hour         uint32
	Minute       uint32
	Second       uint32
}

func (*TimeStateResponse) MessageType() MessageType { return MessageTypeTimeStateResponse }

func (m *TimeStateResponse) Marshal() ([]byte, error) {
	var b []byte
	b = appendUint32(b, 1, m.Key)
	b = appendBool(b, 2, m.MissingState)
	b = appendUint32(b, 3, m.Hour)
	b = appendUint32(b, 4, m.Minute)
	b = appendUint32(b, 5, m.Second)
	return b, nil
}

func (m *TimeStateResponse) Unmarshal(data []byte) error {
	return forEachField(data, func(num protowireNumber, typ protowireType, b []byte) ([]byte, error) {
		switch num {
		case 1:
			v, rest, err := takeUint32(b)
			m.Key = v
			return rest, err
		case 2:
			v, rest, err := takeBool(b)
			m.MissingState = v
			return rest, err
		case 3:
			v, rest, err := takeUint32(b)
			m.Hour = v
			return rest, err
		case 4:
			v, rest, err := takeUint32(b)
			m.Minute = v
			return rest, err
		case 5:
			v, rest, err := takeUint32(b)
			m.Second = v
			return rest, err
		default:
			return skipUnknown(typ, b)
		}
	})
}

type TimeCommandRequest struct {
	Key    uint32
	Hour   uint32
	Minute uint32
	Second uint32
}

func (*TimeCommandRequest) MessageType() MessageType { return MessageTypeTimeCommandRequest }

func (m *TimeCommandRequest) Marshal() ([]byte, error) {
	var b []byte
	b = appendUint32(b, 1, m.Key)
	b = appendUint32(b, 2, m.Hour)
	b = appendUint32(b, 3, m.Minute)
	b = appendUint32(b, 4, m.Second)
	return b, nil
}

func (m *TimeCommandRequest) Unmarshal(data []byte) error {
	return forEachField(data, func(num protowireNumber, typ protowireType, b []byte) ([]byte, error) {
		switch num {
		case 1:
			v, rest, err := takeUint32(b)
			m.Key = v
			return rest, err
		case 2:
			v, rest, err := takeUint32(b)
			m.Hour = v
			return rest, err
		case 3:
			v, rest, err := takeUint32(b)
			m.Minute = v
			return rest, err
		case 4:
			v, rest, err := takeUint32(b)
			m.Second = v
			return rest, err
		default:
			return skipUnknown(typ, b)
		}
	})
}

// ================================================================ DateTime

type ListEntitiesDateTimeResponse struct {
	EntityBase
}

func (*ListEntitiesDateTimeResponse) MessageType() MessageType {
	return MessageTypeListEntitiesDateTimeResponse
}

func (m *ListEntitiesDateTimeResponse) Marshal() ([]byte, error) {
	return appendEntityBase(nil, m.EntityBase), nil
}

func (m *ListEntitiesDateTimeResponse) Unmarshal(data []byte) error {
	return forEachField(data, func(num protowireNumber, typ protowireType, b []byte) ([]byte, error) {
		if ok, rest, err := takeEntityBaseField(&m.EntityBase, num, b); ok {
			return rest, err
		}
		return skipUnknown(typ, b)
	})
}

type DateTimeStateResponse struct {
	Key          uint32
	MissingState bool
	EpochSeconds uint32
}

func (*DateTimeStateResponse) MessageType() MessageType { return MessageTypeDateTimeStateResponse }

func (m *DateTimeStateResponse) Marshal() ([]byte, error) {
	var b []byte
	b = appendUint32(b, 1, m.Key)
	b = appendBool(b, 2, m.MissingState)
	b = appendUint32(b, 3, m.EpochSeconds)
	return b, nil
}

func (m *DateTimeStateResponse) Unmarshal(data []byte) error {
	return forEachField(data, func(num protowireNumber, typ protowireType, b []byte) ([]byte, error) {
		switch num {
		case 1:
			v, rest, err := takeUint32(b)
			m.Key = v
			return rest, err
		case 2:
			v, rest, err := takeBool(b)
			m.MissingState = v
			return rest, err
		case 3:
			v, rest, err := takeUint32(b)
			m.EpochSeconds = v
			return rest, err
		default:
			return skipUnknown(typ, b)
		}
	})
}

type DateTimeCommandRequest struct {
	Key          uint32
	EpochSeconds uint32
}

func (*DateTimeCommandRequest) MessageType() MessageType { return MessageTypeDateTimeCommandRequest }

func (m *DateTimeCommandRequest) Marshal() ([]byte, error) {
	var b []byte
	b = appendUint32(b, 1, m.Key)
	b = appendUint32(b, 2, m.EpochSeconds)
	return b, nil
}

func (m *DateTimeCommandRequest) Unmarshal(data []byte) error {
	return forEachField(data, func(num protowireNumber, typ protowireType, b []byte) ([]byte, error) {
		switch num {
		case 1:
			v, rest, err := takeUint32(b)
			m.Key = v
			return rest, err
		case 2:
			v, rest, err := takeUint32(b)
			m.EpochSeconds = v
			return rest, err
		default:
			return skipUnknown(typ, b)
		}
	})
}

// =================================================================== Valve

type ListEntitiesValveResponse struct {
	EntityBase
	DeviceClass      string
	SupportsPosition bool
	SupportsStop     bool
}

func (*ListEntitiesValveResponse) MessageType() MessageType { return MessageTypeListEntitiesValveResponse }

func (m *ListEntitiesValveResponse) Marshal() ([]byte, error) {
	b := appendEntityBase(nil, m.EntityBase)
	b = appendString(b, 8, m.DeviceClass)
	b = appendBool(b, 9, m.SupportsPosition)
	b = appendBool(b, 10, m.SupportsStop)
	return b, nil
}

func (m *ListEntitiesValveResponse) Unmarshal(data []byte) error {
	return forEachField(data, func(num protowireNumber, typ protowireType, b []byte) ([]byte, error) {
		if ok, rest, err := takeEntityBaseField(&m.EntityBase, num, b); ok {
			return rest, err
		}
		switch num {
		case 8:
			v, rest, err := takeString(b)
			m.DeviceClass = v
			return rest, err
		case 9:
			v, rest, err := takeBool(b)
			m.SupportsPosition = v
			return rest, err
		case 10:
			v, rest, err := takeBool(b)
			m.SupportsStop = v
			return rest, err
		default:
			return skipUnknown(typ, b)
		}
	})
}

type ValveStateResponse struct {
	Key              uint32
	Position         float32
	CurrentOperation int32
}

func (*ValveStateResponse) MessageType() MessageType { return MessageTypeValveStateResponse }

func (m *ValveStateResponse) Marshal() ([]byte, error) {
	var b []byte
	b = appendUint32(b, 1, m.Key)
	b = appendFloat32(b, 2, m.Position)
	b = appendInt32(b, 3, m.CurrentOperation)
	return b, nil
}

func (m *ValveStateResponse) Unmarshal(data []byte) error {
	return forEachField(data, func(num protowireNumber, typ protowireType, b []byte) ([]byte, error) {
		switch num {
		case 1:
			v, rest, err := takeUint32(b)
			m.Key = v
			return rest, err
		case 2:
			v, rest, err := takeFloat32(b)
			m.Position = v
			return rest, err
		case 3:
			v, rest, err := takeInt32(b)
			m.CurrentOperation = v
			return rest, err
		default:
			return skipUnknown(typ, b)
		}
	})
}

type ValveCommandRequest struct {
	Key         uint32
	HasPosition bool
	Position    float32
	Stop        bool
}

func (*ValveCommandRequest) MessageType() MessageType { return MessageTypeValveCommandRequest }

func (m *ValveCommandRequest) Marshal() ([]byte, error) {
	var b []byte
	b = appendUint32(b, 1, m.Key)
	b = appendBool(b, 2, m.HasPosition)
	b = appendFloat32(b, 3, m.Position)
	b = appendBool(b, 4, m.Stop)
	return b, nil
}

func (m *ValveCommandRequest) Unmarshal(data []byte) error {
	return forEachField(data, func(num protowireNumber, typ protowireType, b []byte) ([]byte, error) {
		switch num {
		case 1:
			v, rest, err := takeUint32(b)
			m.Key = v
			return rest, err
		case 2:
			v, rest, err := takeBool(b)
			m.HasPosition = v
			return rest, err
		case 3:
			v, rest, err := takeFloat32(b)
			m.Position = v
			return rest, err
		case 4:
			v, rest, err := takeBool(b)
			m.Stop = v
			return rest, err
		default:
			return skipUnknown(typ, b)
		}
	})
}
