package api

// EntityCategory mirrors spec.md §3's EntityInfo.category.
type EntityCategory int32

const (
	EntityCategoryNone       EntityCategory = 0
	EntityCategoryConfig     EntityCategory = 1
	EntityCategoryDiagnostic EntityCategory = 2
)

// EntityBase is the set of fields every ListEntities<Kind>Response shares
// (spec.md §3's EntityInfo, minus the kind-specific tail). Field numbers
// 1-7 are reserved for it across every list-entities message in this
// package; kind-specific fields start at 8.
type EntityBase struct {
	ObjectID          string
	Key               uint32
	Name              string
	UniqueID          string
	DisabledByDefault bool
	Icon              string
	EntityCategory    EntityCategory
}

func appendEntityBase(b []byte, e EntityBase) []byte {
	b = appendString(b, 1, e.ObjectID)
	b = appendUint32(b, 2, e.Key)
	b = appendString(b, 3, e.Name)
	b = appendString(b, 4, e.UniqueID)
	b = appendBool(b, 5, e.DisabledByDefault)
	b = appendString(b, 6, e.Icon)
	b = appendInt32(b, 7, int32(e.EntityCategory))
	return b
}

// takeEntityBaseField handles one of EntityBase's reserved field numbers,
// reporting handled=false for anything else so the caller's kind-specific
// switch can take over.
func takeEntityBaseField(e *EntityBase, num protowireNumber, b []byte) (handled bool, rest []byte, err error) {
	switch num {
	case 1:
		v, r, err := takeString(b)
		e.ObjectID = v
		return true, r, err
	case 2:
		v, r, err := takeUint32(b)
		e.Key = v
		return true, r, err
	case 3:
		v, r, err := takeString(b)
		e.Name = v
		return true, r, err
	case 4:
		v, r, err := takeString(b)
		e.UniqueID = v
		return true, r, err
	case 5:
		v, r, err := takeBool(b)
		e.DisabledByDefault = v
		return true, r, err
	case 6:
		v, r, err := takeString(b)
		e.Icon = v
		return true, r, err
	case 7:
		v, r, err := takeInt32(b)
		e.EntityCategory = EntityCategory(v)
		return true, r, err
	default:
		return false, b, nil
	}
}

// ============================================================ BinarySensor

type ListEntitiesBinarySensorResponse struct {
	EntityBase
	DeviceClass          string
	IsStatusBinarySensor bool
}

func (*ListEntitiesBinarySensorResponse) MessageType() MessageType {
	return MessageTypeListEntitiesBinarySensorResponse
}

func (m *ListEntitiesBinarySensorResponse) Marshal() ([]byte, error) {
	b := appendEntityBase(nil, m.EntityBase)
	b = appendString(b, 8, m.DeviceClass)
	b = appendBool(b, 9, m.IsStatusBinarySensor)
	return b, nil
}

func (m *ListEntitiesBinarySensorResponse) Unmarshal(data []byte) error {
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
			m.IsStatusBinarySensor = v
			return rest, err
		default:
			return skipUnknown(typ, b)
		}
	})
}

type BinarySensorStateResponse struct {
	Key          uint32
	State        bool
	MissingState bool
}

func (*BinarySensorStateResponse) MessageType() MessageType { return MessageTypeBinarySensorStateResponse }

func (m *BinarySensorStateResponse) Marshal() ([]byte, error) {
	var b []byte
	b = appendUint32(b, 1, m.Key)
	b = appendBool(b, 2, m.State)
	b = appendBool(b, 3, m.MissingState)
	return b, nil
}

func (m *BinarySensorStateResponse) Unmarshal(data []byte) error {
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
			v, rest, err := takeBool(b)
			m.MissingState = v
			return rest, err
		default:
			return skipUnknown(typ, b)
		}
	})
}

// =================================================================== Cover

type ListEntitiesCoverResponse struct {
	EntityBase
	AssumedState      bool
	SupportsPosition  bool
	SupportsTilt      bool
	DeviceClass       string
}

func (*ListEntitiesCoverResponse) MessageType() MessageType { return MessageTypeListEntitiesCoverResponse }

func (m *ListEntitiesCoverResponse) Marshal() ([]byte, error) {
	b := appendEntityBase(nil, m.EntityBase)
	b = appendBool(b, 8, m.AssumedState)
	b = appendBool(b, 9, m.SupportsPosition)
	b = appendBool(b, 10, m.SupportsTilt)
	b = appendString(b, 11, m.DeviceClass)
	return b, nil
}

func (m *ListEntitiesCoverResponse) Unmarshal(data []byte) error {
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
			v, rest, err := takeBool(b)
			m.SupportsPosition = v
			return rest, err
		case 10:
			v, rest, err := takeBool(b)
			m.SupportsTilt = v
			return rest, err
		case 11:
			v, rest, err := takeString(b)
			m.DeviceClass = v
			return rest, err
		default:
			return skipUnknown(typ, b)
		}
	})
}

type CoverStateResponse struct {
	Key              uint32
	Position         float32
	Tilt             float32
	CurrentOperation int32
}

func (*CoverStateResponse) MessageType() MessageType { return MessageTypeCoverStateResponse }

func (m *CoverStateResponse) Marshal() ([]byte, error) {
	var b []byte
	b = appendUint32(b, 1, m.Key)
	b = appendFloat32(b, 2, m.Position)
	b = appendFloat32(b, 3, m.Tilt)
	b = appendInt32(b, 4, m.CurrentOperation)
	return b, nil
}

func (m *CoverStateResponse) Unmarshal(data []byte) error {
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
			v, rest, err := takeFloat32(b)
			m.Tilt = v
			return rest, err
		case 4:
			v, rest, err := takeInt32(b)
			m.CurrentOperation = v
			return rest, err
		default:
			return skipUnknown(typ, b)
		}
	})
}

type CoverCommandRequest struct {
	Key       uint32
	HasPosition bool
	Position    float32
	HasTilt     bool
	Tilt        float32
	Stop        bool
}

func (*CoverCommandRequest) MessageType() MessageType { return MessageTypeCoverCommandRequest }

func (m *CoverCommandRequest) Marshal() ([]byte, error) {
	var b []byte
	b = appendUint32(b, 1, m.Key)
	b = appendBool(b, 2, m.HasPosition)
	b = appendFloat32(b, 3, m.Position)
	b = appendBool(b, 4, m.HasTilt)
	b = appendFloat32(b, 5, m.Tilt)
	b = appendBool(b, 6, m.Stop)
	return b, nil
}

func (m *CoverCommandRequest) Unmarshal(data []byte) error {
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
			m.HasTilt = v
			return rest, err
		case 5:
			v, rest, err := takeFloat32(b)
			m.Tilt = v
			return rest, err
		case 6:
			v, rest, err := takeBool(b)
			m.Stop = v
			return rest, err
		default:
			return skipUnknown(typ, b)
		}
	})
}

// ===================================================================== Fan

type ListEntitiesFanResponse struct {
	EntityBase
	SupportsOscillation bool
	SupportsSpeed       bool
	SupportsDirection   bool
	SupportedSpeedCount int32
}

func (*ListEntitiesFanResponse) MessageType() MessageType { return MessageTypeListEntitiesFanResponse }

func (m *ListEntitiesFanResponse) Marshal() ([]byte, error) {
	b := appendEntityBase(nil, m.EntityBase)
	b = appendBool(b, 8, m.SupportsOscillation)
	b = appendBool(b, 9, m.SupportsSpeed)
	b = appendBool(b, 10, m.SupportsDirection)
	b = appendInt32(b, 11, m.SupportedSpeedCount)
	return b, nil
}

func (m *ListEntitiesFanResponse) Unmarshal(data []byte) error {
	return forEachField(data, func(num protowireNumber, typ protowireType, b []byte) ([]byte, error) {
		if ok, rest, err := takeEntityBaseField(&m.EntityBase, num, b); ok {
			return rest, err
		}
		switch num {
		case 8:
			v, rest, err := takeBool(b)
			m.SupportsOscillation = v
			return rest, err
		case 9:
			v, rest, err := takeBool(b)
			m.SupportsSpeed = v
			return rest, err
		case 10:
			v, rest, err := takeBool(b)
			m.SupportsDirection = v
			return rest, err
		case 11:
			v, rest, err := takeInt32(b)
			m.SupportedSpeedCount = v
			return rest, err
		default:
			return skipUnknown(typ, b)
		}
	})
}

type FanStateResponse struct {
	Key         uint32
	State       bool
	Oscillating bool
	Direction   int32
	SpeedLevel  int32
}

func (*FanStateResponse) MessageType() MessageType { return MessageTypeFanStateResponse }

func (m *FanStateResponse) Marshal() ([]byte, error) {
	var b []byte
	b = appendUint32(b, 1, m.Key)
	b = appendBool(b, 2, m.State)
	b = appendBool(b, 3, m.Oscillating)
	b = appendInt32(b, 4, m.Direction)
	b = appendInt32(b, 5, m.SpeedLevel)
	return b, nil
}

func (m *FanStateResponse) Unmarshal(data []byte) error {
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
			v, rest, err := takeBool(b)
			m.Oscillating = v
			return rest, err
		case 4:
			v, rest, err := takeInt32(b)
			m.Direction = v
			return rest, err
		case 5:
			v, rest, err := takeInt32(b)
			m.SpeedLevel = v
			return rest, err
		default:
			return skipUnknown(typ, b)
		}
	})
}

type FanCommandRequest struct {
	Key             uint32
	HasState        bool
	State           bool
	HasSpeedLevel   bool
	SpeedLevel      int32
	HasOscillating  bool
	Oscillating     bool
	HasDirection    bool
	Direction       int32
}

func (*FanCommandRequest) MessageType() MessageType { return MessageTypeFanCommandRequest }

func (m *FanCommandRequest) Marshal() ([]byte, error) {
	var b []byte
	b = appendUint32(b, 1, m.Key)
	b = appendBool(b, 2, m.HasState)
	b = appendBool(b, 3, m.State)
	b = appendBool(b, 4, m.HasSpeedLevel)
	b = appendInt32(b, 5, m.SpeedLevel)
	b = appendBool(b, 6, m.HasOscillating)
	b = appendBool(b, 7, m.Oscillating)
	b = appendBool(b, 8, m.HasDirection)
	b = appendInt32(b, 9, m.Direction)
	return b, nil
}

func (m *FanCommandRequest) Unmarshal(data []byte) error {
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
			m.HasSpeedLevel = v
			return rest, err
		case 5:
			v, rest, err := takeInt32(b)
			m.SpeedLevel = v
			return rest, err
		case 6:
			v, rest, err := takeBool(b)
			m.HasOscillating = v
			return rest, err
		case 7:
			v, rest, err := takeBool(b)
			m.Oscillating = v
			return rest, err
		case 8:
			v, rest, err := takeBool(b)
			m.HasDirection = v
			return rest, err
		case 9:
			v, rest, err := takeInt32(b)
			m.Direction = v
			return rest, err
		default:
			return skipUnknown(typ, b)
		}
	})
}
