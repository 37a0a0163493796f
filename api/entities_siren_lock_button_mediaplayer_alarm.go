package api

// ================================================================== Siren

type ListEntitiesSirenResponse struct {
	EntityBase
	Tones            []string
	SupportsDuration bool
	SupportsVolume   bool
}

func (*ListEntitiesSirenResponse) MessageType() MessageType { return MessageTypeListEntitiesSirenResponse }

func (m *ListEntitiesSirenResponse) Marshal() ([]byte, error) {
	b := appendEntityBase(nil, m.EntityBase)
	b = appendStringSlice(b, 8, m.Tones)
	b = appendBool(b, 9, m.SupportsDuration)
	b = appendBool(b, 10, m.SupportsVolume)
	return b, nil
}

func (m *ListEntitiesSirenResponse) Unmarshal(data []byte) error {
	return forEachField(data, func(num protowireNumber, typ protowireType, b []byte) ([]byte, error) {
		if ok, rest, err := takeEntityBaseField(&m.EntityBase, num, b); ok {
			return rest, err
		}
		switch num {
		case 8:
			v, rest, err := takeString(b)
			m.Tones = append(m.Tones, v)
			return rest, err
		case 9:
			v, rest, err := takeBool(b)
			m.SupportsDuration = v
			return rest, err
		case 10:
			v, rest, err := takeBool(b)
			m.SupportsVolume = v
			return rest, err
		default:
			return skipUnknown(typ, b)
		}
	})
}

type SirenStateResponse struct {
	Key   uint32
	State bool
}

func (*SirenStateResponse) MessageType() MessageType { return MessageTypeSirenStateResponse }

func (m *SirenStateResponse) Marshal() ([]byte, error) {
	var b []byte
	b = appendUint32(b, 1, m.Key)
	b = appendBool(b, 2, m.State)
	return b, nil
}

func (m *SirenStateResponse) Unmarshal(data []byte) error {
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

type SirenCommandRequest struct {
	Key         uint32
	HasState    bool
	State       bool
	HasTone     bool
	Tone        string
	HasDuration bool
	Duration    uint32
	HasVolume   bool
	Volume      float32
}

func (*SirenCommandRequest) MessageType() MessageType { return MessageTypeSirenCommandRequest }

func (m *SirenCommandRequest) Marshal() ([]byte, error) {
	var b []byte
	b = appendUint32(b, 1, m.Key)
	b = appendBool(b, 2, m.HasState)
	b = appendBool(b, 3, m.State)
	b = appendBool(b, 4, m.HasTone)
	b = appendString(b, 5, m.Tone)
	b = appendBool(b, 6, m.HasDuration)
	b = appendUint32(b, 7, m.Duration)
	b = appendBool(b, 8, m.HasVolume)
	b = appendFloat32(b, 9, m.Volume)
	return b, nil
}

func (m *SirenCommandRequest) Unmarshal(data []byte) error {
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
			m.HasTone = v
			return rest, err
		case 5:
			v, rest, err := takeString(b)
			m.Tone = v
			return rest, err
		case 6:
			v, rest, err := takeBool(b)
			m.HasDuration = v
			return rest, err
		case 7:
			v, rest, err := takeUint32(b)
			m.Duration = v
			return rest, err
		case 8:
			v, rest, err := takeBool(b)
			m.HasVolume = v
			return rest, err
		case 9:
			v, rest, err := takeFloat32(b)
			m.Volume = v
			return rest, err
		default:
			return skipUnknown(typ, b)
		}
	})
}

// =================================================================== Lock

type ListEntitiesLockResponse struct {
	EntityBase
	SupportsOpen bool
	RequiresCode bool
}

func (*ListEntitiesLockResponse) MessageType() MessageType { return MessageTypeListEntitiesLockResponse }

func (m *ListEntitiesLockResponse) Marshal() ([]byte, error) {
	b := appendEntityBase(nil, m.EntityBase)
	b = appendBool(b, 8, m.SupportsOpen)
	b = appendBool(b, 9, m.RequiresCode)
	return b, nil
}

func (m *ListEntitiesLockResponse) Unmarshal(data []byte) error {
	return forEachField(data, func(num protowireNumber, typ protowireType, b []byte) ([]byte, error) {
		if ok, rest, err := takeEntityBaseField(&m.EntityBase, num, b); ok {
			return rest, err
		}
		switch num {
		case 8:
			v, rest, err := takeBool(b)
			m.SupportsOpen = v
			return rest, err
		case 9:
			v, rest, err := takeBool(b)
			m.RequiresCode = v
			return rest, err
		default:
			return skipUnknown(typ, b)
		}
	})
}

type LockStateResponse struct {
	Key   uint32
	State int32
}

func (*LockStateResponse) MessageType() MessageType { return MessageTypeLockStateResponse }

func (m *LockStateResponse) Marshal() ([]byte, error) {
	var b []byte
	b = appendUint32(b, 1, m.Key)
	b = appendInt32(b, 2, m.State)
	return b, nil
}

func (m *LockStateResponse) Unmarshal(data []byte) error {
	return forEachField(data, func(num protowireNumber, typ protowireType, b []byte) ([]byte, error) {
		switch num {
		case 1:
			v, rest, err := takeUint32(b)
			m.Key = v
			return rest, err
		case 2:
			v, rest, err := takeInt32(b)
			m.State = v
			return rest, err
		default:
			return skipUnknown(typ, b)
		}
	})
}

type LockCommandRequest struct {
	Key     uint32
	Command int32
	HasCode bool
	Code    string
}

func (*LockCommandRequest) MessageType() MessageType { return MessageTypeLockCommandRequest }

func (m *LockCommandRequest) Marshal() ([]byte, error) {
	var b []byte
	b = appendUint32(b, 1, m.Key)
	b = appendInt32(b, 2, m.Command)
	b = appendBool(b, 3, m.HasCode)
	b = appendString(b, 4, m.Code)
	return b, nil
}

func (m *LockCommandRequest) Unmarshal(data []byte) error {
	return forEachField(data, func(num protowireNumber, typ protowireType, b []byte) ([]byte, error) {
		switch num {
		case 1:
			v, rest, err := takeUint32(b)
			m.Key = v
			return rest, err
		case 2:
			v, rest, err := takeInt32(b)
			m.Command = v
			return rest, err
		case 3:
			v, rest, err := takeBool(b)
			m.HasCode = v
			return rest, err
		case 4:
			v, rest, err := takeString(b)
			m.Code = v
			return rest, err
		default:
			return skipUnknown(typ, b)
		}
	})
}

// ================================================================= Button

type ListEntitiesButtonResponse struct {
	EntityBase
	DeviceClass string
}

func (*ListEntitiesButtonResponse) MessageType() MessageType { return MessageTypeListEntitiesButtonResponse }

func (m *ListEntitiesButtonResponse) Marshal() ([]byte, error) {
	b := appendEntityBase(nil, m.EntityBase)
	b = appendString(b, 8, m.DeviceClass)
	return b, nil
}

func (m *ListEntitiesButtonResponse) Unmarshal(data []byte) error {
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

// ButtonCommandRequest has no fields besides the target key: buttons have
// no state, pressing one is a fire-and-forget edge.
type ButtonCommandRequest struct {
	Key uint32
}

func (*ButtonCommandRequest) MessageType() MessageType { return MessageTypeButtonCommandRequest }

func (m *ButtonCommandRequest) Marshal() ([]byte, error) {
	var b []byte
	b = appendUint32(b, 1, m.Key)
	return b, nil
}

func (m *ButtonCommandRequest) Unmarshal(data []byte) error {
	return forEachField(data, func(num protowireNumber, typ protowireType, b []byte) ([]byte, error) {
		switch num {
		case 1:
			v, rest, err := takeUint32(b)
			m.Key = v
			return rest, err
		default:
			return skipUnknown(typ, b)
		}
	})
}

// ============================================================ MediaPlayer

type ListEntitiesMediaPlayerResponse struct {
	EntityBase
	SupportsPause bool
}

func (*ListEntitiesMediaPlayerResponse) MessageType() MessageType {
	return MessageTypeListEntitiesMediaPlayerResponse
}

func (m *ListEntitiesMediaPlayerResponse) Marshal() ([]byte, error) {
	b := appendEntityBase(nil, m.EntityBase)
	b = appendBool(b, 8, m.SupportsPause)
	return b, nil
}

func (m *ListEntitiesMediaPlayerResponse) Unmarshal(data []byte) error {
	return forEachField(data, func(num protowireNumber, typ protowireType, b []byte) ([]byte, error) {
		if ok, rest, err := takeEntityBaseField(&m.EntityBase, num, b); ok {
			return rest, err
		}
		switch num {
		case 8:
			v, rest, err := takeBool(b)
			m.SupportsPause = v
			return rest, err
		default:
			return skipUnknown(typ, b)
		}
	})
}

type MediaPlayerStateResponse struct {
	Key    uint32
	State  int32
	Volume float32
	Muted  bool
}

func (*MediaPlayerStateResponse) MessageType() MessageType { return MessageTypeMediaPlayerStateResponse }

func (m *MediaPlayerStateResponse) Marshal() ([]byte, error) {
	var b []byte
	b = appendUint32(b, 1, m.Key)
	b = appendInt32(b, 2, m.State)
	b = appendFloat32(b, 3, m.Volume)
	b = appendBool(b, 4, m.Muted)
	return b, nil
}

func (m *MediaPlayerStateResponse) Unmarshal(data []byte) error {
	return forEachField(data, func(num protowireNumber, typ protowireType, b []byte) ([]byte, error) {
		switch num {
		case 1:
			v, rest, err := takeUint32(b)
			m.Key = v
			return rest, err
		case 2:
			v, rest, err := takeInt32(b)
			m.State = v
			return rest, err
		case 3:
			v, rest, err := takeFloat32(b)
			m.Volume = v
			return rest, err
		case 4:
			v, rest, err := takeBool(b)
			m.Muted = v
			return rest, err
		default:
			return skipUnknown(typ, b)
		}
	})
}

type MediaPlayerCommandRequest struct {
	Key          uint32
	HasCommand   bool
	Command      int32
	HasVolume    bool
	Volume       float32
	HasMediaURL  bool
	MediaURL     string
}

func (*MediaPlayerCommandRequest) MessageType() MessageType { return MessageTypeMediaPlayerCommandRequest }

func (m *MediaPlayerCommandRequest) Marshal() ([]byte, error) {
	var b []byte
	b = appendUint32(b, 1, m.Key)
	b = appendBool(b, 2, m.HasCommand)
	b = appendInt32(b, 3, m.Command)
	b = appendBool(b, 4, m.HasVolume)
	b = appendFloat32(b, 5, m.Volume)
	b = appendBool(b, 6, m.HasMediaURL)
	b = appendString(b, 7, m.MediaURL)
	return b, nil
}

func (m *MediaPlayerCommandRequest) Unmarshal(data []byte) error {
	return forEachField(data, func(num protowireNumber, typ protowireType, b []byte) ([]byte, error) {
		switch num {
		case 1:
			v, rest, err := takeUint32(b)
			m.Key = v
			return rest, err
		case 2:
			v, rest, err := takeBool(b)
			m.HasCommand = v
			return rest, err
		case 3:
			v, rest, err := takeInt32(b)
			m.Command = v
			return rest, err
		case 4:
			v, rest, err := takeBool(b)
			m.HasVolume = v
			return rest, err
		case 5:
			v, rest, err := takeFloat32(b)
			m.Volume = v
			return rest, err
		case 6:
			v, rest, err := takeBool(b)
			m.HasMediaURL = v
			return rest, err
		case 7:
			v, rest, err := takeString(b)
			m.MediaURL = v
			return rest, err
		default:
			return skipUnknown(typ, b)
		}
	})
}

// ======================================================= AlarmControlPanel

type ListEntitiesAlarmControlPanelResponse struct {
	EntityBase
	SupportedFeatures uint32
	RequiresCode      bool
	RequiresCodeToArm bool
}

func (*ListEntitiesAlarmControlPanelResponse) MessageType() MessageType {
	return MessageTypeListEntitiesAlarmControlPanelResponse
}

func (m *ListEntitiesAlarmControlPanelResponse) Marshal() ([]byte, error) {
	b := appendEntityBase(nil, m.EntityBase)
	b = appendUint32(b, 8, m.SupportedFeatures)
	b = appendBool(b, 9, m.RequiresCode)
	b = appendBool(b, 10, m.RequiresCodeToArm)
	return b, nil
}

func (m *ListEntitiesAlarmControlPanelResponse) Unmarshal(data []byte) error {
	return forEachField(data, func(num protowireNumber, typ protowireType, b []byte) ([]byte, error) {
		if ok, rest, err := takeEntityBaseField(&m.EntityBase, num, b); ok {
			return rest, err
		}
		switch num {
		case 8:
			v, rest, err := takeUint32(b)
			m.SupportedFeatures = v
			return rest, err
		case 9:
			v, rest, err := takeBool(b)
			m.RequiresCode = v
			return rest, err
		case 10:
			v, rest, err := takeBool(b)
			m.RequiresCodeToArm = v
			return rest, err
		default:
			return skipUnknown(typ, b)
		}
	})
}

type AlarmControlPanelStateResponse struct {
	Key   uint32
	State int32
}

func (*AlarmControlPanelStateResponse) MessageType() MessageType {
	return MessageTypeAlarmControlPanelStateResponse
}

func (m *AlarmControlPanelStateResponse) Marshal() ([]byte, error) {
	var b []byte
	b = appendUint32(b, 1, m.Key)
	b = appendInt32(b, 2, m.State)
	return b, nil
}

func (m *AlarmControlPanelStateResponse) Unmarshal(data []byte) error {
	return forEachField(data, func(num protowireNumber, typ protowireType, b []byte) ([]byte, error) {
		switch num {
		case 1:
			v, rest, err := takeUint32(b)
			m.Key = v
			return rest, err
		case 2:
			v, rest, err := takeInt32(b)
			m.State = v
			return rest, err
		default:
			return skipUnknown(typ, b)
		}
	})
}

type AlarmControlPanelCommandRequest struct {
	Key     uint32
	Command int32
	Code    string
}

func (*AlarmControlPanelCommandRequest) MessageType() MessageType {
	return MessageTypeAlarmControlPanelCommandRequest
}

func (m *AlarmControlPanelCommandRequest) Marshal() ([]byte, error) {
	var b []byte
	b = appendUint32(b, 1, m.Key)
	b = appendInt32(b, 2, m.Command)
	b = appendString(b, 3, m.Code)
	return b, nil
}

func (m *AlarmControlPanelCommandRequest) Unmarshal(data []byte) error {
	return forEachField(data, func(num protowireNumber, typ protowireType, b []byte) ([]byte, error) {
		switch num {
		case 1:
			v, rest, err := takeUint32(b)
			m.Key = v
			return rest, err
		case 2:
			v, rest, err := takeInt32(b)
			m.Command = v
			return rest, err
		case 3:
			v, rest, err := takeString(b)
			m.Code = v
			return rest, err
		default:
			return skipUnknown(typ, b)
		}
	})
}
