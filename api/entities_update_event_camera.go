package api

// ================================================================== Update

type ListEntitiesUpdateResponse struct {
	EntityBase
	DeviceClass string
}

func (*ListEntitiesUpdateResponse) MessageType() MessageType { return MessageTypeListEntitiesUpdateResponse }

func (m *ListEntitiesUpdateResponse) Marshal() ([]byte, error) {
	b := appendEntityBase(nil, m.EntityBase)
	b = appendString(b, 8, m.DeviceClass)
	return b, nil
}

func (m *ListEntitiesUpdateResponse) Unmarshal(data []byte) error {
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

type UpdateStateResponse struct {
	Key             uint32
	MissingState    bool
	InProgress      bool
	HasProgress     bool
	Progress        float32
	CurrentVersion  string
	LatestVersion   string
	Title           string
	ReleaseSummary  string
	ReleaseURL      string
}

func (*UpdateStateResponse) MessageType() MessageType { return MessageTypeUpdateStateResponse }

func (m *UpdateStateResponse) Marshal() ([]byte, error) {
	var b []byte
	b = appendUint32(b, 1, m.Key)
	b = appendBool(b, 2, m.MissingState)
	b = appendBool(b, 3, m.InProgress)
	b = appendBool(b, 4, m.HasProgress)
	b = appendFloat32(b, 5, m.Progress)
	b = appendString(b, 6, m.CurrentVersion)
	b = appendString(b, 7, m.LatestVersion)
	b = appendString(b, 8, m.Title)
	b = appendString(b, 9, m.ReleaseSummary)
	b = appendString(b, 10, m.ReleaseURL)
	return b, nil
}

func (m *UpdateStateResponse) Unmarshal(data []byte) error {
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
			v, rest, err := takeBool(b)
			m.InProgress = v
			return rest, err
		case 4:
			v, rest, err := takeBool(b)
			m.HasProgress = v
			return rest, err
		case 5:
			v, rest, err := takeFloat32(b)
			m.Progress = v
			return rest, err
		case 6:
			v, rest, err := takeString(b)
			m.CurrentVersion = v
			return rest, err
		case 7:
			v, rest, err := takeString(b)
			m.LatestVersion = v
			return rest, err
		case 8:
			v, rest, err := takeString(b)
			m.Title = v
			return rest, err
		case 9:
			v, rest, err := takeString(b)
			m.ReleaseSummary = v
			return rest, err
		case 10:
			v, rest, err := takeString(b)
			m.ReleaseURL = v
			return rest, err
		default:
			return skipUnknown(typ, b)
		}
	})
}

type UpdateCommandRequest struct {
	Key     uint32
	Command int32
}

func (*UpdateCommandRequest) MessageType() MessageType { return MessageTypeUpdateCommandRequest }

func (m *UpdateCommandRequest) Marshal() ([]byte, error) {
	var b []byte
	b = appendUint32(b, 1, m.Key)
	b = appendInt32(b, 2, m.Command)
	return b, nil
}

func (m *UpdateCommandRequest) Unmarshal(data []byte) error {
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
		default:
			return skipUnknown(typ, b)
		}
	})
}

// =================================================================== Event
//
// Event is list+state only (original_source's entity.rs carries it without
// a command variant): an Event entity reports discrete occurrences, it has
// nothing a client can command.

type ListEntitiesEventResponse struct {
	EntityBase
	DeviceClass string
	EventTypes  []string
}

func (*ListEntitiesEventResponse) MessageType() MessageType { return MessageTypeListEntitiesEventResponse }

func (m *ListEntitiesEventResponse) Marshal() ([]byte, error) {
	b := appendEntityBase(nil, m.EntityBase)
	b = appendString(b, 8, m.DeviceClass)
	b = appendStringSlice(b, 9, m.EventTypes)
	return b, nil
}

func (m *ListEntitiesEventResponse) Unmarshal(data []byte) error {
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
			v, rest, err := takeString(b)
			m.EventTypes = append(m.EventTypes, v)
			return rest, err
		default:
			return skipUnknown(typ, b)
		}
	})
}

// EventResponse carries the registry name (spec.md §6 reserves 108 as
// EventResponse, not EventStateResponse: events are edges, not states).
type EventResponse struct {
	Key       uint32
	EventType string
}

func (*EventResponse) MessageType() MessageType { return MessageTypeEventResponse }

func (m *EventResponse) Marshal() ([]byte, error) {
	var b []byte
	b = appendUint32(b, 1, m.Key)
	b = appendString(b, 2, m.EventType)
	return b, nil
}

func (m *EventResponse) Unmarshal(data []byte) error {
	return forEachField(data, func(num protowireNumber, typ protowireType, b []byte) ([]byte, error) {
		switch num {
		case 1:
			v, rest, err := takeUint32(b)
			m.Key = v
			return rest, err
		case 2:
			v, rest, err := takeString(b)
			m.EventType = v
			return rest, err
		default:
			return skipUnknown(typ, b)
		}
	})
}

// ================================================================== Camera
//
// Camera has no typed state message: instead of a push state, the client
// pulls still frames with CameraImageRequest and the device streams them
// back as (possibly several) CameraImageResponse frames, the last carrying
// Done=true.

type ListEntitiesCameraResponse struct {
	EntityBase
}

func (*ListEntitiesCameraResponse) MessageType() MessageType { return MessageTypeListEntitiesCameraResponse }

func (m *ListEntitiesCameraResponse) Marshal() ([]byte, error) {
	return appendEntityBase(nil, m.EntityBase), nil
}

func (m *ListEntitiesCameraResponse) Unmarshal(data []byte) error {
	return forEachField(data, func(num protowireNumber, typ protowireType, b []byte) ([]byte, error) {
		if ok, rest, err := takeEntityBaseField(&m.EntityBase, num, b); ok {
			return rest, err
		}
		return skipUnknown(typ, b)
	})
}

type CameraImageRequest struct {
	Key    uint32
	Single bool
	Stream bool
}

func (*CameraImageRequest) MessageType() MessageType { return MessageTypeCameraImageRequest }

func (m *CameraImageRequest) Marshal() ([]byte, error) {
	var b []byte
	b = appendUint32(b, 1, m.Key)
	b = appendBool(b, 2, m.Single)
	b = appendBool(b, 3, m.Stream)
	return b, nil
}

func (m *CameraImageRequest) Unmarshal(data []byte) error {
	return forEachField(data, func(num protowireNumber, typ protowireType, b []byte) ([]byte, error) {
		switch num {
		case 1:
			v, rest, err := takeUint32(b)
			m.Key = v
			return rest, err
		case 2:
			v, rest, err := takeBool(b)
			m.Single = v
			return rest, err
		case 3:
			v, rest, err := takeBool(b)
			m.Stream = v
			return rest, err
		default:
			return skipUnknown(typ, b)
		}
	})
}

type CameraImageResponse struct {
	Key  uint32
	Data []byte
	Done bool
}

func (*CameraImageResponse) MessageType() MessageType { return MessageTypeCameraImageResponse }

func (m *CameraImageResponse) Marshal() ([]byte, error) {
	var b []byte
	b = appendUint32(b, 1, m.Key)
	b = appendBytes(b, 2, m.Data)
	b = appendBool(b, 3, m.Done)
	return b, nil
}

func (m *CameraImageResponse) Unmarshal(data []byte) error {
	return forEachField(data, func(num protowireNumber, typ protowireType, b []byte) ([]byte, error) {
		switch num {
		case 1:
			v, rest, err := takeUint32(b)
			m.Key = v
			return rest, err
		case 2:
			v, rest, err := takeBytes(b)
			m.Data = v
			return rest, err
		case 3:
			v, rest, err := takeBool(b)
			m.Done = v
			return rest, err
		default:
			return skipUnknown(typ, b)
		}
	})
}
