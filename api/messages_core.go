package api

import (
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// HelloRequest is the first message the client sends after a transport
// connects (spec.md §4.5 "Startup").
type HelloRequest struct {
	ClientInfo     string
	APIVersionMajor uint32
	APIVersionMinor uint32
}

func (*HelloRequest) MessageType() MessageType { return MessageTypeHelloRequest }

func (m *HelloRequest) Marshal() ([]byte, error) {
	var b []byte
	b = appendString(b, 1, m.ClientInfo)
	b = appendUint32(b, 2, m.APIVersionMajor)
	b = appendUint32(b, 3, m.APIVersionMinor)
	return b, nil
}

func (m *HelloRequest) Unmarshal(data []byte) error {
	return forEachField(data, func(num protowireNumber, typ protowireType, b []byte) ([]byte, error) {
		switch num {
		case 1:
			v, rest, err := takeString(b)
			m.ClientInfo = v
			return rest, err
		case 2:
			v, rest, err := takeUint32(b)
			m.APIVersionMajor = v
			return rest, err
		case 3:
			v, rest, err := takeUint32(b)
			m.APIVersionMinor = v
			return rest, err
		default:
			return skipUnknown(typ, b)
		}
	})
}

// HelloResponse is the server's reply to HelloRequest.
type HelloResponse struct {
	APIVersionMajor uint32
	APIVersionMinor uint32
	ServerInfo      string
	Name            string
}

func (*HelloResponse) MessageType() MessageType { return MessageTypeHelloResponse }

func (m *HelloResponse) Marshal() ([]byte, error) {
	var b []byte
	b = appendUint32(b, 1, m.APIVersionMajor)
	b = appendUint32(b, 2, m.APIVersionMinor)
	b = appendString(b, 3, m.ServerInfo)
	b = appendString(b, 4, m.Name)
	return b, nil
}

func (m *HelloResponse) Unmarshal(data []byte) error {
	return forEachField(data, func(num protowireNumber, typ protowireType, b []byte) ([]byte, error) {
		switch num {
		case 1:
			v, rest, err := takeUint32(b)
			m.APIVersionMajor = v
			return rest, err
		case 2:
			v, rest, err := takeUint32(b)
			m.APIVersionMinor = v
			return rest, err
		case 3:
			v, rest, err := takeString(b)
			m.ServerInfo = v
			return rest, err
		case 4:
			v, rest, err := takeString(b)
			m.Name = v
			return rest, err
		default:
			return skipUnknown(typ, b)
		}
	})
}

// ConnectRequest carries the plaintext password (empty when the device has
// none configured, or when the Noise transport already authenticated via
// the PSK).
type ConnectRequest struct {
	Password string
}

func (*ConnectRequest) MessageType() MessageType { return MessageTypeConnectRequest }

func (m *ConnectRequest) Marshal() ([]byte, error) {
	return appendString(nil, 1, m.Password), nil
}

func (m *ConnectRequest) Unmarshal(data []byte) error {
	return forEachField(data, func(num protowireNumber, typ protowireType, b []byte) ([]byte, error) {
		switch num {
		case 1:
			v, rest, err := takeString(b)
			m.Password = v
			return rest, err
		default:
			return skipUnknown(typ, b)
		}
	})
}

// ConnectResponse reports whether the supplied password was accepted.
type ConnectResponse struct {
	InvalidPassword bool
}

func (*ConnectResponse) MessageType() MessageType { return MessageTypeConnectResponse }

func (m *ConnectResponse) Marshal() ([]byte, error) {
	return appendBool(nil, 1, m.InvalidPassword), nil
}

func (m *ConnectResponse) Unmarshal(data []byte) error {
	return forEachField(data, func(num protowireNumber, typ protowireType, b []byte) ([]byte, error) {
		switch num {
		case 1:
			v, rest, err := takeBool(b)
			m.InvalidPassword = v
			return rest, err
		default:
			return skipUnknown(typ, b)
		}
	})
}

type DisconnectRequest struct{}

func (*DisconnectRequest) MessageType() MessageType       { return MessageTypeDisconnectRequest }
func (*DisconnectRequest) Marshal() ([]byte, error)       { return nil, nil }
func (*DisconnectRequest) Unmarshal(data []byte) error    { return forEachField(data, skipAll) }

type DisconnectResponse struct{}

func (*DisconnectResponse) MessageType() MessageType    { return MessageTypeDisconnectResponse }
func (*DisconnectResponse) Marshal() ([]byte, error)    { return nil, nil }
func (*DisconnectResponse) Unmarshal(data []byte) error { return forEachField(data, skipAll) }

type PingRequest struct{}

func (*PingRequest) MessageType() MessageType    { return MessageTypePingRequest }
func (*PingRequest) Marshal() ([]byte, error)    { return nil, nil }
func (*PingRequest) Unmarshal(data []byte) error { return forEachField(data, skipAll) }

type PingResponse struct{}

func (*PingResponse) MessageType() MessageType    { return MessageTypePingResponse }
func (*PingResponse) Marshal() ([]byte, error)    { return nil, nil }
func (*PingResponse) Unmarshal(data []byte) error { return forEachField(data, skipAll) }

type DeviceInfoRequest struct{}

func (*DeviceInfoRequest) MessageType() MessageType    { return MessageTypeDeviceInfoRequest }
func (*DeviceInfoRequest) Marshal() ([]byte, error)    { return nil, nil }
func (*DeviceInfoRequest) Unmarshal(data []byte) error { return forEachField(data, skipAll) }

// DeviceInfoResponse describes the device itself (not an entity).
type DeviceInfoResponse struct {
	UsesPassword     bool
	Name             string
	MacAddress       string
	ESPHomeVersion   string
	CompilationTime  string
	Model            string
	HasDeepSleep     bool
	ProjectName      string
	ProjectVersion   string
	WebserverPort    uint32
	Manufacturer     string
	FriendlyName     string
	Bluetooth        bool
	SuggestedArea    string
}

func (*DeviceInfoResponse) MessageType() MessageType { return MessageTypeDeviceInfoResponse }

func (m *DeviceInfoResponse) Marshal() ([]byte, error) {
	var b []byte
	b = appendBool(b, 1, m.UsesPassword)
	b = appendString(b, 2, m.Name)
	b = appendString(b, 3, m.MacAddress)
	b = appendString(b, 4, m.ESPHomeVersion)
	b = appendString(b, 5, m.CompilationTime)
	b = appendString(b, 6, m.Model)
	b = appendBool(b, 7, m.HasDeepSleep)
	b = appendString(b, 8, m.ProjectName)
	b = appendString(b, 9, m.ProjectVersion)
	b = appendUint32(b, 10, m.WebserverPort)
	b = appendString(b, 11, m.Manufacturer)
	b = appendString(b, 12, m.FriendlyName)
	b = appendBool(b, 13, m.Bluetooth)
	b = appendString(b, 14, m.SuggestedArea)
	return b, nil
}

func (m *DeviceInfoResponse) Unmarshal(data []byte) error {
	return forEachField(data, func(num protowireNumber, typ protowireType, b []byte) ([]byte, error) {
		switch num {
		case 1:
			v, rest, err := takeBool(b)
			m.UsesPassword = v
			return rest, err
		case 2:
			v, rest, err := takeString(b)
			m.Name = v
			return rest, err
		case 3:
			v, rest, err := takeString(b)
			m.MacAddress = v
			return rest, err
		case 4:
			v, rest, err := takeString(b)
			m.ESPHomeVersion = v
			return rest, err
		case 5:
			v, rest, err := takeString(b)
			m.CompilationTime = v
			return rest, err
		case 6:
			v, rest, err := takeString(b)
			m.Model = v
			return rest, err
		case 7:
			v, rest, err := takeBool(b)
			m.HasDeepSleep = v
			return rest, err
		case 8:
			v, rest, err := takeString(b)
			m.ProjectName = v
			return rest, err
		case 9:
			v, rest, err := takeString(b)
			m.ProjectVersion = v
			return rest, err
		case 10:
			v, rest, err := takeUint32(b)
			m.WebserverPort = v
			return rest, err
		case 11:
			v, rest, err := takeString(b)
			m.Manufacturer = v
			return rest, err
		case 12:
			v, rest, err := takeString(b)
			m.FriendlyName = v
			return rest, err
		case 13:
			v, rest, err := takeBool(b)
			m.Bluetooth = v
			return rest, err
		case 14:
			v, rest, err := takeString(b)
			m.SuggestedArea = v
			return rest, err
		default:
			return skipUnknown(typ, b)
		}
	})
}

type ListEntitiesRequest struct{}

func (*ListEntitiesRequest) MessageType() MessageType    { return MessageTypeListEntitiesRequest }
func (*ListEntitiesRequest) Marshal() ([]byte, error)    { return nil, nil }
func (*ListEntitiesRequest) Unmarshal(data []byte) error { return forEachField(data, skipAll) }

type ListEntitiesDoneResponse struct{}

func (*ListEntitiesDoneResponse) MessageType() MessageType    { return MessageTypeListEntitiesDoneResponse }
func (*ListEntitiesDoneResponse) Marshal() ([]byte, error)    { return nil, nil }
func (*ListEntitiesDoneResponse) Unmarshal(data []byte) error { return forEachField(data, skipAll) }

type SubscribeStatesRequest struct{}

func (*SubscribeStatesRequest) MessageType() MessageType    { return MessageTypeSubscribeStatesRequest }
func (*SubscribeStatesRequest) Marshal() ([]byte, error)    { return nil, nil }
func (*SubscribeStatesRequest) Unmarshal(data []byte) error { return forEachField(data, skipAll) }

// SubscribeLogsRequest asks the device to start streaming SubscribeLogsResponse
// frames at or above level.
type SubscribeLogsRequest struct {
	Level      int32
	DumpConfig bool
}

func (*SubscribeLogsRequest) MessageType() MessageType { return MessageTypeSubscribeLogsRequest }

func (m *SubscribeLogsRequest) Marshal() ([]byte, error) {
	var b []byte
	b = appendInt32(b, 1, m.Level)
	b = appendBool(b, 2, m.DumpConfig)
	return b, nil
}

func (m *SubscribeLogsRequest) Unmarshal(data []byte) error {
	return forEachField(data, func(num protowireNumber, typ protowireType, b []byte) ([]byte, error) {
		switch num {
		case 1:
			v, rest, err := takeInt32(b)
			m.Level = v
			return rest, err
		case 2:
			v, rest, err := takeBool(b)
			m.DumpConfig = v
			return rest, err
		default:
			return skipUnknown(typ, b)
		}
	})
}

// SubscribeLogsResponse is one line of device log output.
type SubscribeLogsResponse struct {
	Level      int32
	Message    []byte
	SendFailed bool
}

func (*SubscribeLogsResponse) MessageType() MessageType { return MessageTypeSubscribeLogsResponse }

func (m *SubscribeLogsResponse) Marshal() ([]byte, error) {
	var b []byte
	b = appendInt32(b, 1, m.Level)
	b = appendBytes(b, 3, m.Message)
	b = appendBool(b, 4, m.SendFailed)
	return b, nil
}

func (m *SubscribeLogsResponse) Unmarshal(data []byte) error {
	return forEachField(data, func(num protowireNumber, typ protowireType, b []byte) ([]byte, error) {
		switch num {
		case 1:
			v, rest, err := takeInt32(b)
			m.Level = v
			return rest, err
		case 3:
			v, rest, err := takeBytes(b)
			m.Message = v
			return rest, err
		case 4:
			v, rest, err := takeBool(b)
			m.SendFailed = v
			return rest, err
		default:
			return skipUnknown(typ, b)
		}
	})
}

// GetTimeRequest is sent by the device, asking the client for wall-clock
// time (spec.md §4.5 "Asynchronous pump").
type GetTimeRequest struct{}

func (*GetTimeRequest) MessageType() MessageType    { return MessageTypeGetTimeRequest }
func (*GetTimeRequest) Marshal() ([]byte, error)    { return nil, nil }
func (*GetTimeRequest) Unmarshal(data []byte) error { return forEachField(data, skipAll) }

type GetTimeResponse struct {
	EpochSeconds uint32
}

func (*GetTimeResponse) MessageType() MessageType { return MessageTypeGetTimeResponse }

func (m *GetTimeResponse) Marshal() ([]byte, error) {
	return appendUint32(nil, 1, m.EpochSeconds), nil
}

func (m *GetTimeResponse) Unmarshal(data []byte) error {
	return forEachField(data, func(num protowireNumber, typ protowireType, b []byte) ([]byte, error) {
		switch num {
		case 1:
			v, rest, err := takeUint32(b)
			m.EpochSeconds = v
			return rest, err
		default:
			return skipUnknown(typ, b)
		}
	})
}

// UserServiceArgType is a declared service argument's type (spec.md §3
// "UserService"). The array variants have no dedicated wire field in
// ExecuteServiceRequest below, which flattens scalar bool/int/float/string
// args into one repeated slice per type.
type UserServiceArgType int32

const (
	UserServiceArgTypeBool UserServiceArgType = iota
	UserServiceArgTypeInt
	UserServiceArgTypeFloat
	UserServiceArgTypeString
	UserServiceArgTypeBoolArray
	UserServiceArgTypeIntArray
	UserServiceArgTypeFloatArray
	UserServiceArgTypeStringArray
)

// ListEntitiesServicesArgument is one argument of a user-defined service.
type ListEntitiesServicesArgument struct {
	Name string
	Type int32
}

// ListEntitiesServicesResponse declares a device-defined RPC endpoint,
// callable via ExecuteServiceRequest.
type ListEntitiesServicesResponse struct {
	Name string
	Key  uint32
	Args []ListEntitiesServicesArgument
}

func (*ListEntitiesServicesResponse) MessageType() MessageType {
	return MessageTypeListEntitiesServicesResponse
}

func (m *ListEntitiesServicesResponse) Marshal() ([]byte, error) {
	var b []byte
	b = appendString(b, 1, m.Name)
	b = appendUint32(b, 2, m.Key)
	for _, a := range m.Args {
		var ab []byte
		ab = appendString(ab, 1, a.Name)
		ab = appendInt32(ab, 2, a.Type)
		b = appendBytes(b, 3, ab)
	}
	return b, nil
}

func (m *ListEntitiesServicesResponse) Unmarshal(data []byte) error {
	return forEachField(data, func(num protowireNumber, typ protowireType, b []byte) ([]byte, error) {
		switch num {
		case 1:
			v, rest, err := takeString(b)
			m.Name = v
			return rest, err
		case 2:
			v, rest, err := takeUint32(b)
			m.Key = v
			return rest, err
		case 3:
			ab, rest, err := takeBytes(b)
			if err != nil {
				return nil, err
			}
			var arg ListEntitiesServicesArgument
			if err := forEachField(ab, func(n protowireNumber, t protowireType, fb []byte) ([]byte, error) {
				switch n {
				case 1:
					v, r, err := takeString(fb)
					arg.Name = v
					return r, err
				case 2:
					v, r, err := takeInt32(fb)
					arg.Type = v
					return r, err
				default:
					return skipUnknown(t, fb)
				}
			}); err != nil {
				return nil, err
			}
			m.Args = append(m.Args, arg)
			return rest, nil
		default:
			return skipUnknown(typ, b)
		}
	})
}

// ExecuteServiceRequest invokes a device-defined service by key; arg values
// are carried in parallel typed-array fields mirroring the real API, here
// flattened to the types the spec's UserServiceArgType enumerates.
type ExecuteServiceRequest struct {
	Key          uint32
	BoolArgs     []bool
	IntArgs      []int32
	FloatArgs    []float32
	StringArgs   []string
}

func (*ExecuteServiceRequest) MessageType() MessageType { return MessageTypeExecuteServiceRequest }

func (m *ExecuteServiceRequest) Marshal() ([]byte, error) {
	var b []byte
	b = appendUint32(b, 1, m.Key)
	// Every element is written, zero values included, so argument positions
	// survive the round trip.
	for _, v := range m.BoolArgs {
		b = protowire.AppendTag(b, 2, protowire.VarintType)
		b = protowire.AppendVarint(b, protowire.EncodeBool(v))
	}
	b = appendInt32Slice(b, 3, m.IntArgs)
	for _, v := range m.FloatArgs {
		b = protowire.AppendTag(b, 4, protowire.Fixed32Type)
		b = protowire.AppendFixed32(b, math.Float32bits(v))
	}
	b = appendStringSlice(b, 5, m.StringArgs)
	return b, nil
}

func (m *ExecuteServiceRequest) Unmarshal(data []byte) error {
	return forEachField(data, func(num protowireNumber, typ protowireType, b []byte) ([]byte, error) {
		switch num {
		case 1:
			v, rest, err := takeUint32(b)
			m.Key = v
			return rest, err
		case 2:
			v, rest, err := takeBool(b)
			m.BoolArgs = append(m.BoolArgs, v)
			return rest, err
		case 3:
			v, rest, err := takeInt32(b)
			m.IntArgs = append(m.IntArgs, v)
			return rest, err
		case 4:
			v, rest, err := takeFloat32(b)
			m.FloatArgs = append(m.FloatArgs, v)
			return rest, err
		case 5:
			v, rest, err := takeString(b)
			m.StringArgs = append(m.StringArgs, v)
			return rest, err
		default:
			return skipUnknown(typ, b)
		}
	})
}

func skipAll(num protowireNumber, typ protowireType, b []byte) ([]byte, error) {
	return skipUnknown(typ, b)
}
