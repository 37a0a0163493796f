package session

import (
	"context"
	"fmt"

	"github.com/esphome-go/api/api"
)

// ServiceArgs holds the caller-supplied values for one ExecuteService call,
// grouped by wire type the same way ExecuteServiceRequest flattens them.
type ServiceArgs struct {
	Bool   []bool
	Int    []int32
	Float  []float32
	String []string
}

// ExecuteService invokes a device-defined service by key, after checking
// every declared argument against a supported scalar arg_type (spec.md §3:
// UserService.arg_type ∈ {Bool, Int, Float, String, BoolArray, IntArray,
// FloatArray, StringArray}). The array variants have no representation in
// this client's flattened ExecuteServiceRequest wire encoding, so a service
// declaring one is rejected with ErrUserServiceUnknownArgType rather than
// silently dropping the argument.
func (s *Session) ExecuteService(ctx context.Context, key uint32, args ServiceArgs) error {
	svc, ok := s.catalogue.Services.FromKey(key)
	if !ok {
		return fmt.Errorf("%w: service key %d", ErrStateUpdateForUnknownEntity, key)
	}
	for _, arg := range svc.Args {
		switch api.UserServiceArgType(arg.Type) {
		case api.UserServiceArgTypeBool, api.UserServiceArgTypeInt,
			api.UserServiceArgTypeFloat, api.UserServiceArgTypeString:
		default:
			return fmt.Errorf("%w: service %q arg %q type %d", ErrUserServiceUnknownArgType, svc.Name, arg.Name, arg.Type)
		}
	}

	req := &api.ExecuteServiceRequest{
		Key:        key,
		BoolArgs:   args.Bool,
		IntArgs:    args.Int,
		FloatArgs:  args.Float,
		StringArgs: args.String,
	}
	return s.sendCommand(ctx, req)
}
