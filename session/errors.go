package session

import "errors"

// Sentinel errors for the session layer (spec.md §7). Transport errors are
// not redeclared here — callers match them with errors.Is against the
// transport package's own sentinels, since this package always wraps them
// with fmt.Errorf and %w.
var (
	ErrDeviceRequestShutdown      = errors.New("device requested shutdown")
	ErrInvalidPassword            = errors.New("invalid password")
	ErrUserServiceUnknownArgType  = errors.New("user service: unknown arg type")
	ErrStateUpdateForUnknownEntity = errors.New("state update for unknown entity")
	ErrUnknownListEntitiesResponse = errors.New("unknown list-entities response")
	ErrUnknownEntityCategory      = errors.New("unknown entity category")
	ErrUnknownIncomingMessageType = errors.New("unknown incoming message type")
	ErrUnknownLogLevel            = errors.New("unknown log level")
	ErrWrongMessageType           = errors.New("wrong message type")
	ErrLogChannelSend             = errors.New("log channel send error")
	ErrStateUpdateChannelSend     = errors.New("state update channel send error")
	ErrNotConnected               = errors.New("session not connected")
	ErrAlreadyConnected           = errors.New("session already connected")
)
