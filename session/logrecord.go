package session

// LogLevel mirrors spec.md §3's LogRecord.level enumeration, in the order
// ESPHome's SubscribeLogsResponse.level field uses.
type LogLevel int32

const (
	LogLevelNone LogLevel = iota
	LogLevelError
	LogLevelWarn
	LogLevelInfo
	LogLevelConfig
	LogLevelDebug
	LogLevelVerbose
	LogLevelVeryVerbose
)

// Valid reports whether l is one of the known log levels (spec.md §4.5: an
// unknown numeric log level is a fatal error for the pump).
func (l LogLevel) Valid() bool { return l >= LogLevelNone && l <= LogLevelVeryVerbose }

// LogRecord is one line of device log output, pushed to a log sink
// (spec.md §3).
type LogRecord struct {
	Level      LogLevel
	Message    []byte
	SendFailed bool
}
