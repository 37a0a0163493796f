package session

import "time"

// sensible defaults for optional session config (spec.md §4.8 /
// SPEC_FULL.md §4.8).
const (
	defaultClientInfo     = "goesphomeapi"
	defaultAPIVersionMajor = 1
	defaultAPIVersionMinor = 10
	defaultPingInterval    = 15 * time.Second
	defaultRequestTimeout  = 10 * time.Second
)

// Config configures a Session. There is no file/env loading here — that is
// the excluded CLI/config-loading collaborator (spec.md §1); callers build
// a Config directly.
type Config struct {
	// Address is "host:port", usually with port 6053.
	Address string

	// Password authenticates ConnectRequest. Leave empty for a device
	// with no password configured, or when the Noise PSK already
	// authenticates the connection.
	Password string

	// PSK, if non-empty, selects the Noise_NNpsk0 transport; otherwise
	// the session dials the plaintext varint framing.
	PSK string

	ClientInfo      string
	APIVersionMajor uint32
	APIVersionMinor uint32

	// PingInterval is the Session.Run keepalive period (SPEC_FULL.md §11).
	PingInterval time.Duration

	// RequestTimeout bounds each individual transaction's context deadline.
	RequestTimeout time.Duration
}

// applyDefaults fills zero-values in cfg with the teacher's
// applyDefaults(cfg) pattern: never mutate the caller's struct in place,
// return the filled copy.
func applyDefaults(cfg Config) Config {
	if cfg.ClientInfo == "" {
		cfg.ClientInfo = defaultClientInfo
	}
	if cfg.APIVersionMajor == 0 {
		cfg.APIVersionMajor = defaultAPIVersionMajor
	}
	if cfg.APIVersionMinor == 0 {
		cfg.APIVersionMinor = defaultAPIVersionMinor
	}
	if cfg.PingInterval <= 0 {
		cfg.PingInterval = defaultPingInterval
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultRequestTimeout
	}
	return cfg
}
