package gateway

import (
	"encoding/binary"
	"time"

	"github.com/catuhana/rive/auth"
)

const (
	defaultBaseURL           = "wss://ws.revolt.chat"
	defaultHeartbeatInterval = 15 * time.Second
)

// HeartbeatFunc produces the payload written as the heartbeat Ping's
// data field.
type HeartbeatFunc func() []byte

// DefaultHeartbeat encodes the current Unix time in milliseconds as a
// big-endian 8-byte array, the same payload shape the original
// heartbeat function produces.
func DefaultHeartbeat() []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(time.Now().UnixMilli()))
	return buf
}

// Config configures a Gateway.
type Config struct {
	Auth              auth.Authentication
	BaseURL           string
	Heartbeat         HeartbeatFunc
	HeartbeatInterval time.Duration
}

// NewConfig returns a Config with no credential, the default Revolt
// WebSocket URL, the default heartbeat function and a 15 second
// heartbeat interval.
func NewConfig() Config {
	return Config{
		Auth:              auth.None(),
		BaseURL:           defaultBaseURL,
		Heartbeat:         DefaultHeartbeat,
		HeartbeatInterval: defaultHeartbeatInterval,
	}
}
