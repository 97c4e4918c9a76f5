package gateway

import (
	"time"

	"github.com/catuhana/rive/auth"
)

// Builder configures and constructs a Gateway.
type Builder struct {
	config Config
}

// NewBuilder returns a Builder seeded with NewConfig's defaults.
func NewBuilder() *Builder {
	return &Builder{config: NewConfig()}
}

// Auth sets the credential sent once the socket connects.
func (b *Builder) Auth(a auth.Authentication) *Builder {
	b.config.Auth = a
	return b
}

// BaseURL overrides the WebSocket endpoint.
func (b *Builder) BaseURL(url string) *Builder {
	b.config.BaseURL = url
	return b
}

// HeartbeatFn overrides the heartbeat payload function. Passing nil
// disables heartbeating entirely.
func (b *Builder) HeartbeatFn(fn HeartbeatFunc) *Builder {
	b.config.Heartbeat = fn
	return b
}

// HeartbeatInterval overrides the heartbeat timer period.
func (b *Builder) HeartbeatInterval(d time.Duration) *Builder {
	b.config.HeartbeatInterval = d
	return b
}

// Build consumes the builder, returning a configured, not-yet-connected
// Gateway.
func (b *Builder) Build() *Gateway {
	return WithConfig(b.config)
}
