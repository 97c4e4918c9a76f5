package event

import "github.com/catuhana/rive/id"

// Outbound is any client-to-server command sent over the gateway.
type Outbound interface {
	Type() Type
}

const (
	TypeAuthenticate Type = "Authenticate"
	TypePing         Type = "Ping"
	TypeBeginTyping  Type = "BeginTyping"
	TypeEndTyping    Type = "EndTyping"
)

// Authenticate opens a session. The wire protocol does not
// distinguish session/bot/MFA tokens in the frame itself; the server
// infers the credential kind from the token's own format.
type Authenticate struct {
	Token string `json:"token"`
}

func (Authenticate) Type() Type { return TypeAuthenticate }

// Ping carries the heartbeat payload a Gateway writes on each
// heartbeat tick (see gateway.HeartbeatFunc).
type Ping struct {
	Data PingData `json:"data"`
}

func (Ping) Type() Type { return TypePing }

type BeginTyping struct {
	Channel id.Id[id.Channel] `json:"channel"`
}

func (BeginTyping) Type() Type { return TypeBeginTyping }

type EndTyping struct {
	Channel id.Id[id.Channel] `json:"channel"`
}

func (EndTyping) Type() Type { return TypeEndTyping }
