// Package gateway owns a single duplex WebSocket connection to the
// Revolt gateway and drives it through its connect/authenticate/
// heartbeat lifecycle, exposing a typed inbound event stream.
package gateway

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/catuhana/rive/auth"
	"github.com/catuhana/rive/event"
	"github.com/catuhana/rive/logging"
)

type state int

const (
	stateDisconnected state = iota
	stateConnecting
	stateAwaitingAuthAck
	stateRunning
)

type inboundFrame struct {
	data   []byte
	closed bool
	err    error
}

// Gateway is a single-owner connection engine: NextEvent and Send both
// require exclusive access to it, left to the caller to serialize the
// same way the original engine does.
type Gateway struct {
	config Config

	mu              sync.Mutex
	state           state
	conn            *websocket.Conn
	writeMu         sync.Mutex
	pendingAuth     bool
	heartbeatTicker *time.Ticker
	inbound         chan inboundFrame
	readerDone      chan struct{}
}

// New returns a Gateway using the default URL and the given
// credential.
func New(a auth.Authentication) *Gateway {
	cfg := NewConfig()
	cfg.Auth = a
	return WithConfig(cfg)
}

// WithURL returns a Gateway using a custom URL.
func WithURL(url string, a auth.Authentication) *Gateway {
	cfg := NewConfig()
	cfg.Auth = a
	cfg.BaseURL = url
	return WithConfig(cfg)
}

// WithConfig returns a Gateway built from an explicit Config.
func WithConfig(cfg Config) *Gateway {
	return &Gateway{config: cfg, state: stateDisconnected}
}

// NextEvent returns the next inbound typed event, transparently
// (re)connecting and authenticating as needed. It blocks until an
// event is available, the context is cancelled, or the connection
// fails.
func (g *Gateway) NextEvent(ctx context.Context) (event.Inbound, *ReceiveError) {
	for {
		g.mu.Lock()
		st := g.state
		g.mu.Unlock()

		if st == stateDisconnected {
			if err := g.connect(ctx); err != nil {
				return nil, err
			}
			continue
		}

		g.mu.Lock()
		pendingAuth := g.pendingAuth
		var heartbeatC <-chan time.Time
		if g.heartbeatTicker != nil {
			heartbeatC = g.heartbeatTicker.C
		}
		inboundC := g.inbound
		g.mu.Unlock()

		if pendingAuth {
			if err := g.writeAuthenticate(); err != nil {
				return nil, asReceiveError(err)
			}
			g.mu.Lock()
			g.pendingAuth = false
			g.mu.Unlock()
			continue
		}

		select {
		case <-ctx.Done():
			return nil, newReceiveError(ReceiveErrorIo, ctx.Err())

		case <-heartbeatC:
			if err := g.writeHeartbeat(); err != nil {
				return nil, asReceiveError(err)
			}
			continue

		case frame := <-inboundC:
			if frame.closed {
				g.disconnect()
				continue
			}
			if frame.err != nil {
				g.disconnect()
				return nil, newReceiveError(ReceiveErrorIo, frame.err)
			}

			ev, derr := event.Decode(frame.data)
			if derr != nil {
				g.disconnect()
				return nil, newReceiveError(ReceiveErrorDeserialize, derr)
			}

			if _, ok := ev.(event.Authenticated); ok {
				g.mu.Lock()
				if g.state == stateAwaitingAuthAck {
					g.armHeartbeatLocked()
					g.state = stateRunning
				}
				g.mu.Unlock()
				logging.Infoln("gateway: authenticated, heartbeat armed")
			}

			return ev, nil
		}
	}
}

// Send serialises and writes one outbound command.
func (g *Gateway) Send(cmd event.Outbound) *SendError {
	g.mu.Lock()
	conn := g.conn
	g.mu.Unlock()

	if conn == nil {
		return newSendError(SendErrorSend, fmt.Errorf("gateway: not connected"))
	}

	body, err := event.Encode(cmd)
	if err != nil {
		return newSendError(SendErrorSerialize, err)
	}

	return g.write(conn, body)
}

// Close sends a protocol close frame and transitions to Disconnected.
func (g *Gateway) Close() *SendError {
	g.mu.Lock()
	conn := g.conn
	g.mu.Unlock()

	if conn == nil {
		return nil
	}

	g.writeMu.Lock()
	err := conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	g.writeMu.Unlock()

	g.disconnect()

	if err != nil {
		return newSendError(SendErrorSend, err)
	}
	return nil
}

func (g *Gateway) connect(ctx context.Context) *ReceiveError {
	header := http.Header{"User-Agent": []string{"rive-gateway"}}
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, g.config.BaseURL, header)
	if err != nil {
		logging.Warnf("gateway: failed to connect to %s: %v", g.config.BaseURL, err)
		return newReceiveError(ReceiveErrorReconnect, err)
	}
	logging.Infoln("gateway: connected to", g.config.BaseURL)

	inbound := make(chan inboundFrame)
	done := make(chan struct{})

	g.mu.Lock()
	g.conn = conn
	g.inbound = inbound
	g.readerDone = done
	g.state = stateConnecting
	if !g.config.Auth.IsNone() {
		g.pendingAuth = true
		g.state = stateAwaitingAuthAck
	} else {
		g.state = stateRunning
	}
	g.mu.Unlock()

	go g.readLoop(conn, inbound, done)

	return nil
}

func (g *Gateway) readLoop(conn *websocket.Conn, out chan<- inboundFrame, done chan struct{}) {
	defer close(done)
	for {
		messageType, data, err := conn.ReadMessage()
		if err != nil {
			frame := inboundFrame{err: err}
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				frame = inboundFrame{closed: true}
			}
			select {
			case out <- frame:
			case <-done:
			}
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}
		select {
		case out <- inboundFrame{data: data}:
		case <-done:
			return
		}
	}
}

func (g *Gateway) writeAuthenticate() *SendError {
	g.mu.Lock()
	a := g.config.Auth
	conn := g.conn
	g.mu.Unlock()

	cmd := event.Authenticate{Token: a.Value()}

	body, err := event.Encode(cmd)
	if err != nil {
		return newSendError(SendErrorSerialize, err)
	}
	return g.write(conn, body)
}

func (g *Gateway) writeHeartbeat() *SendError {
	g.mu.Lock()
	fn := g.config.Heartbeat
	conn := g.conn
	g.mu.Unlock()

	if fn == nil {
		return nil
	}

	body, err := event.Encode(event.Ping{Data: event.PingData(fn())})
	if err != nil {
		return newSendError(SendErrorSerialize, err)
	}
	return g.write(conn, body)
}

func (g *Gateway) write(conn *websocket.Conn, body []byte) *SendError {
	if conn == nil {
		return newSendError(SendErrorSend, fmt.Errorf("gateway: not connected"))
	}
	g.writeMu.Lock()
	defer g.writeMu.Unlock()
	if err := conn.WriteMessage(websocket.TextMessage, body); err != nil {
		return newSendError(SendErrorSend, err)
	}
	return nil
}

// armHeartbeatLocked starts the heartbeat ticker. Callers must hold
// g.mu.
func (g *Gateway) armHeartbeatLocked() {
	if g.config.Heartbeat == nil {
		return
	}
	g.heartbeatTicker = time.NewTicker(g.config.HeartbeatInterval)
}

func (g *Gateway) disconnect() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != stateDisconnected {
		logging.Infoln("gateway: disconnected")
	}
	if g.heartbeatTicker != nil {
		g.heartbeatTicker.Stop()
		g.heartbeatTicker = nil
	}
	if g.conn != nil {
		_ = g.conn.Close()
		g.conn = nil
	}
	g.pendingAuth = false
	g.state = stateDisconnected
}
