package conn

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rileyhilliard/pcmon/internal/errors"
)

// Transport is one open stream. ReadMessage blocks until a data message
// arrives or the stream ends.
type Transport interface {
	ReadMessage() ([]byte, error)
	Close() error
}

// Dialer opens transports.
type Dialer interface {
	Dial(ctx context.Context, endpoint string) (Transport, error)
}

// Defaults for WebsocketDialer.
const (
	DefaultHandshakeTimeout = 5 * time.Second
	DefaultReadLimit        = 1 << 20
)

// WebsocketDialer dials the producer with gorilla/websocket.
type WebsocketDialer struct {
	HandshakeTimeout time.Duration
	ReadLimit        int64
}

// Dial opens a websocket connection to endpoint.
func (d WebsocketDialer) Dial(ctx context.Context, endpoint string) (Transport, error) {
	timeout := d.HandshakeTimeout
	if timeout <= 0 {
		timeout = DefaultHandshakeTimeout
	}
	limit := d.ReadLimit
	if limit <= 0 {
		limit = DefaultReadLimit
	}

	dialer := websocket.Dialer{
		Proxy:            http.ProxyFromEnvironment,
		HandshakeTimeout: timeout,
	}
	c, resp, err := dialer.DialContext(ctx, endpoint, nil)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrTransport,
			"Can't connect to "+endpoint,
			"Check that the producer is running and reachable")
	}
	c.SetReadLimit(limit)
	return &wsTransport{conn: c}, nil
}

type wsTransport struct {
	conn *websocket.Conn
}

// ReadMessage skips anything that is not a text or binary data message.
func (t *wsTransport) ReadMessage() ([]byte, error) {
	for {
		kind, data, err := t.conn.ReadMessage()
		if err != nil {
			return nil, err
		}
		if kind == websocket.TextMessage || kind == websocket.BinaryMessage {
			return data, nil
		}
	}
}

// Close sends a normal close frame and drops the connection.
func (t *wsTransport) Close() error {
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	_ = t.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
	return t.conn.Close()
}

// closeKind classifies the error that ended a read pump.
type closeKind int

const (
	closeNormal     closeKind = iota // peer closed cleanly or went away
	closeUnexpected                  // close frame with an error code
	closeBroken                      // no close frame: reset, EOF, read limit
)

func classifyClose(err error) closeKind {
	switch {
	case websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway):
		return closeNormal
	case websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway):
		return closeUnexpected
	default:
		return closeBroken
	}
}
