package conn

import (
	"net/url"

	"github.com/rileyhilliard/pcmon/internal/errors"
)

// StreamPath is the websocket path served by the producer.
const StreamPath = "/ws"

// Endpoint derives the stream URL from the dashboard origin: same host and
// port, path /ws, wss for an https origin and ws for http. Query and
// fragment are dropped.
func Endpoint(origin string) (string, error) {
	u, err := url.Parse(origin)
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Origin is not a valid URL: "+origin,
			"Use something like http://127.0.0.1:8080")
	}

	var scheme string
	switch u.Scheme {
	case "https":
		scheme = "wss"
	case "http":
		scheme = "ws"
	default:
		return "", errors.New(errors.ErrConfig,
			"Origin must use http or https: "+origin,
			"Use something like http://127.0.0.1:8080")
	}
	if u.Host == "" {
		return "", errors.New(errors.ErrConfig,
			"Origin has no host: "+origin,
			"Use something like http://127.0.0.1:8080")
	}

	ws := url.URL{Scheme: scheme, Host: u.Host, Path: StreamPath}
	return ws.String(), nil
}
