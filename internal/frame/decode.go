package frame

import (
	"bytes"
	"encoding/json"

	"github.com/rileyhilliard/pcmon/internal/errors"
)

// Decode parses one raw message into a Frame. Only syntax and shape are
// checked: the payload must be a JSON object, each category an object (a list
// for processes). A leaf of the wrong JSON type reads as null and leaves its
// neighbours alone. An empty object is a valid frame that updates nothing.
// Failures are *errors.Error with code DECODE.
func Decode(raw []byte) (*Frame, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, errors.New(errors.ErrDecode, "Empty frame", "")
	}
	if trimmed[0] != '{' {
		return nil, errors.New(errors.ErrDecode,
			"Frame is not a JSON object",
			"The producer should send one object per message")
	}

	var f Frame
	if err := json.Unmarshal(trimmed, &f); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrDecode, "Malformed frame", "")
	}
	return &f, nil
}
