package station

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrTransport  = errors.New("transport error")
	ErrUnknown    = errors.New("unknown error")
	ErrNoStations = errors.New("no station records")
)

const (
	transportFallbackMessage = "An error occurred!"
	unknownErrorMessage      = "Unknown Error!"
)

// TransportError is a network or HTTP failure. Payload holds the message
// the server sent back, if any.
type TransportError struct {
	StatusCode int
	Payload    string
	Err        error
}

func (e *TransportError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("transport error: %v", e.Err)
	case e.Payload != "":
		return fmt.Sprintf("transport error: status %d: %s", e.StatusCode, e.Payload)
	default:
		return fmt.Sprintf("transport error: status %d", e.StatusCode)
	}
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// Message turns a fetch error into the text shown in place of the map
func Message(err error) string {
	if err == nil {
		return ""
	}

	var te *TransportError
	if errors.As(err, &te) {
		if te.Payload != "" {
			return te.Payload
		}
		return transportFallbackMessage
	}
	return unknownErrorMessage
}

// payloadMessage extracts a readable message from an error response body.
// JSON bodies contribute their "message" or "error" field, or the string
// itself; anything else is used as trimmed text.
func payloadMessage(body []byte) string {
	text := strings.TrimSpace(string(body))
	if text == "" {
		return ""
	}

	var s string
	if err := json.Unmarshal(body, &s); err == nil {
		return strings.TrimSpace(s)
	}

	var obj map[string]interface{}
	if err := json.Unmarshal(body, &obj); err == nil {
		for _, key := range []string{"message", "error"} {
			if v, ok := obj[key].(string); ok && v != "" {
				return v
			}
		}
	}

	return text
}
