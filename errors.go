package axiora

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// StatusError is returned by Client.Request for any non-2xx response. It
// carries the raw response so callers can decide how to present the failure;
// the client itself does not distinguish 4xx from 5xx.
type StatusError struct {
	StatusCode int
	Body       []byte
	Header     http.Header
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("axiora: unexpected status %d", e.StatusCode)
}

// Detail extracts the server-supplied error text: the "detail" or "error"
// field of a JSON body, or the first 200 bytes of the raw body when it does
// not parse.
func (e *StatusError) Detail() string {
	var body map[string]interface{}
	if err := json.Unmarshal(e.Body, &body); err == nil {
		if d, ok := body["detail"].(string); ok && d != "" {
			return d
		}
		if d, ok := body["error"].(string); ok && d != "" {
			return d
		}
		return ""
	}
	text := strings.TrimSpace(string(e.Body))
	if len(text) > 200 {
		text = text[:200]
	}
	return text
}
