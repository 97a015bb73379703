package tools

import (
	"errors"
	"fmt"
	"strings"

	"github.com/axiora/axiora-go"
)

// Remediation hints by status code, appended to the error text the LLM sees.
var httpErrorHints = map[int]string{
	401: "Invalid or missing API key. Check your " + axiora.EnvAPIKey + ".",
	403: "Access denied. Your plan may not include this endpoint.",
	404: "Not found. Use axiora_search_companies to find the correct code.",
	429: "Rate limit exceeded. Wait a moment before retrying.",
}

// APIError is a translated upstream failure. Error renders the agent-facing
// message; the original status error stays in the chain for callers that
// need to distinguish upstream failures from local validation.
type APIError struct {
	msg   string
	cause *axiora.StatusError
}

func (e *APIError) Error() string { return e.msg }
func (e *APIError) Unwrap() error { return e.cause }

// translateError converts a *axiora.StatusError into a single human-readable
// message: "Axiora API error <status>. <detail>. <hint>", empty segments
// omitted. Any other error passes through unchanged.
func translateError(err error) error {
	var se *axiora.StatusError
	if !errors.As(err, &se) {
		return err
	}
	parts := []string{fmt.Sprintf("Axiora API error %d", se.StatusCode)}
	if detail := se.Detail(); detail != "" {
		parts = append(parts, detail)
	}
	if hint, ok := httpErrorHints[se.StatusCode]; ok {
		parts = append(parts, hint)
	}
	return &APIError{msg: strings.Join(parts, ". "), cause: se}
}
