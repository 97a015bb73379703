// Package tools defines the Tool type and the Axiora tool set exposed to an
// LLM agent. Every tool delegates to a shared *axiora.Client and returns the
// API response as compact JSON text.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Tool represents a callable function the LLM can invoke
type Tool struct {
	Name        string
	Description string
	InputSchema map[string]interface{}
	Execute     func(ctx context.Context, input map[string]interface{}) (string, error)
}

// format renders an API response as a compact JSON string for the LLM.
// Non-ASCII text (company names, sectors) passes through unescaped.
func format(v interface{}) (string, error) {
	var sb strings.Builder
	enc := json.NewEncoder(&sb)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("marshal response: %w", err)
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}

// stringArg reads a required string input, empty when absent.
func stringArg(input map[string]interface{}, key string) string {
	s, _ := input[key].(string)
	return s
}

// intArg reads a numeric input, falling back to def. JSON numbers decode as float64.
func intArg(input map[string]interface{}, key string, def int) int {
	if v, ok := input[key].(float64); ok {
		return int(v)
	}
	return def
}

// stringArgDefault reads a string input, falling back to def when absent or empty.
func stringArgDefault(input map[string]interface{}, key, def string) string {
	if s, ok := input[key].(string); ok && s != "" {
		return s
	}
	return def
}

// optArg returns the raw input value, or nil when absent. The client drops
// nil query parameters, so optional filters can be passed through unchecked.
func optArg(input map[string]interface{}, key string) interface{} {
	v, ok := input[key]
	if !ok {
		return nil
	}
	if s, isStr := v.(string); isStr && s == "" {
		return nil
	}
	return v
}

// listArg reads a string-list input and joins it with commas, the form the
// API expects for codes and queries.
func listArg(input map[string]interface{}, key string) (string, error) {
	raw, ok := input[key].([]interface{})
	if !ok || len(raw) == 0 {
		return "", fmt.Errorf("%s is required", key)
	}
	parts := make([]string, 0, len(raw))
	for _, item := range raw {
		s, isStr := item.(string)
		if !isStr || s == "" {
			return "", fmt.Errorf("%s must be a list of non-empty strings", key)
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, ","), nil
}
