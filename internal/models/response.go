package models

import (
	"encoding/json"
	"net/http"
)

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Code    int    `json:"code,omitempty"`
}

func WriteError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(ErrorResponse{
		Status:  "error",
		Message: message,
		Code:    code,
	})
}

func WriteJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status  string            `json:"status"`
	Version string            `json:"version"`
	Checks  map[string]string `json:"checks,omitempty"`
}

// ToolInfo describes one tool for GET /api/v1/tools
type ToolInfo struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"input_schema,omitempty"`
}

// ToolListResponse is returned by GET /api/v1/tools
type ToolListResponse struct {
	Status string     `json:"status"`
	Tools  []ToolInfo `json:"tools"`
	Count  int        `json:"count"`
}

// ToolInvokeResponse is returned by POST /api/v1/tools/{name}
type ToolInvokeResponse struct {
	Status string          `json:"status"`
	Tool   string          `json:"tool"`
	Result json.RawMessage `json:"result"`
}

// AskResponse is returned by POST /api/v1/ask
type AskResponse struct {
	Status    string   `json:"status"`
	Answer    string   `json:"answer"`
	ToolsUsed []string `json:"tools_used"`
	ElapsedMs int64    `json:"elapsed_ms"`
}

// SearchResult is one document in a SearchResponse
type SearchResult struct {
	Content  string                 `json:"content"`
	Metadata map[string]interface{} `json:"metadata"`
}

// SearchResponse is returned by GET /api/v1/search
type SearchResponse struct {
	Status  string         `json:"status"`
	Results []SearchResult `json:"results"`
	Count   int            `json:"count"`
}
