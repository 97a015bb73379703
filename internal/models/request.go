package models

// AskRequest for POST /api/v1/ask
type AskRequest struct {
	Question string   `json:"question"`
	Tools    []string `json:"tools,omitempty"` // subset of tool names, empty = all
	Timeout  int      `json:"timeout"`         // seconds
}

func (r *AskRequest) SetDefaults(defaultTimeout int) {
	if r.Timeout == 0 {
		r.Timeout = defaultTimeout
	}
	if r.Timeout < 10 {
		r.Timeout = 10
	}
	if r.Timeout > 600 {
		r.Timeout = 600
	}
}

// ToolInvokeRequest for POST /api/v1/tools/{name}
type ToolInvokeRequest struct {
	Input map[string]interface{} `json:"input"`
}
