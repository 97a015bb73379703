package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/axiora/axiora-go/internal/agent"
	"github.com/axiora/axiora-go/internal/models"
	"github.com/axiora/axiora-go/tools"
)

const systemPrompt = "You are a financial research assistant for Japanese listed companies. " +
	"Answer using the Axiora tools. Look up company codes with axiora_search_companies " +
	"before calling code-based tools. Cite figures with their fiscal year. " +
	"If the data is not available, say so instead of guessing."

// AskHandler handles POST /api/v1/ask, the agent question endpoint
type AskHandler struct {
	agent          *agent.Agent
	tools          []tools.Tool
	defaultTimeout int
}

func NewAskHandler(a *agent.Agent, ts []tools.Tool, defaultTimeout int) *AskHandler {
	return &AskHandler{agent: a, tools: ts, defaultTimeout: defaultTimeout}
}

// Ask handles POST /api/v1/ask
func (h *AskHandler) Ask(w http.ResponseWriter, r *http.Request) {
	if h.agent == nil {
		models.WriteError(w, http.StatusServiceUnavailable, "agent disabled: ANTHROPIC_API_KEY not configured")
		return
	}

	var req models.AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		models.WriteError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Question == "" {
		models.WriteError(w, http.StatusBadRequest, "question is required")
		return
	}
	req.SetDefaults(h.defaultTimeout)

	selected := h.tools
	if len(req.Tools) > 0 {
		subset := make([]tools.Tool, 0, len(req.Tools))
		for _, t := range h.tools {
			for _, name := range req.Tools {
				if t.Name == name {
					subset = append(subset, t)
					break
				}
			}
		}
		if len(subset) == 0 {
			models.WriteError(w, http.StatusBadRequest, "no known tools in requested subset")
			return
		}
		selected = subset
	}

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(req.Timeout)*time.Second)
	defer cancel()

	start := time.Now()
	answer, toolsUsed, err := h.agent.Run(ctx, systemPrompt, req.Question, selected)
	if err != nil {
		models.WriteError(w, http.StatusBadGateway, err.Error())
		return
	}
	if toolsUsed == nil {
		toolsUsed = []string{}
	}
	models.WriteJSON(w, http.StatusOK, models.AskResponse{
		Status:    "ok",
		Answer:    answer,
		ToolsUsed: toolsUsed,
		ElapsedMs: time.Since(start).Milliseconds(),
	})
}
