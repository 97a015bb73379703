package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/axiora/axiora-go"
	"github.com/axiora/axiora-go/internal/models"
	"github.com/axiora/axiora-go/tools"
	"github.com/go-chi/chi/v5"
)

// ToolsHandler lists tools and invokes them directly, bypassing the agent.
type ToolsHandler struct {
	tools  []tools.Tool
	byName map[string]tools.Tool
}

func NewToolsHandler(ts []tools.Tool) *ToolsHandler {
	byName := make(map[string]tools.Tool, len(ts))
	for _, t := range ts {
		byName[t.Name] = t
	}
	return &ToolsHandler{tools: ts, byName: byName}
}

// List handles GET /api/v1/tools
func (h *ToolsHandler) List(w http.ResponseWriter, r *http.Request) {
	infos := make([]models.ToolInfo, len(h.tools))
	for i, t := range h.tools {
		infos[i] = models.ToolInfo{
			Name:        t.Name,
			Description: t.Description,
			InputSchema: t.InputSchema,
		}
	}
	models.WriteJSON(w, http.StatusOK, models.ToolListResponse{
		Status: "ok",
		Tools:  infos,
		Count:  len(infos),
	})
}

// Invoke handles POST /api/v1/tools/{name}
func (h *ToolsHandler) Invoke(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	tool, ok := h.byName[name]
	if !ok {
		models.WriteError(w, http.StatusNotFound, "unknown tool: "+name)
		return
	}

	// An empty body means no input, which coverage-style tools allow.
	var req models.ToolInvokeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		models.WriteError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Input == nil {
		req.Input = map[string]interface{}{}
	}

	result, err := tool.Execute(r.Context(), req.Input)
	if err != nil {
		// Upstream status and transport failures surface as 502; anything
		// else is local argument validation that never left the process.
		var se *axiora.StatusError
		var ue *url.Error
		status := http.StatusBadRequest
		if errors.As(err, &se) || errors.As(err, &ue) {
			status = http.StatusBadGateway
		}
		models.WriteError(w, status, err.Error())
		return
	}
	models.WriteJSON(w, http.StatusOK, models.ToolInvokeResponse{
		Status: "ok",
		Tool:   name,
		Result: json.RawMessage(result),
	})
}
