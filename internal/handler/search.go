package handler

import (
	"net/http"
	"strconv"

	"github.com/axiora/axiora-go"
	"github.com/axiora/axiora-go/internal/models"
	"github.com/axiora/axiora-go/retriever"
)

// SearchHandler handles GET /api/v1/search, the filing-translation retrieval endpoint
type SearchHandler struct {
	client *axiora.Client
}

func NewSearchHandler(client *axiora.Client) *SearchHandler {
	return &SearchHandler{client: client}
}

// Search handles GET /api/v1/search?q=...&section=...&limit=...
// An upstream API failure surfaces as zero results, matching the retriever's
// degrade-to-empty contract.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		models.WriteError(w, http.StatusBadRequest, "q is required")
		return
	}

	var opts []retriever.Option
	if section := r.URL.Query().Get("section"); section != "" {
		opts = append(opts, retriever.WithSection(section))
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			models.WriteError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		opts = append(opts, retriever.WithLimit(limit))
	}

	docs, err := retriever.New(h.client, opts...).Retrieve(r.Context(), query)
	if err != nil {
		models.WriteError(w, http.StatusBadGateway, err.Error())
		return
	}

	results := make([]models.SearchResult, len(docs))
	for i, d := range docs {
		results[i] = models.SearchResult{Content: d.Content, Metadata: d.Metadata}
	}
	models.WriteJSON(w, http.StatusOK, models.SearchResponse{
		Status:  "ok",
		Results: results,
		Count:   len(results),
	})
}
