package tools

import (
	"context"
	"fmt"
	"net/http"

	"github.com/axiora/axiora-go"
)

// SearchTranslationsTool searches the full text of translated filings
func SearchTranslationsTool(c *axiora.Client) Tool {
	return Tool{
		Name: "axiora_search_translations",
		Description: "Full-text search across English translations of Japanese filings. " +
			"Returns matching sections with highlighted snippets. " +
			"Use this to find what companies say about a topic (e.g. 'semiconductor', 'ESG').",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Search terms (e.g. 'semiconductor', 'risk factors')",
				},
				"section": map[string]interface{}{
					"type":        "string",
					"description": "Section filter",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Max results (default: 10, max: 50)",
				},
			},
			"required": []string{"query"},
		},
		Execute: func(ctx context.Context, input map[string]interface{}) (string, error) {
			query := stringArg(input, "query")
			if query == "" {
				return "", fmt.Errorf("query is required")
			}
			result, err := c.Request(ctx, http.MethodGet, "/translations/search", axiora.Params{
				"query":   query,
				"section": optArg(input, "section"),
				"limit":   intArg(input, "limit", 10),
			})
			if err != nil {
				return "", translateError(err)
			}
			return format(result)
		},
	}
}
