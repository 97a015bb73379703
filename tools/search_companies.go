package tools

import (
	"context"
	"fmt"
	"net/http"

	"github.com/axiora/axiora-go"
)

// SearchCompaniesTool finds companies by name or code
func SearchCompaniesTool(c *axiora.Client) Tool {
	return Tool{
		Name: "axiora_search_companies",
		Description: "Search for Japanese listed companies by name, securities code, or EDINET code. " +
			"Use this to find a company's code before calling other tools. " +
			"For looking up multiple companies at once, use axiora_search_companies_batch instead.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Company name (JP or EN), securities code, or EDINET code",
				},
				"sector": map[string]interface{}{
					"type":        "string",
					"description": "Sector filter (e.g. '電気機器')",
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
			result, err := c.Request(ctx, http.MethodGet, "/companies/search", axiora.Params{
				"query":  query,
				"sector": optArg(input, "sector"),
				"limit":  intArg(input, "limit", 10),
			})
			if err != nil {
				return "", translateError(err)
			}
			return format(result)
		},
	}
}
