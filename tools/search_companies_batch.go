package tools

import (
	"context"
	"net/http"

	"github.com/axiora/axiora-go"
)

// SearchCompaniesBatchTool looks up several companies in one call
func SearchCompaniesBatchTool(c *axiora.Client) Tool {
	return Tool{
		Name: "axiora_search_companies_batch",
		Description: "Look up multiple companies at once (max 10). Accepts a mix of EDINET codes, " +
			"securities codes, and name fragments. " +
			"Use this instead of calling axiora_search_companies multiple times.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"queries": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "List of up to 10 company identifiers (codes or name fragments)",
				},
			},
			"required": []string{"queries"},
		},
		Execute: func(ctx context.Context, input map[string]interface{}) (string, error) {
			queries, err := listArg(input, "queries")
			if err != nil {
				return "", err
			}
			result, err := c.Request(ctx, http.MethodGet, "/companies/search", axiora.Params{
				"queries": queries,
			})
			if err != nil {
				return "", translateError(err)
			}
			return format(result)
		},
	}
}
