package tools

import (
	"context"
	"net/http"

	"github.com/axiora/axiora-go"
)

// ListFilingsTool lists EDINET filings with optional filters
func ListFilingsTool(c *axiora.Client) Tool {
	return Tool{
		Name: "axiora_list_filings",
		Description: "List filings (annual, semi-annual, quarterly reports) with optional filters. " +
			"Use this to find filing document IDs needed for axiora_get_translations.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"company_code": map[string]interface{}{
					"type":        "string",
					"description": "Filter by company code",
				},
				"doc_type": map[string]interface{}{
					"type":        "string",
					"description": "Document type: 120=annual, 130=semi-annual, 140=quarterly",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Max results (default: 20, max: 100)",
				},
			},
		},
		Execute: func(ctx context.Context, input map[string]interface{}) (string, error) {
			result, err := c.Request(ctx, http.MethodGet, "/filings", axiora.Params{
				"company_code": optArg(input, "company_code"),
				"doc_type":     optArg(input, "doc_type"),
				"limit":        intArg(input, "limit", 20),
			})
			if err != nil {
				return "", translateError(err)
			}
			return format(result)
		},
	}
}
