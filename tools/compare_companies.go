package tools

import (
	"context"
	"net/http"

	"github.com/axiora/axiora-go"
)

// CompareCompaniesTool compares the financials of several companies side by side
func CompareCompaniesTool(c *axiora.Client) Tool {
	return Tool{
		Name: "axiora_compare_companies",
		Description: "Compare financials of 2-5 Japanese companies side by side. " +
			"Use this when directly comparing specific companies. " +
			"For finding similar companies, use axiora_get_peers instead.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"codes": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "List of 2-5 EDINET or securities codes",
				},
				"years": map[string]interface{}{
					"type":        "integer",
					"description": "Number of years (default: 3, max: 10)",
				},
			},
			"required": []string{"codes"},
		},
		Execute: func(ctx context.Context, input map[string]interface{}) (string, error) {
			codes, err := listArg(input, "codes")
			if err != nil {
				return "", err
			}
			result, err := c.Request(ctx, http.MethodGet, "/compare", axiora.Params{
				"codes": codes,
				"years": intArg(input, "years", 3),
			})
			if err != nil {
				return "", translateError(err)
			}
			return format(result)
		},
	}
}
