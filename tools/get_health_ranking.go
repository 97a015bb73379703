package tools

import (
	"context"
	"net/http"

	"github.com/axiora/axiora-go"
)

// GetHealthRankingTool ranks companies by health score
func GetHealthRankingTool(c *axiora.Client) Tool {
	return Tool{
		Name: "axiora_get_health_ranking",
		Description: "Rank Japanese companies by financial health score. " +
			"Use this to find the healthiest or weakest companies, optionally within a sector.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"sector": map[string]interface{}{
					"type":        "string",
					"description": "Optional sector filter",
				},
				"order": map[string]interface{}{
					"type":        "string",
					"description": "'desc' for healthiest, 'asc' for weakest (default: desc)",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Max results (default: 20, max: 100)",
				},
			},
		},
		Execute: func(ctx context.Context, input map[string]interface{}) (string, error) {
			result, err := c.Request(ctx, http.MethodGet, "/rankings/health", axiora.Params{
				"sector": optArg(input, "sector"),
				"order":  stringArgDefault(input, "order", "desc"),
				"limit":  intArg(input, "limit", 20),
			})
			if err != nil {
				return "", translateError(err)
			}
			return format(result)
		},
	}
}
