package tools

import (
	"context"
	"net/http"

	"github.com/axiora/axiora-go"
)

// GetRankingTool ranks companies by a financial metric
func GetRankingTool(c *axiora.Client) Tool {
	return Tool{
		Name: "axiora_get_ranking",
		Description: "Rank Japanese companies by a financial metric (revenue, ROE, net income, etc.). " +
			"Use this to find top/bottom companies by any metric. " +
			"Optionally filter by sector.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"metric": map[string]interface{}{
					"type": "string",
					"description": "Metric to rank by: revenue, net_income, operating_income, " +
						"total_assets, roe, roa, operating_margin, net_margin, " +
						"equity_ratio, eps, bps (default: revenue)",
				},
				"sector": map[string]interface{}{
					"type":        "string",
					"description": "Optional sector filter",
				},
				"order": map[string]interface{}{
					"type":        "string",
					"description": "'desc' for top, 'asc' for bottom (default: desc)",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Number of results (default: 20, max: 100)",
				},
			},
		},
		Execute: func(ctx context.Context, input map[string]interface{}) (string, error) {
			metric := stringArgDefault(input, "metric", "revenue")
			result, err := c.Request(ctx, http.MethodGet, "/rankings/"+metric, axiora.Params{
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
