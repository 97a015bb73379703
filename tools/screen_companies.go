package tools

import (
	"context"
	"net/http"

	"github.com/axiora/axiora-go"
)

// ScreenCompaniesTool filters companies by financial thresholds
func ScreenCompaniesTool(c *axiora.Client) Tool {
	return Tool{
		Name: "axiora_screen_companies",
		Description: "Screen Japanese companies by financial criteria (sector, min revenue, min ROE, " +
			"max PE ratio). All filters are combined with AND logic. " +
			"Use this to find companies matching specific financial thresholds.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"sector": map[string]interface{}{
					"type":        "string",
					"description": "Sector filter",
				},
				"min_revenue": map[string]interface{}{
					"type":        "integer",
					"description": "Minimum revenue in JPY",
				},
				"min_net_income": map[string]interface{}{
					"type":        "integer",
					"description": "Minimum net income in JPY",
				},
				"min_roe": map[string]interface{}{
					"type":        "number",
					"description": "Minimum ROE % (e.g. 10.0)",
				},
				"max_pe_ratio": map[string]interface{}{
					"type":        "number",
					"description": "Maximum PE ratio",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Max results (default: 20, max: 100)",
				},
			},
		},
		Execute: func(ctx context.Context, input map[string]interface{}) (string, error) {
			result, err := c.Request(ctx, http.MethodGet, "/screen", axiora.Params{
				"sector":         optArg(input, "sector"),
				"min_revenue":    optArg(input, "min_revenue"),
				"min_net_income": optArg(input, "min_net_income"),
				"min_roe":        optArg(input, "min_roe"),
				"max_pe_ratio":   optArg(input, "max_pe_ratio"),
				"limit":          intArg(input, "limit", 20),
			})
			if err != nil {
				return "", translateError(err)
			}
			return format(result)
		},
	}
}
