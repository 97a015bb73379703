package tools

import (
	"context"
	"fmt"
	"net/http"

	"github.com/axiora/axiora-go"
)

// GetFinancialsTool returns per-year financial statements for one company
func GetFinancialsTool(c *axiora.Client) Tool {
	return Tool{
		Name: "axiora_get_financials",
		Description: "Get financial time series for a Japanese company. Returns revenue, net income, " +
			"total assets, equity, ROE, ROA, and margins per fiscal year. " +
			"Use this for detailed financial data. For growth rates, use axiora_get_growth instead.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"code": map[string]interface{}{
					"type":        "string",
					"description": "EDINET code or securities code",
				},
				"years": map[string]interface{}{
					"type":        "integer",
					"description": "Number of fiscal years (default: 5, max: 20)",
				},
			},
			"required": []string{"code"},
		},
		Execute: func(ctx context.Context, input map[string]interface{}) (string, error) {
			code := stringArg(input, "code")
			if code == "" {
				return "", fmt.Errorf("code is required")
			}
			result, err := c.Request(ctx, http.MethodGet, "/companies/"+code+"/financials", axiora.Params{
				"years": intArg(input, "years", 5),
			})
			if err != nil {
				return "", translateError(err)
			}
			return format(result)
		},
	}
}
