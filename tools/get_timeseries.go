package tools

import (
	"context"
	"net/http"

	"github.com/axiora/axiora-go"
)

// GetTimeseriesTool returns one metric over time for up to five companies
func GetTimeseriesTool(c *axiora.Client) Tool {
	return Tool{
		Name: "axiora_get_timeseries",
		Description: "Get time-series data for a financial metric across 1-5 companies. " +
			"Returns chart-friendly format with fiscal_year and value per company. " +
			"Use this when you need to plot or compare a single metric over time.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"codes": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "List of 1-5 EDINET or securities codes",
				},
				"metric": map[string]interface{}{
					"type": "string",
					"description": "Metric: revenue, net_income, operating_income, total_assets, " +
						"total_equity, eps, bps, dividends_per_share, operating_cf, " +
						"investing_cf, financing_cf, roe, pe_ratio, num_employees (default: revenue)",
				},
				"years": map[string]interface{}{
					"type":        "integer",
					"description": "Number of years (default: 10, max: 20)",
				},
			},
			"required": []string{"codes"},
		},
		Execute: func(ctx context.Context, input map[string]interface{}) (string, error) {
			codes, err := listArg(input, "codes")
			if err != nil {
				return "", err
			}
			result, err := c.Request(ctx, http.MethodGet, "/timeseries", axiora.Params{
				"codes":  codes,
				"metric": stringArgDefault(input, "metric", "revenue"),
				"years":  intArg(input, "years", 10),
			})
			if err != nil {
				return "", translateError(err)
			}
			return format(result)
		},
	}
}
