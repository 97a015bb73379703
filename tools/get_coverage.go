package tools

import (
	"context"
	"net/http"

	"github.com/axiora/axiora-go"
)

// GetCoverageTool reports what data the API has. Takes no input.
func GetCoverageTool(c *axiora.Client) Tool {
	return Tool{
		Name: "axiora_get_coverage",
		Description: "Get data coverage statistics — total companies, filings, metric availability, " +
			"and data freshness. Use this to understand what data is available before querying.",
		Execute: func(ctx context.Context, input map[string]interface{}) (string, error) {
			result, err := c.Request(ctx, http.MethodGet, "/coverage", nil)
			if err != nil {
				return "", translateError(err)
			}
			return format(result)
		},
	}
}
