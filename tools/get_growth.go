package tools

import (
	"context"
	"fmt"
	"net/http"

	"github.com/axiora/axiora-go"
)

// GetGrowthTool returns growth rates and CAGRs for one company
func GetGrowthTool(c *axiora.Client) Tool {
	return Tool{
		Name: "axiora_get_growth",
		Description: "Get year-over-year growth rates and CAGRs for a Japanese company's financials. " +
			"Use this when the question is about growth trends. " +
			"For raw financial numbers, use axiora_get_financials instead.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"code": map[string]interface{}{
					"type":        "string",
					"description": "EDINET code or securities code",
				},
				"years": map[string]interface{}{
					"type":        "integer",
					"description": "Number of years (default: 5, max: 20)",
				},
			},
			"required": []string{"code"},
		},
		Execute: func(ctx context.Context, input map[string]interface{}) (string, error) {
			code := stringArg(input, "code")
			if code == "" {
				return "", fmt.Errorf("code is required")
			}
			result, err := c.Request(ctx, http.MethodGet, "/companies/"+code+"/growth", axiora.Params{
				"years": intArg(input, "years", 5),
			})
			if err != nil {
				return "", translateError(err)
			}
			return format(result)
		},
	}
}
