package tools

import (
	"context"
	"net/http"

	"github.com/axiora/axiora-go"
)

// GetSectorOverviewTool lists sectors or returns stats for one sector
func GetSectorOverviewTool(c *axiora.Client) Tool {
	return Tool{
		Name: "axiora_get_sector_overview",
		Description: "List all sectors with company counts, or get aggregate financial stats for a " +
			"specific sector. Use this to understand the Japanese market structure.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"sector": map[string]interface{}{
					"type":        "string",
					"description": "Sector name for stats. Omit to list all sectors with company counts.",
				},
			},
		},
		Execute: func(ctx context.Context, input map[string]interface{}) (string, error) {
			path := "/sectors"
			if sector := stringArg(input, "sector"); sector != "" {
				path = "/sectors/" + sector
			}
			result, err := c.Request(ctx, http.MethodGet, path, nil)
			if err != nil {
				return "", translateError(err)
			}
			return format(result)
		},
	}
}
