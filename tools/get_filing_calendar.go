package tools

import (
	"context"
	"fmt"
	"net/http"

	"github.com/axiora/axiora-go"
)

// GetFilingCalendarTool returns filing counts per day for one month
func GetFilingCalendarTool(c *axiora.Client) Tool {
	return Tool{
		Name: "axiora_get_filing_calendar",
		Description: "Get filing calendar for a month — shows how many filings were submitted per day. " +
			"Use this to understand filing seasonality or find busy filing periods.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"month": map[string]interface{}{
					"type":        "string",
					"description": "Month in YYYY-MM format (e.g. '2025-06')",
				},
			},
			"required": []string{"month"},
		},
		Execute: func(ctx context.Context, input map[string]interface{}) (string, error) {
			month := stringArg(input, "month")
			if month == "" {
				return "", fmt.Errorf("month is required")
			}
			result, err := c.Request(ctx, http.MethodGet, "/filings/calendar", axiora.Params{
				"month": month,
			})
			if err != nil {
				return "", translateError(err)
			}
			return format(result)
		},
	}
}
