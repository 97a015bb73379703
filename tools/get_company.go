package tools

import (
	"context"
	"fmt"
	"net/http"

	"github.com/axiora/axiora-go"
)

// GetCompanyTool returns the profile of a single company
func GetCompanyTool(c *axiora.Client) Tool {
	return Tool{
		Name: "axiora_get_company",
		Description: "Get detailed info for a single Japanese company including name, sector, listing, " +
			"and fiscal year end. Requires a company code — use axiora_search_companies first " +
			"if you only have a name.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"code": map[string]interface{}{
					"type":        "string",
					"description": "EDINET code (e.g. 'E02144') or securities code (e.g. '7203')",
				},
			},
			"required": []string{"code"},
		},
		Execute: func(ctx context.Context, input map[string]interface{}) (string, error) {
			code := stringArg(input, "code")
			if code == "" {
				return "", fmt.Errorf("code is required")
			}
			result, err := c.Request(ctx, http.MethodGet, "/companies/"+code, nil)
			if err != nil {
				return "", translateError(err)
			}
			return format(result)
		},
	}
}
