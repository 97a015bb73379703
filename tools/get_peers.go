package tools

import (
	"context"
	"fmt"
	"net/http"

	"github.com/axiora/axiora-go"
)

// GetPeersTool finds comparable companies in the same sector
func GetPeersTool(c *axiora.Client) Tool {
	return Tool{
		Name: "axiora_get_peers",
		Description: "Find peer companies in the same sector with similar revenue. " +
			"Use this to discover competitors or comparable companies. " +
			"For direct side-by-side comparison, use axiora_compare_companies instead.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"code": map[string]interface{}{
					"type":        "string",
					"description": "EDINET code or securities code",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Max results (default: 10, max: 50)",
				},
			},
			"required": []string{"code"},
		},
		Execute: func(ctx context.Context, input map[string]interface{}) (string, error) {
			code := stringArg(input, "code")
			if code == "" {
				return "", fmt.Errorf("code is required")
			}
			result, err := c.Request(ctx, http.MethodGet, "/companies/"+code+"/peers", axiora.Params{
				"limit": intArg(input, "limit", 10),
			})
			if err != nil {
				return "", translateError(err)
			}
			return format(result)
		},
	}
}
