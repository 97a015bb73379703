package tools

import (
	"context"
	"fmt"
	"net/http"

	"github.com/axiora/axiora-go"
)

// GetHealthScoreTool returns the financial health score for one company
func GetHealthScoreTool(c *axiora.Client) Tool {
	return Tool{
		Name: "axiora_get_health_score",
		Description: "Get the financial health score (0-100) for a Japanese company with component " +
			"breakdown (stability, profitability, cash flow) and risk flags. " +
			"Use this to assess a single company's financial health.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"code": map[string]interface{}{
					"type":        "string",
					"description": "EDINET code or securities code",
				},
			},
			"required": []string{"code"},
		},
		Execute: func(ctx context.Context, input map[string]interface{}) (string, error) {
			code := stringArg(input, "code")
			if code == "" {
				return "", fmt.Errorf("code is required")
			}
			result, err := c.Request(ctx, http.MethodGet, "/companies/"+code+"/health", nil)
			if err != nil {
				return "", translateError(err)
			}
			return format(result)
		},
	}
}
