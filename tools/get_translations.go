package tools

import (
	"context"
	"fmt"
	"net/http"

	"github.com/axiora/axiora-go"
)

// GetTranslationsTool fetches English translations of one filing
func GetTranslationsTool(c *axiora.Client) Tool {
	return Tool{
		Name: "axiora_get_translations",
		Description: "Get English translations of a Japanese filing by document ID. " +
			"Sections: mda, risk_factors, business_overview, governance, financial_notes, " +
			"accounting_policy. Use axiora_list_filings first to find the doc_id.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"doc_id": map[string]interface{}{
					"type":        "string",
					"description": "EDINET document ID (e.g. 'S100ABCD')",
				},
				"section": map[string]interface{}{
					"type": "string",
					"description": "Section filter: mda, risk_factors, business_overview, " +
						"governance, financial_notes, accounting_policy",
				},
			},
			"required": []string{"doc_id"},
		},
		Execute: func(ctx context.Context, input map[string]interface{}) (string, error) {
			docID := stringArg(input, "doc_id")
			if docID == "" {
				return "", fmt.Errorf("doc_id is required")
			}
			result, err := c.Request(ctx, http.MethodGet, "/translations/"+docID, axiora.Params{
				"section": optArg(input, "section"),
			})
			if err != nil {
				return "", translateError(err)
			}
			return format(result)
		},
	}
}
