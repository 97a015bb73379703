package tools

import (
	"fmt"
	"strings"

	"github.com/axiora/axiora-go"
)

// constructors is the fixed tool set, in presentation order.
var constructors = []func(*axiora.Client) Tool{
	SearchCompaniesTool,
	GetCompanyTool,
	GetFinancialsTool,
	GetGrowthTool,
	GetRankingTool,
	GetSectorOverviewTool,
	CompareCompaniesTool,
	ScreenCompaniesTool,
	GetHealthScoreTool,
	GetHealthRankingTool,
	GetPeersTool,
	GetTimeseriesTool,
	ListFilingsTool,
	GetTranslationsTool,
	SearchTranslationsTool,
	GetFilingCalendarTool,
	SearchCompaniesBatchTool,
	GetCoverageTool,
}

// All returns every Axiora tool bound to the given client. The client is
// shared, so all tools funnel through one connection pool.
func All(c *axiora.Client) []Tool {
	out := make([]Tool, len(constructors))
	for i, build := range constructors {
		out[i] = build(c)
	}
	return out
}

// Names returns the full set of known tool names, in the same order as All.
func Names() []string {
	names := make([]string, len(constructors))
	for i, build := range constructors {
		names[i] = build(nil).Name
	}
	return names
}

// Select returns the named subset of tools bound to the given client, or all
// tools when no names are given. Unknown names fail construction with both
// the invalid and the valid name sets in the message.
func Select(c *axiora.Client, names ...string) ([]Tool, error) {
	all := All(c)
	if len(names) == 0 {
		return all, nil
	}
	byName := make(map[string]Tool, len(all))
	for _, t := range all {
		byName[t.Name] = t
	}
	var picked []Tool
	var invalid []string
	for _, name := range names {
		t, ok := byName[name]
		if !ok {
			invalid = append(invalid, name)
			continue
		}
		picked = append(picked, t)
	}
	if len(invalid) > 0 {
		return nil, fmt.Errorf("invalid tool names: %s (valid names: %s)",
			strings.Join(invalid, ", "), strings.Join(Names(), ", "))
	}
	return picked, nil
}
