package agent

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/axiora/axiora-go/tools"
)

func staticTool(name, output string) tools.Tool {
	return tools.Tool{
		Name: name,
		Execute: func(ctx context.Context, input map[string]interface{}) (string, error) {
			return output, nil
		},
	}
}

func TestExecuteToolUnknownName(t *testing.T) {
	agentTools := []tools.Tool{staticTool("axiora_get_coverage", `{}`)}

	_, err := executeTool(context.Background(), ToolCall{ID: "t1", Name: "axiora_get_everything"}, agentTools)
	if err == nil {
		t.Fatal("expected an error for an unregistered tool name")
	}
	if !strings.Contains(err.Error(), "unknown tool: axiora_get_everything") {
		t.Errorf("error %q should name the unknown tool", err.Error())
	}
}

func TestExecuteToolDispatchesByName(t *testing.T) {
	agentTools := []tools.Tool{
		staticTool("axiora_get_coverage", `{"companies":4400}`),
		staticTool("axiora_search_companies", `{"data":[]}`),
	}

	out, err := executeTool(context.Background(), ToolCall{ID: "t1", Name: "axiora_search_companies"}, agentTools)
	if err != nil {
		t.Fatalf("executeTool: %v", err)
	}
	if out != `{"data":[]}` {
		t.Errorf("out = %q, want the search tool's output", out)
	}
}

func TestExecuteAllKeepsCallOrder(t *testing.T) {
	slow := tools.Tool{
		Name: "slow",
		Execute: func(ctx context.Context, input map[string]interface{}) (string, error) {
			time.Sleep(30 * time.Millisecond)
			return "slow-result", nil
		},
	}
	fast := staticTool("fast", "fast-result")

	calls := []ToolCall{
		{ID: "c1", Name: "slow"},
		{ID: "c2", Name: "fast"},
	}
	a := &Agent{}
	results := a.executeAll(context.Background(), calls, []tools.Tool{slow, fast})

	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].output != "slow-result" || results[0].failed {
		t.Errorf("results[0] = %+v, want slow-result in call position 0", results[0])
	}
	if results[1].output != "fast-result" || results[1].failed {
		t.Errorf("results[1] = %+v, want fast-result in call position 1", results[1])
	}
}

func TestExecuteAllMarksFailures(t *testing.T) {
	boom := tools.Tool{
		Name: "boom",
		Execute: func(ctx context.Context, input map[string]interface{}) (string, error) {
			return "", errors.New("Axiora API error 500. upstream exploded")
		},
	}

	calls := []ToolCall{
		{ID: "c1", Name: "boom"},
		{ID: "c2", Name: "no_such_tool"},
	}
	a := &Agent{}
	results := a.executeAll(context.Background(), calls, []tools.Tool{boom})

	if !results[0].failed || !strings.Contains(results[0].output, "upstream exploded") {
		t.Errorf("results[0] = %+v, want failed with the tool's message", results[0])
	}
	if !results[1].failed || !strings.Contains(results[1].output, "unknown tool: no_such_tool") {
		t.Errorf("results[1] = %+v, want failed with the unknown-tool message", results[1])
	}
}

func TestNewDefaultsModel(t *testing.T) {
	a := New("sk-ant-test", "", "")
	if a.model != defaultModel {
		t.Errorf("model = %q, want %q", a.model, defaultModel)
	}
}
