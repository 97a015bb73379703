// Package agent runs a multi-turn Anthropic tool loop over the Axiora tools.
package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/axiora/axiora-go/tools"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const defaultModel = "claude-sonnet-4-6"

// maxIterations bounds the tool loop; near the cap the model is asked for a
// final answer instead of more tool calls.
const (
	maxIterations   = 10
	forceAnswerIter = 7
)

// ToolCall represents a tool invocation request from the LLM
type ToolCall struct {
	ID    string
	Name  string
	Input map[string]interface{}
}

// Agent wraps the Anthropic SDK for a tool-calling loop over Axiora data
type Agent struct {
	client    *anthropic.Client
	model     string
	maxTokens int
}

// New creates an agent backed by Anthropic Claude or a compatible provider.
func New(apiKey, model, baseURL string) *Agent {
	if model == "" {
		model = defaultModel
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &Agent{
		client:    anthropic.NewClient(opts...),
		model:     model,
		maxTokens: 4096,
	}
}

// Run executes the agent loop: the LLM calls Axiora tools until it stops
// requesting them. Returns the final text and the names of the tools used.
func (a *Agent) Run(ctx context.Context, systemPrompt, question string, agentTools []tools.Tool) (string, []string, error) {
	toolParams := make([]anthropic.ToolUnionUnionParam, len(agentTools))
	for i, t := range agentTools {
		schema := t.InputSchema
		if schema == nil {
			schema = map[string]interface{}{"type": "object", "properties": map[string]interface{}{}}
		}
		toolParams[i] = anthropic.ToolParam{
			Name:        anthropic.String(t.Name),
			Description: anthropic.String(t.Description),
			InputSchema: anthropic.F[interface{}](schema),
		}
	}

	messages := []anthropic.MessageParam{
		anthropic.NewUserMessage(anthropic.NewTextBlock(question)),
	}

	var toolsUsed []string

	for iter := 0; iter < maxIterations; iter++ {
		params := anthropic.MessageNewParams{
			Model:     anthropic.F(anthropic.Model(a.model)),
			MaxTokens: anthropic.F(int64(a.maxTokens)),
			Messages:  anthropic.F(messages),
			Tools:     anthropic.F(toolParams),
		}
		if systemPrompt != "" {
			params.System = anthropic.F([]anthropic.TextBlockParam{
				anthropic.NewTextBlock(systemPrompt),
			})
		}

		resp, err := a.client.Messages.New(ctx, params)
		if err != nil {
			return "", toolsUsed, fmt.Errorf("LLM call failed: %w", err)
		}

		var text string
		var pending []ToolCall
		for _, block := range resp.Content {
			switch b := block.AsUnion().(type) {
			case anthropic.TextBlock:
				text += b.Text
			case anthropic.ToolUseBlock:
				var input map[string]interface{}
				if err := json.Unmarshal(b.Input, &input); err != nil {
					log.Warn().Err(err).Str("tool", b.Name).Msg("failed to parse tool input")
					input = map[string]interface{}{}
				}
				pending = append(pending, ToolCall{ID: b.ID, Name: b.Name, Input: input})
			}
		}

		log.Debug().
			Int("iter", iter).
			Str("stop_reason", string(resp.StopReason)).
			Int("tool_calls", len(pending)).
			Msg("agent iteration")

		done := resp.StopReason == "end_turn" ||
			resp.StopReason == "stop" ||
			resp.StopReason == "stop_sequence" ||
			resp.StopReason == "max_tokens" ||
			len(pending) == 0
		if done {
			return text, toolsUsed, nil
		}

		messages = append(messages, resp.ToParam())

		if iter >= forceAnswerIter {
			final, err := a.finalAnswer(ctx, systemPrompt, messages)
			if err != nil {
				return text, toolsUsed, err
			}
			return text + final, toolsUsed, nil
		}

		results := a.executeAll(ctx, pending, agentTools)
		blocks := make([]anthropic.ContentBlockParamUnion, len(pending))
		for i, tc := range pending {
			toolsUsed = append(toolsUsed, tc.Name)
			blocks[i] = anthropic.NewToolResultBlock(tc.ID, results[i].output, results[i].failed)
		}
		messages = append(messages, anthropic.NewUserMessage(blocks...))
	}

	return "", toolsUsed, fmt.Errorf("agent loop exceeded max iterations (%d)", maxIterations)
}

// finalAnswer asks the model to wrap up without further tool calls.
func (a *Agent) finalAnswer(ctx context.Context, systemPrompt string, messages []anthropic.MessageParam) (string, error) {
	messages = append(messages, anthropic.NewUserMessage(
		anthropic.NewTextBlock("You have enough data. Please provide your final answer now without calling any more tools."),
	))
	params := anthropic.MessageNewParams{
		Model:     anthropic.F(anthropic.Model(a.model)),
		MaxTokens: anthropic.F(int64(a.maxTokens)),
		Messages:  anthropic.F(messages),
	}
	if systemPrompt != "" {
		params.System = anthropic.F([]anthropic.TextBlockParam{anthropic.NewTextBlock(systemPrompt)})
	}
	resp, err := a.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("final answer call failed: %w", err)
	}
	var text string
	for _, block := range resp.Content {
		if b, ok := block.AsUnion().(anthropic.TextBlock); ok {
			text += b.Text
		}
	}
	return text, nil
}

type toolResult struct {
	output string
	failed bool
}

// executeAll runs one turn's tool calls concurrently. The Axiora tools are
// read-only HTTP calls against one shared client, so fan-out is safe; results
// are kept in call order for the tool_result blocks.
func (a *Agent) executeAll(ctx context.Context, calls []ToolCall, agentTools []tools.Tool) []toolResult {
	results := make([]toolResult, len(calls))
	g, gctx := errgroup.WithContext(ctx)
	for i, tc := range calls {
		i, tc := i, tc
		g.Go(func() error {
			out, err := executeTool(gctx, tc, agentTools)
			if err != nil {
				log.Warn().Err(err).Str("tool", tc.Name).Msg("tool execution error")
				results[i] = toolResult{output: fmt.Sprintf("error: %v", err), failed: true}
				return nil
			}
			results[i] = toolResult{output: out}
			return nil
		})
	}
	// Closures report failures through results, never through the group.
	_ = g.Wait()
	return results
}

func executeTool(ctx context.Context, tc ToolCall, agentTools []tools.Tool) (string, error) {
	for _, t := range agentTools {
		if t.Name == tc.Name {
			return t.Execute(ctx, tc.Input)
		}
	}
	return "", fmt.Errorf("unknown tool: %s", tc.Name)
}
