package repository

import (
	"context"
	"fmt"
	"strings"

	"intermarket/internal/domain"

	"github.com/ayush6624/go-chatgpt"
)

type GptRepository interface {
	DescribeRegime(ctx context.Context, analysis domain.RegimeAnalysis, leaders []domain.LeaderEntry) (string, error)
}

type gptRepositoryHandler struct {
	GptClient *chatgpt.Client
}

func NewGptRepository(apiKey string) (GptRepository, error) {
	client, err := chatgpt.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to construct gpt client: %w", err)
	}

	return gptRepositoryHandler{
		GptClient: client,
	}, nil
}

const regimePrompt = `
You are summarizing the output of a cross-asset correlation analysis for a market commentary dashboard.

You will be given the detected correlation regime (high_correlation, moderate_correlation or low_correlation), the average pairwise correlation, the correlation dispersion, and the symbols that co-move most strongly with the rest of the universe.

Write 2-3 plain English sentences describing what the numbers say about how markets are moving together right now. Mention the strongest co-movers by name. Do not give trading advice, price targets, or predictions - describe, don't recommend.
`

func (h gptRepositoryHandler) DescribeRegime(ctx context.Context, analysis domain.RegimeAnalysis, leaders []domain.LeaderEntry) (string, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "regime: %s\n", analysis.Regime)
	fmt.Fprintf(&sb, "average pairwise correlation: %.4f\n", analysis.AvgCorrelation)
	fmt.Fprintf(&sb, "correlation dispersion: %.4f\n", analysis.CorrelationVolatility)
	fmt.Fprintf(&sb, "symbols analyzed: %d\n", analysis.SymbolsAnalyzed)
	for i, leader := range leaders {
		if i >= 3 {
			break
		}
		fmt.Fprintf(&sb, "co-mover %d: %s (score %.4f, %d strong links)\n", i+1, leader.Symbol, leader.LeadershipScore, leader.StrongCorrelations)
	}

	res, err := h.GptClient.Send(ctx, &chatgpt.ChatCompletionRequest{
		Model: chatgpt.GPT35Turbo,
		Messages: []chatgpt.ChatMessage{
			{
				Role:    chatgpt.ChatGPTModelRoleSystem,
				Content: regimePrompt,
			},
			{
				Role:    chatgpt.ChatGPTModelRoleUser,
				Content: sb.String(),
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate regime commentary: %w", err)
	}
	if len(res.Choices) == 0 {
		return "", fmt.Errorf("failed to generate regime commentary: no choices returned")
	}

	return res.Choices[0].Message.Content, nil
}
