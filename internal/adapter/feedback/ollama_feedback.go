// Package feedback generates study tips for wrongly answered questions using
// a local LLM server.
package feedback

import (
	"context"
	"fmt"
	"strings"

	"quizgrade/internal/domain"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
)

const studyTipPrompt = `You are a tutor reviewing one quiz answer.
Question: %s
Correct answer: %s
Student's answer: %s

In one or two sentences, explain what the student likely confused and what to
review. Reply with the tip only, no preamble.`

// OllamaFeedbackGenerator implements domain.FeedbackGenerator against an
// Ollama server.
type OllamaFeedbackGenerator struct {
	llm *ollama.LLM
}

// NewOllamaFeedbackGenerator connects to the given Ollama server and model.
func NewOllamaFeedbackGenerator(serverURL, model string) (*OllamaFeedbackGenerator, error) {
	llm, err := ollama.New(
		ollama.WithServerURL(serverURL),
		ollama.WithModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create ollama client: %w", err)
	}
	return &OllamaFeedbackGenerator{llm: llm}, nil
}

// StudyTip implements domain.FeedbackGenerator.
func (g *OllamaFeedbackGenerator) StudyTip(ctx context.Context, questionText, expected, given string) (string, error) {
	prompt := fmt.Sprintf(studyTipPrompt, questionText, expected, given)
	completion, err := g.llm.Call(ctx, prompt, llms.WithTemperature(0.1))
	if err != nil {
		return "", domain.NewInternalError("feedback generation failed", err)
	}
	return strings.TrimSpace(completion), nil
}
