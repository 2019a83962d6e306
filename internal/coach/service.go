// Package coach asks an LLM for personal feedback on a mindset quiz result.
package coach

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/mindset/internal/llm"
)

// ErrNoEvents is returned by Recap when there is nothing to summarize.
var ErrNoEvents = errors.New("no session events to recap")

// Service generates reflections and session recaps.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a coach service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

type reflectionOutput struct {
	Headline      string   `json:"headline"`
	Encouragement string   `json:"encouragement"`
	NextSteps     []string `json:"next_steps"`
}

// Reflect generates a reflection for a scored quiz. It blocks until the
// provider answers; callers run it inside a tea.Cmd.
func (s *Service) Reflect(ctx context.Context, input Input) (*Reflection, error) {
	ctx = llm.WithPurpose(ctx, "reflection")

	req := llm.Request{
		System: reflectionSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildReflectionUserMessage(input)},
		},
		Schema:      ReflectionSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("reflection generation: %w", err)
	}

	var out reflectionOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse reflection response: %w", err)
	}

	return &Reflection{
		Headline:      out.Headline,
		Encouragement: out.Encouragement,
		NextSteps:     out.NextSteps,
		GeneratedAt:   time.Now(),
	}, nil
}

type recapOutput struct {
	Summary string `json:"summary"`
}

// Recap summarizes journal entries into a short paragraph.
func (s *Service) Recap(ctx context.Context, entries []string) (string, error) {
	if len(entries) == 0 {
		return "", ErrNoEvents
	}
	ctx = llm.WithPurpose(ctx, "recap")

	req := llm.Request{
		System: recapSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildRecapUserMessage(entries)},
		},
		Schema:      RecapSchema,
		MaxTokens:   s.cfg.RecapMaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("session recap: %w", err)
	}

	var out recapOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", fmt.Errorf("parse recap response: %w", err)
	}
	return out.Summary, nil
}
