package coach

import "github.com/abhisek/mindset/internal/llm"

// ReflectionSchema defines the JSON schema for a quiz reflection.
var ReflectionSchema = &llm.Schema{
	Name:        "mindset-reflection",
	Description: "A short personal reflection on a growth mindset self-assessment",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"headline": map[string]any{
				"type":        "string",
				"description": "One short sentence summarizing where the user stands (5-12 words)",
			},
			"encouragement": map[string]any{
				"type":        "string",
				"description": "2-3 warm, specific sentences that reference the user's own answers",
			},
			"next_steps": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    1,
				"maxItems":    3,
				"description": "1-3 concrete actions for the coming week (5-15 words each)",
			},
		},
		"required":             []any{"headline", "encouragement", "next_steps"},
		"additionalProperties": false,
	},
}

// RecapSchema defines the JSON schema for a session recap.
var RecapSchema = &llm.Schema{
	Name:        "session-recap",
	Description: "A brief recap of what the user did during a dashboard session",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "2-3 sentence recap of the session",
			},
		},
		"required":             []any{"summary"},
		"additionalProperties": false,
	},
}
