package advisor

import "github.com/abhisek/sprout/internal/llm"

// reportSchema is the JSON shape the model must answer with.
var reportSchema = &llm.Schema{
	Name:        "career-report",
	Description: "A short, encouraging vocational report for a child",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "Two or three friendly sentences about what the child enjoys and is good at.",
			},
			"strengths": map[string]any{
				"type":        "array",
				"description": "Up to three strengths, each a short phrase.",
				"items":       map[string]any{"type": "string"},
				"maxItems":    3,
			},
			"suggested_fields": map[string]any{
				"type":        "array",
				"description": "Up to four careers or fields to explore.",
				"items":       map[string]any{"type": "string"},
				"maxItems":    4,
			},
			"encouragement": map[string]any{
				"type":        "string",
				"description": "One sentence of encouragement.",
			},
		},
		"required":             []any{"summary", "strengths", "suggested_fields", "encouragement"},
		"additionalProperties": false,
	},
}
