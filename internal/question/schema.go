package question

import "github.com/skillcheck/skillcheck/internal/llm"

// TextQuestionSchema describes the JSON shape for a text question response.
var TextQuestionSchema = &llm.Schema{
	Name:        "text-question",
	Description: "A single open-ended assessment question with expected key points",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "The complete question text",
			},
			"expected_answer": map[string]any{
				"type":        "string",
				"description": "Key points that should be included in a correct answer",
			},
		},
		"required":             []any{"question", "expected_answer"},
		"additionalProperties": false,
	},
}

// AudioQuestionSchema describes the JSON shape for an audio-scenario
// question response.
var AudioQuestionSchema = &llm.Schema{
	Name:        "audio-question",
	Description: "An audio scenario with a follow-up question and expected key points",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"audio_scenario": map[string]any{
				"type":        "string",
				"description": "Detailed description of what the audio would contain",
			},
			"question": map[string]any{
				"type":        "string",
				"description": "The question to ask after the audio is heard",
			},
			"expected_answer": map[string]any{
				"type":        "string",
				"description": "Key points that should be included in a correct answer",
			},
		},
		"required":             []any{"audio_scenario", "question", "expected_answer"},
		"additionalProperties": false,
	},
}

// ImageQuestionSchema describes the JSON shape for an image-described
// question response.
var ImageQuestionSchema = &llm.Schema{
	Name:        "image-question",
	Description: "An image description with a question about it and expected key points",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"image_description": map[string]any{
				"type":        "string",
				"description": "Detailed description of what the image would show",
			},
			"question": map[string]any{
				"type":        "string",
				"description": "The question to ask about the image",
			},
			"expected_answer": map[string]any{
				"type":        "string",
				"description": "Key points that should be included in a correct answer",
			},
		},
		"required":             []any{"image_description", "question", "expected_answer"},
		"additionalProperties": false,
	},
}
