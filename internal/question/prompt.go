package question

import (
	"fmt"

	"github.com/skillcheck/skillcheck/internal/catalog"
)

// buildTextPrompt asks for a direct open-ended question.
func buildTextPrompt(skill catalog.Skill, level catalog.Level) string {
	return fmt.Sprintf(`As an expert educator, create a single assessment question to evaluate a student's knowledge of %[1]s at a %[2]s level.

The question should:
1. Be clear and direct
2. Be appropriate for the %[2]s level
3. Focus specifically on %[1]s
4. Be answerable in 1-3 paragraphs

Provide your response in this exact JSON format:
{
    "question": "The complete question text",
    "expected_answer": "Key points that should be included in a correct answer"
}

The JSON must be valid. No markdown formatting. No additional text before or after the JSON.`, skill, level)
}

// buildAudioPrompt asks for a scenario that would be presented as audio.
// The scenario stays textual; no audio is synthesized.
func buildAudioPrompt(skill catalog.Skill, level catalog.Level) string {
	return fmt.Sprintf(`Create a realistic audio scenario to assess %[1]s at a %[2]s level.

The scenario should:
1. Be a situation that would be presented as an audio recording
2. Require the student to demonstrate their %[1]s skills at a %[2]s level
3. Be specific and detailed enough for clear assessment

Provide your response in this exact JSON format:
{
    "audio_scenario": "Detailed description of what the audio would contain",
    "question": "The specific question to ask the student after they hear the audio",
    "expected_answer": "Key points that should be included in a correct answer"
}`, skill, level)
}

// buildImagePrompt asks for an image description plus a question about it.
// The description feeds the placeholder renderer downstream.
func buildImagePrompt(skill catalog.Skill, level catalog.Level) string {
	return fmt.Sprintf(`Create a detailed description of an image that could be used to assess %[1]s at a %[2]s level.

The image description should:
1. Be clear and visualizable
2. Relate directly to %[1]s
3. Present a scenario appropriate for %[2]s assessment

Provide your response in this exact JSON format:
{
    "image_description": "Detailed description of what the image would show",
    "question": "The specific question to ask the student about the image",
    "expected_answer": "Key points that should be included in a correct answer"
}`, skill, level)
}
