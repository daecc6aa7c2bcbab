package evaluate

import "fmt"

// buildGradingPrompt embeds the full assessment context so the model can
// judge the answer against the expected key points at the right level.
func buildGradingPrompt(in Input) string {
	return fmt.Sprintf(`You are an expert educator evaluating student responses for soft skills assessment.

Assessment Context:
- Skill being assessed: %[1]s
- Level: %[2]s
- Question Type: %[3]s
- Answer Type: %[4]s

Question: %[5]s

Expected key points in the answer: %[6]s

Student's answer: %[7]s

Your task:
1. Compare the student's answer to the expected key points
2. Determine if the student demonstrated sufficient understanding of %[1]s at a %[2]s level
3. Provide a brief explanation justifying your assessment
4. Consider the format of both question and answer in your evaluation

Return ONLY this exact JSON format with no additional text:
{
    "is_correct": true or false,
    "explanation": "Brief explanation of the assessment"
}`,
		in.Skill, in.Level, in.QuestionType, in.AnswerType,
		in.Question, in.ExpectedAnswer, in.Answer)
}
