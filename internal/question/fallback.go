package question

import (
	"fmt"

	"github.com/skillcheck/skillcheck/internal/catalog"
)

// fallbackEntry is a canned question/expected-answer pair, parameterized
// only by skill name interpolation.
type fallbackEntry struct {
	Question       string
	ExpectedAnswer string
}

// fallbackFor returns the static fallback content for a level. Unknown
// levels deliberately map to Intermediate; the default is explicit so that
// it stays visible and testable.
func fallbackFor(skill catalog.Skill, level catalog.Level) fallbackEntry {
	switch level {
	case catalog.LevelBeginner:
		return fallbackEntry{
			Question: fmt.Sprintf(
				"Explain the core concepts of %[1]s at a beginner level. What are the fundamental ideas someone new to %[1]s should understand?",
				skill),
			ExpectedAnswer: fmt.Sprintf(
				"A good answer should cover the basic principles of %[1]s, define key terminology, and explain foundational concepts without advanced jargon. The answer should be accessible to someone with no prior knowledge of %[1]s.",
				skill),
		}
	case catalog.LevelAdvanced:
		return fallbackEntry{
			Question: fmt.Sprintf(
				"Analyze how %s has evolved over time and discuss current cutting-edge developments. What advanced techniques distinguish expert practitioners in this field?",
				skill),
			ExpectedAnswer: fmt.Sprintf(
				"A comprehensive answer should demonstrate deep knowledge of %s, including its historical development, current state-of-the-art techniques, ability to critically evaluate different approaches, and awareness of ongoing research or innovations in the field.",
				skill),
		}
	default: // Intermediate, and any unrecognized level
		return fallbackEntry{
			Question: fmt.Sprintf(
				"Describe the practical applications of %[1]s at an intermediate level. How would you implement %[1]s techniques in real-world scenarios?",
				skill),
			ExpectedAnswer: fmt.Sprintf(
				"A good answer should demonstrate clear understanding of %[1]s concepts, explain how to apply them in practice, include examples of common use cases, and show awareness of limitations or challenges when implementing %[1]s.",
				skill),
		}
	}
}

// fallbackAudioScenario is the canned scenario used when audio generation
// fails entirely.
func fallbackAudioScenario(skill catalog.Skill) string {
	return fmt.Sprintf("Imagine you are listening to a conversation about %s. The speakers are discussing key aspects and challenges.", skill)
}

// fallbackImageDescription is the canned description used when image
// generation fails entirely.
func fallbackImageDescription(skill catalog.Skill) string {
	return fmt.Sprintf("A professional workplace scene showing people demonstrating %s in different ways.", skill)
}
