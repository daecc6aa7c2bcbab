package evaluate

import (
	"context"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

const (
	keywordMatchThreshold = 0.5
	punctCutset           = `.,;:()[]{}"'`
)

// HeuristicGrader grades by keyword overlap with the expected answer. It is
// the terminal fallback and never fails.
type HeuristicGrader struct{}

func (HeuristicGrader) Evaluate(ctx context.Context, in Input) Evaluation {
	keywords := extractKeywords(in.ExpectedAnswer)

	answer := strings.ToLower(in.Answer)
	matched := 0
	for kw := range keywords {
		if strings.Contains(answer, kw) {
			matched++
		}
	}

	// An empty keyword set grades as zero overlap.
	ratio := 0.0
	if len(keywords) > 0 {
		ratio = float64(matched) / float64(len(keywords))
	}
	percent := int(math.Round(ratio * 100))

	if ratio >= keywordMatchThreshold {
		return Evaluation{
			IsCorrect:   true,
			Explanation: fmt.Sprintf("The answer covers approximately %d%% of the key concepts expected.", percent),
		}
	}
	return Evaluation{
		IsCorrect:   false,
		Explanation: fmt.Sprintf("The answer is missing several important concepts (only covers about %d%% of expected key points).", percent),
	}
}

// extractKeywords builds the expected keyword set: whitespace tokens,
// lowercased, punctuation trimmed from the ends, kept when longer than
// four characters. Duplicates collapse.
func extractKeywords(expected string) map[string]struct{} {
	keywords := make(map[string]struct{})
	for _, tok := range strings.Fields(strings.ToLower(expected)) {
		tok = strings.Trim(tok, punctCutset)
		if utf8.RuneCountInString(tok) > 4 {
			keywords[tok] = struct{}{}
		}
	}
	return keywords
}

var _ Evaluator = HeuristicGrader{}
