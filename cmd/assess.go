package cmd

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/skillcheck/skillcheck/internal/catalog"
	"github.com/skillcheck/skillcheck/internal/config"
	"github.com/skillcheck/skillcheck/internal/evaluate"
	"github.com/skillcheck/skillcheck/internal/llm"
	"github.com/skillcheck/skillcheck/internal/media"
	"github.com/skillcheck/skillcheck/internal/question"
	"github.com/skillcheck/skillcheck/internal/session"
	"github.com/skillcheck/skillcheck/internal/store"
	"github.com/spf13/cobra"
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Run a soft skills assessment session",
	RunE: func(cmd *cobra.Command, args []string) error {
		skillName, _ := cmd.Flags().GetString("skill")
		levelName, _ := cmd.Flags().GetString("level")
		typeName, _ := cmd.Flags().GetString("type")
		count, _ := cmd.Flags().GetInt("questions")

		skill, err := catalog.ParseSkill(skillName)
		if err != nil {
			return fmt.Errorf("%w (run 'skillcheck skills' to list them)", err)
		}
		level, err := catalog.ParseLevel(levelName)
		if err != nil {
			return fmt.Errorf("%w (beginner, intermediate, or advanced)", err)
		}
		modality, err := catalog.ParseModality(typeName)
		if err != nil {
			return fmt.Errorf("%w (text, audio, or image)", err)
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if count > 0 {
			cfg.QuestionsPerSession = count
		}
		cfg.DBPath = resolveDBPath(cmd)

		return runAssessment(cmd.Context(), cfg, skill, level, modality)
	},
}

func init() {
	assessCmd.Flags().StringP("skill", "s", "communication", "Skill to assess")
	assessCmd.Flags().StringP("level", "l", "intermediate", "Difficulty level")
	assessCmd.Flags().StringP("type", "t", "text", "Question type (text, audio, image)")
	assessCmd.Flags().IntP("questions", "n", 0, "Number of questions (default from config)")
}

func runAssessment(ctx context.Context, cfg config.Config, skill catalog.Skill, level catalog.Level, modality catalog.Modality) error {
	logger := slog.Default()

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer st.Close()

	storage, err := media.NewStorage(cfg.UploadsDir)
	if err != nil {
		return err
	}

	provider, err := llm.NewProvider(ctx, cfg.LLM, st)
	if err != nil {
		return fmt.Errorf("init provider: %w", err)
	}

	gen := question.New(provider, question.DefaultConfig())
	transcriber := media.NewAPITranscriber(cfg.LLM.Completion.BaseURL, cfg.LLM.Completion.APIKey, storage, logger)
	captioner := media.NewStaticCaptioner(storage, logger)

	evalCfg := evaluate.DefaultConfig()
	evalCfg.HeuristicFallback = cfg.HeuristicFallback
	evaluator := evaluate.NewLLMEvaluator(provider, transcriber, captioner, evalCfg, logger)

	registry := session.NewRegistry(cfg.SessionTTL)
	sess := registry.Create(skill, level, modality)
	defer registry.Remove(sess.ID)

	if err := st.CreateSession(ctx, store.SessionRecord{
		ID:        sess.ID,
		Skill:     string(skill),
		Level:     string(level),
		Modality:  string(modality),
		StartedAt: sess.StartedAt,
	}); err != nil {
		return err
	}

	fmt.Printf("Assessing %s at %s level (%d %s questions)\n\n",
		skill, level, cfg.QuestionsPerSession, modality)

	reader := bufio.NewReader(os.Stdin)
	for i := 0; i < cfg.QuestionsPerSession; i++ {
		q := gen.Generate(ctx, skill, level, modality)

		if modality == catalog.ModalityImage && q.MediaDescription != "" {
			ref, err := media.RenderPlaceholderToStorage(storage, string(skill)+" assessment", q.MediaDescription)
			if err != nil {
				logger.Warn("render placeholder image failed", "error", err)
			} else {
				q.MediaRef = ref
				fmt.Printf("[image saved to %s]\n", storage.AbsPath(ref))
			}
		}

		if err := sess.AskQuestion(*q); err != nil {
			return err
		}
		qid, err := st.AddQuestion(ctx, store.QuestionRecord{
			SessionID:      sess.ID,
			Position:       i + 1,
			Content:        q.Content,
			ExpectedAnswer: q.ExpectedAnswer,
			Type:           string(q.Type),
			MediaRef:       q.MediaRef,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Question %d/%d:\n%s\n\n", i+1, cfg.QuestionsPerSession, q.Content)
		fmt.Print("Your answer (text, or @path to submit an audio/image file): ")

		raw, err := reader.ReadString('\n')
		if err != nil {
			raw = ""
		}
		raw = strings.TrimSpace(raw)

		ans, err := parseAnswer(raw, storage)
		if err != nil {
			logger.Warn("saving answer media failed, grading as text", "error", err)
			ans = answerInput{Text: raw, Type: catalog.ModalityText}
		}

		verdict := evaluator.Evaluate(ctx, evaluate.Input{
			Skill:          skill,
			Level:          level,
			Question:       q.Content,
			ExpectedAnswer: q.ExpectedAnswer,
			Answer:         ans.Text,
			QuestionType:   q.Type,
			AnswerType:     ans.Type,
			AudioRef:       audioRef(q),
			ImageRef:       imageRef(q),
			AnswerAudioRef: ans.audioRef(),
			AnswerImageRef: ans.imageRef(),
		})
		if err := sess.RecordEvaluation(ans.Text, verdict); err != nil {
			return err
		}
		if err := st.AddAnswer(ctx, qid, ans.Text, ans.MediaRef); err != nil {
			return err
		}
		if err := st.AddEvaluation(ctx, qid, verdict.IsCorrect, verdict.Explanation); err != nil {
			return err
		}

		mark := "Incorrect"
		if verdict.IsCorrect {
			mark = "Correct"
		}
		fmt.Printf("\n%s. %s\n\n", mark, verdict.Explanation)
	}

	score := sess.Finalize()
	if err := st.FinishSession(ctx, sess.ID, score); err != nil {
		return err
	}

	fmt.Printf("Session complete: %d/%d correct, score %d%%\n",
		sess.CorrectCount(), sess.AnsweredCount(), score)
	return nil
}

// answerInput is one submitted answer: plain text, or a stored media file
// with a placeholder text in the original's manner.
type answerInput struct {
	Text     string
	Type     catalog.Modality
	MediaRef string
}

func (a answerInput) audioRef() string {
	if a.Type == catalog.ModalityAudio {
		return a.MediaRef
	}
	return ""
}

func (a answerInput) imageRef() string {
	if a.Type == catalog.ModalityImage {
		return a.MediaRef
	}
	return ""
}

// parseAnswer interprets the raw prompt input. "@<path>" submits the file at
// path as a media answer: audio extensions grade through transcription,
// everything else through image captioning.
func parseAnswer(raw string, storage *media.Storage) (answerInput, error) {
	if !strings.HasPrefix(raw, "@") {
		return answerInput{Text: raw, Type: catalog.ModalityText}, nil
	}

	path := strings.TrimSpace(strings.TrimPrefix(raw, "@"))
	ref, err := storage.SaveFile(path)
	if err != nil {
		return answerInput{}, err
	}

	base := filepath.Base(path)
	if media.ValidAudioName(path) {
		return answerInput{
			Text:     fmt.Sprintf("Audio answer submitted (file: %s)", base),
			Type:     catalog.ModalityAudio,
			MediaRef: ref,
		}, nil
	}
	return answerInput{
		Text:     fmt.Sprintf("Image answer submitted (file: %s)", base),
		Type:     catalog.ModalityImage,
		MediaRef: ref,
	}, nil
}

func audioRef(q *question.Question) string {
	if q.Type == catalog.ModalityAudio {
		return q.MediaRef
	}
	return ""
}

func imageRef(q *question.Question) string {
	if q.Type == catalog.ModalityImage {
		return q.MediaRef
	}
	return ""
}
