package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/skillcheck/skillcheck/internal/llm"
)

// SessionRecord is a persisted assessment session.
type SessionRecord struct {
	ID         string
	Skill      string
	Level      string
	Modality   string
	Score      int
	Complete   bool
	StartedAt  time.Time
	FinishedAt sql.NullTime
}

// QuestionRecord is a persisted question with its answer and verdict, when
// those exist.
type QuestionRecord struct {
	ID             int64
	SessionID      string
	Position       int
	Content        string
	ExpectedAnswer string
	Type           string
	MediaRef       string
}

// LLMRequestRecord is one audited model call.
type LLMRequestRecord struct {
	ID           int64
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	CreatedAt    time.Time
}

// CreateSession inserts a new session row.
func (s *Store) CreateSession(ctx context.Context, rec SessionRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (id, skill, level, modality, started_at) VALUES (?, ?, ?, ?, ?)`,
		rec.ID, rec.Skill, rec.Level, rec.Modality, rec.StartedAt)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// FinishSession records the final score and completion time.
func (s *Store) FinishSession(ctx context.Context, id string, score int) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE sessions SET score = ?, complete = 1, finished_at = CURRENT_TIMESTAMP WHERE id = ?`,
		score, id)
	if err != nil {
		return fmt.Errorf("finish session: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("finish session: no session %s", id)
	}
	return nil
}

// AddQuestion inserts a question and returns its row id.
func (s *Store) AddQuestion(ctx context.Context, rec QuestionRecord) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO questions (session_id, position, content, expected_answer, qtype, media_ref)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.SessionID, rec.Position, rec.Content, rec.ExpectedAnswer, rec.Type, rec.MediaRef)
	if err != nil {
		return 0, fmt.Errorf("insert question: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert question: %w", err)
	}
	return id, nil
}

// AddAnswer records the answer given to a question.
func (s *Store) AddAnswer(ctx context.Context, questionID int64, content, mediaRef string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO answers (question_id, content, media_ref) VALUES (?, ?, ?)`,
		questionID, content, mediaRef)
	if err != nil {
		return fmt.Errorf("insert answer: %w", err)
	}
	return nil
}

// AddEvaluation records the verdict on a question.
func (s *Store) AddEvaluation(ctx context.Context, questionID int64, isCorrect bool, explanation string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO evaluations (question_id, is_correct, explanation) VALUES (?, ?, ?)`,
		questionID, boolToInt(isCorrect), explanation)
	if err != nil {
		return fmt.Errorf("insert evaluation: %w", err)
	}
	return nil
}

// RecentSessions returns the most recently started sessions, newest first.
func (s *Store) RecentSessions(ctx context.Context, limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, skill, level, modality, score, complete, started_at, finished_at
		 FROM sessions ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionRecord
	for rows.Next() {
		var rec SessionRecord
		var complete int
		if err := rows.Scan(&rec.ID, &rec.Skill, &rec.Level, &rec.Modality, &rec.Score, &complete, &rec.StartedAt, &rec.FinishedAt); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		rec.Complete = complete != 0
		out = append(out, rec)
	}
	return out, rows.Err()
}

// SessionQuestions returns a session's questions in ask order.
func (s *Store) SessionQuestions(ctx context.Context, sessionID string) ([]QuestionRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, session_id, position, content, expected_answer, qtype, media_ref
		 FROM questions WHERE session_id = ? ORDER BY position`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	defer rows.Close()

	var out []QuestionRecord
	for rows.Next() {
		var rec QuestionRecord
		if err := rows.Scan(&rec.ID, &rec.SessionID, &rec.Position, &rec.Content, &rec.ExpectedAnswer, &rec.Type, &rec.MediaRef); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// RecordLLMRequest implements llm.AuditRepo.
func (s *Store) RecordLLMRequest(ctx context.Context, rec llm.AuditRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO llm_requests (model, purpose, input_tokens, output_tokens, latency_ms, success, error_message)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.Model, rec.Purpose, rec.InputTokens, rec.OutputTokens, rec.LatencyMs, boolToInt(rec.Success), rec.ErrorMessage)
	if err != nil {
		return fmt.Errorf("insert llm request: %w", err)
	}
	return nil
}

// RecentLLMRequests returns the latest audited model calls, newest first.
// A non-empty purpose filters before the limit applies, so the caller gets
// up to limit matching rows.
func (s *Store) RecentLLMRequests(ctx context.Context, purpose string, limit int) ([]LLMRequestRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT id, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message, created_at
		 FROM llm_requests`
	args := []any{}
	if purpose != "" {
		query += ` WHERE purpose = ?`
		args = append(args, purpose)
	}
	query += ` ORDER BY created_at DESC, id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query llm requests: %w", err)
	}
	defer rows.Close()

	var out []LLMRequestRecord
	for rows.Next() {
		var rec LLMRequestRecord
		var success int
		if err := rows.Scan(&rec.ID, &rec.Model, &rec.Purpose, &rec.InputTokens, &rec.OutputTokens, &rec.LatencyMs, &success, &rec.ErrorMessage, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan llm request: %w", err)
		}
		rec.Success = success != 0
		out = append(out, rec)
	}
	return out, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

var _ llm.AuditRepo = (*Store)(nil)
