package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/seb0305/aenigma-verborum/internal/models"
)

const sessionColumns = `id, user_id, mode, started_at, finished_at`

type SessionR struct {
	base
}

func NewSessionRepository(db QueryI, dialect Dialect) *SessionR {
	return &SessionR{base: base{db: db, dialect: dialect}}
}

func (s *SessionR) CreateSession(ctx context.Context, session models.QuizSession) (int64, error) {
	query := `INSERT INTO quiz_sessions (user_id, mode, started_at) VALUES (?, ?, ?) RETURNING id`

	var id int64
	if err := s.q(ctx).GetContext(ctx, &id, s.rebind(query), session.UserID, session.Mode, session.StartedAt); err != nil {
		return 0, fmt.Errorf("failed to create %s session for user %d: %w", session.Mode, session.UserID, err)
	}

	return id, nil
}

func (s *SessionR) SessionByID(ctx context.Context, userID, id int64) (models.QuizSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM quiz_sessions WHERE id = ? AND user_id = ?`
	return s.getSession(ctx, query, id, userID)
}

// LatestOpenSession returns the most recent unfinished session of the mode.
func (s *SessionR) LatestOpenSession(ctx context.Context, userID int64, mode models.SessionMode) (models.QuizSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM quiz_sessions
		WHERE user_id = ? AND mode = ? AND finished_at IS NULL
		ORDER BY id DESC LIMIT 1`
	return s.getSession(ctx, query, userID, mode)
}

func (s *SessionR) getSession(ctx context.Context, query string, args ...interface{}) (models.QuizSession, error) {
	var session models.QuizSession
	err := s.q(ctx).GetContext(ctx, &session, s.rebind(query), args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.QuizSession{}, models.ErrSessionNotFound
		}
		return models.QuizSession{}, fmt.Errorf("database error: %w", err)
	}
	return session, nil
}

// FinishSession stamps the finish time once; later calls keep the first stamp.
func (s *SessionR) FinishSession(ctx context.Context, userID, id int64, at time.Time) error {
	query := `UPDATE quiz_sessions SET finished_at = COALESCE(finished_at, ?) WHERE id = ? AND user_id = ?`

	res, err := s.q(ctx).ExecContext(ctx, s.rebind(query), at, id, userID)
	if err != nil {
		return fmt.Errorf("failed to finish session %d: %w", id, err)
	}

	return expectAffected(res, models.ErrSessionNotFound)
}

func (s *SessionR) AddAnswer(ctx context.Context, answer models.AnsweredQuestion) error {
	query := `INSERT INTO answered_questions (session_id, vocabulary_item_id, correct, answered_at)
		VALUES (?, ?, ?, ?)`

	_, err := s.q(ctx).ExecContext(ctx, s.rebind(query),
		answer.SessionID, answer.VocabularyItemID, answer.Correct, answer.AnsweredAt)
	if err != nil {
		return fmt.Errorf("failed to record answer for session %d: %w", answer.SessionID, err)
	}

	return nil
}

func (s *SessionR) AnsweredItemIDs(ctx context.Context, sessionID int64) ([]int64, error) {
	query := `SELECT vocabulary_item_id FROM answered_questions WHERE session_id = ? ORDER BY id`

	ids := make([]int64, 0)
	if err := s.q(ctx).SelectContext(ctx, &ids, s.rebind(query), sessionID); err != nil {
		return nil, fmt.Errorf("failed to list answers for session %d: %w", sessionID, err)
	}

	return ids, nil
}
