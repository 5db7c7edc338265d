package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/seb0305/aenigma-verborum/internal/models"
)

const vocabColumns = `id, user_id, headword, translation, category, inflection,
	total_attempts, correct_attempts, accuracy, has_reward, created_at`

type VocabularyR struct {
	base
}

func NewVocabularyRepository(db QueryI, dialect Dialect) *VocabularyR {
	return &VocabularyR{base: base{db: db, dialect: dialect}}
}

func (v *VocabularyR) AddVocabulary(ctx context.Context, item models.VocabularyItem) (int64, error) {
	query := `INSERT INTO vocabulary_items
		(user_id, headword, translation, category, inflection, total_attempts, correct_attempts, accuracy, has_reward, created_at)
		VALUES (?, ?, ?, ?, ?, 0, 0, 0, ?, ?)
		RETURNING id`

	var id int64
	err := v.q(ctx).GetContext(ctx, &id, v.rebind(query),
		item.UserID, item.Headword, item.Translation, item.Category, item.Inflection, false, item.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, models.ErrDuplicateHeadword
		}
		return 0, fmt.Errorf("failed to insert vocabulary %q: %w", item.Headword, err)
	}

	return id, nil
}

func (v *VocabularyR) VocabularyByID(ctx context.Context, userID, id int64) (models.VocabularyItem, error) {
	query := `SELECT ` + vocabColumns + ` FROM vocabulary_items WHERE id = ? AND user_id = ?`
	return v.getItem(ctx, query, id, userID)
}

// VocabularyForUpdate is VocabularyByID holding a row lock for the rest of the transaction.
func (v *VocabularyR) VocabularyForUpdate(ctx context.Context, userID, id int64) (models.VocabularyItem, error) {
	query := `SELECT ` + vocabColumns + ` FROM vocabulary_items WHERE id = ? AND user_id = ?` + v.forUpdate()
	return v.getItem(ctx, query, id, userID)
}

func (v *VocabularyR) VocabularyByHeadword(ctx context.Context, userID int64, headword string) (models.VocabularyItem, error) {
	query := `SELECT ` + vocabColumns + ` FROM vocabulary_items WHERE user_id = ? AND headword = ?` + v.forUpdate()
	return v.getItem(ctx, query, userID, headword)
}

func (v *VocabularyR) getItem(ctx context.Context, query string, args ...interface{}) (models.VocabularyItem, error) {
	var item models.VocabularyItem
	err := v.q(ctx).GetContext(ctx, &item, v.rebind(query), args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.VocabularyItem{}, models.ErrItemNotFound
		}
		return models.VocabularyItem{}, fmt.Errorf("database error: %w", err)
	}
	return item, nil
}

func (v *VocabularyR) ListVocabulary(ctx context.Context, userID int64, filter models.VocabularyFilter) ([]models.VocabularyItem, error) {
	var (
		sb   strings.Builder
		args = []interface{}{userID}
	)

	sb.WriteString(`SELECT ` + vocabColumns + ` FROM vocabulary_items WHERE user_id = ?`)

	if filter.Category != "" {
		sb.WriteString(` AND category = ?`)
		args = append(args, filter.Category)
	}

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		sb.WriteString(` AND (LOWER(headword) LIKE ? OR LOWER(translation) LIKE ?)`)
		args = append(args, pattern, pattern)
	}

	sb.WriteString(` ORDER BY created_at DESC, id DESC`)

	items := make([]models.VocabularyItem, 0)
	if err := v.q(ctx).SelectContext(ctx, &items, v.rebind(sb.String()), args...); err != nil {
		return nil, fmt.Errorf("failed to list vocabulary for user %d: %w", userID, err)
	}

	return items, nil
}

func (v *VocabularyR) UpdateVocabulary(ctx context.Context, item models.VocabularyItem) error {
	query := `UPDATE vocabulary_items
		SET headword = ?, translation = ?, category = ?, inflection = ?
		WHERE id = ? AND user_id = ?`

	res, err := v.q(ctx).ExecContext(ctx, v.rebind(query),
		item.Headword, item.Translation, item.Category, item.Inflection, item.ID, item.UserID)
	if err != nil {
		if isUniqueViolation(err) {
			return models.ErrDuplicateHeadword
		}
		return fmt.Errorf("failed to update vocabulary %d: %w", item.ID, err)
	}

	return expectAffected(res, models.ErrItemNotFound)
}

// SaveMastery persists the counters and reward flag written by the answer evaluator.
func (v *VocabularyR) SaveMastery(ctx context.Context, item models.VocabularyItem) error {
	query := `UPDATE vocabulary_items
		SET total_attempts = ?, correct_attempts = ?, accuracy = ?, has_reward = ?
		WHERE id = ? AND user_id = ?`

	res, err := v.q(ctx).ExecContext(ctx, v.rebind(query),
		item.TotalAttempts, item.CorrectAttempts, item.Accuracy, item.HasReward, item.ID, item.UserID)
	if err != nil {
		return fmt.Errorf("failed to save mastery for vocabulary %d: %w", item.ID, err)
	}

	return expectAffected(res, models.ErrItemNotFound)
}

func (v *VocabularyR) DeleteVocabulary(ctx context.Context, userID, id int64) error {
	query := `DELETE FROM vocabulary_items WHERE id = ? AND user_id = ?`

	res, err := v.q(ctx).ExecContext(ctx, v.rebind(query), id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete vocabulary %d: %w", id, err)
	}

	return expectAffected(res, models.ErrItemNotFound)
}

// RandomWeakItem picks uniformly among the user's weak items, skipping those
// already answered in sessionID when it is set.
func (v *VocabularyR) RandomWeakItem(ctx context.Context, userID int64, sessionID *int64) (models.VocabularyItem, error) {
	query := `SELECT ` + vocabColumns + ` FROM vocabulary_items
		WHERE user_id = ? AND (accuracy < ? OR total_attempts < ?)`
	args := []interface{}{userID, models.WeakAccuracy, models.WeakAttempts}

	if sessionID != nil {
		query += ` AND id NOT IN (SELECT vocabulary_item_id FROM answered_questions WHERE session_id = ?)`
		args = append(args, *sessionID)
	}

	query += ` ORDER BY RANDOM() LIMIT 1`

	item, err := v.getItem(ctx, query, args...)
	if errors.Is(err, models.ErrItemNotFound) {
		return models.VocabularyItem{}, models.ErrNoEligibleItem
	}
	return item, err
}

// RandomDrillItem picks an unasked item of the category that has an inflection class.
func (v *VocabularyR) RandomDrillItem(ctx context.Context, userID int64, category models.Category, sessionID int64) (models.VocabularyItem, error) {
	query := `SELECT ` + vocabColumns + ` FROM vocabulary_items
		WHERE user_id = ? AND category = ? AND inflection IS NOT NULL AND inflection <> ''
		AND id NOT IN (SELECT vocabulary_item_id FROM answered_questions WHERE session_id = ?)
		ORDER BY RANDOM() LIMIT 1`

	item, err := v.getItem(ctx, query, userID, category, sessionID)
	if errors.Is(err, models.ErrItemNotFound) {
		return models.VocabularyItem{}, models.ErrNoEligibleItem
	}
	return item, err
}

func expectAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
