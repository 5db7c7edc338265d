package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/seb0305/aenigma-verborum/internal/metrics"
	"github.com/seb0305/aenigma-verborum/internal/models"
	"go.uber.org/zap"
)

type QuizRI interface {
	VocabularyRI
	SessionRI
}

type QuizS struct {
	lookup        LookupI
	repo          QuizRI
	tx            TransactorI
	rewards       *RewardS
	events        EventPublisherI
	distractors   *DistractorGenerator
	log           *zap.Logger
	now           func() time.Time
	lookupTimeout time.Duration
}

func NewQuizService(lookup LookupI, repo QuizRI, tx TransactorI, rewards *RewardS, events EventPublisherI,
	distractors *DistractorGenerator, log *zap.Logger, lookupTimeout time.Duration) *QuizS {
	return &QuizS{
		lookup:        lookup,
		repo:          repo,
		tx:            tx,
		rewards:       rewards,
		events:        events,
		distractors:   distractors,
		log:           log,
		now:           utcNow,
		lookupTimeout: lookupTimeout,
	}
}

func (q *QuizS) StartSession(ctx context.Context, userID int64) (int64, error) {
	return q.startSession(ctx, userID, models.ModeTranslation)
}

func (q *QuizS) startSession(ctx context.Context, userID int64, mode models.SessionMode) (int64, error) {
	id, err := q.repo.CreateSession(ctx, models.QuizSession{
		UserID:    userID,
		Mode:      mode,
		StartedAt: q.now(),
	})
	if err != nil {
		q.log.Warn("failed to start session", zap.Int64("user_id", userID), zap.String("mode", string(mode)), zap.Error(err))
		return 0, err
	}
	return id, nil
}

func (q *QuizS) FinishSession(ctx context.Context, userID, sessionID int64) error {
	if err := q.repo.FinishSession(ctx, userID, sessionID, q.now()); err != nil {
		return err
	}
	publishEvent(ctx, q.events, q.log, EventSessionFinished, map[string]int64{"user_id": userID, "session_id": sessionID})
	return nil
}

// NextQuestion picks a weak item not yet asked in the session and builds a
// four-option multiple choice question for it.
func (q *QuizS) NextQuestion(ctx context.Context, userID int64, sessionID *int64) (models.Question, error) {
	if sessionID != nil {
		if _, err := q.repo.SessionByID(ctx, userID, *sessionID); err != nil {
			return models.Question{}, err
		}
	}

	item, err := q.repo.RandomWeakItem(ctx, userID, sessionID)
	if err != nil {
		return models.Question{}, err
	}

	meanings := TrueMeanings(item.Translation, q.alternateMeanings(ctx, item.Headword))
	options, correctIndex := q.distractors.Build(item.Translation, meanings)

	q.log.Info("multiple choice question", zap.Int64("user_id", userID), zap.String("headword", item.Headword))

	return models.Question{
		ItemID:       item.ID,
		Headword:     item.Headword,
		Options:      options,
		CorrectIndex: correctIndex,
	}, nil
}

// alternateMeanings never fails: lookup errors degrade to no extra meanings.
func (q *QuizS) alternateMeanings(ctx context.Context, headword string) []string {
	ctx, cancel := context.WithTimeout(ctx, q.lookupTimeout)
	defer cancel()

	meanings, err := q.lookup.AlternateMeanings(ctx, headword)
	if err != nil {
		metrics.LookupFailures.WithLabelValues("meanings").Inc()
		q.log.Warn("alternate meanings unavailable, using stored translation only",
			zap.String("headword", headword), zap.Error(err))
		return nil
	}
	return meanings
}

func (q *QuizS) SubmitAnswer(ctx context.Context, userID, sessionID, itemID int64, answer string) (models.AnswerResult, error) {
	var (
		result models.AnswerResult
		item   models.VocabularyItem
	)

	err := q.tx.WithinTx(ctx, func(ctx context.Context) error {
		session, err := q.openSession(ctx, userID, sessionID)
		if err != nil {
			return err
		}

		item, err = q.repo.VocabularyForUpdate(ctx, userID, itemID)
		if err != nil {
			return err
		}

		result, err = q.evaluate(ctx, userID, session.ID, &item, matchesTranslation(answer, item.Translation))
		return err
	})
	if err != nil {
		return models.AnswerResult{}, err
	}

	q.afterAnswer(ctx, userID, models.ModeTranslation, item, result)
	return result, nil
}

func (q *QuizS) openSession(ctx context.Context, userID, sessionID int64) (models.QuizSession, error) {
	session, err := q.repo.SessionByID(ctx, userID, sessionID)
	if err != nil {
		return models.QuizSession{}, err
	}
	if !session.Open() {
		return models.QuizSession{}, models.ErrSessionFinished
	}
	return session, nil
}

// evaluate records the answer, updates the counters and applies the reward
// transition. Callers run it inside one transaction.
func (q *QuizS) evaluate(ctx context.Context, userID, sessionID int64, item *models.VocabularyItem, correct bool) (models.AnswerResult, error) {
	if err := q.repo.AddAnswer(ctx, models.AnsweredQuestion{
		SessionID:        sessionID,
		VocabularyItemID: item.ID,
		Correct:          correct,
		AnsweredAt:       q.now(),
	}); err != nil {
		return models.AnswerResult{}, err
	}

	item.RecordAnswer(correct)

	change, rewardID, err := q.rewards.transition(ctx, userID, item, correct)
	if err != nil {
		return models.AnswerResult{}, fmt.Errorf("reward transition for item %d: %w", item.ID, err)
	}

	if err := q.repo.SaveMastery(ctx, *item); err != nil {
		return models.AnswerResult{}, err
	}

	return models.AnswerResult{
		Correct:      correct,
		Accuracy:     item.Accuracy,
		RewardChange: change,
		RewardID:     rewardID,
	}, nil
}

func (q *QuizS) afterAnswer(ctx context.Context, userID int64, mode models.SessionMode, item models.VocabularyItem, result models.AnswerResult) {
	metrics.Answers.WithLabelValues(metrics.ResultLabel(result.Correct), string(mode)).Inc()

	if result.RewardChange == models.RewardNone || result.RewardID == nil {
		return
	}

	metrics.RewardChanges.WithLabelValues(string(result.RewardChange)).Inc()

	eventType := EventRewardGranted
	if result.RewardChange == models.RewardRevoked {
		eventType = EventRewardRevoked
	}
	publishEvent(ctx, q.events, q.log, eventType, models.RewardEvent{
		UserID:           userID,
		RewardID:         *result.RewardID,
		VocabularyItemID: item.ID,
		Headword:         item.Headword,
		Accuracy:         item.Accuracy,
	})
}

// matchesTranslation is a strict comparison: trimmed and case-insensitive, nothing more.
func matchesTranslation(answer, translation string) bool {
	return strings.ToLower(strings.TrimSpace(answer)) == strings.ToLower(strings.TrimSpace(translation))
}

func drillMode(category models.Category) (models.SessionMode, error) {
	mode, ok := models.DrillMode(category)
	if !ok {
		return "", fmt.Errorf("%w: no classification drill for category %q", models.ErrValidation, category)
	}
	return mode, nil
}

func (q *QuizS) StartDrill(ctx context.Context, userID int64, category models.Category) (int64, error) {
	mode, err := drillMode(category)
	if err != nil {
		return 0, err
	}
	return q.startSession(ctx, userID, mode)
}

// NextDrillItem returns an unasked item of the category from the latest open
// drill session. When none is left the session is finished and ErrDrillComplete returned.
func (q *QuizS) NextDrillItem(ctx context.Context, userID int64, category models.Category) (models.DrillQuestion, error) {
	mode, err := drillMode(category)
	if err != nil {
		return models.DrillQuestion{}, err
	}

	var (
		question models.DrillQuestion
		finished int64
	)

	err = q.tx.WithinTx(ctx, func(ctx context.Context) error {
		session, err := q.repo.LatestOpenSession(ctx, userID, mode)
		if err != nil {
			return err
		}

		item, err := q.repo.RandomDrillItem(ctx, userID, category, session.ID)
		if errors.Is(err, models.ErrNoEligibleItem) {
			finished = session.ID
			return q.repo.FinishSession(ctx, userID, session.ID, q.now())
		}
		if err != nil {
			return err
		}

		question = models.DrillQuestion{
			SessionID: session.ID,
			ItemID:    item.ID,
			Headword:  item.Headword,
			Category:  item.Category,
		}
		return nil
	})
	if err != nil {
		return models.DrillQuestion{}, err
	}

	if finished != 0 {
		publishEvent(ctx, q.events, q.log, EventSessionFinished, map[string]int64{"user_id": userID, "session_id": finished})
		return models.DrillQuestion{}, models.ErrDrillComplete
	}

	return question, nil
}

// SubmitDrillAnswer checks the named inflection class of headword within the
// latest open drill session of the category.
func (q *QuizS) SubmitDrillAnswer(ctx context.Context, userID int64, category models.Category, headword, inflection string) (models.AnswerResult, error) {
	mode, err := drillMode(category)
	if err != nil {
		return models.AnswerResult{}, err
	}

	var (
		result models.AnswerResult
		item   models.VocabularyItem
	)

	err = q.tx.WithinTx(ctx, func(ctx context.Context) error {
		item, err = q.repo.VocabularyByHeadword(ctx, userID, strings.TrimSpace(headword))
		if err != nil {
			return err
		}

		session, err := q.repo.LatestOpenSession(ctx, userID, mode)
		if err != nil {
			return err
		}

		correct := item.Inflection != nil && strings.TrimSpace(inflection) == *item.Inflection
		result, err = q.evaluate(ctx, userID, session.ID, &item, correct)
		return err
	})
	if err != nil {
		return models.AnswerResult{}, err
	}

	q.afterAnswer(ctx, userID, mode, item, result)
	return result, nil
}
