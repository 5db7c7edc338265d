package service

import (
	"context"
	"time"

	"github.com/seb0305/aenigma-verborum/internal/models"
	"go.uber.org/zap"
)

type VocabularyRI interface {
	AddVocabulary(ctx context.Context, item models.VocabularyItem) (int64, error)
	VocabularyByID(ctx context.Context, userID, id int64) (models.VocabularyItem, error)
	VocabularyForUpdate(ctx context.Context, userID, id int64) (models.VocabularyItem, error)
	VocabularyByHeadword(ctx context.Context, userID int64, headword string) (models.VocabularyItem, error)
	ListVocabulary(ctx context.Context, userID int64, filter models.VocabularyFilter) ([]models.VocabularyItem, error)
	UpdateVocabulary(ctx context.Context, item models.VocabularyItem) error
	SaveMastery(ctx context.Context, item models.VocabularyItem) error
	DeleteVocabulary(ctx context.Context, userID, id int64) error
	RandomWeakItem(ctx context.Context, userID int64, sessionID *int64) (models.VocabularyItem, error)
	RandomDrillItem(ctx context.Context, userID int64, category models.Category, sessionID int64) (models.VocabularyItem, error)
}

type SessionRI interface {
	CreateSession(ctx context.Context, session models.QuizSession) (int64, error)
	SessionByID(ctx context.Context, userID, id int64) (models.QuizSession, error)
	LatestOpenSession(ctx context.Context, userID int64, mode models.SessionMode) (models.QuizSession, error)
	FinishSession(ctx context.Context, userID, id int64, at time.Time) error
	AddAnswer(ctx context.Context, answer models.AnsweredQuestion) error
}

type RewardRI interface {
	GrantFor(ctx context.Context, userID, itemID int64, tier models.Tier) (models.RewardGrant, bool, error)
	AcquireReward(ctx context.Context, reward models.Reward) (int64, error)
	ReleaseReward(ctx context.Context, rewardID int64) (bool, error)
	AddGrant(ctx context.Context, grant models.RewardGrant) (int64, error)
	DeleteGrant(ctx context.Context, grantID int64) error
	RewardCards(ctx context.Context, userID int64, tier models.Tier) ([]models.RewardCard, error)
}

type RepositoryI interface {
	VocabularyRI
	SessionRI
	RewardRI
}

// TransactorI runs fn atomically; repositories pick the transaction up from ctx.
type TransactorI interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type LookupI interface {
	Classify(ctx context.Context, headword string) (models.Classification, error)
	AlternateMeanings(ctx context.Context, headword string) ([]string, error)
}

type EventPublisherI interface {
	Publish(ctx context.Context, eventType string, payload interface{}) error
}

const (
	EventRewardGranted   = "reward.granted"
	EventRewardRevoked   = "reward.revoked"
	EventSessionFinished = "session.finished"
)

type Options struct {
	LookupTimeout time.Duration
	Seed          int64
}

type Service struct {
	*VocabularyS
	*QuizS
	*RewardS
}

func InitServices(lookup LookupI, repo RepositoryI, tx TransactorI, events EventPublisherI, log *zap.Logger, opts Options) *Service {
	rewards := NewRewardService(repo, log)
	return &Service{
		VocabularyS: NewVocabularyService(lookup, repo, tx, rewards, events, log, opts.LookupTimeout),
		QuizS:       NewQuizService(lookup, repo, tx, rewards, events, NewDistractorGenerator(DefaultDistractorPool(), opts.Seed), log, opts.LookupTimeout),
		RewardS:     rewards,
	}
}

func utcNow() time.Time {
	return time.Now().UTC()
}

func publishEvent(ctx context.Context, events EventPublisherI, log *zap.Logger, eventType string, payload interface{}) {
	if err := events.Publish(ctx, eventType, payload); err != nil {
		log.Warn("failed to publish event", zap.String("type", eventType), zap.Error(err))
	}
}
