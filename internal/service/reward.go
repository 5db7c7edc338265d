package service

import (
	"context"
	"fmt"
	"time"

	"github.com/seb0305/aenigma-verborum/internal/models"
	"go.uber.org/zap"
)

const bronzeImage = "https://placehold.co/240x320?text=Bronze+Card"

type RewardS struct {
	repo RewardRI
	log  *zap.Logger
	now  func() time.Time
}

func NewRewardService(repo RewardRI, log *zap.Logger) *RewardS {
	return &RewardS{
		repo: repo,
		log:  log,
		now:  utcNow,
	}
}

// RewardCards lists the bronze cards the user currently holds.
func (r *RewardS) RewardCards(ctx context.Context, userID int64) ([]models.RewardCard, error) {
	cards, err := r.repo.RewardCards(ctx, userID, models.TierBronze)
	if err != nil {
		r.log.Warn("failed to list reward cards", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}
	return cards, nil
}

// transition grants or revokes the item's bronze reward after its counters
// were updated. It must run inside the answer's transaction and sets item.HasReward.
func (r *RewardS) transition(ctx context.Context, userID int64, item *models.VocabularyItem, correct bool) (models.RewardChange, *int64, error) {
	grant, held, err := r.repo.GrantFor(ctx, userID, item.ID, models.TierBronze)
	if err != nil {
		return models.RewardNone, nil, err
	}

	switch {
	case correct && item.Accuracy >= models.MasteryThreshold && !held:
		rewardID, err := r.grant(ctx, userID, item)
		if err != nil {
			return models.RewardNone, nil, err
		}
		return models.RewardGranted, &rewardID, nil

	case item.Accuracy < models.MasteryThreshold && held:
		if err := r.release(ctx, grant); err != nil {
			return models.RewardNone, nil, err
		}
		item.HasReward = false
		rewardID := grant.RewardID
		return models.RewardRevoked, &rewardID, nil
	}

	return models.RewardNone, nil, nil
}

func (r *RewardS) grant(ctx context.Context, userID int64, item *models.VocabularyItem) (int64, error) {
	rewardID, err := r.repo.AcquireReward(ctx, models.Reward{
		VocabularyItemID: item.ID,
		Tier:             models.TierBronze,
		Title:            item.Headword,
		Description:      fmt.Sprintf("Bronze card for %s", item.Headword),
		ImageRef:         bronzeImage,
	})
	if err != nil {
		return 0, err
	}

	if _, err := r.repo.AddGrant(ctx, models.RewardGrant{
		RewardID:   rewardID,
		UserID:     userID,
		AcquiredAt: r.now(),
	}); err != nil {
		return 0, err
	}

	item.HasReward = true
	return rewardID, nil
}

func (r *RewardS) release(ctx context.Context, grant models.RewardGrant) error {
	if err := r.repo.DeleteGrant(ctx, grant.ID); err != nil {
		return err
	}

	deleted, err := r.repo.ReleaseReward(ctx, grant.RewardID)
	if err != nil {
		return err
	}
	if deleted {
		r.log.Debug("reward has no holders left, deleted", zap.Int64("reward_id", grant.RewardID))
	}
	return nil
}

// revoke removes the user's grant for the item if there is one.
// Without a grant it does nothing and returns nil.
func (r *RewardS) revoke(ctx context.Context, userID int64, item *models.VocabularyItem) (*int64, error) {
	grant, held, err := r.repo.GrantFor(ctx, userID, item.ID, models.TierBronze)
	if err != nil || !held {
		return nil, err
	}

	if err := r.release(ctx, grant); err != nil {
		return nil, err
	}

	item.HasReward = false
	rewardID := grant.RewardID
	return &rewardID, nil
}
