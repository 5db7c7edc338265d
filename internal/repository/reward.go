package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/seb0305/aenigma-verborum/internal/models"
)

type RewardR struct {
	base
}

func NewRewardRepository(db QueryI, dialect Dialect) *RewardR {
	return &RewardR{base: base{db: db, dialect: dialect}}
}

// GrantFor returns the user's grant of the item's reward in the tier.
func (r *RewardR) GrantFor(ctx context.Context, userID, itemID int64, tier models.Tier) (models.RewardGrant, bool, error) {
	query := `SELECT g.id, g.reward_id, g.user_id, g.acquired_at
		FROM reward_grants g
		JOIN rewards r ON r.id = g.reward_id
		WHERE r.vocabulary_item_id = ? AND r.tier = ? AND g.user_id = ?`

	var grant models.RewardGrant
	err := r.q(ctx).GetContext(ctx, &grant, r.rebind(query), itemID, tier, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.RewardGrant{}, false, nil
		}
		return models.RewardGrant{}, false, fmt.Errorf("failed to look up grant for item %d: %w", itemID, err)
	}

	return grant, true, nil
}

// AcquireReward creates the item's reward or takes one more reference on the
// existing row, in a single statement so concurrent grants cannot create it twice.
func (r *RewardR) AcquireReward(ctx context.Context, reward models.Reward) (int64, error) {
	query := `INSERT INTO rewards (vocabulary_item_id, tier, title, description, image_ref, grant_count)
		VALUES (?, ?, ?, ?, ?, 1)
		ON CONFLICT (vocabulary_item_id, tier)
		DO UPDATE SET grant_count = rewards.grant_count + 1
		RETURNING id`

	var id int64
	err := r.q(ctx).GetContext(ctx, &id, r.rebind(query),
		reward.VocabularyItemID, reward.Tier, reward.Title, reward.Description, reward.ImageRef)
	if err != nil {
		return 0, fmt.Errorf("failed to acquire %s reward for item %d: %w", reward.Tier, reward.VocabularyItemID, err)
	}

	return id, nil
}

// ReleaseReward drops one reference and deletes the reward when none remain.
// It reports whether the reward row was deleted.
func (r *RewardR) ReleaseReward(ctx context.Context, rewardID int64) (bool, error) {
	dec := `UPDATE rewards SET grant_count = grant_count - 1 WHERE id = ?`
	if _, err := r.q(ctx).ExecContext(ctx, r.rebind(dec), rewardID); err != nil {
		return false, fmt.Errorf("failed to release reward %d: %w", rewardID, err)
	}

	del := `DELETE FROM rewards WHERE id = ? AND grant_count <= 0`
	res, err := r.q(ctx).ExecContext(ctx, r.rebind(del), rewardID)
	if err != nil {
		return false, fmt.Errorf("failed to delete reward %d: %w", rewardID, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return n > 0, nil
}

func (r *RewardR) AddGrant(ctx context.Context, grant models.RewardGrant) (int64, error) {
	query := `INSERT INTO reward_grants (reward_id, user_id, acquired_at) VALUES (?, ?, ?) RETURNING id`

	var id int64
	if err := r.q(ctx).GetContext(ctx, &id, r.rebind(query), grant.RewardID, grant.UserID, grant.AcquiredAt); err != nil {
		return 0, fmt.Errorf("failed to grant reward %d to user %d: %w", grant.RewardID, grant.UserID, err)
	}

	return id, nil
}

func (r *RewardR) DeleteGrant(ctx context.Context, grantID int64) error {
	query := `DELETE FROM reward_grants WHERE id = ?`

	if _, err := r.q(ctx).ExecContext(ctx, r.rebind(query), grantID); err != nil {
		return fmt.Errorf("failed to delete grant %d: %w", grantID, err)
	}

	return nil
}

func (r *RewardR) RewardByItem(ctx context.Context, itemID int64, tier models.Tier) (models.Reward, bool, error) {
	query := `SELECT id, vocabulary_item_id, tier, title, description, image_ref, grant_count
		FROM rewards WHERE vocabulary_item_id = ? AND tier = ?`

	var reward models.Reward
	err := r.q(ctx).GetContext(ctx, &reward, r.rebind(query), itemID, tier)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Reward{}, false, nil
		}
		return models.Reward{}, false, fmt.Errorf("failed to load reward for item %d: %w", itemID, err)
	}

	return reward, true, nil
}

func (r *RewardR) RewardCards(ctx context.Context, userID int64, tier models.Tier) ([]models.RewardCard, error) {
	query := `SELECT r.id AS reward_id, r.tier, r.title, r.description, r.image_ref,
			v.headword, v.translation, v.accuracy, g.acquired_at
		FROM reward_grants g
		JOIN rewards r ON r.id = g.reward_id
		JOIN vocabulary_items v ON v.id = r.vocabulary_item_id
		WHERE g.user_id = ? AND r.tier = ?
		ORDER BY g.acquired_at DESC, r.id DESC`

	cards := make([]models.RewardCard, 0)
	if err := r.q(ctx).SelectContext(ctx, &cards, r.rebind(query), userID, tier); err != nil {
		return nil, fmt.Errorf("failed to list reward cards for user %d: %w", userID, err)
	}

	return cards, nil
}
