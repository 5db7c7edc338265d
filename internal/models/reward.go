package models

import "time"

type Tier string

const TierBronze Tier = "bronze"

// Reward is shared by every user holding a grant for the same item and tier.
// GrantCount tracks the holders; a reward at zero is deleted.
type Reward struct {
	ID               int64  `db:"id"`
	VocabularyItemID int64  `db:"vocabulary_item_id"`
	Tier             Tier   `db:"tier"`
	Title            string `db:"title"`
	Description      string `db:"description"`
	ImageRef         string `db:"image_ref"`
	GrantCount       int    `db:"grant_count"`
}

type RewardGrant struct {
	ID         int64     `db:"id"`
	RewardID   int64     `db:"reward_id"`
	UserID     int64     `db:"user_id"`
	AcquiredAt time.Time `db:"acquired_at"`
}

// RewardCard is a granted reward joined with its item's display data.
type RewardCard struct {
	RewardID    int64     `db:"reward_id"`
	Tier        Tier      `db:"tier"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	ImageRef    string    `db:"image_ref"`
	Headword    string    `db:"headword"`
	Translation string    `db:"translation"`
	Accuracy    float64   `db:"accuracy"`
	AcquiredAt  time.Time `db:"acquired_at"`
}

type RewardEvent struct {
	UserID           int64   `json:"user_id"`
	RewardID         int64   `json:"reward_id"`
	VocabularyItemID int64   `json:"vocabulary_item_id"`
	Headword         string  `json:"headword"`
	Accuracy         float64 `json:"accuracy"`
}
