package models

import "time"

type SessionMode string

const (
	ModeTranslation SessionMode = "translation"
	ModeVerbDrill   SessionMode = "verb_drill"
	ModeNounDrill   SessionMode = "noun_drill"
)

// DrillMode returns the classification drill mode for a category.
func DrillMode(c Category) (SessionMode, bool) {
	switch c {
	case CategoryVerb:
		return ModeVerbDrill, true
	case CategoryNoun:
		return ModeNounDrill, true
	}
	return "", false
}

type QuizSession struct {
	ID         int64       `db:"id"`
	UserID     int64       `db:"user_id"`
	Mode       SessionMode `db:"mode"`
	StartedAt  time.Time   `db:"started_at"`
	FinishedAt *time.Time  `db:"finished_at"`
}

func (s QuizSession) Open() bool {
	return s.FinishedAt == nil
}

type AnsweredQuestion struct {
	ID               int64     `db:"id"`
	SessionID        int64     `db:"session_id"`
	VocabularyItemID int64     `db:"vocabulary_item_id"`
	Correct          bool      `db:"correct"`
	AnsweredAt       time.Time `db:"answered_at"`
}

type Question struct {
	ItemID       int64
	Headword     string
	Options      []string
	CorrectIndex int
}

type DrillQuestion struct {
	SessionID int64
	ItemID    int64
	Headword  string
	Category  Category
}

type RewardChange string

const (
	RewardNone    RewardChange = ""
	RewardGranted RewardChange = "granted"
	RewardRevoked RewardChange = "revoked"
)

type AnswerResult struct {
	Correct      bool
	Accuracy     float64
	RewardChange RewardChange
	RewardID     *int64
}
