package handler

import (
	"time"

	"github.com/seb0305/aenigma-verborum/internal/models"
)

type AddVocabularyRequest struct {
	Headword    string `json:"headword" binding:"required"`
	Translation string `json:"translation" binding:"required"`
	Category    string `json:"category"`
	Inflection  string `json:"inflection"`
}

type UpdateVocabularyRequest struct {
	Headword    *string `json:"headword"`
	Translation *string `json:"translation"`
	Category    *string `json:"category"`
	Inflection  *string `json:"inflection"`
}

type VocabularyResponse struct {
	ID              int64     `json:"id"`
	Headword        string    `json:"headword"`
	Translation     string    `json:"translation"`
	Category        string    `json:"category"`
	Inflection      *string   `json:"inflection"`
	TotalAttempts   int       `json:"total_attempts"`
	CorrectAttempts int       `json:"correct_attempts"`
	Accuracy        float64   `json:"accuracy"`
	HasReward       bool      `json:"has_reward"`
	CreatedAt       time.Time `json:"created_at"`
}

func toVocabularyResponse(v models.VocabularyItem) VocabularyResponse {
	return VocabularyResponse{
		ID:              v.ID,
		Headword:        v.Headword,
		Translation:     v.Translation,
		Category:        string(v.Category),
		Inflection:      v.Inflection,
		TotalAttempts:   v.TotalAttempts,
		CorrectAttempts: v.CorrectAttempts,
		Accuracy:        v.Accuracy,
		HasReward:       v.HasReward,
		CreatedAt:       v.CreatedAt,
	}
}

type SessionResponse struct {
	SessionID int64 `json:"session_id"`
}

type FinishRequest struct {
	SessionID int64 `json:"session_id" binding:"required"`
}

type QuestionResponse struct {
	ItemID       int64    `json:"item_id"`
	Headword     string   `json:"headword"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
}

type AnswerRequest struct {
	SessionID int64  `json:"session_id" binding:"required"`
	ItemID    int64  `json:"item_id" binding:"required"`
	Answer    string `json:"answer"`
}

type DrillAnswerRequest struct {
	Headword   string `json:"headword" binding:"required"`
	Inflection string `json:"inflection"`
}

type DrillQuestionResponse struct {
	SessionID int64  `json:"session_id"`
	ItemID    int64  `json:"item_id"`
	Headword  string `json:"headword"`
	Category  string `json:"category"`
}

type AnswerResponse struct {
	Correct      bool    `json:"correct"`
	Accuracy     float64 `json:"accuracy"`
	RewardChange *string `json:"reward_change"`
	RewardID     *int64  `json:"reward_id"`
}

func toAnswerResponse(r models.AnswerResult) AnswerResponse {
	resp := AnswerResponse{
		Correct:  r.Correct,
		Accuracy: r.Accuracy,
		RewardID: r.RewardID,
	}
	if r.RewardChange != models.RewardNone {
		change := string(r.RewardChange)
		resp.RewardChange = &change
	}
	return resp
}

type RewardCardResponse struct {
	RewardID    int64     `json:"reward_id"`
	Tier        string    `json:"tier"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageRef    string    `json:"image_ref"`
	Headword    string    `json:"headword"`
	Translation string    `json:"translation"`
	Accuracy    float64   `json:"accuracy"`
	AcquiredAt  time.Time `json:"acquired_at"`
}
