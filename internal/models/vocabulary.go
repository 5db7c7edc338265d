package models

import (
	"strings"
	"time"
)

const (
	// WeakAccuracy and WeakAttempts bound the "weak" predicate used by the quiz:
	// an item is weak while accuracy < WeakAccuracy or total attempts < WeakAttempts.
	WeakAccuracy = 95.0
	WeakAttempts = 100

	// MasteryThreshold gates bronze reward grant and revoke.
	MasteryThreshold = 90.0
)

type Category string

const (
	CategoryNoun         Category = "noun"
	CategoryVerb         Category = "verb"
	CategoryAdjective    Category = "adjective"
	CategoryAdverb       Category = "adverb"
	CategoryOther        Category = "other"
	CategoryUnclassified Category = "unclassified"
)

var categoryAliases = map[string]Category{
	"noun":         CategoryNoun,
	"nouns":        CategoryNoun,
	"nomen":        CategoryNoun,
	"substantiv":   CategoryNoun,
	"verb":         CategoryVerb,
	"verbs":        CategoryVerb,
	"verbum":       CategoryVerb,
	"adjective":    CategoryAdjective,
	"adjektiv":     CategoryAdjective,
	"adverb":       CategoryAdverb,
	"other":        CategoryOther,
	"unclassified": CategoryUnclassified,
	"unbekannt":    CategoryUnclassified,
	"unknown":      CategoryUnclassified,
	"":             CategoryUnclassified,
}

// ParseCategory maps lookup and request spellings onto the canonical categories.
// Anything recognisable as a word class but not listed becomes CategoryOther.
func ParseCategory(s string) Category {
	key := strings.ToLower(strings.TrimSpace(s))
	if c, ok := categoryAliases[key]; ok {
		return c
	}
	return CategoryOther
}

func (c Category) Valid() bool {
	switch c {
	case CategoryNoun, CategoryVerb, CategoryAdjective, CategoryAdverb, CategoryOther, CategoryUnclassified:
		return true
	}
	return false
}

// Inflected reports whether items of this category carry an inflection class.
func (c Category) Inflected() bool {
	return c == CategoryNoun || c == CategoryVerb
}

type VocabularyItem struct {
	ID              int64     `db:"id"`
	UserID          int64     `db:"user_id"`
	Headword        string    `db:"headword"`
	Translation     string    `db:"translation"`
	Category        Category  `db:"category"`
	Inflection      *string   `db:"inflection"`
	TotalAttempts   int       `db:"total_attempts"`
	CorrectAttempts int       `db:"correct_attempts"`
	Accuracy        float64   `db:"accuracy"`
	HasReward       bool      `db:"has_reward"`
	CreatedAt       time.Time `db:"created_at"`
}

// RecordAnswer applies one answer to the mastery counters.
func (v *VocabularyItem) RecordAnswer(correct bool) {
	v.TotalAttempts++
	if correct {
		v.CorrectAttempts++
	}
	v.Accuracy = ComputeAccuracy(v.CorrectAttempts, v.TotalAttempts)
}

func (v VocabularyItem) IsWeak() bool {
	return v.Accuracy < WeakAccuracy || v.TotalAttempts < WeakAttempts
}

func ComputeAccuracy(correct, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(correct) * 100 / float64(total)
}

type NewVocabulary struct {
	UserID      int64    `validate:"required"`
	Headword    string   `validate:"required,max=120"`
	Translation string   `validate:"required,max=255"`
	Category    Category `validate:"omitempty,oneof=noun verb adjective adverb other unclassified"`
	Inflection  string   `validate:"max=50"`
}

type VocabularyPatch struct {
	Headword    *string
	Translation *string
	Category    *Category
	Inflection  *string
}

type VocabularyFilter struct {
	Category Category
	Search   string
}
