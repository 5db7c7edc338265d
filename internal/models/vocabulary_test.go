package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Category
	}{
		{in: "Nomen", want: CategoryNoun},
		{in: " Substantiv ", want: CategoryNoun},
		{in: "Verb", want: CategoryVerb},
		{in: "verbs", want: CategoryVerb},
		{in: "Adjektiv", want: CategoryAdjective},
		{in: "", want: CategoryUnclassified},
		{in: "Präposition", want: CategoryOther},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ParseCategory(tt.in))
		})
	}
}

func TestVocabularyItem_RecordAnswer(t *testing.T) {
	t.Parallel()

	var item VocabularyItem
	answers := []bool{true, false, true, true}
	for i, correct := range answers {
		item.RecordAnswer(correct)

		assert.Equal(t, i+1, item.TotalAttempts)
		assert.LessOrEqual(t, item.CorrectAttempts, item.TotalAttempts)
		assert.InDelta(t, ComputeAccuracy(item.CorrectAttempts, item.TotalAttempts), item.Accuracy, 1e-9)
	}
	assert.Equal(t, 3, item.CorrectAttempts)
	assert.InDelta(t, 75.0, item.Accuracy, 1e-9)
}

func TestComputeAccuracy_zeroAttempts(t *testing.T) {
	t.Parallel()
	assert.Zero(t, ComputeAccuracy(0, 0))
}

func TestVocabularyItem_IsWeak(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		item VocabularyItem
		want bool
	}{
		{name: "new item", item: VocabularyItem{}, want: true},
		{name: "perfect but under-practiced", item: VocabularyItem{Accuracy: 100, TotalAttempts: 99}, want: true},
		{name: "practiced but inaccurate", item: VocabularyItem{Accuracy: 94.9, TotalAttempts: 200}, want: true},
		{name: "mastered", item: VocabularyItem{Accuracy: 95, TotalAttempts: 100}, want: false},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.item.IsWeak())
		})
	}
}

func TestDrillMode(t *testing.T) {
	t.Parallel()

	mode, ok := DrillMode(CategoryVerb)
	assert.True(t, ok)
	assert.Equal(t, ModeVerbDrill, mode)

	_, ok = DrillMode(CategoryAdverb)
	assert.False(t, ok)
}
