package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/seb0305/aenigma-verborum/internal/metrics"
	"github.com/seb0305/aenigma-verborum/internal/models"
	"github.com/seb0305/aenigma-verborum/pkg/validator"
	"go.uber.org/zap"
)

type VocabularyS struct {
	lookup        LookupI
	repo          VocabularyRI
	tx            TransactorI
	rewards       *RewardS
	events        EventPublisherI
	log           *zap.Logger
	now           func() time.Time
	lookupTimeout time.Duration
}

func NewVocabularyService(lookup LookupI, repo VocabularyRI, tx TransactorI, rewards *RewardS, events EventPublisherI,
	log *zap.Logger, lookupTimeout time.Duration) *VocabularyS {
	return &VocabularyS{
		lookup:        lookup,
		repo:          repo,
		tx:            tx,
		rewards:       rewards,
		events:        events,
		log:           log,
		now:           utcNow,
		lookupTimeout: lookupTimeout,
	}
}

// AddVocabulary stores a new headword for the user. Without a category the
// headword is classified by the lookup service first.
func (v *VocabularyS) AddVocabulary(ctx context.Context, in models.NewVocabulary) (models.VocabularyItem, error) {
	in.Headword = strings.TrimSpace(in.Headword)
	in.Translation = strings.TrimSpace(in.Translation)
	in.Inflection = strings.TrimSpace(in.Inflection)

	if err := validator.ValidateStruct(in); err != nil {
		return models.VocabularyItem{}, fmt.Errorf("%w: %w", models.ErrValidation, err)
	}

	_, err := v.repo.VocabularyByHeadword(ctx, in.UserID, in.Headword)
	switch {
	case err == nil:
		return models.VocabularyItem{}, models.ErrDuplicateHeadword
	case !errors.Is(err, models.ErrNotFound):
		return models.VocabularyItem{}, err
	}

	class := models.Classification{Category: in.Category, Inflection: in.Inflection}
	if class.Category == "" {
		class, err = v.classify(ctx, in.Headword)
		if err != nil {
			return models.VocabularyItem{}, err
		}
	}

	item := models.VocabularyItem{
		UserID:      in.UserID,
		Headword:    in.Headword,
		Translation: in.Translation,
		Category:    class.Category,
		Inflection:  inflectionFor(class.Category, class.Inflection),
		CreatedAt:   v.now(),
	}

	item.ID, err = v.repo.AddVocabulary(ctx, item)
	if err != nil {
		return models.VocabularyItem{}, err
	}

	v.log.Info("vocabulary added",
		zap.Int64("user_id", item.UserID),
		zap.String("headword", item.Headword),
		zap.String("category", string(item.Category)))

	return item, nil
}

func (v *VocabularyS) classify(ctx context.Context, headword string) (models.Classification, error) {
	ctx, cancel := context.WithTimeout(ctx, v.lookupTimeout)
	defer cancel()

	class, err := v.lookup.Classify(ctx, headword)
	if err != nil {
		metrics.LookupFailures.WithLabelValues("classify").Inc()
		v.log.Warn("classification failed", zap.String("headword", headword), zap.Error(err))
		return models.Classification{}, fmt.Errorf("%w: %w", models.ErrClassificationFailed, err)
	}
	return class, nil
}

func inflectionFor(category models.Category, inflection string) *string {
	inflection = strings.TrimSpace(inflection)
	if !category.Inflected() || inflection == "" {
		return nil
	}
	return &inflection
}

func (v *VocabularyS) ListVocabulary(ctx context.Context, userID int64, filter models.VocabularyFilter) ([]models.VocabularyItem, error) {
	filter.Search = strings.TrimSpace(filter.Search)
	return v.repo.ListVocabulary(ctx, userID, filter)
}

// UpdateVocabulary applies the non-nil patch fields. Mastery counters are untouched.
func (v *VocabularyS) UpdateVocabulary(ctx context.Context, userID, id int64, patch models.VocabularyPatch) (models.VocabularyItem, error) {
	var item models.VocabularyItem

	err := v.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		item, err = v.repo.VocabularyForUpdate(ctx, userID, id)
		if err != nil {
			return err
		}

		if err := applyPatch(&item, patch); err != nil {
			return err
		}

		return v.repo.UpdateVocabulary(ctx, item)
	})
	if err != nil {
		return models.VocabularyItem{}, err
	}

	return item, nil
}

func applyPatch(item *models.VocabularyItem, patch models.VocabularyPatch) error {
	if patch.Headword != nil {
		h := strings.TrimSpace(*patch.Headword)
		if h == "" {
			return fmt.Errorf("%w: headword must not be empty", models.ErrValidation)
		}
		item.Headword = h
	}
	if patch.Translation != nil {
		t := strings.TrimSpace(*patch.Translation)
		if t == "" {
			return fmt.Errorf("%w: translation must not be empty", models.ErrValidation)
		}
		item.Translation = t
	}
	if patch.Category != nil {
		if !patch.Category.Valid() {
			return fmt.Errorf("%w: unknown category %q", models.ErrValidation, *patch.Category)
		}
		item.Category = *patch.Category
	}

	inflection := ""
	if item.Inflection != nil {
		inflection = *item.Inflection
	}
	if patch.Inflection != nil {
		inflection = *patch.Inflection
	}
	item.Inflection = inflectionFor(item.Category, inflection)

	return nil
}

// DeleteVocabulary removes the item and revokes the user's reward grant for it.
// Answer history referencing the item is kept.
func (v *VocabularyS) DeleteVocabulary(ctx context.Context, userID, id int64) error {
	var (
		item     models.VocabularyItem
		rewardID *int64
	)

	err := v.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		item, err = v.repo.VocabularyForUpdate(ctx, userID, id)
		if err != nil {
			return err
		}

		rewardID, err = v.rewards.revoke(ctx, userID, &item)
		if err != nil {
			return err
		}

		return v.repo.DeleteVocabulary(ctx, userID, id)
	})
	if err != nil {
		return err
	}

	if rewardID != nil {
		metrics.RewardChanges.WithLabelValues(string(models.RewardRevoked)).Inc()
		publishEvent(ctx, v.events, v.log, EventRewardRevoked, models.RewardEvent{
			UserID:           userID,
			RewardID:         *rewardID,
			VocabularyItemID: item.ID,
			Headword:         item.Headword,
			Accuracy:         item.Accuracy,
		})
	}

	v.log.Info("vocabulary deleted", zap.Int64("user_id", userID), zap.Int64("id", id))
	return nil
}
