package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/seb0305/aenigma-verborum/internal/models"
	"github.com/seb0305/aenigma-verborum/internal/storage/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteStore(t *testing.T) (Repository, *Transactor) {
	t.Helper()

	conn, err := db.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, db.Migrate(conn))

	return NewRepository(conn, DialectOf(conn.DriverName())), NewTransactor(conn)
}

func addItem(t *testing.T, repo Repository, userID int64, headword, translation string) int64 {
	t.Helper()

	inflection := "a-Konjugation"
	id, err := repo.AddVocabulary(context.Background(), models.VocabularyItem{
		UserID:      userID,
		Headword:    headword,
		Translation: translation,
		Category:    models.CategoryVerb,
		Inflection:  &inflection,
		CreatedAt:   time.Now().UTC(),
	})
	require.NoError(t, err)
	return id
}

func TestStore_VocabularyLifecycle(t *testing.T) {
	t.Parallel()

	repo, _ := newSQLiteStore(t)
	ctx := context.Background()

	id := addItem(t, repo, 1, "amare", "lieben")
	addItem(t, repo, 1, "videre", "sehen")
	addItem(t, repo, 2, "amare", "lieben")

	_, err := repo.AddVocabulary(ctx, models.VocabularyItem{UserID: 1, Headword: "amare", Translation: "x", CreatedAt: time.Now().UTC()})
	require.ErrorIs(t, err, models.ErrDuplicateHeadword)

	items, err := repo.ListVocabulary(ctx, 1, models.VocabularyFilter{Search: "LIEB"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "amare", items[0].Headword)
	require.NotNil(t, items[0].Inflection)
	assert.Equal(t, "a-Konjugation", *items[0].Inflection)

	items, err = repo.ListVocabulary(ctx, 1, models.VocabularyFilter{Category: models.CategoryNoun})
	require.NoError(t, err)
	assert.Empty(t, items)

	item, err := repo.VocabularyByID(ctx, 1, id)
	require.NoError(t, err)
	item.Translation = "gern haben"
	require.NoError(t, repo.UpdateVocabulary(ctx, item))

	item.Headword = "videre"
	require.ErrorIs(t, repo.UpdateVocabulary(ctx, item), models.ErrDuplicateHeadword)

	item, err = repo.VocabularyByHeadword(ctx, 1, "amare")
	require.NoError(t, err)
	assert.Equal(t, "gern haben", item.Translation)

	require.NoError(t, repo.DeleteVocabulary(ctx, 1, id))
	require.ErrorIs(t, repo.DeleteVocabulary(ctx, 1, id), models.ErrItemNotFound)

	_, err = repo.VocabularyByID(ctx, 1, id)
	require.ErrorIs(t, err, models.ErrItemNotFound)
}

func TestStore_RandomWeakItemSkipsAnswered(t *testing.T) {
	t.Parallel()

	repo, _ := newSQLiteStore(t)
	ctx := context.Background()

	first := addItem(t, repo, 1, "amare", "lieben")
	second := addItem(t, repo, 1, "videre", "sehen")
	mastered := addItem(t, repo, 1, "esse", "sein")

	strong, err := repo.VocabularyByID(ctx, 1, mastered)
	require.NoError(t, err)
	strong.TotalAttempts, strong.CorrectAttempts, strong.Accuracy = 100, 100, 100
	require.NoError(t, repo.SaveMastery(ctx, strong))

	sessionID, err := repo.CreateSession(ctx, models.QuizSession{UserID: 1, Mode: models.ModeTranslation, StartedAt: time.Now().UTC()})
	require.NoError(t, err)

	require.NoError(t, repo.AddAnswer(ctx, models.AnsweredQuestion{
		SessionID: sessionID, VocabularyItemID: first, Correct: true, AnsweredAt: time.Now().UTC(),
	}))

	for i := 0; i < 10; i++ {
		item, err := repo.RandomWeakItem(ctx, 1, &sessionID)
		require.NoError(t, err)
		assert.Equal(t, second, item.ID)
	}

	require.NoError(t, repo.AddAnswer(ctx, models.AnsweredQuestion{
		SessionID: sessionID, VocabularyItemID: second, Correct: false, AnsweredAt: time.Now().UTC(),
	}))

	_, err = repo.RandomWeakItem(ctx, 1, &sessionID)
	require.ErrorIs(t, err, models.ErrNoEligibleItem)

	ids, err := repo.AnsweredItemIDs(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, []int64{first, second}, ids)

	item, err := repo.RandomWeakItem(ctx, 1, nil)
	require.NoError(t, err)
	assert.NotEqual(t, mastered, item.ID)
}

func TestStore_DrillItems(t *testing.T) {
	t.Parallel()

	repo, _ := newSQLiteStore(t)
	ctx := context.Background()

	verb := addItem(t, repo, 1, "amare", "lieben")
	_, err := repo.AddVocabulary(ctx, models.VocabularyItem{
		UserID: 1, Headword: "ire", Translation: "gehen", Category: models.CategoryVerb, CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)

	sessionID, err := repo.CreateSession(ctx, models.QuizSession{UserID: 1, Mode: models.ModeVerbDrill, StartedAt: time.Now().UTC()})
	require.NoError(t, err)

	item, err := repo.RandomDrillItem(ctx, 1, models.CategoryVerb, sessionID)
	require.NoError(t, err)
	assert.Equal(t, verb, item.ID)

	_, err = repo.RandomDrillItem(ctx, 1, models.CategoryNoun, sessionID)
	require.ErrorIs(t, err, models.ErrNoEligibleItem)
}

func TestStore_Sessions(t *testing.T) {
	t.Parallel()

	repo, _ := newSQLiteStore(t)
	ctx := context.Background()

	older, err := repo.CreateSession(ctx, models.QuizSession{UserID: 1, Mode: models.ModeNounDrill, StartedAt: time.Now().UTC()})
	require.NoError(t, err)
	newer, err := repo.CreateSession(ctx, models.QuizSession{UserID: 1, Mode: models.ModeNounDrill, StartedAt: time.Now().UTC()})
	require.NoError(t, err)
	_, err = repo.CreateSession(ctx, models.QuizSession{UserID: 1, Mode: models.ModeTranslation, StartedAt: time.Now().UTC()})
	require.NoError(t, err)

	open, err := repo.LatestOpenSession(ctx, 1, models.ModeNounDrill)
	require.NoError(t, err)
	assert.Equal(t, newer, open.ID)
	assert.True(t, open.Open())

	first := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, repo.FinishSession(ctx, 1, newer, first))
	require.NoError(t, repo.FinishSession(ctx, 1, newer, first.Add(time.Hour)))

	finished, err := repo.SessionByID(ctx, 1, newer)
	require.NoError(t, err)
	require.NotNil(t, finished.FinishedAt)
	assert.True(t, finished.FinishedAt.Equal(first))

	open, err = repo.LatestOpenSession(ctx, 1, models.ModeNounDrill)
	require.NoError(t, err)
	assert.Equal(t, older, open.ID)

	require.ErrorIs(t, repo.FinishSession(ctx, 2, older, first), models.ErrSessionNotFound)

	_, err = repo.SessionByID(ctx, 1, 999)
	require.ErrorIs(t, err, models.ErrSessionNotFound)
}

func TestStore_RewardReferenceCounting(t *testing.T) {
	t.Parallel()

	repo, _ := newSQLiteStore(t)
	ctx := context.Background()

	itemID := addItem(t, repo, 1, "amare", "lieben")
	reward := models.Reward{VocabularyItemID: itemID, Tier: models.TierBronze, Title: "amare", Description: "d", ImageRef: "img"}

	firstID, err := repo.AcquireReward(ctx, reward)
	require.NoError(t, err)
	secondID, err := repo.AcquireReward(ctx, reward)
	require.NoError(t, err)
	assert.Equal(t, firstID, secondID)

	grant1, err := repo.AddGrant(ctx, models.RewardGrant{RewardID: firstID, UserID: 1, AcquiredAt: time.Now().UTC()})
	require.NoError(t, err)
	_, err = repo.AddGrant(ctx, models.RewardGrant{RewardID: firstID, UserID: 2, AcquiredAt: time.Now().UTC()})
	require.NoError(t, err)

	stored, ok, err := repo.RewardByItem(ctx, itemID, models.TierBronze)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2, stored.GrantCount)

	grant, ok, err := repo.GrantFor(ctx, 1, itemID, models.TierBronze)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, grant1, grant.ID)

	cards, err := repo.RewardCards(ctx, 1, models.TierBronze)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "amare", cards[0].Headword)
	assert.Equal(t, "lieben", cards[0].Translation)

	require.NoError(t, repo.DeleteGrant(ctx, grant1))
	deleted, err := repo.ReleaseReward(ctx, firstID)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, ok, err = repo.GrantFor(ctx, 1, itemID, models.TierBronze)
	require.NoError(t, err)
	assert.False(t, ok)

	grant2, ok, err := repo.GrantFor(ctx, 2, itemID, models.TierBronze)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, repo.DeleteGrant(ctx, grant2.ID))
	deleted, err = repo.ReleaseReward(ctx, firstID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, ok, err = repo.RewardByItem(ctx, itemID, models.TierBronze)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTransactor_WithinTx(t *testing.T) {
	t.Parallel()

	repo, tx := newSQLiteStore(t)
	ctx := context.Background()

	errBoom := errors.New("boom")
	err := tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := repo.AddVocabulary(ctx, models.VocabularyItem{
			UserID: 1, Headword: "amare", Translation: "lieben", CreatedAt: time.Now().UTC(),
		}); err != nil {
			return err
		}
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	items, err := repo.ListVocabulary(ctx, 1, models.VocabularyFilter{})
	require.NoError(t, err)
	assert.Empty(t, items)

	err = tx.WithinTx(ctx, func(ctx context.Context) error {
		_, err := repo.AddVocabulary(ctx, models.VocabularyItem{
			UserID: 1, Headword: "amare", Translation: "lieben", CreatedAt: time.Now().UTC(),
		})
		return err
	})
	require.NoError(t, err)

	items, err = repo.ListVocabulary(ctx, 1, models.VocabularyFilter{})
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestDialect(t *testing.T) {
	t.Parallel()

	pg := base{dialect: Postgres}
	lite := base{dialect: SQLite}

	assert.Equal(t, "a = $1 AND b = $2", pg.rebind("a = ? AND b = ?"))
	assert.Equal(t, "a = ? AND b = ?", lite.rebind("a = ? AND b = ?"))
	assert.Equal(t, " FOR UPDATE", pg.forUpdate())
	assert.Empty(t, lite.forUpdate())
	assert.Equal(t, SQLite, DialectOf("sqlite"))
	assert.Equal(t, Postgres, DialectOf("postgres"))

	var _ QueryI = (*sqlx.DB)(nil)
	var _ QueryI = (*sqlx.Tx)(nil)
}
