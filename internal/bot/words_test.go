package bot

import (
	"fmt"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/golang/mock/gomock"
	mock_bot "github.com/seb0305/aenigma-verborum/internal/bot/mock"
	"github.com/seb0305/aenigma-verborum/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newWordTMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_bot.MockServiceI)) (*WordT, *mock_bot.MockBot) {
	mockService := mock_bot.NewMockServiceI(ctrl)
	mockBot := &mock_bot.MockBot{}
	if setupMock != nil {
		setupMock(mockService)
	}
	return NewWordTAPI(mockBot, mockService, zap.NewNop()), mockBot
}

func TestParseAddArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args   string
		want   models.NewVocabulary
		wantOK bool
	}{
		{args: "amare - lieben", want: models.NewVocabulary{Headword: "amare", Translation: "lieben"}, wantOK: true},
		{args: " templum-Tempel (Nomen)", want: models.NewVocabulary{Headword: "templum", Translation: "Tempel", Category: models.CategoryNoun}, wantOK: true},
		{args: "amare", wantOK: false},
		{args: "amare - ", want: models.NewVocabulary{Headword: "amare"}, wantOK: false},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.args, func(t *testing.T) {
			t.Parallel()
			got, ok := parseAddArgs(tt.args)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestWordT_addWord(t *testing.T) {
	t.Parallel()

	message := &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: 123}, From: &tgbotapi.User{ID: 456}}

	tests := []struct {
		name     string
		args     string
		f        func(*mock_bot.MockServiceI)
		wantText string
	}{
		{
			name: "saved",
			args: "amare - lieben",
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().AddVocabulary(gomock.Any(), models.NewVocabulary{UserID: 456, Headword: "amare", Translation: "lieben"}).
					Return(models.VocabularyItem{Headword: "amare", Translation: "lieben", Category: models.CategoryVerb}, nil)
			},
			wantText: "✅ Gespeichert: *amare* — lieben (verb)",
		},
		{
			name: "duplicate",
			args: "amare - lieben",
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().AddVocabulary(gomock.Any(), gomock.Any()).Return(models.VocabularyItem{}, models.ErrDuplicateHeadword)
			},
			wantText: "ℹ️ *amare* ist schon in deiner Liste.",
		},
		{
			name: "classification failed",
			args: "xyz - ?",
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().AddVocabulary(gomock.Any(), gomock.Any()).Return(models.VocabularyItem{}, models.ErrClassificationFailed)
			},
			wantText: "⚠️ Wortart von *xyz* nicht gefunden. Gib sie an: /add xyz - ? (Verb)",
		},
		{
			name:     "bad format",
			args:     "amare",
			wantText: "Format: /add amare - lieben (Verb)",
		},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			wordT, mb := newWordTMock(t, ctrl, tt.f)

			wordT.addWord(message, tt.args)

			require.Len(t, mb.SentMessages, 1)
			assert.Equal(t, tt.wantText, mb.SentMessages[0].(tgbotapi.MessageConfig).Text)
		})
	}
}

func TestWordT_showWords(t *testing.T) {
	t.Parallel()

	items := make([]models.VocabularyItem, 0, 12)
	for i := 0; i < 12; i++ {
		items = append(items, models.VocabularyItem{ID: int64(i + 1), Headword: fmt.Sprintf("verbum%d", i), Translation: "Wort"})
	}
	items[0].HasReward = true

	t.Run("first page has next button", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		wordT, mb := newWordTMock(t, ctrl, func(ms *mock_bot.MockServiceI) {
			ms.EXPECT().ListVocabulary(gomock.Any(), int64(456), models.VocabularyFilter{}).Return(items, nil)
		})

		wordT.showWords(&tgbotapi.Message{Chat: &tgbotapi.Chat{ID: 123}}, 456, 0)

		require.Len(t, mb.SentMessages, 1)
		msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
		assert.Contains(t, msg.Text, "Deine Vokabeln (12)")
		assert.Contains(t, msg.Text, "*verbum0* — Wort (0%, 0×) 🥉")
		assert.NotContains(t, msg.Text, "verbum10")

		keyboard := msg.ReplyMarkup.(*tgbotapi.InlineKeyboardMarkup)
		require.Len(t, keyboard.InlineKeyboard, 2)
		assert.Equal(t, "w_1", *keyboard.InlineKeyboard[0][0].CallbackData)
	})

	t.Run("pagination edits the message", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		wordT, mb := newWordTMock(t, ctrl, func(ms *mock_bot.MockServiceI) {
			ms.EXPECT().ListVocabulary(gomock.Any(), int64(456), models.VocabularyFilter{}).Return(items, nil)
		})

		wordT.wordHandlePagination(&tgbotapi.CallbackQuery{
			From:    &tgbotapi.User{ID: 456},
			Data:    "w_1",
			Message: &tgbotapi.Message{MessageID: 9, Chat: &tgbotapi.Chat{ID: 123}},
		})

		require.Len(t, mb.SentMessages, 1)
		edit := mb.SentMessages[0].(tgbotapi.EditMessageTextConfig)
		assert.Contains(t, edit.Text, "verbum11")
		assert.NotContains(t, edit.Text, "*verbum0*")
	})

	t.Run("empty list", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		wordT, mb := newWordTMock(t, ctrl, func(ms *mock_bot.MockServiceI) {
			ms.EXPECT().ListVocabulary(gomock.Any(), int64(456), models.VocabularyFilter{}).Return(nil, nil)
		})

		wordT.showWords(&tgbotapi.Message{Chat: &tgbotapi.Chat{ID: 123}}, 456, 0)

		require.Len(t, mb.SentMessages, 1)
		assert.Contains(t, mb.SentMessages[0].(tgbotapi.MessageConfig).Text, "Noch keine Vokabeln")
	})
}

func TestWordT_showCards(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	wordT, mb := newWordTMock(t, ctrl, func(ms *mock_bot.MockServiceI) {
		ms.EXPECT().RewardCards(gomock.Any(), int64(456)).Return([]models.RewardCard{
			{RewardID: 8, Headword: "amare", Translation: "lieben", Accuracy: 100},
		}, nil)
	})

	wordT.showCards(&tgbotapi.Message{Chat: &tgbotapi.Chat{ID: 123}}, 456)

	require.Len(t, mb.SentMessages, 1)
	assert.Contains(t, mb.SentMessages[0].(tgbotapi.MessageConfig).Text, "🥉 *amare* — lieben (100%)")
}
