package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/seb0305/aenigma-verborum/internal/models"
	"github.com/seb0305/aenigma-verborum/internal/storage/cache"
	"go.uber.org/zap"
)

type QuizSI interface {
	StartSession(ctx context.Context, userID int64) (int64, error)
	NextQuestion(ctx context.Context, userID int64, sessionID *int64) (models.Question, error)
	SubmitAnswer(ctx context.Context, userID, sessionID, itemID int64, answer string) (models.AnswerResult, error)
	FinishSession(ctx context.Context, userID, sessionID int64) error
}

type QuizT struct {
	bot     BotSender
	cache   *cache.Cache
	service QuizSI
	log     *zap.Logger
}

func NewQuizTAPI(bot BotSender, cache *cache.Cache, service QuizSI, log *zap.Logger) *QuizT {
	return &QuizT{
		bot:     bot,
		cache:   cache,
		service: service,
		log:     log,
	}
}

// sendNewQuiz asks the next question of the user's round, starting a round when none is open.
func (t *QuizT) sendNewQuiz(message *tgbotapi.Message, userID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if message.From == nil {
		t.log.Warn("message without sender", zap.Int64("chat_id", message.Chat.ID))
		return
	}

	state, exists := t.cache.GetQuiz(userID)
	if !exists {
		sessionID, err := t.service.StartSession(ctx, userID)
		if err != nil {
			t.log.Error("failed to start quiz round", zap.Int64("user_id", userID), zap.Error(err))
			sendMessage(t.bot, t.log, tgbotapi.NewMessage(message.Chat.ID, "❌ Fehler beim Starten des Quiz. Versuch es später."))
			return
		}
		state = cache.QuizState{SessionID: sessionID}
	}

	question, err := t.service.NextQuestion(ctx, userID, &state.SessionID)
	if errors.Is(err, models.ErrNoEligibleItem) {
		t.finishRound(ctx, message.Chat.ID, userID, state.SessionID,
			"🎉 Keine schwachen Vokabeln mehr in dieser Runde. Füge neue mit /add hinzu.")
		return
	}
	if err != nil {
		t.log.Error("failed to get next question", zap.Int64("user_id", userID), zap.Error(err))
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(message.Chat.ID, "❌ Fehler beim Laden der Frage. Versuch es später."))
		return
	}

	state.Question = question
	t.cache.SetQuiz(userID, state)

	var buttons [][]tgbotapi.InlineKeyboardButton
	row := make([]tgbotapi.InlineKeyboardButton, 0, 2)
	for i, option := range question.Options {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(option, fmt.Sprintf("quiz_%d", i)))
		if len(row) == 2 {
			buttons = append(buttons, row)
			row = make([]tgbotapi.InlineKeyboardButton, 0, 2)
		}
	}
	if len(row) > 0 {
		buttons = append(buttons, row)
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(buttons...)

	msg := tgbotapi.NewMessage(message.Chat.ID, "❓ Was bedeutet: "+question.Headword)
	msg.ParseMode = "markdown"
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, t.log, msg)
}

func (t *QuizT) handleQuizCallbackQuery(query *tgbotapi.CallbackQuery) {
	if query.Message == nil {
		t.log.Warn("callback query without message", zap.String("id", query.ID))
		return
	}

	switch data := query.Data; {
	case data == "new_quiz":
		t.sendNewQuiz(query.Message, query.From.ID)
	case data == "quiz_finish":
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		state, exists := t.cache.GetQuiz(query.From.ID)
		if !exists {
			sendMessage(t.bot, t.log, tgbotapi.NewMessage(query.Message.Chat.ID, "Keine laufende Runde."))
			return
		}
		t.finishRound(ctx, query.Message.Chat.ID, query.From.ID, state.SessionID, "🏁 Runde beendet. Bene fecisti!")
	case strings.HasPrefix(data, "quiz_"):
		t.processQuizAnswer(query)
	}
}

func (t *QuizT) finishRound(ctx context.Context, chatID, userID, sessionID int64, text string) {
	t.cache.DeleteQuiz(userID)

	if err := t.service.FinishSession(ctx, userID, sessionID); err != nil {
		t.log.Warn("failed to finish quiz round", zap.Int64("user_id", userID), zap.Int64("session_id", sessionID), zap.Error(err))
	}

	msg := tgbotapi.NewMessage(chatID, text)
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		[]tgbotapi.InlineKeyboardButton{tgbotapi.NewInlineKeyboardButtonData("🧠 Neue Runde", "new_quiz")},
	)
	msg.ReplyMarkup = &keyboard
	sendMessage(t.bot, t.log, msg)
}

func (t *QuizT) processQuizAnswer(query *tgbotapi.CallbackQuery) {
	userID := query.From.ID

	state, exists := t.cache.GetQuiz(userID)
	if !exists || state.Question.ItemID == 0 {
		t.log.Warn("no pending question", zap.Int64("user_id", userID))
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(query.Message.Chat.ID, "❌ Keine offene Frage gefunden."))
		return
	}

	idx, err := strconv.Atoi(strings.TrimPrefix(query.Data, "quiz_"))
	if err != nil || idx < 0 || idx >= len(state.Question.Options) {
		t.log.Warn("invalid quiz answer", zap.String("data", query.Data))
		return
	}

	question := state.Question
	state.Question = models.Question{}
	t.cache.SetQuiz(userID, state)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := t.service.SubmitAnswer(ctx, userID, state.SessionID, question.ItemID, question.Options[idx])
	if err != nil {
		t.log.Error("failed to submit answer", zap.Int64("user_id", userID), zap.Error(err))
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(query.Message.Chat.ID, "❌ Antwort konnte nicht gespeichert werden."))
		return
	}

	editMsg := tgbotapi.NewEditMessageText(
		query.Message.Chat.ID,
		query.Message.MessageID,
		fmt.Sprintf("%s\n\n%s", query.Message.Text, resultText(question, result)),
	)
	editMsg.ParseMode = "markdown"
	editMsg.ReplyMarkup = &tgbotapi.InlineKeyboardMarkup{InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{{
		tgbotapi.NewInlineKeyboardButtonData("➡️ Weiter", "new_quiz"),
		tgbotapi.NewInlineKeyboardButtonData("🏁 Beenden", "quiz_finish"),
	}}}

	sendMessage(t.bot, t.log, editMsg)
}

func resultText(question models.Question, result models.AnswerResult) string {
	var b strings.Builder
	if result.Correct {
		b.WriteString("✅ Richtig!")
	} else {
		fmt.Fprintf(&b, "❌ Falsch. Richtig ist: %s", question.Options[question.CorrectIndex])
	}
	fmt.Fprintf(&b, "\nTrefferquote: %.0f%%", result.Accuracy)

	switch result.RewardChange {
	case models.RewardGranted:
		fmt.Fprintf(&b, "\n🥉 Neue Bronzekarte: %s", question.Headword)
	case models.RewardRevoked:
		fmt.Fprintf(&b, "\n💔 Bronzekarte verloren: %s", question.Headword)
	}
	return b.String()
}
