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
	"go.uber.org/zap"
)

const wordsPageSize = 10

type WordSI interface {
	AddVocabulary(ctx context.Context, in models.NewVocabulary) (models.VocabularyItem, error)
	ListVocabulary(ctx context.Context, userID int64, filter models.VocabularyFilter) ([]models.VocabularyItem, error)
	RewardCards(ctx context.Context, userID int64) ([]models.RewardCard, error)
}

type WordT struct {
	bot     BotSender
	service WordSI
	log     *zap.Logger
}

func NewWordTAPI(bot BotSender, service WordSI, log *zap.Logger) *WordT {
	return &WordT{
		bot:     bot,
		service: service,
		log:     log,
	}
}

// parseAddArgs splits "amare - lieben"; an optional trailing "(Verb)" sets the category.
func parseAddArgs(args string) (models.NewVocabulary, bool) {
	headword, rest, ok := strings.Cut(args, "-")
	if !ok {
		return models.NewVocabulary{}, false
	}

	in := models.NewVocabulary{Headword: strings.TrimSpace(headword)}
	translation := strings.TrimSpace(rest)
	if open := strings.LastIndex(translation, "("); open > 0 && strings.HasSuffix(translation, ")") {
		in.Category = models.ParseCategory(translation[open+1 : len(translation)-1])
		translation = strings.TrimSpace(translation[:open])
	}
	in.Translation = translation

	return in, in.Headword != "" && in.Translation != ""
}

func (t *WordT) addWord(message *tgbotapi.Message, args string) {
	if message.From == nil {
		t.log.Warn("message without sender", zap.Int64("chat_id", message.Chat.ID))
		return
	}

	in, ok := parseAddArgs(args)
	if !ok {
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(message.Chat.ID, "Format: /add amare - lieben (Verb)"))
		return
	}
	in.UserID = message.From.ID

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	item, err := t.service.AddVocabulary(ctx, in)
	var text string
	switch {
	case err == nil:
		text = fmt.Sprintf("✅ Gespeichert: *%s* — %s (%s)", item.Headword, item.Translation, item.Category)
	case errors.Is(err, models.ErrDuplicateHeadword):
		text = fmt.Sprintf("ℹ️ *%s* ist schon in deiner Liste.", in.Headword)
	case errors.Is(err, models.ErrClassificationFailed):
		text = fmt.Sprintf("⚠️ Wortart von *%s* nicht gefunden. Gib sie an: /add %s - %s (Verb)", in.Headword, in.Headword, in.Translation)
	default:
		t.log.Error("failed to add vocabulary", zap.Int64("user_id", in.UserID), zap.Error(err))
		text = "❌ Fehler beim Speichern."
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, text)
	msg.ParseMode = "markdown"
	sendMessage(t.bot, t.log, msg)
}

func (t *WordT) wordsPage(ctx context.Context, userID int64, page int) (string, bool, error) {
	items, err := t.service.ListVocabulary(ctx, userID, models.VocabularyFilter{})
	if err != nil {
		return "", false, err
	}
	if len(items) == 0 {
		return "📭 Noch keine Vokabeln. Füge welche mit /add hinzu.", false, nil
	}

	start := page * wordsPageSize
	if start >= len(items) {
		start = (len(items) - 1) / wordsPageSize * wordsPageSize
	}
	end := min(start+wordsPageSize, len(items))

	var b strings.Builder
	fmt.Fprintf(&b, "📚 Deine Vokabeln (%d):\n\n", len(items))
	for _, v := range items[start:end] {
		marker := ""
		if v.HasReward {
			marker = " 🥉"
		}
		fmt.Fprintf(&b, "• *%s* — %s (%.0f%%, %d×)%s\n", v.Headword, v.Translation, v.Accuracy, v.TotalAttempts, marker)
	}

	return b.String(), end < len(items), nil
}

func (t *WordT) showWords(message *tgbotapi.Message, userID int64, page int) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	text, hasNext, err := t.wordsPage(ctx, userID, page)
	if err != nil {
		t.log.Error("failed to load vocabulary", zap.Int64("chat_id", message.Chat.ID), zap.Error(err))
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(message.Chat.ID, "❌ Fehler beim Laden der Vokabeln"))
		return
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, text)
	msg.ParseMode = "markdown"
	msg.ReplyMarkup = t.wordPaginationKeyboard(page, hasNext)
	sendMessage(t.bot, t.log, msg)
}

func (t *WordT) wordHandlePagination(query *tgbotapi.CallbackQuery) {
	if query.Message == nil {
		t.log.Warn("callback query without message", zap.Int64("user_id", query.From.ID))
		return
	}

	page, err := strconv.Atoi(strings.TrimPrefix(query.Data, "w_"))
	if err != nil || page < 0 {
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(query.Message.Chat.ID, "❌ Ungültige Seite."))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	text, hasNext, err := t.wordsPage(ctx, query.From.ID, page)
	if err != nil {
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(query.Message.Chat.ID, "❌ Fehler beim Laden der Vokabeln"))
		return
	}

	editMsg := tgbotapi.NewEditMessageText(query.Message.Chat.ID, query.Message.MessageID, text)
	editMsg.ParseMode = "markdown"
	editMsg.ReplyMarkup = t.wordPaginationKeyboard(page, hasNext)

	sendMessage(t.bot, t.log, editMsg)
}

func (t *WordT) wordPaginationKeyboard(page int, hasNext bool) *tgbotapi.InlineKeyboardMarkup {
	var buttons [][]tgbotapi.InlineKeyboardButton

	row := make([]tgbotapi.InlineKeyboardButton, 0, 2)
	if page > 0 {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("◀️ Zurück", fmt.Sprintf("w_%d", page-1)))
	}
	if hasNext {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("Weiter ▶️", fmt.Sprintf("w_%d", page+1)))
	}
	if len(row) > 0 {
		buttons = append(buttons, row)
	}

	buttons = append(buttons, []tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardButtonData("🧠 Quiz", "new_quiz"),
		tgbotapi.NewInlineKeyboardButtonData("🏠 Hauptmenü", "main_menu"),
	})

	return &tgbotapi.InlineKeyboardMarkup{InlineKeyboard: buttons}
}

func (t *WordT) showCards(message *tgbotapi.Message, userID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cards, err := t.service.RewardCards(ctx, userID)
	if err != nil {
		t.log.Error("failed to load reward cards", zap.Int64("user_id", userID), zap.Error(err))
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(message.Chat.ID, "❌ Fehler beim Laden der Karten"))
		return
	}

	if len(cards) == 0 {
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(message.Chat.ID, "🃏 Noch keine Karten. Erreiche 90% Trefferquote bei einer Vokabel!"))
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🏅 Deine Bronzekarten (%d):\n\n", len(cards))
	for _, c := range cards {
		fmt.Fprintf(&b, "🥉 *%s* — %s (%.0f%%)\n", c.Headword, c.Translation, c.Accuracy)
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, b.String())
	msg.ParseMode = "markdown"
	sendMessage(t.bot, t.log, msg)
}
