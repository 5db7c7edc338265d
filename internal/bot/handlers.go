package bot

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	ButtonQuiz     = "🧠 Quiz"
	ButtonCards    = "🏅 Meine Karten"
	ButtonMyWords  = "📚 Meine Vokabeln"
	ButtonMainMenu = "🏠 Hauptmenü"
	ButtonHelp     = "ℹ️ Hilfe"
)

func (t *TelegramAPI) handleCommand(message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		t.handleStartCommand(message)
	case "help":
		t.handleHelpCommand(message)
	case "add":
		t.word.addWord(message, message.CommandArguments())
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "Unbekannter Befehl. Nutze /start")
		sendMessage(t.bot, t.log, msg)
	}
}

func (t *TelegramAPI) handleStartCommand(message *tgbotapi.Message) {
	welcomeText := "🏛 Salve! Ich helfe dir beim Lateinlernen.\n\n" +
		"✨ Was ich kann:\n" +
		"• 🧠 Quiz mit deinen schwachen Vokabeln\n" +
		"• 🏅 Bronzekarten für gemeisterte Wörter\n" +
		"• 📚 Deine Vokabelliste zeigen\n\n" +
		"Neue Vokabel: /add amare - lieben"

	msg := tgbotapi.NewMessage(message.Chat.ID, welcomeText)
	msg.ReplyMarkup = t.generateMenuKeyboard()

	sendMessage(t.bot, t.log, msg)
}

func (t *TelegramAPI) showMainMenu(message *tgbotapi.Message) {
	msg := tgbotapi.NewMessage(message.Chat.ID, "🏠 Hauptmenü:")
	msg.ReplyMarkup = t.generateMenuKeyboard()

	sendMessage(t.bot, t.log, msg)
}

func (t *TelegramAPI) generateMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonQuiz),
			tgbotapi.NewKeyboardButton(ButtonCards),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonMyWords),
			tgbotapi.NewKeyboardButton(ButtonHelp),
		),
	)

	keyboard.ResizeKeyboard = true
	keyboard.OneTimeKeyboard = false

	return keyboard
}

func (t *TelegramAPI) handleHelpCommand(message *tgbotapi.Message) {
	helpText := `
📚 Befehle:
/start — Bot starten
/add <latein> - <deutsch> — Vokabel hinzufügen
/help — diese Nachricht

🎯 Knöpfe:
• "Quiz" — vier Antworten, eine ist richtig
• "Meine Karten" — deine Bronzekarten (ab 90% Trefferquote)
• "Meine Vokabeln" — alle Vokabeln mit Trefferquote
`

	msg := tgbotapi.NewMessage(message.Chat.ID, helpText)
	sendMessage(t.bot, t.log, msg)
}

func (t *TelegramAPI) handleMessage(message *tgbotapi.Message) {
	if message.From == nil {
		t.log.Warn("message without sender", zap.Int64("chat_id", message.Chat.ID))
		return
	}
	userID := message.From.ID

	switch message.Text {
	case ButtonQuiz:
		t.quiz.sendNewQuiz(message, userID)
	case ButtonCards:
		t.word.showCards(message, userID)
	case ButtonMyWords:
		t.word.showWords(message, userID, 0)
	case ButtonMainMenu:
		t.showMainMenu(message)
	case ButtonHelp:
		t.handleHelpCommand(message)
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "Das habe ich nicht verstanden. Nutze die Knöpfe unten.")
		sendMessage(t.bot, t.log, msg)
	}
}

func (t *TelegramAPI) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	callback := tgbotapi.NewCallback(query.ID, "")
	callback.ShowAlert = false
	if _, err := t.bot.Request(callback); err != nil {
		t.log.Warn("failed to answer callback", zap.Error(err))
	}

	data := query.Data

	switch {
	case strings.HasPrefix(data, "w_"):
		t.word.wordHandlePagination(query)

	case strings.HasPrefix(data, "quiz_") || data == "new_quiz":
		t.quiz.handleQuizCallbackQuery(query)

	case data == "main_menu":
		if query.Message != nil {
			t.showMainMenu(query.Message)
		}

	default:
		t.log.Warn("unknown callback data", zap.String("data", data), zap.Int64("user_id", query.From.ID))
	}
}
