package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	msgUnknownCommand = "Unbekannter Befehl. Verwende /start für Hilfe."
	msgFailure        = "❌ Da ist etwas schiefgelaufen. Bitte versuche es später erneut."

	callbackConfirmAdd = "add_confirm"
)

func (t *TelegramAPI) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	if message.From == nil {
		t.log.Warn("command without sender", zap.Int64("chat_id", message.Chat.ID))
		return
	}

	args := message.CommandArguments()

	switch message.Command() {
	case "start", "help":
		t.train.sendHelp(message)
	case "add":
		t.train.startAdd(ctx, message, args)
	case "train":
		t.train.startTraining(ctx, message, args)
	case "cancel":
		t.train.cancelTraining(message)
	case "list":
		t.vocab.showList(ctx, message)
	case "search":
		t.vocab.showSearch(ctx, message, args)
	case "stats":
		t.vocab.showStats(ctx, message)
	default:
		sendText(t.bot, t.log, message.Chat.ID, msgUnknownCommand)
	}
}

func (t *TelegramAPI) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	if message.From == nil {
		t.log.Warn("message without sender", zap.Int64("chat_id", message.Chat.ID))
		return
	}
	if message.Text == "" {
		return
	}

	t.train.handleText(ctx, message)
}

func (t *TelegramAPI) handleCallbackQuery(ctx context.Context, query *tgbotapi.CallbackQuery) {
	callback := tgbotapi.NewCallback(query.ID, "")
	if _, err := t.bot.Request(callback); err != nil {
		t.log.Warn("failed to answer callback", zap.Error(err))
	}

	if query.Message == nil || query.From == nil {
		t.log.Warn("callback without message", zap.String("callback_id", query.ID))
		return
	}

	switch query.Data {
	case callbackConfirmAdd:
		t.train.confirmAdd(ctx, query)
	default:
		t.log.Warn("unknown callback data", zap.String("data", query.Data), zap.Int64("user_id", query.From.ID))
	}
}
