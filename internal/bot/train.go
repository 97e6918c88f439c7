package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// TrainT drives the add and quiz flows. Sessions are keyed by the sender,
// replies go to the chat the message came from.
type TrainT struct {
	bot     BotSender
	service ConversationSI
	log     *zap.Logger
}

func NewTrainTAPI(bot BotSender, service ConversationSI, log *zap.Logger) *TrainT {
	return &TrainT{
		bot:     bot,
		service: service,
		log:     log,
	}
}

func (t *TrainT) sendHelp(message *tgbotapi.Message) {
	sendText(t.bot, t.log, message.Chat.ID, t.service.Help())
}

func (t *TrainT) startAdd(ctx context.Context, message *tgbotapi.Message, args string) {
	text, started := t.service.Add(ctx, message.From.ID, args)
	if !started {
		sendText(t.bot, t.log, message.Chat.ID, text)
		return
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ übernehmen", callbackConfirmAdd),
		),
	)
	sendTextWithMarkup(t.bot, t.log, message.Chat.ID, text, &keyboard)
}

func (t *TrainT) confirmAdd(ctx context.Context, query *tgbotapi.CallbackQuery) {
	replies, err := t.service.Confirm(ctx, query.From.ID)
	t.sendReplies(query.Message.Chat.ID, replies, err)
}

func (t *TrainT) startTraining(ctx context.Context, message *tgbotapi.Message, args string) {
	replies, err := t.service.Train(ctx, message.From.ID, args)
	t.sendReplies(message.Chat.ID, replies, err)
}

func (t *TrainT) cancelTraining(message *tgbotapi.Message) {
	sendText(t.bot, t.log, message.Chat.ID, t.service.Cancel(message.From.ID))
}

func (t *TrainT) handleText(ctx context.Context, message *tgbotapi.Message) {
	replies, err := t.service.HandleText(ctx, message.From.ID, message.Text)
	t.sendReplies(message.Chat.ID, replies, err)
}

func (t *TrainT) sendReplies(chatID int64, replies []string, err error) {
	if err != nil {
		t.log.Error("failed to handle message", zap.Int64("chat_id", chatID), zap.Error(err))
		replies = []string{msgFailure}
	}

	for _, reply := range replies {
		sendText(t.bot, t.log, chatID, reply)
	}
}
