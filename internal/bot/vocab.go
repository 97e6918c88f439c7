package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type VocabT struct {
	bot     BotSender
	service VocabSI
	log     *zap.Logger
}

func NewVocabTAPI(bot BotSender, service VocabSI, log *zap.Logger) *VocabT {
	return &VocabT{
		bot:     bot,
		service: service,
		log:     log,
	}
}

func (t *VocabT) showList(ctx context.Context, message *tgbotapi.Message) {
	text, err := t.service.List(ctx)
	if err != nil {
		t.log.Error("failed to list vocab", zap.Int64("chat_id", message.Chat.ID), zap.Error(err))
		text = msgFailure
	}

	sendText(t.bot, t.log, message.Chat.ID, text)
}

func (t *VocabT) showSearch(ctx context.Context, message *tgbotapi.Message, args string) {
	text, err := t.service.Search(ctx, args)
	if err != nil {
		t.log.Error("failed to search vocab", zap.Int64("chat_id", message.Chat.ID), zap.Error(err))
		text = msgFailure
	}

	sendText(t.bot, t.log, message.Chat.ID, text)
}

func (t *VocabT) showStats(ctx context.Context, message *tgbotapi.Message) {
	text, err := t.service.Stats(ctx, message.From.ID)
	if err != nil {
		t.log.Error("failed to get stats", zap.Int64("chat_id", message.Chat.ID), zap.Error(err))
		text = msgFailure
	}

	sendText(t.bot, t.log, message.Chat.ID, text)
}
