package bot

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

//go:generate mockgen -source=telegram.go -destination=mock/service_mock.go -exclude_interfaces=BotSender

type ServiceI interface {
	VocabSI
	ConversationSI
}

type VocabSI interface {
	List(ctx context.Context) (string, error)
	Search(ctx context.Context, args string) (string, error)
	Stats(ctx context.Context, userID int64) (string, error)
}

type ConversationSI interface {
	Help() string
	Add(ctx context.Context, userID int64, args string) (string, bool)
	Confirm(ctx context.Context, userID int64) ([]string, error)
	Train(ctx context.Context, userID int64, args string) ([]string, error)
	Cancel(userID int64) string
	HandleText(ctx context.Context, userID int64, text string) ([]string, error)
}

type BotSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type TelegramAPI struct {
	api         *tgbotapi.BotAPI
	bot         BotSender
	pollTimeout time.Duration
	log         *zap.Logger
	vocab       *VocabT
	train       *TrainT
}

func NewTelegramAPI(botToken, env string, pollTimeout time.Duration, service ServiceI, log *zap.Logger) (*TelegramAPI, error) {
	api, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}

	api.Debug = env == "development"

	t := newTelegramAPI(api, service, log)
	t.api = api
	t.pollTimeout = pollTimeout

	log.Info("authorized on telegram", zap.String("bot", api.Self.UserName))

	return t, nil
}

func newTelegramAPI(bot BotSender, service ServiceI, log *zap.Logger) *TelegramAPI {
	return &TelegramAPI{
		bot:   bot,
		log:   log,
		vocab: NewVocabTAPI(bot, service, log),
		train: NewTrainTAPI(bot, service, log),
	}
}

// Start polls for updates and handles them one at a time until ctx is done.
func (t *TelegramAPI) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = int(t.pollTimeout.Seconds())

	updates := t.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			t.api.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			t.handleUpdate(ctx, update)
		}
	}
}

func (t *TelegramAPI) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.Message != nil {
		if update.Message.IsCommand() {
			t.handleCommand(ctx, update.Message)
		} else {
			t.handleMessage(ctx, update.Message)
		}
		return
	}

	if update.CallbackQuery != nil {
		t.handleCallbackQuery(ctx, update.CallbackQuery)
	}
}

func sendMessage(bot BotSender, log *zap.Logger, msg tgbotapi.Chattable) {
	sentMsg, err := bot.Send(msg)
	if err != nil {
		log.Warn("failed to send message", zap.Error(err))
		return
	}
	if sentMsg.Chat != nil {
		log.Debug("sent message", zap.Int64("chat_id", sentMsg.Chat.ID))
	}
}

// sendText sends text to chatID, split into as many messages as Telegram's
// size limit requires.
func sendText(bot BotSender, log *zap.Logger, chatID int64, text string) {
	sendTextWithMarkup(bot, log, chatID, text, nil)
}

// sendTextWithMarkup is sendText with markup attached to the last message.
func sendTextWithMarkup(bot BotSender, log *zap.Logger, chatID int64, text string, markup interface{}) {
	parts := splitText(text, maxMessageLength)
	for i, part := range parts {
		msg := tgbotapi.NewMessage(chatID, part)
		if i == len(parts)-1 && markup != nil {
			msg.ReplyMarkup = markup
		}
		sendMessage(bot, log, msg)
	}
}
