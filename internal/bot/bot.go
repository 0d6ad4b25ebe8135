// Package bot answers hashtag generation requests over Telegram long polling.
package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/tagmix/tagmix/internal/export"
	"github.com/tagmix/tagmix/internal/hashtag"
)

// API is the subset of the Telegram client the bot uses.
type API interface {
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	StopReceivingUpdates()
}

// Bot wires the hashtag pipeline to a Telegram account.
type Bot struct {
	api       API
	blockSize int
	log       *slog.Logger
}

// New authorizes with the Telegram Bot API and returns a ready-to-run bot.
func New(token string, blockSize int, log *slog.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to authorize bot: %w", err)
	}

	log.Info("authorized on telegram", "account", api.Self.UserName)

	return &Bot{api: api, blockSize: blockSize, log: log}, nil
}

// Run polls for updates and handles each message to completion, one at a
// time. It blocks until ctx is cancelled or the updates channel closes.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	b.log.Info("starting hashtag generator bot", "block_size", b.blockSize)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.log.Info("shutting down")
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(update)
		}
	}
}

func (b *Bot) handleUpdate(update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || msg.Text == "" {
		return
	}

	if msg.IsCommand() {
		switch msg.Command() {
		case "start":
			b.replyMarkdown(msg.Chat.ID, welcomeMessage(b.blockSize))
			return
		case "help":
			b.replyMarkdown(msg.Chat.ID, helpMessage(b.blockSize))
			return
		}
		// Unknown commands run through the generator like any other text.
	}

	b.handleInput(msg)
}

// handleInput runs one generation request: summary message, one message per
// block, then the downloadable file.
func (b *Bot) handleInput(msg *tgbotapi.Message) {
	res, err := hashtag.Process(msg.Text, b.blockSize)
	switch {
	case errors.Is(err, hashtag.ErrMissingRoots):
		b.replyMarkdown(msg.Chat.ID, msgMissingRoots)
		return
	case errors.Is(err, hashtag.ErrMissingSuffixes):
		b.replyMarkdown(msg.Chat.ID, msgMissingSuffixes)
		return
	case errors.Is(err, hashtag.ErrEmptyResult):
		b.reply(msg.Chat.ID, msgEmptyResult)
		return
	case err != nil:
		b.log.Error("generation failed", "error", err, "user_id", userID(msg))
		b.reply(msg.Chat.ID, msgEmptyResult)
		return
	}

	b.replyMarkdown(msg.Chat.ID, summaryMessage(res, b.blockSize))

	for i, block := range res.Blocks {
		b.replyMarkdown(msg.Chat.ID, blockMessage(i+1, len(res.Blocks), block))
	}

	b.sendDocument(msg.Chat.ID, export.Filename, export.Document(res), msgDocumentCaption)

	b.log.Info("generated hashtags",
		"count", len(res.Hashtags),
		"blocks", len(res.Blocks),
		"user_id", userID(msg))
}

func (b *Bot) reply(chatID int64, text string) {
	m := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(m); err != nil {
		b.log.Error("failed to send message", "error", err, "chat_id", chatID)
	}
}

func (b *Bot) replyMarkdown(chatID int64, text string) {
	m := tgbotapi.NewMessage(chatID, text)
	m.ParseMode = tgbotapi.ModeMarkdown
	if _, err := b.api.Send(m); err != nil {
		b.log.Error("failed to send message", "error", err, "chat_id", chatID)
	}
}

func (b *Bot) sendDocument(chatID int64, name string, data []byte, caption string) {
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: name, Bytes: data})
	doc.Caption = caption
	if _, err := b.api.Send(doc); err != nil {
		b.log.Error("failed to send document", "error", err, "chat_id", chatID)
	}
}

func userID(msg *tgbotapi.Message) int64 {
	if msg.From != nil {
		return msg.From.ID
	}
	return 0
}
