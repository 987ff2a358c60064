// Package telegram adapts the Bot API to the transport-neutral ports.
package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"sadomusic/internal/domain/music"
	"sadomusic/internal/errs"
	"sadomusic/internal/ports"
)

// Gateway implements ports.Gateway on top of tgbotapi.
type Gateway struct {
	bot *tgbotapi.BotAPI
}

func NewGateway(bot *tgbotapi.BotAPI) *Gateway {
	return &Gateway{bot: bot}
}

func toMarkup(kb ports.Keyboard) *tgbotapi.InlineKeyboardMarkup {
	if len(kb) == 0 {
		return nil
	}
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(kb))
	for _, row := range kb {
		btns := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, b := range row {
			if b.URL != "" {
				btns = append(btns, tgbotapi.NewInlineKeyboardButtonURL(b.Text, b.URL))
				continue
			}
			btns = append(btns, tgbotapi.NewInlineKeyboardButtonData(b.Text, b.Data))
		}
		rows = append(rows, btns)
	}
	markup := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &markup
}

func setDestination(base *tgbotapi.BaseChat, to music.ChatRef) {
	if to.Username != "" {
		base.ChannelUsername = to.Username
		return
	}
	base.ChatID = to.ID
}

func (g *Gateway) SendMessage(_ context.Context, msg ports.OutgoingMessage) (int64, error) {
	m := tgbotapi.NewMessage(0, msg.Text)
	setDestination(&m.BaseChat, msg.To)
	m.ParseMode = tgbotapi.ModeHTML
	m.DisableWebPagePreview = msg.DisableLinkPreview
	if msg.ReplyToMessageID != 0 {
		m.ReplyToMessageID = int(msg.ReplyToMessageID)
	}
	if markup := toMarkup(msg.Keyboard); markup != nil {
		m.ReplyMarkup = *markup
	}

	sent, err := g.bot.Send(m)
	if err != nil {
		return 0, errs.Wrap(err, "telegram: send message")
	}
	return int64(sent.MessageID), nil
}

func (g *Gateway) SendAudio(_ context.Context, audio ports.OutgoingAudio) (int64, error) {
	a := tgbotapi.NewAudio(0, tgbotapi.FileID(audio.FileID))
	setDestination(&a.BaseChat, audio.To)
	a.Caption = audio.Caption
	a.ParseMode = tgbotapi.ModeHTML
	if markup := toMarkup(audio.Keyboard); markup != nil {
		a.ReplyMarkup = *markup
	}

	sent, err := g.bot.Send(a)
	if err != nil {
		return 0, errs.Wrap(err, "telegram: send audio")
	}
	return int64(sent.MessageID), nil
}

func (g *Gateway) EditMessageText(_ context.Context, chatID, messageID int64, text string, kb ports.Keyboard) error {
	edit := tgbotapi.NewEditMessageText(chatID, int(messageID), text)
	edit.ParseMode = tgbotapi.ModeHTML
	edit.ReplyMarkup = toMarkup(kb)

	if _, err := g.bot.Request(edit); err != nil {
		return errs.Wrap(err, "telegram: edit message text")
	}
	return nil
}

func (g *Gateway) EditMessageCaption(_ context.Context, chatID, messageID int64, caption string, kb ports.Keyboard) error {
	edit := tgbotapi.NewEditMessageCaption(chatID, int(messageID), caption)
	edit.ParseMode = tgbotapi.ModeHTML
	edit.ReplyMarkup = toMarkup(kb)

	if _, err := g.bot.Request(edit); err != nil {
		return errs.Wrap(err, "telegram: edit message caption")
	}
	return nil
}

func (g *Gateway) AnswerCallback(_ context.Context, callbackID, text string, alert bool) error {
	cb := tgbotapi.NewCallback(callbackID, text)
	cb.ShowAlert = alert

	if _, err := g.bot.Request(cb); err != nil {
		return errs.Wrap(err, "telegram: answer callback")
	}
	return nil
}
