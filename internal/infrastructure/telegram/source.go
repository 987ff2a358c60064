package telegram

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"sadomusic/internal/ports"
)

// Source implements ports.UpdateSource via long polling.
type Source struct {
	bot *tgbotapi.BotAPI
}

func NewSource(bot *tgbotapi.BotAPI) *Source {
	return &Source{bot: bot}
}

func (s *Source) Updates(ctx context.Context) (<-chan ports.Update, error) {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = 30
	cfg.AllowedUpdates = []string{"message", "callback_query"}

	raw := s.bot.GetUpdatesChan(cfg)
	out := make(chan ports.Update)

	go func() {
		defer close(out)
		defer s.bot.StopReceivingUpdates()
		for {
			select {
			case <-ctx.Done():
				return
			case upd, ok := <-raw:
				if !ok {
					return
				}
				flat, ok := flatten(upd)
				if !ok {
					continue
				}
				select {
				case out <- flat:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}

// flatten maps a raw update to the transport-neutral shape. Private chats
// only; group noise is dropped at the edge.
func flatten(upd tgbotapi.Update) (ports.Update, bool) {
	if cb := upd.CallbackQuery; cb != nil {
		out := ports.Update{
			UserID:       cb.From.ID,
			Username:     cb.From.UserName,
			DisplayName:  displayName(cb.From),
			CallbackID:   cb.ID,
			CallbackData: cb.Data,
		}
		if cb.Message != nil {
			out.ChatID = cb.Message.Chat.ID
			out.CallbackChatID = cb.Message.Chat.ID
			out.CallbackMessageID = int64(cb.Message.MessageID)
		}
		return out, true
	}

	msg := upd.Message
	if msg == nil || msg.From == nil {
		return ports.Update{}, false
	}

	out := ports.Update{
		UserID:      msg.From.ID,
		ChatID:      msg.Chat.ID,
		Username:    msg.From.UserName,
		DisplayName: displayName(msg.From),
		MessageID:   int64(msg.MessageID),
		Text:        msg.Text,
	}
	if msg.Audio != nil {
		out.AudioFileID = msg.Audio.FileID
	}
	return out, true
}

func displayName(u *tgbotapi.User) string {
	if u == nil {
		return ""
	}
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		name = u.UserName
	}
	return name
}
