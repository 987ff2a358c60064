package ports

import (
	"context"

	"sadomusic/internal/domain/music"
)

// Button is one inline-keyboard button. Exactly one of Data (callback
// action token) or URL is set.
type Button struct {
	Text string
	Data string
	URL  string
}

// Keyboard is rows of buttons, transport-neutral.
type Keyboard [][]Button

// OutgoingMessage is a "send text to chat" request.
type OutgoingMessage struct {
	To                 music.ChatRef
	Text               string
	Keyboard           Keyboard
	ReplyToMessageID   int64
	DisableLinkPreview bool
}

// OutgoingAudio is a "post audio with caption" request.
type OutgoingAudio struct {
	To       music.ChatRef
	FileID   string
	Caption  string
	Keyboard Keyboard
}

// Gateway is the outbound half of the messaging platform. Implementations
// return the platform-assigned message id of whatever they sent.
type Gateway interface {
	SendMessage(ctx context.Context, msg OutgoingMessage) (messageID int64, err error)
	SendAudio(ctx context.Context, audio OutgoingAudio) (messageID int64, err error)
	EditMessageText(ctx context.Context, chatID int64, messageID int64, text string, kb Keyboard) error
	EditMessageCaption(ctx context.Context, chatID int64, messageID int64, caption string, kb Keyboard) error
	// AnswerCallback acknowledges a button press; alert pops a modal.
	AnswerCallback(ctx context.Context, callbackID string, text string, alert bool) error
}

// Update is one inbound user event, already flattened: either a message
// (Text and/or AudioFileID set) or a button press (CallbackID set).
type Update struct {
	UserID      int64
	ChatID      int64
	Username    string
	DisplayName string

	MessageID   int64
	Text        string
	AudioFileID string

	CallbackID        string
	CallbackData      string
	CallbackMessageID int64
	CallbackChatID    int64
}

// IsCallback reports whether the update is a button press.
func (u Update) IsCallback() bool { return u.CallbackID != "" }

// UpdateSource streams inbound updates until ctx is canceled.
type UpdateSource interface {
	Updates(ctx context.Context) (<-chan Update, error)
}
