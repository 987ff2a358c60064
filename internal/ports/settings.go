package ports

import "context"

// DefaultLang is assumed for users who never picked a language.
const DefaultLang = "uz"

type UserSettings struct {
	UserID           int64
	Lang             string
	AnonymousDefault bool
}

// UserSettingsRepository upserts per-user preferences; rows are created
// lazily on first write and never deleted.
type UserSettingsRepository interface {
	GetLang(ctx context.Context, userID int64) (string, error)
	SetLang(ctx context.Context, userID int64, lang string) error
	GetAnonymousDefault(ctx context.Context, userID int64) (bool, error)
	SetAnonymousDefault(ctx context.Context, userID int64, anonymous bool) error
}
