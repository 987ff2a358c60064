package model

type UserSettings struct {
	UserID           int64  `gorm:"column:user_id;primaryKey"`
	Lang             string `gorm:"column:lang;type:text;not null;default:'uz'"`
	AnonymousDefault int    `gorm:"column:anonymous_default;not null;default:0"`
}

func (UserSettings) TableName() string {
	return "user_settings"
}
