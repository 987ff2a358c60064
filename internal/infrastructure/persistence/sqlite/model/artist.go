package model

type Artist struct {
	ArtistID     string  `gorm:"column:artist_id;primaryKey"`
	TgUserID     int64   `gorm:"column:tg_user_id;not null;uniqueIndex"`
	DisplayName  string  `gorm:"column:display_name;type:text;not null"`
	PaymentLink  *string `gorm:"column:payment_link;type:text"`
	ProfileURL   *string `gorm:"column:profile_url;type:text"`
	DefaultGenre *string `gorm:"column:default_genre;type:text"`
	Bio          *string `gorm:"column:bio;type:text"`
	CreatedAt    int64   `gorm:"column:created_at;not null"`
}

func (Artist) TableName() string {
	return "artists"
}
