package model

type Track struct {
	TrackID            string  `gorm:"column:track_id;primaryKey"`
	ArtistID           string  `gorm:"column:artist_id;not null;index"`
	Title              string  `gorm:"column:title;type:text;not null"`
	Genre              string  `gorm:"column:genre;type:text;not null"`
	Caption            *string `gorm:"column:caption;type:text"`
	AudioFileID        string  `gorm:"column:audio_file_id;type:text"`
	ChannelMessageID   int64   `gorm:"column:channel_message_id;not null"`
	DiscussionAnchorID int64   `gorm:"column:discussion_anchor_message_id;not null;default:0"`
	Status             string  `gorm:"column:status;type:text;not null;default:'ACTIVE';index"`
	CreatedAt          int64   `gorm:"column:created_at;not null"`
}

func (Track) TableName() string {
	return "tracks"
}
