package model

type Submission struct {
	SubmissionID    string  `gorm:"column:submission_id;primaryKey"`
	ArtistID        string  `gorm:"column:artist_id;not null;index"`
	SubmitterUserID int64   `gorm:"column:submitter_user_id;not null"`
	Title           string  `gorm:"column:title;type:text;not null"`
	Genre           string  `gorm:"column:genre;type:text;not null"`
	Caption         *string `gorm:"column:caption;type:text"`
	AudioFileID     string  `gorm:"column:audio_file_id;type:text;not null"`
	Status          string  `gorm:"column:status;type:text;not null;default:'PENDING';index"`
	ReviewMessageID *int64  `gorm:"column:review_message_id"`
	CreatedAt       int64   `gorm:"column:created_at;not null"`
	ReviewedAt      *int64  `gorm:"column:reviewed_at"`
}

func (Submission) TableName() string {
	return "submissions"
}
