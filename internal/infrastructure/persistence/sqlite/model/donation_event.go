package model

type DonationEvent struct {
	DonationID    string  `gorm:"column:donation_id;primaryKey"`
	TrackID       string  `gorm:"column:track_id;not null;index:idx_donations_donor_track"`
	ArtistID      string  `gorm:"column:artist_id;not null;index"`
	DonorUserID   int64   `gorm:"column:donor_user_id;not null;index:idx_donations_donor_track"`
	DonorName     string  `gorm:"column:donor_name;type:text;not null"`
	DonorUsername *string `gorm:"column:donor_username;type:text"`
	Amount        int64   `gorm:"column:amount;not null"`
	Note          *string `gorm:"column:note;type:text"`
	IsAnonymous   int     `gorm:"column:is_anonymous;not null;default:0"`
	Status        string  `gorm:"column:status;type:text;not null;index"`
	CreatedAt     int64   `gorm:"column:created_at;not null"`
	ConfirmedAt   *int64  `gorm:"column:confirmed_at"`
}

func (DonationEvent) TableName() string {
	return "donation_events"
}
