package model

// Conversation is one user's persisted guided-flow state: the current step
// plus the collected fields as JSON. One row per user.
type Conversation struct {
	UserID    int64  `gorm:"column:user_id;primaryKey"`
	Step      string `gorm:"column:step;type:text;not null"`
	Fields    string `gorm:"column:fields;type:text;not null"`
	UpdatedAt int64  `gorm:"column:updated_at;not null"`
}

func (Conversation) TableName() string {
	return "conversations"
}
