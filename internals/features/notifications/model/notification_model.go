package model

import "time"

// NotificationModel is a dashboard banner. Dismissing flips Active off; rows
// are never deleted.
type NotificationModel struct {
	ID     int    `gorm:"primaryKey" json:"id"`
	Text   string `gorm:"type:text;not null" json:"text"`
	Link   string `gorm:"size:255" json:"link"`
	Active bool   `gorm:"not null;default:true" json:"active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
