package model

import "time"

// CustomerModel represents the customers table. A customer owns zero or
// more jobs.
type CustomerModel struct {
	ID          int    `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:255;not null" json:"name"`
	Phone       string `gorm:"size:50" json:"phone"`
	Email       string `gorm:"size:255;uniqueIndex" json:"email"`
	Address     string `gorm:"size:255" json:"address"`
	ContactName string `gorm:"size:255" json:"contactName"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (CustomerModel) TableName() string {
	return "customers"
}
