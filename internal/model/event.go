package model

import "time"

// Event is an upcoming or past outreach event shown on the public site.
type Event struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"index;not null"`
	Title       string    `json:"title" gorm:"size:255;not null"`
	Venue       string    `json:"venue" gorm:"size:255"`
	Description string    `json:"description" gorm:"type:text"`
	Author      string    `json:"author" gorm:"size:255"`
	Image       string    `json:"image" gorm:"size:512"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
