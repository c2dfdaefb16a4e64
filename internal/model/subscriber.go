package model

import "time"

// Subscriber is a newsletter signup. Only the email is collected by the
// public form; Name is filled in manually by staff for the broadcast greeting.
type Subscriber struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Name      string    `json:"name" gorm:"size:255"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName keeps the table the site frontend and mail campaigns were built
// against.
func (Subscriber) TableName() string {
	return "newsletter"
}
