package model

import "time"

// User represents a registered member of the site. Users are created at
// registration and never modified afterwards; there is no profile-edit flow.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	FirstName    string    `json:"first_name" gorm:"size:255;not null"`
	LastName     string    `json:"last_name" gorm:"size:255;not null"`
	PhoneNumber  string    `json:"phone_number" gorm:"size:50"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"column:password;size:255;not null"` // Never expose in JSON
	Role         string    `json:"role,omitempty" gorm:"size:50"`              // Stored but not enforced anywhere yet
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
