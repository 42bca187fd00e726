package model

import "time"

type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:text;not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null;size:320"`
	Name      string    `json:"name" gorm:"not null;size:100"`
	Password  *string   `json:"-"`
	IsAdmin   bool      `json:"isAdmin" gorm:"default:false;not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"not null"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"not null"`
}
