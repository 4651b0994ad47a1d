package models

import (
	"time"
)

// Account status values stored in users.status.
const (
	UserStatusSuspended = 0
	UserStatusActive    = 1
	UserStatusDeleted   = 2
)

type User struct {
	ID          uint       `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt   time.Time  `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt   time.Time  `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	Username    string     `gorm:"uniqueIndex;size:50;not null" json:"username" example:"johndoe"`
	Email       string     `gorm:"uniqueIndex;size:100;not null" json:"email" example:"john@example.com"`
	Password    string     `gorm:"size:255;not null" json:"-"`
	FullName    *string    `gorm:"size:100" json:"full_name"`
	DateOfBirth *string    `gorm:"type:date" json:"date_of_birth" example:"1990-01-01"`
	Gender      *string    `gorm:"size:10" json:"gender" example:"Male"`
	Role        string     `gorm:"size:20;default:user" json:"role" example:"user"`
	Status      int        `gorm:"default:1" json:"-"`
	LastLogin   *time.Time `json:"last_login"`
}

func (User) TableName() string {
	return "users"
}
