package models

import (
	"time"
)

type FAQ struct {
	ID        uint      `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	Title     string    `gorm:"column:faq_title;size:255" json:"faq_title" example:"What is heart disease?"`
	Detail    string    `gorm:"type:text" json:"detail"`
	Index     int       `gorm:"column:faq_index" json:"faq_index" example:"1"`
	Status    int       `gorm:"default:1" json:"-"`
}

func (FAQ) TableName() string {
	return "faq"
}
