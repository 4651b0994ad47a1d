package models

import (
	"time"
)

// Health information categories. Closed set, matches the category column.
const (
	HealthCategoryFacts      = 1
	HealthCategoryPrevention = 2
	HealthCategoryTreatment  = 3
)

type HealthInformation struct {
	ID        uint      `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	Title     string    `gorm:"size:255" json:"title" example:"Know your numbers"`
	Detail    string    `gorm:"type:text" json:"detail"`
	Index     int       `gorm:"column:index" json:"index" example:"1"`
	Category  int       `gorm:"index;check:category IN (1,2,3)" json:"category" example:"1"`
}

func (HealthInformation) TableName() string {
	return "health_information"
}
