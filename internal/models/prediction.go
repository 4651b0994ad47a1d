package models

import (
	"time"
)

// PredictionRecord is one saved prediction in a user's history. The input
// columns follow the legacy survey schema consumed by the ML model, with
// categorical answers stored as integer codes.
type PredictionRecord struct {
	ID                   uint      `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt            time.Time `gorm:"index" json:"created_at" example:"2023-01-01T00:00:00Z"`
	UserID               uint      `gorm:"index" json:"user_id" example:"1"`
	User                 User      `gorm:"foreignKey:UserID" json:"-"`
	Age                  int       `json:"age" example:"45"`
	Sex                  int       `gorm:"check:sex IN (0,1)" json:"sex" example:"1"`
	BMI                  float64   `json:"bmi" example:"25.0"`
	Smoking              int       `gorm:"check:smoking IN (0,1)" json:"smoking" example:"0"`
	AlcoholDrinking      int       `gorm:"check:alcohol_drinking IN (0,1)" json:"alcohol_drinking" example:"0"`
	Stroke               int       `gorm:"check:stroke IN (0,1)" json:"stroke" example:"0"`
	PhysicalHealth       float64   `json:"physical_health" example:"0"`
	MentalHealth         float64   `json:"mental_health" example:"0"`
	DiffWalking          int       `gorm:"check:diff_walking IN (0,1)" json:"diff_walking" example:"0"`
	Race                 int       `json:"race" example:"0"`
	Diabetic             int       `json:"diabetic" example:"0"`
	PhysicalActivity     int       `gorm:"check:physical_activity IN (0,1)" json:"physical_activity" example:"1"`
	GenHealth            int       `json:"gen_health" example:"2"`
	SleepTime            float64   `json:"sleep_time" example:"7.0"`
	Asthma               int       `gorm:"check:asthma IN (0,1)" json:"asthma" example:"0"`
	KidneyDisease        int       `gorm:"check:kidney_disease IN (0,1)" json:"kidney_disease" example:"0"`
	SkinCancer           int       `gorm:"check:skin_cancer IN (0,1)" json:"skin_cancer" example:"0"`
	PredictionResult     int       `gorm:"check:prediction_result IN (0,1)" json:"prediction_result" example:"0"`
	PredictionConfidence float64   `gorm:"check:prediction_confidence >= 0 AND prediction_confidence <= 1" json:"prediction_confidence" example:"0.82"`
}

func (PredictionRecord) TableName() string {
	return "user_prediction_history"
}

// LastTestRecord points at the most recently saved prediction per user and
// exists only to prefill the input form. One row per user, upserted on save.
type LastTestRecord struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	UserID              uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	PredictionHistoryID uint      `gorm:"not null" json:"prediction_history_id"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func (LastTestRecord) TableName() string {
	return "user_last_test_record"
}
