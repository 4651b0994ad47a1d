package repository

import (
	"cardioguard/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PredictionRepository interface {
	SaveWithLastTest(record *models.PredictionRecord) error
	ListByUser(userID uint, limit int) ([]models.PredictionRecord, error)
	FindByIDAndUser(id, userID uint) (*models.PredictionRecord, error)
	DeleteByIDAndUser(id, userID uint) error
	DeleteAllByUser(userID uint) error
	GetLastTest(userID uint) (*models.PredictionRecord, error)
}

type predictionRepository struct {
	db *gorm.DB
}

func NewPredictionRepository(db *gorm.DB) PredictionRepository {
	return &predictionRepository{db: db}
}

// SaveWithLastTest inserts a history row and points the user's last-test
// pointer at it, in a single transaction so neither lands without the other.
func (pr *predictionRepository) SaveWithLastTest(record *models.PredictionRecord) error {
	return pr.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(record).Error; err != nil {
			return err
		}

		lastTest := models.LastTestRecord{
			UserID:              record.UserID,
			PredictionHistoryID: record.ID,
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"prediction_history_id", "updated_at"}),
		}).Create(&lastTest).Error
	})
}

func (pr *predictionRepository) ListByUser(userID uint, limit int) ([]models.PredictionRecord, error) {
	var records []models.PredictionRecord
	query := pr.db.Where("user_id = ?", userID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&records).Error
	return records, err
}

func (pr *predictionRepository) FindByIDAndUser(id, userID uint) (*models.PredictionRecord, error) {
	var record models.PredictionRecord
	err := pr.db.Where("id = ? AND user_id = ?", id, userID).First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// DeleteByIDAndUser removes one record, scoped to its owner. A record that
// exists but belongs to another user reports not found.
func (pr *predictionRepository) DeleteByIDAndUser(id, userID uint) error {
	result := pr.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.PredictionRecord{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (pr *predictionRepository) DeleteAllByUser(userID uint) error {
	return pr.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.LastTestRecord{}).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", userID).Delete(&models.PredictionRecord{}).Error
	})
}

func (pr *predictionRepository) GetLastTest(userID uint) (*models.PredictionRecord, error) {
	var lastTest models.LastTestRecord
	if err := pr.db.Where("user_id = ?", userID).First(&lastTest).Error; err != nil {
		return nil, err
	}

	var record models.PredictionRecord
	if err := pr.db.First(&record, lastTest.PredictionHistoryID).Error; err != nil {
		return nil, err
	}
	return &record, nil
}
