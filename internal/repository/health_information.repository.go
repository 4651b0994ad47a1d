package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"cardioguard/internal/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const healthInfoCacheKeyPrefix = "health_information:category:"

func healthInfoCacheKey(category int) string {
	return fmt.Sprintf("%s%d", healthInfoCacheKeyPrefix, category)
}

type HealthInformationRepository interface {
	FindByCategory(category int) ([]models.HealthInformation, error)
	FindAll() ([]models.HealthInformation, error)
	Create(info *models.HealthInformation) error
	InvalidateCache(category int) error
}

type healthInformationRepository struct {
	db    *gorm.DB
	redis *redis.Client
	ctx   context.Context
}

func NewHealthInformationRepository(db *gorm.DB) HealthInformationRepository {
	return &healthInformationRepository{
		db:    db,
		redis: nil,
		ctx:   context.Background(),
	}
}

func NewCachedHealthInformationRepository(db *gorm.DB, redisClient *redis.Client) HealthInformationRepository {
	return &healthInformationRepository{
		db:    db,
		redis: redisClient,
		ctx:   context.Background(),
	}
}

func (r *healthInformationRepository) FindByCategory(category int) ([]models.HealthInformation, error) {
	if r.redis == nil {
		return r.findByCategoryFromDB(category)
	}

	cacheKey := healthInfoCacheKey(category)
	cachedData, err := r.redis.Get(r.ctx, cacheKey).Result()
	if err == nil {
		var entries []models.HealthInformation
		if err := json.Unmarshal([]byte(cachedData), &entries); err == nil {
			return entries, nil
		}
	}

	entries, err := r.findByCategoryFromDB(category)
	if err != nil {
		return nil, err
	}

	entriesJSON, err := json.Marshal(entries)
	if err == nil {
		if err := r.redis.Set(r.ctx, cacheKey, entriesJSON, contentCacheExpiry).Err(); err != nil {
			log.Printf("Failed to cache health information category %d: %v", category, err)
		}
	}

	return entries, nil
}

func (r *healthInformationRepository) findByCategoryFromDB(category int) ([]models.HealthInformation, error) {
	var entries []models.HealthInformation
	err := r.db.Where("category = ?", category).Order(`"index" ASC`).Find(&entries).Error
	return entries, err
}

func (r *healthInformationRepository) FindAll() ([]models.HealthInformation, error) {
	var entries []models.HealthInformation
	err := r.db.Order(`category ASC, "index" ASC`).Find(&entries).Error
	return entries, err
}

func (r *healthInformationRepository) Create(info *models.HealthInformation) error {
	if err := r.db.Create(info).Error; err != nil {
		return err
	}
	return r.InvalidateCache(info.Category)
}

func (r *healthInformationRepository) InvalidateCache(category int) error {
	if r.redis == nil {
		return nil
	}
	return r.redis.Del(r.ctx, healthInfoCacheKey(category)).Err()
}
