package repository

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"cardioguard/internal/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	faqListCacheKey    = "faq:active"
	contentCacheExpiry = 30 * time.Minute
)

type FAQRepository interface {
	FindActive() ([]models.FAQ, error)
	Create(faq *models.FAQ) error
	InvalidateCache() error
}

type faqRepository struct {
	db    *gorm.DB
	redis *redis.Client
	ctx   context.Context
}

func NewFAQRepository(db *gorm.DB) FAQRepository {
	return &faqRepository{
		db:    db,
		redis: nil,
		ctx:   context.Background(),
	}
}

func NewCachedFAQRepository(db *gorm.DB, redisClient *redis.Client) FAQRepository {
	return &faqRepository{
		db:    db,
		redis: redisClient,
		ctx:   context.Background(),
	}
}

// FindActive returns published entries in display order.
func (r *faqRepository) FindActive() ([]models.FAQ, error) {
	if r.redis == nil {
		return r.findActiveFromDB()
	}

	cachedData, err := r.redis.Get(r.ctx, faqListCacheKey).Result()
	if err == nil {
		var faqs []models.FAQ
		if err := json.Unmarshal([]byte(cachedData), &faqs); err == nil {
			return faqs, nil
		}
	}

	faqs, err := r.findActiveFromDB()
	if err != nil {
		return nil, err
	}

	faqsJSON, err := json.Marshal(faqs)
	if err == nil {
		if err := r.redis.Set(r.ctx, faqListCacheKey, faqsJSON, contentCacheExpiry).Err(); err != nil {
			log.Printf("Failed to cache FAQ list: %v", err)
		}
	}

	return faqs, nil
}

func (r *faqRepository) findActiveFromDB() ([]models.FAQ, error) {
	var faqs []models.FAQ
	err := r.db.Where("status = ?", 1).Order("faq_index ASC").Find(&faqs).Error
	return faqs, err
}

func (r *faqRepository) Create(faq *models.FAQ) error {
	if err := r.db.Create(faq).Error; err != nil {
		return err
	}
	return r.InvalidateCache()
}

func (r *faqRepository) InvalidateCache() error {
	if r.redis == nil {
		return nil
	}
	return r.redis.Del(r.ctx, faqListCacheKey).Err()
}
