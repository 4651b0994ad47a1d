package controllers

import (
	"net/http"
	"strconv"

	"cardioguard/internal/models"
	"cardioguard/internal/repository"

	"github.com/gin-gonic/gin"
)

type ContentController struct {
	faqRepo    repository.FAQRepository
	healthRepo repository.HealthInformationRepository
}

func NewContentController(faqRepo repository.FAQRepository, healthRepo repository.HealthInformationRepository) *ContentController {
	return &ContentController{faqRepo: faqRepo, healthRepo: healthRepo}
}

func (cc *ContentController) GetFAQs(c *gin.Context) {
	faqs, err := cc.faqRepo.FindActive()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve FAQs",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "FAQs retrieved successfully",
		"data":    faqs,
	})
}

// GetHealthInformation serves the educational content. Without a category
// parameter it returns all entries grouped by section.
func (cc *ContentController) GetHealthInformation(c *gin.Context) {
	rawCategory := c.Query("category")
	if rawCategory != "" {
		category, err := strconv.Atoi(rawCategory)
		if err != nil || category < models.HealthCategoryFacts || category > models.HealthCategoryTreatment {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid category",
				"error":   "Category must be 1 (facts), 2 (prevention) or 3 (treatment)",
			})
			return
		}

		entries, err := cc.healthRepo.FindByCategory(category)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to retrieve health information",
				"error":   err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "Health information retrieved successfully",
			"data":    entries,
		})
		return
	}

	entries, err := cc.healthRepo.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve health information",
			"error":   err.Error(),
		})
		return
	}

	facts := make([]models.HealthInformation, 0)
	prevention := make([]models.HealthInformation, 0)
	treatment := make([]models.HealthInformation, 0)
	for _, entry := range entries {
		switch entry.Category {
		case models.HealthCategoryFacts:
			facts = append(facts, entry)
		case models.HealthCategoryPrevention:
			prevention = append(prevention, entry)
		case models.HealthCategoryTreatment:
			treatment = append(treatment, entry)
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Health information retrieved successfully",
		"data": gin.H{
			"facts":      facts,
			"prevention": prevention,
			"treatment":  treatment,
		},
	})
}
