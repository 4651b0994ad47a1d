package controllers

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"cardioguard/internal/models"
	"cardioguard/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HistoryController struct {
	repo repository.PredictionRepository
}

func NewHistoryController(repo repository.PredictionRepository) *HistoryController {
	return &HistoryController{repo: repo}
}

type historyEntry struct {
	ID          uint                     `json:"id"`
	Date        string                   `json:"date"`
	Result      string                   `json:"result"`
	Probability string                   `json:"probability"`
	Details     string                   `json:"details"`
	Record      *models.PredictionRecord `json:"record"`
}

// riskLabel folds the stored outcome and confidence into the label shown in
// the history list.
func riskLabel(result int, confidence float64) string {
	if result == 1 && confidence >= 0.7 {
		return "High Risk"
	}
	if result == 1 {
		return "Medium Risk"
	}
	return "Low Risk"
}

func annotate(record models.PredictionRecord) historyEntry {
	r := record
	return historyEntry{
		ID:          record.ID,
		Date:        record.CreatedAt.Format("2006-01-02"),
		Result:      riskLabel(record.PredictionResult, record.PredictionConfidence),
		Probability: fmt.Sprintf("%d%%", int(math.Round(record.PredictionConfidence*100))),
		Details:     fmt.Sprintf("Age: %d, BMI: %.1f, Sleep: %.1f hrs", record.Age, record.BMI, record.SleepTime),
		Record:      &r,
	}
}

// GetHistory lists the caller's past tests, newest first. The limit query
// parameter caps the page; it defaults to 10.
func (hc *HistoryController) GetHistory(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Authentication required",
			"error":   "No user in context",
		})
		return
	}

	limit := 10
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid limit parameter",
				"error":   "Limit must be a positive integer",
			})
			return
		}
		limit = parsed
	}

	records, err := hc.repo.ListByUser(userID.(uint), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve history",
			"error":   err.Error(),
		})
		return
	}

	entries := make([]historyEntry, 0, len(records))
	for _, record := range records {
		entries = append(entries, annotate(record))
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "History retrieved successfully",
		"data":    entries,
	})
}

func (hc *HistoryController) GetHistoryByID(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Authentication required",
			"error":   "No user in context",
		})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid history ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	record, err := hc.repo.FindByIDAndUser(uint(id), userID.(uint))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "History record not found",
				"error":   "No record exists with the provided ID",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve history record",
			"error":   err.Error(),
		})
		return
	}

	entry := annotate(*record)
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "History record retrieved successfully",
		"data":    entry,
	})
}

// DeleteHistory removes a single record. A record owned by another user is
// reported as not found rather than forbidden.
func (hc *HistoryController) DeleteHistory(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Authentication required",
			"error":   "No user in context",
		})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid history ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if err := hc.repo.DeleteByIDAndUser(uint(id), userID.(uint)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "History record not found",
				"error":   "No record exists with the provided ID",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete history record",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "History record deleted successfully",
		"data":    nil,
	})
}

func (hc *HistoryController) DeleteAllHistory(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Authentication required",
			"error":   "No user in context",
		})
		return
	}

	if err := hc.repo.DeleteAllByUser(userID.(uint)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to clear history",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "History cleared successfully",
		"data":    nil,
	})
}
