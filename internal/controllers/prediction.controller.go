package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"cardioguard/internal/ml"
	"cardioguard/internal/repository"
	"cardioguard/internal/survey"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const predictionTimeout = 30 * time.Second

type PredictionController struct {
	repo     repository.PredictionRepository
	mlClient ml.Client
}

func NewPredictionController(repo repository.PredictionRepository, mlClient ml.Client) *PredictionController {
	return &PredictionController{repo: repo, mlClient: mlClient}
}

// MakePrediction validates the submitted form, forwards it to the prediction
// service, and optionally records the outcome for logged-in users. Guests get
// a result but nothing is stored.
func (pc *PredictionController) MakePrediction(c *gin.Context) {
	var form map[string]string
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	saveRecord := form["save_record"] == "true" || form["save_record"] == "1"
	delete(form, "save_record")

	result := survey.Validate(form)
	if !result.Valid {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Validation failed",
			"error":   "One or more fields are invalid",
			"data":    gin.H{"errors": result.Errors},
		})
		return
	}

	payload := survey.BuildPayload(survey.FromSubmission(result.Data))

	ctx, cancel := context.WithTimeout(c.Request.Context(), predictionTimeout)
	defer cancel()

	prediction, err := pc.mlClient.Predict(ctx, &payload)
	if err != nil {
		var apiErr *ml.APIError
		if errors.As(err, &apiErr) {
			c.JSON(http.StatusBadGateway, gin.H{
				"status":  "error",
				"message": "Prediction service returned an error",
				"error":   apiErr.Error(),
				"data":    gin.H{"response": apiErr.Body},
			})
			return
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "error",
			"message": "Prediction service unavailable",
			"error":   err.Error(),
		})
		return
	}

	saved := false
	if saveRecord {
		if userID, exists := c.Get("user_id"); exists {
			confidence := prediction.Probability / 100.0
			outcome := 0
			if prediction.Probability >= 50 {
				outcome = 1
			}
			record := survey.HistoryRecord(payload, userID.(uint), outcome, confidence)
			if err := pc.repo.SaveWithLastTest(record); err != nil {
				log.Printf("Failed to save prediction for user %v: %v", userID, err)
			} else {
				saved = true
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Prediction completed",
		"data": gin.H{
			"risk_level":  prediction.RiskLevel,
			"probability": prediction.Probability,
			"factors":     prediction.Factors,
			"saved":       saved,
		},
	})
}

func (pc *PredictionController) GetLastTest(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Authentication required",
			"error":   "No user in context",
		})
		return
	}

	record, err := pc.repo.GetLastTest(userID.(uint))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "No previous test found",
				"error":   "User has not taken a test yet",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve last test",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Last test retrieved successfully",
		"data":    record,
	})
}

// TestMLConnection probes the prediction service so deployments can check
// connectivity without running a real prediction.
func (pc *PredictionController) TestMLConnection(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := pc.mlClient.HealthCheck(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "error",
			"message": "Prediction service unreachable",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Prediction service is reachable",
		"data":    nil,
	})
}
