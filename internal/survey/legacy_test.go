package survey

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRaceCode(t *testing.T) {
	assert.Equal(t, 0, RaceCode("White"))
	assert.Equal(t, 1, RaceCode("Black"))
	assert.Equal(t, 2, RaceCode("Asian"))
	assert.Equal(t, 3, RaceCode("Hispanic"))
	assert.Equal(t, 4, RaceCode("American Indian/Alaskan Native"))
	assert.Equal(t, 5, RaceCode("Other"))
	assert.Equal(t, 5, RaceCode("anything else"))
}

func TestGenHealthCode(t *testing.T) {
	assert.Equal(t, 0, GenHealthCode("Excellent"))
	assert.Equal(t, 1, GenHealthCode("Very good"))
	assert.Equal(t, 2, GenHealthCode("Good"))
	assert.Equal(t, 3, GenHealthCode("Fair"))
	assert.Equal(t, 4, GenHealthCode("Poor"))
	assert.Equal(t, 2, GenHealthCode("unknown"))
}

func TestHistoryRecord(t *testing.T) {
	payload := BuildPayload(Input{
		Sex:              "Female",
		Smoking:          "Yes",
		Diabetes:         "Yes",
		PhysicalActivity: "Yes",
		GeneralHealth:    "Poor",
		Race:             "Asian",
	})

	record := HistoryRecord(payload, 7, 1, 0.83)

	assert.Equal(t, uint(7), record.UserID)
	assert.Equal(t, 0, record.Sex)
	assert.Equal(t, 1, record.Smoking)
	assert.Equal(t, 0, record.AlcoholDrinking)
	assert.Equal(t, 1, record.Diabetic)
	assert.Equal(t, 1, record.PhysicalActivity)
	assert.Equal(t, 4, record.GenHealth)
	assert.Equal(t, 2, record.Race)
	assert.Equal(t, 0, record.DiffWalking)
	assert.Equal(t, 50, record.Age)
	assert.Equal(t, 25.0, record.BMI)
	assert.Equal(t, 7.0, record.SleepTime)
	assert.Equal(t, 1, record.PredictionResult)
	assert.Equal(t, 0.83, record.PredictionConfidence)
}
