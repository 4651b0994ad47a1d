package survey

import (
	"cardioguard/internal/models"
)

// Integer codes used by the user_prediction_history schema. The tables
// mirror the encoding the model's training data used.

func SexCode(sex string) int {
	if sex == "Female" {
		return 0
	}
	return 1
}

func YesNoCode(s string) int {
	if s == "Yes" {
		return 1
	}
	return 0
}

func RaceCode(race string) int {
	switch race {
	case "White":
		return 0
	case "Black":
		return 1
	case "Asian":
		return 2
	case "Hispanic":
		return 3
	case "American Indian/Alaskan Native":
		return 4
	}
	return 5
}

func GenHealthCode(genHealth string) int {
	switch genHealth {
	case "Excellent":
		return 0
	case "Very good":
		return 1
	case "Fair":
		return 3
	case "Poor":
		return 4
	}
	return 2
}

// HistoryRecord converts a prediction payload plus the service verdict into
// the row shape stored in user_prediction_history. DiffWalking is not part
// of the current payload and records as 0.
func HistoryRecord(p Payload, userID uint, result int, confidence float64) *models.PredictionRecord {
	return &models.PredictionRecord{
		UserID:               userID,
		Age:                  p.Age,
		Sex:                  SexCode(p.Sex),
		BMI:                  p.BMI,
		Smoking:              YesNoCode(p.Smoking),
		AlcoholDrinking:      YesNoCode(p.AlcoholDrinking),
		Stroke:               YesNoCode(p.Stroke),
		PhysicalHealth:       p.PhysicalHealth,
		MentalHealth:         p.MentalHealth,
		DiffWalking:          0,
		Race:                 RaceCode(p.Race),
		Diabetic:             YesNoCode(p.Diabetes),
		PhysicalActivity:     YesNoCode(p.PhysicalActivity),
		GenHealth:            GenHealthCode(p.GeneralHealth),
		SleepTime:            p.SleepTime,
		Asthma:               YesNoCode(p.Asthma),
		KidneyDisease:        YesNoCode(p.KidneyDisease),
		SkinCancer:           YesNoCode(p.SkinCancer),
		PredictionResult:     result,
		PredictionConfidence: confidence,
	}
}
