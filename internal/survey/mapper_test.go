package survey

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPayloadDefaults(t *testing.T) {
	payload := BuildPayload(Input{})

	expected := Payload{
		Age:              50,
		BMI:              25.0,
		BloodPressure:    120.0,
		Cholesterol:      170.0,
		HeartRate:        75.0,
		BloodSugar:       90.0,
		Sex:              "Male",
		Smoking:          "No",
		AlcoholDrinking:  "No",
		Stroke:           "No",
		Diabetes:         "No",
		PhysicalActivity: "No",
		GeneralHealth:    "Good",
		SleepTime:        7.0,
		Asthma:           "No",
		KidneyDisease:    "No",
		SkinCancer:       "No",
		Race:             "White",
		FamilyHistory:    "No",
		PhysicalHealth:   0.0,
		MentalHealth:     0.0,
	}
	assert.Equal(t, expected, payload)
}

func TestBuildPayloadAgeBands(t *testing.T) {
	tests := []struct {
		band string
		age  int
	}{
		{"18-24", 21},
		{"25-29", 27},
		{"30-34", 32},
		{"35-39", 37},
		{"40-44", 42},
		{"45-49", 47},
		{"50-54", 52},
		{"55-59", 57},
		{"60-64", 62},
		{"65-69", 67},
		{"70-74", 72},
		{"75-79", 77},
		{"80 or older", 85},
	}

	for _, tt := range tests {
		t.Run(tt.band, func(t *testing.T) {
			payload := BuildPayload(Input{AgeBand: tt.band})
			assert.Equal(t, tt.age, payload.Age)
		})
	}
}

func TestBuildPayloadNumericAgeWinsOverBand(t *testing.T) {
	age := 33
	payload := BuildPayload(Input{Age: &age, AgeBand: "60-64"})
	assert.Equal(t, 33, payload.Age)
}

func TestBuildPayloadUnknownAgeBandFallsBack(t *testing.T) {
	payload := BuildPayload(Input{AgeBand: "youngish"})
	assert.Equal(t, 50, payload.Age)
}

func TestBuildPayloadCholesterolBands(t *testing.T) {
	tests := []struct {
		band  string
		level float64
	}{
		{"High", 240.0},
		{"Borderline", 200.0},
		{"Normal", 170.0},
	}

	for _, tt := range tests {
		t.Run(tt.band, func(t *testing.T) {
			payload := BuildPayload(Input{CholesterolBand: tt.band})
			assert.Equal(t, tt.level, payload.Cholesterol)
		})
	}
}

func TestBuildPayloadMeasuredCholesterolWinsOverBand(t *testing.T) {
	level := 212.0
	payload := BuildPayload(Input{Cholesterol: &level, CholesterolBand: "High"})
	assert.Equal(t, 212.0, payload.Cholesterol)
}

func TestBuildPayloadDiabetesRaisesBloodSugar(t *testing.T) {
	payload := BuildPayload(Input{Diabetes: "Yes"})
	assert.Equal(t, 130.0, payload.BloodSugar)

	payload = BuildPayload(Input{Diabetes: "No"})
	assert.Equal(t, 90.0, payload.BloodSugar)
}

func TestFromSubmissionBridging(t *testing.T) {
	sub := Submission{
		Age:                45,
		Gender:             "Female",
		BMI:                24.2,
		BloodPressure:      118.0,
		CholesterolLevel:   185.0,
		ExerciseHabits:     "High",
		Smoking:            "No",
		AlcoholConsumption: "Low",
		SleepHours:         7.5,
		FamilyHeartDisease: "Yes",
		Diabetes:           "No",
	}

	payload := BuildPayload(FromSubmission(sub))

	assert.Equal(t, 45, payload.Age)
	assert.Equal(t, "Female", payload.Sex)
	assert.Equal(t, 24.2, payload.BMI)
	assert.Equal(t, 118.0, payload.BloodPressure)
	assert.Equal(t, 185.0, payload.Cholesterol)
	assert.Equal(t, 7.5, payload.SleepTime)
	assert.Equal(t, "Yes", payload.FamilyHistory)

	// Lifestyle bands collapse onto Yes/No.
	assert.Equal(t, "No", payload.AlcoholDrinking)
	assert.Equal(t, "Yes", payload.PhysicalActivity)

	// Fields the form does not collect take their defaults.
	assert.Equal(t, 75.0, payload.HeartRate)
	assert.Equal(t, "White", payload.Race)
	assert.Equal(t, "Good", payload.GeneralHealth)
	assert.Equal(t, "No", payload.Stroke)
}

func TestFromSubmissionModerateAlcoholReadsAsYes(t *testing.T) {
	sub := Submission{Gender: "Male", AlcoholConsumption: "Medium", ExerciseHabits: "Low"}
	payload := BuildPayload(FromSubmission(sub))

	assert.Equal(t, "Yes", payload.AlcoholDrinking)
	assert.Equal(t, "No", payload.PhysicalActivity)
}
