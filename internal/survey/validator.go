package survey

import (
	"fmt"
	"strconv"
	"strings"
)

// Submission holds the parsed values of a valid form submission.
type Submission struct {
	Age                int
	Gender             string
	BMI                float64
	BloodPressure      float64
	CholesterolLevel   float64
	HighBloodPressure  string
	LowHDLCholesterol  string
	HighLDLCholesterol string
	TriglycerideLevel  float64
	FastingBloodSugar  float64
	CRPLevel           float64
	HomocysteineLevel  float64
	ExerciseHabits     string
	Smoking            string
	AlcoholConsumption string
	StressLevel        string
	SleepHours         float64
	SugarConsumption   string
	FamilyHeartDisease string
	Diabetes           string
}

// Result reports the outcome of validating a raw form submission. Every
// field is checked on every pass, so Errors can carry one message per
// failing field in a single round trip.
type Result struct {
	Valid  bool
	Data   Submission
	Errors []string
}

var (
	yesNo         = []string{"Yes", "No"}
	lowMediumHigh = []string{"Low", "Medium", "High"}
	genderOptions = []string{"Male", "Female"}
)

// Validate checks all recognized survey fields against their numeric range
// or allowed-value set. Missing or malformed values produce field-specific
// messages; validation never stops at the first failure.
func Validate(form map[string]string) Result {
	res := Result{Valid: true}
	v := &res

	res.Data.Age = v.requireInt(form, "age", "Age", 1, 120)
	res.Data.Gender = v.requireEnum(form, "gender", "Gender", genderOptions)
	res.Data.BMI = v.requireFloat(form, "bmi", "BMI", 10, 50)
	res.Data.BloodPressure = v.requireFloat(form, "blood_pressure", "Blood Pressure", 80, 200)
	res.Data.CholesterolLevel = v.requireFloat(form, "cholesterol_level", "Cholesterol Level", 100, 600)
	res.Data.HighBloodPressure = v.requireEnum(form, "high_blood_pressure", "High Blood Pressure", yesNo)
	res.Data.LowHDLCholesterol = v.requireEnum(form, "low_hdl_cholesterol", "Low HDL Cholesterol", yesNo)
	res.Data.HighLDLCholesterol = v.requireEnum(form, "high_ldl_cholesterol", "High LDL Cholesterol", yesNo)
	res.Data.TriglycerideLevel = v.requireFloat(form, "triglyceride_level", "Triglyceride Level", 50, 500)
	res.Data.FastingBloodSugar = v.requireFloat(form, "fasting_blood_sugar", "Fasting Blood Sugar", 70, 200)
	res.Data.CRPLevel = v.requireFloat(form, "crp_level", "CRP Level", 0, 20)
	res.Data.HomocysteineLevel = v.requireFloat(form, "homocysteine_level", "Homocysteine Level", 0, 30)
	res.Data.ExerciseHabits = v.requireEnum(form, "exercise_habits", "Exercise Habits", lowMediumHigh)
	res.Data.Smoking = v.requireEnum(form, "smoking", "Smoking Status", yesNo)
	res.Data.AlcoholConsumption = v.requireEnum(form, "alcohol_consumption", "Alcohol Consumption", lowMediumHigh)
	res.Data.StressLevel = v.requireEnum(form, "stress_level", "Stress Level", lowMediumHigh)
	res.Data.SleepHours = v.requireFloat(form, "sleep_hours", "Sleep Hours", 3, 12)
	res.Data.SugarConsumption = v.requireEnum(form, "sugar_consumption", "Sugar Consumption", lowMediumHigh)
	res.Data.FamilyHeartDisease = v.requireEnum(form, "family_heart_disease", "Family Heart Disease", yesNo)
	res.Data.Diabetes = v.requireEnum(form, "diabetes", "Diabetic Status", yesNo)

	return res
}

func (r *Result) fail(msg string) {
	r.Valid = false
	r.Errors = append(r.Errors, msg)
}

func (r *Result) requireInt(form map[string]string, key, label string, min, max int) int {
	raw, ok := form[key]
	raw = strings.TrimSpace(raw)
	if !ok || raw == "" {
		r.fail(fmt.Sprintf("%s is required.", label))
		return 0
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		r.fail(fmt.Sprintf("%s must be a whole number.", label))
		return 0
	}
	if value < min {
		r.fail(fmt.Sprintf("%s must be at least %d.", label, min))
		return 0
	}
	if value > max {
		r.fail(fmt.Sprintf("%s must be no more than %d.", label, max))
		return 0
	}
	return value
}

func (r *Result) requireFloat(form map[string]string, key, label string, min, max float64) float64 {
	raw, ok := form[key]
	raw = strings.TrimSpace(raw)
	if !ok || raw == "" {
		r.fail(fmt.Sprintf("%s is required.", label))
		return 0
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		r.fail(fmt.Sprintf("%s must be a number.", label))
		return 0
	}
	if value < min {
		r.fail(fmt.Sprintf("%s must be at least %g.", label, min))
		return 0
	}
	if value > max {
		r.fail(fmt.Sprintf("%s must be no more than %g.", label, max))
		return 0
	}
	return value
}

func (r *Result) requireEnum(form map[string]string, key, label string, allowed []string) string {
	raw, ok := form[key]
	raw = strings.TrimSpace(raw)
	if !ok || raw == "" {
		r.fail(fmt.Sprintf("%s is required.", label))
		return ""
	}
	for _, option := range allowed {
		if raw == option {
			return raw
		}
	}
	r.fail(fmt.Sprintf("%s must be one of the following values: %s.", label, strings.Join(allowed, ", ")))
	return ""
}
