package survey

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validForm() map[string]string {
	return map[string]string{
		"age":                  "45",
		"gender":               "Female",
		"bmi":                  "24.2",
		"blood_pressure":       "118",
		"cholesterol_level":    "185",
		"high_blood_pressure":  "No",
		"low_hdl_cholesterol":  "No",
		"high_ldl_cholesterol": "No",
		"triglyceride_level":   "120",
		"fasting_blood_sugar":  "88",
		"crp_level":            "0.8",
		"homocysteine_level":   "9",
		"exercise_habits":      "High",
		"smoking":              "No",
		"alcohol_consumption":  "Low",
		"stress_level":         "Low",
		"sleep_hours":          "7.5",
		"sugar_consumption":    "Medium",
		"family_heart_disease": "No",
		"diabetes":             "No",
	}
}

func TestValidateAcceptsCompleteForm(t *testing.T) {
	result := Validate(validForm())

	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
	assert.Equal(t, 45, result.Data.Age)
	assert.Equal(t, "Female", result.Data.Gender)
	assert.Equal(t, 24.2, result.Data.BMI)
	assert.Equal(t, 7.5, result.Data.SleepHours)
	assert.Equal(t, "No", result.Data.Diabetes)
}

func TestValidateRequiredFields(t *testing.T) {
	result := Validate(map[string]string{})

	assert.False(t, result.Valid)
	assert.Len(t, result.Errors, 20)
	assert.Contains(t, result.Errors, "Age is required.")
	assert.Contains(t, result.Errors, "Gender is required.")
	assert.Contains(t, result.Errors, "Family Heart Disease is required.")
}

func TestValidateNumericBounds(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		expected string
	}{
		{"age below minimum", "age", "0", "Age must be at least 1."},
		{"age above maximum", "age", "121", "Age must be no more than 120."},
		{"age not an integer", "age", "45.5", "Age must be a whole number."},
		{"bmi below minimum", "bmi", "9.9", "BMI must be at least 10."},
		{"bmi above maximum", "bmi", "50.1", "BMI must be no more than 50."},
		{"bmi not numeric", "bmi", "heavy", "BMI must be a number."},
		{"blood pressure below minimum", "blood_pressure", "79", "Blood Pressure must be at least 80."},
		{"cholesterol above maximum", "cholesterol_level", "601", "Cholesterol Level must be no more than 600."},
		{"triglyceride below minimum", "triglyceride_level", "49", "Triglyceride Level must be at least 50."},
		{"fasting blood sugar above maximum", "fasting_blood_sugar", "201", "Fasting Blood Sugar must be no more than 200."},
		{"crp below minimum", "crp_level", "-0.1", "CRP Level must be at least 0."},
		{"homocysteine above maximum", "homocysteine_level", "30.5", "Homocysteine Level must be no more than 30."},
		{"sleep below minimum", "sleep_hours", "2.9", "Sleep Hours must be at least 3."},
		{"sleep above maximum", "sleep_hours", "12.5", "Sleep Hours must be no more than 12."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			form[tt.key] = tt.value
			result := Validate(form)

			assert.False(t, result.Valid)
			assert.Equal(t, []string{tt.expected}, result.Errors)
		})
	}
}

func TestValidateBoundaryValuesPass(t *testing.T) {
	form := validForm()
	form["age"] = "1"
	form["bmi"] = "10"
	form["blood_pressure"] = "200"
	form["sleep_hours"] = "12"
	form["crp_level"] = "0"

	result := Validate(form)
	assert.True(t, result.Valid)
	assert.Equal(t, 1, result.Data.Age)
	assert.Equal(t, 10.0, result.Data.BMI)
	assert.Equal(t, 200.0, result.Data.BloodPressure)
}

func TestValidateEnums(t *testing.T) {
	t.Run("options are case sensitive", func(t *testing.T) {
		form := validForm()
		form["smoking"] = "no"
		result := Validate(form)

		assert.False(t, result.Valid)
		assert.Equal(t, []string{"Smoking Status must be one of the following values: Yes, No."}, result.Errors)
	})

	t.Run("level fields reject yes/no answers", func(t *testing.T) {
		form := validForm()
		form["stress_level"] = "Yes"
		result := Validate(form)

		assert.False(t, result.Valid)
		assert.Equal(t, []string{"Stress Level must be one of the following values: Low, Medium, High."}, result.Errors)
	})

	t.Run("gender accepts only the listed options", func(t *testing.T) {
		form := validForm()
		form["gender"] = "other"
		result := Validate(form)

		assert.False(t, result.Valid)
		assert.Equal(t, []string{"Gender must be one of the following values: Male, Female."}, result.Errors)
	})
}

func TestValidateTrimsWhitespace(t *testing.T) {
	form := validForm()
	form["age"] = " 45 "
	form["gender"] = " Female "

	result := Validate(form)
	assert.True(t, result.Valid)
	assert.Equal(t, 45, result.Data.Age)
	assert.Equal(t, "Female", result.Data.Gender)
}

func TestValidateAccumulatesAllErrors(t *testing.T) {
	form := validForm()
	form["age"] = "200"
	form["bmi"] = "abc"
	delete(form, "smoking")
	form["diabetes"] = "Maybe"

	result := Validate(form)

	assert.False(t, result.Valid)
	assert.Len(t, result.Errors, 4)
	assert.Contains(t, result.Errors, "Age must be no more than 120.")
	assert.Contains(t, result.Errors, "BMI must be a number.")
	assert.Contains(t, result.Errors, "Smoking Status is required.")
	assert.Contains(t, result.Errors, "Diabetic Status must be one of the following values: Yes, No.")
}
