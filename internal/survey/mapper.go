package survey

// AgeBand is the legacy age bucket used by older saved records and by the
// dataset the model was trained on.
type AgeBand int

const (
	AgeBand18To24 AgeBand = iota
	AgeBand25To29
	AgeBand30To34
	AgeBand35To39
	AgeBand40To44
	AgeBand45To49
	AgeBand50To54
	AgeBand55To59
	AgeBand60To64
	AgeBand65To69
	AgeBand70To74
	AgeBand75To79
	AgeBand80OrOlder
)

var ageBandNames = map[string]AgeBand{
	"18-24":       AgeBand18To24,
	"25-29":       AgeBand25To29,
	"30-34":       AgeBand30To34,
	"35-39":       AgeBand35To39,
	"40-44":       AgeBand40To44,
	"45-49":       AgeBand45To49,
	"50-54":       AgeBand50To54,
	"55-59":       AgeBand55To59,
	"60-64":       AgeBand60To64,
	"65-69":       AgeBand65To69,
	"70-74":       AgeBand70To74,
	"75-79":       AgeBand75To79,
	"80 or older": AgeBand80OrOlder,
}

// ParseAgeBand maps a band label to its AgeBand. Unknown labels report ok
// false rather than a silent default.
func ParseAgeBand(s string) (AgeBand, bool) {
	band, ok := ageBandNames[s]
	return band, ok
}

// Midpoint returns the representative age for the band.
func (b AgeBand) Midpoint() int {
	switch b {
	case AgeBand18To24:
		return 21
	case AgeBand25To29:
		return 27
	case AgeBand30To34:
		return 32
	case AgeBand35To39:
		return 37
	case AgeBand40To44:
		return 42
	case AgeBand45To49:
		return 47
	case AgeBand50To54:
		return 52
	case AgeBand55To59:
		return 57
	case AgeBand60To64:
		return 62
	case AgeBand65To69:
		return 67
	case AgeBand70To74:
		return 72
	case AgeBand75To79:
		return 77
	case AgeBand80OrOlder:
		return 85
	}
	return defaultAge
}

// CholesterolBand is the coarse cholesterol classification accepted in
// place of a measured level.
type CholesterolBand int

const (
	CholesterolNormal CholesterolBand = iota
	CholesterolBorderline
	CholesterolHigh
)

func ParseCholesterolBand(s string) (CholesterolBand, bool) {
	switch s {
	case "Normal":
		return CholesterolNormal, true
	case "Borderline":
		return CholesterolBorderline, true
	case "High":
		return CholesterolHigh, true
	}
	return CholesterolNormal, false
}

// MgDL returns the representative serum level in mg/dl for the band.
func (b CholesterolBand) MgDL() float64 {
	switch b {
	case CholesterolHigh:
		return 240.0
	case CholesterolBorderline:
		return 200.0
	}
	return defaultCholesterol
}

// Defaults substituted for absent optional inputs.
const (
	defaultAge           = 50
	defaultBMI           = 25.0
	defaultBloodPressure = 120.0
	defaultCholesterol   = 170.0
	defaultHeartRate     = 75.0
	defaultSleepTime     = 7.0

	bloodSugarDiabetic = 130.0
	bloodSugarNormal   = 90.0
)

// Input carries the optional, already-validated values the prediction
// payload is built from. Nil / empty fields take the documented defaults.
type Input struct {
	Age              *int
	AgeBand          string
	BMI              *float64
	BloodPressure    *float64
	Cholesterol      *float64
	CholesterolBand  string
	HeartRate        *float64
	Sex              string
	Smoking          string
	AlcoholDrinking  string
	Stroke           string
	Diabetes         string
	PhysicalActivity string
	GeneralHealth    string
	SleepTime        *float64
	Asthma           string
	KidneyDisease    string
	SkinCancer       string
	Race             string
	FamilyHistory    string
	PhysicalHealth   *float64
	MentalHealth     *float64
}

// Payload is the fixed request shape the prediction service expects.
type Payload struct {
	Age              int     `json:"age"`
	BMI              float64 `json:"bmi"`
	BloodPressure    float64 `json:"blood_pressure"`
	Cholesterol      float64 `json:"cholesterol"`
	HeartRate        float64 `json:"heart_rate"`
	BloodSugar       float64 `json:"blood_sugar"`
	Sex              string  `json:"sex"`
	Smoking          string  `json:"smoking"`
	AlcoholDrinking  string  `json:"alcohol_drinking"`
	Stroke           string  `json:"stroke"`
	Diabetes         string  `json:"diabetes"`
	PhysicalActivity string  `json:"physical_activity"`
	GeneralHealth    string  `json:"general_health"`
	SleepTime        float64 `json:"sleep_time"`
	Asthma           string  `json:"asthma"`
	KidneyDisease    string  `json:"kidney_disease"`
	SkinCancer       string  `json:"skin_cancer"`
	Race             string  `json:"race"`
	FamilyHistory    string  `json:"family_history"`
	PhysicalHealth   float64 `json:"physical_health"`
	MentalHealth     float64 `json:"mental_health"`
}

// BuildPayload produces the prediction request from whatever inputs are
// present. Pure function: absent numerics and categoricals fall back to
// fixed defaults, band labels map through their lookup tables.
func BuildPayload(in Input) Payload {
	p := Payload{
		Age:              defaultAge,
		BMI:              floatOr(in.BMI, defaultBMI),
		BloodPressure:    floatOr(in.BloodPressure, defaultBloodPressure),
		Cholesterol:      defaultCholesterol,
		HeartRate:        floatOr(in.HeartRate, defaultHeartRate),
		BloodSugar:       bloodSugarNormal,
		Sex:              stringOr(in.Sex, "Male"),
		Smoking:          stringOr(in.Smoking, "No"),
		AlcoholDrinking:  stringOr(in.AlcoholDrinking, "No"),
		Stroke:           stringOr(in.Stroke, "No"),
		Diabetes:         stringOr(in.Diabetes, "No"),
		PhysicalActivity: stringOr(in.PhysicalActivity, "No"),
		GeneralHealth:    stringOr(in.GeneralHealth, "Good"),
		SleepTime:        floatOr(in.SleepTime, defaultSleepTime),
		Asthma:           stringOr(in.Asthma, "No"),
		KidneyDisease:    stringOr(in.KidneyDisease, "No"),
		SkinCancer:       stringOr(in.SkinCancer, "No"),
		Race:             stringOr(in.Race, "White"),
		FamilyHistory:    stringOr(in.FamilyHistory, "No"),
		PhysicalHealth:   floatOr(in.PhysicalHealth, 0.0),
		MentalHealth:     floatOr(in.MentalHealth, 0.0),
	}

	if band, ok := ParseAgeBand(in.AgeBand); ok {
		p.Age = band.Midpoint()
	}
	if in.Age != nil {
		p.Age = *in.Age
	}

	if band, ok := ParseCholesterolBand(in.CholesterolBand); ok {
		p.Cholesterol = band.MgDL()
	}
	if in.Cholesterol != nil {
		p.Cholesterol = *in.Cholesterol
	}

	if p.Diabetes == "Yes" {
		p.BloodSugar = bloodSugarDiabetic
	}

	return p
}

// FromSubmission bridges the current intake form onto the legacy payload
// inputs. Lifestyle bands collapse onto the payload's Yes/No fields: "Low"
// consumption or exercise reads as No, anything more as Yes. Fields the
// form does not collect stay absent and take the mapper defaults.
func FromSubmission(sub Submission) Input {
	in := Input{
		Age:           intPtr(sub.Age),
		BMI:           floatPtr(sub.BMI),
		BloodPressure: floatPtr(sub.BloodPressure),
		Cholesterol:   floatPtr(sub.CholesterolLevel),
		Sex:           sub.Gender,
		Smoking:       sub.Smoking,
		Diabetes:      sub.Diabetes,
		SleepTime:     floatPtr(sub.SleepHours),
		FamilyHistory: sub.FamilyHeartDisease,
	}
	if sub.AlcoholConsumption != "" {
		in.AlcoholDrinking = levelToYesNo(sub.AlcoholConsumption)
	}
	if sub.ExerciseHabits != "" {
		in.PhysicalActivity = levelToYesNo(sub.ExerciseHabits)
	}
	return in
}

func levelToYesNo(level string) string {
	if level == "Low" {
		return "No"
	}
	return "Yes"
}

func floatOr(v *float64, def float64) float64 {
	if v != nil {
		return *v
	}
	return def
}

func stringOr(v, def string) string {
	if v != "" {
		return v
	}
	return def
}

func intPtr(v int) *int {
	return &v
}

func floatPtr(v float64) *float64 {
	return &v
}
