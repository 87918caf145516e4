package domain

// Sex is the biological sex category used to select the base life expectancy
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// Valid reports whether s is one of the known sex categories
func (s Sex) Valid() bool {
	return s == SexMale || s == SexFemale
}

// Factor identifies one of the nine independent lifestyle dimensions
type Factor string

const (
	FactorSmoking           Factor = "smoking"
	FactorPhysicalActivity  Factor = "physicalActivity"
	FactorDiet              Factor = "diet"
	FactorAlcohol           Factor = "alcohol"
	FactorBMI               Factor = "bmi"
	FactorSleep             Factor = "sleep"
	FactorStress            Factor = "stress"
	FactorSocialConnections Factor = "socialConnections"
	FactorEducation         Factor = "education"
)

// Factors lists every factor in canonical table order.
// Anything that iterates factors must use this order so output stays deterministic.
var Factors = []Factor{
	FactorSmoking,
	FactorPhysicalActivity,
	FactorDiet,
	FactorAlcohol,
	FactorBMI,
	FactorSleep,
	FactorStress,
	FactorSocialConnections,
	FactorEducation,
}

// Choice is the selected category within a factor, e.g. "never" for smoking
type Choice string

// Smoking
const (
	SmokingCurrent Choice = "current"
	SmokingFormer  Choice = "former"
	SmokingNever   Choice = "never"
)

// Physical activity
const (
	ActivityHigh      Choice = "high"
	ActivityMedium    Choice = "medium"
	ActivityLow       Choice = "low"
	ActivitySedentary Choice = "sedentary"
)

// Diet
const (
	DietExcellent Choice = "excellent"
	DietGood      Choice = "good"
	DietAverage   Choice = "average"
	DietPoor      Choice = "poor"
)

// Alcohol
const (
	AlcoholNone     Choice = "none"
	AlcoholModerate Choice = "moderate"
	AlcoholHeavy    Choice = "heavy"
)

// BMI
const (
	BMIHealthy     Choice = "healthy"
	BMIOverweight  Choice = "overweight"
	BMIObese       Choice = "obese"
	BMIUnderweight Choice = "underweight"
)

// Sleep
const (
	SleepOptimal      Choice = "optimal"
	SleepAdequate     Choice = "adequate"
	SleepInsufficient Choice = "insufficient"
	SleepExcessive    Choice = "excessive"
)

// Stress
const (
	StressLow     Choice = "low"
	StressAverage Choice = "average"
	StressHigh    Choice = "high"
)

// Social connections
const (
	SocialStrong   Choice = "strong"
	SocialModerate Choice = "moderate"
	SocialWeak     Choice = "weak"
	SocialIsolated Choice = "isolated"
)

// Education
const (
	EducationAdvanced           Choice = "advanced"
	EducationCollege            Choice = "college"
	EducationHighSchool         Choice = "highSchool"
	EducationLessThanHighSchool Choice = "lessThanHighSchool"
)

// ParseFactor maps a raw key to a known Factor
func ParseFactor(s string) (Factor, bool) {
	for _, f := range Factors {
		if string(f) == s {
			return f, true
		}
	}
	return "", false
}
