package calculation

import "github.com/rgehrsitz/lifex/internal/domain"

var factorNames = map[domain.Factor]string{
	domain.FactorSmoking:           "Smoking",
	domain.FactorPhysicalActivity:  "Physical Activity",
	domain.FactorDiet:              "Diet",
	domain.FactorAlcohol:           "Alcohol Consumption",
	domain.FactorBMI:               "BMI",
	domain.FactorSleep:             "Sleep",
	domain.FactorStress:            "Stress Levels",
	domain.FactorSocialConnections: "Social Connections",
	domain.FactorEducation:         "Education Level",
}

var factorDescriptions = map[domain.Factor]string{
	domain.FactorSmoking:           "Impact of smoking habits on life expectancy",
	domain.FactorPhysicalActivity:  "Impact of physical activity levels on life expectancy",
	domain.FactorDiet:              "Impact of dietary habits on life expectancy",
	domain.FactorAlcohol:           "Impact of alcohol consumption on life expectancy",
	domain.FactorBMI:               "Impact of body mass index on life expectancy",
	domain.FactorSleep:             "Impact of sleep habits on life expectancy",
	domain.FactorStress:            "Impact of stress levels on life expectancy",
	domain.FactorSocialConnections: "Impact of social relationships on life expectancy",
	domain.FactorEducation:         "Impact of education level on life expectancy",
}

var choiceLabels = map[domain.Factor]map[domain.Choice]string{
	domain.FactorSmoking: {
		domain.SmokingCurrent: "Current Smoker",
		domain.SmokingFormer:  "Former Smoker",
		domain.SmokingNever:   "Never Smoked",
	},
	domain.FactorPhysicalActivity: {
		domain.ActivityHigh:      "Very Active",
		domain.ActivityMedium:    "Moderately Active",
		domain.ActivityLow:       "Minimal Activity",
		domain.ActivitySedentary: "Sedentary",
	},
	domain.FactorDiet: {
		domain.DietExcellent: "Excellent",
		domain.DietGood:      "Good",
		domain.DietAverage:   "Average",
		domain.DietPoor:      "Poor",
	},
	domain.FactorAlcohol: {
		domain.AlcoholNone:     "None",
		domain.AlcoholModerate: "Moderate",
		domain.AlcoholHeavy:    "Heavy",
	},
	domain.FactorBMI: {
		domain.BMIHealthy:     "Healthy (18.5-24.9)",
		domain.BMIOverweight:  "Overweight (25-29.9)",
		domain.BMIObese:       "Obese (30+)",
		domain.BMIUnderweight: "Underweight (<18.5)",
	},
	domain.FactorSleep: {
		domain.SleepOptimal:      "Optimal (7-8 hrs)",
		domain.SleepAdequate:     "Adequate (6-7 hrs)",
		domain.SleepInsufficient: "Insufficient (<6 hrs)",
		domain.SleepExcessive:    "Excessive (>9 hrs)",
	},
	domain.FactorStress: {
		domain.StressLow:     "Low",
		domain.StressAverage: "Average",
		domain.StressHigh:    "High",
	},
	domain.FactorSocialConnections: {
		domain.SocialStrong:   "Strong",
		domain.SocialModerate: "Moderate",
		domain.SocialWeak:     "Weak",
		domain.SocialIsolated: "Isolated",
	},
	domain.FactorEducation: {
		domain.EducationAdvanced:           "Advanced Degree",
		domain.EducationCollege:            "College",
		domain.EducationHighSchool:         "High School",
		domain.EducationLessThanHighSchool: "Less than High School",
	},
}

// FactorName returns the display name of a factor, or the raw key if unknown
func FactorName(f domain.Factor) string {
	if name, ok := factorNames[f]; ok {
		return name
	}
	return string(f)
}

// FactorDescription returns a one-line explanation of the factor
func FactorDescription(f domain.Factor) string {
	if desc, ok := factorDescriptions[f]; ok {
		return desc
	}
	return "Impact on life expectancy"
}

// ChoiceLabel returns the display label for a factor's choice, or the raw choice if unknown
func ChoiceLabel(f domain.Factor, c domain.Choice) string {
	if label, ok := choiceLabels[f][c]; ok {
		return label
	}
	return string(c)
}

// Option is a selectable (value, label) pair for a factor
type Option struct {
	Value domain.Choice `json:"value" yaml:"value"`
	Label string        `json:"label" yaml:"label"`
}

// FactorOptions lists a factor's choices with labels in table order.
// Unknown factors yield an empty list.
func FactorOptions(f domain.Factor) []Option {
	choices := DefaultTable.Choices(f)
	options := make([]Option, 0, len(choices))
	for _, ci := range choices {
		options = append(options, Option{Value: ci.Choice, Label: ChoiceLabel(f, ci.Choice)})
	}
	return options
}
