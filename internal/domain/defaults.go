package domain

const (
	DefaultAge = 30
	DefaultSex = SexMale

	// MinAge and MaxAge bound the accepted input range. The engine itself
	// scores any age literally; only input layers enforce the range.
	MinAge = 0
	MaxAge = 120
)

// DefaultProfile returns the "typical person" profile for age 30, male.
func DefaultProfile() Profile {
	return DefaultProfileFor(DefaultAge, DefaultSex)
}

// DefaultProfileFor returns the typical-person profile for the given age and sex.
// The choices approximate an average person and are not all zero-impact:
// medium activity is +2.5, moderate alcohol -0.5, moderate social +2, college +1.
func DefaultProfileFor(age int, sex Sex) Profile {
	return Profile{
		Age:               age,
		Sex:               sex,
		Smoking:           SmokingNever,
		PhysicalActivity:  ActivityMedium,
		Diet:              DietAverage,
		Alcohol:           AlcoholModerate,
		BMI:               BMIHealthy,
		Sleep:             SleepAdequate,
		Stress:            StressAverage,
		SocialConnections: SocialModerate,
		Education:         EducationCollege,
	}
}
