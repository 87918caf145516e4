package domain

// Profile is a complete set of inputs for one estimate: age, sex and one
// choice per lifestyle factor. Profiles are values; editing one means building
// a new Profile with With or Apply.
type Profile struct {
	Age               int    `yaml:"age" json:"age"`
	Sex               Sex    `yaml:"sex" json:"sex"`
	Smoking           Choice `yaml:"smoking" json:"smoking"`
	PhysicalActivity  Choice `yaml:"physicalActivity" json:"physicalActivity"`
	Diet              Choice `yaml:"diet" json:"diet"`
	Alcohol           Choice `yaml:"alcohol" json:"alcohol"`
	BMI               Choice `yaml:"bmi" json:"bmi"`
	Sleep             Choice `yaml:"sleep" json:"sleep"`
	Stress            Choice `yaml:"stress" json:"stress"`
	SocialConnections Choice `yaml:"socialConnections" json:"socialConnections"`
	Education         Choice `yaml:"education" json:"education"`
}

// Choice returns the profile's selection for factor f, or "" for an unknown factor
func (p Profile) Choice(f Factor) Choice {
	switch f {
	case FactorSmoking:
		return p.Smoking
	case FactorPhysicalActivity:
		return p.PhysicalActivity
	case FactorDiet:
		return p.Diet
	case FactorAlcohol:
		return p.Alcohol
	case FactorBMI:
		return p.BMI
	case FactorSleep:
		return p.Sleep
	case FactorStress:
		return p.Stress
	case FactorSocialConnections:
		return p.SocialConnections
	case FactorEducation:
		return p.Education
	}
	return ""
}

// With returns a copy of p with factor f set to c. Unknown factors leave the copy unchanged.
func (p Profile) With(f Factor, c Choice) Profile {
	switch f {
	case FactorSmoking:
		p.Smoking = c
	case FactorPhysicalActivity:
		p.PhysicalActivity = c
	case FactorDiet:
		p.Diet = c
	case FactorAlcohol:
		p.Alcohol = c
	case FactorBMI:
		p.BMI = c
	case FactorSleep:
		p.Sleep = c
	case FactorStress:
		p.Stress = c
	case FactorSocialConnections:
		p.SocialConnections = c
	case FactorEducation:
		p.Education = c
	}
	return p
}

// Choices returns the profile's selections keyed by factor
func (p Profile) Choices() map[Factor]Choice {
	out := make(map[Factor]Choice, len(Factors))
	for _, f := range Factors {
		out[f] = p.Choice(f)
	}
	return out
}

// Modifications is a partial profile merged on top of an existing one.
// Nil Age/Sex and factors absent from Choices keep the original value.
type Modifications struct {
	Age     *int              `yaml:"age,omitempty" json:"age,omitempty"`
	Sex     *Sex              `yaml:"sex,omitempty" json:"sex,omitempty"`
	Choices map[Factor]Choice `yaml:"choices,omitempty" json:"choices,omitempty"`
}

// Apply returns a new profile with mods laid over p
func (p Profile) Apply(mods Modifications) Profile {
	if mods.Age != nil {
		p.Age = *mods.Age
	}
	if mods.Sex != nil {
		p.Sex = *mods.Sex
	}
	// walk Factors rather than the map so the result never depends on map order
	for _, f := range Factors {
		if c, ok := mods.Choices[f]; ok {
			p = p.With(f, c)
		}
	}
	return p
}

// IsZero reports whether no modification is present
func (mods Modifications) IsZero() bool {
	return mods.Age == nil && mods.Sex == nil && len(mods.Choices) == 0
}
