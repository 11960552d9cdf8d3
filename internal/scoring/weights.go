package scoring

import "github.com/jonathan/talent-search/internal/types"

// WeightVector assigns a blending weight to every scoring signal.
// Each vector sums to 1.0.
type WeightVector struct {
	SkillMatch        float64
	Experience        float64
	ProjectQuality    float64
	ProfileQuality    float64
	BioKeyword        float64
	ProjectKeyword    float64
	ExperienceKeyword float64
}

// Sum returns the total weight, used to verify vector integrity.
func (w WeightVector) Sum() float64 {
	return w.SkillMatch + w.Experience + w.ProjectQuality + w.ProfileQuality +
		w.BioKeyword + w.ProjectKeyword + w.ExperienceKeyword
}

// defaultWeights is the balanced vector used when no target position was
// requested.
var defaultWeights = WeightVector{
	SkillMatch:        0.25,
	Experience:        0.20,
	ProjectQuality:    0.15,
	ProfileQuality:    0.10,
	BioKeyword:        0.10,
	ProjectKeyword:    0.10,
	ExperienceKeyword: 0.10,
}

// positionWeights biases the blend per target position. Engineering
// roles lean on skills and shipped work; design roles lean on the
// profile itself and how candidates describe themselves.
var positionWeights = map[types.Position]WeightVector{
	types.PositionBackend: {
		SkillMatch:        0.30,
		Experience:        0.25,
		ProjectQuality:    0.15,
		ProfileQuality:    0.05,
		BioKeyword:        0.05,
		ProjectKeyword:    0.10,
		ExperienceKeyword: 0.10,
	},
	types.PositionFrontend: {
		SkillMatch:        0.30,
		Experience:        0.15,
		ProjectQuality:    0.20,
		ProfileQuality:    0.10,
		BioKeyword:        0.10,
		ProjectKeyword:    0.10,
		ExperienceKeyword: 0.05,
	},
	types.PositionFullstack: {
		SkillMatch:        0.25,
		Experience:        0.20,
		ProjectQuality:    0.20,
		ProfileQuality:    0.05,
		BioKeyword:        0.10,
		ProjectKeyword:    0.10,
		ExperienceKeyword: 0.10,
	},
	types.PositionMobile: {
		SkillMatch:        0.30,
		Experience:        0.20,
		ProjectQuality:    0.20,
		ProfileQuality:    0.05,
		BioKeyword:        0.05,
		ProjectKeyword:    0.15,
		ExperienceKeyword: 0.05,
	},
	types.PositionDataScience: {
		SkillMatch:        0.30,
		Experience:        0.15,
		ProjectQuality:    0.25,
		ProfileQuality:    0.05,
		BioKeyword:        0.05,
		ProjectKeyword:    0.15,
		ExperienceKeyword: 0.05,
	},
	types.PositionDevops: {
		SkillMatch:        0.25,
		Experience:        0.30,
		ProjectQuality:    0.10,
		ProfileQuality:    0.05,
		BioKeyword:        0.05,
		ProjectKeyword:    0.05,
		ExperienceKeyword: 0.20,
	},
	types.PositionUIUX: {
		SkillMatch:        0.15,
		Experience:        0.10,
		ProjectQuality:    0.15,
		ProfileQuality:    0.25,
		BioKeyword:        0.20,
		ProjectKeyword:    0.10,
		ExperienceKeyword: 0.05,
	},
}

// WeightsFor returns the weight vector for a target position, falling
// back to the balanced default when the position is unset or unknown.
func WeightsFor(position types.Position) WeightVector {
	if w, ok := positionWeights[position]; ok {
		return w
	}
	return defaultWeights
}

// Positions lists the known target positions in a stable order.
func Positions() []string {
	return []string{
		string(types.PositionBackend),
		string(types.PositionFrontend),
		string(types.PositionFullstack),
		string(types.PositionMobile),
		string(types.PositionDataScience),
		string(types.PositionDevops),
		string(types.PositionUIUX),
	}
}
