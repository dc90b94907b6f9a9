package matching

// Weights scales each sub-score into the 0–100 composite. Named so the
// balance can be tuned without touching the ranking algorithm.
type Weights struct {
	Skills       float64
	Interests    float64
	Availability float64
	Location     float64
	// FullFitBonus applies when the opportunity fits inside the
	// volunteer's remaining budget; PartialFitBonus otherwise.
	FullFitBonus    float64
	PartialFitBonus float64
}

// DefaultWeights is the production balance: skills dominate, interests
// and availability carry equal weight, modality least.
func DefaultWeights() Weights {
	return Weights{
		Skills:          40,
		Interests:       20,
		Availability:    20,
		Location:        10,
		FullFitBonus:    10,
		PartialFitBonus: 5,
	}
}
