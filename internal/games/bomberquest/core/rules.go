package core

// Rules are the tunable timings and starting stats of a run.
// Zero fields fall back to DefaultRules, except TimeLimit where 0 means none.
type Rules struct {
	FuseSeconds      float64
	BlastSeconds     float64
	EnemyTurnSeconds float64
	EnemyStepSeconds float64
	TimeLimit        float64
	StartCapacity    int
	StartRadius      int
}

// DefaultRules returns the standard rules without a time limit.
func DefaultRules() Rules {
	return Rules{
		FuseSeconds:      FuseSeconds,
		BlastSeconds:     BlastSeconds,
		EnemyTurnSeconds: 1.0,
		EnemyStepSeconds: 1.0,
		StartCapacity:    1,
		StartRadius:      1,
	}
}

func (r Rules) withDefaults() Rules {
	d := DefaultRules()
	if r.FuseSeconds <= 0 {
		r.FuseSeconds = d.FuseSeconds
	}
	if r.BlastSeconds <= 0 {
		r.BlastSeconds = d.BlastSeconds
	}
	if r.EnemyTurnSeconds <= 0 {
		r.EnemyTurnSeconds = d.EnemyTurnSeconds
	}
	if r.EnemyStepSeconds <= 0 {
		r.EnemyStepSeconds = d.EnemyStepSeconds
	}
	if r.StartCapacity <= 0 {
		r.StartCapacity = d.StartCapacity
	}
	if r.StartRadius <= 0 {
		r.StartRadius = d.StartRadius
	}
	if r.TimeLimit < 0 {
		r.TimeLimit = 0
	}
	return r
}
