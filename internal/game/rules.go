package game

// Rules holds the design constants of a match
type Rules struct {
	HunterSpawnChance float64
	HunterHP          int
	HunterMaxDamage   int
	CaptureChance     float64
	CaptureTurns      int
	BuffTurns         int
	CritChance        float64
}

// DefaultRules returns the standard match constants.
func DefaultRules() Rules {
	return Rules{
		HunterSpawnChance: 0.1,
		HunterHP:          24,
		HunterMaxDamage:   10,
		CaptureChance:     0.2,
		CaptureTurns:      3,
		BuffTurns:         3,
		CritChance:        0.15,
	}
}

func roll(rng Source, chance float64) bool {
	if chance <= 0 {
		return false
	}
	return rng.Float64() < chance
}
