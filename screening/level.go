package screening

import "math"

// LevelFor derives the difficulty level marker (1-5) stored on module results
// from the user's self-reported profile. Levels do not adapt to performance
// during the session.
func LevelFor(p Profile) int {
	level := 1.0

	if p.Age > 60 {
		level++
	}
	if p.Age > 40 {
		level += 0.5
	}

	if p.UsesGlasses && (p.LensType == "multifocal" || p.LensType == "bifocal") {
		level++
	}

	if len(p.VisualDifficulties) > 2 {
		level++
	}

	l := int(math.Ceil(level))
	if l > 5 {
		l = 5
	}
	return l
}
