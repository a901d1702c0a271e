package screening

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFor(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		want    int
	}{
		{"young healthy", Profile{Age: 25}, 1},
		{"over forty", Profile{Age: 45}, 2},
		{"over sixty", Profile{Age: 65}, 3},
		{"bifocal wearer", Profile{Age: 30, UsesGlasses: true, LensType: "bifocal"}, 2},
		{"many difficulties", Profile{Age: 30, VisualDifficulties: []string{"blur", "halos", "double vision"}}, 2},
		{"capped at five", Profile{
			Age:                70,
			UsesGlasses:        true,
			LensType:           "multifocal",
			VisualDifficulties: []string{"blur", "halos", "double vision", "glare"},
		}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LevelFor(tt.profile))
		})
	}
}
