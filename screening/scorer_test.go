package screening

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func responsesWith(correct, incorrect int) []Response {
	var rs []Response
	for i := 0; i < correct; i++ {
		rs = append(rs, Response{Correct: true})
	}
	for i := 0; i < incorrect; i++ {
		rs = append(rs, Response{Correct: false})
	}
	return rs
}

func resultsWithScores(scores ...int) []ModuleResult {
	var rs []ModuleResult
	for _, s := range scores {
		rs = append(rs, ModuleResult{Score: s})
	}
	return rs
}

func TestModuleScore(t *testing.T) {
	tests := []struct {
		name      string
		correct   int
		incorrect int
		want      int
	}{
		{"all correct", 5, 0, 100},
		{"all incorrect", 0, 5, 0},
		{"three of five", 3, 2, 60},
		{"two of three rounds up", 2, 1, 67},
		{"one of three rounds down", 1, 2, 33},
		{"one of eight rounds half up", 1, 7, 13},
		{"single correct", 1, 0, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ModuleScore(responsesWith(tt.correct, tt.incorrect)))
		})
	}
}

func TestModuleScoreMixedOrder(t *testing.T) {
	// correct, correct, incorrect, correct, incorrect -> 60
	rs := []Response{
		{Correct: true}, {Correct: true}, {Correct: false}, {Correct: true}, {Correct: false},
	}
	assert.Equal(t, 60, ModuleScore(rs))
}

func TestOverallScore(t *testing.T) {
	tests := []struct {
		name   string
		scores []int
		want   int
	}{
		{"mean of three", []int{80, 60, 100}, 80},
		{"rounds half up", []int{80, 85}, 83},
		{"high scores", []int{90, 85, 95}, 90},
		{"low scores", []int{40, 50, 45}, 45},
		{"single module", []int{73}, 73},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OverallScore(resultsWithScores(tt.scores...)))
		})
	}
}
