package screening

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBankCoversEveryModule(t *testing.T) {
	for _, module := range DefaultModuleOrder() {
		questions := QuestionsFor(module)
		require.Len(t, questions, 5, "module %s", module)
		for _, q := range questions {
			assert.Equal(t, module, q.Module, "question %s", q.ID)
			assert.NotEmpty(t, q.Prompt, "question %s", q.ID)
			assert.Contains(t, q.Options, q.CorrectAnswer, "question %s", q.ID)
		}
	}
}

func TestBankQuestionIDsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, module := range DefaultModuleOrder() {
		for _, q := range QuestionsFor(module) {
			assert.False(t, seen[q.ID], "duplicate question id %s", q.ID)
			seen[q.ID] = true
		}
	}
}

func TestSelfReportBaselineIsFirstOption(t *testing.T) {
	for _, q := range QuestionsFor(ModuleEyeStrain) {
		require.Equal(t, KindSelfReport, q.Kind)
		assert.Equal(t, q.Options[0], q.CorrectAnswer, "question %s", q.ID)
	}
}

func TestQuestionsForUnknownModule(t *testing.T) {
	assert.Empty(t, QuestionsFor(ModuleType("unknown")))
	assert.False(t, IsValidModule(ModuleType("unknown")))
	assert.True(t, IsValidModule(ModuleAcuity))
}
