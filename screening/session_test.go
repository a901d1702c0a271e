package screening

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	mu       sync.Mutex
	modules  []ModuleResult
	sessions []SessionResult
}

func (n *recordingNotifier) ModuleCompleted(sessionID string, profile Profile, result ModuleResult) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.modules = append(n.modules, result)
	return nil
}

func (n *recordingNotifier) SessionCompleted(result SessionResult, profile Profile) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sessions = append(n.sessions, result)
	return nil
}

func (n *recordingNotifier) counts() (int, int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.modules), len(n.sessions)
}

func answerModule(t *testing.T, s *Session, module ModuleType, correct []bool) *AnswerOutcome {
	t.Helper()
	questions := QuestionsFor(module)
	require.Len(t, correct, len(questions))

	var last AnswerOutcome
	for i, q := range questions {
		answer := q.CorrectAnswer
		if !correct[i] {
			answer = wrongAnswer(q)
		}
		outcome, err := s.SubmitAnswer(module, i, answer, time.Now())
		require.NoError(t, err)
		last = outcome
	}
	return &last
}

func wrongAnswer(q Question) string {
	for _, opt := range q.Options {
		if opt != q.CorrectAnswer {
			return opt
		}
	}
	return "no such option"
}

func allCorrect(n int) []bool {
	c := make([]bool, n)
	for i := range c {
		c[i] = true
	}
	return c
}

func TestSessionVisitsEveryModuleInOrder(t *testing.T) {
	s := NewSession(Profile{UserID: 1, Age: 30}, nil)

	var visited []ModuleType
	for {
		module, ok := s.CurrentModule()
		if !ok {
			break
		}
		visited = append(visited, module)
		answerModule(t, s, module, allCorrect(len(QuestionsFor(module))))
	}

	assert.Equal(t, DefaultModuleOrder(), visited)
	assert.Equal(t, StateAllComplete, s.State())

	result, ok := s.Result()
	require.True(t, ok)
	assert.Len(t, result.Results, len(DefaultModuleOrder()))
	assert.Equal(t, 100, result.OverallScore)
	assert.Equal(t, s.ID, result.SessionID)
	assert.Equal(t, uint(1), result.UserID)
}

func TestSessionModuleCompletionScores(t *testing.T) {
	s := NewSession(Profile{UserID: 2, Age: 30}, nil)

	// correct, correct, incorrect, correct, incorrect -> 60
	outcome := answerModule(t, s, ModulePeripheral, []bool{true, true, false, true, false})
	require.NotNil(t, outcome.ModuleResult)
	assert.Equal(t, 60, outcome.ModuleResult.Score)
	assert.Equal(t, ModulePeripheral, outcome.ModuleResult.Module)
	assert.Len(t, outcome.ModuleResult.Responses, 5)
	assert.Nil(t, outcome.SessionResult)

	module, ok := s.CurrentModule()
	require.True(t, ok)
	assert.Equal(t, ModuleAcuity, module)
}

func TestSessionRejectsOutOfOrderAnswer(t *testing.T) {
	s := NewSession(Profile{UserID: 3, Age: 30}, nil)

	_, err := s.SubmitAnswer(ModulePeripheral, 2, "3", time.Now())
	assert.ErrorIs(t, err, ErrOutOfOrder)

	q, idx, total, err := s.CurrentQuestion()
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
	assert.Equal(t, 5, total)

	_, err = s.SubmitAnswer(ModulePeripheral, 0, q.CorrectAnswer, time.Now())
	require.NoError(t, err)

	// Repeating an already-answered index is rejected too.
	_, err = s.SubmitAnswer(ModulePeripheral, 0, q.CorrectAnswer, time.Now())
	assert.ErrorIs(t, err, ErrOutOfOrder)
}

func TestSessionRejectsWrongModule(t *testing.T) {
	s := NewSession(Profile{UserID: 4, Age: 30}, nil)

	_, err := s.SubmitAnswer(ModuleAcuity, 0, "Right", time.Now())
	assert.ErrorIs(t, err, ErrWrongModule)
}

func TestSessionRejectsAnswerAfterCompletion(t *testing.T) {
	s := NewSession(Profile{UserID: 5, Age: 30}, nil)
	for _, module := range DefaultModuleOrder() {
		answerModule(t, s, module, allCorrect(len(QuestionsFor(module))))
	}

	_, err := s.SubmitAnswer(ModuleEyeStrain, 0, "No", time.Now())
	assert.ErrorIs(t, err, ErrSessionComplete)

	_, _, _, err = s.CurrentQuestion()
	assert.ErrorIs(t, err, ErrSessionComplete)
}

func TestSessionNotifiesResults(t *testing.T) {
	notifier := &recordingNotifier{}
	s := NewSession(Profile{UserID: 6, Age: 30}, notifier)

	for _, module := range DefaultModuleOrder() {
		answerModule(t, s, module, allCorrect(len(QuestionsFor(module))))
	}

	moduleCount := len(DefaultModuleOrder())
	assert.Eventually(t, func() bool {
		modules, sessions := notifier.counts()
		return modules == moduleCount && sessions == 1
	}, time.Second, 10*time.Millisecond)
}

func TestSessionIncorrectResponsesKeepDetail(t *testing.T) {
	s := NewSession(Profile{UserID: 7, Age: 30}, nil)
	questions := QuestionsFor(ModulePeripheral)

	outcome, err := s.SubmitAnswer(ModulePeripheral, 0, wrongAnswer(questions[0]), time.Now())
	require.NoError(t, err)
	assert.False(t, outcome.Response.Correct)
	assert.Equal(t, questions[0].CorrectAnswer, outcome.Response.CorrectAnswer)
	assert.Equal(t, questions[0].ID, outcome.Response.QuestionID)
}

func TestStoreStartAndRestart(t *testing.T) {
	store := NewStore()
	profile := Profile{UserID: 10, Age: 30}

	first := store.Start(profile, nil)
	got, ok := store.Get(10)
	require.True(t, ok)
	assert.Same(t, first, got)

	second := store.Start(profile, nil)
	assert.NotEqual(t, first.ID, second.ID)

	store.Remove(10)
	_, ok = store.Get(10)
	assert.False(t, ok)
}

func TestSessionLevelFromProfile(t *testing.T) {
	s := NewSession(Profile{UserID: 11, Age: 65}, nil)
	outcome := answerModule(t, s, ModulePeripheral, allCorrect(5))
	require.NotNil(t, outcome.ModuleResult)
	assert.Equal(t, 3, outcome.ModuleResult.Level)
}
