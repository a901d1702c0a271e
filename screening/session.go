package screening

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrSessionComplete is returned when an answer arrives after all modules finished.
	ErrSessionComplete = errors.New("screening: session already complete")
	// ErrWrongModule is returned when an answer targets a module other than the active one.
	ErrWrongModule = errors.New("screening: answer does not target the active module")
	// ErrOutOfOrder is returned when the question index is not the next expected one.
	ErrOutOfOrder = errors.New("screening: answer submitted out of order")
)

// Notifier receives completed results. Implementations are invoked
// fire-and-forget: the session never waits on them and a failure never rolls
// back recorded responses.
type Notifier interface {
	ModuleCompleted(sessionID string, profile Profile, result ModuleResult) error
	SessionCompleted(result SessionResult, profile Profile) error
}

type State string

const (
	StateInModule    State = "in_module"
	StateAllComplete State = "all_complete"
)

// Session drives one user's pass through all screening modules: it sequences
// modules in fixed order, collects one response per question, scores each
// completed module and aggregates the final result.
type Session struct {
	ID        string
	Profile   Profile
	Level     int
	StartedAt time.Time

	mu        sync.Mutex
	order     []ModuleType
	moduleIdx int
	responses []Response
	results   []ModuleResult
	final     *SessionResult
	notifier  Notifier
}

// NewSession creates a session positioned at the first question of the first module.
func NewSession(profile Profile, notifier Notifier) *Session {
	return &Session{
		ID:        uuid.NewString(),
		Profile:   profile,
		Level:     LevelFor(profile),
		StartedAt: time.Now(),
		order:     DefaultModuleOrder(),
		notifier:  notifier,
	}
}

// State reports whether the session is still inside a module or fully complete.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.final != nil {
		return StateAllComplete
	}
	return StateInModule
}

// CurrentModule returns the active module; ok is false once all modules completed.
func (s *Session) CurrentModule() (ModuleType, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.final != nil {
		return "", false
	}
	return s.order[s.moduleIdx], true
}

// CurrentQuestion returns the next unanswered question together with its index
// and the module's question count.
func (s *Session) CurrentQuestion() (Question, int, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.final != nil {
		return Question{}, 0, 0, ErrSessionComplete
	}
	questions := QuestionsFor(s.order[s.moduleIdx])
	idx := len(s.responses)
	return questions[idx], idx, len(questions), nil
}

// Progress reports the module position within the session.
func (s *Session) Progress() (moduleIdx, moduleCount int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.moduleIdx, len(s.order)
}

// Result returns the final session result once every module has completed.
func (s *Session) Result() (SessionResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.final == nil {
		return SessionResult{}, false
	}
	return *s.final, true
}

// AnswerOutcome describes what a submitted answer caused. ModuleResult is set
// when the answer completed the active module, SessionResult when it completed
// the whole session.
type AnswerOutcome struct {
	Response      Response
	ModuleResult  *ModuleResult
	SessionResult *SessionResult
}

// SubmitAnswer records one response. The module must be the active one and
// questionIndex must equal the number of responses already recorded for it;
// anything else is a contract violation from a miswired caller.
func (s *Session) SubmitAnswer(module ModuleType, questionIndex int, answer string, at time.Time) (AnswerOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.final != nil {
		return AnswerOutcome{}, ErrSessionComplete
	}

	current := s.order[s.moduleIdx]
	if module != current {
		return AnswerOutcome{}, ErrWrongModule
	}

	questions := QuestionsFor(current)
	if questionIndex != len(s.responses) {
		return AnswerOutcome{}, ErrOutOfOrder
	}

	q := questions[questionIndex]
	resp := Response{
		QuestionID:    q.ID,
		Answer:        answer,
		CorrectAnswer: q.CorrectAnswer,
		Correct:       answer == q.CorrectAnswer,
		AnsweredAt:    at,
	}
	s.responses = append(s.responses, resp)

	outcome := AnswerOutcome{Response: resp}
	if len(s.responses) < len(questions) {
		return outcome, nil
	}

	result := ModuleResult{
		Module:      current,
		Responses:   s.responses,
		Score:       ModuleScore(s.responses),
		Level:       s.Level,
		CompletedAt: at,
	}
	s.results = append(s.results, result)
	s.responses = nil
	s.moduleIdx++
	outcome.ModuleResult = &result
	s.notifyModule(result)

	if s.moduleIdx == len(s.order) {
		final := SessionResult{
			SessionID:    s.ID,
			UserID:       s.Profile.UserID,
			Results:      append([]ModuleResult(nil), s.results...),
			OverallScore: OverallScore(s.results),
			CompletedAt:  at,
		}
		s.final = &final
		outcome.SessionResult = &final
		s.notifySession(final)
	}

	return outcome, nil
}

func (s *Session) notifyModule(result ModuleResult) {
	if s.notifier == nil {
		return
	}
	go func() {
		if err := s.notifier.ModuleCompleted(s.ID, s.Profile, result); err != nil {
			log.Printf("[SCREENING] module result notification failed for session %s: %v", s.ID, err)
		}
	}()
}

func (s *Session) notifySession(result SessionResult) {
	if s.notifier == nil {
		return
	}
	go func() {
		if err := s.notifier.SessionCompleted(result, s.Profile); err != nil {
			log.Printf("[SCREENING] session result notification failed for session %s: %v", s.ID, err)
		}
	}()
}
