package screening

import "time"

// ModuleType identifies one screening sub-test.
type ModuleType string

const (
	ModulePeripheral  ModuleType = "peripheral"
	ModuleAcuity      ModuleType = "acuity"
	ModuleFocus       ModuleType = "focus"
	ModuleColor       ModuleType = "color"
	ModuleTracking    ModuleType = "tracking"
	ModuleContrast    ModuleType = "contrast"
	ModuleAstigmatism ModuleType = "astigmatism"
	ModuleNightVision ModuleType = "night_vision"
	ModuleDepth       ModuleType = "depth"
	ModuleEyeStrain   ModuleType = "eye_strain"
)

// DefaultModuleOrder returns the fixed order a session walks through.
func DefaultModuleOrder() []ModuleType {
	return []ModuleType{
		ModulePeripheral,
		ModuleAcuity,
		ModuleFocus,
		ModuleColor,
		ModuleTracking,
		ModuleContrast,
		ModuleAstigmatism,
		ModuleNightVision,
		ModuleDepth,
		ModuleEyeStrain,
	}
}

// IsValidModule reports whether m is one of the configured module types.
func IsValidModule(m ModuleType) bool {
	for _, mod := range DefaultModuleOrder() {
		if mod == m {
			return true
		}
	}
	return false
}

// ModuleName returns the display name for a module type.
func ModuleName(m ModuleType) string {
	names := map[ModuleType]string{
		ModulePeripheral:  "Peripheral Vision",
		ModuleAcuity:      "Visual Acuity",
		ModuleFocus:       "Focus Flexibility",
		ModuleColor:       "Color Perception",
		ModuleTracking:    "Eye Tracking",
		ModuleContrast:    "Contrast Sensitivity",
		ModuleAstigmatism: "Astigmatism Screening",
		ModuleNightVision: "Night Vision",
		ModuleDepth:       "Depth Perception",
		ModuleEyeStrain:   "Eye Strain Assessment",
	}
	if name, ok := names[m]; ok {
		return name
	}
	return string(m)
}

type QuestionKind string

const (
	KindMultipleChoice QuestionKind = "multiple_choice"
	KindSelfReport     QuestionKind = "self_report"
)

// Question is one item of a module's test. For self-report questions
// CorrectAnswer holds the designated baseline option.
type Question struct {
	ID            string       `json:"id"`
	Module        ModuleType   `json:"module"`
	Kind          QuestionKind `json:"kind"`
	Prompt        string       `json:"prompt"`
	Options       []string     `json:"options"`
	CorrectAnswer string       `json:"-"`
	Difficulty    int          `json:"difficulty"`
}

// Profile is the read-only snapshot of the registered user the session works with.
type Profile struct {
	UserID             uint     `json:"userId"`
	Name               string   `json:"name"`
	Email              string   `json:"email,omitempty"`
	Age                int      `json:"age"`
	Gender             string   `json:"gender"`
	UsesGlasses        bool     `json:"usesGlasses"`
	LensType           string   `json:"lensType,omitempty"`
	VisualDifficulties []string `json:"visualDifficulties"`
	HealthHistory      []string `json:"healthHistory"`
}

// Response records one submitted answer. Immutable once created.
type Response struct {
	QuestionID    string    `json:"questionId"`
	Answer        string    `json:"answer"`
	CorrectAnswer string    `json:"correctAnswer"`
	Correct       bool      `json:"correct"`
	AnsweredAt    time.Time `json:"answeredAt"`
}

// ModuleResult is the scored outcome of one fully answered module.
type ModuleResult struct {
	Module      ModuleType `json:"module"`
	Responses   []Response `json:"responses"`
	Score       int        `json:"score"`
	Level       int        `json:"level"`
	CompletedAt time.Time  `json:"completedAt"`
}

// SessionResult aggregates all module results of one completed session.
type SessionResult struct {
	SessionID    string         `json:"sessionId"`
	UserID       uint           `json:"userId"`
	Results      []ModuleResult `json:"results"`
	OverallScore int            `json:"overallScore"`
	CompletedAt  time.Time      `json:"completedAt"`
}

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Recommendation is one advisory derived from scores and profile.
type Recommendation struct {
	Title    string   `json:"title"`
	Message  string   `json:"message"`
	Priority Priority `json:"priority"`
}
