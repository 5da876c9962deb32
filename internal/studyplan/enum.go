package studyplan

type ContentType string

const (
	ContentTypeQuestionBank ContentType = "QUESTION_BANK"
	ContentTypeFlashcards   ContentType = "FLASHCARDS"
	ContentTypeEbooks       ContentType = "EBOOKS"
	ContentTypeExams        ContentType = "EXAMS"
)

// Ordem canônica do rodízio de conteúdo. A rotação é derivada só do plano,
// nunca da ordem de chegada das chamadas de geração.
var contentRotation = []ContentType{
	ContentTypeQuestionBank,
	ContentTypeFlashcards,
	ContentTypeEbooks,
	ContentTypeExams,
}

func (c ContentType) IsValid() bool {
	for _, v := range contentRotation {
		if c == v {
			return true
		}
	}
	return false
}

type PlanStatus string

const (
	PlanStatusActive    PlanStatus = "ACTIVE"
	PlanStatusPaused    PlanStatus = "PAUSED"
	PlanStatusCompleted PlanStatus = "COMPLETED"
)

func (s PlanStatus) IsValid() bool {
	return s == PlanStatusActive || s == PlanStatusPaused || s == PlanStatusCompleted
}

type SessionStatus string

const (
	SessionStatusPending    SessionStatus = "PENDING"
	SessionStatusInProgress SessionStatus = "IN_PROGRESS"
	SessionStatusCompleted  SessionStatus = "COMPLETED"
)

func (s SessionStatus) IsValid() bool {
	return s == SessionStatusPending || s == SessionStatusInProgress || s == SessionStatusCompleted
}

// rank ordena os status de sessão: transições nunca regridem.
func (s SessionStatus) rank() int {
	switch s {
	case SessionStatusPending:
		return 0
	case SessionStatusInProgress:
		return 1
	case SessionStatusCompleted:
		return 2
	default:
		return -1
	}
}

type SelectionMode string

const (
	SelectionModeStudy SelectionMode = "STUDY"
	SelectionModeExam  SelectionMode = "EXAM"
)

func (m SelectionMode) IsValid() bool {
	return m == SelectionModeStudy || m == SelectionModeExam
}
