package studyplan

import (
	"time"

	"github.com/estudai/estudai-api/internal/question"
	"github.com/google/uuid"
)

type StudyPlan struct {
	ID                  uuid.UUID             `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	StudentID           uuid.UUID             `gorm:"type:uuid;not null;index" json:"student_id"`
	Name                string                `gorm:"type:text;not null" json:"name"`
	StartDate           DateOnly              `gorm:"type:date;not null" json:"start_date"`
	EndDate             DateOnly              `gorm:"type:date;not null" json:"end_date"`
	StudyDays           []string              `gorm:"serializer:json" json:"study_days"`
	DailyTimeMinutes    int                   `gorm:"not null;default:0" json:"daily_time_minutes"`
	MaxQuestionsPerDay  int                   `gorm:"not null;default:20" json:"max_questions_per_day"`
	MaxFlashcardsPerDay int                   `gorm:"not null;default:20" json:"max_flashcards_per_day"`
	SelectionMode       SelectionMode         `gorm:"type:text;not null;default:STUDY" json:"selection_mode"`
	Difficulties        []question.Difficulty `gorm:"serializer:json" json:"difficulties"`
	Status              PlanStatus            `gorm:"type:text;not null;default:ACTIVE" json:"status"`
	Contents            []PlanContent         `gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE" json:"contents,omitempty"`
	CreatedAt           time.Time             `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time             `gorm:"autoUpdateTime" json:"updated_at"`
}

// PlanContent é o escopo de conteúdo de um tipo dentro do plano. Um plano tem
// no máximo uma linha por tipo; sessões referenciam a linha do seu tipo.
type PlanContent struct {
	ID          uuid.UUID   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	PlanID      uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex:idx_plan_content_type" json:"plan_id"`
	ContentType ContentType `gorm:"type:text;not null;uniqueIndex:idx_plan_content_type" json:"content_type"`
	ModuleIDs   []uuid.UUID `gorm:"serializer:json" json:"module_ids,omitempty"`
	SubjectIDs  []uuid.UUID `gorm:"serializer:json" json:"subject_ids,omitempty"`
	TopicIDs    []uuid.UUID `gorm:"serializer:json" json:"topic_ids,omitempty"`
	DeckIDs     []uuid.UUID `gorm:"serializer:json" json:"deck_ids,omitempty"`
	ExamIDs     []uuid.UUID `gorm:"serializer:json" json:"exam_ids,omitempty"`
	BookIDs     []uuid.UUID `gorm:"serializer:json" json:"book_ids,omitempty"`
	CreatedAt   time.Time   `gorm:"autoCreateTime" json:"created_at"`
}

// PlanSession é o dia de estudo persistido. O índice único em
// (plan_id, session_date, content_type) fecha a corrida entre duas chamadas
// concorrentes de geração: a segunda inserção do mesmo par falha no banco.
type PlanSession struct {
	ID                 uuid.UUID     `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	PlanID             uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_plan_date_type" json:"plan_id"`
	SessionDate        DateOnly      `gorm:"type:date;not null;uniqueIndex:idx_plan_date_type" json:"session_date"`
	ContentType        ContentType   `gorm:"type:text;not null;uniqueIndex:idx_plan_date_type" json:"content_type"`
	ContentID          uuid.UUID     `gorm:"type:uuid;not null" json:"content_id"`
	QuestionsAttempted int           `gorm:"not null;default:0" json:"questions_attempted"`
	QuestionsCorrect   int           `gorm:"not null;default:0" json:"questions_correct"`
	FlashcardsStudied  int           `gorm:"not null;default:0" json:"flashcards_studied"`
	FlashcardsCorrect  int           `gorm:"not null;default:0" json:"flashcards_correct"`
	TimeSpentMinutes   int           `gorm:"not null;default:0" json:"time_spent_minutes"`
	Status             SessionStatus `gorm:"type:text;not null;default:PENDING" json:"status"`
	CreatedAt          time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
}

// QbankQuestion é uma entrada imutável do snapshot de questões de uma sessão.
// O texto da opção correta é congelado na montagem: edições posteriores da
// questão não mudam um quiz já atribuído.
type QbankQuestion struct {
	ID             uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	SessionID      uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_session_question" json:"session_id"`
	QuestionID     uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_session_question" json:"question_id"`
	CorrectOption  string     `gorm:"type:text;not null" json:"-"`
	Answered       bool       `gorm:"not null;default:false" json:"answered"`
	AnsweredOption *string    `gorm:"type:text" json:"answered_option,omitempty"`
	Correct        *bool      `json:"correct,omitempty"`
	AnsweredAt     *time.Time `json:"answered_at,omitempty"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
}
