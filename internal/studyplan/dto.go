package studyplan

type PlanContentDTO struct {
	ContentType string   `json:"content_type" validate:"required,oneof=QUESTION_BANK FLASHCARDS EBOOKS EXAMS"`
	ModuleIDs   []string `json:"module_ids" validate:"omitempty,dive,uuid"`
	SubjectIDs  []string `json:"subject_ids" validate:"omitempty,dive,uuid"`
	TopicIDs    []string `json:"topic_ids" validate:"omitempty,dive,uuid"`
	DeckIDs     []string `json:"deck_ids" validate:"omitempty,dive,uuid"`
	ExamIDs     []string `json:"exam_ids" validate:"omitempty,dive,uuid"`
	BookIDs     []string `json:"book_ids" validate:"omitempty,dive,uuid"`
}

type CreatePlanDTO struct {
	Name                string           `json:"name" validate:"required"`
	StartDate           string           `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate             string           `json:"end_date" validate:"required,datetime=2006-01-02"`
	StudyDays           []string         `json:"study_days" validate:"required,min=1"`
	DailyTimeMinutes    int              `json:"daily_time_minutes" validate:"gte=0"`
	MaxQuestionsPerDay  int              `json:"max_questions_per_day" validate:"gte=0"`
	MaxFlashcardsPerDay int              `json:"max_flashcards_per_day" validate:"gte=0"`
	SelectionMode       string           `json:"selection_mode" validate:"omitempty,oneof=STUDY EXAM"`
	Difficulties        []string         `json:"difficulties" validate:"omitempty,dive,oneof=EASY MEDIUM HARD"`
	Contents            []PlanContentDTO `json:"contents" validate:"required,min=1,dive"`
}

type UpdatePlanDTO struct {
	Name                *string          `json:"name"`
	EndDate             *string          `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	StudyDays           []string         `json:"study_days" validate:"omitempty,min=1"`
	DailyTimeMinutes    *int             `json:"daily_time_minutes" validate:"omitempty,gte=0"`
	MaxQuestionsPerDay  *int             `json:"max_questions_per_day" validate:"omitempty,gte=0"`
	MaxFlashcardsPerDay *int             `json:"max_flashcards_per_day" validate:"omitempty,gte=0"`
	Status              *PlanStatus      `json:"status"`
	Contents            []PlanContentDTO `json:"contents" validate:"omitempty,dive"`
}

type GenerateResultDTO struct {
	PlanID          string `json:"plan_id"`
	SessionsCreated int    `json:"sessions_created"`
}

type AnswerQuestionDTO struct {
	QuestionID string `json:"question_id" validate:"required,uuid"`
	Option     string `json:"option" validate:"required"`
}

type AnswerResultDTO struct {
	QuestionID    string `json:"question_id"`
	Correct       bool   `json:"correct"`
	CorrectOption string `json:"correct_option"`
	AlreadySolved bool   `json:"already_solved"`
}

type UpdateSessionDTO struct {
	TimeSpentDelta         *int           `json:"time_spent_delta" validate:"omitempty,gte=0"`
	FlashcardsStudiedDelta *int           `json:"flashcards_studied_delta" validate:"omitempty,gte=0"`
	FlashcardsCorrectDelta *int           `json:"flashcards_correct_delta" validate:"omitempty,gte=0"`
	Status                 *SessionStatus `json:"status"`
}
