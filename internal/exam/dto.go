package exam

type CreateExamDTO struct {
	Title           string   `json:"title" validate:"required"`
	Description     string   `json:"description"`
	ModuleID        *string  `json:"module_id" validate:"omitempty,uuid"`
	QuestionIDs     []string `json:"question_ids" validate:"dive,uuid"`
	DurationMinutes int      `json:"duration_minutes" validate:"gte=0"`
}

type UpdateExamDTO struct {
	Title           *string     `json:"title"`
	Description     *string     `json:"description"`
	QuestionIDs     []string    `json:"question_ids" validate:"omitempty,dive,uuid"`
	DurationMinutes *int        `json:"duration_minutes"`
	Status          *ExamStatus `json:"status"`
}
