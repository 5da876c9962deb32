package question

type CreateQuestionDTO struct {
	TopicID       string     `json:"topic_id" validate:"required,uuid"`
	Content       string     `json:"content" validate:"required"`
	Options       []string   `json:"options" validate:"required,min=2"`
	CorrectOption string     `json:"correct_option" validate:"required"`
	Explanation   *string    `json:"explanation"`
	Difficulty    Difficulty `json:"difficulty"`
}

type UpdateQuestionDTO struct {
	Content       *string         `json:"content"`
	Options       []string        `json:"options"`
	CorrectOption *string         `json:"correct_option"`
	Explanation   *string         `json:"explanation"`
	Difficulty    *Difficulty     `json:"difficulty"`
	Status        *QuestionStatus `json:"status"`
}
