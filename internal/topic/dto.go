package topic

type CreateTopicDTO struct {
	SubjectID   string `json:"subject_id" validate:"required,uuid"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type UpdateTopicDTO struct {
	Name        *string      `json:"name"`
	Description *string      `json:"description"`
	Status      *TopicStatus `json:"status"`
}
