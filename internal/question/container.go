package question

import (
	"github.com/estudai/estudai-api/internal/topic"
	"gorm.io/gorm"
)

type QuestionContainer struct {
	Repo    QuestionRepository
	Service QuestionService
	Handler *Handler
}

func NewQuestionContainer(db *gorm.DB, topicService topic.TopicService) *QuestionContainer {
	repo := NewRepository(db)
	service := NewService(repo, topicService)
	handler := NewHandler(service)

	return &QuestionContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
