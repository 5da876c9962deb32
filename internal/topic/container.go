package topic

import (
	"github.com/estudai/estudai-api/internal/subject"
	"gorm.io/gorm"
)

type TopicContainer struct {
	Repo    TopicRepository
	Service TopicService
	Handler *Handler
}

func NewTopicContainer(db *gorm.DB, subjectService subject.SubjectService) *TopicContainer {
	repo := NewRepository(db)
	service := NewService(repo, subjectService)
	handler := NewHandler(service)

	return &TopicContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
