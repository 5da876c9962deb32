package exam

import (
	"github.com/estudai/estudai-api/internal/question"
	"gorm.io/gorm"
)

type ExamContainer struct {
	Repo    ExamRepository
	Service ExamService
	Handler *Handler
}

func NewExamContainer(db *gorm.DB, questionService question.QuestionService) *ExamContainer {
	repo := NewRepository(db)
	service := NewService(repo, questionService)
	handler := NewHandler(service)

	return &ExamContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
