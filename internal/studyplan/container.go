package studyplan

import (
	"github.com/estudai/estudai-api/internal/question"
	"github.com/estudai/estudai-api/internal/topic"
	"gorm.io/gorm"
)

type StudyPlanContainer struct {
	Repo      PlanRepository
	Assembler *Assembler
	Service   PlanService
	Handler   *Handler
}

func NewStudyPlanContainer(db *gorm.DB, topicRepo topic.TopicRepository, questionRepo question.QuestionRepository) *StudyPlanContainer {
	repo := NewRepository(db)
	assembler := NewAssembler(topicRepo, questionRepo)
	service := NewService(db, repo, assembler)
	handler := NewHandler(service)

	return &StudyPlanContainer{
		Repo:      repo,
		Assembler: assembler,
		Service:   service,
		Handler:   handler,
	}
}
