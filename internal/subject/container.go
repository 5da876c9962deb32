package subject

import (
	"github.com/estudai/estudai-api/internal/module"
	"gorm.io/gorm"
)

type SubjectContainer struct {
	Repo    SubjectRepository
	Service SubjectService
	Handler *Handler
}

func NewSubjectContainer(db *gorm.DB, moduleService module.ModuleService) *SubjectContainer {
	repo := NewRepository(db)
	service := NewService(repo, moduleService)
	handler := NewHandler(service)

	return &SubjectContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
