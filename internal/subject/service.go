package subject

import (
	"context"
	"errors"

	"github.com/estudai/estudai-api/internal/config"
	"github.com/estudai/estudai-api/internal/module"
	"github.com/google/uuid"
)

var (
	ErrSubjectNotFound = errors.New("subject not found")
	ErrModuleNotFound  = module.ErrModuleNotFound
	ErrInvalidID       = errors.New("invalid id format")
)

type SubjectService interface {
	CreateSubject(ctx context.Context, dto CreateSubjectDTO) (*Subject, error)
	GetSubjectByID(ctx context.Context, id string) (*Subject, error)
	ListByModule(ctx context.Context, moduleID string) ([]*Subject, error)
	UpdateSubject(ctx context.Context, id string, dto UpdateSubjectDTO) (*Subject, error)
	DeleteSubject(ctx context.Context, id string) error
}

type subjectService struct {
	repo          SubjectRepository
	moduleService module.ModuleService
}

func NewService(repo SubjectRepository, moduleService module.ModuleService) SubjectService {
	return &subjectService{repo: repo, moduleService: moduleService}
}

func (s *subjectService) CreateSubject(ctx context.Context, dto CreateSubjectDTO) (*Subject, error) {
	log := config.WithContext(ctx)

	if _, err := s.moduleService.GetModuleByID(ctx, dto.ModuleID); err != nil {
		return nil, err
	}

	subj := &Subject{
		ID:          uuid.New(),
		ModuleID:    uuid.MustParse(dto.ModuleID),
		Name:        dto.Name,
		Description: dto.Description,
		Position:    dto.Position,
	}

	if err := s.repo.Create(subj); err != nil {
		log.WithError(err).Error("Erro ao criar subject")
		return nil, err
	}

	log.WithField("subject_id", subj.ID.String()).Info("Subject criado com sucesso")
	return subj, nil
}

func (s *subjectService) GetSubjectByID(ctx context.Context, id string) (*Subject, error) {
	subjectID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	subj, err := s.repo.FindByID(subjectID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Erro ao buscar subject")
		return nil, err
	}
	if subj == nil {
		return nil, ErrSubjectNotFound
	}
	return subj, nil
}

func (s *subjectService) ListByModule(ctx context.Context, moduleID string) ([]*Subject, error) {
	log := config.WithContext(ctx)

	if _, err := s.moduleService.GetModuleByID(ctx, moduleID); err != nil {
		return nil, err
	}

	subjects, err := s.repo.ListByModule(uuid.MustParse(moduleID))
	if err != nil {
		log.WithError(err).Error("Erro ao listar subjects do módulo")
		return nil, err
	}
	return subjects, nil
}

func (s *subjectService) UpdateSubject(ctx context.Context, id string, dto UpdateSubjectDTO) (*Subject, error) {
	log := config.WithContext(ctx)

	existing, err := s.GetSubjectByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if dto.Name != nil && *dto.Name != "" {
		existing.Name = *dto.Name
	}
	if dto.Description != nil {
		existing.Description = *dto.Description
	}
	if dto.Position != nil {
		existing.Position = *dto.Position
	}

	if err := s.repo.Update(existing); err != nil {
		log.WithError(err).Error("Erro ao atualizar subject")
		return nil, err
	}
	return existing, nil
}

func (s *subjectService) DeleteSubject(ctx context.Context, id string) error {
	log := config.WithContext(ctx)

	existing, err := s.GetSubjectByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(existing.ID); err != nil {
		log.WithError(err).Error("Erro ao remover subject")
		return err
	}

	log.WithField("subject_id", id).Info("Subject removido com sucesso")
	return nil
}
