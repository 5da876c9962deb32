package module

import (
	"context"
	"errors"

	"github.com/estudai/estudai-api/internal/auth"
	"github.com/estudai/estudai-api/internal/config"
	"github.com/google/uuid"
)

var (
	ErrModuleNotFound = errors.New("module not found")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrInvalidID      = errors.New("invalid id format")
	ErrInvalidStatus  = errors.New("invalid module status")
)

type ModuleService interface {
	CreateModule(ctx context.Context, dto CreateModuleDTO) (*Module, error)
	GetModuleByID(ctx context.Context, id string) (*Module, error)
	ListModules(ctx context.Context) ([]*Module, error)
	UpdateModule(ctx context.Context, id string, dto UpdateModuleDTO) (*Module, error)
	DeleteModule(ctx context.Context, id string) error
}

type moduleService struct {
	repo ModuleRepository
}

func NewService(repo ModuleRepository) ModuleService {
	return &moduleService{repo: repo}
}

func (s *moduleService) CreateModule(ctx context.Context, dto CreateModuleDTO) (*Module, error) {
	log := config.WithContext(ctx)

	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}

	m := &Module{
		ID:          uuid.New(),
		Name:        dto.Name,
		Description: dto.Description,
		Status:      ModuleStatusActive,
		CreatedBy:   uuid.MustParse(claims.UserID),
	}

	if err := s.repo.Create(m); err != nil {
		log.WithError(err).Error("Erro ao criar módulo")
		return nil, err
	}

	log.WithField("module_id", m.ID.String()).Info("Módulo criado com sucesso")
	return m, nil
}

func (s *moduleService) GetModuleByID(ctx context.Context, id string) (*Module, error) {
	log := config.WithContext(ctx)

	moduleID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	m, err := s.repo.FindByID(moduleID)
	if err != nil {
		log.WithError(err).Error("Erro ao buscar módulo")
		return nil, err
	}
	if m == nil {
		return nil, ErrModuleNotFound
	}
	return m, nil
}

func (s *moduleService) ListModules(ctx context.Context) ([]*Module, error) {
	log := config.WithContext(ctx)

	modules, err := s.repo.FindAll()
	if err != nil {
		log.WithError(err).Error("Erro ao listar módulos")
		return nil, err
	}
	return modules, nil
}

func (s *moduleService) UpdateModule(ctx context.Context, id string, dto UpdateModuleDTO) (*Module, error) {
	log := config.WithContext(ctx)

	existing, err := s.GetModuleByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if dto.Name != nil && *dto.Name != "" {
		existing.Name = *dto.Name
	}
	if dto.Description != nil {
		existing.Description = *dto.Description
	}
	if dto.Status != nil {
		if !dto.Status.IsValid() {
			return nil, ErrInvalidStatus
		}
		existing.Status = *dto.Status
	}

	if err := s.repo.Update(existing); err != nil {
		log.WithError(err).Error("Erro ao atualizar módulo")
		return nil, err
	}

	log.WithField("module_id", existing.ID.String()).Info("Módulo atualizado com sucesso")
	return existing, nil
}

func (s *moduleService) DeleteModule(ctx context.Context, id string) error {
	log := config.WithContext(ctx)

	existing, err := s.GetModuleByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(existing.ID); err != nil {
		log.WithError(err).Error("Erro ao remover módulo")
		return err
	}

	log.WithField("module_id", id).Info("Módulo removido com sucesso")
	return nil
}
