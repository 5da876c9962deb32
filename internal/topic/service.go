package topic

import (
	"context"
	"errors"

	"github.com/estudai/estudai-api/internal/config"
	"github.com/estudai/estudai-api/internal/subject"
	"github.com/google/uuid"
)

var (
	ErrTopicNotFound   = errors.New("topic not found")
	ErrSubjectNotFound = subject.ErrSubjectNotFound
	ErrInvalidID       = errors.New("invalid id format")
	ErrInvalidStatus   = errors.New("invalid topic status")
)

type TopicService interface {
	CreateTopic(ctx context.Context, dto CreateTopicDTO) (*Topic, error)
	GetTopicByID(ctx context.Context, id string) (*Topic, error)
	ListBySubject(ctx context.Context, subjectID string) ([]*Topic, error)
	UpdateTopic(ctx context.Context, id string, dto UpdateTopicDTO) (*Topic, error)
	DeleteTopic(ctx context.Context, id string) error
}

type topicService struct {
	repo           TopicRepository
	subjectService subject.SubjectService
}

func NewService(repo TopicRepository, subjectService subject.SubjectService) TopicService {
	return &topicService{repo: repo, subjectService: subjectService}
}

func (s *topicService) CreateTopic(ctx context.Context, dto CreateTopicDTO) (*Topic, error) {
	log := config.WithContext(ctx)

	subj, err := s.subjectService.GetSubjectByID(ctx, dto.SubjectID)
	if err != nil {
		return nil, err
	}

	t := &Topic{
		ID:          uuid.New(),
		SubjectID:   subj.ID,
		ModuleID:    subj.ModuleID,
		Name:        dto.Name,
		Description: dto.Description,
		Status:      TopicStatusActive,
	}

	if err := s.repo.Create(t); err != nil {
		log.WithError(err).Error("Erro ao criar tópico")
		return nil, err
	}

	log.WithField("topic_id", t.ID.String()).Info("Tópico criado com sucesso")
	return t, nil
}

func (s *topicService) GetTopicByID(ctx context.Context, id string) (*Topic, error) {
	topicID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	t, err := s.repo.FindByID(topicID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Erro ao buscar tópico")
		return nil, err
	}
	if t == nil {
		return nil, ErrTopicNotFound
	}
	return t, nil
}

func (s *topicService) ListBySubject(ctx context.Context, subjectID string) ([]*Topic, error) {
	log := config.WithContext(ctx)

	subj, err := s.subjectService.GetSubjectByID(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	topics, err := s.repo.ListBySubject(subj.ID)
	if err != nil {
		log.WithError(err).Error("Erro ao listar tópicos do subject")
		return nil, err
	}
	return topics, nil
}

func (s *topicService) UpdateTopic(ctx context.Context, id string, dto UpdateTopicDTO) (*Topic, error) {
	log := config.WithContext(ctx)

	existing, err := s.GetTopicByID(ctx, id)
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
		log.WithError(err).Error("Erro ao atualizar tópico")
		return nil, err
	}
	return existing, nil
}

func (s *topicService) DeleteTopic(ctx context.Context, id string) error {
	log := config.WithContext(ctx)

	existing, err := s.GetTopicByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(existing.ID); err != nil {
		log.WithError(err).Error("Erro ao remover tópico")
		return err
	}

	log.WithField("topic_id", id).Info("Tópico removido com sucesso")
	return nil
}
