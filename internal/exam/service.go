package exam

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/estudai/estudai-api/internal/auth"
	"github.com/estudai/estudai-api/internal/config"
	"github.com/estudai/estudai-api/internal/question"
	"github.com/estudai/estudai-api/internal/user"
	"github.com/google/uuid"
)

var (
	ErrExamNotFound    = errors.New("exam not found")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrInvalidID       = errors.New("invalid id format")
	ErrInvalidStatus   = errors.New("invalid exam status")
	ErrUnknownQuestion = errors.New("exam references an unknown question")
)

type ExamService interface {
	CreateExam(ctx context.Context, dto CreateExamDTO) (*Exam, error)
	GetExamByID(ctx context.Context, id string) (*Exam, error)
	ListExams(ctx context.Context) ([]*Exam, error)
	UpdateExam(ctx context.Context, id string, dto UpdateExamDTO) (*Exam, error)
	DeleteExam(ctx context.Context, id string) error
}

type examService struct {
	repo        ExamRepository
	questionSvc question.QuestionService
}

func NewService(repo ExamRepository, questionSvc question.QuestionService) ExamService {
	return &examService{repo: repo, questionSvc: questionSvc}
}

func (s *examService) validateQuestions(ctx context.Context, ids []string) ([]uuid.UUID, error) {
	parsed := make([]uuid.UUID, 0, len(ids))
	for _, raw := range ids {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, ErrInvalidID
		}
		q, err := s.questionSvc.GetQuestionByID(ctx, raw)
		if err != nil {
			if errors.Is(err, question.ErrQuestionNotFound) {
				return nil, ErrUnknownQuestion
			}
			return nil, err
		}
		if q == nil {
			return nil, ErrUnknownQuestion
		}
		parsed = append(parsed, id)
	}
	return parsed, nil
}

func (s *examService) CreateExam(ctx context.Context, dto CreateExamDTO) (*Exam, error) {
	log := config.WithContext(ctx)

	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}

	questionIDs, err := s.validateQuestions(ctx, dto.QuestionIDs)
	if err != nil {
		return nil, err
	}

	rawIDs, err := json.Marshal(questionIDs)
	if err != nil {
		return nil, err
	}

	e := &Exam{
		ID:              uuid.New(),
		Title:           dto.Title,
		Description:     dto.Description,
		QuestionIDs:     rawIDs,
		DurationMinutes: dto.DurationMinutes,
		Status:          ExamStatusDraft,
		CreatedBy:       uuid.MustParse(claims.UserID),
	}
	if dto.ModuleID != nil {
		moduleID, err := uuid.Parse(*dto.ModuleID)
		if err != nil {
			return nil, ErrInvalidID
		}
		e.ModuleID = &moduleID
	}

	if err := s.repo.Create(e); err != nil {
		log.WithError(err).Error("Erro ao criar simulado")
		return nil, err
	}

	log.WithField("exam_id", e.ID.String()).Info("Simulado criado com sucesso")
	return e, nil
}

func (s *examService) GetExamByID(ctx context.Context, id string) (*Exam, error) {
	log := config.WithContext(ctx)

	examID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	e, err := s.repo.FindByID(examID)
	if err != nil {
		log.WithError(err).Error("Erro ao buscar simulado")
		return nil, err
	}
	if e == nil {
		return nil, ErrExamNotFound
	}
	return e, nil
}

func (s *examService) ListExams(ctx context.Context) ([]*Exam, error) {
	log := config.WithContext(ctx)

	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}

	// Alunos só enxergam simulados publicados.
	if claims.Role == string(user.RoleStudent) {
		exams, err := s.repo.ListPublished()
		if err != nil {
			log.WithError(err).Error("Erro ao listar simulados publicados")
			return nil, err
		}
		return exams, nil
	}

	exams, err := s.repo.ListAll()
	if err != nil {
		log.WithError(err).Error("Erro ao listar simulados")
		return nil, err
	}
	return exams, nil
}

func (s *examService) UpdateExam(ctx context.Context, id string, dto UpdateExamDTO) (*Exam, error) {
	log := config.WithContext(ctx)

	existing, err := s.GetExamByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if dto.Title != nil && *dto.Title != "" {
		existing.Title = *dto.Title
	}
	if dto.Description != nil {
		existing.Description = *dto.Description
	}
	if dto.QuestionIDs != nil {
		questionIDs, err := s.validateQuestions(ctx, dto.QuestionIDs)
		if err != nil {
			return nil, err
		}
		rawIDs, err := json.Marshal(questionIDs)
		if err != nil {
			return nil, err
		}
		existing.QuestionIDs = rawIDs
	}
	if dto.DurationMinutes != nil && *dto.DurationMinutes >= 0 {
		existing.DurationMinutes = *dto.DurationMinutes
	}
	if dto.Status != nil {
		if !dto.Status.IsValid() {
			return nil, ErrInvalidStatus
		}
		existing.Status = *dto.Status
	}

	if err := s.repo.Update(existing); err != nil {
		log.WithError(err).Error("Erro ao atualizar simulado")
		return nil, err
	}

	log.WithField("exam_id", existing.ID.String()).Info("Simulado atualizado com sucesso")
	return existing, nil
}

func (s *examService) DeleteExam(ctx context.Context, id string) error {
	log := config.WithContext(ctx)

	existing, err := s.GetExamByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(existing.ID); err != nil {
		log.WithError(err).Error("Erro ao remover simulado")
		return err
	}

	log.WithField("exam_id", id).Info("Simulado removido com sucesso")
	return nil
}
