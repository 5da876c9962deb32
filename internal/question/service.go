package question

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/estudai/estudai-api/internal/auth"
	"github.com/estudai/estudai-api/internal/config"
	"github.com/estudai/estudai-api/internal/topic"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

var (
	ErrQuestionNotFound  = errors.New("question not found")
	ErrTopicNotFound     = topic.ErrTopicNotFound
	ErrUnauthorized      = errors.New("unauthorized")
	ErrInvalidID         = errors.New("invalid id format")
	ErrInvalidDifficulty = errors.New("invalid difficulty level")
	ErrCorrectNotOption  = errors.New("correct option must be one of the options")
)

type QuestionService interface {
	CreateQuestion(ctx context.Context, dto CreateQuestionDTO) (*Question, error)
	GetQuestionByID(ctx context.Context, id string) (*Question, error)
	ListByTopic(ctx context.Context, topicID string) ([]*Question, error)
	UpdateQuestion(ctx context.Context, id string, dto UpdateQuestionDTO) (*Question, error)
	DeleteQuestion(ctx context.Context, id string) error
}

type questionService struct {
	repo         QuestionRepository
	topicService topic.TopicService
}

func NewService(repo QuestionRepository, topicService topic.TopicService) QuestionService {
	return &questionService{repo: repo, topicService: topicService}
}

func containsOption(options []string, candidate string) bool {
	for _, o := range options {
		if o == candidate {
			return true
		}
	}
	return false
}

func (s *questionService) CreateQuestion(ctx context.Context, dto CreateQuestionDTO) (*Question, error) {
	log := config.WithContext(ctx)

	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}

	t, err := s.topicService.GetTopicByID(ctx, dto.TopicID)
	if err != nil {
		return nil, err
	}

	difficulty := dto.Difficulty
	if difficulty == "" {
		difficulty = DifficultyMedium
	}
	if !difficulty.IsValid() {
		return nil, ErrInvalidDifficulty
	}

	if !containsOption(dto.Options, dto.CorrectOption) {
		return nil, ErrCorrectNotOption
	}

	rawOptions, err := json.Marshal(dto.Options)
	if err != nil {
		return nil, err
	}

	q := &Question{
		ID:            uuid.New(),
		TopicID:       t.ID,
		Content:       dto.Content,
		Options:       datatypes.JSON(rawOptions),
		CorrectOption: dto.CorrectOption,
		Explanation:   dto.Explanation,
		Difficulty:    difficulty,
		Status:        QuestionStatusActive,
		CreatedBy:     uuid.MustParse(claims.UserID),
	}

	if err := s.repo.Create(q); err != nil {
		log.WithError(err).Error("Erro ao criar questão")
		return nil, err
	}

	log.WithField("question_id", q.ID.String()).Info("Questão criada com sucesso")
	return q, nil
}

func (s *questionService) GetQuestionByID(ctx context.Context, id string) (*Question, error) {
	questionID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	q, err := s.repo.FindByID(questionID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Erro ao buscar questão")
		return nil, err
	}
	if q == nil {
		return nil, ErrQuestionNotFound
	}
	return q, nil
}

func (s *questionService) ListByTopic(ctx context.Context, topicID string) ([]*Question, error) {
	log := config.WithContext(ctx)

	t, err := s.topicService.GetTopicByID(ctx, topicID)
	if err != nil {
		return nil, err
	}

	questions, err := s.repo.ListByTopic(t.ID)
	if err != nil {
		log.WithError(err).Error("Erro ao listar questões do tópico")
		return nil, err
	}
	return questions, nil
}

func (s *questionService) UpdateQuestion(ctx context.Context, id string, dto UpdateQuestionDTO) (*Question, error) {
	log := config.WithContext(ctx)

	existing, err := s.GetQuestionByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if dto.Content != nil && *dto.Content != "" {
		existing.Content = *dto.Content
	}
	if dto.Options != nil {
		rawOptions, err := json.Marshal(dto.Options)
		if err != nil {
			return nil, err
		}
		existing.Options = datatypes.JSON(rawOptions)
	}
	if dto.CorrectOption != nil {
		var options []string
		if err := json.Unmarshal(existing.Options, &options); err != nil {
			return nil, err
		}
		if !containsOption(options, *dto.CorrectOption) {
			return nil, ErrCorrectNotOption
		}
		existing.CorrectOption = *dto.CorrectOption
	}
	if dto.Explanation != nil {
		existing.Explanation = dto.Explanation
	}
	if dto.Difficulty != nil {
		if !dto.Difficulty.IsValid() {
			return nil, ErrInvalidDifficulty
		}
		existing.Difficulty = *dto.Difficulty
	}
	if dto.Status != nil && dto.Status.IsValid() {
		existing.Status = *dto.Status
	}

	if err := s.repo.Update(existing); err != nil {
		log.WithError(err).Error("Erro ao atualizar questão")
		return nil, err
	}

	log.WithField("question_id", existing.ID.String()).Info("Questão atualizada com sucesso")
	return existing, nil
}

func (s *questionService) DeleteQuestion(ctx context.Context, id string) error {
	log := config.WithContext(ctx)

	existing, err := s.GetQuestionByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(existing.ID); err != nil {
		log.WithError(err).Error("Erro ao remover questão")
		return err
	}

	log.WithField("question_id", id).Info("Questão removida com sucesso")
	return nil
}
