package question

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(q *Question) error
	FindByID(id uuid.UUID) (*Question, error)
	ListByTopic(topicID uuid.UUID) ([]*Question, error)
	Update(q *Question) error
	Delete(id uuid.UUID) error

	// ListActiveByTopicIDs materializa o pool de questões para o qbank:
	// questões ativas dos tópicos resolvidos, filtradas por dificuldade,
	// mais recentes primeiro, truncadas em limit sobre o conjunto inteiro.
	ListActiveByTopicIDs(topicIDs []uuid.UUID, difficulties []Difficulty, limit int) ([]*Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(q *Question) error {
	return r.db.Create(q).Error
}

func (r *questionRepository) FindByID(id uuid.UUID) (*Question, error) {
	var q Question
	if err := r.db.First(&q, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &q, nil
}

func (r *questionRepository) ListByTopic(topicID uuid.UUID) ([]*Question, error) {
	var questions []*Question
	if err := r.db.
		Where("topic_id = ?", topicID).
		Order("created_at DESC").
		Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) Update(q *Question) error {
	return r.db.Save(q).Error
}

func (r *questionRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&Question{}, "id = ?", id).Error
}

func (r *questionRepository) ListActiveByTopicIDs(topicIDs []uuid.UUID, difficulties []Difficulty, limit int) ([]*Question, error) {
	if len(topicIDs) == 0 {
		return nil, nil
	}

	query := r.db.
		Where("topic_id IN ? AND status = ?", topicIDs, QuestionStatusActive).
		Order("created_at DESC")

	if len(difficulties) > 0 {
		query = query.Where("difficulty IN ?", difficulties)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var questions []*Question
	if err := query.Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}
