package topic

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TopicRepository interface {
	Create(t *Topic) error
	FindByID(id uuid.UUID) (*Topic, error)
	ListBySubject(subjectID uuid.UUID) ([]*Topic, error)
	Update(t *Topic) error
	Delete(id uuid.UUID) error

	// Resolução de escopo usada pelo montador de qbank: apenas tópicos ativos.
	ListIDsBySubjectIDs(subjectIDs []uuid.UUID) ([]uuid.UUID, error)
	ListIDsByModuleIDs(moduleIDs []uuid.UUID) ([]uuid.UUID, error)
}

type topicRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) TopicRepository {
	return &topicRepository{db: db}
}

func (r *topicRepository) Create(t *Topic) error {
	return r.db.Create(t).Error
}

func (r *topicRepository) FindByID(id uuid.UUID) (*Topic, error) {
	var t Topic
	if err := r.db.First(&t, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *topicRepository) ListBySubject(subjectID uuid.UUID) ([]*Topic, error) {
	var topics []*Topic
	if err := r.db.
		Where("subject_id = ?", subjectID).
		Order("created_at ASC").
		Find(&topics).Error; err != nil {
		return nil, err
	}
	return topics, nil
}

func (r *topicRepository) Update(t *Topic) error {
	return r.db.Save(t).Error
}

func (r *topicRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&Topic{}, "id = ?", id).Error
}

func (r *topicRepository) ListIDsBySubjectIDs(subjectIDs []uuid.UUID) ([]uuid.UUID, error) {
	if len(subjectIDs) == 0 {
		return nil, nil
	}
	var ids []uuid.UUID
	if err := r.db.Model(&Topic{}).
		Where("subject_id IN ? AND status = ?", subjectIDs, TopicStatusActive).
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *topicRepository) ListIDsByModuleIDs(moduleIDs []uuid.UUID) ([]uuid.UUID, error) {
	if len(moduleIDs) == 0 {
		return nil, nil
	}
	var ids []uuid.UUID
	if err := r.db.Model(&Topic{}).
		Where("module_id IN ? AND status = ?", moduleIDs, TopicStatusActive).
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
