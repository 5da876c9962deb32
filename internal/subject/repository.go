package subject

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubjectRepository interface {
	Create(s *Subject) error
	FindByID(id uuid.UUID) (*Subject, error)
	ListByModule(moduleID uuid.UUID) ([]*Subject, error)
	Update(s *Subject) error
	Delete(id uuid.UUID) error
}

type subjectRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) SubjectRepository {
	return &subjectRepository{db: db}
}

func (r *subjectRepository) Create(s *Subject) error {
	return r.db.Create(s).Error
}

func (r *subjectRepository) FindByID(id uuid.UUID) (*Subject, error) {
	var s Subject
	if err := r.db.First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *subjectRepository) ListByModule(moduleID uuid.UUID) ([]*Subject, error) {
	var subjects []*Subject
	if err := r.db.
		Where("module_id = ?", moduleID).
		Order("position ASC, created_at ASC").
		Find(&subjects).Error; err != nil {
		return nil, err
	}
	return subjects, nil
}

func (r *subjectRepository) Update(s *Subject) error {
	return r.db.Save(s).Error
}

func (r *subjectRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&Subject{}, "id = ?", id).Error
}
