package exam

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExamRepository interface {
	Create(e *Exam) error
	FindByID(id uuid.UUID) (*Exam, error)
	ListPublished() ([]*Exam, error)
	ListAll() ([]*Exam, error)
	Update(e *Exam) error
	Delete(id uuid.UUID) error
}

type examRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) ExamRepository {
	return &examRepository{db: db}
}

func (r *examRepository) Create(e *Exam) error {
	return r.db.Create(e).Error
}

func (r *examRepository) FindByID(id uuid.UUID) (*Exam, error) {
	var e Exam
	if err := r.db.First(&e, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *examRepository) ListPublished() ([]*Exam, error) {
	var exams []*Exam
	if err := r.db.
		Where("status = ?", ExamStatusPublished).
		Order("created_at DESC").
		Find(&exams).Error; err != nil {
		return nil, err
	}
	return exams, nil
}

func (r *examRepository) ListAll() ([]*Exam, error) {
	var exams []*Exam
	if err := r.db.Order("created_at DESC").Find(&exams).Error; err != nil {
		return nil, err
	}
	return exams, nil
}

func (r *examRepository) Update(e *Exam) error {
	return r.db.Save(e).Error
}

func (r *examRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&Exam{}, "id = ?", id).Error
}
