package module

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ModuleRepository interface {
	Create(m *Module) error
	FindByID(id uuid.UUID) (*Module, error)
	FindAll() ([]*Module, error)
	Update(m *Module) error
	Delete(id uuid.UUID) error
}

type moduleRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) ModuleRepository {
	return &moduleRepository{db: db}
}

func (r *moduleRepository) Create(m *Module) error {
	return r.db.Create(m).Error
}

func (r *moduleRepository) FindByID(id uuid.UUID) (*Module, error) {
	var m Module
	if err := r.db.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *moduleRepository) FindAll() ([]*Module, error) {
	var modules []*Module
	if err := r.db.Order("created_at DESC").Find(&modules).Error; err != nil {
		return nil, err
	}
	return modules, nil
}

func (r *moduleRepository) Update(m *Module) error {
	return r.db.Save(m).Error
}

func (r *moduleRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&Module{}, "id = ?", id).Error
}
