package library

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookRepository interface {
	Create(b *Book) error
	FindByID(id uuid.UUID) (*Book, error)
	ListActive() ([]*Book, error)
	ListByModule(moduleID uuid.UUID) ([]*Book, error)
	Update(b *Book) error
	Delete(id uuid.UUID) error
}

type bookRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) BookRepository {
	return &bookRepository{db: db}
}

func (r *bookRepository) Create(b *Book) error {
	return r.db.Create(b).Error
}

func (r *bookRepository) FindByID(id uuid.UUID) (*Book, error) {
	var b Book
	if err := r.db.First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (r *bookRepository) ListActive() ([]*Book, error) {
	var books []*Book
	if err := r.db.
		Where("status = ?", BookStatusActive).
		Order("title ASC").
		Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}

func (r *bookRepository) ListByModule(moduleID uuid.UUID) ([]*Book, error) {
	var books []*Book
	if err := r.db.
		Where("module_id = ? AND status = ?", moduleID, BookStatusActive).
		Order("title ASC").
		Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}

func (r *bookRepository) Update(b *Book) error {
	return r.db.Save(b).Error
}

func (r *bookRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&Book{}, "id = ?", id).Error
}
