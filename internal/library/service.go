package library

import (
	"context"
	"errors"

	"github.com/estudai/estudai-api/internal/auth"
	"github.com/estudai/estudai-api/internal/config"
	"github.com/google/uuid"
)

var (
	ErrBookNotFound  = errors.New("book not found")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrInvalidID     = errors.New("invalid id format")
	ErrInvalidStatus = errors.New("invalid book status")
)

type LibraryService interface {
	CreateBook(ctx context.Context, dto CreateBookDTO) (*Book, error)
	GetBookByID(ctx context.Context, id string) (*Book, error)
	ListBooks(ctx context.Context) ([]*Book, error)
	ListBooksByModule(ctx context.Context, moduleID string) ([]*Book, error)
	UpdateBook(ctx context.Context, id string, dto UpdateBookDTO) (*Book, error)
	DeleteBook(ctx context.Context, id string) error
}

type libraryService struct {
	repo BookRepository
}

func NewService(repo BookRepository) LibraryService {
	return &libraryService{repo: repo}
}

func (s *libraryService) CreateBook(ctx context.Context, dto CreateBookDTO) (*Book, error) {
	log := config.WithContext(ctx)

	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}

	b := &Book{
		ID:          uuid.New(),
		Title:       dto.Title,
		Author:      dto.Author,
		Description: dto.Description,
		FileURL:     dto.FileURL,
		Status:      BookStatusActive,
		CreatedBy:   uuid.MustParse(claims.UserID),
	}
	if dto.ModuleID != nil {
		moduleID, err := uuid.Parse(*dto.ModuleID)
		if err != nil {
			return nil, ErrInvalidID
		}
		b.ModuleID = &moduleID
	}

	if err := s.repo.Create(b); err != nil {
		log.WithError(err).Error("Erro ao cadastrar livro")
		return nil, err
	}

	log.WithField("book_id", b.ID.String()).Info("Livro cadastrado com sucesso")
	return b, nil
}

func (s *libraryService) GetBookByID(ctx context.Context, id string) (*Book, error) {
	log := config.WithContext(ctx)

	bookID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	b, err := s.repo.FindByID(bookID)
	if err != nil {
		log.WithError(err).Error("Erro ao buscar livro")
		return nil, err
	}
	if b == nil {
		return nil, ErrBookNotFound
	}
	return b, nil
}

func (s *libraryService) ListBooks(ctx context.Context) ([]*Book, error) {
	log := config.WithContext(ctx)

	books, err := s.repo.ListActive()
	if err != nil {
		log.WithError(err).Error("Erro ao listar livros")
		return nil, err
	}
	return books, nil
}

func (s *libraryService) ListBooksByModule(ctx context.Context, moduleID string) ([]*Book, error) {
	log := config.WithContext(ctx)

	id, err := uuid.Parse(moduleID)
	if err != nil {
		return nil, ErrInvalidID
	}

	books, err := s.repo.ListByModule(id)
	if err != nil {
		log.WithError(err).Error("Erro ao listar livros do módulo")
		return nil, err
	}
	return books, nil
}

func (s *libraryService) UpdateBook(ctx context.Context, id string, dto UpdateBookDTO) (*Book, error) {
	log := config.WithContext(ctx)

	existing, err := s.GetBookByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if dto.Title != nil && *dto.Title != "" {
		existing.Title = *dto.Title
	}
	if dto.Author != nil {
		existing.Author = *dto.Author
	}
	if dto.Description != nil {
		existing.Description = *dto.Description
	}
	if dto.FileURL != nil && *dto.FileURL != "" {
		existing.FileURL = *dto.FileURL
	}
	if dto.Status != nil {
		if !dto.Status.IsValid() {
			return nil, ErrInvalidStatus
		}
		existing.Status = *dto.Status
	}

	if err := s.repo.Update(existing); err != nil {
		log.WithError(err).Error("Erro ao atualizar livro")
		return nil, err
	}

	log.WithField("book_id", existing.ID.String()).Info("Livro atualizado com sucesso")
	return existing, nil
}

func (s *libraryService) DeleteBook(ctx context.Context, id string) error {
	log := config.WithContext(ctx)

	existing, err := s.GetBookByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(existing.ID); err != nil {
		log.WithError(err).Error("Erro ao remover livro")
		return err
	}

	log.WithField("book_id", id).Info("Livro removido com sucesso")
	return nil
}
