package library

import "gorm.io/gorm"

type LibraryContainer struct {
	Repo    BookRepository
	Service LibraryService
	Handler *Handler
}

func NewLibraryContainer(db *gorm.DB) *LibraryContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &LibraryContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
