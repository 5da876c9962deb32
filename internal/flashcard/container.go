package flashcard

import "gorm.io/gorm"

type FlashcardContainer struct {
	Repo    FlashcardRepository
	Service FlashcardService
	Handler *Handler
}

func NewFlashcardContainer(db *gorm.DB) *FlashcardContainer {
	repo := NewRepository(db)
	service := NewService(db, repo)
	handler := NewHandler(service)

	return &FlashcardContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
