package library

type CreateBookDTO struct {
	Title       string  `json:"title" validate:"required"`
	Author      string  `json:"author"`
	Description string  `json:"description"`
	FileURL     string  `json:"file_url" validate:"required,url"`
	ModuleID    *string `json:"module_id" validate:"omitempty,uuid"`
}

type UpdateBookDTO struct {
	Title       *string     `json:"title"`
	Author      *string     `json:"author"`
	Description *string     `json:"description"`
	FileURL     *string     `json:"file_url" validate:"omitempty,url"`
	Status      *BookStatus `json:"status"`
}
