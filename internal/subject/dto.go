package subject

type CreateSubjectDTO struct {
	ModuleID    string `json:"module_id" validate:"required,uuid"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Position    int    `json:"position"`
}

type UpdateSubjectDTO struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Position    *int    `json:"position"`
}
