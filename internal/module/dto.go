package module

type CreateModuleDTO struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type UpdateModuleDTO struct {
	Name        *string       `json:"name"`
	Description *string       `json:"description"`
	Status      *ModuleStatus `json:"status"`
}
