package dto

type CreateSkillRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Category string `json:"category" validate:"max=100"`
}
