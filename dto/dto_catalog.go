package dto

type CompanyRequest struct {
	Name string `json:"name" validate:"required"`
}

type ProgramRequest struct {
	Name           string   `json:"name" validate:"required"`
	Description    string   `json:"description"`
	PassPercentage *float64 `json:"pass_percentage" validate:"omitempty,gte=0,lte=100"`
}

type ProgramUpdate struct {
	Name           *string  `json:"name" validate:"omitempty,min=1"`
	Description    *string  `json:"description"`
	PassPercentage *float64 `json:"pass_percentage" validate:"omitempty,gte=0,lte=100"`
}
