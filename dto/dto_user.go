package dto

type UserFilter struct {
	Role      string `query:"role"`
	Search    string `query:"search"`
	CompanyID string `query:"company_id"`
}

type UserUpdate struct {
	Email       *string `json:"email" validate:"omitempty,email"`
	FullName    *string `json:"full_name" validate:"omitempty,min=1"`
	IDNumber    *string `json:"id_number" validate:"omitempty,min=1"`
	Role        *string `json:"role" validate:"omitempty,role"`
	CompanyID   *string `json:"company_id"`
	Location    *string `json:"location"`
	PhoneNumber *string `json:"phone_number"`
	IsActive    *bool   `json:"is_active"`
}

// PersonData describes a participant or supervisor created inline with a session.
type PersonData struct {
	Email       string `json:"email" validate:"omitempty,email"`
	Password    string `json:"password"`
	FullName    string `json:"full_name" validate:"required"`
	IDNumber    string `json:"id_number" validate:"required"`
	PhoneNumber string `json:"phone_number"`
}
