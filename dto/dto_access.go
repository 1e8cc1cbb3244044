package dto

type AccessUpdate struct {
	CanAccessPreTest    *bool `json:"can_access_pre_test"`
	CanAccessPostTest   *bool `json:"can_access_post_test"`
	CanAccessFeedback   *bool `json:"can_access_feedback"`
	CanAccessChecklist  *bool `json:"can_access_checklist"`
	CertificateReleased *bool `json:"certificate_released"`
}

type ToggleAccessRequest struct {
	AccessType string `json:"access_type" validate:"required"`
	Enabled    bool   `json:"enabled"`
}
