package request

type ProviderRequest struct {
	CompanyName string `json:"company_name" validate:"required,max=100"`
	LicenceNo   string `json:"licence_no" validate:"required,max=100"`
	Address     string `json:"address" validate:"required,max=255"`
	Status      string `json:"status" validate:"omitempty,max=50"`
}
