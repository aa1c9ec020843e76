package response

import (
	"safari-booking/internal/data/entity"
)

type ProviderResponse struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	CompanyName string `json:"company_name"`
	LicenceNo   string `json:"licence_no"`
	Address     string `json:"address"`
	Status      string `json:"status"`
}

func ProviderToResponse(provider *entity.Provider) ProviderResponse {
	return ProviderResponse{
		ID:          provider.ID,
		UserID:      provider.UserID,
		CompanyName: provider.CompanyName,
		LicenceNo:   provider.LicenceNo,
		Address:     provider.Address,
		Status:      provider.Status,
	}
}
