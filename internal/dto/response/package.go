package response

import (
	"safari-booking/internal/data/entity"
)

type PackageResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	GroupSizeMin int    `json:"group_size_min"`
	GroupSizeMax int    `json:"group_size_max"`
	Picture      string `json:"picture"`
}

func PackageToResponse(pkg *entity.SafariPackage) PackageResponse {
	return PackageResponse{
		ID:           pkg.ID,
		Name:         pkg.Name,
		Description:  pkg.Description,
		GroupSizeMin: pkg.GroupSizeMin,
		GroupSizeMax: pkg.GroupSizeMax,
		Picture:      pkg.Picture,
	}
}
