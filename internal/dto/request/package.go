package request

type PackageRequest struct {
	Name         string `json:"name" validate:"required,max=100"`
	Description  string `json:"description" validate:"required"`
	GroupSizeMin int    `json:"group_size_min" validate:"required,min=1"`
	GroupSizeMax int    `json:"group_size_max" validate:"required,min=1,gtefield=GroupSizeMin"`
	Picture      string `json:"picture" validate:"omitempty,url"`
}
