package request

type BookingRequest struct {
	SafariPackageID     int64  `json:"safari_package" validate:"required"`
	StartDate           string `json:"start_date" validate:"required,datetime=2006-01-02"`
	Participants        int    `json:"participants" validate:"required,min=1"`
	SpecialRequirements string `json:"special_requirements"`
	FirstName           string `json:"first_name" validate:"required,max=100"`
	LastName            string `json:"last_name" validate:"required,max=100"`
	Email               string `json:"email" validate:"required,email"`
	Phone               string `json:"phone" validate:"required,max=20"`
}
