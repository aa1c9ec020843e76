package response

import (
	"time"

	"safari-booking/internal/data/entity"
)

// UserResponse is the public profile projection. It never carries the
// password digest.
type UserResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone"`
	Company     string          `json:"company"`
	Role        entity.UserRole `json:"role"`
	DateCreated time.Time       `json:"date_created"`
}

// LoginUser is the trimmed profile embedded in the login payload.
type LoginUser struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
}

// LoginData is the data object of a successful login response.
type LoginData struct {
	Token string          `json:"token"`
	Role  entity.UserRole `json:"role"`
	User  LoginUser       `json:"user"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		Phone:       user.Phone,
		Company:     user.Company,
		Role:        user.Role,
		DateCreated: user.DateCreated,
	}
}

func LoginToResponse(user *entity.User, token *entity.AuthToken) LoginData {
	return LoginData{
		Token: token.Key,
		Role:  user.Role,
		User: LoginUser{
			ID:      user.ID,
			Name:    user.Name,
			Email:   user.Email,
			Phone:   user.Phone,
			Company: user.Company,
		},
	}
}
