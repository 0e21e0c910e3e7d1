package dto

import "vetcare-api/modules/auth/entity"

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignInResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	ProfilePicture string `json:"profile_picture,omitempty"`
	CanApprove     bool   `json:"can_approve"`
}

type OnboardingResponse struct {
	Seen bool `json:"seen"`
}

type SetOnboardingRequest struct {
	Seen bool `json:"seen"`
}

func ToUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Role:           string(u.Role),
		ProfilePicture: u.ProfilePicture,
		CanApprove:     u.Role.CanApprove(),
	}
}
