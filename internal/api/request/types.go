package request

// AuthenticationRequest is the request body for POST /auth/token
type AuthenticationRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=50"`
	Password  string `json:"password" validate:"required,min=8"`
	GrantType string `json:"grant_type,omitempty"`
}

// RefreshTokenRequest is the request body for POST /auth/refresh
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
	GrantType    string `json:"grant_type,omitempty"`
}

// CreatePlayerRequest is the request body for POST /players
type CreatePlayerRequest struct {
	Username    string `json:"username" validate:"required,min=3,max=30"`
	Email       string `json:"email" validate:"required,email"`
	DisplayName string `json:"display_name,omitempty" validate:"omitempty,max=50"`
}

// UpdatePlayerRequest is the request body for PUT /players/{player_id}.
// Pointer fields distinguish "absent from the patch" from "set to the
// zero value"; nil fields leave the stored value untouched.
type UpdatePlayerRequest struct {
	DisplayName *string `json:"display_name" validate:"omitempty,max=50"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Status      *string `json:"status" validate:"omitempty,oneof=active suspended banned inactive"`
}
