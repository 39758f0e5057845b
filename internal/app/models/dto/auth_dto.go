package dto

// RegisterRequest represents a signup request
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email" example:"user@campus.edu"`
	Password  string `json:"password" binding:"required,min=8" example:"s3cretPassw0rd"`
	FirstName string `json:"firstName" binding:"required" example:"John"`
	LastName  string `json:"lastName" binding:"required" example:"Doe"`
	RoleType  string `json:"roleType" binding:"required,oneof=STUDENT FACULTY" example:"STUDENT"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"user@campus.edu"`
	Password string `json:"password" binding:"required" example:"s3cretPassw0rd"`
}

// RefreshTokenRequest represents a token refresh request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse carries an issued token pair
type TokenResponse struct {
	AccessToken      string             `json:"accessToken"`
	RefreshToken     string             `json:"refreshToken"`
	ExpiresIn        int                `json:"expiresIn" example:"3600"`
	RefreshExpiresIn int                `json:"refreshExpiresIn" example:"2592000"`
	User             *UserBasicResponse `json:"user,omitempty"`
}
