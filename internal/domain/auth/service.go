package auth

import "context"

type AuthService interface {
	// Register creates a new account and issues both tokens. Duplicate
	// unique fields fail with a validator.ValidationErrors value.
	Register(ctx context.Context, req RegisterRequest, sessionReq SessionTrackingRequest) (TokenResponse, error)

	// Login verifies the username/password pair and issues both tokens.
	// Unknown username and wrong password both return ErrInvalidCredentials.
	Login(ctx context.Context, req LoginRequest, sessionReq SessionTrackingRequest) (TokenResponse, error)

	// RefreshToken exchanges a valid, unrevoked refresh token for a new
	// access token.
	RefreshToken(ctx context.Context, req RefreshTokenRequest) (AccessTokenResponse, error)

	// Logout revokes the stored refresh token.
	Logout(ctx context.Context, refreshToken string) error
}
