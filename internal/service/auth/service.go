package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/attendance-mgmt/attendance-backend-go/internal/domain/auth"
	"github.com/attendance-mgmt/attendance-backend-go/internal/domain/user"
	"github.com/attendance-mgmt/attendance-backend-go/internal/pkg/database"
	"github.com/attendance-mgmt/attendance-backend-go/internal/pkg/jwt"
	"github.com/attendance-mgmt/attendance-backend-go/internal/pkg/validator"
	"github.com/attendance-mgmt/attendance-backend-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db *database.DB
	user.UserRepository
	jwt.Service
	postgresql.JWTRepository
}

func NewAuthService(db *database.DB, userRepository user.UserRepository, jwtService jwt.Service, jwtRepository postgresql.JWTRepository) auth.AuthService {
	return &AuthServiceImpl{
		db:             db,
		UserRepository: userRepository,
		Service:        jwtService,
		JWTRepository:  jwtRepository,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// uniqueViolationToFieldError maps a postgres unique violation back to the
// input field that caused it, so a lost registration race reads the same as
// the pre-check.
func uniqueViolationToFieldError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return nil
	}

	field := "username"
	switch {
	case pgErr.ConstraintName == "users_email_key":
		field = "email"
	case pgErr.ConstraintName == "users_employee_id_key":
		field = "employee_id"
	case pgErr.ConstraintName == "users_fingerprint_id_key":
		field = "fingerprint_id"
	}

	return validator.ValidationErrors{{
		Field:   field,
		Message: "a user with that " + field + " already exists",
	}}
}

// Register implements auth.AuthService.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest, sessionReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	var tokenResponse auth.TokenResponse

	// Check username is still free before hashing
	_, err := a.UserRepository.GetByUsername(ctx, req.Username)
	if err == nil {
		return auth.TokenResponse{}, validator.ValidationErrors{{
			Field:   "username",
			Message: "a user with that username already exists",
		}}
	}
	if err != pgx.ErrNoRows {
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	hashedPassword, err := a.hashPassword(req.Password)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	role := user.RoleEmployee
	if req.Role != nil && *req.Role != "" {
		role = user.Role(*req.Role)
	}

	newUser := user.User{
		Name:          req.Name,
		Username:      req.Username,
		EmployeeID:    req.EmployeeID,
		Email:         req.Email,
		Role:          role,
		Department:    req.Department,
		PasswordHash:  hashedPassword,
		FingerprintID: req.FingerprintID,
	}
	newUser, err = a.UserRepository.Create(ctx, newUser)
	if err != nil {
		if fieldErr := uniqueViolationToFieldError(err); fieldErr != nil {
			return auth.TokenResponse{}, fieldErr
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	if err := a.issueTokens(ctx, newUser, sessionReq, &tokenResponse); err != nil {
		return auth.TokenResponse{}, err
	}

	tokenResponse.User = user.ToResponse(newUser)
	return tokenResponse, nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest, sessionReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	var tokenResponse auth.TokenResponse

	userData, err := a.UserRepository.GetByUsername(ctx, req.Username)
	if err != nil {
		if err == pgx.ErrNoRows {
			// Same error as a password mismatch, nothing is leaked about
			// which check failed
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if err := a.issueTokens(ctx, userData, sessionReq, &tokenResponse); err != nil {
		return auth.TokenResponse{}, err
	}

	tokenResponse.User = user.ToResponse(userData)
	return tokenResponse, nil
}

// issueTokens generates the access/refresh pair and persists the refresh
// token hash inside a transaction.
func (a *AuthServiceImpl) issueTokens(ctx context.Context, userData user.User, sessionReq auth.SessionTrackingRequest, tokenResponse *auth.TokenResponse) error {
	return postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(userData.ID, userData.Username, userData.Role)
		if err != nil {
			return fmt.Errorf("failed to create access token: %w", err)
		}
		tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, err = a.Service.GenerateRefreshToken(userData.ID)
		if err != nil {
			return fmt.Errorf("failed to create refresh token: %w", err)
		}

		err = a.CreateRefreshToken(txCtx, userData.ID, tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, sessionReq)
		if err != nil {
			return fmt.Errorf("failed to save refresh token to database: %w", err)
		}
		return nil
	})
}

// RefreshToken implements auth.AuthService.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	var accessTokenResponse auth.AccessTokenResponse

	// 1. Verify JWT signature and expiry
	token, err := jwtauth.VerifyToken(a.JWTAuth(), req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	// 2. Check token type is "refresh"
	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}
	tokenType, ok := claims["type"].(string)
	if !ok || tokenType != "refresh" {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	// 3. Check DB for revocation/expiry
	userID, isRevoked, err := a.JWTRepository.IsRefreshTokenRevoked(ctx, req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}
	if isRevoked {
		return auth.AccessTokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	// 4. Get user
	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrUserNotFound
	}

	// 5. Generate new access token
	accessTokenResponse.AccessToken, accessTokenResponse.AccessTokenExpiresIn, err =
		a.Service.GenerateAccessToken(userData.ID, userData.Username, userData.Role)
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return accessTokenResponse, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	return postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		_, isRevoked, err := a.JWTRepository.IsRefreshTokenRevoked(txCtx, refreshToken)
		if err != nil {
			return fmt.Errorf("failed to check if refresh token is revoked: %w", err)
		}
		if !isRevoked {
			if err := a.JWTRepository.RevokeRefreshToken(txCtx, refreshToken); err != nil {
				return fmt.Errorf("failed to revoke refresh token: %w", err)
			}
		}
		return nil
	})
}
