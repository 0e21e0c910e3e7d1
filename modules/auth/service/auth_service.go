package service

import (
	"context"
	"time"

	"vetcare-api/core/errors"
	"vetcare-api/core/logger"
	"vetcare-api/core/utils"
	"vetcare-api/modules/auth/dto"
	"vetcare-api/modules/auth/entity"
	"vetcare-api/modules/auth/repository"

	"golang.org/x/crypto/bcrypt"
)

// TokenBlacklist revokes access tokens on sign-out. Satisfied by
// core/cache.Cache.
type TokenBlacklist interface {
	BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error
}

// OnboardingStore persists the single durable flag the app keeps: whether a
// user has been through onboarding. Satisfied by core/cache.Cache.
type OnboardingStore interface {
	SetOnboardingSeen(ctx context.Context, userID string, seen bool) error
	OnboardingSeen(ctx context.Context, userID string) (bool, error)
}

// AuthServiceInterface defines the service contract.
type AuthServiceInterface interface {
	SignIn(ctx context.Context, req *dto.SignInRequest) (*dto.SignInResponse, *errors.AppError)
	SignOut(ctx context.Context, jti string, expiresAt time.Time) *errors.AppError
	Me(ctx context.Context, userID string) (*dto.UserResponse, *errors.AppError)
	ListUsers(ctx context.Context, actorRole entity.UserRole) ([]dto.UserResponse, *errors.AppError)
	ListApprovers(ctx context.Context) ([]dto.UserResponse, *errors.AppError)
	Onboarding(ctx context.Context, userID string) (*dto.OnboardingResponse, *errors.AppError)
	SetOnboarding(ctx context.Context, userID string, seen bool) *errors.AppError
}

type AuthService struct {
	users      repository.UserRepositoryInterface
	blacklist  TokenBlacklist
	onboarding OnboardingStore
}

func NewAuthService(users repository.UserRepositoryInterface, blacklist TokenBlacklist, onboarding OnboardingStore) AuthServiceInterface {
	return &AuthService{
		users:      users,
		blacklist:  blacklist,
		onboarding: onboarding,
	}
}

// SignIn verifies seeded credentials and issues an access token.
func (s *AuthService) SignIn(ctx context.Context, req *dto.SignInRequest) (*dto.SignInResponse, *errors.AppError) {
	if req.Email == "" || req.Password == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Email and password are required", nil)
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		logger.Error("AuthService:SignIn:GetByEmail:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to look up user", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid email or password", nil)
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(req.Password)); err != nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid email or password", nil)
	}

	token, err := utils.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		logger.Error("AuthService:SignIn:GenerateToken:Error", "error", err, "user_id", user.ID)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to issue token", err)
	}

	logger.Info("AuthService:SignIn:Success", "user_id", user.ID, "role", user.Role)
	return &dto.SignInResponse{
		AccessToken: token,
		User:        dto.ToUserResponse(user),
	}, nil
}

// SignOut revokes the presented token for the remainder of its lifetime.
func (s *AuthService) SignOut(ctx context.Context, jti string, expiresAt time.Time) *errors.AppError {
	ttl := time.Until(expiresAt)
	if err := s.blacklist.BlacklistToken(ctx, jti, ttl); err != nil {
		logger.Error("AuthService:SignOut:BlacklistToken:Error", "error", err, "jti", jti)
		return errors.NewAppError(errors.ErrInternalServer, "Failed to revoke token", err)
	}
	return nil
}

func (s *AuthService) Me(ctx context.Context, userID string) (*dto.UserResponse, *errors.AppError) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to look up user", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "User not found", nil)
	}
	resp := dto.ToUserResponse(user)
	return &resp, nil
}

// ListUsers is the admin user-management surface.
func (s *AuthService) ListUsers(ctx context.Context, actorRole entity.UserRole) ([]dto.UserResponse, *errors.AppError) {
	if actorRole != entity.RoleAdmin {
		return nil, errors.NewAppError(errors.ErrForbidden, "Only admins may list users", nil)
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list users", err)
	}

	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, dto.ToUserResponse(&users[i]))
	}
	return out, nil
}

// ListApprovers returns the head vets a restricted requester can target.
func (s *AuthService) ListApprovers(ctx context.Context) ([]dto.UserResponse, *errors.AppError) {
	users, err := s.users.ListByRole(ctx, entity.RoleHeadVet)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list approvers", err)
	}

	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, dto.ToUserResponse(&users[i]))
	}
	return out, nil
}

func (s *AuthService) Onboarding(ctx context.Context, userID string) (*dto.OnboardingResponse, *errors.AppError) {
	seen, err := s.onboarding.OnboardingSeen(ctx, userID)
	if err != nil {
		logger.Error("AuthService:Onboarding:Error", "error", err, "user_id", userID)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to read onboarding flag", err)
	}
	return &dto.OnboardingResponse{Seen: seen}, nil
}

func (s *AuthService) SetOnboarding(ctx context.Context, userID string, seen bool) *errors.AppError {
	if err := s.onboarding.SetOnboardingSeen(ctx, userID, seen); err != nil {
		logger.Error("AuthService:SetOnboarding:Error", "error", err, "user_id", userID)
		return errors.NewAppError(errors.ErrInternalServer, "Failed to save onboarding flag", err)
	}
	return nil
}
