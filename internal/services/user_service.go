package services

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"broconnect/internal/models"
	"broconnect/internal/repositories"
	"broconnect/internal/validation"
	"broconnect/utils"
)

const (
	accessTokenTTL  = 20 * time.Hour
	refreshTokenTTL = 30 * 24 * time.Hour
)

type UserService struct {
	UserRepo     *repositories.UserRepository
	TokenManager *utils.Manager
}

func (s *UserService) SignUp(ctx context.Context, req models.SignUpRequest) (models.User, error) {
	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Batch = strings.TrimSpace(req.Batch)
	if err := validation.Check(req); err != nil {
		return models.User{}, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		FullName: req.FullName,
		Email:    req.Email,
		Password: string(hashedPassword),
		Batch:    req.Batch,
		Role:     models.RoleStudent,
	}
	id, err := s.UserRepo.CreateUser(ctx, user)
	if err != nil {
		return models.User{}, err
	}
	return s.UserRepo.GetUserByID(ctx, id)
}

func (s *UserService) SignIn(ctx context.Context, req models.SignInRequest) (models.SignInResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	hash, err := s.UserRepo.GetPasswordByEmail(ctx, email)
	if err != nil {
		if err == models.ErrUserNotFound {
			return models.SignInResponse{}, models.ErrInvalidCredentials
		}
		return models.SignInResponse{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		return models.SignInResponse{}, models.ErrInvalidCredentials
	}

	user, err := s.UserRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return models.SignInResponse{}, err
	}

	accessToken, err := s.TokenManager.NewAccessToken(user.ID, user.Role, accessTokenTTL)
	if err != nil {
		return models.SignInResponse{}, err
	}
	refreshToken, err := s.TokenManager.NewRefreshToken()
	if err != nil {
		return models.SignInResponse{}, err
	}

	session := models.Session{
		UserID:       user.ID,
		Role:         user.Role,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(refreshTokenTTL),
	}
	if err := s.UserRepo.CreateSession(ctx, session); err != nil {
		return models.SignInResponse{}, err
	}

	return models.SignInResponse{
		User:   user,
		Tokens: models.Tokens{AccessToken: accessToken, RefreshToken: refreshToken},
	}, nil
}

func (s *UserService) Logout(ctx context.Context, userID int) error {
	return s.UserRepo.DeleteSessionsForUser(ctx, userID)
}

func (s *UserService) GetUserByID(ctx context.Context, id int) (models.User, error) {
	return s.UserRepo.GetUserByID(ctx, id)
}

// GetProfiles returns the messenger contact list: everyone but the caller.
func (s *UserService) GetProfiles(ctx context.Context, userID int) ([]models.User, error) {
	return s.UserRepo.GetProfilesExcept(ctx, userID)
}

// UpdateProfile lets a user edit their own profile; admins may edit anyone.
func (s *UserService) UpdateProfile(ctx context.Context, callerID int, callerRole string, targetID int, req models.ProfileUpdateRequest) (models.User, error) {
	if callerID != targetID && callerRole != models.RoleAdmin {
		return models.User{}, models.ErrForbidden
	}
	req.FullName = strings.TrimSpace(req.FullName)
	req.Batch = strings.TrimSpace(req.Batch)
	req.Department = strings.TrimSpace(req.Department)
	if err := validation.Check(req); err != nil {
		return models.User{}, err
	}
	return s.UserRepo.UpdateProfile(ctx, targetID, req)
}

// DeleteAllUsers wipes every account. Only admins reach this, and the
// handler additionally demands the literal confirmation parameter.
func (s *UserService) DeleteAllUsers(ctx context.Context, callerRole string) (int, error) {
	if callerRole != models.RoleAdmin {
		return 0, models.ErrForbidden
	}
	return s.UserRepo.DeleteAllUsers(ctx)
}
