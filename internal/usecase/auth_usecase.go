package usecase

import (
	"context"
	"time"

	"go-volink-backend/internal/domain"
	"go-volink-backend/pkg/apperror"
	"go-volink-backend/pkg/auth"

	"golang.org/x/crypto/bcrypt"
)

type authUsecase struct {
	userRepo domain.UserRepository
	tokens   *auth.TokenManager
}

func NewAuthUsecase(userRepo domain.UserRepository, tokens *auth.TokenManager) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo, tokens: tokens}
}

func (u *authUsecase) Register(ctx context.Context, user *domain.User, password string) error {
	if user.Username == "" || user.Email == "" {
		return apperror.BadRequest("Username and email are required")
	}
	if len(password) < 8 {
		return apperror.BadRequest("Password must be at least 8 characters")
	}

	// Self-registration is limited to volunteer and org_admin; staff
	// admins are provisioned out of band.
	switch user.Role {
	case "":
		user.Role = domain.RoleVolunteer
	case domain.RoleVolunteer, domain.RoleOrgAdmin:
	default:
		return apperror.BadRequest("Invalid role. Must be: volunteer or org_admin")
	}

	if existing, err := u.userRepo.GetByUsername(ctx, user.Username); err == nil && existing != nil {
		return apperror.Conflict("Username is already taken")
	}
	if existing, err := u.userRepo.GetByEmail(ctx, user.Email); err == nil && existing != nil {
		return apperror.Conflict("Email is already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return apperror.Internal(err)
	}
	user.PasswordHash = string(hash)
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	return u.userRepo.Create(ctx, user)
}

func (u *authUsecase) Login(ctx context.Context, username, password string) (*domain.User, string, error) {
	user, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil || user == nil {
		// Same message for unknown user and bad password.
		return nil, "", apperror.Unauthorized("Invalid username or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperror.Unauthorized("Invalid username or password")
	}

	token, err := u.tokens.Issue(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}
	return user, token, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id int64) (*domain.User, error) {
	return u.userRepo.GetByID(ctx, id)
}
